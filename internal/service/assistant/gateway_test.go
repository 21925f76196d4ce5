package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/sandevgo/memobot/internal/config"
	"github.com/sandevgo/memobot/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(gen core.Generator) *Gateway {
	return NewGateway(&config.AppConfig{PromptTokenBudget: 0}, gen)
}

func TestGateway_RemoteSuccess(t *testing.T) {
	gen := &fakeGenerator{reply: "згенерована відповідь"}
	reply := newTestGateway(gen).Reply(context.Background(), "питання", nil)

	assert.Equal(t, core.ModeRemote, reply.Mode)
	assert.Equal(t, "згенерована відповідь", reply.Text)
}

func TestGateway_FailureConvertsToOffline(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("dial tcp: connection refused")}
	reply := newTestGateway(gen).Reply(context.Background(), "привіт", nil)

	assert.Equal(t, core.ModeOffline, reply.Mode)
	assert.Contains(t, reply.Text, offlineNotice)
	assert.Contains(t, reply.Text, "Привіт")
}

func TestGateway_NilGeneratorAnswersOffline(t *testing.T) {
	reply := newTestGateway(nil).Reply(context.Background(), "дякую", nil)

	assert.Equal(t, core.ModeOffline, reply.Mode)
	assert.Contains(t, reply.Text, "Будь ласка")
}

func TestGateway_PromptCarriesHistoryAndMessage(t *testing.T) {
	gen := &fakeGenerator{reply: "ok"}
	history := []core.Message{
		core.NewMessage(core.RoleUser, "перше питання"),
		core.NewMessage(core.RoleAssistant, "перша відповідь"),
	}

	reply := newTestGateway(gen).Reply(context.Background(), "друге питання", history)
	require.Equal(t, core.ModeRemote, reply.Mode)

	assert.Contains(t, gen.lastPrompt, "user: перше питання")
	assert.Contains(t, gen.lastPrompt, "assistant: перша відповідь")
	assert.Contains(t, gen.lastPrompt, "друге питання")
}
