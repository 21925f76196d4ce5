package assistant

import (
	"strings"
	"testing"
	"time"

	"github.com/sandevgo/memobot/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt_Layout(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	history := []core.Message{
		core.NewMessage(core.RoleUser, "old question"),
		core.NewMessage(core.RoleAssistant, "old answer"),
	}

	prompt := buildPrompt("new question", history, now, 0)

	assert.Contains(t, prompt, systemPreamble)
	assert.Contains(t, prompt, "2025-03-14 12:00:00")
	assert.Contains(t, prompt, "user: old question")
	assert.Contains(t, prompt, "assistant: old answer")
	assert.True(t, strings.HasSuffix(prompt, "user: new question\nassistant:"))

	// Oldest first.
	assert.Less(t,
		strings.Index(prompt, "old question"),
		strings.Index(prompt, "old answer"),
	)
}

func TestBuildPrompt_NoHistory(t *testing.T) {
	prompt := buildPrompt("hello", nil, time.Now(), 0)
	assert.NotContains(t, prompt, "conversation history")
	assert.Contains(t, prompt, "user: hello")
}

func TestBuildPrompt_TokenBudgetDropsOldestFirst(t *testing.T) {
	var history []core.Message
	for i := 0; i < 40; i++ {
		history = append(history, core.NewMessage(core.RoleUser,
			strings.Repeat("довге повідомлення з багатьма словами ", 10)))
	}
	history[0].Content = "oldest marker " + history[0].Content
	history[len(history)-1].Content = "newest marker " + history[len(history)-1].Content

	prompt := buildPrompt("питання", history, time.Now(), 200)

	require.NotContains(t, prompt, "oldest marker")
	assert.Contains(t, prompt, "питання", "the user message is never dropped")
}

func TestBuildPrompt_BudgetNeverDropsMessage(t *testing.T) {
	prompt := buildPrompt("питання", nil, time.Now(), 1)
	assert.Contains(t, prompt, "питання")
}

func TestCountTokens_Monotonic(t *testing.T) {
	short := countTokens("привіт")
	long := countTokens(strings.Repeat("привіт світ ", 100))
	assert.Greater(t, long, short)
}
