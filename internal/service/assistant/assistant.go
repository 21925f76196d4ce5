package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/memobot/internal/config"
	"github.com/sandevgo/memobot/internal/core"
	"github.com/sandevgo/memobot/pkg/log"
)

// Assistant is the message-dispatch pipeline: one incoming message plus
// prior context in, exactly one reply out, with the exchange appended to
// the transcript. It also fronts the event store for the boundary layer.
type Assistant struct {
	cfg     *config.AppConfig
	history core.HistoryRepository
	events  core.EventRepository
	matcher *Matcher
	gateway *Gateway
}

func New(
	cfg *config.AppConfig,
	history core.HistoryRepository,
	events core.EventRepository,
	gateway *Gateway,
) *Assistant {
	return &Assistant{
		cfg:     cfg,
		history: history,
		events:  events,
		matcher: NewMatcher(events),
		gateway: gateway,
	}
}

// Answer runs the dispatch pipeline for one message: recorded facts
// first, then generation, then the offline fallback inside the gateway.
// At most one generation call happens per message.
func (a *Assistant) Answer(ctx context.Context, message string) (core.Reply, error) {
	if strings.TrimSpace(message) == "" {
		return core.Reply{}, fmt.Errorf("%w: message is required", core.ErrInvalidInput)
	}
	logger := log.FromCtx(ctx)

	full, err := a.history.Messages(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load history, continuing without context")
		full = nil
	}
	window := lastN(full, a.cfg.ContextWindowSize)

	var reply core.Reply
	if answer, ok := a.matcher.TryAnswer(ctx, message); ok {
		reply = core.Reply{Text: answer, Mode: core.ModeMemory}
	} else {
		reply = a.gateway.Reply(ctx, message, window)
	}

	// Persist the exchange against the full transcript. A failed save
	// degrades durability, not availability: the reply still goes out.
	userMsg := core.NewMessage(core.RoleUser, message)
	assistantMsg := core.NewMessage(core.RoleAssistant, reply.Text)
	if err := a.history.AppendExchange(ctx, userMsg, assistantMsg); err != nil {
		logger.Error().Err(err).Msg("failed to persist exchange")
	}

	logger.Info().Str("mode", string(reply.Mode)).Msg("answered message")
	return reply, nil
}

// History returns the full persisted transcript.
func (a *Assistant) History(ctx context.Context) ([]core.Message, error) {
	return a.history.Messages(ctx)
}

// RecordEvent stores a typed fact outside the conversation flow.
func (a *Assistant) RecordEvent(ctx context.Context, eventType, content string, metadata map[string]any) (core.Event, error) {
	return a.events.Record(ctx, eventType, content, metadata)
}

// Events lists recorded facts of one type.
func (a *Assistant) Events(ctx context.Context, eventType string) ([]core.Event, error) {
	return a.events.ByType(ctx, eventType)
}

func lastN(msgs []core.Message, n int) []core.Message {
	if n <= 0 || len(msgs) <= n {
		return msgs
	}
	return msgs[len(msgs)-n:]
}
