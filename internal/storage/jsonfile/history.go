package jsonfile

import (
	"context"

	"github.com/sandevgo/memobot/internal/core"
	"github.com/sandevgo/memobot/pkg/log"
)

const historyDoc = "chat_history"

// History is the append-only conversation transcript, backed by one JSON
// document. The transcript on disk is always the full history; context
// truncation happens on the read side in the dispatch pipeline.
type History struct {
	store *Store
}

func NewHistory(store *Store) *History {
	return &History{store: store}
}

func (h *History) Messages(ctx context.Context) ([]core.Message, error) {
	msgs := Load(ctx, h.store, historyDoc, []core.Message{})
	log.FromCtx(ctx).Debug().Int("count", len(msgs)).Msg("loaded history messages")
	return msgs, nil
}

// AppendExchange appends the user/assistant pair to the full transcript.
// The load-append-save runs under the store's write lock; two overlapping
// exchanges serialize here rather than overwriting each other.
func (h *History) AppendExchange(ctx context.Context, user, assistant core.Message) error {
	_, err := Update(ctx, h.store, historyDoc, []core.Message{}, func(msgs []core.Message) []core.Message {
		return append(msgs, user, assistant)
	})
	return err
}
