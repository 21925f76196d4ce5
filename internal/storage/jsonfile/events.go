package jsonfile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sandevgo/memobot/internal/core"
	"github.com/sandevgo/memobot/pkg/log"
)

const eventsDoc = "events"

// Events is the typed fact store: one JSON document mapping event type to
// its chronological list of events. Type keys are created lazily on first
// record.
type Events struct {
	store *Store
}

func NewEvents(store *Store) *Events {
	return &Events{store: store}
}

func (e *Events) Record(ctx context.Context, eventType, content string, metadata map[string]any) (core.Event, error) {
	if eventType == "" {
		return core.Event{}, fmt.Errorf("%w: event type is required", core.ErrInvalidInput)
	}
	if content == "" {
		return core.Event{}, fmt.Errorf("%w: event content is required", core.ErrInvalidInput)
	}
	if metadata == nil {
		metadata = map[string]any{}
	}

	event := core.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Content:   content,
		Metadata:  metadata,
		Timestamp: time.Now().UTC(),
	}

	_, err := Update(ctx, e.store, eventsDoc, map[string][]core.Event{}, func(doc map[string][]core.Event) map[string][]core.Event {
		doc[eventType] = append(doc[eventType], event)
		return doc
	})
	if err != nil {
		// Durability degrades, availability does not: the caller still
		// gets the event it just recorded.
		log.FromCtx(ctx).Error().Err(err).Str("type", eventType).Msg("failed to persist event")
	}

	log.FromCtx(ctx).Info().Str("type", eventType).Str("id", event.ID).Msg("event recorded")
	return event, nil
}

func (e *Events) ByType(ctx context.Context, eventType string) ([]core.Event, error) {
	doc := Load(ctx, e.store, eventsDoc, map[string][]core.Event{})
	return doc[eventType], nil
}
