package core

import "context"

type HistoryRepository interface {
	// Messages returns the full transcript in chronological order.
	Messages(ctx context.Context) ([]Message, error)
	// AppendExchange appends a user/assistant message pair to the full,
	// untruncated transcript and persists it.
	AppendExchange(ctx context.Context, user, assistant Message) error
}

type EventRepository interface {
	Record(ctx context.Context, eventType, content string, metadata map[string]any) (Event, error)
	// ByType returns all events of the given type in insertion order,
	// empty when the type has never been recorded.
	ByType(ctx context.Context, eventType string) ([]Event, error)
}
