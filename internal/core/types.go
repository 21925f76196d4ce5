package core

import "time"

const (
	AppName    = "memobot"
	AppVersion = "0.1.0"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Mode tags a reply with its source.
type Mode string

const (
	ModeMemory  Mode = "memory"
	ModeRemote  Mode = "remote"
	ModeOffline Mode = "offline"
)

// Message is one entry of the conversation transcript. Immutable once
// appended; transcript order is chronological order.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

func NewMessage(role, content string) Message {
	return Message{
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
}

// Event is a timestamped fact record of a given type (medication taken,
// doctor visit, ...) recorded outside the conversation flow.
type Event struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Content   string         `json:"content"`
	Metadata  map[string]any `json:"metadata"`
	Timestamp time.Time      `json:"timestamp"`
}

// Reply is the single answer produced for one incoming message.
type Reply struct {
	Text string
	Mode Mode
}
