package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/memobot/internal/core"
)

type intentRule struct {
	keywords  []string
	eventType string
	template  string
}

// Table order is the tie-break: the first rule with a substring hit wins.
var intentRules = []intentRule{
	{
		keywords:  []string{"вітамін", "витамин"},
		eventType: "vitamin",
		template:  "Ви приймаєте вітаміни: %s",
	},
	{
		keywords:  []string{"лікар", "врач"},
		eventType: "doctor",
		template:  "Останній запис про лікаря: %s",
	},
}

// Matcher recognizes a message as a query about recorded events and
// answers it from the fact store, without invoking generation. It never
// mutates state.
type Matcher struct {
	events core.EventRepository
}

func NewMatcher(events core.EventRepository) *Matcher {
	return &Matcher{events: events}
}

// TryAnswer returns the formatted answer for the most recent matching
// event, or ok=false when the message is not an event query or no event
// of the matched type has been recorded yet.
func (m *Matcher) TryAnswer(ctx context.Context, message string) (string, bool) {
	lower := strings.ToLower(message)

	for _, rule := range intentRules {
		if !matchesAny(lower, rule.keywords) {
			continue
		}

		list, err := m.events.ByType(ctx, rule.eventType)
		if err != nil || len(list) == 0 {
			// Keyword hit but nothing recorded: fall through to generation.
			return "", false
		}
		return fmt.Sprintf(rule.template, list[len(list)-1].Content), true
	}
	return "", false
}

func matchesAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
