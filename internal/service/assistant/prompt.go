package assistant

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pkoukk/tiktoken-go"
	"github.com/sandevgo/memobot/internal/core"
)

const systemPreamble = "You are a helpful AI assistant. You must always answer in Ukrainian, unless the user explicitly asks for another language."

var (
	tk     *tiktoken.Tiktoken
	tkOnce sync.Once
)

// buildPrompt renders the system preamble with the current real-world
// time, the supplied history as role-labeled lines oldest first, then the
// new user message. When the rendered prompt exceeds tokenBudget, the
// oldest history lines are dropped first.
func buildPrompt(message string, history []core.Message, now time.Time, tokenBudget int) string {
	lines := make([]string, 0, len(history))
	for _, msg := range history {
		lines = append(lines, fmt.Sprintf("%s: %s", msg.Role, msg.Content))
	}

	prompt := renderPrompt(message, lines, now)
	for tokenBudget > 0 && len(lines) > 0 && countTokens(prompt) > tokenBudget {
		lines = lines[1:]
		prompt = renderPrompt(message, lines, now)
	}
	return prompt
}

func renderPrompt(message string, lines []string, now time.Time) string {
	var b strings.Builder
	b.WriteString(systemPreamble)
	b.WriteString(fmt.Sprintf(" Current real-world time: %s.\n", now.Format("2006-01-02 15:04:05")))
	if len(lines) > 0 {
		b.WriteString("Use the following conversation history for context:\n")
		b.WriteString(strings.Join(lines, "\n"))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("\nuser: %s\nassistant:", message))
	return b.String()
}

func countTokens(text string) int {
	tkOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err == nil {
			tk = enc
		}
	})
	if tk == nil {
		// Tokenizer data unavailable: rough byte-based estimate.
		return len(text) / 4
	}
	return len(tk.Encode(text, nil, nil))
}
