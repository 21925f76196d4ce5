package assistant

import (
	"fmt"
	"strings"
	"time"
)

type offlineRule struct {
	keyword string
	reply   func(now time.Time) string
}

// Ordered so replies stay deterministic when several keywords could match.
var offlineRules = []offlineRule{
	{"привіт", func(time.Time) string {
		return "Привіт! Я працюю в офлайн-режимі, але готовий допомагати. 👋"
	}},
	{"як справи", func(time.Time) string {
		return "У мене все чудово! Як я можу вам допомогти? 😊"
	}},
	{"дякую", func(time.Time) string {
		return "Будь ласка! Звертайтеся ще. ✨"
	}},
	{"час", func(now time.Time) string {
		return fmt.Sprintf("Зараз %s. 🕒", now.Format("15:04:05"))
	}},
}

const offlineDefault = "Отримав ваше повідомлення! Наразі я в офлайн-режимі. 📝"

// offlineResponse is the deterministic fallback used when the generation
// backend is unavailable.
func offlineResponse(message string, now time.Time) string {
	lower := strings.ToLower(message)
	for _, rule := range offlineRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.reply(now)
		}
	}
	return offlineDefault
}
