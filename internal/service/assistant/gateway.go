package assistant

import (
	"context"
	"time"

	"github.com/sandevgo/memobot/internal/config"
	"github.com/sandevgo/memobot/internal/core"
	"github.com/sandevgo/memobot/pkg/log"
)

const offlineNotice = "⚠️ Не вдалося звернутися до мовної моделі. Відповідаю в офлайн-режимі."

// Gateway turns a message plus context into a prompt for the generation
// backend. It is the single point where an external-dependency failure is
// absorbed: any generator error degrades to the offline responder instead
// of propagating.
type Gateway struct {
	cfg       *config.AppConfig
	generator core.Generator
	now       func() time.Time
}

func NewGateway(cfg *config.AppConfig, generator core.Generator) *Gateway {
	return &Gateway{
		cfg:       cfg,
		generator: generator,
		now:       time.Now,
	}
}

// Reply always produces a usable answer: mode remote on success, mode
// offline on any failure.
func (g *Gateway) Reply(ctx context.Context, message string, history []core.Message) core.Reply {
	logger := log.FromCtx(ctx)

	if g.generator == nil {
		logger.Warn().Msg("no generation backend configured, answering offline")
		return g.offline(message)
	}

	prompt := buildPrompt(message, history, g.now(), g.cfg.PromptTokenBudget)
	logger.Debug().Int("prompt_tokens", countTokens(prompt)).Msg("built generation prompt")

	text, err := g.generator.Generate(ctx, prompt)
	if err != nil {
		logger.Error().Err(err).Msg("generation failed, answering offline")
		return g.offline(message)
	}
	return core.Reply{Text: text, Mode: core.ModeRemote}
}

func (g *Gateway) offline(message string) core.Reply {
	return core.Reply{
		Text: offlineNotice + "\n\n" + offlineResponse(message, g.now()),
		Mode: core.ModeOffline,
	}
}
