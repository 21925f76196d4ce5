package llm

import (
	"context"
	"fmt"

	"github.com/sandevgo/memobot/internal/config"
	"github.com/sandevgo/memobot/internal/core"
	"github.com/sandevgo/memobot/pkg/log"
)

// NewGenerator creates the configured generation backend.
func NewGenerator(ctx context.Context, cfg *config.AppConfig) (core.Generator, error) {
	log.FromCtx(ctx).Info().
		Str("provider", cfg.LLMProvider).
		Msg("starting llm provider")

	switch cfg.LLMProvider {
	case "ollama":
		return NewOllama(config.NewOllamaConfig(ctx)), nil
	case "openai":
		openaiCfg := config.NewOpenAIConfig(ctx)
		if openaiCfg.APIKey == "" {
			return nil, fmt.Errorf("openai provider selected but OPENAI_API_KEY is not set")
		}
		return NewOpenAI(openaiCfg), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.LLMProvider)
	}
}
