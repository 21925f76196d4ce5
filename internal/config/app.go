package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/memobot/pkg/log"
)

type AppConfig struct {
	DataPath string `env:"MEMOBOT_DATA_PATH" envDefault:".memobot"`
	Port     int    `env:"MEMOBOT_PORT" envDefault:"5000"`

	// Allow selecting the generation provider
	LLMProvider string `env:"LLM_PROVIDER" envDefault:"ollama"`

	// Context Management
	ContextWindowSize int `env:"CONTEXT_WINDOW_SIZE" envDefault:"15"`
	PromptTokenBudget int `env:"PROMPT_TOKEN_BUDGET" envDefault:"3072"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetDataPath() string {
	return c.DataPath
}

func (c AppConfig) GetHistoryPath() string {
	return filepath.Join(c.DataPath, "chat_history.json")
}

func (c AppConfig) GetEventsPath() string {
	return filepath.Join(c.DataPath, "events.json")
}

func (c AppConfig) GetBackupPath() string {
	return filepath.Join(c.DataPath, "backups")
}
