package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/memobot/pkg/log"
)

type BackupConfig struct {
	Schedule string `env:"BACKUP_SCHEDULE" envDefault:"0 3 * * *"`
	Retain   int    `env:"BACKUP_RETAIN" envDefault:"7"`
}

func NewBackupConfig(ctx context.Context) *BackupConfig {
	c := &BackupConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Backup config")
	}
	return c
}
