package backup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sandevgo/memobot/internal/config"
	"github.com/sandevgo/memobot/pkg/log"
)

// Service snapshots the persisted JSON documents on a cron schedule so a
// corrupted or lost data file costs at most one day of records.
type Service struct {
	appCfg *config.AppConfig
	cfg    *config.BackupConfig
	cron   *cron.Cron
}

func NewService(appCfg *config.AppConfig, cfg *config.BackupConfig) *Service {
	return &Service{
		appCfg: appCfg,
		cfg:    cfg,
		cron:   cron.New(cron.WithLocation(time.UTC)),
	}
}

func (s *Service) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)

	_, err := s.cron.AddFunc(s.cfg.Schedule, func() {
		if err := s.Run(ctx); err != nil {
			logger.Error().Err(err).Msg("scheduled backup failed")
		}
	})
	if err != nil {
		return fmt.Errorf("invalid backup schedule %q: %w", s.cfg.Schedule, err)
	}

	s.cron.Start()
	logger.Info().Str("schedule", s.cfg.Schedule).Msg("backup scheduler started")
	return nil
}

func (s *Service) Shutdown(ctx context.Context) error {
	stopped := s.cron.Stop()
	<-stopped.Done()
	return nil
}

// Run takes one snapshot of every data document and prunes old snapshots.
func (s *Service) Run(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	stamp := time.Now().UTC().Format("20060102-150405")

	if err := os.MkdirAll(s.appCfg.GetBackupPath(), 0755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	for _, src := range []string{s.appCfg.GetHistoryPath(), s.appCfg.GetEventsPath()} {
		data, err := os.ReadFile(src)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("failed to read %s: %w", src, err)
		}

		base := strings.TrimSuffix(filepath.Base(src), ".json")
		dst := filepath.Join(s.appCfg.GetBackupPath(), fmt.Sprintf("%s-%s.json", base, stamp))
		if err := os.WriteFile(dst, data, 0644); err != nil {
			return fmt.Errorf("failed to write snapshot %s: %w", dst, err)
		}
		logger.Debug().Str("snapshot", dst).Msg("snapshot written")

		if err := s.prune(base); err != nil {
			logger.Warn().Err(err).Str("document", base).Msg("failed to prune old snapshots")
		}
	}
	return nil
}

// prune keeps only the newest Retain snapshots of one document.
func (s *Service) prune(base string) error {
	pattern := filepath.Join(s.appCfg.GetBackupPath(), base+"-*.json")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return err
	}
	if s.cfg.Retain <= 0 || len(matches) <= s.cfg.Retain {
		return nil
	}

	// Timestamped names sort chronologically.
	sort.Strings(matches)
	for _, stale := range matches[:len(matches)-s.cfg.Retain] {
		if err := os.Remove(stale); err != nil {
			return err
		}
	}
	return nil
}
