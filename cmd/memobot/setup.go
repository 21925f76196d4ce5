package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/sandevgo/memobot/internal/config"
	"github.com/sandevgo/memobot/internal/core"
	"github.com/sandevgo/memobot/internal/providers/llm"
	"github.com/sandevgo/memobot/internal/service/assistant"
	"github.com/sandevgo/memobot/internal/service/backup"
	"github.com/sandevgo/memobot/internal/storage/jsonfile"
	"github.com/sandevgo/memobot/internal/transport/httpserver"
	"github.com/sandevgo/memobot/pkg/log"
	"github.com/sandevgo/memobot/pkg/retry"
	"github.com/sandevgo/memobot/pkg/srv"
)

// NewServices wires the whole application and returns the long-running
// services in start order.
func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)

	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("no .env file found, relying on environment")
	}

	cfg := config.NewAppConfig(ctx)

	store := jsonfile.NewStore(cfg.GetDataPath())
	history := jsonfile.NewHistory(store)
	events := jsonfile.NewEvents(store)

	generator, err := llm.NewGenerator(ctx, cfg)
	if err != nil {
		// No backend is not fatal: the assistant still answers from the
		// event store and the offline responder.
		logger.Error().Err(err).Msg("generation backend unavailable, running degraded")
		generator = nil
	}
	probeGenerator(ctx, generator)

	a := assistant.New(cfg, history, events, assistant.NewGateway(cfg, generator))

	backupSvc := backup.NewService(cfg, config.NewBackupConfig(ctx))

	return []srv.Service{
		httpserver.NewServer(ctx, cfg, a, generator != nil),
		backupSvc,
		// Snapshot on shutdown so stops between scheduled runs still
		// capture the latest state.
		srv.NewCleanup(func() error {
			return backupSvc.Run(context.WithoutCancel(ctx))
		}),
	}
}

// probeGenerator checks backend reachability in the background so startup
// is never blocked on a slow or absent daemon.
func probeGenerator(ctx context.Context, generator core.Generator) {
	ollama, ok := generator.(*llm.Ollama)
	if !ok {
		return
	}

	go func() {
		logger := log.FromCtx(ctx)
		err := retry.Do(ctx, nil, func() error {
			return ollama.Ping(ctx)
		})
		if err != nil {
			logger.Warn().Err(err).Msg("ollama is not reachable, replies will fall back to offline mode")
			return
		}
		logger.Info().Msg("ollama is reachable")
	}()
}
