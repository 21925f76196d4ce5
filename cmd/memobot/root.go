package main

import (
	"context"
	"os"

	"github.com/sandevgo/memobot/internal/config"
	"github.com/sandevgo/memobot/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "memobot",
	Short: "A personal assistant that remembers",
	Long:  `memobot is a single-user conversational assistant with a local fact store and a generative-language backend.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
}

func setupLogger(ctx context.Context) (context.Context, func()) {
	isDebug := debug || config.IsDebug()
	return log.NewContextWithLogger(ctx, isDebug)
}
