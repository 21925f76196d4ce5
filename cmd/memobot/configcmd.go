package main

import (
	"fmt"
	"os"

	"github.com/sandevgo/memobot/internal/config"
	"github.com/sandevgo/memobot/pkg/env"
	"github.com/spf13/cobra"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage memobot configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a .env file with the effective configuration",
	Long:  `Resolves the current configuration from the environment and defaults, then writes it to .env as a starting point for local tuning.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		if _, err := os.Stat(".env"); err == nil && !configForce {
			return fmt.Errorf(".env already exists, use --force to overwrite")
		}

		openaiCfg := config.NewOpenAIConfig(ctx)

		var content string
		for _, c := range []any{
			config.NewAppConfig(ctx),
			config.NewOllamaConfig(ctx),
			openaiCfg,
			config.NewBackupConfig(ctx),
		} {
			part, err := env.MarshalEnv(c)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			content += part
		}
		if openaiCfg.APIKey == "" {
			// Placeholder so switching to LLM_PROVIDER=openai only needs
			// filling in the key.
			content += "# OPENAI_API_KEY=\n"
		}

		if err := os.WriteFile(".env", []byte(content), 0600); err != nil {
			return fmt.Errorf("failed to write .env: %w", err)
		}

		fmt.Println("wrote .env")
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing .env file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
