package main

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sandevgo/memobot/internal/config"
	"github.com/sandevgo/memobot/internal/storage/jsonfile"
	"github.com/spf13/cobra"
)

var (
	eventType    string
	eventContent string
	eventMeta    []string
)

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Manage recorded events",
}

var eventRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a typed event",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		_ = godotenv.Load()
		cfg := config.NewAppConfig(ctx)
		events := jsonfile.NewEvents(jsonfile.NewStore(cfg.GetDataPath()))

		metadata := map[string]any{}
		for _, pair := range eventMeta {
			key, value, found := strings.Cut(pair, "=")
			if !found || key == "" {
				return fmt.Errorf("invalid --meta value %q, expected key=value", pair)
			}
			metadata[key] = value
		}

		event, err := events.Record(ctx, eventType, eventContent, metadata)
		if err != nil {
			return err
		}

		fmt.Printf("recorded %s event %s\n", event.Type, event.ID)
		return nil
	},
}

var eventListCmd = &cobra.Command{
	Use:   "list",
	Short: "List events of a given type",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		_ = godotenv.Load()
		cfg := config.NewAppConfig(ctx)
		events := jsonfile.NewEvents(jsonfile.NewStore(cfg.GetDataPath()))

		list, err := events.ByType(ctx, eventType)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Printf("no %s events recorded\n", eventType)
			return nil
		}

		for _, event := range list {
			fmt.Printf("%s  %s  %s\n", event.Timestamp.Format("2006-01-02 15:04"), event.ID, event.Content)
		}
		return nil
	},
}

func init() {
	eventRecordCmd.Flags().StringVar(&eventType, "type", "", "event type, e.g. vitamin or doctor")
	eventRecordCmd.Flags().StringVar(&eventContent, "content", "", "event content")
	eventRecordCmd.Flags().StringSliceVar(&eventMeta, "meta", nil, "metadata as key=value, repeatable")
	_ = eventRecordCmd.MarkFlagRequired("type")
	_ = eventRecordCmd.MarkFlagRequired("content")

	eventListCmd.Flags().StringVar(&eventType, "type", "", "event type to list")
	_ = eventListCmd.MarkFlagRequired("type")

	eventCmd.AddCommand(eventRecordCmd)
	eventCmd.AddCommand(eventListCmd)
	rootCmd.AddCommand(eventCmd)
}
