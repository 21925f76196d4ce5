package backup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sandevgo/memobot/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(t *testing.T, retain int) (*Service, *config.AppConfig) {
	t.Helper()
	appCfg := &config.AppConfig{DataPath: t.TempDir()}
	return NewService(appCfg, &config.BackupConfig{Schedule: "0 3 * * *", Retain: retain}), appCfg
}

func TestRun_SnapshotsDocuments(t *testing.T) {
	svc, appCfg := testService(t, 7)
	require.NoError(t, os.WriteFile(appCfg.GetHistoryPath(), []byte(`[]`), 0644))
	require.NoError(t, os.WriteFile(appCfg.GetEventsPath(), []byte(`{}`), 0644))

	require.NoError(t, svc.Run(context.Background()))

	history, err := filepath.Glob(filepath.Join(appCfg.GetBackupPath(), "chat_history-*.json"))
	require.NoError(t, err)
	assert.Len(t, history, 1)

	events, err := filepath.Glob(filepath.Join(appCfg.GetBackupPath(), "events-*.json"))
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestRun_MissingDocumentsSkipped(t *testing.T) {
	svc, appCfg := testService(t, 7)

	require.NoError(t, svc.Run(context.Background()))

	matches, err := filepath.Glob(filepath.Join(appCfg.GetBackupPath(), "*.json"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestPrune_KeepsNewest(t *testing.T) {
	svc, appCfg := testService(t, 2)
	require.NoError(t, os.MkdirAll(appCfg.GetBackupPath(), 0755))

	for i := 0; i < 5; i++ {
		name := fmt.Sprintf("events-2025010%d-030000.json", i+1)
		require.NoError(t, os.WriteFile(filepath.Join(appCfg.GetBackupPath(), name), []byte(`{}`), 0644))
	}

	require.NoError(t, svc.prune("events"))

	matches, err := filepath.Glob(filepath.Join(appCfg.GetBackupPath(), "events-*.json"))
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Contains(t, matches[0], "20250104")
	assert.Contains(t, matches[1], "20250105")
}

func TestStart_RejectsBadSchedule(t *testing.T) {
	appCfg := &config.AppConfig{DataPath: t.TempDir()}
	svc := NewService(appCfg, &config.BackupConfig{Schedule: "not a schedule", Retain: 7})

	require.Error(t, svc.Start(context.Background()))
}
