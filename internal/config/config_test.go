package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("data/snapshot.json")
	cfg.Reminders.PayableListLimit = 12
	cfg.History.Dir = "audit"

	path := filepath.Join(t.TempDir(), "findash.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Timezone, got.Timezone)
	assert.Equal(t, cfg.Snapshot.Path, got.Snapshot.Path)
	assert.Equal(t, 12, got.Reminders.PayableListLimit)
	assert.Equal(t, cfg.Reminders.EventListLimit, got.Reminders.EventListLimit)
	assert.Equal(t, cfg.Reminders.ReconciliationListLimit, got.Reminders.ReconciliationListLimit)
	assert.Equal(t, cfg.History.Enabled, got.History.Enabled)
	assert.Equal(t, "audit", got.History.Dir)
}

func TestDefaults(t *testing.T) {
	cfg := Default("snapshot.json")

	assert.Equal(t, "America/Sao_Paulo", cfg.Timezone)
	assert.Equal(t, "snapshot.json", cfg.Snapshot.Path)
	assert.Equal(t, 8, cfg.Reminders.PayableListLimit)
	assert.Equal(t, 8, cfg.Reminders.EventListLimit)
	assert.Equal(t, 8, cfg.Reminders.ReconciliationListLimit)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, ".", cfg.History.Dir)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("data/snapshot.json")
	path := filepath.Join(t.TempDir(), "findash.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "timezone: America/Sao_Paulo")
	assert.Contains(t, contents, "path: data/snapshot.json")
	assert.Contains(t, contents, "payable_list_limit: 8")
	assert.Contains(t, contents, "enabled: true")
}
