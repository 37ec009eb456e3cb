package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/burlang/burlang/internal/setup/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))
	t.Chdir(dir)
}

func TestLoadConfigDefaults(t *testing.T) {
	writeConfig(t, "version = 1\n")

	cfg, dir, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ".", dir)

	assert.Equal(t, "info", cfg.Debug.LogLevel)
	assert.Equal(t, int64(100), cfg.API.Rewards.SentenceSuggested)
	assert.Equal(t, int64(100), cfg.API.Rewards.TranslationSuggested)
	assert.Equal(t, int64(100), cfg.API.Rewards.VoteCast)
	assert.Equal(t, int64(30), cfg.API.Rewards.WordSuggested)
	assert.Equal(t, int64(10), cfg.API.Rewards.WordContributed)
	assert.Equal(t, int64(30), cfg.API.Rewards.WordAccepted)
	assert.Equal(t, int32(5), cfg.API.Consensus.PromotionThreshold)
	assert.Equal(t, 15, cfg.API.Consensus.WatcherTTLSeconds)
	assert.Equal(t, 30, cfg.Worker.StatsRetentionDays)
}

func TestLoadConfigOverrides(t *testing.T) {
	writeConfig(t, `
version = 1

[api.rewards]
sentence_suggested = 50
word_contributed = 5

[api.consensus]
promotion_threshold = 3
watcher_ttl_seconds = 60
`)

	cfg, _, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, int64(50), cfg.API.Rewards.SentenceSuggested)
	assert.Equal(t, int64(5), cfg.API.Rewards.WordContributed)
	assert.Equal(t, int32(3), cfg.API.Consensus.PromotionThreshold)
	assert.Equal(t, 60, cfg.API.Consensus.WatcherTTLSeconds)
	// Untouched settings still get defaults
	assert.Equal(t, int64(100), cfg.API.Rewards.VoteCast)
}

func TestLoadConfigVersionMismatch(t *testing.T) {
	writeConfig(t, "version = 99\n")

	_, _, err := config.LoadConfig()
	require.ErrorIs(t, err, config.ErrConfigVersionMismatch)
}

func TestLoadConfigMissing(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	_, _, err := config.LoadConfig()
	require.ErrorIs(t, err, config.ErrConfigFileNotFound)
}
