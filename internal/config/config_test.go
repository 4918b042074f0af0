package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	svc := NewConfigService(filepath.Join(t.TempDir(), "config.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigService(path)

	cfg := DefaultConfig()
	cfg.CatalogPath = "/data/tickers.toml"
	cfg.ResultLimit = 5
	cfg.UISettings.ShowSymbols = false
	require.NoError(t, svc.Save(cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "result_limit = 5")

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFromPathKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("result_limit = 3\n"), 0644))

	cfg, err := NewConfigService(path).LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.ResultLimit)
	assert.Equal(t, "tickerpick.log", cfg.LogFile)
	assert.Equal(t, "Search ticker or company", cfg.UISettings.Placeholder)
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("result_limit = \"ten"), 0644))

	_, err := NewConfigService(path).Load()
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TICKERPICK_RESULT_LIMIT", "4")
	t.Setenv("TICKERPICK_CATALOG_PATH", "/tmp/tickers.json")
	t.Setenv("TICKERPICK_LOG_LEVEL", "debug")

	cfg, err := NewConfigService(filepath.Join(t.TempDir(), "config.toml")).Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.ResultLimit)
	assert.Equal(t, "/tmp/tickers.json", cfg.CatalogPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "tickerpick.log", cfg.LogFile)
}

func TestInvalidLimit(t *testing.T) {
	t.Setenv("TICKERPICK_RESULT_LIMIT", "0")

	_, err := NewConfigService(filepath.Join(t.TempDir(), "config.toml")).Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestEnvParseError(t *testing.T) {
	t.Setenv("TICKERPICK_RESULT_LIMIT", "many")

	cfg := DefaultConfig()
	assert.Error(t, ApplyEnv(cfg))
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "config.toml", filepath.Base(DefaultPath()))
	assert.Equal(t, "tickerpick", filepath.Base(filepath.Dir(DefaultPath())))
	assert.Equal(t, DefaultPath(), NewConfigService("").Path())
}
