package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every XDG directory at a fresh temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv(EnvDBPath, "")
	t.Setenv(EnvLocale, "")
	t.Setenv(EnvTheme, "")
	return root
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	isolate(t)

	assert.False(t, Exists())
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	root := isolate(t)

	cfg := DefaultConfig()
	cfg.General.DefaultDays = 30
	cfg.General.Locale = "es"
	cfg.Appearance.Theme = "glacier"
	cfg.TUI.AutoRefresh = true
	cfg.TUI.RefreshIntervalSec = 60
	require.NoError(t, Save(cfg))

	assert.True(t, Exists())
	assert.Equal(t, filepath.Join(root, "config", "waterlog", "config.toml"), Path())

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadInvalidTOML(t *testing.T) {
	isolate(t)
	require.NoError(t, os.MkdirAll(Dir(), 0o755))
	require.NoError(t, os.WriteFile(Path(), []byte("[general\ndefault_days = "), 0o600))

	cfg, err := Load()
	assert.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadClampsDays(t *testing.T) {
	isolate(t)
	require.NoError(t, os.MkdirAll(Dir(), 0o755))
	require.NoError(t, os.WriteFile(Path(), []byte("[general]\ndefault_days = 0\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.General.DefaultDays)
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv(EnvDBPath, "/tmp/custom.db")
	t.Setenv(EnvLocale, "es")
	t.Setenv(EnvTheme, "terminal")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", cfg.DBPath())
	assert.Equal(t, "es", cfg.General.Locale)
	assert.Equal(t, "terminal", cfg.Appearance.Theme)
}

func TestLoadEnvFile(t *testing.T) {
	isolate(t)
	require.NoError(t, os.MkdirAll(Dir(), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(Dir(), ".env"), []byte(EnvLocale+"=es\n"), 0o600))
	// godotenv.Load only fills unset variables.
	require.NoError(t, os.Unsetenv(EnvLocale))

	require.NoError(t, LoadEnv())
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "es", cfg.General.Locale)
}

func TestLoadEnvMissingFile(t *testing.T) {
	isolate(t)
	assert.NoError(t, LoadEnv())
}

func TestDefaultPaths(t *testing.T) {
	root := isolate(t)
	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join(root, "data", "waterlog", "waterlog.db"), cfg.DBPath())
	assert.Equal(t, filepath.Join(root, "state", "waterlog", "waterlog.log"), cfg.LogPath())

	cfg.General.DBPath = "/srv/water.db"
	cfg.Log.File = "/var/log/water.log"
	assert.Equal(t, "/srv/water.db", cfg.DBPath())
	assert.Equal(t, "/var/log/water.log", cfg.LogPath())
}
