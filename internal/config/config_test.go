package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("STARTERKIT_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "My App", cfg.UI.AppTitle)
	require.Equal(t, "(min-width: 60px)", cfg.UI.WideQuery)
	require.Equal(t, "static-content", cfg.Routing.DefaultPage)
	require.False(t, cfg.Routing.NotFoundFallback)
	require.Equal(t, 3*time.Second, cfg.Snackbar.Duration)
	require.Equal(t, 5*time.Second, cfg.Network.ProbeInterval)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("STARTERKIT_UI_APP_TITLE", "Cheese Shop")
	t.Setenv("STARTERKIT_ROUTING_NOT_FOUND_FALLBACK", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "Cheese Shop", cfg.UI.AppTitle)
	require.True(t, cfg.Routing.NotFoundFallback)
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := Load(path)
	require.NoError(t, err)
	cfg.UI.AppTitle = "Saved"
	cfg.Snackbar.Duration = 1500 * time.Millisecond
	require.NoError(t, Save(cfg, path))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Saved", got.UI.AppTitle)
	require.Equal(t, 1500*time.Millisecond, got.Snackbar.Duration)
	require.Equal(t, cfg.Database.Path, got.Database.Path)
}
