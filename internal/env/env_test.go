package env

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenUnset(t *testing.T) {
	t.Setenv("YAK_HOME", "")
	t.Setenv("YAK_LOG", "")
	t.Setenv("YAK_VERSION", "")

	cfg, logger := Load()
	require.NotEmpty(t, cfg.Home)
	require.Equal(t, slog.LevelInfo, cfg.LogLevel)
	require.Equal(t, Version, cfg.Version)
	require.NotNil(t, logger)
}

func TestLoadHonorsOverrides(t *testing.T) {
	t.Setenv("YAK_HOME", "/tmp/custom-yak-home")
	t.Setenv("YAK_LOG", "debug")
	t.Setenv("YAK_VERSION", "9.9.9")

	cfg, _ := Load()
	require.Equal(t, "/tmp/custom-yak-home", cfg.Home)
	require.Equal(t, slog.LevelDebug, cfg.LogLevel)
	require.Equal(t, "9.9.9", cfg.Version)
}
