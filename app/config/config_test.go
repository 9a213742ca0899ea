package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfigFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("logger:\n  level: warn\nrender:\n  null_literal: \"<null>\"\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := NewConfigFromPath(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Logger)
	require.Equal(t, LogLevelWarn, cfg.Logger.Level)
	require.Equal(t, "<null>", cfg.Render.NullLiteral)
}

func TestNewConfigFromPathDefaultsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logger: {}\n"), 0644))

	cfg, err := NewConfigFromPath(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Logger)
	require.Equal(t, LogLevelInfo, cfg.Logger.Level)
}

func TestNewConfigFromPathMissingFile(t *testing.T) {
	_, err := NewConfigFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestNewConfigFromPathBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logger: [not a mapping"), 0644))

	_, err := NewConfigFromPath(path)
	require.Error(t, err)
}
