package logging

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riordanpawley/starport/internal/config"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "logs", "starport.log")

	logger, closer, err := New(config.LogConfig{Path: path, Level: "info", MaxSizeMB: 1})
	require.NoError(t, err)

	logger.Debug("hidden record")
	logger.Info("teleported", "spot", 3)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=teleported")
	assert.Contains(t, string(data), "spot=3")
	assert.NotContains(t, string(data), "hidden record")
}

func TestNewDebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starport.log")

	logger, closer, err := New(config.LogConfig{Path: path, Level: "debug"})
	require.NoError(t, err)

	logger.Debug("layout", "elements", 2)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "level=DEBUG")
}

func TestNewEmptyPath(t *testing.T) {
	_, _, err := New(config.LogConfig{})

	assert.Error(t, err)
}

func TestNewUnwritableDirectory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	_, _, err := New(config.LogConfig{Path: filepath.Join(blocker, "starport.log")})

	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	logger := Discard()

	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
	logger.Error("dropped")
}
