package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchpro/internal/config"
)

func TestNewWritesToConfiguredFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "searchpro.log")

	logger, err := New(config.LogSettings{Level: "debug", Format: "json", File: path})
	require.NoError(t, err)

	logger.Debug("search requested")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "search requested")
}

func TestNewRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "searchpro.log")

	logger, err := New(config.LogSettings{Level: "error", Format: "console", File: path})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Error("shown")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestNewWithoutFileIsNop(t *testing.T) {
	logger, err := New(config.LogSettings{})
	require.NoError(t, err)
	assert.NotNil(t, logger)
	logger.Info("discarded")
}
