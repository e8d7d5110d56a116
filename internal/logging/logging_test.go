package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw     string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"DEBUG", slog.LevelDebug, false},
		{"", slog.LevelInfo, false},
		{"info", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{" error ", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseLevel(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetup_NoFile(t *testing.T) {
	logger, err := Setup(Options{})
	require.NoError(t, err)

	logger.Info("dropped")

	assert.Equal(t, slog.LevelInfo, logger.Level())
	assert.NoError(t, logger.Close())
}

func TestSetup_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "selectmenu.log")

	logger, err := Setup(Options{File: path, Level: "warn"})
	require.NoError(t, err)

	logger.Info("below level")
	logger.Warn("option committed", "value", "apple")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "below level")
	assert.Contains(t, string(data), `"msg":"option committed"`)
	assert.Contains(t, string(data), `"value":"apple"`)
}

func TestSetup_SetLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selectmenu.log")
	logger, err := Setup(Options{File: path, Level: "error"})
	require.NoError(t, err)

	logger.SetLevel(slog.LevelDebug)
	logger.Debug("now visible")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "now visible")
}

func TestSetup_BadLevel(t *testing.T) {
	_, err := Setup(Options{Level: "loud"})

	assert.Error(t, err)
}
