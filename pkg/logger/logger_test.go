package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewReopenableWriteSyncer(t *testing.T) {
	t.Run("Success File created", func(t *testing.T) {
		logFilePath := filepath.Join(t.TempDir(), "app.log")
		ws, err := NewReopenableWriteSyncer(logFilePath)
		require.NoError(t, err)
		require.NotNil(t, ws)
		defer ws.Close()
		_, err = os.Stat(logFilePath)
		assert.NoError(t, err)
	})

	t.Run("Failure Path is a directory", func(t *testing.T) {
		ws, err := NewReopenableWriteSyncer(t.TempDir())
		assert.Error(t, err)
		assert.Nil(t, ws)
	})
}

func TestReopenableWriteSyncer_WriteAndReload(t *testing.T) {
	tempDir := t.TempDir()
	logFilePath := filepath.Join(tempDir, "app.log")
	rotatedLogFilePath := filepath.Join(tempDir, "app.log.1")

	ws, err := NewReopenableWriteSyncer(logFilePath)
	require.NoError(t, err)
	defer ws.Close()

	_, err = ws.Write([]byte("firstLine\n"))
	require.NoError(t, err)

	require.NoError(t, os.Rename(logFilePath, rotatedLogFilePath))
	require.NoError(t, ws.Reload())

	_, err = ws.Write([]byte("secondLine\n"))
	require.NoError(t, err)
	require.NoError(t, ws.Sync())

	rotated, err := os.ReadFile(rotatedLogFilePath)
	require.NoError(t, err)
	assert.Equal(t, "firstLine\n", string(rotated))

	current, err := os.ReadFile(logFilePath)
	require.NoError(t, err)
	assert.Equal(t, "secondLine\n", string(current))
}

func TestNewLogger(t *testing.T) {
	ws, err := NewReopenableWriteSyncer(os.DevNull)
	require.NoError(t, err)
	defer ws.Close()

	testCases := []struct {
		name          string
		logLevel      string
		expectedLevel zapcore.Level
	}{
		{"debug level", "debug", zap.DebugLevel},
		{"info level", "info", zap.InfoLevel},
		{"warn level", "warn", zap.WarnLevel},
		{"error level", "error", zap.ErrorLevel},
		{"fatal level", "fatal", zap.FatalLevel},
		{"unknown level falls back to info", "verbose", zap.InfoLevel},
		{"empty level falls back to info", "", zap.InfoLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLogger(tc.logLevel, ws)
			require.NotNil(t, l)
			assert.True(t, l.Core().Enabled(tc.expectedLevel), "expected level %s should be enabled", tc.expectedLevel)
		})
	}
}
