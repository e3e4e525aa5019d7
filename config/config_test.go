package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PLATFORMER_LEVEL", "")
	t.Setenv("PLATFORMER_LOG_LEVEL", "")
	t.Setenv("PLATFORMER_LOG_FORMAT", "")
	t.Setenv("PLATFORMER_DEBUG", "")

	assert.Equal(t, &Config{Level: "warrior", LogLevel: "info", LogFormat: "text"}, Load())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PLATFORMER_LEVEL", "cave")
	t.Setenv("PLATFORMER_LOG_LEVEL", "debug")
	t.Setenv("PLATFORMER_LOG_FORMAT", "json")
	t.Setenv("PLATFORMER_DEBUG", "true")

	assert.Equal(t, &Config{Level: "cave", LogLevel: "debug", LogFormat: "json", Debug: true}, Load())
}

func TestLoadIgnoresBadBool(t *testing.T) {
	t.Setenv("PLATFORMER_DEBUG", "sometimes")
	assert.False(t, Load().Debug)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"DEBUG": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"loud":  slog.LevelInfo,
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, ParseLevel(in))
		})
	}
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&Config{LogLevel: "warn", LogFormat: "json"}, &buf)

	logger.Info("hidden")
	logger.Warn("landed", "x", 12)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "landed", rec["msg"])
	assert.Equal(t, float64(12), rec["x"])
}

func TestNewLoggerText(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&Config{LogLevel: "debug"}, &buf)
	logger.Debug("frame", "n", 3)
	assert.Contains(t, buf.String(), "msg=frame")
	assert.Contains(t, buf.String(), "n=3")
}
