// Package config reads process settings from the environment and installs
// the default slog logger.
package config

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Level     string
	LogLevel  string
	LogFormat string
	Debug     bool
}

func Load() *Config {
	return &Config{
		Level:     getEnv("PLATFORMER_LEVEL", "warrior"),
		LogLevel:  getEnv("PLATFORMER_LOG_LEVEL", "info"),
		LogFormat: getEnv("PLATFORMER_LOG_FORMAT", "text"),
		Debug:     getEnvBool("PLATFORMER_DEBUG", false),
	}
}

// NewLogger builds a logger writing to w with the configured level and
// format. Unknown levels fall back to info, unknown formats to text.
func NewLogger(cfg *Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.LogLevel)}

	var h slog.Handler
	switch strings.ToLower(cfg.LogFormat) {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}

// SetupLogger installs a stderr logger as the slog default and returns it.
func SetupLogger(cfg *Config) *slog.Logger {
	logger := NewLogger(cfg, os.Stderr)
	slog.SetDefault(logger)
	return logger
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
