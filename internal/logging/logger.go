package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger writing to stderr
func New(cfg Config) zerolog.Logger {
	return newWithWriter(cfg, consoleOrJSON(cfg, os.Stderr))
}

func consoleOrJSON(cfg Config, out io.Writer) io.Writer {
	if cfg.Format == "console" {
		return zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
		}
	}
	// JSON is the default zerolog format
	return out
}

func newWithWriter(cfg Config, w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel converts a level name to a zerolog level.
// Unknown names fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewFromConfigValues creates a logger from raw config strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" || format == "console" {
		cfg.Format = format
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// FLASHMARK_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// FLASHMARK_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("FLASHMARK_LOG_LEVEL"), os.Getenv("FLASHMARK_LOG_FORMAT"))
}
