// Package logging builds the process zerolog logger and carries it
// through contexts.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config selects the level and output shape of a logger.
type Config struct {
	Level      zerolog.Level
	Format     string // "console" or "json"
	TimeFormat string
}

// DefaultConfig is info-level console output.
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// New builds a logger writing to stderr. Console format wraps it in
// zerolog's human-readable writer, json leaves the raw event stream.
func New(cfg Config) zerolog.Logger {
	var out io.Writer = os.Stderr
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: cfg.TimeFormat}
	}
	return zerolog.New(out).Level(cfg.Level).With().Timestamp().Logger()
}

// NewFromConfigValues builds a logger from the config file's logging
// section. Unknown formats keep the console default.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" || format == "console" {
		cfg.Format = format
	}
	return New(cfg)
}

// NewFromEnv builds a logger from WRING_LOG_LEVEL and WRING_LOG_FORMAT
// alone, for code paths that run before the config file is read.
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("WRING_LOG_LEVEL"), os.Getenv("WRING_LOG_FORMAT"))
}
