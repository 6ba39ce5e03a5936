// Package logging wires zerolog for corkboard and carries the logger in context.
package logging

import (
	"fmt"
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

// FileConfig controls where log lines end up when the terminal is busy
// rendering the board.
type FileConfig struct {
	Enabled       bool
	Dir           string
	MaxSizeMB     int
	MaxBackups    int
	WriteToStderr bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// ParseLevel converts a level name to a zerolog level, defaulting to info.
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

// New creates a new zerolog logger writing to out.
func New(cfg Config, out io.Writer) zerolog.Logger {
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
			NoColor:    out != os.Stderr,
		}
	}

	return zerolog.New(out).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewFromEnv creates a stderr logger based on environment variables
// CORKBOARD_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// CORKBOARD_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	cfg := DefaultConfig()

	if level := os.Getenv("CORKBOARD_LOG_LEVEL"); level != "" {
		cfg.Level = ParseLevel(level)
	}
	if format := os.Getenv("CORKBOARD_LOG_FORMAT"); format == "json" || format == "console" {
		cfg.Format = format
	}

	return New(cfg, os.Stderr)
}

// NewWithFile creates a logger that writes to a rotating file and optionally
// stderr. The returned cleanup closes the file. With file logging disabled and
// stderr off, the logger is a no-op.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	var writers []io.Writer
	cleanup := func() {}

	if fileCfg.Enabled {
		if err := os.MkdirAll(fileCfg.Dir, 0o755); err != nil {
			return zerolog.Nop(), cleanup, fmt.Errorf("create log dir: %w", err)
		}
		rotator, err := NewLogRotator(fileCfg.Dir, "corkboard.log", fileCfg.MaxSizeMB, fileCfg.MaxBackups)
		if err != nil {
			return zerolog.Nop(), cleanup, err
		}
		writers = append(writers, rotator)
		cleanup = func() { _ = rotator.Close() }
	}
	if fileCfg.WriteToStderr {
		writers = append(writers, os.Stderr)
	}

	switch len(writers) {
	case 0:
		return zerolog.Nop(), cleanup, nil
	case 1:
		return New(cfg, writers[0]), cleanup, nil
	default:
		return New(cfg, io.MultiWriter(writers...)), cleanup, nil
	}
}
