// Package logging configures slog for the polint CLI.
//
// The linter is a short-lived process whose report goes to stdout; all
// diagnostics go to stderr so the two streams can be consumed separately.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config contains logging configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string
	// Output is the diagnostics destination. Nil means stderr.
	Output io.Writer
}

// DefaultConfig returns the default CLI logging configuration.
func DefaultConfig() Config {
	return Config{Level: "info"}
}

// Setup builds a logger from cfg.
func Setup(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	handler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	})
	return slog.New(handler)
}

// SetupDefault installs the process-wide logger. Verbose wins over quiet.
func SetupDefault(verbose, quiet bool) *slog.Logger {
	cfg := DefaultConfig()
	switch {
	case verbose:
		cfg.Level = "debug"
	case quiet:
		cfg.Level = "error"
	}
	logger := Setup(cfg)
	slog.SetDefault(logger)
	return logger
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
