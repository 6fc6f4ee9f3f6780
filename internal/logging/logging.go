// Package logging provides structured logging infrastructure for tink.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tink-dev/tink/internal/config"
)

// NewFromConfig creates a new slog.Logger based on configuration.
func NewFromConfig(cfg *config.Config, baseDir string) (*slog.Logger, io.Closer, error) {
	return newFromConfig(cfg, baseDir, parseLevel(cfg.Logging.Level))
}

// NewVerbose is NewFromConfig with the level forced to debug.
func NewVerbose(cfg *config.Config, baseDir string) (*slog.Logger, io.Closer, error) {
	return newFromConfig(cfg, baseDir, slog.LevelDebug)
}

func newFromConfig(cfg *config.Config, baseDir string, level slog.Level) (*slog.Logger, io.Closer, error) {
	handler := newHandler(cfg.Logging.Format, os.Stderr, level)

	// If a file is configured, use a multi-writer
	var closer io.Closer
	if logPath := cfg.LogFile(baseDir); logPath != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return nil, nil, err
		}

		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, err
		}
		closer = file

		multi := io.MultiWriter(os.Stderr, file)
		handler = newHandler(cfg.Logging.Format, multi, level)
	}

	return slog.New(handler), closer, nil
}

// NewForTest creates a silent logger for tests.
func NewForTest() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// parseLevel converts config log level to slog.Level.
func parseLevel(level config.LogLevel) slog.Level {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelInfo:
		return slog.LevelInfo
	case config.LogLevelWarn:
		return slog.LevelWarn
	case config.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// newHandler creates a slog.Handler based on format.
func newHandler(format config.LogFormat, w io.Writer, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	switch format {
	case config.LogFormatJSON:
		return slog.NewJSONHandler(w, opts)
	default:
		return slog.NewTextHandler(w, opts)
	}
}

// WithFields returns a logger with the given fields added.
func WithFields(logger *slog.Logger, fields ...any) *slog.Logger {
	return logger.With(fields...)
}

// WithTarget returns a logger with editor context.
func WithTarget(logger *slog.Logger, target string, path string) *slog.Logger {
	return logger.With("target", target, "path", path)
}

// WithEntry returns a logger with launch entry context.
func WithEntry(logger *slog.Logger, key string) *slog.Logger {
	return logger.With("entry", key)
}
