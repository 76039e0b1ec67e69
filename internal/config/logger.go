package config

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
)

// SetupLogger installs the default slog logger. Text output is used on a
// terminal or when asked for; JSON otherwise.
func SetupLogger(cfg LoggingConfig) *slog.Logger {
	logger := NewLogger(cfg, os.Stdout, isatty.IsTerminal(os.Stdout.Fd()))
	slog.SetDefault(logger)
	return logger
}

// NewLogger builds a logger writing to w.
func NewLogger(cfg LoggingConfig, w io.Writer, terminal bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.Level)}

	useText := terminal
	switch cfg.Format {
	case "text":
		useText = true
	case "json":
		useText = false
	}

	if useText {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func parseLogLevel(level string) slog.Level {
	switch level {
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
