package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds logger configuration with environment variable support.
type Config struct {
	Level     string `env:"LOG_LEVEL" envDefault:"info"`
	Format    string `env:"LOG_FORMAT" envDefault:"text"`
	Output    string `env:"LOG_OUTPUT" envDefault:"stderr"`
	AddSource bool   `env:"LOG_ADD_SOURCE" envDefault:"false"`
}

// New builds a *slog.Logger from the configuration, writing to w.
// A nil writer resolves from cfg.Output (stdout or stderr). Unknown
// level, format, or output values fall back to info, text, and stderr
// instead of failing, so a misconfigured environment still produces
// logs.
func New(cfg Config, w io.Writer) *slog.Logger {
	if w == nil {
		w = parseOutput(cfg.Output)
	}

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: cfg.AddSource,
	}

	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseOutput(output string) io.Writer {
	switch strings.ToLower(output) {
	case "stdout":
		return os.Stdout
	default:
		return os.Stderr
	}
}
