package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/brigatacurvasud/bcs-service/internal/config"
)

// Setup builds the process logger from config and installs it as the slog
// default.
func Setup(cfg config.LogConfig) *slog.Logger {
	return setup(os.Stdout, cfg)
}

func setup(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}

	var handler slog.Handler
	if strings.EqualFold(cfg.LogFormat, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	l := slog.New(handler)
	slog.SetDefault(l)
	return l
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
