package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// SetupLogger builds the application logger. format is "json" or "text".
func SetupLogger(level, format, app string) *slog.Logger {
	return newLogger(os.Stdout, level, format, app)
}

func newLogger(w io.Writer, level, format, app string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var h slog.Handler
	if strings.EqualFold(format, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h).With(slog.String("app", app))
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
