// Package logger configures the structured logger used by the thermcal CLI.
// Library packages never log; only the command-line entrypoint does.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// New returns a slog.Logger writing text records to stderr at the given
// level. Unrecognized levels fall back to info.
func New(level string) *slog.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(level),
	})

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
