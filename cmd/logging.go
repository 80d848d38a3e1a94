package cmd

import (
	"log/slog"
	"os"
	"strings"
)

// newLogger writes diagnostics to stderr so that tables on stdout stay
// clean. Unknown levels fall back to warn.
func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
