package utils

import (
	"log/slog"
	"os"
)

// NewLogger returns the application logger. "json" emits one JSON object per
// line for log collectors; anything else falls back to the colored local dev
// handler.
func NewLogger(format string) *slog.Logger {
	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{}))
	default:
		return slog.New(LocalDevHandlerOptions{UseColor: true}.NewLocalDevHandler(os.Stderr))
	}
}
