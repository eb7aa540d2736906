package main

import (
	"log/slog"
	"os"
)

// NewLogger returns a structured slog.Logger writing JSON to stdout.
// Debug selects the verbose level used for per-tick cycle logging.
func NewLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}
