package ui

import (
	"log/slog"
	"os"
)

// logger reports guard conditions (missing children, full layouts, failed
// loads). Nothing logged here stops a frame.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

// SetLogger replaces the package logger. A nil logger is ignored.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}
