package main

import (
	"io"
	"log/slog"
)

// newLogger returns a text logger on w. Quiet keeps warnings and errors,
// verbose adds per-page debug records.
func newLogger(w io.Writer, quiet, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelWarn
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
