// Package logfields holds the canonical slog attribute keys used across md2dox.
package logfields

import (
	"log/slog"
	"time"
)

const (
	KeyPage       = "page"
	KeyPath       = "path"
	KeyStage      = "stage"
	KeyLines      = "lines"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

func Page(id string) slog.Attr    { return slog.String(KeyPage, id) }
func Path(p string) slog.Attr     { return slog.String(KeyPath, p) }
func Stage(name string) slog.Attr { return slog.String(KeyStage, name) }
func Lines(n int) slog.Attr       { return slog.Int(KeyLines, n) }

// Duration reports d in fractional milliseconds.
func Duration(d time.Duration) slog.Attr {
	return slog.Float64(KeyDurationMS, float64(d.Microseconds())/1000)
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
