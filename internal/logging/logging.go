// Package logging provides structured logging setup for the xgx-demo binary.
// Library packages never log; they return failures.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// New creates a *slog.Logger writing to w. format is "json" or "text"
// (anything else falls back to text).
func New(level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With("service", "xgx-demo")
}

// ParseLevel converts a string log level to slog.Level. Unknown values map to
// info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// Err renders err for a log attribute. Failures are logged with %+v so that
// suppressed failures appear in the record.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", strings.TrimSpace(fmt.Sprintf("%+v", err)))
}
