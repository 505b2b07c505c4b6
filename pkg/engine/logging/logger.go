// Package logging builds the component-scoped slog loggers used by the
// command-line tools and the leaderboard service.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New returns a human-readable logger writing to stderr, tagged with component.
func New(component string) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})).With("component", component)
}

// NewJSON returns a JSON logger for service use, tagged with component.
func NewJSON(w io.Writer, component string) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})).With("component", component)
}

// Discard returns a logger that drops everything (tests, library defaults).
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
