// Package testutil provides test helpers for structured logging.
package testutil

import (
	"log/slog"
	"testing"
)

// NewTestLogger returns a slog.Logger that routes records through
// t.Log, so they only show up on failure or with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(logWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type logWriter struct {
	t testing.TB
}

func (w logWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}
