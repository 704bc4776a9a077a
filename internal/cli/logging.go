package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gallows-labs/hangman/internal/cli/config"
)

// newLogger opens the diagnostic log in append mode and returns a
// text-handler logger writing to it. A log that cannot be opened is
// not fatal; records are discarded and a warning goes to stderr. The
// file stays open for the process lifetime.
func newLogger(stderr io.Writer, cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: cannot open log file %s: %v\n", cfg.LogFile, err)
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
}
