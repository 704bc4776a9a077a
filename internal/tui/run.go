package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gallows-labs/hangman/internal/dict"
)

// Run starts the interactive session and blocks until the player
// quits or a round ends without a replay.
func Run(store *dict.Store, logger *slog.Logger) error {
	p := tea.NewProgram(New(store, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
