// Package tui implements the interactive hangman session: the
// category menu, the play screen, and the quit/replay prompts, driven
// by a bubbletea program.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/gallows-labs/hangman/internal/dict"
	"github.com/gallows-labs/hangman/internal/figure"
	"github.com/gallows-labs/hangman/internal/game"
)

type screen int

const (
	screenMenu screen = iota
	screenPlay
	screenRoundOver
	screenConfirmQuit
	screenError
)

// Model is the bubbletea model for a game session. It owns the
// dictionary store and the current round; each round is a fresh
// game.Round value.
type Model struct {
	store  *dict.Store
	logger *slog.Logger
	help   help.Model

	screen      screen
	confirmFrom screen

	menuIndex int

	category dict.Category
	round    *game.Round
	roundID  string

	errMsg   string
	quitting bool
}

// New creates a session model over the given dictionary store.
func New(store *dict.Store, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return Model{
		store:  store,
		logger: logger,
		help:   help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.screen {
		case screenMenu:
			return m.updateMenu(msg)
		case screenPlay:
			return m.updatePlay(msg)
		case screenRoundOver:
			return m.updateRoundOver(msg)
		case screenConfirmQuit:
			return m.updateConfirmQuit(msg)
		case screenError:
			return m.updateError(msg)
		}
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	categories := dict.Categories()
	switch {
	case key.Matches(msg, menuKeys.Up):
		m.menuIndex = (m.menuIndex + len(categories) - 1) % len(categories)
	case key.Matches(msg, menuKeys.Down):
		m.menuIndex = (m.menuIndex + 1) % len(categories)
	case key.Matches(msg, menuKeys.Select):
		return m.startRound(categories[m.menuIndex])
	case key.Matches(msg, menuKeys.Quit):
		m.confirmFrom = screenMenu
		m.screen = screenConfirmQuit
	}
	return m, nil
}

func (m Model) startRound(cat dict.Category) (tea.Model, tea.Cmd) {
	entry, err := m.store.Pick(cat)
	if err != nil {
		m.logger.Warn("category unavailable", "category", cat, "error", err)
		m.errMsg = err.Error()
		m.screen = screenError
		return m, nil
	}
	m.category = cat
	m.round = game.NewRound(entry.Word, entry.Definition)
	m.roundID = uuid.NewString()
	m.screen = screenPlay
	m.logger.Info("round started",
		"round_id", m.roundID,
		"category", cat,
		"word_length", len(entry.Word))
	m.logger.Debug("word selected", "round_id", m.roundID, "word", entry.Word)
	return m, nil
}

func (m Model) updatePlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, playKeys.Quit) {
		m.confirmFrom = screenPlay
		m.screen = screenConfirmQuit
		return m, nil
	}
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return m, nil
	}
	letter := msg.Runes[0]
	if !unicode.IsLetter(letter) {
		return m, nil
	}

	res := m.round.Guess(letter)
	m.logger.Debug("guess",
		"round_id", m.roundID,
		"letter", string(letter),
		"hit", res.Hit,
		"repeat", res.AlreadyGuessed,
		"incorrect", m.round.Incorrect())

	switch m.round.Status() {
	case game.StatusWon:
		m.logger.Info("round won", "round_id", m.roundID, "incorrect", m.round.Incorrect())
		m.screen = screenRoundOver
	case game.StatusLost:
		m.logger.Info("round lost", "round_id", m.roundID, "word", m.round.Word())
		m.screen = screenRoundOver
	}
	return m, nil
}

func (m Model) updateRoundOver(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y":
		m.round = nil
		m.roundID = ""
		m.screen = screenMenu
	case "n", "esc":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateConfirmQuit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y":
		if m.round != nil && m.round.Status() == game.StatusInProgress {
			m.round.Abandon()
			m.logger.Info("round abandoned", "round_id", m.roundID)
		}
		m.quitting = true
		return m, tea.Quit
	case "n", "esc":
		m.screen = m.confirmFrom
	}
	return m, nil
}

func (m Model) updateError(_ tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errMsg = ""
	m.screen = screenMenu
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenMenu:
		return m.viewMenu()
	case screenPlay:
		return m.viewPlay()
	case screenRoundOver:
		return m.viewRoundOver()
	case screenConfirmQuit:
		return m.viewConfirmQuit()
	case screenError:
		return m.viewError()
	}
	return ""
}

func (m Model) viewMenu() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Hangman"))
	b.WriteString("\n\n")
	b.WriteString("Pick a word category:\n\n")
	for i, cat := range dict.Categories() {
		line := "  " + cat.Title()
		if i == m.menuIndex {
			line = selectedStyle.Render("> " + cat.Title())
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(menuKeys))
	return b.String()
}

func (m Model) viewPlay() string {
	var b strings.Builder
	b.WriteString(figure.Render(figure.ForMisses(m.round.Incorrect())))
	b.WriteString("\n\n")
	b.WriteString(definitionStyle.Render(m.round.Definition()))
	b.WriteString("\n\n")
	b.WriteString(progressStyle.Render(spaced(m.round.Progress())))
	b.WriteString("\n\n")
	if tried := m.round.Guessed(); len(tried) > 0 {
		b.WriteString(mutedStyle.Render("tried: " + spaced(string(tried))))
		b.WriteString("\n\n")
	}
	b.WriteString(m.help.View(playKeys))
	return b.String()
}

func (m Model) viewRoundOver() string {
	var b strings.Builder
	b.WriteString(figure.Render(figure.ForMisses(m.round.Incorrect())))
	b.WriteString("\n\n")
	if m.round.Status() == game.StatusWon {
		b.WriteString(wonStyle.Render("You won!"))
	} else {
		b.WriteString(lostStyle.Render("You lost!"))
	}
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("The word was %s: %s\n\n",
		progressStyle.Render(m.round.Word()),
		m.round.Definition()))
	b.WriteString("Play again? (y/n)")
	return b.String()
}

func (m Model) viewConfirmQuit() string {
	return "Quit the game? (y/n)"
}

func (m Model) viewError() string {
	var b strings.Builder
	b.WriteString(errorStyle.Render(m.errMsg))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("press any key to return to the menu"))
	return b.String()
}

// spaced spreads a string out with single spaces so placeholders are
// readable on the play screen.
func spaced(s string) string {
	runes := []rune(s)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
