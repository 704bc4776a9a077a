package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// menuKeys are the bindings active on the category menu.
type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func (k menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

func (k menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

var menuKeys = menuKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "quit"),
	),
}

// playKeys are the bindings active during a round. Letter input is
// read directly from the key runes; Guess exists for the help line.
type playKeyMap struct {
	Guess key.Binding
	Quit  key.Binding
}

func (k playKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Guess, k.Quit}
}

func (k playKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Guess, k.Quit}}
}

var playKeys = playKeyMap{
	Guess: key.NewBinding(
		key.WithKeys(strings.Split("abcdefghijklmnopqrstuvwxyz", "")...),
		key.WithHelp("a-z", "guess a letter"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "quit"),
	),
}
