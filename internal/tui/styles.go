package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D79F6"})

	selectedStyle = lipgloss.NewStyle().Reverse(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"})

	definitionStyle = lipgloss.NewStyle().Italic(true).Width(60)

	progressStyle = lipgloss.NewStyle().Bold(true)

	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	wonStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

	lostStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)
