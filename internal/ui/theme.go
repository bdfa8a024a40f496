package ui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	Hint      lipgloss.Style
}

var DefaultTheme = Theme{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	Tab:       lipgloss.NewStyle().Faint(true).Padding(0, 1),
	ActiveTab: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89B4FA")).Padding(0, 1),
	Status:    lipgloss.NewStyle().Faint(true),
	Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
	Hint:      lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#CBA6F7")),
}
