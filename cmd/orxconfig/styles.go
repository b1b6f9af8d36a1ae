package main

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	nameStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	parentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
)

// styled renders s with style unless color is off.
func styled(style lipgloss.Style, s string) string {
	if noColor {
		return s
	}
	return style.Render(s)
}
