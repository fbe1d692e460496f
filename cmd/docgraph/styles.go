package main

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#bd93f9"))
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8be9fd"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272a4"))
	codeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f1fa8c"))
	linkStyle    = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("#50fa7b"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555"))

	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#44475a")).
			Padding(0, 1)
)

// field renders one "label: value" line.
func field(label, value string) string {
	return labelStyle.Render(label+":") + " " + value
}

// swatch renders a small block in a category's color.
func swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■")
}
