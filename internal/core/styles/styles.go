// Package styles provides shared lipgloss styles for CLI output.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	Title   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7aa2f7"))
	Muted   = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a"))
	Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68"))
	Error   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f7768e"))
	Accent  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7dcfff"))
)
