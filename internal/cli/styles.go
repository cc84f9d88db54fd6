package cli

import "github.com/charmbracelet/lipgloss"

var (
	// Accent is used for names and locations.
	accent = lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA"))

	// Muted is used for secondary details such as failure reasons.
	muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	bold = lipgloss.NewStyle().Bold(true)

	success = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	failure = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	warning = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
)
