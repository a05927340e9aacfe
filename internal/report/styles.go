package report

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	colorSuccess = lipgloss.Color("34")  // Green
	colorError   = lipgloss.Color("196") // Red
	colorMuted   = lipgloss.Color("240") // Dark gray
)

// Styles for console reports.
var (
	summaryStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	findingStyle = lipgloss.NewStyle().
			Foreground(colorError)

	okStyle = lipgloss.NewStyle().
		Foreground(colorSuccess).
		Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)
)
