package ui

import "github.com/charmbracelet/lipgloss"

// Style definitions
var (
	// Colors
	primaryColor = lipgloss.Color("#6366f1") // Haven indigo
	successColor = lipgloss.Color("#10b981") // Green
	warningColor = lipgloss.Color("#f59e0b") // Yellow
	errorColor   = lipgloss.Color("#ef4444") // Red
	mutedColor   = lipgloss.Color("#94a3b8") // Muted gray

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)

	nameStyle = lipgloss.NewStyle().
			Width(12)
)
