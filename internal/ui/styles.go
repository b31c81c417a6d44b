package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	colorPrimary = lipgloss.Color("#00BFFF") // Deep sky blue
	colorDanger  = lipgloss.Color("#FF6B6B") // Red for errors
	colorWarning = lipgloss.Color("#FFD93D") // Yellow for fallbacks
	colorSuccess = lipgloss.Color("#6BCF7F") // Green
	colorMuted   = lipgloss.Color("#6C757D") // Gray
	colorBorder  = lipgloss.Color("#4A90E2") // Border blue

	// Title styles (no padding - paneStyle already has padding)
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Pane styles
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	// Content styles
	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	highStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	heightStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	indicatorStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	markerStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	// Utility styles
	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)
)
