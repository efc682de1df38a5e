package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Width(6).
			Foreground(lipgloss.Color("#A8A8A8"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575"))

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	slopeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F2C94C"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)
