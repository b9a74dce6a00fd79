package app

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.AdaptiveColor{Light: "#0A66C2", Dark: "#70B5F9"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#9CA3AF"}
	colorBorder  = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}
	colorError   = lipgloss.AdaptiveColor{Light: "#BE123C", Dark: "#FB7185"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#34D399"}
	colorStatus  = lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#22D3EE"}
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	copiedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)

	paneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder)
	focusedPaneStyle = paneStyle.BorderForeground(colorAccent)

	pickerCellStyle     = lipgloss.NewStyle().Padding(0, 1)
	pickerSelectedStyle = pickerCellStyle.Reverse(true)
)
