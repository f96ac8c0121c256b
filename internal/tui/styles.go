package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	barFg     = lipgloss.Color("#4682B4")
	hoverFg   = lipgloss.Color("#2D5878") // bar color at 0.8 opacity over the dark background
	gridFg    = lipgloss.Color("#243141")
	captionFg = lipgloss.Color("#64748B")
	errorFg   = lipgloss.Color("#F87171")
	borderCol = lipgloss.Color("#243141")

	appStyle     = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle   = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(baseDimFg)
	barStyle     = lipgloss.NewStyle().Foreground(barFg)
	hoverStyle   = lipgloss.NewStyle().Foreground(hoverFg)
	gridStyle    = lipgloss.NewStyle().Foreground(gridFg)
	captionStyle = lipgloss.NewStyle().Foreground(captionFg)
	errorStyle   = lipgloss.NewStyle().Foreground(errorFg)
	tooltipStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accentFg).Padding(0, 1)
)
