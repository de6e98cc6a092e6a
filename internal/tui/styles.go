package tui

import "github.com/charmbracelet/lipgloss"

// Palette. Adaptive colors keep the light-theme hues on light terminals and
// swap the dark ink for a light one on dark terminals.
var (
	ColorBlue   = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}
	ColorInk    = lipgloss.AdaptiveColor{Light: "#0F172A", Dark: "#E2E8F0"}
	ColorGray   = lipgloss.AdaptiveColor{Light: "#64748B", Dark: "#94A3B8"}
	ColorBorder = lipgloss.AdaptiveColor{Light: "#E2E8F0", Dark: "#334155"}
	ColorGreen  = lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#4ADE80"}
	ColorRed    = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	ColorWhite  = lipgloss.Color("#FFFFFF")
	ColorScrim  = lipgloss.AdaptiveColor{Light: "#CBD5E1", Dark: "#475569"}
)

var (
	brandStyle = lipgloss.NewStyle().Foreground(ColorBlue).Bold(true)

	navStyle         = lipgloss.NewStyle().Foreground(ColorGray)
	navActiveStyle   = lipgloss.NewStyle().Foreground(ColorBlue).Bold(true)
	navFocusStyle    = lipgloss.NewStyle().Underline(true)
	navIndicator     = lipgloss.NewStyle().Foreground(ColorBlue)
	tooltipStyle     = lipgloss.NewStyle().Foreground(ColorWhite).Background(lipgloss.Color("#111827")).Padding(0, 1)
	ruleStyle        = lipgloss.NewStyle().Foreground(ColorBorder)
	pageTitleStyle   = lipgloss.NewStyle().Foreground(ColorInk).Bold(true)
	subtleStyle      = lipgloss.NewStyle().Foreground(ColorGray)
	cardTitleStyle   = lipgloss.NewStyle().Foreground(ColorInk).Bold(true)
	statValueStyle   = lipgloss.NewStyle().Foreground(ColorInk).Bold(true)
	trendUpStyle     = lipgloss.NewStyle().Foreground(ColorGreen)
	trendDownStyle   = lipgloss.NewStyle().Foreground(ColorRed)
	activityDotStyle = lipgloss.NewStyle().Foreground(ColorBlue)
	overlayStyle     = lipgloss.NewStyle().Foreground(ColorScrim)
)

// cardStyle is the bordered box used by every panel section. The returned
// style renders exactly width cells wide.
func cardStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1).
		Width(max(width-2, 1))
}
