package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/microsaas/console/internal/shell"
)

var statusBase = lipgloss.NewStyle().
	Background(lipgloss.Color("#1E3A8A")).
	Foreground(ColorWhite)

// renderBranding renders the product name with a blue gradient.
func renderBranding() string {
	colors := []string{
		"#93C5FD",
		"#86BCFC",
		"#79B3FB",
		"#6CAAFA",
		"#60A5FA",
		"#5398F8",
		"#468BF6",
		"#3B82F6",
		"#2F76F3",
	}

	var b strings.Builder
	for i, r := range shell.Brand {
		style := statusBase.
			Foreground(lipgloss.Color(colors[i%len(colors)])).
			Bold(true)
		b.WriteString(style.Render(string(r)))
	}
	return b.String()
}

// renderStatusLine renders the status/help line at the bottom of the screen
func (m *DashboardModel) renderStatusLine(layout shell.Layout) string {
	w := m.width

	leftText := fmt.Sprintf("[%s]", layout.Page.Title)

	var rightParts []string
	if w >= 60 {
		state := "expanded"
		if layout.Sidebar.Collapsed {
			state = "collapsed"
		}
		rightParts = append(rightParts, "sidebar "+state)
	}
	if m.version != "" && w >= 100 {
		rightParts = append(rightParts, m.version)
	}
	if w >= 30 {
		rightParts = append(rightParts, renderBranding())
	}
	rightText := strings.Join(rightParts, statusBase.Render("  "))

	leftWidth := lipgloss.Width(leftText) + 2
	rightWidth := lipgloss.Width(rightText) + 2
	if leftWidth+rightWidth >= w {
		return statusBase.Width(w).Render(ansi.Truncate(leftText, w, "…"))
	}
	centerWidth := w - leftWidth - rightWidth

	statusText := m.help.ShortHelpView(m.keys.ShortHelp())
	statusText = ansi.Truncate(ansi.Strip(statusText), centerWidth, "…")

	leftPart := statusBase.Align(lipgloss.Left).Width(leftWidth).Render(leftText)
	centerPart := statusBase.Align(lipgloss.Center).Width(centerWidth).Render(statusText)
	rightPart := statusBase.Align(lipgloss.Right).Width(rightWidth).Render(rightText)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftPart, centerPart, rightPart)
}
