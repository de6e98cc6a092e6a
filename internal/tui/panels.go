package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/microsaas/console/internal/icon"
	"github.com/microsaas/console/internal/shell"
)

// Panel breakpoints, in cells of content width.
const (
	panelWideCols  = 96 // three stat cards per row, side-by-side sections
	panelSplitCols = 56 // two stat cards per row
	columnGap      = 2
	chartHeight    = 10
)

// renderPanel renders the content block of the active navigation entry.
func renderPanel(p shell.Panel, width int) string {
	switch p := p.(type) {
	case shell.DashboardPanel:
		return renderDashboardPanel(p, width)
	case shell.TemplatesPanel:
		return renderFeatureCard(p.Feature, width)
	case shell.DataSourcesPanel:
		return renderFeatureCard(p.Feature, width)
	case shell.ToolsPanel:
		return renderFeatureCard(p.Feature, width)
	case shell.SettingsPanel:
		return renderSettingsPanel(p, width)
	default:
		panic(fmt.Sprintf("tui: unhandled panel %T", p))
	}
}

// splitWidths divides total into n columns separated by gap cells.
func splitWidths(total, n, gap int) []int {
	widths := make([]int, n)
	avail := total - gap*(n-1)
	for i := range widths {
		widths[i] = avail / n
		if i < avail%n {
			widths[i]++
		}
	}
	return widths
}

// joinColumns places blocks side by side with the column gap between them.
func joinColumns(blocks ...string) string {
	parts := make([]string, 0, len(blocks)*2)
	spacer := strings.Repeat(" ", columnGap)
	for i, b := range blocks {
		if i > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// mainAndAside lays out two sections two-thirds/one-third on wide content
// and stacked otherwise.
func mainAndAside(width int, main, aside func(int) string) string {
	if width < panelWideCols {
		return lipgloss.JoinVertical(lipgloss.Left, main(width), "", aside(width))
	}
	mainW := (width - columnGap) * 2 / 3
	return joinColumns(main(mainW), aside(width-columnGap-mainW))
}

func renderDashboardPanel(p shell.DashboardPanel, width int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		renderStatCards(p.Stats, width),
		"",
		mainAndAside(width,
			func(w int) string { return renderRevenueCard(p, w) },
			func(w int) string { return renderActivityCard(p, w) },
		),
	)
}

func renderStatCards(stats []shell.StatCard, width int) string {
	cols := 1
	switch {
	case width >= panelWideCols:
		cols = 3
	case width >= panelSplitCols:
		cols = 2
	}
	widths := splitWidths(width, cols, columnGap)

	var rows []string
	for start := 0; start < len(stats); start += cols {
		end := min(start+cols, len(stats))
		cards := make([]string, 0, end-start)
		for i, c := range stats[start:end] {
			cards = append(cards, renderStatCard(c, widths[i]))
		}
		rows = append(rows, joinColumns(cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderStatCard(c shell.StatCard, width int) string {
	inner := max(width-4, 1)
	change := trendUpStyle
	if c.Trend == shell.TrendDown {
		change = trendDownStyle
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		subtleStyle.Render(ansi.Truncate(c.Title, inner, "…")),
		statValueStyle.Render(ansi.Truncate(c.Value, inner, "…")),
		change.Render(ansi.Truncate(c.Change, inner, "…")),
	)
	return cardStyle(width).Render(body)
}

func renderRevenueCard(p shell.DashboardPanel, width int) string {
	inner := max(width-4, 1)
	body := lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render(p.RevenueTitle),
		"",
		renderRevenueChart(p.Revenue, inner, chartHeight),
	)
	return cardStyle(width).Render(body)
}

func renderActivityCard(p shell.DashboardPanel, width int) string {
	inner := max(width-4, 1)
	lines := []string{cardTitleStyle.Render(p.ActivityTitle), ""}
	for _, a := range p.Activity {
		lines = append(lines,
			activityDotStyle.Render("●")+" "+ansi.Truncate(a.Text, inner-2, "…"),
			"  "+subtleStyle.Render(a.When),
		)
	}
	return cardStyle(width).Render(strings.Join(lines, "\n"))
}

// renderFeatureCard renders the centred icon, heading and body block.
func renderFeatureCard(f shell.Feature, width int) string {
	inner := max(width-4, 1)
	body := lipgloss.JoinVertical(lipgloss.Center,
		"",
		subtleStyle.Render(icon.Glyph(f.Icon)),
		"",
		cardTitleStyle.Render(f.Heading),
		subtleStyle.Width(inner).Align(lipgloss.Center).Render(f.Body),
		"",
	)
	return cardStyle(width).Align(lipgloss.Center).Render(body)
}

func renderSettingsPanel(p shell.SettingsPanel, width int) string {
	return mainAndAside(width,
		func(w int) string { return renderFeatureCard(p.Feature, w) },
		func(w int) string { return renderQuickActions(p, w) },
	)
}

func renderQuickActions(p shell.SettingsPanel, width int) string {
	inner := max(width-4, 1)
	lines := []string{cardTitleStyle.Render(p.QuickActionsTitle), ""}
	for _, action := range p.QuickActions {
		lines = append(lines, "› "+ansi.Truncate(action, inner-2, "…"))
	}
	return cardStyle(width).Render(strings.Join(lines, "\n"))
}
