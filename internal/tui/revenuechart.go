package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/microsaas/console/internal/shell"
)

var revenueBarStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#3B82F6")).
	Background(lipgloss.Color("#3B82F6"))

// renderRevenueChart draws the monthly revenue series as a bar chart with a
// row of month initials underneath.
func renderRevenueChart(points []shell.RevenuePoint, width, height int) string {
	if len(points) == 0 || width < len(points) || height < 3 {
		return subtleStyle.Render("No data available")
	}

	const gap = 1
	n := len(points)
	barWidth := max((width-(n-1)*gap)/n, 1)
	chartHeight := height - 2

	bc := barchart.New(width, chartHeight,
		barchart.WithBarGap(gap),
		barchart.WithBarWidth(barWidth),
		barchart.WithNoAxis(),
	)
	peak := points[0]
	for _, p := range points {
		bc.Push(barchart.BarData{
			Label: p.Month,
			Values: []barchart.BarValue{
				{Name: p.Month, Value: float64(p.Amount), Style: revenueBarStyle},
			},
		})
		if p.Amount > peak.Amount {
			peak = p
		}
	}
	bc.Draw()

	var labels strings.Builder
	for i, p := range points {
		if i > 0 {
			labels.WriteString(strings.Repeat(" ", gap))
		}
		labels.WriteString(lipgloss.PlaceHorizontal(barWidth, lipgloss.Center, p.Month[:1]))
	}

	caption := fmt.Sprintf("Peak %s: %s", peak.Month, formatAmount(peak.Amount))
	return lipgloss.JoinVertical(lipgloss.Left,
		bc.View(),
		subtleStyle.Render(ansi.Truncate(labels.String(), width, "")),
		subtleStyle.Render(ansi.Truncate(caption, width, "…")),
	)
}

// formatAmount renders a whole-dollar amount with thousands separators.
func formatAmount(v int) string {
	s := fmt.Sprintf("%d", v)
	if v < 0 {
		return "-" + formatAmount(-v)
	}
	var b strings.Builder
	b.WriteByte('$')
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
