package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/microsaas/console/internal/icon"
	"github.com/microsaas/console/internal/shell"
)

const (
	sidebarWidthExpanded  = 24
	sidebarWidthCollapsed = 7

	// navTopRow is the first navigation row: brand row, rule, gap.
	navTopRow = 3

	// menuButtonCells is the clickable span of the header menu button.
	menuButtonCells = 4
)

// sidebarWidth is the rendered width of the sidebar, border included.
func (m *DashboardModel) sidebarWidth() int {
	if m.shell.Collapsed() {
		return sidebarWidthCollapsed
	}
	return sidebarWidthExpanded
}

// entryAt returns the navigation entry under the cell (x, y), or -1.
func (m *DashboardModel) entryAt(x, y int) int {
	if x < 0 || x >= m.sidebarWidth() {
		return -1
	}
	row := y - navTopRow
	if row < 0 || row >= len(m.nav) {
		return -1
	}
	return row
}

func (m *DashboardModel) buildSidebarLines(sb shell.Sidebar, inner int) []string {
	lines := make([]string, 0, navTopRow+len(sb.Entries))

	toggle := icon.Glyph(sb.Toggle.Icon)
	if sb.Collapsed {
		lines = append(lines, lipgloss.PlaceHorizontal(inner, lipgloss.Center, toggle))
	} else {
		left := " " + brandStyle.Render(sb.Brand)
		right := toggle + " "
		gap := max(inner-lipgloss.Width(left)-lipgloss.Width(right), 1)
		lines = append(lines, left+strings.Repeat(" ", gap)+right)
	}
	lines = append(lines, ruleStyle.Render(strings.Repeat("─", inner)), "")

	for i, e := range sb.Entries {
		bar := " "
		style := navStyle
		if e.Current {
			bar = navIndicator.Render("▌")
			style = navActiveStyle
		}
		if i == m.cursor {
			style = style.Inherit(navFocusStyle)
		}

		text := icon.Glyph(e.Icon)
		if !sb.Collapsed {
			text += "  " + ansi.Truncate(e.Label, inner-6, "…")
		}
		row := bar + " " + style.Render(text)
		if sb.Collapsed {
			row = bar + lipgloss.PlaceHorizontal(inner-1, lipgloss.Center, style.Render(text))
		}
		lines = append(lines, row)
	}
	return lines
}

// renderSidebar renders the navigation column.
func (m *DashboardModel) renderSidebar(sb shell.Sidebar, height int) string {
	inner := m.sidebarWidth() - 1

	style := lipgloss.NewStyle().
		Width(inner).
		Height(height).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(ColorBorder)

	lines := m.buildSidebarLines(sb, inner)
	return style.Render(strings.Join(lines, "\n"))
}

// tooltipFor returns the tooltip of the hovered entry, if any.
func (m *DashboardModel) tooltipFor(sb shell.Sidebar) (row int, text string, ok bool) {
	if m.hoverIdx < 0 || m.hoverIdx >= len(sb.Entries) {
		return 0, "", false
	}
	tip := sb.Entries[m.hoverIdx].Tooltip
	if tip == "" {
		return 0, "", false
	}
	return navTopRow + m.hoverIdx, tooltipStyle.Render(tip), true
}
