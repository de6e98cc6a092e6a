package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/microsaas/console/internal/icon"
	"github.com/microsaas/console/internal/shell"
)

const (
	minWidth  = 50
	minHeight = 16
)

// View renders the dashboard
func (m *DashboardModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Initializing dashboard..."
	}

	// If a modal is on the stack, render it full-screen.
	if modal := m.TopModal(); modal != nil {
		return modal.View(m.width, m.height)
	}

	return m.renderDashboard()
}

// renderDashboard renders sidebar, header, page and status line from the
// current layout.
func (m *DashboardModel) renderDashboard() string {
	if m.height < minHeight || m.width < minWidth {
		return fmt.Sprintf("Terminal too small. Resize to at least %dx%d.", minWidth, minHeight)
	}

	layout := m.shell.Layout()
	bodyHeight := m.height - 1

	sidebar := m.renderSidebar(layout.Sidebar, bodyHeight)
	content := m.renderContent(layout, m.width-m.sidebarWidth(), bodyHeight)
	if m.overlayShown() {
		content = overlayStyle.Render(ansi.Strip(content))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
	body = m.spliceTooltip(body, layout.Sidebar)

	return m.viewStyle.Render(lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusLine(layout)))
}

func (m *DashboardModel) renderContent(layout shell.Layout, width, height int) string {
	inner := max(width-4, 1)

	page := lipgloss.JoinVertical(lipgloss.Left,
		pageTitleStyle.Render(layout.Page.Title),
		subtleStyle.Render(ansi.Truncate(layout.Page.Subtitle, inner, "…")),
		"",
		renderPanel(layout.Page.Panel, inner),
	)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxHeight(height).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			renderHeader(layout.Header, width),
			lipgloss.NewStyle().Padding(1, 2).Render(page),
		))
}

// renderHeader renders the menu and profile buttons above a rule.
func renderHeader(h shell.Header, width int) string {
	left := " " + icon.Glyph(h.Menu.Icon)
	right := icon.Glyph(h.Profile.Icon) + " "
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right + "\n" +
		ruleStyle.Render(strings.Repeat("─", width))
}

// spliceTooltip draws the hovered entry's tooltip just right of the sidebar.
func (m *DashboardModel) spliceTooltip(body string, sb shell.Sidebar) string {
	row, tip, ok := m.tooltipFor(sb)
	if !ok {
		return body
	}
	lines := strings.Split(body, "\n")
	if row >= len(lines) {
		return body
	}
	sw := m.sidebarWidth()
	line := lines[row]
	lines[row] = ansi.Truncate(line, sw, "") + " " + tip +
		ansi.TruncateLeft(line, sw+1+lipgloss.Width(tip), "")
	return strings.Join(lines, "\n")
}
