package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/microsaas/console/internal/icon"
)

// renderHelpModalWithViewport renders the help modal using the provided viewport.
func (m *DashboardModel) renderHelpModalWithViewport(vp *viewport.Model, width, height int) string {
	modalWidth := max(width-8, 20)
	modalHeight := max(height-4, 8)

	// Account for borders and headers
	contentWidth := modalWidth - 4
	contentHeight := modalHeight - 4

	vp.Width = contentWidth
	vp.Height = contentHeight
	vp.SetContent(lipgloss.NewStyle().Width(contentWidth).Render(m.renderHelpModalContent()))

	contentPane := lipgloss.NewStyle().
		Width(contentWidth).
		Height(contentHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorGray).
		Render(vp.View())

	header := lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(ColorBlue).
		Bold(true).
		Render("Help")

	statusBar := lipgloss.NewStyle().
		Foreground(ColorGray).
		Render("up/down/Wheel: Scroll | 1-5: Open page | ?/ESC: Close")

	modal := lipgloss.JoinVertical(lipgloss.Left, header, contentPane, statusBar)

	finalModal := lipgloss.NewStyle().
		Width(modalWidth).
		Height(modalHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBlue).
		Render(modal)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, finalModal)
}

// renderHelpModalContent returns the help modal content without positioning
func (m *DashboardModel) renderHelpModalContent() string {
	var b strings.Builder
	b.WriteString("PAGES:\n")
	for i, item := range m.nav {
		fmt.Fprintf(&b, "  %d  %s  %s\n", i+1, icon.Glyph(item.Icon), item.Label)
	}

	b.WriteString("\nKEYS:\n")
	full := m.help
	full.ShowAll = true
	b.WriteString(full.View(m.keys))

	b.WriteString("\n\nMOUSE:\n")
	b.WriteString("  Click an entry to open its page\n")
	b.WriteString("  Click the top sidebar row or the header menu to collapse or expand\n")
	b.WriteString("  Click outside the sidebar on narrow terminals to close it\n")
	b.WriteString("  Hover a collapsed entry to see its name\n")
	return b.String()
}
