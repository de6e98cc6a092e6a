package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyPress dispatches key events: modal stack first, then global
// dashboard shortcuts.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	// Modal on stack gets the event first.
	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		return m, cmd
	}

	return m.handleGlobalKeys(msg)
}

// handleGlobalKeys handles dashboard-level shortcuts.
// Only reached when no modal is on the stack.
func (m *DashboardModel) handleGlobalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys

	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.Help):
		m.PushModal(NewHelpModal(m))

	case key.Matches(msg, k.Escape):
		if m.overlayShown() {
			m.dismissOverlay()
		}

	case key.Matches(msg, k.ToggleSidebar):
		m.toggleCollapse("sidebar")

	case key.Matches(msg, k.HeaderMenu):
		m.toggleCollapse("header")

	case key.Matches(msg, k.Up):
		m.moveCursor(-1)

	case key.Matches(msg, k.Down):
		m.moveCursor(1)

	case key.Matches(msg, k.Enter):
		m.clampCursor()
		m.activate(m.nav[m.cursor].ID)

	case key.Matches(msg, k.NextView):
		m.stepActive(1)

	case key.Matches(msg, k.PrevView):
		m.stepActive(-1)

	case key.Matches(msg, k.Jump):
		if idx := int(msg.String()[0] - '1'); idx >= 0 && idx < len(m.nav) {
			m.activate(m.nav[idx].ID)
		}
	}

	return m, nil
}

func (m *DashboardModel) clampCursor() {
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.nav) {
		m.cursor = len(m.nav) - 1
	}
}

// moveCursor moves keyboard focus without activating the entry.
func (m *DashboardModel) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

// stepActive activates the entry delta positions away from the active one,
// wrapping at both ends.
func (m *DashboardModel) stepActive(delta int) {
	n := len(m.nav)
	idx := (m.entryIndex(m.shell.Active()) + delta + n) % n
	m.activate(m.nav[idx].ID)
}
