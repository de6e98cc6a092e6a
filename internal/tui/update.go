package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/microsaas/console/internal/shell"
)

// Update handles messages
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewStyle = lipgloss.NewStyle().MaxWidth(m.width).MaxHeight(m.height)
		m.help.Width = m.width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouseEvent(msg)

	case ActionMsg:
		switch msg.Action {
		case ActionPushModal:
			if modal, ok := msg.Payload.(Modal); ok {
				m.PushModal(modal)
			}
		case ActionActivate:
			if id, ok := msg.Payload.(shell.NavID); ok {
				m.activate(id)
			}
		}
		return m, nil
	}

	return m, nil
}

// handleMouseEvent routes mouse input: modal stack first, then pointer
// motion for tooltips, then wheel and clicks.
func (m *DashboardModel) handleMouseEvent(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		return m, cmd
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		m.hoverIdx = m.entryAt(msg.X, msg.Y)
		return m, nil
	case tea.MouseActionPress:
	default:
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.reverseScrollWheel {
			m.moveCursor(1)
		} else {
			m.moveCursor(-1)
		}
	case tea.MouseButtonWheelDown:
		if m.reverseScrollWheel {
			m.moveCursor(-1)
		} else {
			m.moveCursor(1)
		}
	case tea.MouseButtonLeft:
		m.handleMouseClick(msg.X, msg.Y)
	}
	return m, nil
}

// handleMouseClick maps a left click to the sidebar toggle, a navigation
// entry, the overlay or the header menu button.
func (m *DashboardModel) handleMouseClick(x, y int) {
	sw := m.sidebarWidth()
	if x < sw {
		if y == 0 {
			m.toggleCollapse("sidebar")
			return
		}
		if idx := m.entryAt(x, y); idx >= 0 {
			m.cursor = idx
			m.activate(m.nav[idx].ID)
		}
		return
	}

	// The overlay covers everything right of the sidebar, header included.
	if m.overlayShown() {
		m.dismissOverlay()
		return
	}

	if y == 0 && x-sw < menuButtonCells {
		m.toggleCollapse("header")
	}
}
