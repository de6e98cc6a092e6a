package tui

import tea "github.com/charmbracelet/bubbletea"

// ModalContext provides read-only context to modals for rendering, replacing
// direct access to *DashboardModel. Modals that need to render delegate to
// stored render callbacks, which capture the dashboard internally.
type ModalContext struct {
	ReverseScrollWheel bool
}

// Action identifies what a modal wants the dashboard to do.
type Action int

const (
	ActionPushModal Action = iota
	ActionActivate // Payload is a shell.NavID
)

// ActionMsg is returned by modals to communicate with the dashboard
// without mutating it directly.
type ActionMsg struct {
	Action  Action
	Payload any
}

// actionMsg wraps ActionMsg as a tea.Msg.
func actionMsg(a ActionMsg) tea.Cmd {
	return func() tea.Msg { return a }
}
