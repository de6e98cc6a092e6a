package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/microsaas/console/internal/shell"
)

// Options configures a DashboardModel.
type Options struct {
	// NarrowWidth is the terminal width below which the expanded sidebar
	// covers the content with a dimmed overlay.
	NarrowWidth        int
	ReverseScrollWheel bool
	Mouse              bool
	Version            string
	Logger             *zap.Logger
}

// DefaultNarrowWidth matches the desktop breakpoint of the web layout.
const DefaultNarrowWidth = 100

// ModalStackState holds the modal stack.
type ModalStackState struct {
	modalStack []Modal
}

// NavigationState holds keyboard focus and pointer hover over the sidebar.
type NavigationState struct {
	cursor   int // focused entry, independent of the active one
	hoverIdx int // entry under the pointer, -1 for none
}

// DashboardModel is the Bubble Tea model for the console shell.
type DashboardModel struct {
	ModalStackState
	NavigationState

	shell  *shell.Shell
	nav    []shell.Item
	keys   KeyMap
	help   help.Model
	logger *zap.Logger

	width  int
	height int

	narrowWidth        int
	reverseScrollWheel bool
	mouse              bool
	version            string

	viewStyle lipgloss.Style
}

// NewDashboardModel returns a model driving sh. A nil shell starts from the
// initial state.
func NewDashboardModel(sh *shell.Shell, opts Options) *DashboardModel {
	if sh == nil {
		sh = shell.New()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	narrow := opts.NarrowWidth
	if narrow <= 0 {
		narrow = DefaultNarrowWidth
	}

	m := &DashboardModel{
		shell:              sh,
		nav:                shell.Navigation(),
		keys:               DefaultKeyMap(),
		help:               help.New(),
		logger:             logger.Named("tui"),
		narrowWidth:        narrow,
		reverseScrollWheel: opts.ReverseScrollWheel,
		mouse:              opts.Mouse,
		version:            opts.Version,
	}
	m.hoverIdx = -1
	m.cursor = m.entryIndex(sh.Active())
	return m
}

// Shell exposes the state driven by the model.
func (m *DashboardModel) Shell() *shell.Shell {
	return m.shell
}

// Init initializes the model
func (m *DashboardModel) Init() tea.Cmd {
	if m.mouse {
		return tea.EnableMouseAllMotion
	}
	return nil
}

// PushModal pushes a modal onto the stack. Deduplicates by ID.
func (m *DashboardModel) PushModal(modal Modal) {
	for _, existing := range m.modalStack {
		if existing.ID() == modal.ID() {
			return
		}
	}
	m.modalStack = append(m.modalStack, modal)
}

// PopModal removes the topmost modal from the stack.
func (m *DashboardModel) PopModal() {
	if len(m.modalStack) > 0 {
		m.modalStack = m.modalStack[:len(m.modalStack)-1]
	}
}

// TopModal returns the topmost modal, or nil if the stack is empty.
func (m *DashboardModel) TopModal() Modal {
	if len(m.modalStack) == 0 {
		return nil
	}
	return m.modalStack[len(m.modalStack)-1]
}

// HasModal returns true if any modal is on the stack.
func (m *DashboardModel) HasModal() bool {
	return len(m.modalStack) > 0
}

func (m *DashboardModel) modalContext() ModalContext {
	return ModalContext{ReverseScrollWheel: m.reverseScrollWheel}
}

func (m *DashboardModel) entryIndex(id shell.NavID) int {
	for i, item := range m.nav {
		if item.ID == id {
			return i
		}
	}
	return 0
}

// narrow reports whether the terminal is below the desktop breakpoint.
func (m *DashboardModel) narrow() bool {
	return m.width < m.narrowWidth
}

// overlayShown reports whether the dimmed overlay is drawn. The overlay is
// part of the layout whenever the sidebar is expanded but only drawn on
// narrow terminals.
func (m *DashboardModel) overlayShown() bool {
	return m.shell.OverlayVisible() && m.narrow()
}

func (m *DashboardModel) activate(id shell.NavID) {
	if !m.shell.Activate(id) {
		return
	}
	m.cursor = m.entryIndex(id)
	m.logger.Debug("activate", zap.Stringer("id", id), zap.Uint64("revision", m.shell.Revision()))
}

func (m *DashboardModel) toggleCollapse(source string) {
	m.shell.ToggleCollapse()
	if !m.shell.Collapsed() {
		m.hoverIdx = -1
	}
	m.logger.Debug("toggle collapse",
		zap.String("source", source),
		zap.Bool("collapsed", m.shell.Collapsed()),
		zap.Uint64("revision", m.shell.Revision()))
}

func (m *DashboardModel) dismissOverlay() {
	if m.shell.DismissOverlay() {
		m.logger.Debug("dismiss overlay", zap.Uint64("revision", m.shell.Revision()))
	}
}
