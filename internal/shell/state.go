// Package shell holds the dashboard shell: the static navigation model, the
// selection and sidebar-collapse state of one view instance, and the pure
// renderer that turns that state into a layout tree.
package shell

// State is a snapshot of the two state cells.
type State struct {
	Active    NavID `json:"active" yaml:"active"`
	Collapsed bool  `json:"collapsed" yaml:"collapsed"`
}

// Shell owns the state of one mounted view. It is not safe for concurrent
// use; hosts that dispatch events from several goroutines must serialise
// calls themselves.
type Shell struct {
	active    NavID
	collapsed bool
	revision  uint64
}

// New returns a shell showing the Dashboard with the sidebar expanded.
func New() *Shell {
	return &Shell{active: Dashboard}
}

// Active returns the selected identifier.
func (s *Shell) Active() NavID { return s.active }

// Collapsed reports whether the sidebar is collapsed.
func (s *Shell) Collapsed() bool { return s.collapsed }

// OverlayVisible reports whether the dismissible overlay is present. It is
// shown while the sidebar is expanded.
func (s *Shell) OverlayVisible() bool { return !s.collapsed }

// Revision counts state mutations. Hosts re-render when it changes.
func (s *Shell) Revision() uint64 { return s.revision }

// State returns a snapshot of the current state.
func (s *Shell) State() State {
	return State{Active: s.active, Collapsed: s.collapsed}
}

// Activate selects id. It reports whether the selection changed; activating
// the current entry or an identifier outside the navigation model is a no-op.
func (s *Shell) Activate(id NavID) bool {
	if !id.Valid() || id == s.active {
		return false
	}
	s.active = id
	s.revision++
	return true
}

// ToggleCollapse inverts the collapse state. Both the sidebar button and the
// header menu button call it.
func (s *Shell) ToggleCollapse() {
	s.collapsed = !s.collapsed
	s.revision++
}

// DismissOverlay collapses the sidebar. It reports whether the state changed.
func (s *Shell) DismissOverlay() bool {
	if s.collapsed {
		return false
	}
	s.collapsed = true
	s.revision++
	return true
}

// Layout renders the current state.
func (s *Shell) Layout() Layout {
	return Render(Navigation(), s.State())
}
