package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InitialState(t *testing.T) {
	t.Parallel()

	s := New()
	assert.Equal(t, Dashboard, s.Active())
	assert.False(t, s.Collapsed())
	assert.True(t, s.OverlayVisible())
	assert.Zero(t, s.Revision())
}

func TestActivate_SelectsEveryIdentifier(t *testing.T) {
	t.Parallel()

	for _, id := range IDs() {
		t.Run(id.String(), func(t *testing.T) {
			t.Parallel()

			s := New()
			s.Activate(id)
			require.Equal(t, id, s.Active())

			layout := s.Layout()
			assert.Equal(t, id, layout.Page.Panel.NavID(), "visible panel")

			current := 0
			for _, e := range layout.Sidebar.Entries {
				if e.Current {
					current++
					assert.Equal(t, id, e.ID)
					assert.Equal(t, "page", e.AriaCurrent)
				} else {
					assert.Empty(t, e.AriaCurrent)
				}
			}
			assert.Equal(t, 1, current, "exactly one current entry")
		})
	}
}

func TestActivate_CurrentEntryIsNoop(t *testing.T) {
	t.Parallel()

	s := New()
	require.True(t, s.Activate(Tools))
	rev := s.Revision()

	assert.False(t, s.Activate(Tools))
	assert.Equal(t, Tools, s.Active())
	assert.Equal(t, rev, s.Revision(), "no-op activation must not bump the revision")
}

func TestActivate_IgnoresUnknownIdentifier(t *testing.T) {
	t.Parallel()

	s := New()
	assert.False(t, s.Activate(NavID(42)))
	assert.Equal(t, Dashboard, s.Active())
	assert.Zero(t, s.Revision())
}

func TestToggleCollapse_Involution(t *testing.T) {
	t.Parallel()

	for _, start := range []bool{false, true} {
		s := New()
		if start {
			s.ToggleCollapse()
		}
		s.ToggleCollapse()
		s.ToggleCollapse()
		assert.Equal(t, start, s.Collapsed())
	}
}

func TestOverlay_FollowsCollapseState(t *testing.T) {
	t.Parallel()

	s := New()
	assert.NotNil(t, s.Layout().Overlay)

	s.ToggleCollapse()
	assert.False(t, s.OverlayVisible())
	assert.Nil(t, s.Layout().Overlay)

	s.ToggleCollapse()
	assert.NotNil(t, s.Layout().Overlay)
}

func TestDismissOverlay_Collapses(t *testing.T) {
	t.Parallel()

	s := New()
	require.True(t, s.DismissOverlay())
	assert.True(t, s.Collapsed())
	rev := s.Revision()

	assert.False(t, s.DismissOverlay(), "already collapsed")
	assert.Equal(t, rev, s.Revision())
}

func TestRevision_OncePerMutation(t *testing.T) {
	t.Parallel()

	s := New()
	s.Activate(Settings)
	s.ToggleCollapse()
	s.DismissOverlay() // already collapsed
	s.ToggleCollapse()
	s.DismissOverlay()
	assert.Equal(t, uint64(4), s.Revision())
}
