package shell

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/microsaas/console/internal/icon"
)

func TestRender_InitialScenario(t *testing.T) {
	t.Parallel()

	layout := New().Layout()

	assert.Equal(t, State{Active: Dashboard, Collapsed: false}, layout.State)
	assert.Equal(t, "Dashboard", layout.Page.Title)
	assert.Equal(t, Brand, layout.Sidebar.Brand)
	assert.Equal(t, SidebarWidthExpanded, layout.Sidebar.WidthClass)
	assert.Contains(t, layout.Sidebar.Class, SidebarWidthExpanded)
	assert.Equal(t, icon.X, layout.Sidebar.Toggle.Icon)

	panel, ok := layout.Page.Panel.(DashboardPanel)
	require.True(t, ok, "panel type %T", layout.Page.Panel)

	values := make([]string, 0, len(panel.Stats))
	for _, s := range panel.Stats {
		values = append(values, s.Value)
	}
	assert.Equal(t, []string{"$45,231", "2,345", "3.24%"}, values)
	assert.Equal(t, TrendDown, panel.Stats[2].Trend)
	assert.Len(t, panel.Activity, 4)
	assert.Equal(t, "Activity item 4", panel.Activity[3].Text)
	require.NotEmpty(t, panel.Revenue)
	assert.Equal(t, 45231, panel.Revenue[len(panel.Revenue)-1].Amount)
}

func TestRender_SettingsScenario(t *testing.T) {
	t.Parallel()

	s := New()
	s.Activate(Settings)
	layout := s.Layout()

	assert.Equal(t, "Settings", layout.Page.Title)
	assert.Equal(t, "Customize your workspace and account preferences.", layout.Page.Subtitle)

	panel, ok := layout.Page.Panel.(SettingsPanel)
	require.True(t, ok, "panel type %T", layout.Page.Panel)
	assert.Equal(t, "Quick Actions", panel.QuickActionsTitle)
	assert.Equal(t, []string{"Profile Settings", "Billing", "Security"}, panel.QuickActions)
}

func TestRender_CollapseScenario(t *testing.T) {
	t.Parallel()

	s := New()
	before := s.Layout()
	s.ToggleCollapse()
	after := s.Layout()

	assert.NotEqual(t, before.Sidebar.WidthClass, after.Sidebar.WidthClass)
	assert.Equal(t, SidebarWidthCollapsed, after.Sidebar.WidthClass)
	assert.Nil(t, after.Overlay)
	assert.Empty(t, after.Sidebar.Brand)
	assert.Equal(t, icon.Menu, after.Sidebar.Toggle.Icon)

	nav := Navigation()
	require.Len(t, after.Sidebar.Entries, len(nav))
	for i, e := range after.Sidebar.Entries {
		assert.Empty(t, e.Label, "primary label slot of %s", e.ID)
		assert.Equal(t, nav[i].Label, e.Title)
		assert.Equal(t, nav[i].Label, e.Tooltip)
		assert.Contains(t, e.LabelClass, "opacity-0")
	}
}

func TestRender_ExpandedEntriesHaveNoTooltip(t *testing.T) {
	t.Parallel()

	for _, e := range New().Layout().Sidebar.Entries {
		assert.NotEmpty(t, e.Label)
		assert.Empty(t, e.Title)
		assert.Empty(t, e.Tooltip)
	}
}

func TestRender_PageTitleUsesDisplayLabel(t *testing.T) {
	t.Parallel()

	layout := Render(Navigation(), State{Active: DataSources})
	assert.Equal(t, "Data Sources", layout.Page.Title)
	assert.Equal(t, "Configure and monitor your data connections.", layout.Page.Subtitle)
}

func TestRender_IsPure(t *testing.T) {
	t.Parallel()

	st := State{Active: Tools, Collapsed: true}
	assert.Equal(t, Render(Navigation(), st), Render(Navigation(), st))
}

func TestLayout_EncodesIdentifiersByName(t *testing.T) {
	t.Parallel()

	layout := Render(Navigation(), State{Active: DataSources, Collapsed: true})

	raw, err := json.Marshal(layout)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	state := decoded["state"].(map[string]any)
	assert.Equal(t, "DataSources", state["active"])
	assert.Equal(t, true, state["collapsed"])
	assert.NotContains(t, decoded, "overlay")

	out, err := yaml.Marshal(layout)
	require.NoError(t, err)
	assert.Contains(t, string(out), "active: DataSources")
	assert.Contains(t, string(out), "icon: database")
}
