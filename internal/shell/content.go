package shell

import (
	"fmt"

	"github.com/microsaas/console/internal/icon"
)

// Trend marks a stat card change as an increase or a decrease.
type Trend uint8

const (
	TrendUp Trend = iota
	TrendDown
)

func (t Trend) String() string {
	if t == TrendDown {
		return "down"
	}
	return "up"
}

// MarshalText encodes the trend as "up" or "down".
func (t Trend) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// StatCard is one headline figure on the Dashboard panel.
type StatCard struct {
	Title  string `json:"title" yaml:"title"`
	Value  string `json:"value" yaml:"value"`
	Change string `json:"change" yaml:"change"`
	Trend  Trend  `json:"trend" yaml:"trend"`
}

// RevenuePoint is one bar of the revenue overview chart.
type RevenuePoint struct {
	Month  string `json:"month" yaml:"month"`
	Amount int    `json:"amount" yaml:"amount"`
}

// ActivityItem is one row of the recent activity list.
type ActivityItem struct {
	Text string `json:"text" yaml:"text"`
	When string `json:"when" yaml:"when"`
}

// Feature is the centred icon/heading/body card shared by most panels.
type Feature struct {
	Icon    icon.Ref `json:"icon" yaml:"icon"`
	Heading string   `json:"heading" yaml:"heading"`
	Body    string   `json:"body" yaml:"body"`
}

// Panel is the content block of one navigation entry. The set of
// implementations is closed: DashboardPanel, TemplatesPanel,
// DataSourcesPanel, ToolsPanel and SettingsPanel.
type Panel interface {
	NavID() NavID
	panel()
}

// DashboardPanel shows stat cards, the revenue chart and recent activity.
type DashboardPanel struct {
	Stats         []StatCard     `json:"stats" yaml:"stats"`
	RevenueTitle  string         `json:"revenue_title" yaml:"revenue_title"`
	Revenue       []RevenuePoint `json:"revenue" yaml:"revenue"`
	ActivityTitle string         `json:"activity_title" yaml:"activity_title"`
	Activity      []ActivityItem `json:"activity" yaml:"activity"`
}

// TemplatesPanel is the template management block.
type TemplatesPanel struct {
	Feature `json:"feature" yaml:"feature"`
}

// DataSourcesPanel is the data source management block.
type DataSourcesPanel struct {
	Feature `json:"feature" yaml:"feature"`
}

// ToolsPanel is the tools and utilities block.
type ToolsPanel struct {
	Feature `json:"feature" yaml:"feature"`
}

// SettingsPanel is the account settings block with its quick actions.
type SettingsPanel struct {
	Feature           `json:"feature" yaml:"feature"`
	QuickActionsTitle string   `json:"quick_actions_title" yaml:"quick_actions_title"`
	QuickActions      []string `json:"quick_actions" yaml:"quick_actions"`
}

func (DashboardPanel) NavID() NavID   { return Dashboard }
func (TemplatesPanel) NavID() NavID   { return Templates }
func (DataSourcesPanel) NavID() NavID { return DataSources }
func (ToolsPanel) NavID() NavID       { return Tools }
func (SettingsPanel) NavID() NavID    { return Settings }

func (DashboardPanel) panel()   {}
func (TemplatesPanel) panel()   {}
func (DataSourcesPanel) panel() {}
func (ToolsPanel) panel()       {}
func (SettingsPanel) panel()    {}

var subtitles = [navCount]string{
	Dashboard:   "Welcome back! Here's what's happening with your business today.",
	Templates:   "Manage and create templates for your projects.",
	DataSources: "Configure and monitor your data connections.",
	Tools:       "Access powerful tools to enhance your workflow.",
	Settings:    "Customize your workspace and account preferences.",
}

// Subtitle returns the fixed page subtitle of id.
func Subtitle(id NavID) string {
	if !id.Valid() {
		return ""
	}
	return subtitles[id]
}

// PanelFor returns the content block mapped to id. Every valid identifier has
// exactly one block; an invalid one panics because it cannot be produced
// through this package's API.
func PanelFor(id NavID) Panel {
	switch id {
	case Dashboard:
		return dashboardPanel()
	case Templates:
		return TemplatesPanel{Feature{
			Icon:    icon.FileText,
			Heading: "Template Management",
			Body:    "Create, edit, and organize your project templates here.",
		}}
	case DataSources:
		return DataSourcesPanel{Feature{
			Icon:    icon.Database,
			Heading: "Data Sources",
			Body:    "Connect and manage your data sources and integrations.",
		}}
	case Tools:
		return ToolsPanel{Feature{
			Icon:    icon.Wrench,
			Heading: "Tools & Utilities",
			Body:    "Access powerful tools to streamline your workflow.",
		}}
	case Settings:
		return SettingsPanel{
			Feature: Feature{
				Icon:    icon.Settings,
				Heading: "Account Settings",
				Body:    "Manage your account preferences and configuration.",
			},
			QuickActionsTitle: "Quick Actions",
			QuickActions:      []string{"Profile Settings", "Billing", "Security"},
		}
	}
	panic(fmt.Sprintf("shell: no panel for %v", id))
}

func dashboardPanel() DashboardPanel {
	activity := make([]ActivityItem, 4)
	for i := range activity {
		activity[i] = ActivityItem{
			Text: fmt.Sprintf("Activity item %d", i+1),
			When: "2 hours ago",
		}
	}

	return DashboardPanel{
		Stats: []StatCard{
			{Title: "Total Revenue", Value: "$45,231", Change: "+20.1% from last month", Trend: TrendUp},
			{Title: "Active Users", Value: "2,345", Change: "+12.5% from last month", Trend: TrendUp},
			{Title: "Conversion Rate", Value: "3.24%", Change: "-2.1% from last month", Trend: TrendDown},
		},
		RevenueTitle: "Revenue Overview",
		Revenue: []RevenuePoint{
			{Month: "Jan", Amount: 28450},
			{Month: "Feb", Amount: 30120},
			{Month: "Mar", Amount: 29870},
			{Month: "Apr", Amount: 32410},
			{Month: "May", Amount: 33980},
			{Month: "Jun", Amount: 35120},
			{Month: "Jul", Amount: 34650},
			{Month: "Aug", Amount: 37210},
			{Month: "Sep", Amount: 38940},
			{Month: "Oct", Amount: 36480},
			{Month: "Nov", Amount: 37661},
			{Month: "Dec", Amount: 45231},
		},
		ActivityTitle: "Recent Activity",
		Activity:      activity,
	}
}
