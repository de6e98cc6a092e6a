package shell

import (
	"strings"

	"github.com/microsaas/console/internal/icon"
)

// Brand is the product name shown in the expanded sidebar header.
const Brand = "MicroSaaS"

// Width classes of the sidebar in its two states.
const (
	SidebarWidthExpanded  = "w-60"
	SidebarWidthCollapsed = "w-16"
)

// Layout is the rendered shell: a tree of presentation intent that hosts turn
// into terminal cells or HTML. Class fields carry utility-class styling.
type Layout struct {
	State   State    `json:"state" yaml:"state"`
	Sidebar Sidebar  `json:"sidebar" yaml:"sidebar"`
	Header  Header   `json:"header" yaml:"header"`
	Page    Page     `json:"page" yaml:"page"`
	Overlay *Overlay `json:"overlay,omitempty" yaml:"overlay,omitempty"`
}

// Sidebar is the collapsible navigation column.
type Sidebar struct {
	Collapsed  bool    `json:"collapsed" yaml:"collapsed"`
	WidthClass string  `json:"width_class" yaml:"width_class"`
	Class      string  `json:"class" yaml:"class"`
	Brand      string  `json:"brand" yaml:"brand"`
	BrandClass string  `json:"brand_class" yaml:"brand_class"`
	Toggle     Button  `json:"toggle" yaml:"toggle"`
	NavLabel   string  `json:"nav_label" yaml:"nav_label"`
	Entries    []Entry `json:"entries" yaml:"entries"`
}

// Button is an activatable control that renders a single icon.
type Button struct {
	Icon      icon.Ref `json:"icon" yaml:"icon"`
	AriaLabel string   `json:"aria_label,omitempty" yaml:"aria_label,omitempty"`
	Class     string   `json:"class" yaml:"class"`
}

// Entry is one rendered navigation item.
type Entry struct {
	ID          NavID    `json:"id" yaml:"id"`
	Icon        icon.Ref `json:"icon" yaml:"icon"`
	Label       string   `json:"label" yaml:"label"`
	Current     bool     `json:"current" yaml:"current"`
	AriaCurrent string   `json:"aria_current,omitempty" yaml:"aria_current,omitempty"`
	Title       string   `json:"title,omitempty" yaml:"title,omitempty"`
	Tooltip     string   `json:"tooltip,omitempty" yaml:"tooltip,omitempty"`
	Class       string   `json:"class" yaml:"class"`
	IconClass   string   `json:"icon_class" yaml:"icon_class"`
	LabelClass  string   `json:"label_class" yaml:"label_class"`
}

// Header is the top bar above the content area.
type Header struct {
	Menu    Button `json:"menu" yaml:"menu"`
	Profile Button `json:"profile" yaml:"profile"`
}

// Page is the title block and the visible content panel.
type Page struct {
	Title    string `json:"title" yaml:"title"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
	Panel    Panel  `json:"panel" yaml:"panel"`
}

// Overlay is the full-screen dismissible backdrop used on small viewports.
type Overlay struct {
	Class string `json:"class" yaml:"class"`
}

const (
	sidebarBaseClass = "bg-white border-r border-gray-200 transition-all duration-300 ease-in-out flex flex-col fixed h-full z-30 lg:relative lg:z-auto"
	brandBaseClass   = "font-bold text-xl text-slate-800 transition-opacity duration-300"
	toggleClass      = "p-2 rounded-lg hover:bg-gray-100 transition-colors lg:hidden"
	entryBaseClass   = "w-full flex items-center px-3 py-3 rounded-lg transition-all duration-200 ease-in-out group relative"
	entryActive      = "bg-blue-50 text-blue-600 shadow-sm"
	entryInactive    = "text-slate-600 hover:bg-slate-50 hover:text-slate-900"
	iconBaseClass    = "flex-shrink-0 transition-colors duration-200"
	iconActive       = "text-blue-600"
	iconInactive     = "text-slate-500 group-hover:text-slate-700"
	labelBaseClass   = "ml-3 font-medium transition-all duration-300"
	labelHidden      = "opacity-0 w-0 overflow-hidden"
	menuClass        = "p-2 rounded-lg hover:bg-slate-100 transition-colors lg:hidden"
	profileClass     = "p-2 rounded-lg hover:bg-slate-100 transition-colors"
	overlayClass     = "fixed inset-0 bg-black bg-opacity-50 z-20 lg:hidden"
)

func classes(parts ...string) string {
	return strings.Join(parts, " ")
}

// Render is the view renderer: a pure function of the navigation model and
// the state cells.
func Render(nav []Item, st State) Layout {
	layout := Layout{
		State: st,
		Sidebar: Sidebar{
			Collapsed: st.Collapsed,
			NavLabel:  "Main navigation",
			Toggle:    Button{Icon: icon.X, Class: toggleClass},
			Entries:   make([]Entry, 0, len(nav)),
		},
		Header: Header{
			Menu:    Button{Icon: icon.Menu, AriaLabel: "Toggle navigation menu", Class: menuClass},
			Profile: Button{Icon: icon.User, AriaLabel: "User profile", Class: profileClass},
		},
		Page: Page{
			Title:    st.Active.Label(),
			Subtitle: Subtitle(st.Active),
			Panel:    PanelFor(st.Active),
		},
	}

	sb := &layout.Sidebar
	if st.Collapsed {
		sb.WidthClass = SidebarWidthCollapsed
		sb.BrandClass = classes(brandBaseClass, "opacity-0")
		sb.Toggle.Icon = icon.Menu
	} else {
		sb.WidthClass = SidebarWidthExpanded
		sb.Brand = Brand
		sb.BrandClass = classes(brandBaseClass, "opacity-100")
		layout.Overlay = &Overlay{Class: overlayClass}
	}
	sb.Class = classes(sidebarBaseClass, sb.WidthClass)

	for _, item := range nav {
		sb.Entries = append(sb.Entries, renderEntry(item, st))
	}

	return layout
}

func renderEntry(item Item, st State) Entry {
	e := Entry{
		ID:      item.ID,
		Icon:    item.Icon,
		Current: item.ID == st.Active,
	}

	if e.Current {
		e.AriaCurrent = "page"
		e.Class = classes(entryBaseClass, entryActive)
		e.IconClass = classes(iconBaseClass, iconActive)
	} else {
		e.Class = classes(entryBaseClass, entryInactive)
		e.IconClass = classes(iconBaseClass, iconInactive)
	}

	if st.Collapsed {
		e.Title = item.Label
		e.Tooltip = item.Label
		e.LabelClass = classes(labelBaseClass, labelHidden)
	} else {
		e.Label = item.Label
		e.LabelClass = classes(labelBaseClass, "opacity-100")
	}

	return e
}
