// Package icon maps symbolic icon references onto terminal glyphs and inline
// SVG markup.
package icon

import (
	"fmt"
	"html/template"
)

// Ref is a symbolic icon reference. Names follow the lucide icon set.
type Ref uint8

const (
	Home Ref = iota
	FileText
	Database
	Wrench
	Settings
	Menu
	X
	User
)

var names = [...]string{
	Home:     "home",
	FileText: "file-text",
	Database: "database",
	Wrench:   "wrench",
	Settings: "settings",
	Menu:     "menu",
	X:        "x",
	User:     "user",
}

var glyphs = [...]string{
	Home:     "⌂",
	FileText: "▤",
	Database: "≣",
	Wrench:   "⚒",
	Settings: "⚙",
	Menu:     "☰",
	X:        "✕",
	User:     "☺",
}

// svgBodies holds the inner elements of each 24x24 lucide icon.
var svgBodies = [...]string{
	Home: `<path d="m3 9 9-7 9 7v11a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2z"/>` +
		`<polyline points="9 22 9 12 15 12 15 22"/>`,
	FileText: `<path d="M15 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V7Z"/>` +
		`<path d="M14 2v4a2 2 0 0 0 2 2h4"/><path d="M10 9H8"/><path d="M16 13H8"/><path d="M16 17H8"/>`,
	Database: `<ellipse cx="12" cy="5" rx="9" ry="3"/>` +
		`<path d="M3 5V19A9 3 0 0 0 21 19V5"/><path d="M3 12A9 3 0 0 0 21 12"/>`,
	Wrench: `<path d="M14.7 6.3a1 1 0 0 0 0 1.4l1.6 1.6a1 1 0 0 0 1.4 0l3.77-3.77a6 6 0 0 1-7.94 7.94` +
		`l-6.91 6.91a2.12 2.12 0 0 1-3-3l6.91-6.91a6 6 0 0 1 7.94-7.94l-3.76 3.76z"/>`,
	Settings: `<path d="M12.22 2h-.44a2 2 0 0 0-2 2v.18a2 2 0 0 1-1 1.73l-.43.25a2 2 0 0 1-2 0l-.15-.08` +
		`a2 2 0 0 0-2.73.73l-.22.38a2 2 0 0 0 .73 2.73l.15.1a2 2 0 0 1 1 1.72v.51a2 2 0 0 1-1 1.74` +
		`l-.15.09a2 2 0 0 0-.73 2.73l.22.38a2 2 0 0 0 2.73.73l.15-.08a2 2 0 0 1 2 0l.43.25a2 2 0 0 1 1 1.73` +
		`V20a2 2 0 0 0 2 2h.44a2 2 0 0 0 2-2v-.18a2 2 0 0 1 1-1.73l.43-.25a2 2 0 0 1 2 0l.15.08` +
		`a2 2 0 0 0 2.73-.73l.22-.39a2 2 0 0 0-.73-2.73l-.15-.08a2 2 0 0 1-1-1.74v-.5a2 2 0 0 1 1-1.74` +
		`l.15-.09a2 2 0 0 0 .73-2.73l-.22-.38a2 2 0 0 0-2.73-.73l-.15.08a2 2 0 0 1-2 0l-.43-.25` +
		`a2 2 0 0 1-1-1.73V4a2 2 0 0 0-2-2z"/><circle cx="12" cy="12" r="3"/>`,
	Menu: `<line x1="4" x2="20" y1="12" y2="12"/><line x1="4" x2="20" y1="6" y2="6"/>` +
		`<line x1="4" x2="20" y1="18" y2="18"/>`,
	X:    `<path d="M18 6 6 18"/><path d="m6 6 12 12"/>`,
	User: `<path d="M19 21v-2a4 4 0 0 0-4-4H9a4 4 0 0 0-4 4v2"/><circle cx="12" cy="7" r="4"/>`,
}

// Valid reports whether r names a known icon.
func (r Ref) Valid() bool {
	return int(r) < len(names)
}

func (r Ref) String() string {
	if !r.Valid() {
		return fmt.Sprintf("icon(%d)", uint8(r))
	}
	return names[r]
}

// MarshalText encodes the reference by name.
func (r Ref) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("icon: unknown reference %d", uint8(r))
	}
	return []byte(names[r]), nil
}

// Glyph returns a single-cell terminal glyph for r.
func Glyph(r Ref) string {
	if !r.Valid() {
		return "?"
	}
	return glyphs[r]
}

// SVG renders r as an inline, aria-hidden SVG element of size x size pixels.
func SVG(r Ref, size int, class string) template.HTML {
	if !r.Valid() || size <= 0 {
		return ""
	}
	// Every interpolated value is either a constant from this package or an
	// integer, so the result is safe to mark as HTML.
	return template.HTML(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" class="%s" aria-hidden="true">%s</svg>`,
		size, size, template.HTMLEscapeString(class), svgBodies[r],
	))
}
