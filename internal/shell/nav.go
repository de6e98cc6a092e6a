package shell

import (
	"errors"
	"fmt"

	"github.com/microsaas/console/internal/icon"
)

// ErrUnknownNavID is returned when text does not name a navigation entry.
var ErrUnknownNavID = errors.New("unknown navigation identifier")

// NavID identifies one of the fixed navigation entries. The zero value is
// Dashboard.
type NavID uint8

const (
	Dashboard NavID = iota
	Templates
	DataSources
	Tools
	Settings

	navCount = int(Settings) + 1
)

var navKeys = [navCount]string{
	Dashboard:   "Dashboard",
	Templates:   "Templates",
	DataSources: "DataSources",
	Tools:       "Tools",
	Settings:    "Settings",
}

// Item is one entry of the navigation model.
type Item struct {
	Icon  icon.Ref `json:"icon" yaml:"icon"`
	Label string   `json:"label" yaml:"label"`
	ID    NavID    `json:"id" yaml:"id"`
}

var navigation = [navCount]Item{
	{Icon: icon.Home, Label: "Dashboard", ID: Dashboard},
	{Icon: icon.FileText, Label: "Templates", ID: Templates},
	{Icon: icon.Database, Label: "Data Sources", ID: DataSources},
	{Icon: icon.Wrench, Label: "Tools", ID: Tools},
	{Icon: icon.Settings, Label: "Settings", ID: Settings},
}

// Navigation returns the ordered navigation model. The returned slice is a
// copy; the model itself never changes.
func Navigation() []Item {
	items := make([]Item, navCount)
	copy(items, navigation[:])
	return items
}

// IDs returns every identifier in navigation order.
func IDs() []NavID {
	ids := make([]NavID, navCount)
	for i := range ids {
		ids[i] = NavID(i)
	}
	return ids
}

// Valid reports whether id is a member of the closed identifier set.
func (id NavID) Valid() bool {
	return int(id) < navCount
}

// String returns the identifier key, e.g. "DataSources".
func (id NavID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("NavID(%d)", uint8(id))
	}
	return navKeys[id]
}

// Label returns the display label, e.g. "Data Sources".
func (id NavID) Label() string {
	if !id.Valid() {
		return ""
	}
	return navigation[id].Label
}

// Icon returns the icon reference of the entry.
func (id NavID) Icon() icon.Ref {
	if !id.Valid() {
		return icon.Home
	}
	return navigation[id].Icon
}

// MarshalText encodes id by key.
func (id NavID) MarshalText() ([]byte, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("marshal %v: %w", id, ErrUnknownNavID)
	}
	return []byte(navKeys[id]), nil
}

// UnmarshalText decodes a key produced by MarshalText.
func (id *NavID) UnmarshalText(text []byte) error {
	parsed, err := ParseNavID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ParseNavID resolves an identifier key. Matching is exact.
func ParseNavID(s string) (NavID, error) {
	for i, key := range navKeys {
		if key == s {
			return NavID(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownNavID)
}
