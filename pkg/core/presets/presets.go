package presets

import (
	"errors"
	"strings"

	"github.com/wadjakorntonsri/go-linkpage/pkg/core/domain"
)

var ErrPresetNotFound = errors.New("preset not found")

// Family groups presets that declare the same kind of fields.
type Family string

const (
	FamilyPresentation Family = "presentation"
	FamilyButtonFont   Family = "button-font"
)

// ParseFamily accepts the family names used by the API and CLI.
func ParseFamily(s string) (Family, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "presentation", "theme", "themes":
		return FamilyPresentation, true
	case "button-font", "buttons", "button":
		return FamilyButtonFont, true
	default:
		return "", false
	}
}

// Preset is an immutable named bundle of theme fields. Only the fields
// declared in Patch are written when the preset is applied.
type Preset struct {
	Name        string            `json:"name"`
	Family      Family            `json:"family"`
	Description string            `json:"description,omitempty"`
	Icon        string            `json:"icon,omitempty"`
	Patch       domain.ThemePatch `json:"fields"`
}

// Fields lists the theme fields the preset declares.
func (p Preset) Fields() []string {
	return p.Patch.Fields()
}

// Apply returns current with exactly the preset's declared fields
// overwritten. Applying the same preset twice is the same as applying it once.
func Apply(current domain.Theme, p Preset) domain.Theme {
	return current.Apply(p.Patch)
}

// Catalog returns the presets of one family in display order.
func Catalog(f Family) []Preset {
	switch f {
	case FamilyPresentation:
		return Presentation()
	case FamilyButtonFont:
		return ButtonFont()
	default:
		return nil
	}
}

// All returns both catalogs, presentation first.
func All() []Preset {
	return append(Presentation(), ButtonFont()...)
}

// Lookup finds a preset by family and case-insensitive name.
func Lookup(f Family, name string) (Preset, error) {
	for _, p := range Catalog(f) {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return Preset{}, ErrPresetNotFound
}
