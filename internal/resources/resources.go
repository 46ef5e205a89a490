// Package resources loads the long-lived device fonts used for drawing
// text. A Store is built once at startup and is read-only afterwards.
package resources

import (
	"fmt"
	"sort"

	"inkpad/hal"
)

// Role is the logical use of a font.
type Role uint8

const (
	RoleRegular Role = iota
	RoleTitle
	RoleCaption
)

var roleNames = map[Role]string{
	RoleRegular: "regular",
	RoleTitle:   "title",
	RoleCaption: "caption",
}

func (r Role) String() string {
	if s, ok := roleNames[r]; ok {
		return s
	}
	return fmt.Sprintf("role(%d)", uint8(r))
}

// ParseRole maps a config name to a role.
func ParseRole(s string) (Role, bool) {
	for r, name := range roleNames {
		if name == s {
			return r, true
		}
	}
	return 0, false
}

// FontSpec names a device font. Size is in device pixels; Flags are
// passed through to the device (antialiasing on InkView).
type FontSpec struct {
	Name  string
	Size  int
	Flags int
}

// DefaultSpecs returns the stock font set.
func DefaultSpecs() map[Role]FontSpec {
	return map[Role]FontSpec{
		RoleRegular: {Name: "Roboto", Size: 40},
		RoleTitle:   {Name: "Roboto-Bold", Size: 60},
		RoleCaption: {Name: "Roboto-BoldItalic", Size: 30},
	}
}

// Store owns the opened fonts.
type Store struct {
	fonts map[Role]hal.Font
	specs map[Role]FontSpec
}

// Load opens every font in specs. A regular font is required.
func Load(dev hal.Device, specs map[Role]FontSpec) (*Store, error) {
	if _, ok := specs[RoleRegular]; !ok {
		return nil, fmt.Errorf("resources: no %s font configured", RoleRegular)
	}

	roles := make([]Role, 0, len(specs))
	for r := range specs {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })

	s := &Store{
		fonts: make(map[Role]hal.Font, len(specs)),
		specs: make(map[Role]FontSpec, len(specs)),
	}
	for _, r := range roles {
		spec := specs[r]
		f, err := dev.OpenFont(spec.Name, spec.Size, spec.Flags)
		if err != nil {
			return nil, fmt.Errorf("resources: %s font: %w", r, err)
		}
		s.fonts[r] = f
		s.specs[r] = spec
	}
	return s, nil
}

// Font returns the font for role, falling back to the regular font.
func (s *Store) Font(r Role) hal.Font {
	if f, ok := s.fonts[r]; ok {
		return f
	}
	return s.fonts[RoleRegular]
}

// Spec returns the spec the role's font was opened with.
func (s *Store) Spec(r Role) (FontSpec, bool) {
	spec, ok := s.specs[r]
	return spec, ok
}
