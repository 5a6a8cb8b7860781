// Package palette defines the closed set of palette roles, the fixed-shape
// Palette value, and the contrast validator and foreground resolver that
// operate on it.
package palette

import (
	"fmt"
	"strings"
)

// Role is a named semantic slot in a palette.
type Role int

// The fifteen palette roles, in canonical order.
const (
	Brand Role = iota
	Accent
	ButtonPrimary
	ButtonText
	ButtonSecondary
	ButtonSecondaryText
	TextPrimary
	TextSecondary
	SectionBg1
	SectionBg2
	SectionBg3
	Border
	Highlight
	InputBg
	InputText

	roleCount
)

// RoleCount is the number of roles in every palette.
const RoleCount = int(roleCount)

var roleNames = [roleCount]string{
	Brand:               "brand",
	Accent:              "accent",
	ButtonPrimary:       "button-primary",
	ButtonText:          "button-text",
	ButtonSecondary:     "button-secondary",
	ButtonSecondaryText: "button-secondary-text",
	TextPrimary:         "text-primary",
	TextSecondary:       "text-secondary",
	SectionBg1:          "section-bg-1",
	SectionBg2:          "section-bg-2",
	SectionBg3:          "section-bg-3",
	Border:              "border",
	Highlight:           "highlight",
	InputBg:             "input-bg",
	InputText:           "input-text",
}

// String returns the role's key as used in serialised palettes.
func (r Role) String() string {
	if !r.Valid() {
		return fmt.Sprintf("role(%d)", int(r))
	}
	return roleNames[r]
}

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	return r >= 0 && r < roleCount
}

// IsBackground reports whether the role is a surface that text sits on.
func (r Role) IsBackground() bool {
	switch r {
	case SectionBg1, SectionBg2, SectionBg3, InputBg:
		return true
	default:
		return false
	}
}

// Roles returns all roles in canonical order.
func Roles() []Role {
	roles := make([]Role, RoleCount)
	for i := range roles {
		roles[i] = Role(i)
	}
	return roles
}

// RoleNames returns the serialised keys of all roles in canonical order.
func RoleNames() []string {
	names := make([]string, RoleCount)
	copy(names, roleNames[:])
	return names
}

// ParseRole converts a serialised key to a Role. Matching ignores case and
// surrounding whitespace, and accepts underscores in place of hyphens.
func ParseRole(s string) (Role, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for i, name := range roleNames {
		if name == key {
			return Role(i), nil
		}
	}
	return 0, fmt.Errorf("unknown palette role %q", s)
}

// ForegroundRole names a derived on-colour for a background role.
type ForegroundRole int

// The derived foreground roles.
const (
	OnBrand ForegroundRole = iota
	OnAccent
	OnHighlight
	OnPrimary
	OnSecondary
	OnBg1
	OnBg2
	OnBg3
	OnInput

	foregroundCount
)

// ForegroundCount is the number of derived foreground roles.
const ForegroundCount = int(foregroundCount)

var foregroundNames = [foregroundCount]string{
	OnBrand:     "onBrand",
	OnAccent:    "onAccent",
	OnHighlight: "onHighlight",
	OnPrimary:   "onPrimary",
	OnSecondary: "onSecondary",
	OnBg1:       "onBg1",
	OnBg2:       "onBg2",
	OnBg3:       "onBg3",
	OnInput:     "onInput",
}

var foregroundBackgrounds = [foregroundCount]Role{
	OnBrand:     Brand,
	OnAccent:    Accent,
	OnHighlight: Highlight,
	OnPrimary:   ButtonPrimary,
	OnSecondary: ButtonSecondary,
	OnBg1:       SectionBg1,
	OnBg2:       SectionBg2,
	OnBg3:       SectionBg3,
	OnInput:     InputBg,
}

// String returns the serialised key, e.g. "onBrand".
func (f ForegroundRole) String() string {
	if !f.Valid() {
		return fmt.Sprintf("foreground(%d)", int(f))
	}
	return foregroundNames[f]
}

// Valid reports whether f is one of the defined foreground roles.
func (f ForegroundRole) Valid() bool {
	return f >= 0 && f < foregroundCount
}

// Background returns the palette role this foreground is drawn on. An
// undefined foreground maps to an undefined role.
func (f ForegroundRole) Background() Role {
	if !f.Valid() {
		return roleCount
	}
	return foregroundBackgrounds[f]
}

// ForegroundRoles returns all derived foreground roles in canonical order.
func ForegroundRoles() []ForegroundRole {
	roles := make([]ForegroundRole, ForegroundCount)
	for i := range roles {
		roles[i] = ForegroundRole(i)
	}
	return roles
}
