package palette

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/jmylchreest/hueforge/internal/colour"
)

// Palette holds exactly one colour per Role. It is a value type: methods
// that change a role return a new Palette and leave the receiver untouched.
type Palette struct {
	colours [roleCount]colour.RGB
}

// New builds a palette from a complete role assignment.
func New(colours [RoleCount]colour.RGB) Palette {
	return Palette{colours: colours}
}

// Get returns the colour assigned to role, or the zero colour for a role
// outside the enumeration.
func (p Palette) Get(role Role) colour.RGB {
	if !role.Valid() {
		return colour.RGB{}
	}
	return p.colours[role]
}

// Hex returns the canonical hex string for role.
func (p Palette) Hex(role Role) string {
	return p.Get(role).Hex()
}

// With returns a copy of the palette with role set to c. Undefined roles
// leave the copy unchanged.
func (p Palette) With(role Role, c colour.RGB) Palette {
	if !role.Valid() {
		return p
	}
	p.colours[role] = c
	return p
}

// All returns an iterator over every role and its colour in canonical order.
func (p Palette) All() func(func(Role, colour.RGB) bool) {
	return func(yield func(Role, colour.RGB) bool) {
		for i, c := range p.colours {
			if !yield(Role(i), c) {
				return
			}
		}
	}
}

// Map returns the palette as a role-name to hex map.
func (p Palette) Map() map[string]string {
	m := make(map[string]string, RoleCount)
	for role, c := range p.All() {
		m[role.String()] = c.Hex()
	}
	return m
}

// ContentHash returns a stable digest of the palette's colours, suitable as
// a memoisation key.
func (p Palette) ContentHash() string {
	h := sha256.New()
	for _, c := range p.colours {
		h.Write([]byte{c.R, c.G, c.B})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// String returns a human-readable listing of the palette.
func (p Palette) String() string {
	var b strings.Builder
	for role, c := range p.All() {
		fmt.Fprintf(&b, "  %-22s %s\n", role.String(), c.Hex())
	}
	return b.String()
}

// StringWithPreview returns the listing with ANSI colour swatches.
func (p Palette) StringWithPreview(showPreview bool) string {
	if !showPreview {
		return p.String()
	}
	var b strings.Builder
	for role, c := range p.All() {
		b.WriteString(colour.FormatWithLabel(c, role.String(), 6))
		b.WriteByte('\n')
	}
	return b.String()
}

// FromMap validates an externally supplied role map and converts it to a
// Palette. The key set must be exactly the defined roles and every value
// must be a "#RRGGBB" string.
func FromMap(m map[string]string) (Palette, error) {
	return fromMap(m, colour.ParseHex)
}

// Repair is like FromMap but first tries to coerce loosely formatted
// colours: surrounding whitespace, a missing '#', 3-digit shorthand and
// rgb(r, g, b) with channels clamped to [0,255]. Key-set errors are never
// repaired.
func Repair(m map[string]string) (Palette, error) {
	return fromMap(m, repairColour)
}

func fromMap(m map[string]string, parse func(string) (colour.RGB, error)) (Palette, error) {
	if err := checkShape(m); err != nil {
		return Palette{}, err
	}

	var p Palette
	for i, name := range roleNames {
		c, err := parse(m[name])
		if err != nil {
			return Palette{}, fmt.Errorf("role %s: %w", name, err)
		}
		p.colours[i] = c
	}
	return p, nil
}

func checkShape(m map[string]string) error {
	var shapeErr ShapeError
	for _, name := range roleNames {
		if _, ok := m[name]; !ok {
			shapeErr.Missing = append(shapeErr.Missing, name)
		}
	}
	known := make(map[string]struct{}, RoleCount)
	for _, name := range roleNames {
		known[name] = struct{}{}
	}
	for key := range m {
		if _, ok := known[key]; !ok {
			shapeErr.Unknown = append(shapeErr.Unknown, key)
		}
	}
	if len(shapeErr.Missing) == 0 && len(shapeErr.Unknown) == 0 {
		return nil
	}
	shapeErr.sort()
	return &shapeErr
}
