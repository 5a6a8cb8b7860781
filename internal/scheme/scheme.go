// Package scheme generates complete role palettes from colour harmony rules.
package scheme

import (
	"fmt"
	"slices"
	"strings"
)

// Type selects the hue relationship between a palette's colour-bearing roles.
type Type string

const (
	// Random gives brand, accent and highlight independent hues.
	Random Type = "random"
	// Monochromatic uses one hue everywhere, varying saturation and lightness.
	Monochromatic Type = "monochromatic"
	// Analogous places accent and highlight 30° either side of the brand hue.
	Analogous Type = "analogous"
	// Complementary places accent opposite the brand hue.
	Complementary Type = "complementary"
	// Triadic spaces brand, accent and highlight 120° apart.
	Triadic Type = "triadic"
	// Tetradic spaces four hues 90° apart.
	Tetradic Type = "tetradic"
)

// Types returns all scheme types.
func Types() []Type {
	return []Type{Random, Monochromatic, Analogous, Complementary, Triadic, Tetradic}
}

// ParseType converts a string to a Type.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Types(), t) {
		return t, nil
	}
	names := make([]string, 0, len(Types()))
	for _, v := range Types() {
		names = append(names, string(v))
	}
	return "", fmt.Errorf("invalid scheme type: %s (valid: %s)", s, strings.Join(names, ", "))
}

// Hues are the hue angles assigned to the colour-bearing roles.
type Hues struct {
	Brand     float64 `json:"brand"`
	Accent    float64 `json:"accent"`
	Highlight float64 `json:"highlight"`
	// Secondary drives button-secondary.
	Secondary float64 `json:"secondary"`
}
