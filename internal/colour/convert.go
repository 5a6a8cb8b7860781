// Package colour provides colour space conversion and WCAG contrast measurement.
package colour

import (
	"fmt"
	"math"
	"strconv"
)

// RGB represents a colour in 8-bit sRGB.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Common colours used as foreground candidates.
var (
	Black = RGB{R: 0, G: 0, B: 0}
	White = RGB{R: 255, G: 255, B: 255}
)

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the canonical lowercase hex form (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// HSL returns the colour converted to HSL.
func (rgb RGB) HSL() HSL {
	return RGBToHSL(rgb)
}

// HSL represents a colour in HSL space.
// H is hue in degrees [0,360), S and L are percentages [0,100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// String returns the HSL colour as "hsl(h, s%, l%)".
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", c.H, c.S, c.L)
}

// Clamp wraps the hue modulo 360 and clamps saturation and lightness to [0,100].
func (c HSL) Clamp() HSL {
	return HSL{
		H: WrapHue(c.H),
		S: clamp(c.S, 0, 100),
		L: clamp(c.L, 0, 100),
	}
}

// Rotate returns the colour with its hue shifted by deg degrees.
func (c HSL) Rotate(deg float64) HSL {
	c.H = WrapHue(c.H + deg)
	return c
}

// WrapHue normalises a hue angle into [0,360).
func WrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// math.Mod of a tiny negative value can land exactly on 360 after the add.
	if h >= 360 {
		h = 0
	}
	return h
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// ParseHex parses a "#RRGGBB" string, case-insensitively.
func ParseHex(s string) (RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, &FormatError{Input: s}
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return RGB{}, &FormatError{Input: s}
	}
	return RGB{
		R: uint8(v >> 16),        // #nosec G115 -- masked to 8 bits
		G: uint8((v >> 8) & 0xff), // #nosec G115 -- masked to 8 bits
		B: uint8(v & 0xff),        // #nosec G115 -- masked to 8 bits
	}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// Intended for package-level colour literals and tests.
func MustParseHex(s string) RGB {
	rgb, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return rgb
}

// NormaliseHex validates a hex colour and returns its canonical lowercase form.
func NormaliseHex(s string) (string, error) {
	rgb, err := ParseHex(s)
	if err != nil {
		return "", err
	}
	return rgb.Hex(), nil
}

// HexToHSL converts a "#RRGGBB" string to HSL.
func HexToHSL(hex string) (HSL, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return HSL{}, err
	}
	return RGBToHSL(rgb), nil
}

// HSLToHex converts an HSL colour to a hex string. Out of range inputs are
// clamped rather than rejected.
func HSLToHex(c HSL) string {
	return HSLToRGB(c).Hex()
}

// RGBToHSL converts RGB to HSL colour space.
func RGBToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2.0
	if delta == 0 {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	var s float64
	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}

	return HSL{H: WrapHue(h * 60), S: s * 100, L: l * 100}
}

// HSLToRGB converts HSL to RGB colour space. Channels are rounded to the
// nearest 8-bit value so hex round trips stay within one step per channel.
func HSLToRGB(c HSL) RGB {
	c = c.Clamp()
	s := c.S / 100
	l := c.L / 100

	if s == 0 {
		v := to8bit(l)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: to8bit(hueToRGB(p, q, c.H+120)),
		G: to8bit(hueToRGB(p, q, c.H)),
		B: to8bit(hueToRGB(p, q, c.H-120)),
	}
}

// hueToRGB is a helper for HSL to RGB conversion.
func hueToRGB(p, q, t float64) float64 {
	t = WrapHue(t)

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}

func to8bit(v float64) uint8 {
	return uint8(math.Round(clamp(v, 0, 1) * 255)) // #nosec G115 -- clamped to [0,255]
}
