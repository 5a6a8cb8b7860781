package colour

import (
	"strconv"
	"strings"
)

const hslNotation = "hsl(h, s%, l%) or h,s,l"

// ParseHSL parses "hsl(217, 91%, 60%)" or the bare "217,91,60" form.
// Commas or spaces separate the components; '%' and '°' are optional.
// Values are returned as given; use Clamp to bring them into range.
func ParseHSL(s string) (HSL, error) {
	body := strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(body, "hsl(") {
		if !strings.HasSuffix(body, ")") {
			return HSL{}, &FormatError{Input: s, Want: hslNotation}
		}
		body = body[len("hsl(") : len(body)-1]
	}

	fields := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 3 {
		return HSL{}, &FormatError{Input: s, Want: hslNotation}
	}

	var v [3]float64
	for i, f := range fields {
		f = strings.TrimSuffix(strings.TrimSuffix(f, "%"), "°")
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return HSL{}, &FormatError{Input: s, Want: hslNotation}
		}
		v[i] = n
	}
	return HSL{H: v[0], S: v[1], L: v[2]}, nil
}

// Parse accepts either "#RRGGBB" or an HSL notation understood by ParseHSL.
func Parse(s string) (RGB, error) {
	t := strings.TrimSpace(s)
	if strings.HasPrefix(t, "#") {
		return ParseHex(t)
	}
	c, err := ParseHSL(t)
	if err != nil {
		return RGB{}, &FormatError{Input: s, Want: "#RRGGBB or " + hslNotation}
	}
	return HSLToRGB(c), nil
}
