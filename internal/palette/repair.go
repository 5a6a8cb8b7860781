package palette

import (
	"math"
	"strconv"
	"strings"

	"github.com/jmylchreest/hueforge/internal/colour"
)

// repairColour coerces common near-miss colour notations into RGB.
func repairColour(s string) (colour.RGB, error) {
	v := strings.TrimSpace(s)

	lower := strings.ToLower(v)
	if strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")") {
		if rgb, ok := parseRGBFunc(lower[4 : len(lower)-1]); ok {
			return rgb, nil
		}
		return colour.RGB{}, &colour.FormatError{Input: s}
	}

	v = strings.TrimPrefix(v, "#")
	if len(v) == 3 {
		v = string([]byte{v[0], v[0], v[1], v[1], v[2], v[2]})
	}
	rgb, err := colour.ParseHex("#" + v)
	if err != nil {
		return colour.RGB{}, &colour.FormatError{Input: s}
	}
	return rgb, nil
}

// parseRGBFunc parses the body of an rgb() expression. Channels outside
// [0,255] are clamped.
func parseRGBFunc(body string) (colour.RGB, bool) {
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return colour.RGB{}, false
	}

	var ch [3]uint8
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || math.IsNaN(f) {
			return colour.RGB{}, false
		}
		switch {
		case f < 0:
			ch[i] = 0
		case f > 255:
			ch[i] = 255
		default:
			ch[i] = uint8(f + 0.5) // #nosec G115 -- bounded to [0,255]
		}
	}
	return colour.RGB{R: ch[0], G: ch[1], B: ch[2]}, true
}
