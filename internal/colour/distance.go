package colour

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// colorful converts to go-colorful's [0,1] channel representation.
func (rgb RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}
}

// Lab returns the CIELAB coordinates (D65) with L in [0,100].
func (rgb RGB) Lab() (l, a, b float64) {
	l, a, b = rgb.colorful().Lab()
	return l * 100, a * 100, b * 100
}

// LabString formats the CIELAB coordinates as "lab(l, a, b)".
func (rgb RGB) LabString() string {
	l, a, b := rgb.Lab()
	return fmt.Sprintf("lab(%.1f, %.1f, %.1f)", l, a, b)
}

// DeltaE returns the CIEDE2000 difference between two colours on the usual
// 0-100 scale. Values below about 2 are hard to tell apart.
func DeltaE(a, b RGB) float64 {
	return a.colorful().DistanceCIEDE2000(b.colorful()) * 100
}
