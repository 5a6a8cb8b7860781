package scheme

import (
	"math/rand/v2"

	"github.com/jmylchreest/hueforge/internal/colour"
)

// band is a saturation and lightness range, in percent, for one role.
type band struct {
	sMin, sMax float64
	lMin, lMax float64
}

func (b band) pick(hue float64, rng *rand.Rand) colour.RGB {
	s := b.sMin + rng.Float64()*(b.sMax-b.sMin)
	l := b.lMin + rng.Float64()*(b.lMax-b.lMin)
	return colour.HSLToRGB(colour.HSL{H: hue, S: s, L: l})
}

// bands is the full role-to-band assignment for one theme polarity.
type bands struct {
	brand, accent, highlight       band
	buttonPrimary, buttonSecondary band
	bg1, bg2, bg3, inputBg, border band
	textPrimary, textSecondary     band
	inputText                      band
}

// Button label tints, shared by both themes.
var (
	textLight = band{sMin: 0, sMax: 15, lMin: 97, lMax: 100}
	textDark  = band{sMin: 10, sMax: 25, lMin: 6, lMax: 10}
)

// Backgrounds sit in [88,100] lightness on light themes and [6,16] on dark
// ones; colour-bearing roles stay within [35,65].
var (
	lightBands = bands{
		brand:           band{sMin: 65, sMax: 85, lMin: 40, lMax: 50},
		accent:          band{sMin: 70, sMax: 90, lMin: 45, lMax: 58},
		highlight:       band{sMin: 70, sMax: 90, lMin: 50, lMax: 62},
		buttonPrimary:   band{sMin: 65, sMax: 85, lMin: 36, lMax: 44},
		buttonSecondary: band{sMin: 25, sMax: 45, lMin: 86, lMax: 92},
		bg1:             band{sMin: 0, sMax: 12, lMin: 97, lMax: 100},
		bg2:             band{sMin: 10, sMax: 25, lMin: 93, lMax: 96},
		bg3:             band{sMin: 10, sMax: 25, lMin: 89, lMax: 92},
		inputBg:         band{sMin: 0, sMax: 8, lMin: 98, lMax: 100},
		border:          band{sMin: 8, sMax: 20, lMin: 78, lMax: 84},
		textPrimary:     band{sMin: 10, sMax: 25, lMin: 7, lMax: 12},
		textSecondary:   band{sMin: 5, sMax: 15, lMin: 30, lMax: 36},
		inputText:       band{sMin: 10, sMax: 25, lMin: 8, lMax: 13},
	}

	darkBands = bands{
		brand:           band{sMin: 60, sMax: 80, lMin: 55, lMax: 65},
		accent:          band{sMin: 65, sMax: 85, lMin: 55, lMax: 65},
		highlight:       band{sMin: 65, sMax: 85, lMin: 55, lMax: 65},
		buttonPrimary:   band{sMin: 60, sMax: 80, lMin: 50, lMax: 58},
		buttonSecondary: band{sMin: 20, sMax: 35, lMin: 20, lMax: 26},
		bg1:             band{sMin: 10, sMax: 25, lMin: 6.5, lMax: 8},
		bg2:             band{sMin: 10, sMax: 25, lMin: 9, lMax: 11},
		bg3:             band{sMin: 10, sMax: 25, lMin: 12, lMax: 14.5},
		inputBg:         band{sMin: 8, sMax: 18, lMin: 10, lMax: 13},
		border:          band{sMin: 8, sMax: 18, lMin: 24, lMax: 30},
		textPrimary:     band{sMin: 8, sMax: 20, lMin: 92, lMax: 97},
		textSecondary:   band{sMin: 5, sMax: 15, lMin: 68, lMax: 74},
		inputText:       band{sMin: 8, sMax: 20, lMin: 90, lMax: 95},
	}
)

func bandsFor(dark bool) bands {
	if dark {
		return darkBands
	}
	return lightBands
}
