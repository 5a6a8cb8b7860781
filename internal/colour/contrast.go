package colour

import "math"

// WCAG 2.1 contrast thresholds. These are policy values for callers; the
// calculator itself never consults them.
const (
	// MinContrastNormalText is the AA minimum for body text.
	MinContrastNormalText = 4.5
	// MinContrastLargeText is the AA minimum for large text and UI components.
	MinContrastLargeText = 3.0
	// MinContrastAAA is the AAA minimum for body text.
	MinContrastAAA = 7.0
)

// Luminance calculates the relative luminance of a colour according to WCAG 2.1.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG21/#dfn-relative-luminance
func Luminance(c RGB) float64 {
	r := linearise(float64(c.R) / 255.0)
	g := linearise(float64(c.G) / 255.0)
	b := linearise(float64(c.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// linearise applies the inverse sRGB companding to a channel in [0,1].
func linearise(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.1.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// The result does not depend on argument order.
// https://www.w3.org/TR/WCAG21/#dfn-contrast-ratio
func ContrastRatio(a, b RGB) float64 {
	l1 := Luminance(a)
	l2 := Luminance(b)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// ContrastRatioHex is ContrastRatio for hex strings.
func ContrastRatioHex(a, b string) (float64, error) {
	ca, err := ParseHex(a)
	if err != nil {
		return 0, err
	}
	cb, err := ParseHex(b)
	if err != nil {
		return 0, err
	}
	return ContrastRatio(ca, cb), nil
}

// HueDistance calculates the angular distance between two hues on the colour wheel.
// Returns a value between 0 and 180 degrees (shortest path around the wheel).
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(WrapHue(h1) - WrapHue(h2))
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}
