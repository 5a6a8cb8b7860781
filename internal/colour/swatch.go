package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for truecolour terminals.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Swatch returns a solid block of the given colour, width cells wide.
func Swatch(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return ansiBg(c) + strings.Repeat(" ", width) + ansiReset
}

// SwatchWithText returns a block of colour c with text centred over it.
// The text colour is whichever of black or white contrasts more with c.
func SwatchWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	fg := White
	if ContrastRatio(Black, c) > ContrastRatio(White, c) {
		fg = Black
	}

	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	return ansiBg(c) + ansiFg(fg) + displayText + ansiReset
}

// Sample renders text in colour fg on background bg, used to preview a
// foreground/background pairing.
func Sample(fg, bg RGB, text string) string {
	return ansiBg(bg) + ansiFg(fg) + text + ansiReset
}

// FormatWithLabel formats a colour with a label, its preview and hex code.
func FormatWithLabel(c RGB, label string, width int) string {
	return fmt.Sprintf("%s  %-22s %s", Swatch(c, width), label, c.Hex())
}

func ansiBg(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
}

func ansiFg(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, c.R, c.G, c.B, ansiSuffix)
}
