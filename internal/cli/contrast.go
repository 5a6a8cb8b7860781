package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hueforge/internal/colour"
)

// contrastResult is the JSON form of the contrast command's output.
type contrastResult struct {
	Foreground string  `json:"foreground"`
	Background string  `json:"background"`
	Ratio      float64 `json:"ratio"`
	DeltaE     float64 `json:"deltaE"`
	AANormal   bool    `json:"aaNormalText"`
	AALarge    bool    `json:"aaLargeText"`
	AAANormal  bool    `json:"aaaNormalText"`
}

func newContrastCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Measure the WCAG contrast ratio of two colours",
		Long: `Measure the WCAG 2.1 contrast ratio between two colours and report whether
it meets the AA minimums for normal text (4.5:1) and large text or UI
components (3:1), and the AAA minimum for normal text (7:1).

Colours may be hex (#rrggbb) or HSL (hsl(217, 91%, 60%) or 217,91,60).
The ratio is symmetric, so argument order only affects the labels. The
CIEDE2000 colour difference is shown alongside: two colours can differ in hue
yet still have too little contrast to read.

Examples:
  hueforge contrast '#767676' '#ffffff'
  hueforge contrast '#3b82f6' '#ffffff' -f json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runContrast(cmd, args[0], args[1], format)
		},
	}

	addFormatFlag(cmd.Flags(), &format, formatTable, formatTable, "json")
	return cmd
}

func (a *app) runContrast(cmd *cobra.Command, fgArg, bgArg, format string) error {
	fg, err := colour.Parse(fgArg)
	if err != nil {
		return fmt.Errorf("foreground: %w", err)
	}
	bg, err := colour.Parse(bgArg)
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}

	ratio := colour.ContrastRatio(fg, bg)
	res := contrastResult{
		Foreground: fg.Hex(),
		Background: bg.Hex(),
		Ratio:      ratio,
		DeltaE:     colour.DeltaE(fg, bg),
		AANormal:   ratio >= colour.MinContrastNormalText,
		AALarge:    ratio >= colour.MinContrastLargeText,
		AAANormal:  ratio >= colour.MinContrastAAA,
	}
	a.logger.Debug("contrast measured", "foreground", res.Foreground, "background", res.Background, "ratio", ratio)

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		_, err = fmt.Fprintf(out, "%s\n", data)
		return err
	case formatTable:
	default:
		return fmt.Errorf("unsupported format for contrast: %s (supported: table, json)", format)
	}

	sample := fmt.Sprintf(" %s on %s ", res.Foreground, res.Background)
	if isTerminal(out) {
		sample = colour.Sample(fg, bg, sample)
	}
	fmt.Fprintf(out, "%s  %s:1  (ΔE2000 %.1f)\n\n", sample, formatRatio(ratio), res.DeltaE)

	t := NewTable([]string{"LEVEL", "MIN", "RESULT"})
	t.AlignRight(1)
	t.AddRow([]string{"AA normal text", formatRatio(colour.MinContrastNormalText), verdict(res.AANormal)})
	t.AddRow([]string{"AA large text / UI", formatRatio(colour.MinContrastLargeText), verdict(res.AALarge)})
	t.AddRow([]string{"AAA normal text", formatRatio(colour.MinContrastAAA), verdict(res.AAANormal)})
	_, err = fmt.Fprint(out, t.Render())
	return err
}
