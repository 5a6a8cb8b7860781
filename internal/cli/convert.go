package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hueforge/internal/colour"
)

func newConvertCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "convert <#rrggbb|h,s,l>",
		Short: "Convert a colour between hex and HSL",
		Long: `Convert a hex colour to HSL, or an HSL colour to hex.

HSL may be written as hsl(217, 91%, 60%) or 217,91,60. Out of range HSL
values are clamped.

Examples:
  hueforge convert '#3b82f6'
  hueforge convert 'hsl(217, 91%, 60%)'
  hueforge convert 217,91,60 --all`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConvert(cmd, args[0], all)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "print hex, rgb, hsl and CIELAB forms")
	return cmd
}

func (a *app) runConvert(cmd *cobra.Command, input string, all bool) error {
	in := strings.TrimSpace(input)
	out := cmd.OutOrStdout()

	var rgb colour.RGB
	var converted string
	if strings.HasPrefix(in, "#") {
		c, err := colour.ParseHex(in)
		if err != nil {
			return err
		}
		rgb, converted = c, c.HSL().String()
	} else {
		hsl, err := colour.ParseHSL(in)
		if err != nil {
			return err
		}
		if clamped := hsl.Clamp(); clamped != hsl {
			a.logger.Debug("hsl clamped", "input", hsl.String(), "clamped", clamped.String())
		}
		rgb = colour.HSLToRGB(hsl)
		converted = rgb.Hex()
	}

	if !all {
		_, err := fmt.Fprintln(out, converted)
		return err
	}
	_, err := fmt.Fprintf(out, "hex  %s\nrgb  %s\nhsl  %s\nlab  %s\n", rgb.Hex(), rgb.String(), rgb.HSL().String(), rgb.LabString())
	return err
}
