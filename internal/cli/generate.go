package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/hueforge/internal/export"
	"github.com/jmylchreest/hueforge/internal/palette"
	"github.com/jmylchreest/hueforge/internal/scheme"
	"github.com/jmylchreest/hueforge/internal/seed"
)

type generateOptions struct {
	scheme   string
	seed     int64
	seedMode string
	seedText string
	format   string
	output   string
	preview  bool
	validate bool
	roles    bool
}

func newGenerateCmd(a *app) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a palette from a colour harmony scheme",
		Long: `Generate a complete 15-role palette from a colour harmony scheme.

The scheme decides how the brand, accent and highlight hues relate; the theme
decides whether backgrounds are light or dark. Every run logs its seed so a
palette can be reproduced with --seed.

Schemes:
  random, monochromatic, analogous, complementary, triadic, tetradic

Examples:
  # Random light palette
  hueforge generate

  # Reproducible dark triadic palette as JSON
  hueforge generate --scheme triadic --theme dark --seed 42 -f json

  # Derive the palette from a brand name and write CSS variables
  hueforge generate --seed-text "Acme Ltd" --roles -f css -o palette.css

  # Fail if any text/background pair is below the WCAG minimum
  hueforge generate --validate -f yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runGenerate(cmd, opts)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&opts.scheme, "scheme", "s", "", "harmony scheme (default from config, else random)")
	fs.Int64Var(&opts.seed, "seed", 0, "seed for reproducible output (implies --seed-mode manual)")
	fs.StringVar(&opts.seedMode, "seed-mode", "", "seed mode (random, manual, text)")
	fs.StringVar(&opts.seedText, "seed-text", "", "phrase to derive the seed from (implies --seed-mode text)")
	addFormatFlag(fs, &opts.format, string(export.FormatHex), exportFormats()...)
	addOutputFlag(fs, &opts.output)
	fs.BoolVar(&opts.preview, "preview", false, "show colour swatches on stderr")
	fs.BoolVar(&opts.validate, "validate", false, "check contrast and fail if any pair is below its minimum")
	fs.BoolVar(&opts.roles, "roles", false, "include the resolved on-colours")
	cmd.MarkFlagsMutuallyExclusive("seed", "seed-text")

	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, opts generateOptions) error {
	schemeName := a.cfg.Scheme
	if cmd.Flags().Changed("scheme") {
		schemeName = opts.scheme
	}
	schemeType, err := scheme.ParseType(schemeName)
	if err != nil {
		return err
	}

	format, err := export.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	seedCfg, err := a.seedConfig(cmd.Flags(), opts)
	if err != nil {
		return err
	}
	s, err := seed.Calculate(seedCfg)
	if err != nil {
		return err
	}
	a.logger.Debug("seed calculated", "mode", seedCfg.Mode, "seed", s)

	res := scheme.GenerateResult(schemeType, a.cfg.Dark(), scheme.WithSeed(s))
	a.logger.Info("palette generated",
		"scheme", res.Type,
		"theme", a.cfg.Theme,
		"seed", res.Seed,
		"base_hue", fmt.Sprintf("%.1f", res.BaseHue),
	)

	doc := export.Document{Palette: res.Palette, Scheme: &res}
	if opts.roles {
		roles := a.cfg.Resolver().Resolve(res.Palette)
		a.logShortfalls(roles.Shortfalls)
		doc.Roles = &roles
	}

	var failed []palette.ContrastIssue
	if opts.validate {
		doc.Issues = palette.NewValidator(a.cfg.Thresholds()).Validate(res.Palette)
		failed = palette.Failures(doc.Issues)
		a.logFailures(failed)
	}

	if opts.preview {
		a.preview(cmd, res.Palette)
	}

	data, err := export.Render(format, doc)
	if err != nil {
		return err
	}
	if err := writeOutput(cmd, opts.output, data); err != nil {
		return err
	}
	if opts.output != "" {
		a.logger.Info("palette written", "path", opts.output, "format", format)
	}

	if len(failed) > 0 {
		return contrastFailure(failed, len(doc.Issues))
	}
	return nil
}

// seedConfig maps the seed flags to a seed.Config. An explicit --seed-mode
// wins; otherwise --seed and --seed-text select their modes. A negative
// --seed is out of range and falls back to a random seed.
func (a *app) seedConfig(fs *pflag.FlagSet, opts generateOptions) (seed.Config, error) {
	cfg := seed.Config{Mode: seed.ModeRandom, Text: opts.seedText}

	if fs.Changed("seed") {
		if opts.seed < 0 {
			a.logger.Warn("negative seed ignored, using a random seed", "seed", opts.seed)
		} else {
			v := opts.seed
			cfg.Value = &v
			cfg.Mode = seed.ModeManual
		}
	}
	if fs.Changed("seed-text") {
		cfg.Mode = seed.ModeText
	}

	if fs.Changed("seed-mode") {
		mode, err := seed.ParseMode(strings.ToLower(opts.seedMode))
		if err != nil {
			return seed.Config{}, err
		}
		cfg.Mode = mode
	}
	return cfg, nil
}
