package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/hueforge/internal/export"
)

type rolesOptions struct {
	paletteCandidates bool
	repair            bool
	preview           bool
	format            string
	output            string
}

func newRolesCmd(a *app) *cobra.Command {
	var opts rolesOptions

	cmd := &cobra.Command{
		Use:   "roles <file|->",
		Short: "Resolve a legible foreground for every background role",
		Long: `Read a palette document and pick an on-colour for each background role:
onBrand, onAccent, onHighlight, onPrimary, onSecondary, onBg1, onBg2, onBg3
and onInput.

Black and white are tried first. With --palette-candidates the palette's own
text-primary and text-secondary are also considered. The candidate with the
highest contrast wins; ties go to the earlier candidate. Backgrounds where no
candidate reaches 3:1 are reported as warnings, and the best candidate is
used anyway.

Examples:
  hueforge roles palette.json
  hueforge roles palette.json --palette-candidates -f css`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRoles(cmd, args[0], opts)
		},
	}

	fs := cmd.Flags()
	fs.BoolVar(&opts.paletteCandidates, "palette-candidates", false, "also try text-primary and text-secondary as foregrounds")
	fs.BoolVar(&opts.repair, "repair", false, "coerce loosely formatted colours instead of rejecting them")
	fs.BoolVar(&opts.preview, "preview", false, "show each on-colour over its background on stderr")
	addFormatFlag(fs, &opts.format, string(export.FormatHex), exportFormats()...)
	addOutputFlag(fs, &opts.output)

	return cmd
}

func (a *app) runRoles(cmd *cobra.Command, name string, opts rolesOptions) error {
	format, err := export.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	p, err := a.loadPalette(cmd, name, opts.repair)
	if err != nil {
		return err
	}

	cfg := a.cfg
	if cmd.Flags().Changed("palette-candidates") {
		cfg.PaletteCandidates = opts.paletteCandidates
	}
	roles := cfg.Resolver().Resolve(p)
	a.logShortfalls(roles.Shortfalls)
	a.logger.Debug("roles resolved",
		"candidates", len(cfg.Resolver().Candidates(p)),
		"shortfalls", len(roles.Shortfalls),
	)

	if opts.preview {
		previewRoles(cmd.ErrOrStderr(), roles)
	}

	data, err := export.Render(format, export.Document{Palette: p, Roles: &roles})
	if err != nil {
		return err
	}
	return writeOutput(cmd, opts.output, data)
}
