package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hueforge/internal/colour"
	"github.com/jmylchreest/hueforge/internal/export"
	"github.com/jmylchreest/hueforge/internal/palette"
	"github.com/jmylchreest/hueforge/internal/watch"
)

const formatTable = "table"

type validateOptions struct {
	repair bool
	strict bool
	aaa    bool
	watch  bool
	format string
	output string
}

func newValidateCmd(a *app) *cobra.Command {
	var opts validateOptions

	cmd := &cobra.Command{
		Use:   "validate <file|->",
		Short: "Check a palette against the WCAG contrast minimums",
		Long: `Read a palette document (JSON or YAML, "-" for stdin) and measure the contrast
of each text/background role pair.

Body text pairs need 4.5:1 and UI component pairs need 3:1 unless the policy
file or environment sets other minimums; --aaa applies 7:1 and 4.5:1.

With --repair, loosely formatted colours (#abc, 3b82f6, rgb(59,130,246)) are
accepted and written back in canonical form when a document format is chosen.

With --watch, the report is printed again each time the file is saved,
until interrupted.

Examples:
  hueforge validate palette.json
  hueforge validate palette.yaml --watch
  cat palette.yaml | hueforge validate - --strict
  hueforge validate ai-output.json --repair -f json -o palette.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValidate(cmd, args[0], opts)
		},
	}

	fs := cmd.Flags()
	fs.BoolVar(&opts.repair, "repair", false, "coerce loosely formatted colours instead of rejecting them")
	fs.BoolVar(&opts.strict, "strict", false, "exit with an error when any pair fails")
	fs.BoolVar(&opts.aaa, "aaa", false, "apply the WCAG AAA minimums")
	fs.BoolVar(&opts.watch, "watch", false, "re-validate whenever the file changes")
	addFormatFlag(fs, &opts.format, formatTable, formatTable, string(export.FormatJSON), string(export.FormatYAML))
	addOutputFlag(fs, &opts.output)

	return cmd
}

func (a *app) runValidate(cmd *cobra.Command, name string, opts validateOptions) error {
	if !opts.watch {
		return a.validateOnce(cmd, name, opts)
	}
	if name == stdinName {
		return fmt.Errorf("--watch needs a file, not stdin")
	}

	w, err := watch.New(name, watch.WithLogger(a.logger))
	if err != nil {
		return err
	}
	// Failures are reported and watching continues.
	check := func() {
		if err := a.validateOnce(cmd, name, opts); err != nil {
			a.logger.Error("validation failed", "path", name, "error", err)
		}
	}
	check()
	a.logger.Info("watching for changes", "path", w.Path())
	return w.Run(cmd.Context(), check)
}

// validateOnce reads, checks and reports a palette file.
func (a *app) validateOnce(cmd *cobra.Command, name string, opts validateOptions) error {
	p, err := a.loadPalette(cmd, name, opts.repair)
	if err != nil {
		return err
	}

	thresholds := a.cfg.Thresholds()
	if opts.aaa {
		thresholds = palette.Thresholds{
			NormalText:  colour.MinContrastAAA,
			UIComponent: colour.MinContrastNormalText,
		}
	}
	issues := palette.NewValidator(thresholds).Validate(p)
	failed := palette.Failures(issues)

	var data []byte
	if opts.format == formatTable {
		data = []byte(issueTable(issues))
	} else {
		format, err := export.ParseFormat(opts.format)
		if err != nil {
			return err
		}
		if format != export.FormatJSON && format != export.FormatYAML {
			return fmt.Errorf("unsupported format for validate: %s (supported: table, json, yaml)", opts.format)
		}
		if data, err = export.Render(format, export.Document{Palette: p, Issues: issues}); err != nil {
			return err
		}
	}
	if err := writeOutput(cmd, opts.output, data); err != nil {
		return err
	}

	if len(failed) == 0 {
		a.logger.Info("all contrast pairs pass", "pairs", len(issues))
		return nil
	}
	a.logFailures(failed)
	if opts.strict {
		return contrastFailure(failed, len(issues))
	}
	return nil
}

// loadPalette reads and decodes a palette document.
func (a *app) loadPalette(cmd *cobra.Command, name string, repair bool) (palette.Palette, error) {
	data, err := readInput(cmd, name)
	if err != nil {
		return palette.Palette{}, err
	}
	p, err := palette.Decode(data, repair)
	if err != nil {
		return palette.Palette{}, fmt.Errorf("invalid palette %s: %w", name, err)
	}
	a.logger.Debug("palette loaded", "source", name, "repair", repair, "hash", p.ContentHash()[:12])
	return p, nil
}
