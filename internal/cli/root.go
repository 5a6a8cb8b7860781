// Package cli provides the command-line interface for hueforge.
package cli

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/hueforge/internal/config"
	"github.com/jmylchreest/hueforge/internal/version"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	verbose    bool
	quiet      bool
	theme      string
	configPath string
}

// app is the state resolved once per invocation and shared by subcommands.
type app struct {
	opts   globalOptions
	cfg    config.Config
	logger hclog.Logger
}

// NewRootCmd builds the hueforge command tree. Each call returns an
// independent tree, so tests can execute commands in isolation.
func NewRootCmd() *cobra.Command {
	a := &app{
		cfg:    config.Default(),
		logger: hclog.NewNullLogger(),
	}

	rootCmd := &cobra.Command{
		Use:   "hueforge",
		Short: "An accessible colour palette generator",
		Long: `hueforge generates 15-role UI colour palettes from colour harmony schemes
and checks them against the WCAG 2.1 contrast minimums.

Palettes produced elsewhere (by hand, by an image extractor or by a model)
can be validated, repaired and given a legible foreground for every
background role.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&a.opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.opts.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVarP(&a.opts.theme, "theme", "t", "", "theme type (light, dark)")
	rootCmd.PersistentFlags().StringVar(&a.opts.configPath, "config", "", "policy file (default: $XDG_CONFIG_HOME/hueforge/config.toml)")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newGenerateCmd(a),
		newValidateCmd(a),
		newRolesCmd(a),
		newConvertCmd(a),
		newContrastCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// setup layers configuration (defaults, file, environment, flags) and
// creates the logger.
func (a *app) setup(cmd *cobra.Command) error {
	a.logger = newLogger(cmd.ErrOrStderr(), a.opts.verbose, a.opts.quiet)

	path, required := a.opts.configPath, true
	if path == "" {
		required = false
		p, err := config.DefaultPath()
		if err != nil {
			a.logger.Debug("no user config directory", "error", err)
		}
		path = p
	}

	cfg, err := config.Load(path, required)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = a.opts.theme
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.cfg = cfg
	a.logger.Debug("configuration loaded",
		"path", path,
		"theme", cfg.Theme,
		"scheme", cfg.Scheme,
		"normal_text_min", cfg.NormalTextMin,
		"large_text_min", cfg.LargeTextMin,
	)
	return nil
}

// newLogger returns the CLI logger. Output goes to w, normally stderr, so it
// never mixes with exported documents on stdout.
func newLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Info
	switch {
	case quiet:
		level = hclog.Error
	case verbose:
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "hueforge",
		Output: w,
		Level:  level,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
