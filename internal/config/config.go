// Package config loads engine policy: default scheme and theme, contrast
// thresholds, and resolver candidates. Values are layered as defaults, then
// an optional TOML file, then HUEFORGE_* environment variables; command-line
// flags are applied last by the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jmylchreest/hueforge/internal/colour"
	"github.com/jmylchreest/hueforge/internal/palette"
	"github.com/jmylchreest/hueforge/internal/scheme"
)

const (
	// ConfigDir is the directory under the user config dir holding hueforge files.
	ConfigDir = "hueforge"
	// ConfigFileName is the default policy file name.
	ConfigFileName = "config.toml"

	// Theme values.
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Environment variables read by ApplyEnv.
const (
	EnvTheme             = "HUEFORGE_THEME"
	EnvScheme            = "HUEFORGE_SCHEME"
	EnvNormalTextMin     = "HUEFORGE_NORMAL_TEXT_MIN"
	EnvLargeTextMin      = "HUEFORGE_LARGE_TEXT_MIN"
	EnvPaletteCandidates = "HUEFORGE_PALETTE_CANDIDATES"
)

// Config holds engine policy.
type Config struct {
	Theme             string  `toml:"theme"`
	Scheme            string  `toml:"scheme"`
	NormalTextMin     float64 `toml:"normal_text_min"`
	LargeTextMin      float64 `toml:"large_text_min"`
	PaletteCandidates bool    `toml:"palette_candidates"`
}

// Default returns the built-in policy: light theme, random scheme and
// WCAG AA thresholds.
func Default() Config {
	return Config{
		Theme:         ThemeLight,
		Scheme:        string(scheme.Random),
		NormalTextMin: colour.MinContrastNormalText,
		LargeTextMin:  colour.MinContrastLargeText,
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(dir, ConfigDir, ConfigFileName), nil
}

// Load reads a TOML policy file over the defaults. A missing file is not an
// error unless required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// ApplyEnv overrides fields from HUEFORGE_* environment variables.
func (c *Config) ApplyEnv() error {
	return c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvTheme); ok && v != "" {
		c.Theme = v
	}
	if v, ok := lookup(EnvScheme); ok && v != "" {
		c.Scheme = v
	}
	if v, ok := lookup(EnvNormalTextMin); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvNormalTextMin, err)
		}
		c.NormalTextMin = f
	}
	if v, ok := lookup(EnvLargeTextMin); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvLargeTextMin, err)
		}
		c.LargeTextMin = f
	}
	if v, ok := lookup(EnvPaletteCandidates); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvPaletteCandidates, err)
		}
		c.PaletteCandidates = b
	}
	return nil
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	switch c.Theme {
	case ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("invalid theme: %s (valid: light, dark)", c.Theme)
	}
	if _, err := scheme.ParseType(c.Scheme); err != nil {
		return err
	}
	if c.NormalTextMin < 1 || c.NormalTextMin > 21 {
		return fmt.Errorf("normal_text_min must be within [1,21], got %v", c.NormalTextMin)
	}
	if c.LargeTextMin < 1 || c.LargeTextMin > 21 {
		return fmt.Errorf("large_text_min must be within [1,21], got %v", c.LargeTextMin)
	}
	return nil
}

// Dark reports whether the configured theme is dark.
func (c Config) Dark() bool {
	return c.Theme == ThemeDark
}

// SchemeType returns the configured scheme. Call Validate first.
func (c Config) SchemeType() scheme.Type {
	t, err := scheme.ParseType(c.Scheme)
	if err != nil {
		return scheme.Random
	}
	return t
}

// Thresholds returns the validator thresholds.
func (c Config) Thresholds() palette.Thresholds {
	return palette.Thresholds{
		NormalText:  c.NormalTextMin,
		UIComponent: c.LargeTextMin,
	}
}

// Resolver builds a foreground resolver from the policy.
func (c Config) Resolver() *palette.Resolver {
	return palette.NewResolver(
		palette.WithThreshold(c.LargeTextMin),
		palette.WithPaletteCandidates(c.PaletteCandidates),
	)
}
