// Package export renders palettes, resolved roles and contrast reports in
// the formats the CLI writes.
package export

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/hueforge/internal/palette"
	"github.com/jmylchreest/hueforge/internal/scheme"
)

//go:embed palette.css.tmpl
var cssTemplate string

// Format is an output encoding.
type Format string

const (
	FormatHex  Format = "hex"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSS  Format = "css"
)

// Formats returns all supported formats.
func Formats() []Format {
	return []Format{FormatHex, FormatJSON, FormatYAML, FormatCSS}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if slices.Contains(Formats(), f) {
		return f, nil
	}
	return "", fmt.Errorf("unsupported format: %s (supported: hex, json, yaml, css)", s)
}

// Document is the content of one export. Only Palette is required.
type Document struct {
	Palette palette.Palette
	Roles   *palette.ColorRoles
	Issues  []palette.ContrastIssue
	Scheme  *scheme.Result
}

// envelope is the JSON and YAML layout of a Document.
type envelope struct {
	Scheme  *schemeInfo             `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	Palette *palette.Palette        `json:"palette,omitempty" yaml:"palette,omitempty"`
	Roles   *palette.ColorRoles     `json:"roles,omitempty" yaml:"roles,omitempty"`
	Issues  []palette.ContrastIssue `json:"issues,omitempty" yaml:"issues,omitempty"`
}

type schemeInfo struct {
	Type    scheme.Type `json:"type" yaml:"type"`
	Dark    bool        `json:"dark" yaml:"dark"`
	Seed    *int64      `json:"seed,omitempty" yaml:"seed,omitempty"`
	BaseHue float64     `json:"baseHue" yaml:"baseHue"`
	Hues    scheme.Hues `json:"hues" yaml:"hues"`
}

func (d Document) envelope() envelope {
	env := envelope{Roles: d.Roles, Issues: d.Issues}
	if d.Roles == nil {
		p := d.Palette
		env.Palette = &p
	}
	if d.Scheme != nil {
		info := &schemeInfo{
			Type:    d.Scheme.Type,
			Dark:    d.Scheme.Dark,
			BaseHue: d.Scheme.BaseHue,
			Hues:    d.Scheme.Hues,
		}
		if d.Scheme.Seeded {
			s := d.Scheme.Seed
			info.Seed = &s
		}
		env.Scheme = info
	}
	return env
}

// Render encodes the document in the given format.
func Render(f Format, d Document) ([]byte, error) {
	switch f {
	case FormatHex:
		return renderHex(d), nil
	case FormatJSON:
		data, err := json.MarshalIndent(d.envelope(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode JSON: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(d.envelope())
		if err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		return data, nil
	case FormatCSS:
		return renderCSS(d)
	default:
		return nil, fmt.Errorf("unsupported format: %s", f)
	}
}

// renderHex writes one "role #hex" line per colour.
func renderHex(d Document) []byte {
	var buf bytes.Buffer
	for role, c := range d.Palette.All() {
		fmt.Fprintf(&buf, "%-22s %s\n", role.String(), c.Hex())
	}
	if d.Roles != nil {
		for _, f := range palette.ForegroundRoles() {
			fmt.Fprintf(&buf, "%-22s %s\n", f.String(), d.Roles.Foreground(f).Hex())
		}
	}
	return buf.Bytes()
}

type cssVar struct {
	Name string
	Hex  string
}

type cssData struct {
	Scheme      *scheme.Result
	Colours     []cssVar
	Foregrounds []cssVar
}

// renderCSS writes CSS custom properties, one per role and on-colour.
func renderCSS(d Document) ([]byte, error) {
	tmpl, err := template.New("palette.css").Parse(cssTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSS template: %w", err)
	}

	data := cssData{Scheme: d.Scheme}
	for role, c := range d.Palette.All() {
		data.Colours = append(data.Colours, cssVar{Name: role.String(), Hex: c.Hex()})
	}
	if d.Roles != nil {
		for _, f := range palette.ForegroundRoles() {
			data.Foregrounds = append(data.Foregrounds, cssVar{Name: cssName(f), Hex: d.Roles.Foreground(f).Hex()})
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute CSS template: %w", err)
	}
	return buf.Bytes(), nil
}

// cssName converts "onBrand" to "on-brand" and "onBg1" to "on-bg-1".
func cssName(f palette.ForegroundRole) string {
	var b strings.Builder
	for i, r := range f.String() {
		switch {
		case r >= 'A' && r <= 'Z':
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r + ('a' - 'A'))
		case r >= '0' && r <= '9':
			b.WriteByte('-')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
