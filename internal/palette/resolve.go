package palette

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/hueforge/internal/colour"
)

// ColorRoles is a palette together with a legible foreground for each
// background role.
type ColorRoles struct {
	Palette Palette
	on      [foregroundCount]colour.RGB

	// Shortfalls lists the foregrounds whose best candidate still fell
	// below the resolver's threshold. The foreground is set regardless.
	Shortfalls []ContrastIssue
}

// Foreground returns the resolved on-colour for f.
func (r ColorRoles) Foreground(f ForegroundRole) colour.RGB {
	if !f.Valid() {
		return colour.RGB{}
	}
	return r.on[f]
}

// Ratio returns the contrast between the on-colour f and its background.
func (r ColorRoles) Ratio(f ForegroundRole) float64 {
	return colour.ContrastRatio(r.Foreground(f), r.Palette.Get(f.Background()))
}

// MarshalJSON encodes the palette roles followed by the on-colours as one
// flat object, the shape template renderers consume.
func (r ColorRoles) MarshalJSON() ([]byte, error) {
	base, err := r.Palette.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Write(base[:len(base)-1])
	for _, f := range ForegroundRoles() {
		fmt.Fprintf(&buf, ",%q:%q", f.String(), r.on[f].Hex())
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the same flat mapping as MarshalJSON.
func (r ColorRoles) MarshalYAML() (any, error) {
	v, err := r.Palette.MarshalYAML()
	if err != nil {
		return nil, err
	}
	node := v.(*yaml.Node)
	for _, f := range ForegroundRoles() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: f.String()},
			&yaml.Node{Kind: yaml.ScalarNode, Value: r.on[f].Hex(), Style: yaml.DoubleQuotedStyle},
		)
	}
	return node, nil
}

// Resolver picks a foreground for each background role from an ordered
// candidate list.
type Resolver struct {
	threshold         float64
	paletteCandidates bool
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithThreshold sets the minimum ratio below which a resolved foreground is
// reported as a shortfall. Non-positive values are ignored.
func WithThreshold(min float64) ResolverOption {
	return func(r *Resolver) {
		if min > 0 {
			r.threshold = min
		}
	}
}

// WithPaletteCandidates extends the candidates with the palette's own
// text-primary and text-secondary, after black and white.
func WithPaletteCandidates(enabled bool) ResolverOption {
	return func(r *Resolver) {
		r.paletteCandidates = enabled
	}
}

// NewResolver creates a resolver. By default it chooses between black and
// white and reports shortfalls under the 3:1 large-text minimum.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{threshold: colour.MinContrastLargeText}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Candidates returns the ordered foreground candidates for p.
func (r *Resolver) Candidates(p Palette) []colour.RGB {
	candidates := []colour.RGB{colour.Black, colour.White}
	if r.paletteCandidates {
		candidates = append(candidates, p.Get(TextPrimary), p.Get(TextSecondary))
	}
	return candidates
}

// Resolve computes the on-colour for every background role of p.
func (r *Resolver) Resolve(p Palette) ColorRoles {
	roles := ColorRoles{Palette: p}
	candidates := r.Candidates(p)

	for _, f := range ForegroundRoles() {
		bg := p.Get(f.Background())
		idx, ratio := pickForeground(candidates, bg)
		roles.on[f] = candidates[idx]
		if ratio < r.threshold {
			roles.Shortfalls = append(roles.Shortfalls, ContrastIssue{
				TextRole:       f.String(),
				BackgroundRole: f.Background().String(),
				Ratio:          ratio,
				Threshold:      r.threshold,
				IsValid:        false,
			})
		}
	}
	return roles
}

// pickForeground returns the index of the candidate with the highest
// contrast against bg. Ties keep the earlier candidate.
func pickForeground(candidates []colour.RGB, bg colour.RGB) (int, float64) {
	best := 0
	bestRatio := colour.ContrastRatio(candidates[0], bg)
	for i := 1; i < len(candidates); i++ {
		if ratio := colour.ContrastRatio(candidates[i], bg); ratio > bestRatio {
			best, bestRatio = i, ratio
		}
	}
	return best, bestRatio
}

var defaultResolver = NewResolver()

// ResolveRoles resolves on-colours using black and white candidates.
func ResolveRoles(p Palette) ColorRoles {
	return defaultResolver.Resolve(p)
}

// OnColour returns the more legible of black and white for an arbitrary
// background.
func OnColour(bg colour.RGB) colour.RGB {
	candidates := []colour.RGB{colour.Black, colour.White}
	idx, _ := pickForeground(candidates, bg)
	return candidates[idx]
}
