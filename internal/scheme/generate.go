package scheme

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/jmylchreest/hueforge/internal/colour"
	"github.com/jmylchreest/hueforge/internal/palette"
	"github.com/jmylchreest/hueforge/internal/seed"
)

// Result is a generated palette together with the inputs that reproduce it.
type Result struct {
	Palette palette.Palette `json:"palette" yaml:"palette"`
	Type    Type            `json:"scheme" yaml:"scheme"`
	Dark    bool            `json:"dark" yaml:"dark"`
	// Seed reproduces the palette when passed back via WithSeed. It is
	// zero and Seeded is false when the caller supplied its own source.
	Seed    int64           `json:"seed" yaml:"seed"`
	Seeded  bool            `json:"-" yaml:"-"`
	BaseHue float64         `json:"baseHue" yaml:"baseHue"`
	Hues    Hues            `json:"hues" yaml:"hues"`
}

type options struct {
	seed *int64
	rng  *rand.Rand
}

// Option configures generation.
type Option func(*options)

// WithSeed makes generation deterministic. Negative seeds are out of range
// and are ignored, falling back to a random seed.
func WithSeed(s int64) Option {
	return func(o *options) {
		if s >= 0 {
			o.seed = &s
		}
	}
}

// WithRand supplies the random source directly. It takes precedence over
// WithSeed.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// Generate builds a complete palette for the scheme and theme.
func Generate(t Type, dark bool, opts ...Option) palette.Palette {
	return GenerateResult(t, dark, opts...).Palette
}

// GenerateResult is Generate, also returning the seed and hues used.
// Unknown scheme types are generated as Random.
func GenerateResult(t Type, dark bool, opts ...Option) Result {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	res := Result{Type: t, Dark: dark}
	rng := o.rng
	if rng == nil {
		s := seed.GenerateRandomSeed()
		if o.seed != nil {
			s = *o.seed
		}
		res.Seed, res.Seeded = s, true
		rng = newRand(s)
	}

	res.BaseHue = rng.Float64() * 360
	res.Hues = roleHues(t, res.BaseHue, rng)
	res.Palette = build(res.Hues, res.BaseHue, bandsFor(dark), rng)
	return res
}

// newRand creates a ChaCha8-backed source from a seed.
func newRand(s int64) *rand.Rand {
	var seedArray [32]byte
	binary.LittleEndian.PutUint64(seedArray[:8], uint64(s)) // #nosec G115 -- seed is non-negative
	// #nosec G404 -- deterministic colour generation, not cryptography
	return rand.New(rand.NewChaCha8(seedArray))
}

// roleHues applies the scheme's hue rotations to the base hue.
func roleHues(t Type, h0 float64, rng *rand.Rand) Hues {
	rot := func(deg float64) float64 { return colour.WrapHue(h0 + deg) }

	switch t {
	case Monochromatic:
		return Hues{Brand: h0, Accent: h0, Highlight: h0, Secondary: h0}
	case Analogous:
		return Hues{Brand: h0, Accent: rot(30), Highlight: rot(-30), Secondary: rot(30)}
	case Complementary:
		return Hues{Brand: h0, Accent: rot(180), Highlight: rot(180), Secondary: rot(180)}
	case Triadic:
		return Hues{Brand: h0, Accent: rot(120), Highlight: rot(240), Secondary: rot(120)}
	case Tetradic:
		return Hues{Brand: h0, Accent: rot(90), Highlight: rot(180), Secondary: rot(270)}
	default:
		return Hues{
			Brand:     h0,
			Accent:    rng.Float64() * 360,
			Highlight: rng.Float64() * 360,
			Secondary: h0,
		}
	}
}

// build assigns saturation and lightness per role and converts to RGB.
// Draws from rng happen in a fixed order so seeded output is stable.
func build(h Hues, h0 float64, b bands, rng *rand.Rand) palette.Palette {
	var c [palette.RoleCount]colour.RGB
	set := func(role palette.Role, hue float64, bd band) {
		c[role] = bd.pick(hue, rng)
	}

	set(palette.Brand, h.Brand, b.brand)
	set(palette.Accent, h.Accent, b.accent)
	set(palette.Highlight, h.Highlight, b.highlight)
	set(palette.ButtonPrimary, h.Brand, b.buttonPrimary)
	set(palette.ButtonSecondary, h.Secondary, b.buttonSecondary)

	set(palette.SectionBg1, h0, b.bg1)
	set(palette.SectionBg2, h0, b.bg2)
	set(palette.SectionBg3, h0, b.bg3)
	set(palette.InputBg, h0, b.inputBg)
	set(palette.Border, h0, b.border)

	set(palette.TextPrimary, h0, b.textPrimary)
	set(palette.TextSecondary, h0, b.textSecondary)
	set(palette.InputText, h0, b.inputText)

	c[palette.ButtonText] = buttonText(c[palette.ButtonPrimary], h.Brand, rng)
	c[palette.ButtonSecondaryText] = buttonText(c[palette.ButtonSecondary], h.Secondary, rng)

	return palette.New(c)
}

// buttonText draws a near-white and a near-black tint of hue and keeps the
// one that contrasts more with the button. Legibility is re-checked by the
// validator, not assumed here.
func buttonText(button colour.RGB, hue float64, rng *rand.Rand) colour.RGB {
	light := textLight.pick(hue, rng)
	dark := textDark.pick(hue, rng)
	if colour.ContrastRatio(dark, button) > colour.ContrastRatio(light, button) {
		return dark
	}
	return light
}
