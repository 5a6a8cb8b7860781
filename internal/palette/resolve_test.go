package palette

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jmylchreest/hueforge/internal/colour"
)

func TestResolveRolesBlackBrand(t *testing.T) {
	p := samplePalette(t).With(Brand, colour.Black)
	roles := ResolveRoles(p)

	on := roles.Foreground(OnBrand)
	if ratio := colour.ContrastRatio(colour.Black, on); ratio < colour.MinContrastLargeText {
		t.Errorf("onBrand %s has ratio %.2f against black", on.Hex(), ratio)
	}
	if on != colour.White {
		t.Errorf("onBrand = %s, want white", on.Hex())
	}
}

func TestResolveRolesEveryForeground(t *testing.T) {
	p := samplePalette(t)
	roles := ResolveRoles(p)

	for _, f := range ForegroundRoles() {
		if ratio := roles.Ratio(f); ratio < colour.MinContrastLargeText {
			t.Errorf("%s: ratio %.2f below 3.0", f, ratio)
		}
	}
	if len(roles.Shortfalls) != 0 {
		t.Errorf("Shortfalls = %+v, want none for black/white candidates", roles.Shortfalls)
	}
	if roles.Foreground(OnBg1) != colour.Black {
		t.Errorf("onBg1 on white = %s, want black", roles.Foreground(OnBg1).Hex())
	}
	if roles.Foreground(OnPrimary) != colour.White {
		t.Errorf("onPrimary on #1d4ed8 = %s, want white", roles.Foreground(OnPrimary).Hex())
	}
}

func TestForegroundBackgroundMapping(t *testing.T) {
	want := map[ForegroundRole]Role{
		OnBrand:     Brand,
		OnAccent:    Accent,
		OnHighlight: Highlight,
		OnPrimary:   ButtonPrimary,
		OnSecondary: ButtonSecondary,
		OnBg1:       SectionBg1,
		OnBg2:       SectionBg2,
		OnBg3:       SectionBg3,
		OnInput:     InputBg,
	}
	if len(want) != ForegroundCount {
		t.Fatalf("test covers %d foregrounds, package defines %d", len(want), ForegroundCount)
	}
	for f, bg := range want {
		if f.Background() != bg {
			t.Errorf("%s.Background() = %s, want %s", f, f.Background(), bg)
		}
	}
}

func TestPickForegroundTieKeepsFirst(t *testing.T) {
	grey := colour.MustParseHex("#808080")
	tests := []struct {
		name       string
		candidates []colour.RGB
		bg         colour.RGB
		want       int
	}{
		{name: "black first on white", candidates: []colour.RGB{colour.Black, colour.White, colour.Black}, bg: colour.White, want: 0},
		{name: "white first on black", candidates: []colour.RGB{colour.White, colour.Black, colour.White}, bg: colour.Black, want: 0},
		{name: "best later in list", candidates: []colour.RGB{grey, colour.Black, colour.Black}, bg: colour.White, want: 1},
		{name: "single candidate", candidates: []colour.RGB{grey}, bg: grey, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, _ := pickForeground(tt.candidates, tt.bg); got != tt.want {
				t.Errorf("pickForeground() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResolverPaletteCandidates(t *testing.T) {
	// A brand-consistent text colour that beats black on a dark button.
	p := samplePalette(t).
		With(TextPrimary, colour.MustParseHex("#fefefe")).
		With(TextSecondary, colour.MustParseHex("#d0d0d0"))

	r := NewResolver(WithPaletteCandidates(true))
	if got := len(r.Candidates(p)); got != 4 {
		t.Fatalf("Candidates() returned %d, want 4", got)
	}

	// White is listed before text-primary and scores higher, so it stays.
	roles := r.Resolve(p)
	if roles.Foreground(OnPrimary) != colour.White {
		t.Errorf("onPrimary = %s, want white", roles.Foreground(OnPrimary).Hex())
	}

	if got := len(NewResolver().Candidates(p)); got != 2 {
		t.Errorf("default Candidates() returned %d, want 2", got)
	}
}

func TestResolverReportsShortfalls(t *testing.T) {
	grey := colour.MustParseHex("#767676")
	p := samplePalette(t).With(Highlight, grey)

	roles := NewResolver(WithThreshold(colour.MinContrastAAA)).Resolve(p)

	var found *ContrastIssue
	for i := range roles.Shortfalls {
		if roles.Shortfalls[i].TextRole == "onHighlight" {
			found = &roles.Shortfalls[i]
		}
	}
	if found == nil {
		t.Fatalf("Shortfalls = %+v, want an onHighlight entry", roles.Shortfalls)
	}
	if found.BackgroundRole != "highlight" || found.IsValid || found.Threshold != colour.MinContrastAAA {
		t.Errorf("shortfall = %+v", *found)
	}
	// Best effort: a foreground is still chosen.
	if roles.Foreground(OnHighlight) != colour.Black {
		t.Errorf("onHighlight = %s, want black as best effort", roles.Foreground(OnHighlight).Hex())
	}
}

func TestColorRolesJSON(t *testing.T) {
	roles := ResolveRoles(samplePalette(t))
	data, err := json.Marshal(roles)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if len(m) != RoleCount+ForegroundCount {
		t.Errorf("got %d keys, want %d", len(m), RoleCount+ForegroundCount)
	}
	if m["onBg1"] != "#000000" {
		t.Errorf("onBg1 = %s, want #000000", m["onBg1"])
	}
	if !strings.HasSuffix(string(data), `"onInput":"#000000"}`) {
		t.Errorf("json output does not end with onInput: %s", data)
	}
}

func TestOnColour(t *testing.T) {
	if got := OnColour(colour.Black); got != colour.White {
		t.Errorf("OnColour(black) = %s, want white", got.Hex())
	}
	if got := OnColour(colour.MustParseHex("#fde047")); got != colour.Black {
		t.Errorf("OnColour(yellow) = %s, want black", got.Hex())
	}
}
