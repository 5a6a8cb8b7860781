package palette

import (
	"github.com/jmylchreest/hueforge/internal/colour"
)

// PairCategory decides which WCAG threshold a role pair is held to.
type PairCategory int

const (
	// NormalText pairs carry body copy and need the 4.5:1 AA minimum.
	NormalText PairCategory = iota
	// UIComponent pairs (buttons, inputs) need the 3:1 AA minimum.
	UIComponent
)

// String returns a short label for the category.
func (c PairCategory) String() string {
	switch c {
	case NormalText:
		return "text"
	case UIComponent:
		return "ui"
	default:
		return "unknown"
	}
}

// ContrastPair is a text role drawn on a background role.
type ContrastPair struct {
	Text       Role
	Background Role
	Category   PairCategory
}

// contrastPairs is the fixed list checked by the validator, in report order.
var contrastPairs = []ContrastPair{
	{Text: TextPrimary, Background: SectionBg1, Category: NormalText},
	{Text: TextPrimary, Background: SectionBg2, Category: NormalText},
	{Text: TextPrimary, Background: SectionBg3, Category: NormalText},
	{Text: TextSecondary, Background: SectionBg1, Category: NormalText},
	{Text: ButtonText, Background: ButtonPrimary, Category: UIComponent},
	{Text: ButtonSecondaryText, Background: ButtonSecondary, Category: UIComponent},
	{Text: InputText, Background: InputBg, Category: UIComponent},
}

// ContrastPairs returns the role pairs checked by ValidateContrast, in order.
func ContrastPairs() []ContrastPair {
	pairs := make([]ContrastPair, len(contrastPairs))
	copy(pairs, contrastPairs)
	return pairs
}

// ContrastIssue is the contrast measurement for one text/background pairing.
type ContrastIssue struct {
	TextRole       string  `json:"textRole" yaml:"textRole"`
	BackgroundRole string  `json:"backgroundRole" yaml:"backgroundRole"`
	Ratio          float64 `json:"ratio" yaml:"ratio"`
	Threshold      float64 `json:"threshold" yaml:"threshold"`
	IsValid        bool    `json:"isValid" yaml:"isValid"`
}

// Thresholds holds the minimum ratios applied per pair category.
type Thresholds struct {
	NormalText  float64
	UIComponent float64
}

// DefaultThresholds returns the WCAG 2.1 AA minimums.
func DefaultThresholds() Thresholds {
	return Thresholds{
		NormalText:  colour.MinContrastNormalText,
		UIComponent: colour.MinContrastLargeText,
	}
}

// For returns the threshold for a pair category.
func (t Thresholds) For(c PairCategory) float64 {
	if c == UIComponent {
		return t.UIComponent
	}
	return t.NormalText
}

// Validator measures a palette's role pairs against a set of thresholds.
type Validator struct {
	thresholds Thresholds
}

// NewValidator creates a validator using the given thresholds.
func NewValidator(thresholds Thresholds) *Validator {
	return &Validator{thresholds: thresholds}
}

// Validate returns one issue per contrast pair, in ContrastPairs order.
func (v *Validator) Validate(p Palette) []ContrastIssue {
	issues := make([]ContrastIssue, len(contrastPairs))
	for i, pair := range contrastPairs {
		ratio := colour.ContrastRatio(p.Get(pair.Text), p.Get(pair.Background))
		threshold := v.thresholds.For(pair.Category)
		issues[i] = ContrastIssue{
			TextRole:       pair.Text.String(),
			BackgroundRole: pair.Background.String(),
			Ratio:          ratio,
			Threshold:      threshold,
			IsValid:        ratio >= threshold,
		}
	}
	return issues
}

var defaultValidator = NewValidator(DefaultThresholds())

// ValidateContrast checks the palette against the WCAG AA thresholds.
func ValidateContrast(p Palette) []ContrastIssue {
	return defaultValidator.Validate(p)
}

// Failures returns the issues that did not meet their threshold.
func Failures(issues []ContrastIssue) []ContrastIssue {
	var failed []ContrastIssue
	for _, issue := range issues {
		if !issue.IsValid {
			failed = append(failed, issue)
		}
	}
	return failed
}

// Passed reports whether every issue met its threshold.
func Passed(issues []ContrastIssue) bool {
	return len(Failures(issues)) == 0
}
