package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hueforge/internal/colour"
	"github.com/jmylchreest/hueforge/internal/palette"
)

// ErrContrastFailed is returned when a checked palette has pairs below their
// minimum ratio.
var ErrContrastFailed = errors.New("palette fails contrast minimums")

func contrastFailure(failed []palette.ContrastIssue, total int) error {
	return fmt.Errorf("%w: %d of %d pairs below minimum", ErrContrastFailed, len(failed), total)
}

func (a *app) logFailures(failed []palette.ContrastIssue) {
	for _, issue := range failed {
		a.logger.Warn("contrast below minimum",
			"text", issue.TextRole,
			"background", issue.BackgroundRole,
			"ratio", formatRatio(issue.Ratio),
			"minimum", formatRatio(issue.Threshold),
		)
	}
}

func (a *app) logShortfalls(shortfalls []palette.ContrastIssue) {
	for _, issue := range shortfalls {
		a.logger.Warn("no candidate reaches minimum contrast",
			"foreground", issue.TextRole,
			"background", issue.BackgroundRole,
			"best_ratio", formatRatio(issue.Ratio),
			"minimum", formatRatio(issue.Threshold),
		)
	}
}

// preview writes the palette listing to stderr, with swatches when stderr is
// a terminal.
func (a *app) preview(cmd *cobra.Command, p palette.Palette) {
	w := cmd.ErrOrStderr()
	fmt.Fprintln(w, "Palette:")
	fmt.Fprint(w, p.StringWithPreview(isTerminal(w)))
}

// previewRoles writes each on-colour drawn on its background.
func previewRoles(w io.Writer, roles palette.ColorRoles) {
	ansi := isTerminal(w)
	fmt.Fprintln(w, "On-colours:")
	for _, f := range palette.ForegroundRoles() {
		fg, bg := roles.Foreground(f), roles.Palette.Get(f.Background())
		label := fmt.Sprintf(" %-12s %s on %s ", f.String(), fg.Hex(), bg.Hex())
		if ansi {
			label = colour.Sample(fg, bg, label)
		}
		fmt.Fprintf(w, "  %s %s:1\n", label, formatRatio(roles.Ratio(f)))
	}
}

// issueTable renders a contrast report as a table.
func issueTable(issues []palette.ContrastIssue) string {
	t := NewTable([]string{"TEXT", "BACKGROUND", "RATIO", "MIN", "RESULT"})
	t.AlignRight(2)
	t.AlignRight(3)
	for _, issue := range issues {
		t.AddRow([]string{
			issue.TextRole,
			issue.BackgroundRole,
			formatRatio(issue.Ratio),
			formatRatio(issue.Threshold),
			verdict(issue.IsValid),
		})
	}
	return t.Render()
}

func verdict(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}

// formatRatio prints a contrast ratio to two decimals, trimming a trailing
// ".00" so thresholds read as "3" or "4.5".
func formatRatio(r float64) string {
	s := fmt.Sprintf("%.2f", r)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
