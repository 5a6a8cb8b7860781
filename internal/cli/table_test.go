package cli

import (
	"strings"
	"testing"

	"github.com/jmylchreest/hueforge/internal/palette"
)

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"Role", "Hex"})

	table.AddRow([]string{"brand", "#3b82f6"})
	table.AddRow([]string{"accent"})
	table.AddRow([]string{"border", "#e5e7eb", "extra"})

	if len(table.rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(table.rows))
	}
	for i, row := range table.rows {
		if len(row) != 2 {
			t.Errorf("row %d has %d columns, want 2", i, len(row))
		}
	}
	if table.rows[1][1] != "" {
		t.Errorf("Expected empty string for padded column, got %q", table.rows[1][1])
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"TEXT", "RATIO"})
	table.AlignRight(1)
	table.AddRow([]string{"text-primary", "17.9"})
	table.AddRow([]string{"input-text", "4.5"})

	lines := strings.Split(strings.TrimSuffix(table.Render(), "\n"), "\n")
	want := []string{
		"TEXT          RATIO",
		"------------  -----",
		"text-primary   17.9",
		"input-text      4.5",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), strings.Join(lines, "\n"))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if out := NewTable(nil).Render(); out != "" {
		t.Errorf("Expected empty string for empty table, got: %q", out)
	}

	out := NewTable([]string{"Column1", "Column2"}).Render()
	if lines := strings.Split(strings.TrimSpace(out), "\n"); len(lines) != 2 {
		t.Errorf("Expected header and separator lines, got %q", out)
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		input string
		width int
		left  string
		right string
	}{
		{"test", 10, "      test", "test      "},
		{"hello", 5, "hello", "hello"},
		{"world", 3, "world", "world"},
		{"", 2, "  ", "  "},
	}

	for _, tt := range tests {
		if got := padLeft(tt.input, tt.width); got != tt.left {
			t.Errorf("padLeft(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.left)
		}
		if got := padRight(tt.input, tt.width); got != tt.right {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.right)
		}
	}
}

func TestFormatRatio(t *testing.T) {
	tests := map[float64]string{
		21:      "21",
		10:      "10",
		4.5:     "4.5",
		3:       "3",
		4.54183: "4.54",
		1:       "1",
		6.999:   "7",
	}
	for in, want := range tests {
		if got := formatRatio(in); got != want {
			t.Errorf("formatRatio(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestIssueTable(t *testing.T) {
	issues := []palette.ContrastIssue{
		{TextRole: "text-primary", BackgroundRole: "section-bg-1", Ratio: 21, Threshold: 4.5, IsValid: true},
		{TextRole: "input-text", BackgroundRole: "input-bg", Ratio: 1.2, Threshold: 3, IsValid: false},
	}

	out := issueTable(issues)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("issueTable() produced %d lines, want 4:\n%s", len(lines), out)
	}
	if !strings.HasSuffix(strings.TrimSpace(lines[2]), "PASS") || !strings.HasSuffix(strings.TrimSpace(lines[3]), "FAIL") {
		t.Errorf("unexpected verdicts:\n%s", out)
	}
	if !strings.Contains(lines[3], "1.2") {
		t.Errorf("expected ratio 1.2 in %q", lines[3])
	}
}
