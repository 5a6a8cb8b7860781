package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/jmylchreest/hueforge/internal/export"
	"github.com/jmylchreest/hueforge/internal/security"
)

// stdinName is the argument that selects standard input.
const stdinName = "-"

// readInput reads a palette document from a file, or from stdin when name
// is "-". Documents larger than security.MaxDocumentSize are rejected.
func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == stdinName {
		data, err := security.ReadAll(cmd.InOrStdin(), security.MaxDocumentSize)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	f, err := os.Open(name) // #nosec G304 -- path supplied by the user
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	defer f.Close()

	data, err := security.ReadAll(f, security.MaxDocumentSize)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

// writeOutput writes data to path, or to the command's stdout when path is
// empty or "-".
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == stdinName {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil { // #nosec G301 -- output directory
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 -- palettes are not secret
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// isTerminal reports whether w is an interactive terminal. Writers that are
// not files, such as test buffers, are never terminals.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
}

// addFormatFlag registers --format/-f with the given default.
func addFormatFlag(fs *pflag.FlagSet, p *string, def string, allowed ...string) {
	fs.StringVarP(p, "format", "f", def, fmt.Sprintf("output format (%s)", strings.Join(allowed, ", ")))
}

// addOutputFlag registers --output/-o.
func addOutputFlag(fs *pflag.FlagSet, p *string) {
	fs.StringVarP(p, "output", "o", "", "write to file instead of stdout")
}

// exportFormats lists the export formats as flag help values.
func exportFormats() []string {
	names := make([]string, 0, len(export.Formats()))
	for _, f := range export.Formats() {
		names = append(names, string(f))
	}
	return names
}
