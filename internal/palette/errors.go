package palette

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidPaletteShape is returned when a palette is missing roles or
// carries keys that are not roles.
var ErrInvalidPaletteShape = errors.New("invalid palette shape")

// ShapeError lists the keys that made a palette malformed.
type ShapeError struct {
	Missing []string
	Unknown []string
}

func (e *ShapeError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing roles: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Unknown) > 0 {
		parts = append(parts, "unknown keys: "+strings.Join(e.Unknown, ", "))
	}
	return fmt.Sprintf("invalid palette shape (%s)", strings.Join(parts, "; "))
}

func (e *ShapeError) Unwrap() error {
	return ErrInvalidPaletteShape
}

func (e *ShapeError) sort() {
	slices.Sort(e.Missing)
	slices.Sort(e.Unknown)
}
