package colour

import (
	"errors"
	"fmt"
)

// ErrInvalidColorFormat is returned when a colour string cannot be parsed.
var ErrInvalidColorFormat = errors.New("invalid colour format")

// FormatError reports the malformed input that failed to parse.
type FormatError struct {
	Input string
	// Want names the expected notation. Empty means "#RRGGBB".
	Want string
}

func (e *FormatError) Error() string {
	want := e.Want
	if want == "" {
		want = "#RRGGBB"
	}
	return fmt.Sprintf("invalid colour format %q: expected %s", e.Input, want)
}

func (e *FormatError) Unwrap() error {
	return ErrInvalidColorFormat
}
