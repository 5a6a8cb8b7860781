// Package security bounds untrusted input read by the CLI.
package security

import (
	"errors"
	"fmt"
	"io"
)

// MaxDocumentSize is the largest palette document the CLI will read. A
// complete palette is well under a kilobyte; the limit only stops runaway
// input such as a mistaken pipe.
const MaxDocumentSize = 1 << 20

// ErrSizeLimit is returned when input exceeds its size limit.
var ErrSizeLimit = errors.New("input size limit exceeded")

// LimitedReader wraps an io.Reader and limits the total bytes that can be read.
// Unlike io.LimitReader it fails instead of reporting a silent EOF.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		// Probe so input of exactly the limit still succeeds.
		var probe [1]byte
		n, err := l.R.Read(probe[:])
		if n > 0 {
			return 0, ErrSizeLimit
		}
		return 0, err
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}

// ReadAll reads r to EOF, failing with ErrSizeLimit past maxBytes.
func ReadAll(r io.Reader, maxBytes int64) ([]byte, error) {
	data, err := io.ReadAll(NewLimitedReader(r, maxBytes))
	if errors.Is(err, ErrSizeLimit) {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrSizeLimit, maxBytes)
	}
	return data, err
}
