package security

import (
	"errors"
	"strings"
	"testing"
)

func TestReadAll(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		max     int64
		wantErr bool
	}{
		{name: "under limit", input: "brand: '#000000'", max: 64},
		{name: "exactly limit", input: "abcd", max: 4},
		{name: "over limit", input: "abcde", max: 4, wantErr: true},
		{name: "empty", input: "", max: 4},
		{name: "zero limit", input: "a", max: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadAll(strings.NewReader(tt.input), tt.max)
			if tt.wantErr {
				if !errors.Is(err, ErrSizeLimit) {
					t.Errorf("ReadAll() error = %v, want ErrSizeLimit", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadAll() unexpected error: %v", err)
			}
			if string(data) != tt.input {
				t.Errorf("ReadAll() = %q, want %q", data, tt.input)
			}
		})
	}
}

func TestLimitedReaderCountsDown(t *testing.T) {
	l := NewLimitedReader(strings.NewReader("abcdef"), 4)
	buf := make([]byte, 3)

	n, err := l.Read(buf)
	if n != 3 || err != nil || l.Remaining != 1 {
		t.Fatalf("first Read() = %d, %v (remaining %d)", n, err, l.Remaining)
	}
	n, err = l.Read(buf)
	if n != 1 || err != nil || l.Remaining != 0 {
		t.Fatalf("second Read() = %d, %v (remaining %d)", n, err, l.Remaining)
	}
	if _, err := l.Read(buf); !errors.Is(err, ErrSizeLimit) {
		t.Errorf("third Read() error = %v, want ErrSizeLimit", err)
	}
}
