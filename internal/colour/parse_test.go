package colour

import (
	"errors"
	"testing"
)

func TestParseHSL(t *testing.T) {
	tests := []struct {
		input   string
		want    HSL
		wantErr bool
	}{
		{input: "hsl(217, 91%, 60%)", want: HSL{H: 217, S: 91, L: 60}},
		{input: "HSL(217 91% 60%)", want: HSL{H: 217, S: 91, L: 60}},
		{input: "217,91,60", want: HSL{H: 217, S: 91, L: 60}},
		{input: " 30°, 50, 50 ", want: HSL{H: 30, S: 50, L: 50}},
		{input: "400,120,-5", want: HSL{H: 400, S: 120, L: -5}},
		{input: "hsl(217, 91%, 60%", wantErr: true},
		{input: "217,91", wantErr: true},
		{input: "a,b,c", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHSL(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColorFormat) {
					t.Errorf("ParseHSL(%q) error = %v, want ErrInvalidColorFormat", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHSL(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHSL(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "#3B82F6", want: "#3b82f6"},
		{input: "0,0,100", want: "#ffffff"},
		{input: "hsl(0, 100%, 50%)", want: "#ff0000"},
		{input: "#fff", wantErr: true},
		{input: "blue", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColorFormat) {
					t.Errorf("Parse(%q) error = %v, want ErrInvalidColorFormat", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got.Hex() != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.input, got.Hex(), tt.want)
			}
		})
	}
}
