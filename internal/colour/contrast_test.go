package colour

import (
	"math"
	"testing"
)

func TestLuminance(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want float64
	}{
		{name: "black", rgb: Black, want: 0},
		{name: "white", rgb: White, want: 1},
		{name: "pure red", rgb: RGB{R: 255}, want: 0.2126},
		{name: "pure green", rgb: RGB{G: 255}, want: 0.7152},
		{name: "pure blue", rgb: RGB{B: 255}, want: 0.0722},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Luminance(tt.rgb); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Luminance(%s) = %v, want %v", tt.rgb.Hex(), got, tt.want)
			}
		})
	}
}

func TestContrastRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
		tol  float64
	}{
		{name: "black on white", a: "#000000", b: "#FFFFFF", want: 21, tol: 1e-9},
		{name: "identical", a: "#3b82f6", b: "#3b82f6", want: 1, tol: 1e-9},
		{name: "grey on white", a: "#767676", b: "#ffffff", want: 4.54, tol: 0.01},
		{name: "blue on white", a: "#3b82f6", b: "#ffffff", want: 3.68, tol: 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ContrastRatioHex(tt.a, tt.b)
			if err != nil {
				t.Fatalf("ContrastRatioHex() error = %v", err)
			}
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("ContrastRatioHex(%s, %s) = %.4f, want %.4f", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestContrastRatioSymmetricAndBounded(t *testing.T) {
	samples := []RGB{Black, White}
	for v := 0; v < 256; v += 17 {
		samples = append(samples,
			RGB{R: uint8(v), G: uint8(255 - v), B: uint8(v / 2)},
			RGB{R: uint8(v), G: uint8(v), B: uint8(v)},
		)
	}

	for _, a := range samples {
		for _, b := range samples {
			ab := ContrastRatio(a, b)
			ba := ContrastRatio(b, a)
			if ab != ba {
				t.Fatalf("ContrastRatio(%s, %s) = %v but reversed = %v", a.Hex(), b.Hex(), ab, ba)
			}
			if ab < 1 || ab > 21+1e-9 {
				t.Fatalf("ContrastRatio(%s, %s) = %v outside [1,21]", a.Hex(), b.Hex(), ab)
			}
		}
		if self := ContrastRatio(a, a); self != 1 {
			t.Errorf("ContrastRatio(%s, itself) = %v, want 1", a.Hex(), self)
		}
	}
}

func TestContrastRatioHexInvalid(t *testing.T) {
	if _, err := ContrastRatioHex("#000", "#ffffff"); err == nil {
		t.Error("ContrastRatioHex() expected error for short hex")
	}
	if _, err := ContrastRatioHex("#000000", "white"); err == nil {
		t.Error("ContrastRatioHex() expected error for named colour")
	}
}

func TestHueDistance(t *testing.T) {
	tests := []struct {
		h1, h2, want float64
	}{
		{0, 180, 180},
		{10, 350, 20},
		{350, 10, 20},
		{120, 240, 120},
		{0, 360, 0},
	}
	for _, tt := range tests {
		if got := HueDistance(tt.h1, tt.h2); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("HueDistance(%v, %v) = %v, want %v", tt.h1, tt.h2, got, tt.want)
		}
	}
}
