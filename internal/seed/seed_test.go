package seed

import "testing"

func TestCalculate(t *testing.T) {
	value := int64(42)
	negative := int64(-1)

	tests := []struct {
		name    string
		config  Config
		want    int64
		wantErr bool
	}{
		{name: "manual", config: Config{Mode: ModeManual, Value: &value}, want: 42},
		{name: "manual without value", config: Config{Mode: ModeManual}, wantErr: true},
		{name: "manual negative", config: Config{Mode: ModeManual, Value: &negative}, wantErr: true},
		{name: "text without phrase", config: Config{Mode: ModeText}, wantErr: true},
		{name: "unknown mode", config: Config{Mode: "content"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Calculate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Calculate() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCalculateTextSeed(t *testing.T) {
	a, err := CalculateTextSeed("Acme Corp")
	if err != nil {
		t.Fatalf("CalculateTextSeed() error = %v", err)
	}
	b, err := CalculateTextSeed("  acme corp ")
	if err != nil {
		t.Fatalf("CalculateTextSeed() error = %v", err)
	}
	if a != b {
		t.Errorf("seeds differ for equivalent phrases: %d vs %d", a, b)
	}
	if a < 0 {
		t.Errorf("seed %d is negative", a)
	}

	c, _ := CalculateTextSeed("Globex")
	if c == a {
		t.Error("different phrases produced the same seed")
	}
}

func TestRandomSeedNonNegative(t *testing.T) {
	for range 100 {
		s, err := Calculate(Config{Mode: ModeRandom})
		if err != nil {
			t.Fatalf("Calculate(random) error = %v", err)
		}
		if s < 0 {
			t.Fatalf("random seed %d is negative", s)
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range ValidModes() {
		got, err := ParseMode(string(m))
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %q, %v", m, got, err)
		}
	}
	if _, err := ParseMode("filepath"); err == nil {
		t.Error("ParseMode(\"filepath\") expected error")
	}
}
