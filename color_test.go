package ink

import (
	"math"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want RGBA
	}{
		{"rgb short", "#f00", RGB(1, 0, 0)},
		{"rgba short", "#0f08", RGBA{G: 1, A: 8.0 * 17 / 255}},
		{"rrggbb", "#1e1e1e", RGB(30.0/255, 30.0/255, 30.0/255)},
		{"rrggbbaa", "#ff000080", RGBA{R: 1, A: 128.0 / 255}},
		{"no hash", "00ff00", RGB(0, 1, 0)},
		{"uppercase", "#FF00FF", RGB(1, 0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if err != nil {
				t.Fatalf("ParseHex(%q) error: %v", tt.in, err)
			}
			if !colorApprox(got, tt.want) {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHex_Invalid(t *testing.T) {
	tests := []string{"", "#", "#12345", "#zzzzzz", "not a color", "#1e1e1e1e1e"}
	for _, in := range tests {
		if _, err := ParseHex(in); err == nil {
			t.Errorf("ParseHex(%q) = nil error, want failure", in)
		}
	}
}

func TestHex_FallsBackToBlack(t *testing.T) {
	got := Hex("#nothex")
	if got != (RGBA{A: 1}) {
		t.Errorf("Hex(invalid) = %+v, want opaque black", got)
	}
}

func TestHexString_RoundTrip(t *testing.T) {
	tests := []RGBA{
		Black,
		White,
		RGB(1, 0, 0),
		{R: 0.2, G: 0.4, B: 0.6, A: 0.8},
		Transparent,
	}
	for _, c := range tests {
		s := c.HexString()
		got, err := ParseHex(s)
		if err != nil {
			t.Fatalf("ParseHex(%q) error: %v", s, err)
		}
		// One byte of quantization per channel.
		if !colorApproxTol(got, c, 1.0/255+1e-9) {
			t.Errorf("round trip %q: got %+v, want about %+v", s, got, c)
		}
	}
}

func TestHexString_Format(t *testing.T) {
	got := RGB(1, 0, 0).HexString()
	if got != "#ff0000ff" {
		t.Errorf("HexString() = %q, want %q", got, "#ff0000ff")
	}
}

func colorApprox(a, b RGBA) bool {
	return colorApproxTol(a, b, 1e-9)
}

func colorApproxTol(a, b RGBA, tol float64) bool {
	return math.Abs(a.R-b.R) <= tol &&
		math.Abs(a.G-b.G) <= tol &&
		math.Abs(a.B-b.B) <= tol &&
		math.Abs(a.A-b.A) <= tol
}
