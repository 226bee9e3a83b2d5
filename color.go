package ink

import (
	"fmt"
	"image/color"
	"strconv"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// WithAlpha returns a copy of the color with the given alpha.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// ParseHex parses a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", each with an
// optional leading '#'. Returns an error for any other input.
func ParseHex(hex string) (RGBA, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b uint64
	a := uint64(255)
	var err error

	component := func(sub string) uint64 {
		if err != nil {
			return 0
		}
		var v uint64
		v, err = strconv.ParseUint(sub, 16, 8)
		return v
	}
	nibble := func(sub string) uint64 {
		// Single hex digit, doubled: "a" means 0xaa.
		return component(sub) * 17
	}

	switch len(s) {
	case 3:
		r, g, b = nibble(s[0:1]), nibble(s[1:2]), nibble(s[2:3])
	case 4:
		r, g, b, a = nibble(s[0:1]), nibble(s[1:2]), nibble(s[2:3]), nibble(s[3:4])
	case 6:
		r, g, b = component(s[0:2]), component(s[2:4]), component(s[4:6])
	case 8:
		r, g, b, a = component(s[0:2]), component(s[2:4]), component(s[4:6]), component(s[6:8])
	default:
		return RGBA{}, fmt.Errorf("ink: invalid hex color %q", hex)
	}
	if err != nil {
		return RGBA{}, fmt.Errorf("ink: invalid hex color %q", hex)
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

// Hex creates a color from a hex string.
// Invalid input yields opaque black. Use ParseHex to detect errors.
func Hex(hex string) RGBA {
	c, err := ParseHex(hex)
	if err != nil {
		return RGBA{A: 1}
	}
	return c
}

// HexString returns the color as a lowercase "#rrggbbaa" string.
// This is the form used in serialized scenes.
func (c RGBA) HexString() string {
	return fmt.Sprintf("#%02x%02x%02x%02x",
		uint8(clamp255(c.R*255)),
		uint8(clamp255(c.G*255)),
		uint8(clamp255(c.B*255)),
		uint8(clamp255(c.A*255)))
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)
