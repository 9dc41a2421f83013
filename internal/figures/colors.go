package figures

import (
	"fmt"
	"image/color"
)

// Manuscript palette, shared across all figures.
var (
	Cyan     = mustHex("#22d3ee")
	Red      = mustHex("#ef4444")
	Green    = mustHex("#22c55e")
	Purple   = mustHex("#a855f7")
	Orange   = mustHex("#f97316")
	Slate    = mustHex("#94a3b8")
	Teal     = mustHex("#0891b2")
	DarkTeal = mustHex("#0e7490")
	Blue     = mustHex("#3b82f6")
	Gray     = mustHex("#666666")
)

// ParseHex decodes a #rrggbb color string.
func ParseHex(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func mustHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// lerp interpolates between two palette colors; t runs 0..1.
func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 0xff}
}
