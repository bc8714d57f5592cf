package field

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSLA is a colour in the notation the palette is tuned in: hue in degrees,
// saturation and lightness in percent, alpha in [0, 1].
type HSLA struct {
	H, S, L float64
	A       float64
}

// WithAlpha returns c with its alpha replaced.
func (c HSLA) WithAlpha(a float64) HSLA {
	c.A = a
	return c
}

// RGBA converts c to straight (non-premultiplied) float channels.
func (c HSLA) RGBA() (r, g, b, a float32) {
	col := colorful.Hsl(c.H, c.S/100, c.L/100).Clamped()
	return float32(col.R), float32(col.G), float32(col.B), float32(clamp01(c.A))
}

// NRGBA converts c to an 8-bit straight alpha colour.
func (c HSLA) NRGBA() color.NRGBA {
	col := colorful.Hsl(c.H, c.S/100, c.L/100).Clamped()
	return color.NRGBA{
		R: unit8(col.R),
		G: unit8(col.G),
		B: unit8(col.B),
		A: unit8(c.A),
	}
}

// NeonPalette is the cyan, purple and teal set the field spawns from.
func NeonPalette() []HSLA {
	return []HSLA{
		{H: 200, S: 100, L: 60, A: 1}, // cyan
		{H: 270, S: 95, L: 60, A: 1},  // purple
		{H: 180, S: 95, L: 55, A: 1},  // teal
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func unit8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}
