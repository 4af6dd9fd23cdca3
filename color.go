package cmaptools

import (
	"image/color"
	"math"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Transparent is the fully transparent color.
var Transparent = RGBA{}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
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

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// lerpColor blends two colors channel-wise at fraction t in [0, 1].
// Blending is done on the raw channels, matching the piecewise-linear
// segment semantics of cpt palettes; perceptual color spaces are out of
// scope here.
func lerpColor(c1, c2 RGBA, t float64) RGBA {
	return RGBA{
		R: c1.R + t*(c2.R-c1.R),
		G: c1.G + t*(c2.G-c1.G),
		B: c1.B + t*(c2.B-c1.B),
		A: c1.A + t*(c2.A-c1.A),
	}
}

// sameColor reports whether two colors are equal within floating-point
// noise. Used when collapsing shared segment endpoints.
func sameColor(c1, c2 RGBA) bool {
	const eps = 1e-9
	return math.Abs(c1.R-c2.R) < eps &&
		math.Abs(c1.G-c2.G) < eps &&
		math.Abs(c1.B-c2.B) < eps &&
		math.Abs(c1.A-c2.A) < eps
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// clamp255 clamps a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
