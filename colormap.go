package cmaptools

import (
	"fmt"
	"math"
)

// Colormap is the sampling capability shared by every palette variant:
// sequential palettes, dynamic colormaps, and any external implementation.
// Join and the table builders consume only this interface.
type Colormap interface {
	// Name identifies the colormap. Purely informational.
	Name() string

	// At returns the color at fractional position p in [0, 1].
	// Out-of-range positions clamp; At never fails.
	At(p float64) RGBA

	// Colors returns an n-entry lookup table sampled evenly over [0, 1].
	Colors(n int) []RGBA
}

// Normalizer maps a data value to a fractional position in [0, 1]. It is
// the contract expected by rendering code for the normalization slot next
// to a colormap.
type Normalizer interface {
	Normalize(v float64) float64
}

// stopProvider is implemented by colormaps that can expose their exact
// control points over [0, 1]. Join uses it to rebuild sub-tables without
// resampling, avoiding precision loss.
type stopProvider interface {
	controlPoints() []ColorStop
}

// Palette is a sequential colormap: ordered color stops over [0, 1] with
// plain linear normalization over its source data domain. It is immutable.
type Palette struct {
	name  string
	stops []ColorStop // positions normalized to [0, 1]

	// Source data domain of the stops before normalization.
	vmin, vmax float64

	nan *RGBA
}

// NewPalette builds a sequential colormap from ordered stops. The stops may
// be in any data domain; positions are normalized to [0, 1] and the original
// extremes are kept as the palette's default value domain.
func NewPalette(name string, stops []ColorStop) (*Palette, error) {
	if len(stops) == 0 {
		return nil, fmt.Errorf("cmaptools: palette %q needs at least one stop", name)
	}
	for i := 1; i < len(stops); i++ {
		if stops[i].Position < stops[i-1].Position {
			return nil, fmt.Errorf("cmaptools: palette %q stops out of order at index %d", name, i)
		}
	}
	return &Palette{
		name:  name,
		stops: normalizeStops(stops),
		vmin:  stops[0].Position,
		vmax:  stops[len(stops)-1].Position,
	}, nil
}

// Name returns the palette's name.
func (p *Palette) Name() string { return p.name }

// At returns the color at fractional position t in [0, 1].
func (p *Palette) At(t float64) RGBA {
	return sampleStops(p.stops, clamp01(t))
}

// Colors returns an n-entry lookup table sampled evenly over [0, 1].
func (p *Palette) Colors(n int) []RGBA {
	return sampleColors(n, p.At)
}

// Domain returns the source data domain the palette was built over.
func (p *Palette) Domain() (vmin, vmax float64) {
	return p.vmin, p.vmax
}

// Norm returns the linear normalizer over the palette's source domain.
func (p *Palette) Norm() LinearNorm {
	return LinearNorm{VMin: p.vmin, VMax: p.vmax}
}

// ColorForValue returns the color for a data value in the palette's source
// domain. Out-of-domain values clamp; NaN reads the NaN-fill color.
func (p *Palette) ColorForValue(v float64) RGBA {
	if math.IsNaN(v) {
		if p.nan != nil {
			return *p.nan
		}
		return Transparent
	}
	return p.At(p.Norm().Normalize(v))
}

// Reversed returns a reversed copy of the palette. An empty name derives
// one from the parent by appending "_r".
func (p *Palette) Reversed(name string) *Palette {
	if name == "" {
		name = p.name + "_r"
	}
	return &Palette{
		name:  name,
		stops: reverseStops(p.stops),
		vmin:  p.vmin,
		vmax:  p.vmax,
		nan:   p.nan,
	}
}

// Resampled returns a new palette with n evenly spaced stops sampled from
// this one.
func (p *Palette) Resampled(n int) *Palette {
	return resampled(p, n)
}

func (p *Palette) controlPoints() []ColorStop {
	out := make([]ColorStop, len(p.stops))
	copy(out, p.stops)
	return out
}

// reverseStops mirrors a normalized stop list around position 0.5.
func reverseStops(stops []ColorStop) []ColorStop {
	out := make([]ColorStop, len(stops))
	for i, s := range stops {
		out[len(stops)-1-i] = ColorStop{Position: 1 - s.Position, Color: s.Color}
	}
	return out
}

// resampled builds an n-stop listed palette from any colormap.
func resampled(cm Colormap, n int) *Palette {
	if n < 2 {
		n = 2
	}
	stops := make([]ColorStop, n)
	for i, c := range cm.Colors(n) {
		stops[i] = ColorStop{Position: float64(i) / float64(n-1), Color: c}
	}
	return &Palette{name: cm.Name(), stops: stops, vmin: 0, vmax: 1}
}
