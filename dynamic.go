package cmaptools

import (
	"fmt"
	"math"
)

// Range is the value window a dynamic colormap is stretched over. It is
// the only mutable state of a DynamicColormap and is never shared between
// instances.
type Range struct {
	VMin  float64
	Hinge float64
	VMax  float64
}

// DynamicColormap is a colormap with a hinge point. Its lower and upper
// halves are independent sub-tables that stretch separately over
// [VMin, Hinge] and [Hinge, VMax] while the hinge stays pinned at the
// split fraction of the [0, 1] domain.
//
// The sub-tables are immutable after construction and may be shared
// (read-only) across instances; only the Range mutates, through SetRange
// and SetLimits.
type DynamicColormap struct {
	name  string
	lower []ColorStop // normalized to [0, 1]
	upper []ColorStop // normalized to [0, 1]
	frac  float64     // hinge position inside [0, 1], in (0, 1)
	nan   *RGBA

	rng  Range
	rng0 Range // as constructed; the preview's "original norm" strip
}

// NewDynamic makes any colormap dynamic around a hinge. The colormap's
// [0, 1] domain is taken to span [vmin, vmax]; the hinge must be strictly
// inside or NewDynamic fails with ErrInvalidRange. The input is sampled at
// its exact control points when it exposes them, at DefaultSamples points
// otherwise.
func NewDynamic(cm Colormap, vmin, hinge, vmax float64) (*DynamicColormap, error) {
	if cm == nil {
		return nil, ErrNilColormap
	}
	if !(vmin < hinge && hinge < vmax) {
		return nil, fmt.Errorf("%w: hinge %g must be strictly inside (%g, %g)",
			ErrInvalidRange, hinge, vmin, vmax)
	}

	// Map the stops onto the value domain and split there.
	stops := stopsOf(cm, DefaultSamples)
	for i := range stops {
		stops[i].Position = vmin + stops[i].Position*(vmax-vmin)
	}
	lower, upper := splitStops(stops, hinge)

	rng := Range{VMin: vmin, Hinge: hinge, VMax: vmax}
	return &DynamicColormap{
		name:  cm.Name(),
		lower: normalizeStops(lower),
		upper: normalizeStops(upper),
		frac:  DefaultSplitFraction,
		rng:   rng,
		rng0:  rng,
	}, nil
}

// Name returns the colormap's name.
func (d *DynamicColormap) Name() string { return d.name }

// At returns the color at fractional position p in [0, 1]. Positions at or
// below the split fraction read the lower sub-table, the rest the upper.
func (d *DynamicColormap) At(p float64) RGBA {
	p = clamp01(p)
	if p <= d.frac {
		return sampleStops(d.lower, p/d.frac)
	}
	return sampleStops(d.upper, (p-d.frac)/(1-d.frac))
}

// Colors returns an n-entry lookup table sampled evenly over [0, 1].
func (d *DynamicColormap) Colors(n int) []RGBA {
	return sampleColors(n, d.At)
}

// ColorForValue returns the color for a data value under the current
// Range. Out-of-range values clamp to the end colors; NaN reads the
// NaN-fill color. ColorForValue never fails.
func (d *DynamicColormap) ColorForValue(v float64) RGBA {
	if math.IsNaN(v) {
		if d.nan != nil {
			return *d.nan
		}
		return Transparent
	}
	return d.At(d.Norm().Normalize(v))
}

// Range returns the current value window.
func (d *DynamicColormap) Range() Range { return d.rng }

// Hinge returns the current hinge value.
func (d *DynamicColormap) Hinge() float64 { return d.rng.Hinge }

// SplitFraction returns the canonical position of the hinge in [0, 1].
func (d *DynamicColormap) SplitFraction() float64 { return d.frac }

// Norm returns the normalizer for the current Range. The returned value is
// a copy; it stays valid if the Range changes afterwards.
func (d *DynamicColormap) Norm() HingeNorm {
	return HingeNorm{
		VMin:  d.rng.VMin,
		Hinge: d.rng.Hinge,
		VMax:  d.rng.VMax,
		Frac:  d.frac,
	}
}

// SetRange stretches the colormap over [vmin, vmax] around a new hinge.
// It fails with ErrInvalidRange unless vmin <= hinge <= vmax, leaving the
// current Range untouched. Only future lookups are affected; the
// sub-tables are never recomputed.
func (d *DynamicColormap) SetRange(vmin, hinge, vmax float64) error {
	if err := validateRange(vmin, hinge, vmax); err != nil {
		return err
	}
	d.rng = Range{VMin: vmin, Hinge: hinge, VMax: vmax}
	return nil
}

// SetLimits stretches the colormap over [vmin, vmax], keeping the current
// hinge.
func (d *DynamicColormap) SetLimits(vmin, vmax float64) error {
	return d.SetRange(vmin, d.rng.Hinge, vmax)
}

// Reversed returns a reversed copy: the upper sub-table becomes the lower
// (mirrored) and vice versa, and the split fraction flips accordingly. The
// value Range carries over unchanged. An empty name derives one from the
// parent by appending "_r".
func (d *DynamicColormap) Reversed(name string) *DynamicColormap {
	if name == "" {
		name = d.name + "_r"
	}
	return &DynamicColormap{
		name:  name,
		lower: reverseStops(d.upper),
		upper: reverseStops(d.lower),
		frac:  1 - d.frac,
		nan:   d.nan,
		rng:   d.rng,
		rng0:  d.rng0,
	}
}

// Resampled returns an n-stop listed palette sampled from this colormap.
func (d *DynamicColormap) Resampled(n int) *Palette {
	return resampled(d, n)
}

// controlPoints concatenates the two sub-tables back into one [0, 1] stop
// list, the lower compressed into [0, frac] and the upper into [frac, 1].
// A continuous boundary collapses to a single stop; a discontinuity keeps
// both coincident stops.
func (d *DynamicColormap) controlPoints() []ColorStop {
	out := make([]ColorStop, 0, len(d.lower)+len(d.upper))
	for _, s := range d.lower {
		out = append(out, ColorStop{Position: s.Position * d.frac, Color: s.Color})
	}
	for _, s := range d.upper {
		cs := ColorStop{Position: d.frac + s.Position*(1-d.frac), Color: s.Color}
		if n := len(out); n > 0 &&
			out[n-1].Position == cs.Position && sameColor(out[n-1].Color, cs.Color) {
			continue
		}
		out = append(out, cs)
	}
	return out
}
