package cmaptools

import "sort"

// ColorStop represents a color at a specific position along a palette.
// Within one stop list positions are non-decreasing; two stops sharing a
// position with different colors encode a hard discontinuity (the color
// "jump" of a diverging palette).
type ColorStop struct {
	Position float64
	Color    RGBA
}

// Table is the normalized in-memory form of a parsed cpt file: an ordered,
// immutable sequence of color stops in the file's own data domain, plus the
// optional special colors and declared hinge harvested from the header.
type Table struct {
	stops      []ColorStop
	background *RGBA
	foreground *RGBA
	nan        *RGBA
	hinge      *float64
}

// Stops returns a copy of the table's control points.
func (t *Table) Stops() []ColorStop {
	out := make([]ColorStop, len(t.stops))
	copy(out, t.stops)
	return out
}

// Min returns the smallest stop position.
func (t *Table) Min() float64 { return t.stops[0].Position }

// Max returns the largest stop position.
func (t *Table) Max() float64 { return t.stops[len(t.stops)-1].Position }

// Hinge returns the hinge position declared in the file header, if any.
func (t *Table) Hinge() (float64, bool) {
	if t.hinge == nil {
		return 0, false
	}
	return *t.hinge, true
}

// Background returns the background (B directive) color, if declared.
func (t *Table) Background() (RGBA, bool) {
	if t.background == nil {
		return RGBA{}, false
	}
	return *t.background, true
}

// Foreground returns the foreground (F directive) color, if declared.
func (t *Table) Foreground() (RGBA, bool) {
	if t.foreground == nil {
		return RGBA{}, false
	}
	return *t.foreground, true
}

// NaNColor returns the NaN-fill (N directive) color, if declared.
func (t *Table) NaNColor() (RGBA, bool) {
	if t.nan == nil {
		return RGBA{}, false
	}
	return *t.nan, true
}

// sampleStops returns the interpolated color of an ordered stop list at
// position t. t is clamped to the list's span. At a discontinuity (two
// stops sharing a position) the exact position reads the lower stop's
// color; positions above it read the upper color.
func sampleStops(stops []ColorStop, t float64) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Position >= t
	})
	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	s1 := stops[idx-1]
	s2 := stops[idx]

	// Coincident stops: a discontinuity, no interpolation across it.
	if s2.Position == s1.Position {
		return s1.Color
	}

	localT := (t - s1.Position) / (s2.Position - s1.Position)
	return lerpColor(s1.Color, s2.Color, localT)
}

// normalizeStops rescales stop positions so the list spans exactly [0, 1].
// A zero-span list collapses to position 0.
func normalizeStops(stops []ColorStop) []ColorStop {
	out := make([]ColorStop, len(stops))
	copy(out, stops)
	if len(out) == 0 {
		return out
	}
	min := out[0].Position
	span := out[len(out)-1].Position - min
	if span <= 0 {
		for i := range out {
			out[i].Position = 0
		}
		return out
	}
	for i := range out {
		out[i].Position = (out[i].Position - min) / span
	}
	// Pin the endpoints against rounding.
	out[0].Position = 0
	out[len(out)-1].Position = 1
	return out
}

// sampleColors builds an n-entry lookup table by evenly sampling fn over
// [0, 1].
func sampleColors(n int, fn func(float64) RGBA) []RGBA {
	if n <= 0 {
		return nil
	}
	out := make([]RGBA, n)
	if n == 1 {
		out[0] = fn(0)
		return out
	}
	for i := range out {
		out[i] = fn(float64(i) / float64(n-1))
	}
	return out
}
