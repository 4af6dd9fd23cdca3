package cmaptools

import "fmt"

// Join stitches two colormaps into one dynamic colormap: the first input
// becomes the lower half, the second the upper, and the join boundary
// becomes the hinge (JoinHinge, default DefaultHinge). JoinWeights biases
// how much of the [0, 1] domain each input occupies.
//
// Inputs exposing exact control points (Palette, DynamicColormap) are taken
// over without resampling; anything else is sampled at JoinSamples points.
// The result owns fresh sub-tables and shares no mutable state with its
// inputs. Its name is "<a>-><b>" and its default Range spans one unit on
// each side of the hinge until SetRange is called.
func Join(a, b Colormap, opts ...JoinOption) (*DynamicColormap, error) {
	if a == nil || b == nil {
		return nil, ErrNilColormap
	}

	o := defaultJoinOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !(o.weightA > 0) || !(o.weightB > 0) {
		return nil, fmt.Errorf("%w: got weightA=%g weightB=%g",
			ErrInvalidWeight, o.weightA, o.weightB)
	}
	if o.samples < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSamples, o.samples)
	}

	rng := Range{VMin: o.hinge - 1, Hinge: o.hinge, VMax: o.hinge + 1}
	d := &DynamicColormap{
		name:  a.Name() + "->" + b.Name(),
		lower: normalizeStops(stopsOf(a, o.samples)),
		upper: normalizeStops(stopsOf(b, o.samples)),
		frac:  o.weightA / (o.weightA + o.weightB),
		rng:   rng,
		rng0:  rng,
	}

	Logger().Debug("joined colormaps",
		"name", d.name, "hinge", o.hinge, "split_fraction", d.frac)
	return d, nil
}

// JoinNamed joins two registered colormaps by name. It fails with
// ErrUnknownColormap when a name is not registered.
func JoinNamed(nameA, nameB string, opts ...JoinOption) (*DynamicColormap, error) {
	a, ok := Lookup(nameA)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColormap, nameA)
	}
	b, ok := Lookup(nameB)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColormap, nameB)
	}
	return Join(a, b, opts...)
}

// stopsOf extracts a [0, 1] stop list from a colormap: exact control points
// when available, an n-point sampling of At otherwise.
func stopsOf(cm Colormap, n int) []ColorStop {
	if sp, ok := cm.(stopProvider); ok {
		return sp.controlPoints()
	}
	stops := make([]ColorStop, n)
	for i := range stops {
		t := float64(i) / float64(n-1)
		stops[i] = ColorStop{Position: t, Color: cm.At(t)}
	}
	return stops
}
