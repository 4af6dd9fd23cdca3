package cmaptools

import "testing"

func TestSplitStopsInsideSegment(t *testing.T) {
	stops := []ColorStop{
		{-1, RGB(0, 0, 1)},
		{1, RGB(1, 0, 0)},
	}
	lower, upper := splitStops(stops, 0)

	if len(lower) != 2 || len(upper) != 2 {
		t.Fatalf("len(lower)=%d len(upper)=%d, want 2 and 2", len(lower), len(upper))
	}
	if lower[1].Position != 0 || upper[0].Position != 0 {
		t.Errorf("boundary positions = %v, %v, want 0, 0", lower[1].Position, upper[0].Position)
	}

	// The synthesized boundary stop is shared and continuous.
	want := RGB(0.5, 0, 0.5)
	if !colorsEqual(lower[1].Color, want, colorEpsilon) {
		t.Errorf("lower boundary color = %v, want %v", lower[1].Color, want)
	}
	if !colorsEqual(upper[0].Color, lower[1].Color, colorEpsilon) {
		t.Error("boundary colors differ, want continuity")
	}
}

func TestSplitStopsAtDiscontinuity(t *testing.T) {
	blue := RGB(0.1, 0.1, 0.9)
	green := RGB(0.1, 0.6, 0.1)
	stops := []ColorStop{
		{-1, RGB(0, 0, 0.3)},
		{0, blue},
		{0, green},
		{1, RGB(1, 1, 0.8)},
	}
	lower, upper := splitStops(stops, 0)

	if len(lower) != 2 || len(upper) != 2 {
		t.Fatalf("len(lower)=%d len(upper)=%d, want 2 and 2", len(lower), len(upper))
	}
	if !colorsEqual(lower[1].Color, blue, colorEpsilon) {
		t.Errorf("lower boundary = %v, want the lower side of the jump", lower[1].Color)
	}
	if !colorsEqual(upper[0].Color, green, colorEpsilon) {
		t.Errorf("upper boundary = %v, want the upper side of the jump", upper[0].Color)
	}
}

func TestSplitStopsAtSingleStop(t *testing.T) {
	// Hinge exactly at an ordinary stop (no discontinuity): both sides
	// share that stop, nothing is duplicated or re-interpolated.
	mid := RGB(1, 1, 1)
	stops := []ColorStop{
		{-2, RGB(0, 0, 1)},
		{0, mid},
		{3, RGB(1, 0, 0)},
	}
	lower, upper := splitStops(stops, 0)

	if len(lower) != 2 || len(upper) != 2 {
		t.Fatalf("len(lower)=%d len(upper)=%d, want 2 and 2", len(lower), len(upper))
	}
	if !colorsEqual(lower[1].Color, mid, colorEpsilon) || !colorsEqual(upper[0].Color, mid, colorEpsilon) {
		t.Errorf("boundary colors = %v, %v, want shared %v", lower[1].Color, upper[0].Color, mid)
	}
}

func TestSplitNormalizedSpans(t *testing.T) {
	// After renormalization both sub-tables span exactly [0, 1] and meet
	// at the hinge.
	stops := []ColorStop{
		{-8000, RGB(0, 0, 0.5)},
		{-20, RGB(0, 0.5, 1)},
		{0, RGB(0.8, 0.9, 1)},
		{10, RGB(0, 0.4, 0)},
		{3000, RGB(1, 1, 1)},
	}
	for _, hinge := range []float64{-20, -5, 0, 10, 1500} {
		lower, upper := splitStops(stops, hinge)
		ln := normalizeStops(lower)
		un := normalizeStops(upper)
		if ln[0].Position != 0 || ln[len(ln)-1].Position != 1 {
			t.Errorf("hinge %v: lower spans [%v, %v], want [0, 1]",
				hinge, ln[0].Position, ln[len(ln)-1].Position)
		}
		if un[0].Position != 0 || un[len(un)-1].Position != 1 {
			t.Errorf("hinge %v: upper spans [%v, %v], want [0, 1]",
				hinge, un[0].Position, un[len(un)-1].Position)
		}
		if lower[len(lower)-1].Position != hinge || upper[0].Position != hinge {
			t.Errorf("hinge %v: boundary at %v and %v, want the hinge itself",
				hinge, lower[len(lower)-1].Position, upper[0].Position)
		}
	}
}
