package cmaptools

import (
	"math"
	"testing"
)

// tolerance for floating point color comparisons
const colorEpsilon = 1e-9

func colorsEqual(c1, c2 RGBA, epsilon float64) bool {
	return math.Abs(c1.R-c2.R) < epsilon &&
		math.Abs(c1.G-c2.G) < epsilon &&
		math.Abs(c1.B-c2.B) < epsilon &&
		math.Abs(c1.A-c2.A) < epsilon
}

func TestNewPalette(t *testing.T) {
	tests := []struct {
		name    string
		stops   []ColorStop
		wantErr bool
	}{
		{"two stops", []ColorStop{{0, RGB(0, 0, 0)}, {1, RGB(1, 1, 1)}}, false},
		{"single stop", []ColorStop{{0.5, RGB(1, 0, 0)}}, false},
		{"source domain", []ColorStop{{-100, RGB(0, 0, 1)}, {200, RGB(1, 0, 0)}}, false},
		{"duplicate position", []ColorStop{{0, RGB(0, 0, 0)}, {0.5, RGB(1, 0, 0)}, {0.5, RGB(0, 1, 0)}, {1, RGB(1, 1, 1)}}, false},
		{"empty", nil, true},
		{"out of order", []ColorStop{{1, RGB(0, 0, 0)}, {0, RGB(1, 1, 1)}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPalette(tt.name, tt.stops)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewPalette() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPaletteAt(t *testing.T) {
	p, err := NewPalette("bw", []ColorStop{
		{0, RGB(0, 0, 0)},
		{1, RGB(1, 1, 1)},
	})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		t    float64
		want RGBA
	}{
		{"start", 0, RGB(0, 0, 0)},
		{"middle", 0.5, RGB(0.5, 0.5, 0.5)},
		{"end", 1, RGB(1, 1, 1)},
		{"clamped below", -2, RGB(0, 0, 0)},
		{"clamped above", 3, RGB(1, 1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.At(tt.t)
			if !colorsEqual(got, tt.want, colorEpsilon) {
				t.Errorf("At(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestPaletteSourceDomain(t *testing.T) {
	p, err := NewPalette("elev", []ColorStop{
		{-100, RGB(0, 0, 1)},
		{300, RGB(1, 0, 0)},
	})
	if err != nil {
		t.Fatal(err)
	}

	lo, hi := p.Domain()
	if lo != -100 || hi != 300 {
		t.Fatalf("Domain() = (%v, %v), want (-100, 300)", lo, hi)
	}

	// ColorForValue interpolates over the source domain.
	got := p.ColorForValue(100)
	want := RGB(0.5, 0, 0.5)
	if !colorsEqual(got, want, colorEpsilon) {
		t.Errorf("ColorForValue(100) = %v, want %v", got, want)
	}

	// Out-of-domain values clamp.
	if got := p.ColorForValue(-1e6); !colorsEqual(got, RGB(0, 0, 1), colorEpsilon) {
		t.Errorf("ColorForValue(-1e6) = %v, want blue", got)
	}
	if got := p.ColorForValue(math.NaN()); !colorsEqual(got, Transparent, colorEpsilon) {
		t.Errorf("ColorForValue(NaN) = %v, want transparent", got)
	}
}

func TestPaletteDiscontinuity(t *testing.T) {
	// Two stops at the same position with different colors: a hard jump.
	p, err := NewPalette("jump", []ColorStop{
		{0, RGB(0, 0, 1)},
		{0.5, RGB(0, 0, 1)},
		{0.5, RGB(1, 0, 0)},
		{1, RGB(1, 0, 0)},
	})
	if err != nil {
		t.Fatal(err)
	}

	if got := p.At(0.5); !colorsEqual(got, RGB(0, 0, 1), colorEpsilon) {
		t.Errorf("At(0.5) = %v, want the lower side of the jump", got)
	}
	if got := p.At(0.500001); !colorsEqual(got, RGB(1, 0, 0), 1e-4) {
		t.Errorf("At(0.500001) = %v, want the upper side of the jump", got)
	}
}

func TestPaletteColors(t *testing.T) {
	p, err := NewPalette("bw", []ColorStop{
		{0, RGB(0, 0, 0)},
		{1, RGB(1, 1, 1)},
	})
	if err != nil {
		t.Fatal(err)
	}

	colors := p.Colors(5)
	if len(colors) != 5 {
		t.Fatalf("Colors(5) returned %d entries", len(colors))
	}
	for i, want := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if !colorsEqual(colors[i], RGB(want, want, want), colorEpsilon) {
			t.Errorf("Colors(5)[%d] = %v, want gray %v", i, colors[i], want)
		}
	}

	if got := p.Colors(0); got != nil {
		t.Errorf("Colors(0) = %v, want nil", got)
	}
}

func TestPaletteReversed(t *testing.T) {
	p, err := NewPalette("ramp", []ColorStop{
		{0, RGB(0, 0, 1)},
		{0.25, RGB(0, 1, 0)},
		{1, RGB(1, 0, 0)},
	})
	if err != nil {
		t.Fatal(err)
	}

	r := p.Reversed("")
	if r.Name() != "ramp_r" {
		t.Errorf("Reversed name = %q, want %q", r.Name(), "ramp_r")
	}
	for _, tt := range []float64{0, 0.25, 0.5, 0.75, 1} {
		got := r.At(tt)
		want := p.At(1 - tt)
		if !colorsEqual(got, want, colorEpsilon) {
			t.Errorf("Reversed At(%v) = %v, want %v", tt, got, want)
		}
	}
}

func TestRegistry(t *testing.T) {
	for _, name := range []string{"gray", "hot", "cool", "jet", "seismic"} {
		if _, ok := Lookup(name); !ok {
			t.Errorf("Lookup(%q) = false, want builtin registered", name)
		}
	}
	if _, ok := Lookup("no-such-map"); ok {
		t.Error("Lookup of unknown name succeeded")
	}

	p, err := NewPalette("custom-test-map", []ColorStop{
		{0, RGB(0, 0, 0)},
		{1, RGB(1, 0, 0)},
	})
	if err != nil {
		t.Fatal(err)
	}
	Register(p)
	got, ok := Lookup("custom-test-map")
	if !ok || got.Name() != "custom-test-map" {
		t.Fatalf("Lookup after Register = %v, %v", got, ok)
	}

	names := Names()
	if len(names) < 5 {
		t.Errorf("Names() = %v, want at least the builtins", names)
	}
}
