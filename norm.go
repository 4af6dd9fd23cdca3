package cmaptools

import "fmt"

// HingeNorm maps data values to [0, 1] piecewise-linearly around a hinge:
// [VMin, Hinge] maps onto [0, Frac] and [Hinge, VMax] onto [Frac, 1], so
// the hinge always lands at the same interior position regardless of how
// asymmetric the value range is. Out-of-range values clamp.
//
// The zero Frac is not meaningful; build HingeNorm through NewHingeNorm or
// DynamicColormap.Norm, which set Frac explicitly.
type HingeNorm struct {
	VMin  float64
	Hinge float64
	VMax  float64

	// Frac is the canonical position of the hinge inside [0, 1].
	Frac float64
}

// NewHingeNorm builds a HingeNorm with the default split fraction.
// It fails with ErrInvalidRange unless vmin <= hinge <= vmax.
func NewHingeNorm(vmin, hinge, vmax float64) (HingeNorm, error) {
	if err := validateRange(vmin, hinge, vmax); err != nil {
		return HingeNorm{}, err
	}
	return HingeNorm{VMin: vmin, Hinge: hinge, VMax: vmax, Frac: DefaultSplitFraction}, nil
}

// Normalize maps v to a position in [0, 1] with the hinge pinned at Frac.
//
// Degenerate sides collapse rather than divide by zero: with hinge == vmin
// every v <= hinge maps to Frac, and with hinge == vmax every v > hinge
// maps to 1. The arithmetic is stable for extremes of arbitrary magnitude
// and sign because each side scales only by its own span.
func (n HingeNorm) Normalize(v float64) float64 {
	f := n.Frac
	if v <= n.Hinge {
		if n.Hinge == n.VMin {
			return f
		}
		p := f * (v - n.VMin) / (n.Hinge - n.VMin)
		return clampTo(p, 0, f)
	}
	if n.VMax == n.Hinge {
		return 1
	}
	p := f + (1-f)*(v-n.Hinge)/(n.VMax-n.Hinge)
	return clampTo(p, f, 1)
}

// LinearNorm maps data values linearly from [VMin, VMax] onto [0, 1],
// clamping out-of-range values. It is the normalizer of sequential
// palettes.
type LinearNorm struct {
	VMin float64
	VMax float64
}

// Normalize maps v to a position in [0, 1].
func (n LinearNorm) Normalize(v float64) float64 {
	if n.VMax <= n.VMin {
		return 0
	}
	return clamp01((v - n.VMin) / (n.VMax - n.VMin))
}

// validateRange checks vmin <= hinge <= vmax. NaN anywhere fails.
func validateRange(vmin, hinge, vmax float64) error {
	if !(vmin <= hinge && hinge <= vmax) {
		return fmt.Errorf("%w: need vmin <= hinge <= vmax, got vmin=%g hinge=%g vmax=%g",
			ErrInvalidRange, vmin, hinge, vmax)
	}
	return nil
}

func clampTo(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
