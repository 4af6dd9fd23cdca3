package cmaptools

// Defaults used when an option does not override them. They are plain
// constants, not mutable module state, so tests and callers can always
// construct colormaps with explicit values instead.
const (
	// DefaultHinge is the hinge assumed for cpt files that declare none.
	DefaultHinge = 0.0

	// DefaultSplitFraction is the canonical interior position of the
	// hinge inside a dynamic colormap's [0, 1] domain.
	DefaultSplitFraction = 0.5

	// DefaultSamples is the lookup-table size used when an external
	// colormap has to be resampled.
	DefaultSamples = 256
)

// Option configures Parse and ReadFile.
//
// Example:
//
//	// Force the hinge to sea level no matter what the file declares.
//	cm, err := cmaptools.ReadFile("topo.cpt", cmaptools.WithHinge(0))
//
//	// Read a diverging file as a plain sequential palette.
//	cm, err := cmaptools.ReadFile("topo.cpt", cmaptools.WithoutHinge())
type Option func(*parseOptions)

type parseOptions struct {
	name    string
	hinge   *float64
	noHinge bool
}

// WithName overrides the colormap name derived from the file name.
func WithName(name string) Option {
	return func(o *parseOptions) {
		o.name = name
	}
}

// WithHinge sets the hinge explicitly, overriding any HINGE declaration in
// the file header.
func WithHinge(hinge float64) Option {
	return func(o *parseOptions) {
		h := hinge
		o.hinge = &h
		o.noHinge = false
	}
}

// WithoutHinge disables hinge handling entirely: the file is read as a
// plain sequential palette even if it declares a hinge.
func WithoutHinge() Option {
	return func(o *parseOptions) {
		o.hinge = nil
		o.noHinge = true
	}
}

// JoinOption configures Join and JoinNamed.
type JoinOption func(*joinOptions)

type joinOptions struct {
	hinge   float64
	weightA float64
	weightB float64
	samples int
}

func defaultJoinOptions() joinOptions {
	return joinOptions{
		hinge:   DefaultHinge,
		weightA: 0.5,
		weightB: 0.5,
		samples: DefaultSamples,
	}
}

// JoinHinge sets the data value the join boundary represents. It becomes
// the resulting colormap's default Range hinge.
func JoinHinge(hinge float64) JoinOption {
	return func(o *joinOptions) {
		o.hinge = hinge
	}
}

// JoinWeights biases the split fraction: the first input occupies
// weightA/(weightA+weightB) of the joined colormap. Both weights must be
// positive.
func JoinWeights(weightA, weightB float64) JoinOption {
	return func(o *joinOptions) {
		o.weightA = weightA
		o.weightB = weightB
	}
}

// JoinSamples sets the lookup-table size used when an input colormap does
// not expose exact control points and has to be sampled. Join rejects
// counts below two with ErrInvalidSamples.
func JoinSamples(n int) JoinOption {
	return func(o *joinOptions) {
		o.samples = n
	}
}
