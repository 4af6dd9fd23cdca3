// Package cmaptools reads GMT-style cpt color palette files and builds
// colormaps that can rescale themselves asymmetrically around a hinge value.
//
// # Overview
//
// A cpt file describes a palette as ordered color segments over a data
// domain, for example elevation from -8000 m to 3000 m with a hinge at sea
// level. cmaptools parses that format, splits the palette at the hinge, and
// produces a DynamicColormap whose lower and upper halves stretch
// independently to any caller-supplied [vmin, vmax] range while the hinge
// stays pinned at a fixed interior fraction of the colormap:
//
//	<|min_color-----------hinge_color-----------max_color|>
//	-1                         0                         1
//	                            \
//	                             \
//	<|min_color-----------------hinge_color-----max_color|>
//	-10                              0                   5
//
// # Quick Start
//
//	import "github.com/shaharkadmiel/cmaptools"
//
//	cm, err := cmaptools.ReadFile("topo.cpt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if d, ok := cm.(*cmaptools.DynamicColormap); ok {
//	    // Stretch to an asymmetric range around the hinge.
//	    if err := d.SetLimits(-10, 5); err != nil {
//	        log.Fatal(err)
//	    }
//	    c := d.ColorForValue(-3.2)
//	    _ = c
//	}
//
// Two existing colormaps can be stitched into one dynamic colormap with
// Join; the join point becomes the hinge:
//
//	cm, err := cmaptools.JoinNamed("cool", "hot")
//
// # Colormap Interface
//
// Everything that can answer "what color at fractional position p" and
// "give me an n-entry lookup table" satisfies the Colormap interface.
// Sequential palettes (Palette), dynamic colormaps (DynamicColormap), and
// any external implementation are interchangeable as inputs to Join.
//
// # Normalization
//
// A DynamicColormap's Norm method returns the piecewise-linear HingeNorm
// that maps data values into the colormap's [0,1] domain. HingeNorm and
// LinearNorm both satisfy the Normalizer interface and can be handed to
// rendering code alongside the colormap itself.
//
// # Logging
//
// cmaptools produces no log output by default. Call SetLogger with a
// *slog.Logger to enable parse and preview diagnostics.
package cmaptools
