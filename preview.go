package cmaptools

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
)

// Preview renders the three diagnostic colorbar strips of a dynamic
// colormap, top to bottom:
//
//  1. the raw [0, 1] gradient, ignoring any range — what a range-unaware
//     consumer sees;
//  2. the colormap under the Range it was built with, hinge marked;
//  3. the colormap under the currently set Range, hinge marked.
func (d *DynamicColormap) Preview(width, height int) (image.Image, error) {
	dc, err := d.renderPreview(width, height)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// PreviewGradient renders any colormap as a single [0, 1] gradient strip.
func PreviewGradient(cm Colormap, width, height int) (image.Image, error) {
	dc, err := renderGradient(cm, width, height)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// SavePreviewPNG writes a colormap preview to a PNG file: the three-strip
// diagnostic for dynamic colormaps, a single gradient strip for everything
// else.
func SavePreviewPNG(path string, cm Colormap, width, height int) error {
	var (
		dc  *gg.Context
		err error
	)
	if d, ok := cm.(*DynamicColormap); ok {
		dc, err = d.renderPreview(width, height)
	} else {
		dc, err = renderGradient(cm, width, height)
	}
	if err != nil {
		return err
	}
	return dc.SavePNG(path)
}

func (d *DynamicColormap) renderPreview(width, height int) (*gg.Context, error) {
	if width < 2 || height < 3 {
		return nil, fmt.Errorf("cmaptools: preview needs at least 2x3 pixels, got %dx%d", width, height)
	}

	gap := height / 12
	stripH := (height - 2*gap) / 3

	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.RGB(1, 1, 1))

	// Strip 1: colormap positions, no normalization.
	if err := drawStrip(dc, 0, stripH, d.At); err != nil {
		return nil, err
	}

	// Strips 2 and 3: data values through the hinge normalizer.
	for i, rng := range [...]Range{d.rng0, d.rng} {
		y := float64((i + 1) * (stripH + gap))
		norm := HingeNorm{VMin: rng.VMin, Hinge: rng.Hinge, VMax: rng.VMax, Frac: d.frac}
		sample := func(t float64) RGBA {
			v := rng.VMin + t*(rng.VMax-rng.VMin)
			return d.At(norm.Normalize(v))
		}
		if err := drawStrip(dc, y, stripH, sample); err != nil {
			return nil, err
		}
		if err := drawHingeTick(dc, y, stripH, width, rng); err != nil {
			return nil, err
		}
	}

	Logger().Debug("rendered preview", "name", d.name, "width", width, "height", height)
	return dc, nil
}

func renderGradient(cm Colormap, width, height int) (*gg.Context, error) {
	if width < 2 || height < 1 {
		return nil, fmt.Errorf("cmaptools: preview needs at least 2x1 pixels, got %dx%d", width, height)
	}
	dc := gg.NewContext(width, height)
	if err := drawStrip(dc, 0, height, cm.At); err != nil {
		return nil, err
	}
	return dc, nil
}

// drawStrip paints one horizontal colorbar strip, one pixel column at a
// time.
func drawStrip(dc *gg.Context, y float64, h int, sample func(float64) RGBA) error {
	w := dc.Width()
	for x := 0; x < w; x++ {
		t := float64(x) / float64(w-1)
		dc.SetColor(sample(t).Color())
		dc.DrawRectangle(float64(x), y, 1, float64(h))
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}

// drawHingeTick marks the hinge's value-domain position on a strip.
func drawHingeTick(dc *gg.Context, y float64, h, width int, rng Range) error {
	if rng.VMax <= rng.VMin {
		return nil
	}
	x := (rng.Hinge - rng.VMin) / (rng.VMax - rng.VMin) * float64(width-1)
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.DrawLine(x, y, x, y+float64(h))
	return dc.Stroke()
}
