package cmaptools

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/shaharkadmiel/cmaptools/internal/gmt"
)

// colorModel is the channel encoding declared by a cpt file header.
type colorModel int

const (
	modelRGB colorModel = iota
	modelHSV
)

func (m colorModel) String() string {
	if m == modelHSV {
		return "HSV"
	}
	return "RGB"
}

// ReadFile reads a cpt file and builds a colormap from it. The colormap
// name defaults to the file's base name without extension; WithName
// overrides it. The result is a *DynamicColormap when the effective hinge
// is strictly inside the file's position domain, otherwise a *Palette.
func ReadFile(path string, opts ...Option) (Colormap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return Parse(name, data, opts...)
}

// Parse builds a colormap from cpt file text. See ReadFile for the hinge
// and result semantics.
//
// The hinge policy is: WithoutHinge forces a sequential palette; WithHinge
// overrides everything; otherwise a HINGE declaration in the header is
// used, defaulting to DefaultHinge when absent.
func Parse(name string, data []byte, opts ...Option) (Colormap, error) {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.name != "" {
		name = o.name
	}

	tbl, err := ParseTable(data)
	if err != nil {
		return nil, err
	}

	var hinge *float64
	switch {
	case o.noHinge:
		hinge = nil
	case o.hinge != nil:
		hinge = o.hinge
	default:
		h := DefaultHinge
		if fh, ok := tbl.Hinge(); ok {
			h = fh
		}
		hinge = &h
	}

	return assemble(name, tbl, hinge), nil
}

// ParseTable parses cpt file text into its raw control-point table without
// deciding how the table will be used. Most callers want Parse or ReadFile.
func ParseTable(data []byte) (*Table, error) {
	p := cptParser{}
	for i, line := range strings.Split(string(data), "\n") {
		if err := p.line(i+1, strings.TrimSpace(line)); err != nil {
			return nil, err
		}
	}
	return p.finish()
}

// assemble turns a parsed table plus hinge policy into the final colormap.
// A nil hinge, or a hinge at or outside the position extremes, yields a
// sequential palette; a strictly interior hinge yields a dynamic colormap.
func assemble(name string, tbl *Table, hinge *float64) Colormap {
	log := Logger()

	if hinge != nil {
		h := *hinge
		if tbl.Min() < h && h < tbl.Max() {
			lower, upper := splitStops(tbl.stops, h)
			rng := Range{VMin: tbl.Min(), Hinge: h, VMax: tbl.Max()}
			d := &DynamicColormap{
				name:  name,
				lower: normalizeStops(lower),
				upper: normalizeStops(upper),
				frac:  DefaultSplitFraction,
				nan:   tbl.nan,
				rng:   rng,
				rng0:  rng,
			}
			log.Debug("built dynamic colormap",
				"name", name, "stops", len(tbl.stops), "hinge", h,
				"vmin", rng.VMin, "vmax", rng.VMax)
			return d
		}
		log.Warn("hinge not interior to palette domain, using sequential palette",
			"name", name, "hinge", h, "min", tbl.Min(), "max", tbl.Max())
	}

	p := &Palette{
		name:  name,
		stops: normalizeStops(tbl.stops),
		vmin:  tbl.Min(),
		vmax:  tbl.Max(),
		nan:   tbl.nan,
	}
	log.Debug("built sequential palette",
		"name", name, "stops", len(tbl.stops), "vmin", p.vmin, "vmax", p.vmax)
	return p
}

// rawColor is a color as written in the file: either already resolved
// (named or hex token) or three raw channel values whose meaning depends on
// the color model and the byte-range detection done over the whole file.
type rawColor struct {
	chans    [3]float64
	resolved *RGBA
}

type rawStop struct {
	pos float64
	c   rawColor
}

type cptParser struct {
	model colorModel
	hinge *float64
	stops []rawStop

	background *rawColor
	foreground *rawColor
	nan        *rawColor

	// Largest numeric channel seen under the RGB model. Anything above 1
	// means the file uses byte-range [0, 255] channels.
	maxChan float64
}

func (p *cptParser) line(n int, line string) error {
	if line == "" {
		return nil
	}

	// Model and hinge declarations usually live inside comment lines, so
	// they are matched before comments are skipped.
	if strings.Contains(line, "HSV") {
		p.model = modelHSV
		return nil
	}
	if strings.Contains(line, "HINGE") {
		return p.hingeDirective(n, line)
	}
	if strings.HasPrefix(line, "#") {
		return nil
	}

	switch line[0] {
	case 'B', 'F', 'N':
		return p.specialColor(n, line)
	}
	return p.dataLine(n, line)
}

func (p *cptParser) hingeDirective(n int, line string) error {
	eq := strings.LastIndexByte(line, '=')
	if eq < 0 {
		return parseErrorf(n, "malformed HINGE directive %q", line)
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(line[eq+1:]), 64)
	if err != nil {
		return parseErrorf(n, "malformed hinge value %q", strings.TrimSpace(line[eq+1:]))
	}
	p.hinge = &h
	return nil
}

// specialColor parses a B (background), F (foreground), or N (NaN-fill)
// directive. The color is a triplet, a single gray value, or a name.
func (p *cptParser) specialColor(n int, line string) error {
	fields := splitCPTFields(line)
	c, err := p.parseBFNColor(n, fields[1:])
	if err != nil {
		return err
	}
	switch line[0] {
	case 'B':
		p.background = c
	case 'F':
		p.foreground = c
	case 'N':
		p.nan = c
	}
	return nil
}

func (p *cptParser) parseBFNColor(n int, fields []string) (*rawColor, error) {
	switch len(fields) {
	case 1:
		if v, err := strconv.ParseFloat(fields[0], 64); err == nil {
			p.trackChannel(v)
			return &rawColor{chans: [3]float64{v, v, v}}, nil
		}
		c, err := p.parseColorToken(n, fields[0])
		if err != nil {
			return nil, err
		}
		return &c, nil
	case 3:
		c, _, err := p.parseColorFields(n, fields, 0)
		if err != nil {
			return nil, err
		}
		return &c, nil
	default:
		return nil, parseErrorf(n, "malformed special color directive")
	}
}

// dataLine parses one segment line: pos1 color1 pos2 color2, where each
// color is three channel fields or a single named/hex token.
func (p *cptParser) dataLine(n int, line string) error {
	fields := splitCPTFields(line)

	pos1, c1, next, err := p.parseStop(n, fields, 0)
	if err != nil {
		return err
	}
	pos2, c2, _, err := p.parseStop(n, fields, next)
	if err != nil {
		return err
	}

	if len(p.stops) > 0 && pos1 < p.stops[len(p.stops)-1].pos {
		return parseErrorf(n, "non-monotonic position %g after %g",
			pos1, p.stops[len(p.stops)-1].pos)
	}
	if pos2 < pos1 {
		return parseErrorf(n, "segment end %g precedes start %g", pos2, pos1)
	}

	p.stops = append(p.stops, rawStop{pos: pos1, c: c1}, rawStop{pos: pos2, c: c2})
	return nil
}

func (p *cptParser) parseStop(n int, fields []string, idx int) (float64, rawColor, int, error) {
	if idx >= len(fields) {
		return 0, rawColor{}, 0, parseErrorf(n, "truncated segment line")
	}
	pos, err := strconv.ParseFloat(fields[idx], 64)
	if err != nil {
		return 0, rawColor{}, 0, parseErrorf(n, "malformed position %q", fields[idx])
	}
	c, next, err := p.parseColorFields(n, fields, idx+1)
	if err != nil {
		return 0, rawColor{}, 0, err
	}
	return pos, c, next, nil
}

// parseColorFields reads a color starting at fields[idx]: either three
// numeric channel fields or one named/hex token. It returns the index of
// the first unconsumed field.
func (p *cptParser) parseColorFields(n int, fields []string, idx int) (rawColor, int, error) {
	if idx >= len(fields) {
		return rawColor{}, 0, parseErrorf(n, "missing color")
	}

	if v0, err := strconv.ParseFloat(fields[idx], 64); err == nil {
		if idx+2 >= len(fields) {
			return rawColor{}, 0, parseErrorf(n, "truncated color triplet")
		}
		v1, err := strconv.ParseFloat(fields[idx+1], 64)
		if err != nil {
			return rawColor{}, 0, parseErrorf(n, "malformed color channel %q", fields[idx+1])
		}
		v2, err := strconv.ParseFloat(fields[idx+2], 64)
		if err != nil {
			return rawColor{}, 0, parseErrorf(n, "malformed color channel %q", fields[idx+2])
		}
		p.trackChannel(v0)
		p.trackChannel(v1)
		p.trackChannel(v2)
		return rawColor{chans: [3]float64{v0, v1, v2}}, idx + 3, nil
	}

	c, err := p.parseColorToken(n, fields[idx])
	if err != nil {
		return rawColor{}, 0, err
	}
	return c, idx + 1, nil
}

func (p *cptParser) parseColorToken(n int, tok string) (rawColor, error) {
	if strings.HasPrefix(tok, "#") {
		c, err := colorful.Hex(tok)
		if err != nil {
			return rawColor{}, parseErrorf(n, "malformed hex color %q", tok)
		}
		return rawColor{resolved: &RGBA{R: c.R, G: c.G, B: c.B, A: 1}}, nil
	}
	if c, ok := gmt.Lookup(tok); ok {
		return rawColor{resolved: &RGBA{
			R: float64(c[0]) / 255,
			G: float64(c[1]) / 255,
			B: float64(c[2]) / 255,
			A: 1,
		}}, nil
	}
	return rawColor{}, parseErrorf(n, "unknown color name %q", tok)
}

// trackChannel records a numeric channel for byte-range detection. Only
// meaningful under the RGB model; HSV channels have fixed units.
func (p *cptParser) trackChannel(v float64) {
	if p.model == modelRGB && v > p.maxChan {
		p.maxChan = v
	}
}

func (p *cptParser) finish() (*Table, error) {
	if len(p.stops) == 0 {
		return nil, parseErrorf(0, "no color segments found")
	}

	// Channel scale is decided over the whole file: any numeric channel
	// above 1 means byte-range input.
	div := 1.0
	if p.model == modelRGB && p.maxChan > 1 {
		div = 255
	}

	stops := make([]ColorStop, 0, len(p.stops))
	for _, rs := range p.stops {
		c := p.resolve(rs.c, div)
		// Collapse shared segment endpoints; keep both stops when the
		// colors differ, which is how a cpt file encodes a discontinuity.
		if n := len(stops); n > 0 &&
			stops[n-1].Position == rs.pos && sameColor(stops[n-1].Color, c) {
			continue
		}
		stops = append(stops, ColorStop{Position: rs.pos, Color: c})
	}

	tbl := &Table{stops: stops, hinge: p.hinge}
	if p.background != nil {
		c := p.resolve(*p.background, div)
		tbl.background = &c
	}
	if p.foreground != nil {
		c := p.resolve(*p.foreground, div)
		tbl.foreground = &c
	}
	if p.nan != nil {
		c := p.resolve(*p.nan, div)
		tbl.nan = &c
	}

	Logger().Debug("parsed cpt table",
		"stops", len(stops), "model", p.model.String(),
		"byte_range", div == 255, "declared_hinge", p.hinge != nil)
	return tbl, nil
}

func (p *cptParser) resolve(c rawColor, div float64) RGBA {
	if c.resolved != nil {
		return *c.resolved
	}
	if p.model == modelHSV {
		rc := colorful.Hsv(c.chans[0], c.chans[1], c.chans[2])
		return RGBA{R: rc.R, G: rc.G, B: rc.B, A: 1}
	}
	return RGBA{
		R: c.chans[0] / div,
		G: c.chans[1] / div,
		B: c.chans[2] / div,
		A: 1,
	}
}

// splitCPTFields splits a cpt line on whitespace and slashes, the two
// channel separators the format allows.
func splitCPTFields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == '/'
	})
}
