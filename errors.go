package cmaptools

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange reports a vmin/hinge/vmax triple that violates
	// vmin <= hinge <= vmax.
	ErrInvalidRange = errors.New("cmaptools: invalid range")

	// ErrInvalidWeight reports a non-positive or NaN join weight.
	ErrInvalidWeight = errors.New("cmaptools: join weights must be positive")

	// ErrInvalidSamples reports a join sample count below two.
	ErrInvalidSamples = errors.New("cmaptools: join needs at least two samples")

	// ErrNilColormap reports a nil colormap passed to Join.
	ErrNilColormap = errors.New("cmaptools: colormap must not be nil")

	// ErrUnknownColormap reports a name with no registered colormap.
	ErrUnknownColormap = errors.New("cmaptools: unknown colormap")
)

// ParseError describes a defect in cpt input. Line is the 1-based physical
// line number of the offending content, counting comments and blank lines.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("cmaptools: parse error at line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("cmaptools: parse error: %s", e.Msg)
}

// parseErrorf builds a *ParseError for the given line.
func parseErrorf(line int, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...)}
}
