package hatch

import (
	"errors"
	"fmt"

	"github.com/npillmayer/hatchfill/pattern"
)

// UpdateError is the status of the last update pass of a hatch.
type UpdateError int8

// Update states. A hatch starts as Undefined.
const (
	Undefined UpdateError = iota
	Ok
	InvalidContour
	PatternNotFound
	TooSmall
	AreaTooBig
)

var (
	// ErrInvalidContour indicates boundary loops which do not form closed cycles.
	ErrInvalidContour = errors.New("invalid hatch contour")
	// ErrPatternNotFound indicates an unknown pattern name.
	ErrPatternNotFound = pattern.ErrPatternNotFound
	// ErrTooSmall indicates a degenerate boundary or pattern cell.
	ErrTooSmall = errors.New("hatch boundary or pattern cell too small")
	// ErrAreaTooBig indicates a boundary too large in relation to the pattern cell.
	ErrAreaTooBig = errors.New("hatch area too big for pattern")
)

func (u UpdateError) String() string {
	switch u {
	case Undefined:
		return "Undefined"
	case Ok:
		return "Ok"
	case InvalidContour:
		return "InvalidContour"
	case PatternNotFound:
		return "PatternNotFound"
	case TooSmall:
		return "TooSmall"
	case AreaTooBig:
		return "AreaTooBig"
	}
	return fmt.Sprintf("UpdateError(%d)", int(u))
}

// Err returns the sentinel error for a failure state, or nil for Ok and
// Undefined.
func (u UpdateError) Err() error {
	switch u {
	case InvalidContour:
		return ErrInvalidContour
	case PatternNotFound:
		return ErrPatternNotFound
	case TooSmall:
		return ErrTooSmall
	case AreaTooBig:
		return ErrAreaTooBig
	}
	return nil
}

// failure wraps the sentinel error of a state with details.
func failure(u UpdateError, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", u.Err(), fmt.Sprintf(format, args...))
}
