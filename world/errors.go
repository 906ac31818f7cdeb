package world

import (
	"errors"
	"fmt"
)

var (
	// ErrParse marks a malformed map description.
	ErrParse = errors.New("map format error")
	// ErrMissingEntry marks a map with fewer rows or cells than its header declares.
	ErrMissingEntry = errors.New("missing map entry")

	// ErrNoIntersection is returned when a ray leaves the grid without hitting a wall.
	ErrNoIntersection = errors.New("ray left the map without hitting a wall")
	// ErrDegenerateRay is returned for a ray with a zero-length direction.
	ErrDegenerateRay = errors.New("ray has no direction")
)

// ReadError describes a map that could not be loaded. Kind is ErrParse,
// ErrMissingEntry or the underlying I/O / decode error.
type ReadError struct {
	Path string
	Line int // 1-based; for image levels the pixel row + 1, 0 when not tied to a line
	Col  int // 1-based, 0 when not tied to a column
	Kind error
}

func (e *ReadError) Error() string {
	switch {
	case e.Line > 0 && e.Col > 0:
		return fmt.Sprintf("read map %s: line %d col %d: %v", e.Path, e.Line, e.Col, e.Kind)
	case e.Line > 0:
		return fmt.Sprintf("read map %s: line %d: %v", e.Path, e.Line, e.Kind)
	}
	return fmt.Sprintf("read map %s: %v", e.Path, e.Kind)
}

func (e *ReadError) Unwrap() error {
	return e.Kind
}
