package model

import (
	"errors"
	"fmt"
	"math"

	"raycaster/vmath"
)

// ErrInvalidFov is returned for a field of view outside (0, 180) degrees.
var ErrInvalidFov = errors.New("model: field of view must be between 0 and 180 degrees")

// -- camera

// Camera is the viewpoint the scene is rendered from. The view plane is
// always derived from dir, it is never set on its own.
type Camera struct {
	pos   vmath.Vector2
	dir   vmath.Vector2
	fov   float64
	plane vmath.Vector2
}

// NewCamera creates a camera at pos facing dir with a horizontal field of view
// of fovDegrees. dir does not need to be unit length but must not be zero.
func NewCamera(pos, dir vmath.Vector2, fovDegrees float64) (*Camera, error) {
	if !(fovDegrees > 0 && fovDegrees < 180) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidFov, fovDegrees)
	}
	unit, err := dir.Normalize()
	if err != nil {
		return nil, fmt.Errorf("camera facing: %w", err)
	}

	c := &Camera{pos: pos, dir: unit, fov: fovDegrees}
	c.updatePlane()
	return c, nil
}

func (c *Camera) updatePlane() {
	c.plane = c.dir.Perp().Scale(math.Tan(c.fov * math.Pi / 360))
}

// Ray returns the ray through the horizontal screen fraction pct, where -1 is
// the leftmost column and +1 the rightmost.
func (c *Camera) Ray(pct float64) vmath.Ray {
	if pct == 0 {
		// center column looks straight along the facing direction
		return vmath.NewRay(c.pos, c.dir)
	}
	d := c.dir.Add(c.plane.Scale(pct))
	return vmath.NewRay(c.pos, d.Div(d.Len()))
}

// Rotate turns the camera by rad radians and rebuilds the view plane.
func (c *Camera) Rotate(rad float64) {
	d := c.dir.Rotate(rad)
	// dir can only be zero if rotation produced garbage, keep the old one then
	if unit, err := d.Normalize(); err == nil {
		c.dir = unit
	}
	c.updatePlane()
}

func (c *Camera) Pos() vmath.Vector2 {
	return c.pos
}

func (c *Camera) SetPos(pos vmath.Vector2) {
	c.pos = pos
}

// Dir returns the unit facing vector.
func (c *Camera) Dir() vmath.Vector2 {
	return c.dir
}

// Plane returns the view plane vector, perpendicular to Dir with length
// tan(fov/2).
func (c *Camera) Plane() vmath.Vector2 {
	return c.plane
}

// FovAngle returns the field of view in degrees.
func (c *Camera) FovAngle() float64 {
	return c.fov
}

// HeadingAngle returns the facing direction as an angle in radians.
func (c *Camera) HeadingAngle() float64 {
	return math.Atan2(c.dir.Y, c.dir.X)
}
