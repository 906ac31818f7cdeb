package world

import (
	"fmt"
	"math"

	"raycaster/vmath"
)

// Intersection is the point where a ray hit a wall.
type Intersection struct {
	Pos vmath.Vector2
	Tex TexID
	// NorthSouth is true when the ray crossed a vertical grid line (integral
	// x), i.e. hit a wall face running north-south.
	NorthSouth bool
}

// lineWalk steps through the crossings of a ray with one family of grid
// lines. "along" is the axis on which those lines have integral coordinates,
// "across" is the other one.
type lineWalk struct {
	ok      bool
	first   float64
	step    float64
	k       int
	originA float64
	originB float64
	slope   float64
}

func newLineWalk(along, across, dAlong, dAcross float64) lineWalk {
	if dAlong == 0 {
		// never crosses this family of lines
		return lineWalk{}
	}
	w := lineWalk{
		ok:      true,
		originA: along,
		originB: across,
		slope:   dAcross / dAlong,
	}
	if dAlong > 0 {
		w.step, w.first = 1, math.Ceil(along)
	} else {
		w.step, w.first = -1, math.Floor(along)
	}
	return w
}

// line is the integral coordinate of the pending crossing.
func (w *lineWalk) line() float64 {
	return w.first + float64(w.k)*w.step
}

// across is the other coordinate of the pending crossing. Computed from the
// crossing index rather than accumulated so it does not drift.
func (w *lineWalk) across() float64 {
	return w.originB + (w.line()-w.originA)*w.slope
}

// cell returns the index, along the walked axis, of the cell just past the
// pending crossing.
func (w *lineWalk) cell() int {
	i := int(w.line())
	if w.step < 0 {
		i--
	}
	return i
}

// Intersect finds the nearest point along ray that lies on a grid line with a
// wall cell on the far side.
//
// Hits always have an integral x or an integral y coordinate. Crossings with
// vertical lines (integral x, north-south faces) and with horizontal lines
// (integral y, east-west faces) are generated in order of distance along the
// ray until one of them enters a wall.
//
// On a closed map every ray starting inside it hits a wall. If the ray leaves
// the grid instead, ErrNoIntersection is returned; the walk is also capped at
// width+height+4 crossings, more than any ray can make inside the map.
func (m *Map) Intersect(ray vmath.Ray) (Intersection, error) {
	p, d := ray.Origin, ray.Dir
	if d.X == 0 && d.Y == 0 {
		return Intersection{}, ErrDegenerateRay
	}

	ns := newLineWalk(p.X, p.Y, d.X, d.Y)
	ew := newLineWalk(p.Y, p.X, d.Y, d.X)
	sx := vmath.Sign(d.X)

	maxSteps := m.width + m.height + 4
	for i := 0; i < maxSteps; i++ {
		var useEW bool
		switch {
		case !ns.ok:
			useEW = true
		case !ew.ok:
			useEW = false
		default:
			// the next EW point is closer than the next NS point
			useEW = ew.across()*sx < ns.line()*sx
		}

		var (
			pos    vmath.Vector2
			cx, cy int
		)
		if useEW {
			pos = vmath.V2(ew.across(), ew.line())
			cx, cy = int(math.Floor(pos.X)), ew.cell()
			ew.k++
		} else {
			pos = vmath.V2(ns.line(), ns.across())
			cx, cy = ns.cell(), int(math.Floor(pos.Y))
			ns.k++
		}

		c, ok := m.At(cx, cy)
		if !ok {
			return Intersection{}, fmt.Errorf("%w: exited at (%.3f, %.3f)", ErrNoIntersection, pos.X, pos.Y)
		}
		if c.Wall {
			return Intersection{Pos: pos, Tex: c.Tex, NorthSouth: !useEW}, nil
		}
	}

	return Intersection{}, fmt.Errorf("%w: no wall within %d crossings", ErrNoIntersection, maxSteps)
}
