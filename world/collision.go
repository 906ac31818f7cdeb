package world

import (
	"math"

	"raycaster/vmath"
)

// -- collision

// ResolveCollisions checks a move from old to new and returns the position the
// mover may take. Each axis is checked on its own against the cross-axis
// coordinate of old, so a blocked axis does not stop sliding along the other.
// Cells outside the grid count as blocked.
func (m *Map) ResolveCollisions(old, new vmath.Vector2) vmath.Vector2 {
	oldX := int(math.Floor(old.X))
	oldY := int(math.Floor(old.Y))

	res := old
	if !m.Blocked(int(math.Floor(new.X)), oldY) {
		res.X = new.X
	}
	if !m.Blocked(oldX, int(math.Floor(new.Y))) {
		res.Y = new.Y
	}
	return res
}

// Open reports whether pos lies inside the grid in an empty cell.
func (m *Map) Open(pos vmath.Vector2) bool {
	return !m.Blocked(pos.Floor())
}
