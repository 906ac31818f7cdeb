package world

import (
	"fmt"
)

// MaxTextures is the number of wall textures a cell can address.
const MaxTextures = 16

// TexID selects a texture, 0 to MaxTextures-1.
type TexID uint8

// Cell is either empty (the zero value) or a wall with a texture.
type Cell struct {
	Tex  TexID
	Wall bool
}

// Empty is an open cell.
var Empty = Cell{}

// WallCell returns a wall cell textured with tex.
func WallCell(tex TexID) Cell {
	return Cell{Tex: tex, Wall: true}
}

// Texture returns the wall texture and whether the cell is a wall.
func (c Cell) Texture() (TexID, bool) {
	return c.Tex, c.Wall
}

// Map is a grid of cells in row-major order. It is not modified after
// loading and is safe to read from several passes at once.
type Map struct {
	width  int
	height int
	cells  []Cell
}

// New creates a map from width*height cells in row-major order.
func New(width, height int, cells []Cell) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: map size %dx%d", ErrParse, width, height)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: expected %d cells, got %d", ErrMissingEntry, width*height, len(cells))
	}
	for i, c := range cells {
		if c.Wall && int(c.Tex) >= MaxTextures {
			return nil, fmt.Errorf("%w: texture %d at cell %d", ErrParse, c.Tex, i)
		}
	}
	return &Map{width: width, height: height, cells: cells}, nil
}

func (m *Map) Width() int  { return m.width }
func (m *Map) Height() int { return m.height }

func (m *Map) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}

// At returns the cell at (x, y) and false if it lies outside the grid.
func (m *Map) At(x, y int) (Cell, bool) {
	if !m.inBounds(x, y) {
		return Empty, false
	}
	return m.cells[y*m.width+x], true
}

// Blocked reports whether (x, y) is a wall or outside the grid.
func (m *Map) Blocked(x, y int) bool {
	c, ok := m.At(x, y)
	return !ok || c.Wall
}

// Closed reports whether every perimeter cell is a wall. Intersection on a
// map that is not closed can fail with ErrNoIntersection.
func (m *Map) Closed() bool {
	for x := 0; x < m.width; x++ {
		if !m.cells[x].Wall || !m.cells[(m.height-1)*m.width+x].Wall {
			return false
		}
	}
	for y := 0; y < m.height; y++ {
		if !m.cells[y*m.width].Wall || !m.cells[y*m.width+m.width-1].Wall {
			return false
		}
	}
	return true
}

// Textures returns the distinct wall texture ids used by the map, ascending.
func (m *Map) Textures() []TexID {
	var seen [MaxTextures]bool
	for _, c := range m.cells {
		if c.Wall {
			seen[c.Tex] = true
		}
	}
	ids := make([]TexID, 0, MaxTextures)
	for id, ok := range seen {
		if ok {
			ids = append(ids, TexID(id))
		}
	}
	return ids
}
