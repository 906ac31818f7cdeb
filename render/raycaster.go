package render

import (
	"errors"
	"fmt"
	"math"

	"raycaster/model"
	"raycaster/texture"
	"raycaster/vmath"
	"raycaster/world"
)

var (
	// ErrBufferSize is returned when the frame buffer is not 4*width*height bytes.
	ErrBufferSize = errors.New("render: frame buffer has wrong size")
	// ErrScreenSize is returned for a non-positive screen size or wall scale.
	ErrScreenSize = errors.New("render: invalid screen size")
)

const (
	// fixed shading divisors
	shadeNorthSouth = 2
	shadeEastWest   = 1
	shadeFloor      = 3
	shadeCeiling    = 2
)

// -- raycaster

// Raycaster draws a map as seen from a camera into an RGBA frame buffer.
type Raycaster struct {
	width     int
	height    int
	textures  texture.Set
	floor     *texture.Texture
	wallScale float64
}

// New creates a raycaster for a width by height screen. floorID selects the
// texture used for floor and ceiling, wallScale stretches wall heights (1 is
// one cell tall at a distance of one cell).
func New(width, height int, textures texture.Set, floorID world.TexID, wallScale float64) (*Raycaster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrScreenSize, width, height)
	}
	if !(wallScale > 0) {
		return nil, fmt.Errorf("%w: wall scale %v", ErrScreenSize, wallScale)
	}
	floor, err := textures.At(floorID)
	if err != nil {
		return nil, fmt.Errorf("floor texture: %w", err)
	}

	return &Raycaster{
		width:     width,
		height:    height,
		textures:  textures,
		floor:     floor,
		wallScale: wallScale,
	}, nil
}

// Resize returns a raycaster with the same textures and scale for a width by
// height screen.
func (r *Raycaster) Resize(width, height int) (*Raycaster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrScreenSize, width, height)
	}
	cp := *r
	cp.width, cp.height = width, height
	return &cp, nil
}

func (r *Raycaster) Width() int  { return r.width }
func (r *Raycaster) Height() int { return r.height }

// BufferSize returns the number of bytes Render expects.
func (r *Raycaster) BufferSize() int {
	return 4 * r.width * r.height
}

// Render draws one frame into buf, floor and ceiling first, walls over them.
// Every pixel is written with full alpha.
func (r *Raycaster) Render(cam *model.Camera, m *world.Map, buf []byte) error {
	if len(buf) != r.BufferSize() {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrBufferSize, r.BufferSize(), len(buf))
	}

	clear(buf)
	for i := 3; i < len(buf); i += 4 {
		buf[i] = 0xff
	}

	r.renderFloor(cam, buf)
	return r.renderWalls(cam, m, buf)
}

func (r *Raycaster) put(buf []byte, x, y int, cr, cg, cb, div byte) {
	i := 4 * (y*r.width + x)
	buf[i] = cr / div
	buf[i+1] = cg / div
	buf[i+2] = cb / div
	buf[i+3] = 0xff
}

// renderFloor back-projects every row below the horizon onto the floor plane
// and mirrors it onto the ceiling.
func (r *Raycaster) renderFloor(cam *model.Camera, buf []byte) {
	scrW := float64(r.width)
	camHt := float64(r.height) / 2
	tex := r.floor

	left := cam.Ray(-1).Dir
	right := cam.Ray(1).Dir
	spread := right.Sub(left).Div(scrW)

	for y := 0; y < r.height; y++ {
		p := float64(y) - camHt
		if p <= 0 {
			continue
		}
		rowDist := camHt / p

		pos := cam.Pos().Add(left.Scale(rowDist))
		step := spread.Scale(rowDist)
		ceil := r.height - 1 - y

		for x := 0; x < r.width; x++ {
			tx := floorTexel(pos.X, tex.Width)
			ty := floorTexel(pos.Y, tex.Height)
			pos.AddInPlace(step)

			cr, cg, cb := tex.At(tx, ty)
			r.put(buf, x, y, cr, cg, cb, shadeFloor)
			r.put(buf, x, ceil, cr, cg, cb, shadeCeiling)
		}
	}
}

// floorTexel maps a world coordinate to a texel index, repeating every cell.
func floorTexel(v float64, size int) int {
	return int(float64(size)*vmath.Fract(v)) % size
}

// Strip is the wall slice drawn in one screen column.
type Strip struct {
	Hit world.Intersection
	// Dist is the hit distance along the camera's facing direction.
	Dist float64
	// Height is the projected wall height in pixels, possibly taller than
	// the screen.
	Height float64
	// rows strictly between Top and Bottom are wall
	Top, Bottom int
	Tex         *texture.Texture
	TexCol      int
	Shade       byte
}

// Strip casts the ray for screen column x and projects the wall it hits.
func (r *Raycaster) Strip(cam *model.Camera, m *world.Map, x int) (Strip, error) {
	scrW := float64(r.width)
	scrH := float64(r.height)

	// [-1, 1), the last column stops one pixel short of the plane's edge
	pct := 2 * (float64(x) - scrW/2) / scrW
	ray := cam.Ray(pct)

	hit, err := m.Intersect(ray)
	if err != nil {
		return Strip{}, err
	}
	tex, err := r.textures.At(hit.Tex)
	if err != nil {
		return Strip{}, err
	}

	cos := ray.Dir.Dot(cam.Dir())
	perp := hit.Pos.Sub(cam.Pos()).Len() * cos
	wallHt := r.wallScale * scrH / perp
	offs := math.Max(0, (scrH-wallHt)/2)

	s := Strip{
		Hit:    hit,
		Dist:   perp,
		Height: wallHt,
		Top:    int(offs),
		Bottom: int(scrH - offs),
		Tex:    tex,
		Shade:  shadeEastWest,
	}

	u := hit.Pos.X
	if hit.NorthSouth {
		u = hit.Pos.Y
		s.Shade = shadeNorthSouth
	}
	s.TexCol = min(int(float64(tex.Width)*vmath.Fract(u)), tex.Width-1)

	return s, nil
}

// TexRow returns the texture row for screen row y inside the strip.
func (s *Strip) TexRow(y int) int {
	row := int(float64(s.Tex.Height) * float64(y-s.Top) / s.Height)
	return max(0, min(row, s.Tex.Height-1))
}

func (r *Raycaster) renderWalls(cam *model.Camera, m *world.Map, buf []byte) error {
	for x := 0; x < r.width; x++ {
		s, err := r.Strip(cam, m, x)
		if err != nil {
			return fmt.Errorf("column %d: %w", x, err)
		}

		for y := s.Top + 1; y < s.Bottom && y < r.height; y++ {
			cr, cg, cb := s.Tex.At(s.TexCol, s.TexRow(y))
			r.put(buf, x, y, cr, cg, cb, s.Shade)
		}
	}
	return nil
}
