package render

import (
	"errors"
	"testing"

	"raycaster/model"
	"raycaster/texture"
	"raycaster/vmath"
	"raycaster/world"
)

var (
	wallRGB  = [3]byte{200, 100, 50}
	floorRGB = [3]byte{90, 60, 30}
)

func solid(rgb [3]byte, size int) *texture.Texture {
	t := &texture.Texture{Width: size, Height: size, Pix: make([]byte, 3*size*size)}
	for i := 0; i < len(t.Pix); i += 3 {
		copy(t.Pix[i:], rgb[:])
	}
	return t
}

// room returns a w by h map with a wall of texture 0 around an empty interior.
func room(t *testing.T, w, h int) *world.Map {
	t.Helper()
	cells := make([]world.Cell, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				cells[y*w+x] = world.WallCell(0)
			}
		}
	}
	m, err := world.New(w, h, cells)
	if err != nil {
		t.Fatalf("world.New: %v", err)
	}
	return m
}

func camera(t *testing.T, pos, dir vmath.Vector2) *model.Camera {
	t.Helper()
	c, err := model.NewCamera(pos, dir, 90)
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}
	return c
}

func raycaster(t *testing.T, w, h int, scale float64) *Raycaster {
	t.Helper()
	rc, err := New(w, h, texture.Set{solid(wallRGB, 8), solid(floorRGB, 8)}, 1, scale)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return rc
}

func TestNewValidation(t *testing.T) {
	set := texture.Set{solid(wallRGB, 4)}

	tests := []struct {
		name   string
		w, h   int
		floor  world.TexID
		scale  float64
		expect error
	}{
		{"zero width", 0, 10, 0, 1, ErrScreenSize},
		{"negative height", 10, -1, 0, 1, ErrScreenSize},
		{"zero scale", 10, 10, 0, 0, ErrScreenSize},
		{"missing floor", 10, 10, 3, 1, texture.ErrUnknownTexture},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.w, tt.h, set, tt.floor, tt.scale); !errors.Is(err, tt.expect) {
				t.Errorf("Expected %v, got %v", tt.expect, err)
			}
		})
	}
}

func TestRenderBufferSize(t *testing.T) {
	rc := raycaster(t, 16, 12, 1)
	cam := camera(t, vmath.V2(3, 3), vmath.V2(1, 0))

	err := rc.Render(cam, room(t, 6, 6), make([]byte, 16*12*3))
	if !errors.Is(err, ErrBufferSize) {
		t.Errorf("Expected ErrBufferSize, got %v", err)
	}
}

func TestRenderFullAlpha(t *testing.T) {
	sizes := [][2]int{{32, 24}, {33, 25}, {8, 2}}
	for _, sz := range sizes {
		rc := raycaster(t, sz[0], sz[1], 1)
		buf := make([]byte, rc.BufferSize())
		if err := rc.Render(camera(t, vmath.V2(3.3, 2.7), vmath.V2(1, 0.4)), room(t, 6, 6), buf); err != nil {
			t.Fatalf("%v: unexpected error %v", sz, err)
		}
		for i := 3; i < len(buf); i += 4 {
			if buf[i] != 0xff {
				t.Fatalf("%v: pixel %d has alpha %d", sz, i/4, buf[i])
			}
		}
	}
}

func TestRenderShading(t *testing.T) {
	const w, h = 40, 30
	rc := raycaster(t, w, h, 1)
	buf := make([]byte, rc.BufferSize())
	// 2.5 cells from the east wall: wall rows 10..20, floor and ceiling visible
	if err := rc.Render(camera(t, vmath.V2(16.5, 10.5), vmath.V2(1, 0)), room(t, 20, 20), buf); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	pixel := func(x, y int) [3]byte {
		i := 4 * (y*w + x)
		return [3]byte{buf[i], buf[i+1], buf[i+2]}
	}

	// centre column hits the east wall, a north-south face
	if got, want := pixel(w/2, h/2), [3]byte{100, 50, 25}; got != want {
		t.Errorf("Wall: expected %v, got %v", want, got)
	}
	if got, want := pixel(3, h-1), [3]byte{30, 20, 10}; got != want {
		t.Errorf("Floor: expected %v, got %v", want, got)
	}
	if got, want := pixel(3, 0), [3]byte{45, 30, 15}; got != want {
		t.Errorf("Ceiling: expected %v, got %v", want, got)
	}
}

func TestStripScaling(t *testing.T) {
	const w, h = 64, 240
	m := room(t, 20, 20)
	cam := camera(t, vmath.V2(2.5, 10.5), vmath.V2(1, 0))
	base := raycaster(t, w, h, 1)

	for _, s := range []float64{2, 0.5, 4} {
		scaled := raycaster(t, w, h, s)
		for x := 0; x < w; x++ {
			a, err := base.Strip(cam, m, x)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			b, err := scaled.Strip(cam, m, x)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if b.Height != s*a.Height {
				t.Errorf("Scale %v column %d: expected height %v, got %v", s, x, s*a.Height, b.Height)
			}
			if b.Hit != a.Hit || b.Dist != a.Dist {
				t.Errorf("Scale %v column %d: hit changed from %+v to %+v", s, x, a.Hit, b.Hit)
			}
			// centred around the horizon
			if b.Top+b.Bottom != h && b.Top+b.Bottom != h-1 && b.Top+b.Bottom != h+1 {
				t.Errorf("Scale %v column %d: strip %d..%d not centred", s, x, b.Top, b.Bottom)
			}
		}
	}
}

func TestStripTextureColumn(t *testing.T) {
	m := room(t, 6, 6)
	rc := raycaster(t, 64, 48, 1)

	// centre column looks straight at (5, 1.5)
	s, err := rc.Strip(camera(t, vmath.V2(1.5, 1.5), vmath.V2(1, 0)), m, 32)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.Hit.Pos != vmath.V2(5, 1.5) || !s.Hit.NorthSouth {
		t.Fatalf("Expected NS hit at (5, 1.5), got %+v", s.Hit)
	}
	if s.TexCol != 4 {
		t.Errorf("Expected texture column 4 of 8, got %d", s.TexCol)
	}
	if s.Dist != 3.5 {
		t.Errorf("Expected distance 3.5, got %v", s.Dist)
	}
	if s.Shade != shadeNorthSouth {
		t.Errorf("Expected north-south shade, got %d", s.Shade)
	}

	s, err = rc.Strip(camera(t, vmath.V2(1.25, 3.5), vmath.V2(0, -1)), m, 32)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.Hit.NorthSouth || s.TexCol != 2 || s.Shade != shadeEastWest {
		t.Errorf("Expected EW hit at texture column 2, got %+v col %d", s.Hit, s.TexCol)
	}
}

func TestStripTexRowInRange(t *testing.T) {
	m := room(t, 6, 6)
	rc := raycaster(t, 40, 300, 1)
	cam := camera(t, vmath.V2(1.05, 3.5), vmath.V2(-1, 0.1))

	for x := 0; x < rc.Width(); x++ {
		s, err := rc.Strip(cam, m, x)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		for y := s.Top + 1; y < s.Bottom && y < rc.Height(); y++ {
			if row := s.TexRow(y); row < 0 || row >= s.Tex.Height {
				t.Fatalf("Column %d row %d: texture row %d out of range", x, y, row)
			}
		}
	}
}

func TestFloorTexelTiling(t *testing.T) {
	const size = 16
	for _, v := range []float64{0, 0.25, 0.5, 0.625, 0.9375, -0.25, -3.5} {
		want := floorTexel(v, size)
		if want < 0 || want >= size {
			t.Fatalf("Texel for %v out of range: %d", v, want)
		}
		for _, k := range []float64{1, size, -size, 3 * size} {
			if got := floorTexel(v+k, size); got != want {
				t.Errorf("Expected texel %d at %v, got %d at %v", want, v, got, v+k)
			}
		}
	}
}

func TestRenderErrors(t *testing.T) {
	rc := raycaster(t, 16, 12, 1)
	buf := make([]byte, rc.BufferSize())
	cam := camera(t, vmath.V2(1.5, 1.5), vmath.V2(1, 0))

	open, err := world.New(3, 3, make([]world.Cell, 9))
	if err != nil {
		t.Fatal(err)
	}
	if err := rc.Render(cam, open, buf); !errors.Is(err, world.ErrNoIntersection) {
		t.Errorf("Expected ErrNoIntersection, got %v", err)
	}

	cells := make([]world.Cell, 9)
	for i := range cells {
		if i != 4 {
			cells[i] = world.WallCell(7)
		}
	}
	unknown, err := world.New(3, 3, cells)
	if err != nil {
		t.Fatal(err)
	}
	if err := rc.Render(cam, unknown, buf); !errors.Is(err, texture.ErrUnknownTexture) {
		t.Errorf("Expected ErrUnknownTexture, got %v", err)
	}
}
