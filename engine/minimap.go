package engine

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/harbdog/raycaster-go/geom"

	"raycaster/model"
	"raycaster/world"
)

const (
	minimapMargin = 10
	// length of the facing and fov lines in cells
	minimapSight = 1.5
)

var (
	minimapFloor  = color.RGBA{140, 140, 140, 255}
	minimapPlayer = color.RGBA{0, 255, 255, 255}
	minimapFov    = color.RGBA{255, 255, 0, 160}
)

// Minimap is a top-down overview of the map with the camera on it.
type Minimap struct {
	img   *ebiten.Image
	scale float64
	x, y  float64
}

// NewMinimap prerenders m for a screen of w by h pixels. The map takes at
// most a quarter of the shorter screen side, each cell 2 to 8 pixels.
func NewMinimap(m *world.Map, w, h int) *Minimap {
	side := float64(min(w, h)) / 4
	scale := geom.Clamp(side/float64(max(m.Width(), m.Height())), 2, 8)

	img := ebiten.NewImage(int(float64(m.Width())*scale), int(float64(m.Height())*scale))
	s := float32(scale)
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			clr := minimapFloor
			if c, _ := m.At(x, y); c.Wall {
				clr = dim(world.Palette[c.Tex])
			}
			vector.DrawFilledRect(img, float32(x)*s, float32(y)*s, s, s, clr, false)
		}
	}

	return &Minimap{
		img:   img,
		scale: scale,
		x:     float64(w-img.Bounds().Dx()) - minimapMargin,
		y:     minimapMargin,
	}
}

// dim darkens a palette colour so white walls stay visible on the grey floor.
func dim(c color.RGBA) color.RGBA {
	return color.RGBA{c.R / 2, c.G / 2, c.B / 2, 255}
}

func (mm *Minimap) toScreen(x, y float64) (float32, float32) {
	return float32(mm.x + x*mm.scale), float32(mm.y + y*mm.scale)
}

func (mm *Minimap) Draw(screen *ebiten.Image, cam *model.Camera) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(mm.x, mm.y)
	screen.DrawImage(mm.img, op)

	pos := cam.Pos()
	px, py := mm.toScreen(pos.X, pos.Y)

	// field of view edges
	for _, pct := range []float64{-1, 1} {
		end := pos.Add(cam.Ray(pct).Dir.Scale(minimapSight))
		ex, ey := mm.toScreen(end.X, end.Y)
		vector.StrokeLine(screen, px, py, ex, ey, 1, minimapFov, false)
	}

	end := pos.Add(cam.Dir().Scale(minimapSight))
	ex, ey := mm.toScreen(end.X, end.Y)
	vector.StrokeLine(screen, px, py, ex, ey, 2, minimapPlayer, false)
	vector.DrawFilledCircle(screen, px, py, float32(mm.scale)/2, minimapPlayer, false)
}
