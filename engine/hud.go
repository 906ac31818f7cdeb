package engine

import (
	"fmt"
	"image/color"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"raycaster/model"
)

const hudFontSize = 14

var (
	hudColor    = color.RGBA{255, 255, 255, 255}
	pausedColor = color.RGBA{255, 200, 0, 255}
)

// HUD draws status text over the view.
type HUD struct {
	face       font.Face
	lineHeight int
}

func NewHUD() (*HUD, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse hud font: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    hudFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return &HUD{
		face:       face,
		lineHeight: face.Metrics().Height.Ceil(),
	}, nil
}

func (h *HUD) Draw(screen *ebiten.Image, cam *model.Camera, paused bool) {
	pos := cam.Pos()
	heading := math.Mod(cam.HeadingAngle()*180/math.Pi+360, 360)

	lines := []string{
		fmt.Sprintf("FPS: %0.1f", ebiten.ActualFPS()),
		fmt.Sprintf("pos: %0.2f, %0.2f", pos.X, pos.Y),
		fmt.Sprintf("heading: %0.0f  fov: %0.0f", heading, cam.FovAngle()),
	}
	y := 10 + h.lineHeight
	for _, l := range lines {
		text.Draw(screen, l, h.face, 10, y, hudColor)
		y += h.lineHeight
	}

	if paused {
		b := screen.Bounds()
		msg := "PAUSED (P to resume)"
		w := font.MeasureString(h.face, msg).Ceil()
		text.Draw(screen, msg, h.face, (b.Dx()-w)/2, b.Dy()/2, pausedColor)
	}

	b := screen.Bounds()
	text.Draw(screen, "WASD move, arrows turn, M map, H hud, ESC exit", h.face, 10, b.Dy()-10, hudColor)
}
