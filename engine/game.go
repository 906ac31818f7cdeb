package engine

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"raycaster/scene"
)

// -- game

// Game is the windowed host. It implements ebiten.Game: input and movement
// happen in Update, rendering and presentation in Draw.
type Game struct {
	scene  *scene.Scene
	logger *log.Logger

	width  int
	height int

	// view holds the rendered frame; it is only rewritten when the scene
	// changed
	view *ebiten.Image

	hud     *HUD
	minimap *Minimap

	paused      bool
	showMinimap bool
	showHUD     bool
	quit        bool

	// err is set by Draw and returned from the next Update, ebiten has no
	// way to fail a Draw call
	err error
}

// NewGame creates the host for s.
func NewGame(s *scene.Scene, logger *log.Logger) (*Game, error) {
	hud, err := NewHUD()
	if err != nil {
		return nil, err
	}

	w, h := s.Caster.Width(), s.Caster.Height()
	return &Game{
		scene:   s,
		logger:  logger,
		width:   w,
		height:  h,
		view:    ebiten.NewImage(w, h),
		hud:     hud,
		minimap: NewMinimap(s.Map, w, h),
		showHUD: true,
	}, nil
}

// Layout takes the outside size (e.g., the window size) and returns the (logical) screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Update is called every tick (1/60 [s] by default).
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}

	in := g.handleInput()
	if g.quit {
		g.logger.Printf("quit requested")
		return ebiten.Termination
	}

	g.scene.Update(in)
	return nil
}

// Draw renders the scene when the camera moved and presents it with the
// overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	drawn, err := g.scene.Render()
	if err != nil {
		g.err = fmt.Errorf("render frame: %w", err)
		return
	}
	if drawn {
		g.view.WritePixels(g.scene.Frame)
	}

	screen.DrawImage(g.view, nil)

	if g.showMinimap {
		g.minimap.Draw(screen, g.scene.Player.Camera)
	}
	if g.showHUD {
		g.hud.Draw(screen, g.scene.Player.Camera, g.paused)
	}
}
