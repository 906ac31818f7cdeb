package engine

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"raycaster/model"
)

// anyPressed reports whether one of keys is held down.
func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// readIntent maps held keys to movement. Arrow keys turn, WASD moves and
// strafes, shift runs.
func readIntent() model.Intent {
	return model.Intent{
		Forward:     anyPressed(ebiten.KeyW, ebiten.KeyArrowUp),
		Backward:    anyPressed(ebiten.KeyS, ebiten.KeyArrowDown),
		StrafeLeft:  anyPressed(ebiten.KeyA),
		StrafeRight: anyPressed(ebiten.KeyD),
		TurnLeft:    anyPressed(ebiten.KeyArrowLeft, ebiten.KeyQ),
		TurnRight:   anyPressed(ebiten.KeyArrowRight, ebiten.KeyE),
		Run:         anyPressed(ebiten.KeyShift),
	}
}

// handleInput processes toggles and returns the movement intent for this
// tick, zero while paused.
func (g *Game) handleInput() model.Intent {
	// if p, pause game
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
		g.logger.Printf("paused: %v", g.paused)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.showMinimap = !g.showMinimap
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	// if escape, exit
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		g.quit = true
	}

	if g.paused {
		return model.Intent{}
	}
	return readIntent()
}
