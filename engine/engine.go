package engine

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// Run opens a window titled title and runs g until the window is closed,
// Escape is pressed or a frame fails.
func Run(g *Game, title string) error {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
