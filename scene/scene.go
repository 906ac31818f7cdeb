// Package scene wires a loaded configuration into the pieces a host drives
// every frame: the map, the player's camera and the raycaster with its frame
// buffer.
package scene

import (
	"errors"
	"fmt"
	"io"
	"log"

	"raycaster/config"
	"raycaster/model"
	"raycaster/render"
	"raycaster/texture"
	"raycaster/world"
)

// ErrStart is returned when the map and the configuration do not fit
// together, e.g. the player starts inside a wall.
var ErrStart = errors.New("inconsistent start configuration")

// Scene is everything needed to produce frames. It is used from a single
// goroutine.
type Scene struct {
	Map      *world.Map
	Textures texture.Set
	Player   *model.Player
	Caster   *render.Raycaster

	// Frame holds the last rendered picture, 4 bytes RGBA per pixel.
	Frame []byte
}

// Load reads the map and textures named by cfg and builds the scene.
// Per-asset messages go to logger only when cfg.Misc.Debug is set.
func Load(cfg *config.Config, logger *log.Logger) (*Scene, error) {
	verbose := log.New(io.Discard, "", 0)
	if cfg.Misc.Debug {
		verbose = logger
	}

	m, err := world.Load(cfg.Assets.Map, verbose)
	if err != nil {
		return nil, err
	}
	textures, err := texture.LoadSet(cfg.Assets.Tex, cfg.Assets.TextureSize, verbose)
	if err != nil {
		return nil, err
	}
	return New(cfg, m, textures, logger)
}

// New builds a scene from already loaded assets. It rejects a start position
// outside the map or inside a wall and wall textures missing from textures.
// An open map boundary is only logged since rays may still find walls.
func New(cfg *config.Config, m *world.Map, textures texture.Set, logger *log.Logger) (*Scene, error) {
	start := cfg.Player.InitialPos.Vector2()
	if !m.Open(start) {
		return nil, fmt.Errorf("%w: player.initial_pos %v is not an empty cell of the %dx%d map", ErrStart, start, m.Width(), m.Height())
	}
	for _, id := range m.Textures() {
		if _, err := textures.At(id); err != nil {
			return nil, fmt.Errorf("%w: map uses %w", ErrStart, err)
		}
	}
	if !m.Closed() {
		logger.Printf("warning: map boundary is not closed, rays leaving it will fail the frame")
	}

	cam, err := model.NewCamera(start, cfg.Player.InitialDir.Vector2(), cfg.Player.Fov)
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}
	caster, err := render.New(cfg.Screen.Wd, cfg.Screen.Ht, textures, world.TexID(cfg.Misc.FloorTex), cfg.Misc.WallHtScale)
	if err != nil {
		return nil, err
	}

	return &Scene{
		Map:      m,
		Textures: textures,
		Player:   model.NewPlayer(cam, cfg.Player.Speed, cfg.Player.RotateSpeed),
		Caster:   caster,
		Frame:    make([]byte, caster.BufferSize()),
	}, nil
}

// Resize switches to a new screen size and forces the next Render.
func (s *Scene) Resize(width, height int) error {
	caster, err := s.Caster.Resize(width, height)
	if err != nil {
		return err
	}
	s.Caster = caster
	s.Frame = make([]byte, caster.BufferSize())
	s.Player.Moved = true
	return nil
}

// Update applies one tick of input and reports whether the view changed.
func (s *Scene) Update(in model.Intent) bool {
	return s.Player.Update(s.Map, in)
}

// Render redraws Frame if the player moved since the last successful render.
// It reports whether Frame changed.
func (s *Scene) Render() (bool, error) {
	if !s.Player.Moved {
		return false, nil
	}
	if err := s.Caster.Render(s.Player.Camera, s.Map, s.Frame); err != nil {
		return false, err
	}
	s.Player.Moved = false
	return true, nil
}
