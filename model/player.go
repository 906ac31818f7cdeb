package model

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"raycaster/vmath"
)

const (
	// runModifier scales move and turn speed while the run key is held
	runModifier = 2.0

	// maxStep keeps a single move below one cell per axis so the
	// destination-cell collision check cannot skip over a wall
	maxStep = 0.95
)

// Collider resolves a proposed move against the world.
type Collider interface {
	ResolveCollisions(old, new vmath.Vector2) vmath.Vector2
}

// Intent is the set of movement keys held during one tick.
type Intent struct {
	Forward     bool
	Backward    bool
	StrafeLeft  bool
	StrafeRight bool
	TurnLeft    bool
	TurnRight   bool
	Run         bool
}

// Player drives a Camera from input intents.
type Player struct {
	Camera      *Camera
	MoveSpeed   float64
	RotateSpeed float64

	// Moved is set whenever the camera changed; the host resets it after
	// redrawing.
	Moved bool
}

func NewPlayer(cam *Camera, moveSpeed, rotateSpeed float64) *Player {
	return &Player{
		Camera:      cam,
		MoveSpeed:   moveSpeed,
		RotateSpeed: rotateSpeed,
		Moved:       true,
	}
}

// Update applies one tick of input. Rotation is applied before translation so
// the move uses the new heading.
func (p *Player) Update(world Collider, in Intent) bool {
	modifier := 1.0
	if in.Run {
		modifier = runModifier
	}

	if in.TurnLeft {
		p.rotate(-modifier)
	}
	if in.TurnRight {
		p.rotate(modifier)
	}

	speed := p.MoveSpeed * modifier
	dir := p.Camera.Dir()
	right := dir.Rotate(math.Pi / 2)

	var offs vmath.Vector2
	if in.Forward {
		offs.AddInPlace(dir.Scale(speed))
	}
	if in.Backward {
		offs.AddInPlace(dir.Scale(-speed))
	}
	if in.StrafeLeft {
		offs.AddInPlace(right.Scale(-speed))
	}
	if in.StrafeRight {
		offs.AddInPlace(right.Scale(speed))
	}

	if offs.LenSq() > 0 {
		p.move(world, offs)
	}

	return p.Moved
}

// rotate player heading by rotation speed
func (p *Player) rotate(rModifier float64) {
	p.Camera.Rotate(p.RotateSpeed * rModifier)
	p.Moved = true
}

func (p *Player) move(world Collider, offs vmath.Vector2) {
	offs.X = geom.Clamp(offs.X, -maxStep, maxStep)
	offs.Y = geom.Clamp(offs.Y, -maxStep, maxStep)

	old := p.Camera.Pos()
	newPos := world.ResolveCollisions(old, old.Add(offs))
	if newPos != old {
		p.Camera.SetPos(newPos)
		p.Moved = true
	}
}
