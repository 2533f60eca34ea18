package game

import (
	"github.com/vovakirdan/pressure-zone/internal/config"
	"github.com/vovakirdan/pressure-zone/internal/core"
)

// Player is the vertical body the user keeps inside the barrier gaps.
// X is only the horizontal home position used for drawing.
type Player struct {
	X      float64
	Y      float64
	VY     float64 // pixels per second, negative = up
	Radius float64

	physics config.Physics
}

// NewPlayer creates a player body using the given physics.
func NewPlayer(p config.Physics) *Player {
	return &Player{Radius: p.PlayerRadius, physics: p}
}

// Reset places the body at (x, y) at rest.
func (p *Player) Reset(x, y float64) {
	p.X = x
	p.Y = y
	p.VY = 0
}

// ApplyImpulse adds the upward rise impulse to the velocity instantly.
func (p *Player) ApplyImpulse() {
	p.VY += p.physics.RiseImpulse
}

// Integrate advances the body by dt seconds under gravity.
func (p *Player) Integrate(dt float64) {
	p.VY += p.physics.Gravity * dt
	p.VY = core.ClampF(p.VY, p.physics.MaxRiseSpeed, p.physics.MaxFallSpeed)
	p.Y += p.VY * dt
}

// OutOfBounds reports whether any part of the body left [0, h].
func (p *Player) OutOfBounds(h float64) bool {
	return p.Y-p.Radius < 0 || p.Y+p.Radius > h
}
