package runner

import (
	"github.com/vovakirdan/dash-runner/internal/config"
	"github.com/vovakirdan/dash-runner/internal/core"
)

// PlayerBody is the vertical physics of the player. X never changes;
// Y is the top edge and never goes below groundY.
type PlayerBody struct {
	x, y     float64
	w, h     float64
	groundY  float64
	velocity float64
	airborne bool

	gravity      float64
	jumpImpulse  float64
	maxFallSpeed float64
}

// NewPlayerBody creates a grounded player at rest.
func NewPlayerBody(cfg config.RunnerConfig) *PlayerBody {
	p := &PlayerBody{
		x:            cfg.Player.X,
		w:            cfg.Player.Width,
		h:            cfg.Player.Height,
		groundY:      cfg.World.GroundY,
		gravity:      cfg.Physics.Gravity,
		jumpImpulse:  cfg.Physics.JumpImpulse,
		maxFallSpeed: cfg.Physics.MaxFallSpeed,
	}
	p.Reset()
	return p
}

// Reset puts the player back on the ground at rest.
func (p *PlayerBody) Reset() {
	p.y = p.groundY
	p.velocity = 0
	p.airborne = false
}

// ApplyGravity integrates one fixed tick and lands the player on the ground.
func (p *PlayerBody) ApplyGravity() {
	p.velocity += p.gravity
	if p.maxFallSpeed > 0 && p.velocity > p.maxFallSpeed {
		p.velocity = p.maxFallSpeed
	}
	p.y += p.velocity

	if p.y >= p.groundY {
		p.y = p.groundY
		p.velocity = 0
		p.airborne = false
	}
}

// Jump launches the player if grounded. Returns false when already airborne.
func (p *PlayerBody) Jump() bool {
	if p.airborne {
		return false
	}
	p.velocity = p.jumpImpulse
	p.airborne = true
	return true
}

// Box returns the collision box in world coordinates.
func (p *PlayerBody) Box() core.Box {
	return core.NewBox(p.x, p.y, p.w, p.h)
}

// Y returns the top edge.
func (p *PlayerBody) Y() float64 { return p.y }

// Velocity returns the vertical velocity (negative = rising).
func (p *PlayerBody) Velocity() float64 { return p.velocity }

// Airborne reports whether the player has left the ground.
func (p *PlayerBody) Airborne() bool { return p.airborne }
