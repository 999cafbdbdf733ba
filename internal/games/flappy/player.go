package flappy

import (
	"github.com/vovakirdan/flappy-bee/internal/config"
	"github.com/vovakirdan/flappy-bee/internal/core"
)

// Player is the bee. Its collision circle is always centered on its position.
type Player struct {
	x, y float64
	vy   float64 // Vertical velocity in px/s, positive is up

	radius        float64
	gravity       float64
	flyVelocity   float64
	frameDuration float64
	frames        int
	animTimer     float64
}

// NewPlayer creates a player at the origin with zero velocity.
func NewPlayer(cfg config.Player) *Player {
	return &Player{
		radius:        cfg.Radius,
		gravity:       cfg.Gravity,
		flyVelocity:   cfg.FlyVelocity,
		frameDuration: cfg.FrameDuration,
		frames:        cfg.Frames,
	}
}

// SetPosition moves the player; the collision circle follows.
func (p *Player) SetPosition(x, y float64) {
	p.x = x
	p.y = y
}

// Position returns the current position.
func (p *Player) Position() core.Vec {
	return core.Vec{X: p.x, Y: p.y}
}

// Velocity returns the vertical velocity in px/s.
func (p *Player) Velocity() float64 {
	return p.vy
}

// Update applies one step of gravity and moves the player by its velocity.
func (p *Player) Update(dt float64) {
	p.animTimer += dt
	p.vy -= p.gravity * dt
	p.SetPosition(p.x, p.y+p.vy*dt)
}

// FlyUp replaces the vertical velocity with the fly impulse and moves immediately.
// Holding the input caps the climb rate rather than accumulating it.
func (p *Player) FlyUp(dt float64) {
	p.vy = p.flyVelocity
	p.SetPosition(p.x, p.y+p.vy*dt)
}

// CollisionCircle returns the collision shape at the current position.
func (p *Player) CollisionCircle() core.Circle {
	return core.NewCircle(p.x, p.y, p.radius)
}

// Frame returns the looping animation frame index.
func (p *Player) Frame() int {
	if p.frames <= 1 || p.frameDuration <= 0 {
		return 0
	}
	return int(p.animTimer/p.frameDuration) % p.frames
}
