package brickpong

import (
	"math"

	"github.com/vovakirdan/brickpong/internal/core"
)

// Side identifies a paddle and the player behind it.
type Side uint8

const (
	Human    Side = iota // Left paddle, driven by the host
	Computer             // Right paddle, driven by the AI
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case Human:
		return "human"
	case Computer:
		return "computer"
	default:
		return "unknown"
	}
}

// Valid reports whether s names a paddle.
func (s Side) Valid() bool {
	return s == Human || s == Computer
}

// away returns the horizontal direction pointing from this paddle into the field.
func (s Side) away() float64 {
	if s == Human {
		return 1
	}
	return -1
}

// Ball is a moving circle. Position is the center.
type Ball struct {
	CX, CY float64
	DX, DY float64 // Velocity per tick
	Radius float64
}

// Bounds returns the ball's bounding square.
func (b *Ball) Bounds() core.Rect {
	return core.CircleBounds(b.CX, b.CY, b.Radius)
}

// Move advances the ball by its velocity.
func (b *Ball) Move() {
	b.CX += b.DX
	b.CY += b.DY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.DX = -b.DX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.DY = -b.DY
}

// Speed returns the velocity magnitude.
func (b *Ball) Speed() float64 {
	return math.Hypot(b.DX, b.DY)
}

// Paddle is one player's bat.
type Paddle struct {
	Side     Side
	Rect     core.Rect
	Score    int
	Cooldown int // Ticks left on the post-hit glow
}

// Glowing reports whether the paddle was hit recently.
func (p *Paddle) Glowing() bool {
	return p.Cooldown > 0
}

func (p *Paddle) tickCooldown() {
	if p.Cooldown > 0 {
		p.Cooldown--
	}
}

// Brick is a destructible obstacle.
type Brick struct {
	Rect   core.Rect
	Health int
	Color  core.Color
}
