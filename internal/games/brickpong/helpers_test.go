package brickpong

import (
	"math"

	"github.com/vovakirdan/brickpong/internal/config"
	"github.com/vovakirdan/brickpong/internal/core"
)

// aiNever fails every probability roll, so the computer paddle stays put.
var aiNever = core.FixedRand(0.999)

// testConfig returns the defaults with bricks off, for tests that place
// their own bricks.
func testConfig() config.BrickPongConfig {
	cfg := config.DefaultBrickPongConfig()
	cfg.Bricks.Enabled = false
	return cfg
}

// newTestGame creates an 800x600 game.
func newTestGame(cfg config.BrickPongConfig, r core.RandSource) *Game {
	return New(cfg, core.RuntimeConfig{Width: 800, Height: 600}, WithRand(r))
}

// runningGame creates an 800x600 running game without bricks and with one
// ball at the given position and velocity.
func runningGame(cx, cy, dx, dy float64) *Game {
	g := newTestGame(testConfig(), aiNever)
	g.Resume()
	g.balls = []Ball{{CX: cx, CY: cy, DX: dx, DY: dy, Radius: 15}}
	g.DrainEvents()
	return g
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
