package brickpong

import (
	"math"
	"testing"

	"pgregory.net/rapid"

	"github.com/vovakirdan/brickpong/internal/core"
)

func TestPropertyFreeBallTranslates(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cx := rapid.Float64Range(100, 700).Draw(t, "cx")
		cy := rapid.Float64Range(50, 550).Draw(t, "cy")
		dx := rapid.Float64Range(-10, 10).Draw(t, "dx")
		dy := rapid.Float64Range(-10, 10).Draw(t, "dy")

		g := runningGame(cx, cy, dx, dy)
		g.Step()

		b := g.balls[0]
		if b.CX != cx+dx || b.CY != cy+dy || b.DX != dx || b.DY != dy {
			t.Fatalf("ball = %+v, expected (%v, %v) moving (%v, %v)", b, cx+dx, cy+dy, dx, dy)
		}
	})
}

func TestPropertyPaddleAngleMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		y1 := rapid.Float64Range(190, 410).Draw(t, "y1")
		y2 := rapid.Float64Range(y1, 410).Draw(t, "y2")

		g := newTestGame(testConfig(), aiNever)
		p := &g.paddles[Human]

		a := Ball{CX: 60, CY: y1, DX: -20, Radius: 15}
		b := Ball{CX: 60, CY: y2, DX: -20, Radius: 15}
		g.bounceOffPaddle(&a, p)
		g.bounceOffPaddle(&b, p)

		if a.DY > b.DY {
			t.Fatalf("strike at %v gave dy %v, lower strike at %v gave %v", y1, a.DY, y2, b.DY)
		}
		if a.DX <= 0 || b.DX <= 0 {
			t.Fatalf("human paddle should send the ball right, got %v and %v", a.DX, b.DX)
		}
		if !near(a.Speed(), g.speed) || !near(b.Speed(), g.speed) {
			t.Fatalf("speeds %v and %v, expected %v", a.Speed(), b.Speed(), g.speed)
		}
	})
}

func TestPropertyBrickRemovalMonotone(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64().Draw(t, "seed")
		cx := rapid.Float64Range(200, 600).Draw(t, "cx")
		cy := rapid.Float64Range(100, 500).Draw(t, "cy")

		g := New(bricksConfig(), core.RuntimeConfig{Width: 800, Height: 600, Seed: seed})
		before := len(g.bricks)
		b := Ball{CX: cx, CY: cy, DX: 3, DY: 4, Radius: 15}

		hits := g.resolveBricks(&b)
		after := len(g.bricks)

		if after > before || before-after != hits {
			t.Fatalf("bricks %d -> %d with %d hits", before, after, hits)
		}
		if !near(b.Speed(), 5) {
			t.Fatalf("deflection changed speed to %v", b.Speed())
		}
	})
}

func TestPropertySnapshotRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64().Draw(t, "seed")
		ticks := rapid.IntRange(0, 300).Draw(t, "ticks")

		g := New(bricksConfig(), core.RuntimeConfig{Width: 800, Height: 600, Seed: seed})
		g.Resume()
		for i := 0; i < ticks; i++ {
			g.Step()
		}
		snap := g.Snapshot()

		data, err := EncodeSnapshot(snap)
		if err != nil {
			t.Fatalf("EncodeSnapshot() error = %v", err)
		}
		decoded, err := DecodeSnapshot(data)
		if err != nil {
			t.Fatalf("DecodeSnapshot() error = %v", err)
		}
		if decoded.Hash() != snap.Hash() {
			t.Fatalf("hash changed after %d ticks", ticks)
		}
	})
}

func TestPropertyCornerReflectionPreservesSpeed(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		angle := rapid.Float64Range(0, 2*math.Pi).Draw(t, "angle")
		phi := rapid.Float64Range(0, 2*math.Pi).Draw(t, "phi")
		dist := rapid.Float64Range(1, 15).Draw(t, "dist")
		nx, ny := dist*math.Cos(phi), dist*math.Sin(phi)

		b := Ball{CX: 100 + nx, CY: 100 + ny, DX: 20 * math.Cos(angle), DY: 20 * math.Sin(angle), Radius: 15}
		reflectOffCorner(&b, 100, 100)

		if math.Abs(b.Speed()-20) > 1e-9 {
			t.Fatalf("speed after reflection = %v, expected 20", b.Speed())
		}
	})
}
