package brickpong

import (
	"testing"

	"github.com/vovakirdan/brickpong/internal/core"
)

func TestStepPureTranslation(t *testing.T) {
	g := runningGame(400, 300, 7, -3)
	g.Step()

	b := g.balls[0]
	if b.CX != 407 || b.CY != 297 {
		t.Errorf("position = (%v, %v), expected (407, 297)", b.CX, b.CY)
	}
	if b.DX != 7 || b.DY != -3 {
		t.Errorf("velocity = (%v, %v), expected unchanged (7, -3)", b.DX, b.DY)
	}
}

func TestStepLeftWallEndsRound(t *testing.T) {
	g := runningGame(50, 300, -20, 0)
	g.MovePaddle(Human, -1000) // out of the ball's path

	steps := 0
	for g.State() == StateRunning && steps < 10 {
		g.Step()
		steps++
	}

	if steps != 3 {
		t.Errorf("round ended after %d steps, expected 3", steps)
	}
	if g.State() != StateEnded {
		t.Fatalf("State() = %v, expected %v", g.State(), StateEnded)
	}

	st := g.Status()
	if st.Outcome != OutcomeLose || st.Key != StatusLose || !st.Visible {
		t.Errorf("Status() = %+v, expected visible lose", st)
	}
	if st.ComputerScore != 1 || st.HumanScore != 0 {
		t.Errorf("final score = %d-%d, expected 0-1", st.HumanScore, st.ComputerScore)
	}
	if g.paddles[Human].Score != 0 || g.paddles[Computer].Score != 0 {
		t.Error("scores should be zeroed after the round ends")
	}
	if g.Rounds() != 1 {
		t.Errorf("Rounds() = %d, expected 1", g.Rounds())
	}

	// The next round is already prepared.
	if len(g.balls) != 1 || g.balls[0].CX != 100 || g.balls[0].CY != 300 || g.balls[0].DX != -20 {
		t.Errorf("balls after round end = %+v, expected a fresh serve", g.balls)
	}
}

func TestStepEndedSkipsIntegration(t *testing.T) {
	g := runningGame(10, 300, -20, 0)
	g.MovePaddle(Human, -1000)
	g.Step()

	if g.State() != StateEnded {
		t.Fatalf("State() = %v, expected %v", g.State(), StateEnded)
	}
	// Round setup placed the ball; the aborted tick must not have moved it.
	if g.balls[0].CX != 100 {
		t.Errorf("CX = %v, expected 100", g.balls[0].CX)
	}
}

func TestStepMultiBallScoreRemovesBall(t *testing.T) {
	g := runningGame(400, 300, 1, 0)
	g.balls = append(g.balls, Ball{CX: 790, CY: 100, DX: 20, Radius: 15})

	g.Step()

	if g.State() != StateRunning {
		t.Errorf("State() = %v, expected %v", g.State(), StateRunning)
	}
	if g.paddles[Human].Score != 1 {
		t.Errorf("human score = %d, expected 1", g.paddles[Human].Score)
	}
	if len(g.balls) != 1 || g.balls[0].CX != 401 {
		t.Errorf("balls = %+v, expected only the midfield ball", g.balls)
	}
}

func TestStepPaddleHitSetsCooldown(t *testing.T) {
	g := runningGame(60, 300, -20, 0)

	g.Step()
	if g.paddles[Human].Cooldown != 5 {
		t.Errorf("Cooldown after hit = %d, expected 5", g.paddles[Human].Cooldown)
	}
	if g.balls[0].DX != 20 {
		t.Errorf("DX = %v, expected 20", g.balls[0].DX)
	}

	g.Step()
	if g.paddles[Human].Cooldown != 4 {
		t.Errorf("Cooldown one tick later = %d, expected 4", g.paddles[Human].Cooldown)
	}
}

func TestStepPaddleHitSkipsScoring(t *testing.T) {
	// Touching the paddle and the left wall at once is a return, not a point.
	g := runningGame(15, 300, -20, 0)
	g.Step()

	if g.State() != StateRunning {
		t.Errorf("State() = %v, expected %v", g.State(), StateRunning)
	}
	if g.paddles[Computer].Score != 0 {
		t.Errorf("computer score = %d, expected 0", g.paddles[Computer].Score)
	}
}

func TestStepAI(t *testing.T) {
	tests := []struct {
		name    string
		rng     core.RandSource
		ballY   float64
		wantTop float64
	}{
		{"moves up toward ball", core.FixedRand(0), 100, 160},
		{"moves down toward ball", core.FixedRand(0), 500, 240},
		{"holds when ball is level", core.FixedRand(0), 300, 200},
		{"holds when roll fails", aiNever, 100, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := runningGame(400, tt.ballY, 1, 0)
			g.rng = tt.rng
			g.Step()

			if got := g.paddles[Computer].Rect.Top; got != tt.wantTop {
				t.Errorf("computer top = %v, expected %v", got, tt.wantTop)
			}
		})
	}
}

func TestStepClampsVertical(t *testing.T) {
	g := runningGame(400, 20, 0, -10)
	g.Step()

	if g.balls[0].CY != 15 {
		t.Errorf("CY = %v, expected clamp to 15", g.balls[0].CY)
	}
}

func TestStepWallBounceFlipsOncePerCrossing(t *testing.T) {
	g := runningGame(400, 40, 0, -10)

	flips := 0
	prev := g.balls[0].DY
	for range 10 {
		g.Step()
		if dy := g.balls[0].DY; (dy > 0) != (prev > 0) {
			flips++
			prev = dy
		}
	}

	if flips != 1 {
		t.Errorf("dy changed sign %d times, expected 1", flips)
	}
}

func TestStepNoopWhenNotRunning(t *testing.T) {
	g := newTestGame(testConfig(), aiNever)
	before := g.balls[0]

	g.Step()

	if g.balls[0] != before {
		t.Errorf("ball moved in %v state", g.State())
	}
}

func TestStepNoopWhenUnsized(t *testing.T) {
	g := New(testConfig(), core.RuntimeConfig{}, WithRand(aiNever))
	g.Resume()
	before := g.balls[0]

	g.Step()

	if g.balls[0] != before {
		t.Error("ball moved on an unsized playfield")
	}
	if w, h := g.Size(); w != 1 || h != 1 {
		t.Errorf("Size() = %vx%v, expected 1x1", w, h)
	}
}

func TestStepMultiBallSpawn(t *testing.T) {
	cfg := testConfig()
	cfg.Gameplay.MultiBall = true
	cfg.Gameplay.MaxBalls = 2
	g := newTestGame(cfg, aiNever)
	g.Resume()
	g.balls = []Ball{{CX: 60, CY: 300, DX: -20, Radius: 15}}

	g.Step()
	if len(g.balls) != 2 {
		t.Fatalf("balls = %d, expected 2 after a paddle hit", len(g.balls))
	}
	if spawned := g.balls[1]; spawned.CX != 400 || spawned.DX != 20 {
		t.Errorf("spawned ball = %+v, expected center serve toward the computer", spawned)
	}

	// At the cap, further hits do not spawn.
	g.balls[0] = Ball{CX: 60, CY: 300, DX: -20, Radius: 15}
	g.Step()
	if len(g.balls) != 2 {
		t.Errorf("balls = %d, expected cap of 2", len(g.balls))
	}
}

func TestStepNonFiniteVelocityResets(t *testing.T) {
	if debugAssertions {
		t.Skip("debug builds panic on invariant violations")
	}
	g := runningGame(400, 300, 0, 0)
	g.balls[0].DX = g.balls[0].DX / 0 * 0 // NaN

	g.Step()

	if b := g.balls[0]; !core.Finite(b.CX, b.CY, b.DX, b.DY) {
		t.Errorf("ball = %+v, expected a finite serve", b)
	}
}

func TestStepDeterministic(t *testing.T) {
	run := func() uint64 {
		cfg := testConfig()
		cfg.Bricks.Enabled = true
		g := New(cfg, core.RuntimeConfig{Width: 800, Height: 600, Seed: 42})
		g.NewGame()
		for range 600 {
			g.Step()
			if g.State() != StateRunning {
				g.Resume()
			}
		}
		snap := g.Snapshot()
		return snap.Hash()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same seed produced different states: %x vs %x", a, b)
	}
}

func TestRemoveBalls(t *testing.T) {
	balls := []Ball{{CX: 0}, {CX: 1}, {CX: 2}, {CX: 3}}
	got := removeBalls(balls, []int{0, 2})

	if len(got) != 2 || got[0].CX != 1 || got[1].CX != 3 {
		t.Errorf("removeBalls() = %+v, expected balls 1 and 3", got)
	}
}
