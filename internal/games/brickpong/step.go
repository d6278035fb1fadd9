package brickpong

import (
	"github.com/vovakirdan/brickpong/internal/core"
)

// Step advances the simulation by one tick. It does nothing unless the game
// is running on a sized playfield.
//
// Per ball: a paddle hit wins over walls; otherwise the top and bottom walls
// bounce, and the right then left walls score. Bricks are resolved either way,
// then the AI paddle may move and the ball is integrated. A point scored by
// the last ball ends the round and the rest of the tick is skipped.
func (g *Game) Step() {
	if g.state != StateRunning || !g.sized {
		return
	}
	defer g.noteScore()
	g.ticks++

	g.paddles[Human].tickCooldown()
	g.paddles[Computer].tickCooldown()

	n := len(g.balls)
	var gone []int
	var spawned []Ball

	for i := 0; i < n; i++ {
		b := &g.balls[i]

		if p, hit := g.paddleHit(b); hit {
			g.bounceOffPaddle(b, p)
			if extra, ok := g.spawnBall(p.Side, n-len(gone)+len(spawned)); ok {
				spawned = append(spawned, extra)
			}
		} else if !g.bounceOffWalls(b) {
			if side, scored := g.scorer(b); scored {
				g.paddles[side].Score++
				g.logger.Debug("point", "side", side, "human", g.paddles[Human].Score, "computer", g.paddles[Computer].Score)
				if n-len(gone)+len(spawned) > 1 {
					gone = append(gone, i)
					continue
				}
				g.setState(StateEnded)
				return
			}
		}

		g.resolveBricks(b)
		g.moveAI()
		g.integrate(b)
	}

	if len(gone) > 0 {
		g.balls = removeBalls(g.balls, gone)
	}
	g.balls = append(g.balls, spawned...)
}

// spawnBall returns a new ball served from the center away from the paddle
// that was just hit, when multi-ball is on and there is room for one more.
func (g *Game) spawnBall(from Side, active int) (Ball, bool) {
	if !g.cfg.Gameplay.MultiBall || active >= g.cfg.Gameplay.MaxBalls {
		return Ball{}, false
	}
	return Ball{
		CX:     g.width / 2,
		CY:     g.height / 2,
		DX:     from.away() * g.speed,
		Radius: g.cfg.Ball.Radius,
	}, true
}

// moveAI nudges the computer paddle toward the primary ball, but only some
// of the time.
func (g *Game) moveAI() {
	if len(g.balls) == 0 || g.rng.Float64() >= g.aiProbability {
		return
	}
	target := g.balls[0].CY
	p := &g.paddles[Computer]
	step := g.cfg.Physics.PaddleSpeed * g.cfg.AI.SpeedFactor

	switch {
	case p.Rect.Top > target:
		g.movePaddle(Computer, -step)
	case p.Rect.Bottom < target:
		g.movePaddle(Computer, step)
	}
}

// integrate moves the ball and keeps it vertically inside the playfield.
// Horizontal position is left alone; the side walls score instead.
func (g *Game) integrate(b *Ball) {
	b.Move()
	b.CY = core.ClampF(b.CY, b.Radius, g.height-b.Radius-1)

	if !core.Finite(b.CX, b.CY, b.DX, b.DY) {
		assertf(false, "ball state not finite: %+v", *b)
		*b = g.serveBall()
	}
}

// removeBalls drops the balls at the given ascending indices.
func removeBalls(balls []Ball, gone []int) []Ball {
	kept := balls[:0]
	j := 0
	for i, b := range balls {
		if j < len(gone) && gone[j] == i {
			j++
			continue
		}
		kept = append(kept, b)
	}
	return kept
}
