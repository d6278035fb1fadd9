package brickpong

import (
	"math"

	"github.com/vovakirdan/brickpong/internal/core"
)

// paddleHit returns the first paddle, human before computer, whose bounds
// overlap the ball's bounding square.
func (g *Game) paddleHit(b *Ball) (*Paddle, bool) {
	for _, side := range [...]Side{Human, Computer} {
		p := &g.paddles[side]
		if core.RectIntersectsCircle(p.Rect, b.CX, b.CY, b.Radius) {
			return p, true
		}
	}
	return nil, false
}

// bounceOffPaddle sends the ball back at an angle set by where it struck:
// the center returns it straight, the edges up to the max bounce angle.
// The ball is moved flush against the paddle face.
func (g *Game) bounceOffPaddle(b *Ball, p *Paddle) {
	half := p.Rect.Height() / 2
	offset := core.ClampF((p.Rect.Top+half-b.CY)/half, -1, 1)
	theta := offset * g.maxBounce

	dir := -core.Sign(b.DX)
	if dir == 0 {
		dir = p.Side.away()
	}
	b.DX = dir * g.speed * math.Cos(theta)
	b.DY = -g.speed * math.Sin(theta)

	if p.Side == Human {
		b.CX = p.Rect.Right + b.Radius
	} else {
		b.CX = p.Rect.Left - b.Radius
	}
	p.Cooldown = g.cfg.Physics.CollisionFrames
}

// bounceOffWalls inverts dy when the ball is at the top or bottom wall and
// still heading into it. Checking direction keeps the flip to once per contact.
func (g *Game) bounceOffWalls(b *Ball) bool {
	atTop := b.CY <= b.Radius && b.DY < 0
	atBottom := b.CY+b.Radius >= g.height-1 && b.DY > 0
	if atTop || atBottom {
		b.BounceY()
		return true
	}
	return false
}

// scorer returns the side that scores when the ball reaches a side wall:
// the right wall is the human's point, the left wall the computer's.
func (g *Game) scorer(b *Ball) (Side, bool) {
	switch {
	case b.CX+b.Radius >= g.width-1:
		return Human, true
	case b.CX <= b.Radius:
		return Computer, true
	default:
		return 0, false
	}
}

// cornerHit records the first brick corner of one kind touched in a scan.
type cornerHit struct {
	hit  bool
	x, y float64
}

// brickScan is the result of classifying one ball against every brick.
type brickScan struct {
	edge    core.HitKind // First edge hit; HitNone if only corners were touched
	corners [4]cornerHit // Indexed by kind - HitTopLeft
	hits    []int        // Indices of every brick touched, in scan order
}

// scanBricks classifies the ball against the bricks in order. The first edge
// hit ends the scan. Corner hits accumulate, keeping the earliest brick's
// corner point per kind.
func scanBricks(bricks []Brick, b *Ball) brickScan {
	var s brickScan
	for i := range bricks {
		kind := core.CircleRectHitKind(bricks[i].Rect, b.CX, b.CY, b.Radius)
		if kind == core.HitNone {
			continue
		}
		s.hits = append(s.hits, i)
		if kind.IsEdge() {
			s.edge = kind
			return s
		}
		c := &s.corners[kind-core.HitTopLeft]
		if !c.hit {
			c.hit = true
			c.x, c.y, _ = kind.Corner(bricks[i].Rect)
		}
	}
	return s
}

// cornerKinds returns the distinct corner kinds hit, in kind order.
func (s *brickScan) cornerKinds() []core.HitKind {
	var kinds []core.HitKind
	for i, c := range s.corners {
		if c.hit {
			kinds = append(kinds, core.HitTopLeft+core.HitKind(i))
		}
	}
	return kinds
}

func (s *brickScan) corner(k core.HitKind) cornerHit {
	return s.corners[k-core.HitTopLeft]
}

func topCorner(k core.HitKind) bool {
	return k == core.HitTopLeft || k == core.HitTopRight
}

func leftCorner(k core.HitKind) bool {
	return k == core.HitTopLeft || k == core.HitBottomLeft
}

// deflect applies the velocity change for a scan.
func deflect(b *Ball, s *brickScan) {
	if s.edge != core.HitNone {
		if s.edge.Vertical() {
			b.BounceY()
		} else {
			b.BounceX()
		}
		return
	}

	kinds := s.cornerKinds()
	switch len(kinds) {
	case 0:
	case 1:
		c := s.corner(kinds[0])
		reflectOffCorner(b, c.x, c.y)
	case 2:
		a, c := kinds[0], kinds[1]
		switch {
		case topCorner(a) == topCorner(c):
			b.BounceY()
		case leftCorner(a) == leftCorner(c):
			b.BounceX()
		default:
			b.BounceX()
			b.BounceY()
		}
	default:
		// Three or four corners: the ball sits in a pocket.
		b.BounceX()
		b.BounceY()
	}
}

// reflectOffCorner reflects the velocity about the normal running from the
// corner point (x, y) to the ball center.
func reflectOffCorner(b *Ball, x, y float64) {
	nx, ny := b.CX-x, b.CY-y
	lenSq := nx*nx + ny*ny
	if lenSq == 0 {
		assertf(false, "ball center on brick corner (%v, %v)", x, y)
		b.BounceX()
		b.BounceY()
		return
	}
	c := -2 * (b.DX*nx + b.DY*ny) / lenSq
	b.DX += c * nx
	b.DY += c * ny
}

// resolveBricks scans, damages every touched brick, drops destroyed ones and
// deflects the ball. It returns the number of bricks touched.
func (g *Game) resolveBricks(b *Ball) int {
	scan := scanBricks(g.bricks, b)
	if len(scan.hits) == 0 {
		return 0
	}

	for _, i := range scan.hits {
		g.bricks[i].Health--
	}
	kept := g.bricks[:0]
	for _, br := range g.bricks {
		if br.Health > 0 {
			kept = append(kept, br)
		}
	}
	g.bricks = kept

	deflect(b, &scan)
	return len(scan.hits)
}
