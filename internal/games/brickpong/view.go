package brickpong

import "github.com/vovakirdan/brickpong/internal/core"

// PaddleView is the drawable part of a paddle.
type PaddleView struct {
	Side    Side
	Rect    core.Rect
	Score   int
	Glowing bool
}

// BallView is the drawable part of a ball.
type BallView struct {
	CX, CY, Radius float64
}

// BrickView is the drawable part of a brick.
type BrickView struct {
	Rect  core.Rect
	Color core.Color
}

// View is a read-only copy of everything a host draws for one frame.
type View struct {
	Width, Height float64
	Sized         bool
	State         State
	Paddles       [2]PaddleView
	Balls         []BallView
	Bricks        []BrickView
	Score         string
	Status        StatusEvent
	Tick          int
}

// View copies the drawable state.
func (g *Game) View() View {
	v := View{
		Width:  g.width,
		Height: g.height,
		Sized:  g.sized,
		State:  g.state,
		Score:  g.scoreText(),
		Status: g.status,
		Tick:   g.ticks,
		Balls:  make([]BallView, len(g.balls)),
		Bricks: make([]BrickView, len(g.bricks)),
	}
	for side, p := range g.paddles {
		v.Paddles[side] = PaddleView{Side: p.Side, Rect: p.Rect, Score: p.Score, Glowing: p.Glowing()}
	}
	for i, b := range g.balls {
		v.Balls[i] = BallView{CX: b.CX, CY: b.CY, Radius: b.Radius}
	}
	for i, br := range g.bricks {
		v.Bricks[i] = BrickView{Rect: br.Rect, Color: br.Color}
	}
	return v
}
