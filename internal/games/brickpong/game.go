// Package brickpong implements a Pong and Breakout hybrid: two paddles, a
// ball, and a field of bricks radiating from the center.
//
// Game is the pure, single-threaded simulation. Simulation wraps it with the
// lock and event delivery a host needs, and Runner drives it at a fixed rate.
package brickpong

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickpong/internal/config"
	"github.com/vovakirdan/brickpong/internal/core"
)

// Option configures a Game or Simulation.
type Option func(*options)

type options struct {
	rng      core.RandSource
	logger   *log.Logger
	listener Listener
}

// WithRand injects the random source used for AI imperfection and brick layout.
func WithRand(r core.RandSource) Option {
	return func(o *options) { o.rng = r }
}

// WithLogger sets the logger for state transitions and round outcomes.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithListener sets the listener that receives status and score events.
// Only Simulation delivers events.
func WithListener(l Listener) Option {
	return func(o *options) { o.listener = l }
}

func buildOptions(seed int64, opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = core.NewRand(seed)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	return o
}

// Game is the BrickPong simulation state. It is not safe for concurrent use.
type Game struct {
	cfg        config.BrickPongConfig
	rng        core.RandSource
	logger     *log.Logger
	difficulty *config.DifficultyManager

	width, height float64
	sized         bool

	state   State
	paddles [2]Paddle
	balls   []Ball
	bricks  []Brick

	speed         float64 // Serve and rebound speed for the current round
	aiProbability float64 // Computer move chance for the current round
	maxBounce     float64 // Radians

	rounds int // Completed rounds
	ticks  int // Ticks simulated while running

	status    StatusEvent
	lastScore string
	events    []Event
}

// New creates a game in the Ready state with its first round prepared.
// A zero playfield size leaves the game unsized until Resize is called.
func New(cfg config.BrickPongConfig, rt core.RuntimeConfig, opts ...Option) *Game {
	o := buildOptions(rt.Seed, opts)
	g := &Game{
		cfg:        cfg,
		rng:        o.rng,
		logger:     o.logger,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		maxBounce:  cfg.Physics.MaxBounceAngle * math.Pi / 180,
	}
	assertf(cfg.Ball.Radius > 0, "ball radius %v must be positive", cfg.Ball.Radius)

	g.paddles[Human] = Paddle{Side: Human, Rect: core.RectFromSize(0, 0, cfg.Paddle.Width, cfg.Paddle.Height)}
	g.paddles[Computer] = Paddle{Side: Computer, Rect: core.RectFromSize(0, 0, cfg.Paddle.Width, cfg.Paddle.Height)}

	g.applySize(rt.Width, rt.Height)
	g.setState(StateReady)
	g.lastScore = ScoreText(0, 0)
	g.events = nil
	return g
}

// State returns the current game state.
func (g *Game) State() State {
	return g.state
}

// Size returns the playfield dimensions. An unsized game reports 1x1.
func (g *Game) Size() (width, height float64) {
	return g.width, g.height
}

// Sized reports whether a real playfield size has been supplied.
func (g *Game) Sized() bool {
	return g.sized
}

// Paddle returns a copy of the paddle for side.
func (g *Game) Paddle(side Side) Paddle {
	return g.paddles[side]
}

// Balls returns a copy of the active balls.
func (g *Game) Balls() []Ball {
	return append([]Ball(nil), g.balls...)
}

// Bricks returns a copy of the remaining bricks.
func (g *Game) Bricks() []Brick {
	return append([]Brick(nil), g.bricks...)
}

// Rounds returns the number of completed rounds.
func (g *Game) Rounds() int {
	return g.rounds
}

// Speed returns the current serve and rebound speed.
func (g *Game) Speed() float64 {
	return g.speed
}

// Resize sets the playfield size and sets up a fresh round.
// Non-positive dimensions are treated as 1x1 and leave the game unsized.
func (g *Game) Resize(width, height float64) {
	g.applySize(width, height)
	g.setupRound()
	g.logger.Debug("playfield resized", "width", g.width, "height", g.height, "sized", g.sized)
}

func (g *Game) applySize(width, height float64) {
	if width <= 0 || height <= 0 || !core.Finite(width, height) {
		g.width, g.height, g.sized = 1, 1, false
		return
	}
	g.width, g.height, g.sized = width, height, true
}

// MovePaddle moves a paddle vertically by dy, keeping it inside the playfield.
func (g *Game) MovePaddle(side Side, dy float64) {
	if !side.Valid() || !core.Finite(dy) {
		return
	}
	g.movePaddle(side, dy)
}

func (g *Game) movePaddle(side Side, dy float64) {
	p := &g.paddles[side]
	m := g.cfg.Paddle.Margin
	left := core.ClampF(p.Rect.Left, m, g.width-p.Rect.Width()-m)
	top := core.ClampF(p.Rect.Top+dy, 0, g.height-p.Rect.Height()-1)
	p.Rect = p.Rect.MoveTo(left, top)
}

// setupRound recenters the paddles, serves a single ball and lays out fresh bricks.
func (g *Game) setupRound() {
	w, h := g.cfg.Paddle.Width, g.cfg.Paddle.Height
	m := g.cfg.Paddle.Margin
	top := (g.height - h) / 2

	g.paddles[Human].Rect = core.RectFromSize(m, top, w, h)
	g.paddles[Computer].Rect = core.RectFromSize(g.width-w-m, top, w, h)
	g.paddles[Human].Cooldown = 0
	g.paddles[Computer].Cooldown = 0

	g.speed = g.difficulty.BallSpeed(g.cfg.Physics.BallSpeed, g.rounds, g.ticks)
	g.aiProbability = g.difficulty.AIProbability(g.cfg.AI.MoveProbability, g.rounds, g.ticks)

	g.balls = []Ball{g.serveBall()}
	g.bricks = g.layoutBricks()
}

// serveBall returns a ball at one-eighth of the width, vertically centered,
// heading toward the human paddle.
func (g *Game) serveBall() Ball {
	return Ball{
		CX:     g.width / 8,
		CY:     g.height / 2,
		DX:     -g.speed,
		Radius: g.cfg.Ball.Radius,
	}
}

// scoreText formats the current scores.
func (g *Game) scoreText() string {
	return ScoreText(g.paddles[Human].Score, g.paddles[Computer].Score)
}

// noteScore queues a score event if the score text changed.
func (g *Game) noteScore() {
	text := g.scoreText()
	if text == g.lastScore {
		return
	}
	g.lastScore = text
	g.emit(ScoreEvent{
		Text:     text,
		Human:    g.paddles[Human].Score,
		Computer: g.paddles[Computer].Score,
	})
}

func (g *Game) emit(ev Event) {
	g.events = append(g.events, ev)
}

// DrainEvents returns and clears the events queued since the last drain.
func (g *Game) DrainEvents() []Event {
	evs := g.events
	g.events = nil
	return evs
}
