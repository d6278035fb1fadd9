package brickpong

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/brickpong/internal/core"
)

// SnapshotVersion is the current snapshot format.
const SnapshotVersion = 1

// ErrMalformedSnapshot is returned when a snapshot cannot be decoded or
// describes an impossible game.
var ErrMalformedSnapshot = errors.New("brickpong: malformed snapshot")

// PaddleRecord is a paddle's persisted state.
type PaddleRecord struct {
	_msgpack struct{} `msgpack:",as_array"`

	Left  float64
	Top   float64
	Score int
}

// BallRecord is a ball's persisted state.
type BallRecord struct {
	_msgpack struct{} `msgpack:",as_array"`

	CX, CY float64
	DX, DY float64
}

// BrickRecord is a brick's persisted state.
type BrickRecord struct {
	_msgpack struct{} `msgpack:",as_array"`

	Left, Top, Right, Bottom float64
	Color                    core.Color
}

// Snapshot contains the complete game state needed to resume play.
// It encodes as a positional msgpack array in field order.
type Snapshot struct {
	_msgpack struct{} `msgpack:",as_array"`

	Version    uint8
	Human      PaddleRecord
	Computer   PaddleRecord
	BallCount  int
	Balls      []BallRecord
	BrickCount int
	Bricks     []BrickRecord
	State      State
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Version:    SnapshotVersion,
		Human:      paddleRecord(&g.paddles[Human]),
		Computer:   paddleRecord(&g.paddles[Computer]),
		BallCount:  len(g.balls),
		Balls:      make([]BallRecord, len(g.balls)),
		BrickCount: len(g.bricks),
		Bricks:     make([]BrickRecord, len(g.bricks)),
		State:      g.state,
	}
	for i, b := range g.balls {
		snap.Balls[i] = BallRecord{CX: b.CX, CY: b.CY, DX: b.DX, DY: b.DY}
	}
	for i, br := range g.bricks {
		snap.Bricks[i] = BrickRecord{
			Left:   br.Rect.Left,
			Top:    br.Rect.Top,
			Right:  br.Rect.Right,
			Bottom: br.Rect.Bottom,
			Color:  br.Color,
		}
	}
	return snap
}

func paddleRecord(p *Paddle) PaddleRecord {
	return PaddleRecord{Left: p.Rect.Left, Top: p.Rect.Top, Score: p.Score}
}

// ApplySnapshot replaces the game state with snap. The snapshot is fully
// validated first; on error the game is left untouched. Round setup is not
// re-run, so the restored positions are kept exactly.
func (g *Game) ApplySnapshot(snap Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	g.paddles[Human].Rect = g.paddles[Human].Rect.MoveTo(snap.Human.Left, snap.Human.Top)
	g.paddles[Human].Score = snap.Human.Score
	g.paddles[Human].Cooldown = 0
	g.paddles[Computer].Rect = g.paddles[Computer].Rect.MoveTo(snap.Computer.Left, snap.Computer.Top)
	g.paddles[Computer].Score = snap.Computer.Score
	g.paddles[Computer].Cooldown = 0

	g.balls = make([]Ball, len(snap.Balls))
	for i, r := range snap.Balls {
		g.balls[i] = Ball{CX: r.CX, CY: r.CY, DX: r.DX, DY: r.DY, Radius: g.cfg.Ball.Radius}
	}

	g.bricks = make([]Brick, len(snap.Bricks))
	for i, r := range snap.Bricks {
		g.bricks[i] = Brick{
			Rect:   core.Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom},
			Health: 1,
			Color:  r.Color,
		}
	}

	g.state = snap.State
	if g.state == StatePaused {
		g.setStatus(StatusEvent{Key: StatusPause, Visible: true})
	} else {
		g.setStatus(StatusEvent{})
	}
	g.noteScore()
	g.logger.Debug("snapshot applied", "state", g.state, "balls", len(g.balls), "bricks", len(g.bricks))
	return nil
}

// Validate checks that the snapshot describes a playable game.
func (snap *Snapshot) Validate() error {
	if snap.Version != SnapshotVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrMalformedSnapshot, snap.Version)
	}
	if !snap.State.Valid() {
		return fmt.Errorf("%w: unknown state code %d", ErrMalformedSnapshot, snap.State)
	}

	for _, p := range [...]struct {
		side Side
		rec  PaddleRecord
	}{{Human, snap.Human}, {Computer, snap.Computer}} {
		if !core.Finite(p.rec.Left, p.rec.Top) {
			return fmt.Errorf("%w: %s paddle position is not finite", ErrMalformedSnapshot, p.side)
		}
		if p.rec.Score < 0 {
			return fmt.Errorf("%w: %s score %d is negative", ErrMalformedSnapshot, p.side, p.rec.Score)
		}
	}

	if snap.BallCount != len(snap.Balls) {
		return fmt.Errorf("%w: ball count %d does not match %d records", ErrMalformedSnapshot, snap.BallCount, len(snap.Balls))
	}
	if snap.BallCount < 1 {
		return fmt.Errorf("%w: no balls", ErrMalformedSnapshot)
	}
	for i, b := range snap.Balls {
		if !core.Finite(b.CX, b.CY, b.DX, b.DY) {
			return fmt.Errorf("%w: ball %d is not finite", ErrMalformedSnapshot, i)
		}
	}

	if snap.BrickCount != len(snap.Bricks) {
		return fmt.Errorf("%w: brick count %d does not match %d records", ErrMalformedSnapshot, snap.BrickCount, len(snap.Bricks))
	}
	for i, br := range snap.Bricks {
		r := core.Rect{Left: br.Left, Top: br.Top, Right: br.Right, Bottom: br.Bottom}
		if !r.Valid() {
			return fmt.Errorf("%w: brick %d has invalid bounds %v", ErrMalformedSnapshot, i, r)
		}
		if !br.Color.Valid() {
			return fmt.Errorf("%w: brick %d has unknown color %d", ErrMalformedSnapshot, i, br.Color)
		}
	}
	return nil
}

// EncodeSnapshot serializes a snapshot.
func EncodeSnapshot(snap Snapshot) ([]byte, error) {
	data, err := msgpack.Marshal(&snap)
	if err != nil {
		return nil, fmt.Errorf("brickpong: encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses and validates a serialized snapshot.
// Every failure wraps ErrMalformedSnapshot.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if len(data) == 0 {
		return snap, fmt.Errorf("%w: empty blob", ErrMalformedSnapshot)
	}

	r := bytes.NewReader(data)
	if err := msgpack.NewDecoder(r).Decode(&snap); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	if r.Len() != 0 {
		return Snapshot{}, fmt.Errorf("%w: %d trailing bytes", ErrMalformedSnapshot, r.Len())
	}
	if err := snap.Validate(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Version)
	mix := func(v float64) {
		h = h*31 + math.Float64bits(v)
	}
	mixInt := func(v int) {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	mix(snap.Human.Left)
	mix(snap.Human.Top)
	mixInt(snap.Human.Score)
	mix(snap.Computer.Left)
	mix(snap.Computer.Top)
	mixInt(snap.Computer.Score)

	mixInt(snap.BallCount)
	for _, b := range snap.Balls {
		mix(b.CX)
		mix(b.CY)
		mix(b.DX)
		mix(b.DY)
	}

	mixInt(snap.BrickCount)
	for _, br := range snap.Bricks {
		mix(br.Left)
		mix(br.Top)
		mix(br.Right)
		mix(br.Bottom)
		mixInt(int(br.Color))
	}

	mixInt(int(snap.State))
	return h
}
