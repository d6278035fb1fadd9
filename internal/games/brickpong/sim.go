package brickpong

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickpong/internal/config"
	"github.com/vovakirdan/brickpong/internal/core"
)

// Simulation is the host-facing, concurrency-safe wrapper around Game.
//
// A single mutex guards the tick and every entry point. Events raised while
// the lock is held join one outbox and are delivered outside the lock, in the
// order they were raised, so listeners may call back into the simulation.
// Only one caller delivers at a time; a call that finds a delivery in
// progress leaves its events to that caller and returns.
type Simulation struct {
	mu       sync.Mutex
	game     *Game
	listener Listener
	logger   *log.Logger

	outbox     []Event
	delivering bool
}

// NewSimulation creates a simulation in the Ready state.
func NewSimulation(cfg config.BrickPongConfig, rt core.RuntimeConfig, opts ...Option) *Simulation {
	o := buildOptions(rt.Seed, opts)
	return &Simulation{
		game:     New(cfg, rt, WithRand(o.rng), WithLogger(o.logger)),
		listener: o.listener,
		logger:   o.logger,
	}
}

// do runs fn under the lock, then delivers pending events unless another
// call is already doing so.
func (s *Simulation) do(fn func(g *Game)) {
	s.mu.Lock()
	fn(s.game)
	s.outbox = append(s.outbox, s.game.DrainEvents()...)
	if s.delivering {
		s.mu.Unlock()
		return
	}
	s.delivering = true
	defer func() {
		s.delivering = false
		s.mu.Unlock()
	}()

	for len(s.outbox) > 0 {
		batch := s.outbox
		s.outbox = nil
		s.dispatch(batch)
	}
}

// dispatch delivers a batch with the lock released. The lock is retaken even
// if a listener panics, so the deferred reset in do stays balanced.
func (s *Simulation) dispatch(batch []Event) {
	s.mu.Unlock()
	defer s.mu.Lock()
	Dispatch(s.listener, batch)
}

// Tick runs one physics step (if running) and returns the frame to draw.
func (s *Simulation) Tick() View {
	var v View
	s.do(func(g *Game) {
		g.Step()
		v = g.View()
	})
	return v
}

// View returns the current frame without advancing the simulation.
func (s *Simulation) View() View {
	var v View
	s.do(func(g *Game) { v = g.View() })
	return v
}

// State returns the current game state.
func (s *Simulation) State() State {
	var st State
	s.do(func(g *Game) { st = g.State() })
	return st
}

// MovePaddle moves a paddle vertically by dy.
func (s *Simulation) MovePaddle(side Side, dy float64) {
	s.do(func(g *Game) { g.MovePaddle(side, dy) })
}

// Resize sets the playfield size and prepares a new round.
func (s *Simulation) Resize(width, height float64) {
	s.do(func(g *Game) { g.Resize(width, height) })
}

// RequestPause pauses a running game. It reports whether the state changed.
func (s *Simulation) RequestPause() bool {
	var changed bool
	s.do(func(g *Game) { changed = g.Pause() })
	return changed
}

// RequestResume resumes a paused game or starts the prepared round.
// It reports whether the state changed.
func (s *Simulation) RequestResume() bool {
	var changed bool
	s.do(func(g *Game) { changed = g.Resume() })
	return changed
}

// RequestNewGame zeroes the scores and starts a fresh round.
func (s *Simulation) RequestNewGame() {
	s.do(func(g *Game) { g.NewGame() })
}

// Snapshot returns the current state as a Snapshot value.
func (s *Simulation) Snapshot() Snapshot {
	var snap Snapshot
	s.do(func(g *Game) { snap = g.Snapshot() })
	return snap
}

// SaveSnapshot serializes the current state.
func (s *Simulation) SaveSnapshot() ([]byte, error) {
	return EncodeSnapshot(s.Snapshot())
}

// RestoreSnapshot replaces the state with a serialized snapshot. A malformed
// blob is rejected without touching the current state; the error wraps
// ErrMalformedSnapshot.
func (s *Simulation) RestoreSnapshot(data []byte) error {
	snap, err := DecodeSnapshot(data)
	if err == nil {
		s.do(func(g *Game) { err = g.ApplySnapshot(snap) })
	}
	if err != nil {
		s.logger.Warn("rejected snapshot", "error", err)
		return fmt.Errorf("brickpong: restore snapshot: %w", err)
	}
	return nil
}
