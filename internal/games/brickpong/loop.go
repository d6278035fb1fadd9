package brickpong

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// ErrRunnerActive is returned when Run is called on a runner that is already running.
var ErrRunnerActive = errors.New("brickpong: runner already active")

// FrameFunc receives the view produced by each tick.
type FrameFunc func(View)

// Runner drives a Simulation at a fixed tick rate.
//
// Pacing tracks an absolute deadline so a slow frame shortens the next sleep
// instead of adding lag. Shutdown is cooperative: Stop sets a flag checked
// once per iteration, and context cancellation cuts the sleep short.
type Runner struct {
	sim      *Simulation
	interval time.Duration
	onFrame  FrameFunc

	active  atomic.Bool
	stopped atomic.Bool
	ticks   atomic.Uint64
}

// NewRunner creates a runner. A non-positive tick rate defaults to 60.
func NewRunner(sim *Simulation, tickRate int, onFrame FrameFunc) *Runner {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Runner{
		sim:      sim,
		interval: time.Second / time.Duration(tickRate),
		onFrame:  onFrame,
	}
}

// Interval returns the time between ticks.
func (r *Runner) Interval() time.Duration {
	return r.interval
}

// Ticks returns the number of ticks run so far.
func (r *Runner) Ticks() uint64 {
	return r.ticks.Load()
}

// Stop asks the loop to exit after the current iteration.
func (r *Runner) Stop() {
	r.stopped.Store(true)
}

// Run ticks until Stop is called or ctx is cancelled. It returns nil after
// Stop and ctx.Err() after cancellation.
func (r *Runner) Run(ctx context.Context) error {
	if !r.active.CompareAndSwap(false, true) {
		return ErrRunnerActive
	}
	defer r.active.Store(false)

	timer := time.NewTimer(r.interval)
	defer timer.Stop()

	next := time.Now()
	for !r.stopped.Load() {
		if err := ctx.Err(); err != nil {
			return err
		}

		view := r.sim.Tick()
		r.ticks.Add(1)
		if r.onFrame != nil {
			r.onFrame(view)
		}

		now := time.Now()
		next = advance(next, now, r.interval)
		wait := next.Sub(now)
		if wait <= 0 {
			continue
		}

		timer.Reset(wait)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	return nil
}

// advance returns the deadline following next. A loop that has fallen more
// than one interval behind resynchronizes to now rather than bursting to
// catch up.
func advance(next, now time.Time, interval time.Duration) time.Time {
	next = next.Add(interval)
	if now.Sub(next) > interval {
		return now
	}
	return next
}
