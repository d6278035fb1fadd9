package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickpong/internal/games/brickpong"
)

// RoundRecorder is a brickpong.Listener that stores every round outcome.
// Save failures are logged rather than returned, since listeners cannot fail.
type RoundRecorder struct {
	store      *Store
	difficulty string
	logger     *log.Logger
	saved      int
}

var _ brickpong.Listener = (*RoundRecorder)(nil)

// NewRoundRecorder creates a recorder that tags rounds with difficulty.
// A nil logger uses the default charmbracelet logger.
func NewRoundRecorder(store *Store, difficulty string, logger *log.Logger) *RoundRecorder {
	if logger == nil {
		logger = log.Default()
	}
	return &RoundRecorder{store: store, difficulty: difficulty, logger: logger}
}

// StatusChanged implements brickpong.Listener.
func (r *RoundRecorder) StatusChanged(ev brickpong.StatusEvent) {
	if ev.Outcome == brickpong.OutcomeNone {
		return
	}
	id, err := r.store.SaveRound(ev.Outcome.String(), ev.HumanScore, ev.ComputerScore, r.difficulty)
	if err != nil {
		r.logger.Error("failed to record round", "error", err)
		return
	}
	r.saved++
	r.logger.Debug("round recorded", "id", id, "outcome", ev.Outcome)
}

// ScoreChanged implements brickpong.Listener.
func (r *RoundRecorder) ScoreChanged(brickpong.ScoreEvent) {}

// Saved returns the number of rounds recorded so far.
func (r *RoundRecorder) Saved() int {
	return r.saved
}
