package brickpong

// State is the game's lifecycle state. Codes are persisted in snapshots.
type State uint8

const (
	StateReady   State = 0 // Round prepared, waiting to start
	StateRunning State = 1
	StatePaused  State = 2
	StateEnded   State = 3 // Round over; next round prepared, outcome shown
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Valid reports whether s is a known state code.
func (s State) Valid() bool {
	return s <= StateEnded
}

// Outcome is the result of a round from the human's point of view.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
	OutcomeTie
)

// String returns the outcome's status key, or "none".
func (o Outcome) String() string {
	if k := o.Key(); k != "" {
		return string(k)
	}
	return "none"
}

// Key returns the status key for the outcome.
func (o Outcome) Key() StatusKey {
	switch o {
	case OutcomeWin:
		return StatusWin
	case OutcomeLose:
		return StatusLose
	case OutcomeTie:
		return StatusTie
	default:
		return ""
	}
}

func outcomeFor(human, computer int) Outcome {
	switch {
	case human > computer:
		return OutcomeWin
	case human < computer:
		return OutcomeLose
	default:
		return OutcomeTie
	}
}

// Pause moves a running game to Paused. It reports whether the state changed.
func (g *Game) Pause() bool {
	if g.state != StateRunning {
		return false
	}
	g.setState(StatePaused)
	return true
}

// Resume starts play from Paused, or starts the prepared round from Ready
// or Ended. It reports whether the state changed.
func (g *Game) Resume() bool {
	if g.state == StateRunning {
		return false
	}
	g.setState(StateRunning)
	return true
}

// NewGame zeroes both scores, prepares a fresh round and starts it.
func (g *Game) NewGame() {
	g.paddles[Human].Score = 0
	g.paddles[Computer].Score = 0
	g.setupRound()
	g.setState(StateRunning)
	g.noteScore()
}

func (g *Game) setState(s State) {
	prev := g.state
	g.state = s
	g.logger.Debug("state change", "from", prev, "to", s)

	switch s {
	case StateReady:
		g.setupRound()
		g.setStatus(StatusEvent{})
	case StateRunning:
		g.setStatus(StatusEvent{})
	case StatePaused:
		g.setStatus(StatusEvent{Key: StatusPause, Visible: true})
	case StateEnded:
		g.endRound()
	}
}

// endRound reports the outcome, zeroes the scores and prepares the next round.
func (g *Game) endRound() {
	human, computer := g.paddles[Human].Score, g.paddles[Computer].Score
	outcome := outcomeFor(human, computer)
	g.rounds++
	g.logger.Info("round over", "outcome", outcome, "human", human, "computer", computer, "rounds", g.rounds)

	g.setStatus(StatusEvent{
		Key:           outcome.Key(),
		Visible:       true,
		Outcome:       outcome,
		HumanScore:    human,
		ComputerScore: computer,
	})

	g.paddles[Human].Score = 0
	g.paddles[Computer].Score = 0
	g.setupRound()
}

func (g *Game) setStatus(ev StatusEvent) {
	g.status = ev
	g.emit(ev)
}

// Status returns the most recent status event.
func (g *Game) Status() StatusEvent {
	return g.status
}
