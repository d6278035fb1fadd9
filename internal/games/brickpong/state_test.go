package brickpong

import (
	"testing"

	"github.com/vovakirdan/brickpong/internal/core"
)

func TestNewPreparesRound(t *testing.T) {
	g := newTestGame(testConfig(), aiNever)

	if g.State() != StateReady {
		t.Errorf("State() = %v, expected %v", g.State(), StateReady)
	}

	human, computer := g.Paddle(Human), g.Paddle(Computer)
	if human.Rect != core.RectFromSize(2, 200, 45, 200) {
		t.Errorf("human paddle = %+v, expected left margin, vertically centered", human.Rect)
	}
	if computer.Rect != core.RectFromSize(753, 200, 45, 200) {
		t.Errorf("computer paddle = %+v, expected right margin, vertically centered", computer.Rect)
	}

	balls := g.Balls()
	if len(balls) != 1 {
		t.Fatalf("len(Balls()) = %d, expected 1", len(balls))
	}
	if b := balls[0]; b.CX != 100 || b.CY != 300 || b.DX != -20 || b.DY != 0 || b.Radius != 15 {
		t.Errorf("serve = %+v, expected (100, 300) moving left at 20", b)
	}
	if len(g.DrainEvents()) != 0 {
		t.Error("construction should not leave events queued")
	}
}

func TestManualTransitions(t *testing.T) {
	g := newTestGame(testConfig(), aiNever)

	if g.Pause() {
		t.Error("Pause() from Ready should be ignored")
	}
	if !g.Resume() || g.State() != StateRunning {
		t.Fatalf("Resume() from Ready should start play, state = %v", g.State())
	}
	if g.Resume() {
		t.Error("Resume() while running should be ignored")
	}

	if !g.Pause() || g.State() != StatePaused {
		t.Fatalf("Pause() should pause, state = %v", g.State())
	}
	if st := g.Status(); st.Key != StatusPause || !st.Visible {
		t.Errorf("Status() = %+v, expected visible pause", st)
	}

	if !g.Resume() || g.State() != StateRunning {
		t.Fatalf("Resume() should resume, state = %v", g.State())
	}
	if g.Status().Visible {
		t.Error("status should be hidden while running")
	}
}

func TestPausedGameDoesNotMove(t *testing.T) {
	g := runningGame(400, 300, 5, 5)
	g.Pause()
	g.Step()

	if b := g.balls[0]; b.CX != 400 || b.CY != 300 {
		t.Errorf("paused ball moved to (%v, %v)", b.CX, b.CY)
	}
}

func TestNewGameResetsScores(t *testing.T) {
	g := runningGame(400, 300, 5, 5)
	g.paddles[Human].Score = 3
	g.paddles[Computer].Score = 2
	g.noteScore()
	g.Pause()
	g.DrainEvents()

	g.NewGame()

	if g.State() != StateRunning {
		t.Errorf("State() = %v, expected %v", g.State(), StateRunning)
	}
	if g.paddles[Human].Score != 0 || g.paddles[Computer].Score != 0 {
		t.Error("NewGame() should zero both scores")
	}
	if g.balls[0].CX != 100 {
		t.Errorf("ball CX = %v, expected fresh serve at 100", g.balls[0].CX)
	}

	var sawScore bool
	for _, ev := range g.DrainEvents() {
		if sc, ok := ev.(ScoreEvent); ok && sc.Text == "0    0" {
			sawScore = true
		}
	}
	if !sawScore {
		t.Error("NewGame() should report the zeroed score")
	}
}

func TestEndRoundOutcomes(t *testing.T) {
	tests := []struct {
		name        string
		human, comp int
		expected    Outcome
		expectedKey StatusKey
	}{
		{"human ahead", 2, 1, OutcomeWin, StatusWin},
		{"computer ahead", 0, 1, OutcomeLose, StatusLose},
		{"level", 1, 1, OutcomeTie, StatusTie},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := runningGame(400, 300, 5, 5)
			g.paddles[Human].Score = tt.human
			g.paddles[Computer].Score = tt.comp

			g.setState(StateEnded)

			st := g.Status()
			if st.Outcome != tt.expected || st.Key != tt.expectedKey || !st.Visible {
				t.Errorf("Status() = %+v, expected visible %v", st, tt.expectedKey)
			}
			if st.HumanScore != tt.human || st.ComputerScore != tt.comp {
				t.Errorf("final score = %d-%d, expected %d-%d", st.HumanScore, st.ComputerScore, tt.human, tt.comp)
			}
			if g.paddles[Human].Score != 0 || g.paddles[Computer].Score != 0 {
				t.Error("scores should be zeroed")
			}
		})
	}
}

func TestResumeAfterEndStartsNextRound(t *testing.T) {
	g := runningGame(400, 300, 5, 5)
	g.setState(StateEnded)

	if !g.Resume() || g.State() != StateRunning {
		t.Fatalf("Resume() after Ended should start play, state = %v", g.State())
	}
	if g.Status().Visible {
		t.Error("status should be hidden once play starts")
	}
}

func TestResizeSetsUpRound(t *testing.T) {
	g := runningGame(400, 300, 5, 5)
	g.Resize(1000, 500)

	if w, h := g.Size(); w != 1000 || h != 500 || !g.Sized() {
		t.Errorf("Size() = %vx%v sized=%v, expected 1000x500", w, h, g.Sized())
	}
	if g.balls[0].CX != 125 || g.balls[0].CY != 250 {
		t.Errorf("ball = (%v, %v), expected (125, 250)", g.balls[0].CX, g.balls[0].CY)
	}
	if top := g.paddles[Computer].Rect.Top; top != 150 {
		t.Errorf("computer top = %v, expected 150", top)
	}
	if left := g.paddles[Computer].Rect.Left; left != 953 {
		t.Errorf("computer left = %v, expected 953", left)
	}

	g.Resize(0, -5)
	if w, h := g.Size(); w != 1 || h != 1 || g.Sized() {
		t.Errorf("degenerate Resize gave %vx%v sized=%v, expected unsized 1x1", w, h, g.Sized())
	}
}

func TestMovePaddleClamps(t *testing.T) {
	tests := []struct {
		name    string
		dy      float64
		wantTop float64
	}{
		{"small move", -30, 170},
		{"clamped at top", -1000, 0},
		{"clamped at bottom", 1000, 399},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(testConfig(), aiNever)
			g.MovePaddle(Human, tt.dy)

			p := g.Paddle(Human)
			if p.Rect.Top != tt.wantTop {
				t.Errorf("Top = %v, expected %v", p.Rect.Top, tt.wantTop)
			}
			if p.Rect.Height() != 200 || p.Rect.Left != 2 {
				t.Errorf("paddle = %+v, expected size and column preserved", p.Rect)
			}
		})
	}
}

func TestMovePaddleIgnoresBadInput(t *testing.T) {
	g := newTestGame(testConfig(), aiNever)
	before := g.Paddle(Human).Rect

	g.MovePaddle(Side(7), 10)
	g.MovePaddle(Human, before.Top/0*0) // NaN

	if g.Paddle(Human).Rect != before {
		t.Errorf("paddle moved to %+v on invalid input", g.Paddle(Human).Rect)
	}
}

func TestStateStrings(t *testing.T) {
	tests := []struct {
		s        State
		expected string
	}{
		{StateReady, "ready"},
		{StateRunning, "running"},
		{StatePaused, "paused"},
		{StateEnded, "ended"},
		{State(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, expected %q", tt.s, got, tt.expected)
		}
	}
	if State(4).Valid() {
		t.Error("State(4) should be invalid")
	}
}
