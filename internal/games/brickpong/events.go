package brickpong

//go:generate go tool mockgen -destination=./mocks/listener_mock.go -package=mocks . Listener

import "fmt"

// Event is a notification raised by the simulation for its host.
// The set of events is closed: StatusEvent and ScoreEvent.
type Event interface {
	isEvent()
}

// StatusKey names the status message a host should show.
type StatusKey string

const (
	StatusWin   StatusKey = "win"
	StatusLose  StatusKey = "lose"
	StatusTie   StatusKey = "tie"
	StatusPause StatusKey = "pause"
)

// StatusEvent shows or hides the status message.
// Round outcomes also carry the final scores, which are zeroed right after.
type StatusEvent struct {
	Key           StatusKey
	Visible       bool
	Outcome       Outcome
	HumanScore    int
	ComputerScore int
}

// ScoreEvent carries the formatted score after it changes.
type ScoreEvent struct {
	Text     string
	Human    int
	Computer int
}

func (StatusEvent) isEvent() {}
func (ScoreEvent) isEvent()  {}

// ScoreText formats scores the way the scoreboard shows them.
func ScoreText(human, computer int) string {
	return fmt.Sprintf("%d    %d", human, computer)
}

// Listener receives simulation events. Calls are made without the simulation
// lock held, one at a time and in the order the events occurred. They may run
// on whichever goroutine is delivering when the event is raised.
type Listener interface {
	StatusChanged(ev StatusEvent)
	ScoreChanged(ev ScoreEvent)
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	OnStatus func(StatusEvent)
	OnScore  func(ScoreEvent)
}

// StatusChanged implements Listener.
func (f ListenerFuncs) StatusChanged(ev StatusEvent) {
	if f.OnStatus != nil {
		f.OnStatus(ev)
	}
}

// ScoreChanged implements Listener.
func (f ListenerFuncs) ScoreChanged(ev ScoreEvent) {
	if f.OnScore != nil {
		f.OnScore(ev)
	}
}

// Listeners fans events out to several listeners in order.
type Listeners []Listener

// StatusChanged implements Listener.
func (ls Listeners) StatusChanged(ev StatusEvent) {
	for _, l := range ls {
		l.StatusChanged(ev)
	}
}

// ScoreChanged implements Listener.
func (ls Listeners) ScoreChanged(ev ScoreEvent) {
	for _, l := range ls {
		l.ScoreChanged(ev)
	}
}

// Dispatch delivers events to l in order.
func Dispatch(l Listener, events []Event) {
	if l == nil {
		return
	}
	for _, ev := range events {
		switch ev := ev.(type) {
		case StatusEvent:
			l.StatusChanged(ev)
		case ScoreEvent:
			l.ScoreChanged(ev)
		}
	}
}
