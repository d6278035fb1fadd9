package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickpong/internal/games/brickpong"
)

// FrameMsg carries the view produced by one simulation tick.
type FrameMsg brickpong.View

// StatusMsg carries a status event from the simulation.
type StatusMsg brickpong.StatusEvent

// ScoreMsg carries a score event from the simulation.
type ScoreMsg brickpong.ScoreEvent

// Bridge forwards simulation frames and events to a Bubble Tea program.
//
// Listener callbacks can run inside the model's own Update (for example when
// a key pauses the game), where a blocking Program.Send would deadlock. The
// bridge therefore never blocks: status and score messages are kept in order
// until Pump sends them, and frames collapse into the latest one.
type Bridge struct {
	mu        sync.Mutex
	events    []tea.Msg
	frame     *FrameMsg
	coalesced uint64

	wake   chan struct{}
	logger *log.Logger
}

var _ brickpong.Listener = (*Bridge)(nil)

// NewBridge creates a bridge. A nil logger uses the default logger.
func NewBridge(logger *log.Logger) *Bridge {
	if logger == nil {
		logger = log.Default()
	}
	return &Bridge{wake: make(chan struct{}, 1), logger: logger}
}

// Frame records v as the next frame to show. It is meant to be the Runner's
// frame callback. A frame not yet sent is replaced.
func (b *Bridge) Frame(v brickpong.View) {
	f := FrameMsg(v)

	b.mu.Lock()
	if b.frame != nil {
		b.coalesced++
		if b.coalesced%1000 == 0 {
			b.logger.Debug("ui falling behind, frames skipped", "skipped", b.coalesced)
		}
	}
	b.frame = &f
	b.mu.Unlock()

	b.signal()
}

// StatusChanged implements brickpong.Listener.
func (b *Bridge) StatusChanged(ev brickpong.StatusEvent) {
	b.push(StatusMsg(ev))
}

// ScoreChanged implements brickpong.Listener.
func (b *Bridge) ScoreChanged(ev brickpong.ScoreEvent) {
	b.push(ScoreMsg(ev))
}

func (b *Bridge) push(msg tea.Msg) {
	b.mu.Lock()
	b.events = append(b.events, msg)
	b.mu.Unlock()

	b.signal()
}

func (b *Bridge) signal() {
	select {
	case b.wake <- struct{}{}:
	default:
	}
}

// take removes everything pending: events in order, then the latest frame.
func (b *Bridge) take() []tea.Msg {
	b.mu.Lock()
	defer b.mu.Unlock()

	msgs := b.events
	b.events = nil
	if b.frame != nil {
		msgs = append(msgs, *b.frame)
		b.frame = nil
	}
	return msgs
}

// Coalesced returns the number of frames replaced before they were sent.
func (b *Bridge) Coalesced() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.coalesced
}

// Pump sends pending messages to p until ctx is done.
func (b *Bridge) Pump(ctx context.Context, p *tea.Program) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-b.wake:
			for _, msg := range b.take() {
				p.Send(msg)
			}
		}
	}
}
