// Package tui provides the Bubble Tea host for BrickPong.
// It maps keys to simulation calls and draws the frames the runner produces.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/brickpong/internal/core"
	"github.com/vovakirdan/brickpong/internal/games/brickpong"
	"github.com/vovakirdan/brickpong/internal/storage"
)

// Model is the Bubble Tea model for the game screen.
type Model struct {
	sim         *brickpong.Simulation
	store       *storage.Store
	slot        string
	paddleSpeed float64
	logger      *log.Logger

	keys   KeyMap
	help   help.Model
	screen *core.Screen

	view     brickpong.View
	status   brickpong.StatusEvent
	score    string
	notice   string
	quitting bool
}

// NewModel creates the game screen model. store may be nil, in which case
// save and load are unavailable.
func NewModel(sim *brickpong.Simulation, store *storage.Store, slot string, paddleSpeed float64, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}
	v := sim.View()
	return Model{
		sim:         sim,
		store:       store,
		slot:        slot,
		paddleSpeed: paddleSpeed,
		logger:      logger,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		screen:      core.NewScreen(0, 0),
		view:        v,
		status:      v.Status,
		score:       v.Score,
	}
}

// Init initializes the model. Frames arrive from the runner.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("BrickPong")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		// Resizing starts a new round, so an unchanged size (such as the
		// first message after resuming a saved game) is not passed on.
		if w, h := PlayfieldSize(msg.Width, msg.Height); !m.view.Sized || w != m.view.Width || h != m.view.Height {
			m.sim.Resize(w, h)
		}
		m.view = m.sim.View()

	case FrameMsg:
		m.view = brickpong.View(msg)

	case StatusMsg:
		m.status = brickpong.StatusEvent(msg)
		m.notice = ""

	case ScoreMsg:
		m.score = msg.Text
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionUp:
		m.sim.MovePaddle(brickpong.Human, -m.paddleSpeed)
	case core.ActionDown:
		m.sim.MovePaddle(brickpong.Human, m.paddleSpeed)
	case core.ActionPause:
		if !m.sim.RequestPause() {
			m.sim.RequestResume()
		}
	case core.ActionResume:
		m.sim.RequestResume()
	case core.ActionNewGame:
		m.sim.RequestNewGame()
	case core.ActionSave:
		m.notice = m.save()
	case core.ActionLoad:
		m.notice = m.load()
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		if m.help.ShowAll {
			m.sim.RequestPause()
		}
	default:
		return m, nil
	}

	m.view = m.sim.View()
	return m, nil
}

// save writes the current game to the slot and returns a notice.
func (m Model) save() string {
	if m.store == nil {
		return "Saving is unavailable"
	}
	data, err := m.sim.SaveSnapshot()
	if err == nil {
		err = m.store.SaveSnapshot(m.slot, data, m.sim.State().String())
	}
	if err != nil {
		m.logger.Error("save failed", "slot", m.slot, "error", err)
		return "Save failed"
	}
	m.logger.Info("game saved", "slot", m.slot, "bytes", len(data))
	return fmt.Sprintf("Saved to slot %q", m.slot)
}

// load restores the game from the slot and returns a notice.
func (m Model) load() string {
	if m.store == nil {
		return "Loading is unavailable"
	}
	data, err := m.store.LoadSnapshot(m.slot)
	switch {
	case errors.Is(err, storage.ErrSnapshotNotFound):
		return fmt.Sprintf("No save in slot %q", m.slot)
	case err != nil:
		m.logger.Error("load failed", "slot", m.slot, "error", err)
		return "Load failed"
	}
	if err := m.sim.RestoreSnapshot(data); err != nil {
		return fmt.Sprintf("Save in slot %q is damaged", m.slot)
	}
	return fmt.Sprintf("Loaded slot %q", m.slot)
}

// footer picks the bottom line: a notice, then the status, then key hints.
func (m Model) footer() string {
	if m.notice != "" {
		return m.notice
	}
	if text := StatusText(m.status); text != "" {
		return text
	}
	hints := make([]string, 0, len(m.keys.ShortHelp()))
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		hints = append(hints, h.Key+" "+h.Desc)
	}
	return strings.Join(hints, " • ")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.help.ShowAll {
		return lipgloss.Place(m.screen.Width(), m.screen.Height(),
			lipgloss.Center, lipgloss.Center, m.help.View(m.keys))
	}

	v := m.view
	v.Score = m.score
	Rasterize(v, m.screen, m.footer())
	return RenderScreen(m.screen)
}

// Options configures Run.
type Options struct {
	Sim         *brickpong.Simulation
	Bridge      *Bridge // Must be the simulation's listener (or part of it)
	Store       *storage.Store
	Slot        string
	TickRate    int
	PaddleSpeed float64
	Logger      *log.Logger
}

// Run starts the runner and the Bubble Tea program and blocks until the
// player quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	model := NewModel(opts.Sim, opts.Store, opts.Slot, opts.PaddleSpeed, opts.Logger)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(gctx),
	)
	runner := brickpong.NewRunner(opts.Sim, opts.TickRate, opts.Bridge.Frame)

	g.Go(func() error {
		return ignoreCanceled(runner.Run(gctx))
	})
	g.Go(func() error {
		return ignoreCanceled(opts.Bridge.Pump(gctx, p))
	})
	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	})

	return g.Wait()
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
