package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickpong/internal/config"
	"github.com/vovakirdan/brickpong/internal/games/brickpong"
	"github.com/vovakirdan/brickpong/internal/storage"
)

var (
	flagTicks    int
	flagRealtime bool
	flagSaveSlot string
	flagWidth    float64
	flagHeight   float64
	flagNoRecord bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game with an autopilot",
	Long: `Run a game without a terminal UI. An autopilot drives your paddle by
tracking the first ball, the computer plays as usual, and each round outcome is
logged and recorded in the results database.

By default ticks run as fast as possible. With --realtime they are paced at the
configured tick rate.

Examples:
  brickpong simulate --ticks 10000 --seed 42
  brickpong simulate --difficulty hard --log-level debug
  brickpong simulate --ticks 600 --save-slot demo`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to simulate")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks at the configured tick rate")
	simulateCmd.Flags().StringVar(&flagSaveSlot, "save-slot", "", "Save the final state to this snapshot slot")
	simulateCmd.Flags().Float64Var(&flagWidth, "width", 800, "Playfield width")
	simulateCmd.Flags().Float64Var(&flagHeight, "height", 600, "Playfield height")
	simulateCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not record round outcomes")
}

func runSimulate(cmd *cobra.Command, _ []string) {
	if err := simulate(cmd.Context()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// summary collects round outcomes as they are reported.
type summary struct {
	wins, losses, ties int
}

var _ brickpong.Listener = (*summary)(nil)

func (s *summary) StatusChanged(ev brickpong.StatusEvent) {
	switch ev.Outcome {
	case brickpong.OutcomeWin:
		s.wins++
	case brickpong.OutcomeLose:
		s.losses++
	case brickpong.OutcomeTie:
		s.ties++
	}
}

func (s *summary) ScoreChanged(brickpong.ScoreEvent) {}

func simulate(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	logger, err := newLogger(os.Stderr, "simulate")
	if err != nil {
		return err
	}
	cfg, difficulty, err := loadConfig()
	if err != nil {
		return err
	}
	rt := runtimeConfig(cfg, flagWidth, flagHeight)

	var store *storage.Store
	if !flagNoRecord || flagSaveSlot != "" {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	sum := &summary{}
	listeners := brickpong.Listeners{sum}
	if store != nil && !flagNoRecord {
		listeners = append(listeners, storage.NewRoundRecorder(store, difficulty, logger))
	}

	sim := brickpong.NewSimulation(cfg, rt,
		brickpong.WithLogger(logger),
		brickpong.WithListener(listeners))
	sim.RequestResume()

	logger.Info("simulation started", "ticks", flagTicks, "seed", rt.Seed, "difficulty", difficulty)
	if err := drive(ctx, sim, cfg, flagTicks, flagRealtime); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	v := sim.View()
	logger.Info("simulation finished", "ticks", v.Tick, "score", v.Score)

	if flagSaveSlot != "" {
		data, err := sim.SaveSnapshot()
		if err != nil {
			return err
		}
		if err := store.SaveSnapshot(flagSaveSlot, data, sim.State().String()); err != nil {
			return err
		}
		logger.Info("snapshot saved", "slot", flagSaveSlot, "bytes", len(data))
	}

	fmt.Printf("Ticks:   %d\n", v.Tick)
	fmt.Printf("Rounds:  %d (won %d, lost %d, tied %d)\n", sum.wins+sum.losses+sum.ties, sum.wins, sum.losses, sum.ties)
	fmt.Printf("Score:   %s\n", v.Score)
	fmt.Printf("Bricks:  %d left\n", len(v.Bricks))
	return nil
}

// drive advances sim for n ticks with the autopilot on the human paddle.
// Rounds that end are restarted right away.
func drive(ctx context.Context, sim *brickpong.Simulation, cfg config.BrickPongConfig, n int, realtime bool) error {
	speed := cfg.Physics.PaddleSpeed
	step := func(v brickpong.View) {
		if v.State == brickpong.StateEnded {
			sim.RequestResume()
			return
		}
		if dy := autopilot(v, speed); dy != 0 {
			sim.MovePaddle(brickpong.Human, dy)
		}
	}

	if !realtime {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			step(sim.Tick())
		}
		return nil
	}

	var runner *brickpong.Runner
	runner = brickpong.NewRunner(sim, cfg.Loop.TickRate, func(v brickpong.View) {
		step(v)
		if runner.Ticks() >= uint64(n) {
			runner.Stop()
		}
	})
	return runner.Run(ctx)
}

// autopilot returns the paddle move that keeps the human paddle centered
// on the first ball, limited to the paddle speed.
func autopilot(v brickpong.View, speed float64) float64 {
	if len(v.Balls) == 0 {
		return 0
	}
	p := v.Paddles[brickpong.Human].Rect
	diff := v.Balls[0].CY - p.CenterY()
	switch {
	case diff > speed:
		return speed
	case diff < -speed:
		return -speed
	default:
		return diff
	}
}

