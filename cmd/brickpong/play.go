package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickpong/internal/games/brickpong"
	"github.com/vovakirdan/brickpong/internal/platform/tui"
	"github.com/vovakirdan/brickpong/internal/storage"
)

var (
	flagResume  string
	flagSlot    string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game against the computer.

Controls:
  W/Up, S/Down  - Move your paddle
  Space/Enter   - Start or resume
  P/Esc         - Pause
  N             - New game
  Ctrl+S        - Save to the current slot
  Ctrl+L        - Load from the current slot
  ?             - Help
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Slower computer, progresses from the lowest level
  normal - Starts at 30% difficulty and progresses each round
  hard   - Faster ball and computer, starts at 70% difficulty
  fixed  - No progression, uses the config values as-is

Examples:
  brickpong play
  brickpong play --difficulty easy
  brickpong play --slot mine --resume mine
  brickpong play --log-file ./brickpong.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagResume, "resume", "", "Restore the game saved in this slot before starting")
	playCmd.Flags().StringVar(&flagSlot, "slot", "quick", "Slot used by Ctrl+S and Ctrl+L")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
}

func runPlay(cmd *cobra.Command, _ []string) {
	if err := play(cmd.Context()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "brickpong")
	if err != nil {
		return err
	}

	cfg, difficulty, err := loadConfig()
	if err != nil {
		return err
	}

	// Start with the current terminal size; the program's first resize
	// replaces it.
	cols, rows := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cols, rows = w, h
	}
	rt := runtimeConfig(cfg, 0, 0)
	rt.Width, rt.Height = tui.PlayfieldSize(cols, rows)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - the game still works
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		logger.Warn("storage unavailable", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	bridge := tui.NewBridge(logger)
	listeners := brickpong.Listeners{bridge}
	if store != nil {
		listeners = append(listeners, storage.NewRoundRecorder(store, difficulty, logger))
	}

	sim := brickpong.NewSimulation(cfg, rt,
		brickpong.WithLogger(logger),
		brickpong.WithListener(listeners))

	if flagResume != "" {
		if err := resume(sim, store, flagResume); err != nil {
			return err
		}
	}

	logger.Info("starting game", "difficulty", difficulty, "seed", rt.Seed, "tick_rate", rt.TickRate)
	return tui.Run(ctx, tui.Options{
		Sim:         sim,
		Bridge:      bridge,
		Store:       store,
		Slot:        flagSlot,
		TickRate:    rt.TickRate,
		PaddleSpeed: cfg.Physics.PaddleSpeed,
		Logger:      logger,
	})
}

// resume restores the game saved in slot.
func resume(sim *brickpong.Simulation, store *storage.Store, slot string) error {
	if store == nil {
		return errors.New("cannot resume: results database is unavailable")
	}
	data, err := store.LoadSnapshot(slot)
	if err != nil {
		return err
	}
	return sim.RestoreSnapshot(data)
}
