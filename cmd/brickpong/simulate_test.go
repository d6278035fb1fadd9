package main

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/brickpong/internal/config"
	"github.com/vovakirdan/brickpong/internal/core"
	"github.com/vovakirdan/brickpong/internal/games/brickpong"
)

func TestAutopilot(t *testing.T) {
	paddle := core.RectFromSize(2, 200, 45, 200) // center y = 300

	tests := []struct {
		name     string
		ballY    float64
		expected float64
	}{
		{"ball far above", 100, -40},
		{"ball far below", 500, 40},
		{"ball slightly below", 310, 10},
		{"ball level", 300, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := brickpong.View{Balls: []brickpong.BallView{{CX: 400, CY: tt.ballY, Radius: 15}}}
			v.Paddles[brickpong.Human].Rect = paddle
			if got := autopilot(v, 40); got != tt.expected {
				t.Errorf("autopilot() = %v, expected %v", got, tt.expected)
			}
		})
	}

	if got := autopilot(brickpong.View{}, 40); got != 0 {
		t.Errorf("autopilot() without balls = %v, expected 0", got)
	}
}

func TestDriveRunsTicks(t *testing.T) {
	cfg := config.DefaultBrickPongConfig()
	sim := brickpong.NewSimulation(cfg, core.RuntimeConfig{Width: 800, Height: 600, Seed: 7})
	sim.RequestResume()

	if err := drive(context.Background(), sim, cfg, 500, false); err != nil {
		t.Fatalf("drive() error = %v", err)
	}
	if tick := sim.View().Tick; tick == 0 || tick > 500 {
		t.Errorf("ticks = %d, expected between 1 and 500", tick)
	}
	if sim.State() == brickpong.StateEnded {
		t.Error("drive() should restart ended rounds")
	}
}

func TestDriveStopsOnCancel(t *testing.T) {
	cfg := config.DefaultBrickPongConfig()
	sim := brickpong.NewSimulation(cfg, core.RuntimeConfig{Width: 800, Height: 600, Seed: 7})
	sim.RequestResume()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := drive(ctx, sim, cfg, 500, false); !errors.Is(err, context.Canceled) {
		t.Errorf("drive() error = %v, expected context.Canceled", err)
	}
}

func TestLoadConfigPreset(t *testing.T) {
	defer func(d string, fps int) { flagDifficulty, flagFPS = d, fps }(flagDifficulty, flagFPS)

	flagDifficulty, flagFPS = "hard", 30
	cfg, name, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if name != "hard" || !cfg.Difficulty.Enabled || cfg.Loop.TickRate != 30 {
		t.Errorf("loadConfig() = %q enabled=%v rate=%d, expected hard preset at 30 fps", name, cfg.Difficulty.Enabled, cfg.Loop.TickRate)
	}

	flagDifficulty, flagFPS = "", 0
	cfg, name, err = loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if name != "default" || cfg.Difficulty.Enabled {
		t.Errorf("loadConfig() = %q enabled=%v, expected defaults", name, cfg.Difficulty.Enabled)
	}

	flagDifficulty = "insane"
	if _, _, err := loadConfig(); !errors.Is(err, config.ErrUnknownPreset) {
		t.Errorf("loadConfig() error = %v, expected ErrUnknownPreset", err)
	}
}
