package config

import "math"

// DifficultyManager scales AI skill and ball speed as a session progresses.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on
// completed rounds or elapsed ticks.
func (d *DifficultyManager) Level(rounds int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "rounds":
		progress = float64(rounds) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// AIProbability returns the computer paddle's per-tick move chance.
// A disabled manager returns base unchanged.
func (d *DifficultyManager) AIProbability(base float64, rounds int, ticks int) float64 {
	if !d.cfg.Enabled {
		return base
	}
	level := d.Level(rounds, ticks)
	return clampF(base+level*d.cfg.Scaling.AIProbabilityGain, 0.0, 1.0)
}

// BallSpeed returns the serve and rebound speed.
// Speed grows from base to base * (1 + ball_speed_multiplier) at level 1.0.
func (d *DifficultyManager) BallSpeed(base float64, rounds int, ticks int) float64 {
	if !d.cfg.Enabled {
		return base
	}
	level := d.Level(rounds, ticks)
	return base * (1.0 + level*d.cfg.Scaling.BallSpeedMultiplier)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
