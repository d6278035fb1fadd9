// Package config provides YAML-based game configuration loading and
// difficulty management for BrickPong.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// ErrUnknownPreset is returned when a difficulty preset name is not recognized.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// BrickPongConfig contains all tuning for the simulation and its loop.
type BrickPongConfig struct {
	Physics    Physics          `yaml:"physics"`
	Paddle     Paddle           `yaml:"paddle"`
	Ball       Ball             `yaml:"ball"`
	AI         AI               `yaml:"ai"`
	Bricks     Bricks           `yaml:"bricks"`
	Gameplay   Gameplay         `yaml:"gameplay"`
	Loop       Loop             `yaml:"loop"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Physics defines ball and paddle motion, in playfield units per tick.
type Physics struct {
	BallSpeed       float64 `yaml:"ball_speed"`
	PaddleSpeed     float64 `yaml:"paddle_speed"`
	MaxBounceAngle  float64 `yaml:"max_bounce_angle"` // Degrees off straight-back
	CollisionFrames int     `yaml:"collision_frames"` // Paddle glow duration in ticks
}

// Paddle defines paddle geometry.
type Paddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin float64 `yaml:"margin"` // Gap between paddle and its side wall
}

// Ball defines ball geometry.
type Ball struct {
	Radius float64 `yaml:"radius"`
}

// AI defines the computer paddle's imperfection.
type AI struct {
	MoveProbability float64 `yaml:"move_probability"` // Chance per tick to move at all
	SpeedFactor     float64 `yaml:"speed_factor"`     // Multiplier on paddle speed
}

// Bricks defines the randomized layout generated every round.
type Bricks struct {
	Enabled     bool    `yaml:"enabled"`
	Probability float64 `yaml:"probability"` // Chance that a cell holds a brick
	Divisions   int     `yaml:"divisions"`   // Nominal cells across the spread half-extent
	Spread      float64 `yaml:"spread"`      // Fraction of half-width/half-height the divisions span
	Columns     int     `yaml:"columns"`     // Cells per quadrant, horizontally; 0 derives from the width
	Rows        int     `yaml:"rows"`        // Cells per quadrant, vertically; 0 derives from the height
	Mirror      bool    `yaml:"mirror"`      // Roll once per offset and mirror into all quadrants
}

// Gameplay toggles optional rules.
type Gameplay struct {
	MultiBall bool `yaml:"multi_ball"` // Paddle hits spawn an extra ball
	MaxBalls  int  `yaml:"max_balls"`
}

// Loop defines the fixed-rate simulation loop.
type Loop struct {
	TickRate int `yaml:"tick_rate"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "rounds", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Rounds/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at level 1.0.
type ScalingConfig struct {
	AIProbabilityGain   float64 `yaml:"ai_probability_gain"`   // Added to AI move probability
	BallSpeedMultiplier float64 `yaml:"ball_speed_multiplier"` // Fraction added to ball speed
}

// Validate reports the first out-of-range setting, wrapped in ErrInvalidConfig.
func (c BrickPongConfig) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{c.Physics.BallSpeed > 0, "physics.ball_speed must be positive"},
		{c.Physics.PaddleSpeed > 0, "physics.paddle_speed must be positive"},
		{c.Physics.MaxBounceAngle > 0 && c.Physics.MaxBounceAngle < 90, "physics.max_bounce_angle must be in (0, 90)"},
		{c.Physics.CollisionFrames >= 0, "physics.collision_frames must not be negative"},
		{c.Paddle.Width > 0 && c.Paddle.Height > 0, "paddle size must be positive"},
		{c.Paddle.Margin >= 0, "paddle.margin must not be negative"},
		{c.Ball.Radius > 0, "ball.radius must be positive"},
		{probability(c.AI.MoveProbability), "ai.move_probability must be in [0, 1]"},
		{c.AI.SpeedFactor > 0, "ai.speed_factor must be positive"},
		{probability(c.Bricks.Probability), "bricks.probability must be in [0, 1]"},
		{c.Bricks.Divisions > 0, "bricks.divisions must be positive"},
		{c.Bricks.Spread > 0, "bricks.spread must be positive"},
		{c.Bricks.Columns >= 0 && c.Bricks.Rows >= 0, "bricks.columns and bricks.rows must not be negative"},
		{c.Gameplay.MaxBalls >= 1, "gameplay.max_balls must be at least 1"},
		{c.Loop.TickRate > 0, "loop.tick_rate must be positive"},
		{probability(c.Difficulty.InitialLevel), "difficulty.initial_level must be in [0, 1]"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, chk.what)
		}
	}
	return nil
}

func probability(p float64) bool {
	return p >= 0 && p <= 1
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
