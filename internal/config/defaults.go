package config

import (
	_ "embed"
)

//go:embed defaults/brickpong.yaml
var defaultBrickPongYAML []byte

// DefaultBrickPongConfig returns the hardcoded defaults. They mirror the
// embedded YAML and serve as the fallback when it cannot be parsed.
func DefaultBrickPongConfig() BrickPongConfig {
	return BrickPongConfig{
		Physics: Physics{
			BallSpeed:       20,
			PaddleSpeed:     40,
			MaxBounceAngle:  75,
			CollisionFrames: 5,
		},
		Paddle: Paddle{
			Width:  45,
			Height: 200,
			Margin: 2,
		},
		Ball: Ball{
			Radius: 15,
		},
		AI: AI{
			MoveProbability: 0.6,
			SpeedFactor:     1.0,
		},
		Bricks: Bricks{
			Enabled:     true,
			Probability: 0.7,
			Divisions:   20,
			Spread:      1.3,
			Columns:     6,
			Rows:        6,
		},
		Gameplay: Gameplay{
			MaxBalls: 3,
		},
		Loop: Loop{
			TickRate: 60,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.3,
			Progression: ProgressionConfig{
				Type:  "rounds",
				MaxAt: 20,
			},
			Scaling: ScalingConfig{
				AIProbabilityGain:   0.3,
				BallSpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBrickPongYAML
}
