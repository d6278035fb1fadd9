package core

// RuntimeConfig contains host-supplied settings passed to the simulation at
// construction. Physics tuning lives in internal/config instead.
type RuntimeConfig struct {
	Width    float64 // Playfield width; zero means not yet sized
	Height   float64 // Playfield height; zero means not yet sized
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
