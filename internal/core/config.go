package core

import "time"

// RuntimeConfig contains the settings a single game session runs with.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Time between game ticks
	PollInterval time.Duration // Time between input polls
	Seed         int64         // RNG seed for apple placement
}

// DefaultConfig returns a RuntimeConfig with the reference timings.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 100 * time.Millisecond,
		PollInterval: 10 * time.Millisecond,
		Seed:         0, // 0 means use current time in platform layer
	}
}
