package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells (terminal) or pixels (window)
	ScreenH  int   // Screen height in cells (terminal) or pixels (window)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  100,
		ScreenH:  37,
		TickRate: 60,
		Seed:     0,
	}
}

// FrameDuration returns the nominal duration of one tick.
func (c RuntimeConfig) FrameDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState is the summary the platform reads after each tick.
type GameState struct {
	Score    int    // Current run score
	Level    int    // Current level number (1-based)
	Lives    int    // Remaining lives
	Phase    string // State machine state name
	GameOver bool   // Whether the run has ended
	Paused   bool   // Whether the simulation is paused
}

// StepResult is returned by Step/Update after each simulation tick.
type StepResult struct {
	State GameState
}
