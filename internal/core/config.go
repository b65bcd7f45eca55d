package core

import "time"

// DefaultTickRate is the reference simulation rate. Per-tick speeds in game
// configs are expressed for one tick at this rate.
const DefaultTickRate = 60

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickDuration returns the simulated time covered by one tick.
// Non-positive tick rates fall back to DefaultTickRate.
func (c RuntimeConfig) TickDuration() time.Duration {
	return time.Second / time.Duration(c.tickRate())
}

// TickScale returns the factor that converts per-reference-tick quantities
// into per-tick quantities at the configured rate. It is exactly 1 at 60 Hz.
func (c RuntimeConfig) TickScale() float64 {
	return float64(DefaultTickRate) / float64(c.tickRate())
}

func (c RuntimeConfig) tickRate() int {
	if c.TickRate <= 0 {
		return DefaultTickRate
	}
	return c.TickRate
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
