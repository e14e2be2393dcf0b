package core

import "time"

// RuntimeConfig contains configuration passed to a game when it is mounted.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the host (default 60)
	Seed     int64 // RNG seed; 0 means the host picks one from the clock
	Dark     bool  // Whether the surrounding UI is in dark mode
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// FrameInterval returns the wall-clock time between two frames.
func (c RuntimeConfig) FrameInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState is the host-visible summary of a game.
type GameState struct {
	Score    int   // Current score, floored
	GameOver bool  // Whether the run has ended
	Elapsed  int64 // Milliseconds the current run has lasted
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState

	// Collided is true on the frame the run ended.
	Collided bool
}
