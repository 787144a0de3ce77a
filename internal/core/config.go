package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means use current time in platform layer
	Best     int   // Best score known before the run, from storage
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int
	Best     int
	Lines    int
	Level    int
	Started  bool // A run is in progress or has ended; false before the first start
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Cues are cosmetic notifications for audio and effects, in emission order.
	Cues []Cue
}
