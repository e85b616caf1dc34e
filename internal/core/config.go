package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in layout units (cells or pixels)
	ScreenH  int   // Screen height in layout units
	TickRate int   // Frames per second requested from the platform (default 60)
	Seed     int64 // RNG seed; 0 means a fresh time-based seed per session
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score      int    // Current score
	GameOver   bool   // Whether the current session has ended
	Paused     bool   // Whether the game is paused
	Quit       bool   // Whether the game asked the platform to exit
	Difficulty string // Difficulty of the current session, empty outside a session
}

// StepResult is returned by Game.Step() after each frame.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
