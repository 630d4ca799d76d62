package core

// DefaultTickRate is the nominal logic tick frequency in Hz.
const DefaultTickRate = 50

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 50)
	Seed     int64 // Recorded for replays; the maze simulation itself uses no RNG
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score, or the final score once GameOver is set
	HighScore int  // Best score seen by this game instance
	Level     int  // Current level, or the level reached once GameOver is set
	GameOver  bool // Whether the game has ended
	Paused    bool // Whether the game is paused
	Demo      bool // Whether the game is running unattended (attract mode)
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
