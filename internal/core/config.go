package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
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
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level
	Lines    int  // Total lines cleared
	GameOver bool // Whether the game has ended
	Won      bool // Whether the game ended by reaching its goal (sprint)
	Paused   bool // Whether the game is paused
}

// EventType identifies an outward notification produced by a game tick.
type EventType int

const (
	EventPieceLocked  EventType = iota // A piece was fixed into the board
	EventLinesCleared                  // One or more rows were cleared
	EventLevelUp                       // The level threshold was crossed
	EventHoldSwap                      // The hold slot was used
	EventGameOver                      // The game reached its terminal state
)

// Event is a single notification emitted by a game tick. The platform
// consumes events after the tick completes (for flashes, sounds, logging);
// games never invoke platform code mid-transition.
type Event struct {
	Type  EventType
	Lines int   // EventLinesCleared: number of rows
	Rows  []int // EventLinesCleared: cleared row indices, top to bottom
	Level int   // EventLevelUp: the new level
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
