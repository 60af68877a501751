package core

// RuntimeConfig contains the parameters a session is started with.
// Games use it to size the board and for deterministic mine placement.
type RuntimeConfig struct {
	GridSize  int   // Board dimension (GridSize x GridSize)
	Mines     int   // Number of mines to place
	Seed      int64 // RNG seed, 0 means derive from the clock
	ShowMines bool  // Draw mines from the start (debugging aid)
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
}

// DefaultConfig returns a RuntimeConfig for a beginner-sized board.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		GridSize: 9,
		Mines:    10,
		ScreenW:  80,
		ScreenH:  24,
	}
}

// GameState summarizes a session for the platform layer.
type GameState struct {
	Moves    int  // Accepted reveals so far
	Won      bool // Every safe cell is open
	GameOver bool // The game has ended (won or lost)
}
