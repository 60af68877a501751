package mines

import "strings"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateLost        GameStateType = "lost"
	StateWon         GameStateType = "won"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Size      int
	Mines     int
	Flags     int
	Moves     int
	Remaining int
	Cursor    Coord
	Rows      []string // Glyph rows as returned by Board.String
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.board == nil {
		return Snapshot{State: StatePlaying}
	}

	state := StatePlaying
	switch {
	case g.board.Lost():
		state = StateLost
	case g.board.Won():
		state = StateWon
	case g.tooSmall:
		state = StatePausedSmall
	}

	return Snapshot{
		Size:      g.board.Size(),
		Mines:     g.board.Mines(),
		Flags:     g.board.Flags(),
		Moves:     g.board.Moves(),
		Remaining: g.board.Remaining(),
		Cursor:    g.cursor,
		Rows:      strings.Split(g.board.String(), "\n"),
		State:     state,
	}
}
