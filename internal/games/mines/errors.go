package mines

import "errors"

// Errors returned by the board engine.
var (
	// ErrInvalidConfiguration is returned when a board cannot be built from
	// the requested size and mine count.
	ErrInvalidConfiguration = errors.New("invalid board configuration")

	// ErrOutOfBounds is returned when a row or column lies outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// Cell state errors
	ErrCellMarked   = errors.New("cell is marked")
	ErrCellRevealed = errors.New("cell is already revealed")

	// ErrGameOver is returned for moves made after the board was lost or won.
	ErrGameOver = errors.New("game is over")
)
