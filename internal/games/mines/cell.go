package mines

import "fmt"

// CellState is the player-visible state of a cell.
type CellState int

const (
	Hidden CellState = iota
	Visible
	Marker
)

// String returns a human-readable name for the state.
func (s CellState) String() string {
	switch s {
	case Hidden:
		return "Hidden"
	case Visible:
		return "Visible"
	case Marker:
		return "Marker"
	default:
		return "Unknown"
	}
}

// Cell is one square of the grid.
// Adjacent is only meaningful once the cell is Visible.
type Cell struct {
	State    CellState
	Adjacent int
	Mine     bool
}

// Coord addresses a cell by row and column.
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Outcome is the normal result of a reveal.
type Outcome int

const (
	Continue Outcome = iota
	Loss
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	if o == Loss {
		return "Loss"
	}
	return "Continue"
}
