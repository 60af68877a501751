// Package mines implements the minesweeper board engine: mine placement,
// neighbor counting, iterative flood-fill reveal and flagging.
// It performs no I/O; shells and the TUI drive it through explicit calls.
package mines

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
)

// Board is a square minesweeper grid.
// Cells are stored in row-major order: index = row*size + col.
type Board struct {
	size      int
	cells     []Cell
	mines     int // distinct mines placed
	visible   int // cells in the Visible state
	flags     int
	moves     int
	showMines bool
	lost      bool
	won       bool
}

// New creates a board with mineCount distinct mines drawn from rng.
// A nil rng falls back to a clock-seeded source.
func New(size, mineCount int, rng Random) (*Board, error) {
	if err := validate(size, mineCount); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRandom(0)
	}

	b := newEmpty(size)

	// Partial Fisher-Yates: the first mineCount slots of the shuffled pool
	// become mines, so every draw lands on a distinct cell.
	pool := make([]int, len(b.cells))
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < mineCount; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
		b.cells[pool[i]].Mine = true
	}
	b.mines = mineCount

	return b, nil
}

// NewWithMines creates a board with mines at exactly the given coordinates.
// Duplicate coordinates collapse into one mine.
func NewWithMines(size int, mines []Coord) (*Board, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: grid size must be positive, got %d", ErrInvalidConfiguration, size)
	}

	b := newEmpty(size)
	for _, m := range mines {
		if !b.InBounds(m.Row, m.Col) {
			return nil, fmt.Errorf("%w: mine %v outside %dx%d grid", ErrInvalidConfiguration, m, size, size)
		}
		c := &b.cells[b.index(m.Row, m.Col)]
		if !c.Mine {
			c.Mine = true
			b.mines++
		}
	}
	return b, nil
}

func validate(size, mineCount int) error {
	if size <= 0 {
		return fmt.Errorf("%w: grid size must be positive, got %d", ErrInvalidConfiguration, size)
	}
	if mineCount < 0 || mineCount > size*size {
		return fmt.Errorf("%w: mine count %d outside [0, %d]", ErrInvalidConfiguration, mineCount, size*size)
	}
	return nil
}

// Validate reports whether New would accept size and mineCount.
func Validate(size, mineCount int) error {
	return validate(size, mineCount)
}

func newEmpty(size int) *Board {
	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

// index converts a row and column to a flat array index.
func (b *Board) index(row, col int) int {
	return row*b.size + col
}

// InBounds returns true if (row, col) lies on the grid.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

func (b *Board) checkBounds(row, col int) error {
	if !b.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) outside [0,%d)", ErrOutOfBounds, row, col, b.size)
	}
	return nil
}

// neighbors calls fn for every cell in the clipped Moore neighborhood of
// (row, col), excluding the cell itself.
func (b *Board) neighbors(row, col int, fn func(r, c int)) {
	r1, r2 := core.Max(0, row-1), core.Min(b.size-1, row+1)
	c1, c2 := core.Max(0, col-1), core.Min(b.size-1, col+1)
	for r := r1; r <= r2; r++ {
		for c := c1; c <= c2; c++ {
			if r == row && c == col {
				continue
			}
			fn(r, c)
		}
	}
}

func (b *Board) countNeighbors(row, col int) int {
	count := 0
	b.neighbors(row, col, func(r, c int) {
		if b.cells[b.index(r, c)].Mine {
			count++
		}
	})
	return count
}

// CountNeighbors returns the number of mines adjacent to (row, col).
func (b *Board) CountNeighbors(row, col int) (int, error) {
	if err := b.checkBounds(row, col); err != nil {
		return 0, err
	}
	return b.countNeighbors(row, col), nil
}

// Reveal uncovers (row, col). Hitting a mine returns Loss and leaves the
// cell untouched; otherwise the cell and, when it has no adjacent mines,
// the surrounding safe region are opened.
//
// Rejected calls (bounds, marked cell, finished game) do not count as moves.
func (b *Board) Reveal(row, col int) (Outcome, error) {
	if err := b.checkBounds(row, col); err != nil {
		return Continue, err
	}
	if b.Finished() {
		return Continue, ErrGameOver
	}
	if b.cells[b.index(row, col)].State == Marker {
		return Continue, fmt.Errorf("%w: (%d,%d)", ErrCellMarked, row, col)
	}

	b.moves++

	if b.cells[b.index(row, col)].Mine {
		b.lost = true
		return Loss, nil
	}

	b.flood(row, col)

	if b.visible == len(b.cells)-b.mines {
		b.won = true
	}
	return Continue, nil
}

// flood opens (row, col) and spreads through zero-count cells using an
// explicit stack. A cell is opened when pushed, so it is pushed at most once.
// Marker cells stop the spread.
func (b *Board) flood(row, col int) {
	b.open(row, col)
	stack := []Coord{At(row, col)}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if b.cells[b.index(cur.Row, cur.Col)].Adjacent != 0 {
			continue
		}
		b.neighbors(cur.Row, cur.Col, func(r, c int) {
			if b.cells[b.index(r, c)].State != Hidden {
				return
			}
			b.open(r, c)
			stack = append(stack, At(r, c))
		})
	}
}

func (b *Board) open(row, col int) {
	c := &b.cells[b.index(row, col)]
	if c.State != Visible {
		b.visible++
	}
	c.State = Visible
	c.Adjacent = b.countNeighbors(row, col)
}

// ToggleMark flags a hidden cell or clears an existing flag.
// Revealed cells cannot be marked.
func (b *Board) ToggleMark(row, col int) error {
	if err := b.checkBounds(row, col); err != nil {
		return err
	}
	if b.Finished() {
		return ErrGameOver
	}

	c := &b.cells[b.index(row, col)]
	switch c.State {
	case Hidden:
		c.State = Marker
		b.flags++
	case Marker:
		c.State = Hidden
		b.flags--
	default:
		return fmt.Errorf("%w: (%d,%d)", ErrCellRevealed, row, col)
	}
	return nil
}

// Glyph returns the display character for (row, col):
// 'X' hidden, '?' marked, ' ' no adjacent mines, '1'-'8' adjacent mine count,
// and '*' for any mine while mine display is enabled.
func (b *Board) Glyph(row, col int) (rune, error) {
	if err := b.checkBounds(row, col); err != nil {
		return 0, err
	}
	return b.glyph(row, col), nil
}

func (b *Board) glyph(row, col int) rune {
	c := b.cells[b.index(row, col)]
	if b.showMines && c.Mine {
		return '*'
	}
	switch c.State {
	case Marker:
		return '?'
	case Visible:
		if c.Adjacent == 0 {
			return ' '
		}
		return rune('0' + c.Adjacent)
	default:
		return 'X'
	}
}

// Cell returns a copy of the cell at (row, col).
func (b *Board) Cell(row, col int) (Cell, error) {
	if err := b.checkBounds(row, col); err != nil {
		return Cell{}, err
	}
	return b.cells[b.index(row, col)], nil
}

// Size returns the grid dimension.
func (b *Board) Size() int {
	return b.size
}

// Mines returns the number of mines on the board.
func (b *Board) Mines() int {
	return b.mines
}

// Moves returns the number of accepted reveals.
func (b *Board) Moves() int {
	return b.moves
}

// Flags returns the number of marked cells.
func (b *Board) Flags() int {
	return b.flags
}

// Remaining returns how many safe cells are still unrevealed.
func (b *Board) Remaining() int {
	return len(b.cells) - b.mines - b.visible
}

// ShowMines reports whether mines are drawn by Glyph.
func (b *Board) ShowMines() bool {
	return b.showMines
}

// SetShowMines enables or disables drawing mines.
func (b *Board) SetShowMines(show bool) {
	b.showMines = show
}

// ToggleShowMines flips the mine display flag.
func (b *Board) ToggleShowMines() {
	b.showMines = !b.showMines
}

// Lost reports whether a mine was revealed.
func (b *Board) Lost() bool {
	return b.lost
}

// Won reports whether every safe cell is visible.
func (b *Board) Won() bool {
	return b.won
}

// Finished reports whether the game has ended either way.
func (b *Board) Finished() bool {
	return b.lost || b.won
}

// String renders the board as size lines of size glyphs.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.size*b.size + b.size)

	for row := 0; row < b.size; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}
		for col := 0; col < b.size; col++ {
			sb.WriteRune(b.glyph(row, col))
		}
	}
	return sb.String()
}
