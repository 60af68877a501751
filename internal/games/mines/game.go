package mines

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
)

// Game wraps a Board with a cursor so it can be driven by discrete actions
// from an interactive front-end.
type Game struct {
	cfg    core.RuntimeConfig
	rng    *rand.Rand
	board  *Board
	cursor Coord

	// Screen dimensions
	screenW int
	screenH int

	exploded *Coord // mine that ended the game, if any
	lastErr  error  // most recent rejected action, cleared on the next step
	tooSmall bool
}

// NewGame creates an idle game. Reset must be called before use.
func NewGame() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "minesweeper"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Minesweeper"
}

// Reset seeds the generator from cfg and deals a fresh board.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	if err := Validate(cfg.GridSize, cfg.Mines); err != nil {
		return err
	}
	g.cfg = cfg
	g.rng = NewRandom(cfg.Seed)
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	return g.deal()
}

// deal replaces the board using the existing generator, so a restarted
// game continues the seeded sequence instead of repeating the layout.
func (g *Game) deal() error {
	b, err := New(g.cfg.GridSize, g.cfg.Mines, g.rng)
	if err != nil {
		return err
	}
	b.SetShowMines(g.cfg.ShowMines)

	g.board = b
	g.cursor = At(b.Size()/2, b.Size()/2)
	g.exploded = nil
	g.lastErr = nil
	return nil
}

// Resize records new screen dimensions.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	if g.cfg.GridSize == 0 {
		g.tooSmall = false
		return
	}
	minW, minH := boardWidth(g.cfg.GridSize)+2, g.cfg.GridSize+hudHeight+footerHeight
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step applies one frame of input and returns the resulting state.
func (g *Game) Step(in core.InputFrame) core.GameState {
	if g.board == nil || in.Empty() {
		return g.State()
	}

	// Paused until the window can show the whole board.
	if g.tooSmall {
		return g.State()
	}
	g.lastErr = nil

	if in.Has(core.ActionRestart) && g.board.Finished() {
		g.lastErr = g.deal()
		return g.State()
	}

	if in.Has(core.ActionShowMines) {
		g.board.ToggleShowMines()
	}

	size := g.board.Size()
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row = core.Wrap(g.cursor.Row-1, size)
	case in.Has(core.ActionDown):
		g.cursor.Row = core.Wrap(g.cursor.Row+1, size)
	case in.Has(core.ActionLeft):
		g.cursor.Col = core.Wrap(g.cursor.Col-1, size)
	case in.Has(core.ActionRight):
		g.cursor.Col = core.Wrap(g.cursor.Col+1, size)
	}

	switch {
	case in.Has(core.ActionReveal):
		g.reveal()
	case in.Has(core.ActionMark):
		g.lastErr = g.board.ToggleMark(g.cursor.Row, g.cursor.Col)
	}

	return g.State()
}

func (g *Game) reveal() {
	out, err := g.board.Reveal(g.cursor.Row, g.cursor.Col)
	if err != nil {
		g.lastErr = err
		return
	}
	if out == Loss {
		hit := g.cursor
		g.exploded = &hit
		g.board.SetShowMines(true)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.board == nil {
		return core.GameState{}
	}
	return core.GameState{
		Moves:    g.board.Moves(),
		Won:      g.board.Won(),
		GameOver: g.board.Finished(),
	}
}

// Board exposes the underlying engine.
func (g *Game) Board() *Board {
	return g.board
}

// Cursor returns the currently selected cell.
func (g *Game) Cursor() Coord {
	return g.cursor
}

// LastError returns the error from the most recent rejected action, or nil.
// Game-over rejections are not reported; the end banner already covers them.
func (g *Game) LastError() error {
	if errors.Is(g.lastErr, ErrGameOver) {
		return nil
	}
	return g.lastErr
}
