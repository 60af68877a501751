package mines

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
)

func testConfig(size, mines int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		GridSize: size,
		Mines:    mines,
		Seed:     seed,
		ScreenW:  40,
		ScreenH:  20,
	}
}

// newFixedGame builds a game around a hand-placed layout.
func newFixedGame(t *testing.T, size int, mines ...Coord) *Game {
	t.Helper()
	g := NewGame()
	if err := g.Reset(testConfig(size, 0, 1)); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	g.board = mustBoard(t, size, mines...)
	return g
}

func screenRow(s *core.Screen, y int) string {
	runes := make([]rune, s.Width())
	for x := range runes {
		runes[x] = s.GetCell(x, y).Rune
	}
	return string(runes)
}

func screenText(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = screenRow(s, y)
	}
	return strings.Join(rows, "\n")
}

func step(g *Game, actions ...core.Action) core.GameState {
	return g.Step(core.NewInputFrame(actions...))
}

func TestGameResetInvalid(t *testing.T) {
	g := NewGame()

	err := g.Reset(testConfig(0, 0, 1))
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("Reset() error = %v, expected ErrInvalidConfiguration", err)
	}
	if g.Board() != nil {
		t.Error("failed Reset should not deal a board")
	}
	if s := g.Step(core.NewInputFrame(core.ActionReveal)); s != (core.GameState{}) {
		t.Errorf("Step without board = %+v, expected zero state", s)
	}
}

func TestGameReset(t *testing.T) {
	g := NewGame()
	cfg := testConfig(9, 10, 99)
	cfg.ShowMines = true

	if err := g.Reset(cfg); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	if g.Board().Size() != 9 || g.Board().Mines() != 10 {
		t.Errorf("board = %dx%d with %d mines, expected 9x9 with 10", g.Board().Size(), g.Board().Size(), g.Board().Mines())
	}
	if g.Cursor() != At(4, 4) {
		t.Errorf("Cursor() = %v, expected (4,4)", g.Cursor())
	}
	if !g.Board().ShowMines() {
		t.Error("ShowMines config should carry over to the board")
	}
	if g.ID() != "minesweeper" || g.Title() != "Minesweeper" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
}

func TestGameCursorWraps(t *testing.T) {
	g := newFixedGame(t, 3)
	g.cursor = At(0, 0)

	step(g, core.ActionUp)
	if g.Cursor() != At(2, 0) {
		t.Errorf("after Up from top, Cursor() = %v, expected (2,0)", g.Cursor())
	}
	step(g, core.ActionLeft)
	if g.Cursor() != At(2, 2) {
		t.Errorf("after Left from edge, Cursor() = %v, expected (2,2)", g.Cursor())
	}
	step(g, core.ActionDown)
	step(g, core.ActionRight)
	if g.Cursor() != At(0, 0) {
		t.Errorf("Cursor() = %v, expected (0,0)", g.Cursor())
	}
}

func TestGameRevealAndMark(t *testing.T) {
	g := newFixedGame(t, 3, At(1, 1))
	g.cursor = At(0, 0)

	state := step(g, core.ActionReveal)
	if state.Moves != 1 || state.GameOver {
		t.Errorf("state = %+v, expected 1 move and not over", state)
	}
	if c, _ := g.Board().Cell(0, 0); c.State != Visible {
		t.Errorf("cell (0,0) state = %v, expected Visible", c.State)
	}

	step(g, core.ActionRight, core.ActionMark)
	if c, _ := g.Board().Cell(0, 1); c.State != Marker {
		t.Errorf("cell (0,1) state = %v, expected Marker", c.State)
	}

	step(g, core.ActionReveal)
	if !errors.Is(g.LastError(), ErrCellMarked) {
		t.Errorf("LastError() = %v, expected ErrCellMarked", g.LastError())
	}

	// The next accepted input clears the error.
	step(g, core.ActionLeft)
	if g.LastError() != nil {
		t.Errorf("LastError() = %v, expected nil", g.LastError())
	}
}

func TestGameLoss(t *testing.T) {
	g := newFixedGame(t, 3, At(1, 1), At(2, 2))
	g.cursor = At(1, 1)

	state := step(g, core.ActionReveal)
	if !state.GameOver || state.Won {
		t.Errorf("state = %+v, expected lost", state)
	}
	if !g.Board().ShowMines() {
		t.Error("mines should be shown after a loss")
	}
	if g.exploded == nil || *g.exploded != At(1, 1) {
		t.Errorf("exploded = %v, expected (1,1)", g.exploded)
	}
	if g.Snapshot().State != StateLost {
		t.Errorf("Snapshot().State = %v, expected lost", g.Snapshot().State)
	}

	step(g, core.ActionReveal)
	if g.LastError() != nil {
		t.Errorf("game-over rejection should not be reported, got %v", g.LastError())
	}
}

func TestGameRestart(t *testing.T) {
	g := NewGame()
	if err := g.Reset(testConfig(5, 25, 3)); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	// Restart is ignored while playing.
	first := g.Board()
	step(g, core.ActionRestart)
	if g.Board() != first {
		t.Error("restart should be ignored while the game is running")
	}

	state := step(g, core.ActionReveal)
	if !state.GameOver {
		t.Fatal("a full board should lose on the first reveal")
	}

	state = step(g, core.ActionRestart)
	if state.GameOver || state.Moves != 0 {
		t.Errorf("after restart state = %+v, expected fresh game", state)
	}
	if g.Board() == first {
		t.Error("restart should deal a new board")
	}
	if g.Board().ShowMines() {
		t.Error("restart should hide mines again")
	}
}

func TestGameWin(t *testing.T) {
	g := newFixedGame(t, 3, At(0, 0))
	g.cursor = At(2, 2)

	state := step(g, core.ActionReveal)
	if !state.Won || !state.GameOver {
		t.Errorf("state = %+v, expected won", state)
	}
	if g.Snapshot().State != StateWon {
		t.Errorf("Snapshot().State = %v, expected won", g.Snapshot().State)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := [][]core.Action{
		{core.ActionReveal},
		{core.ActionUp},
		{core.ActionMark},
		{core.ActionLeft},
		{core.ActionLeft},
		{core.ActionReveal},
		{core.ActionDown, core.ActionReveal},
	}

	run := func() Snapshot {
		g := NewGame()
		if err := g.Reset(testConfig(8, 10, 2024)); err != nil {
			t.Fatalf("Reset() failed: %v", err)
		}
		for _, in := range inputs {
			step(g, in...)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed and inputs diverged:\n%+v\n%+v", a, b)
	}
}

func TestGameShowMinesToggle(t *testing.T) {
	g := newFixedGame(t, 3, At(0, 0))

	step(g, core.ActionShowMines)
	if !g.Board().ShowMines() {
		t.Error("ShowMines action should enable mine display")
	}
	if g.Snapshot().Rows[0][0] != '*' {
		t.Errorf("row 0 = %q, expected mine drawn", g.Snapshot().Rows[0])
	}
}

func TestGameRender(t *testing.T) {
	g := newFixedGame(t, 3, At(0, 0))
	g.cursor = At(1, 1)

	screen := core.NewScreen(60, 20)
	g.Render(screen)

	if !strings.Contains(screenRow(screen, 0), "Minesweeper") {
		t.Errorf("title missing, row 0 = %q", screenRow(screen, 0))
	}
	if !strings.Contains(screenRow(screen, 1), "Mines: 1") || !strings.Contains(screenRow(screen, 1), "Moves: 0") {
		t.Errorf("HUD missing, row 1 = %q", screenRow(screen, 1))
	}

	// boardX = (60-9)/2 = 25, cursor cell starts at 25+3
	row := []rune(screenRow(screen, hudHeight+1))
	if string(row[28:31]) != "[X]" {
		t.Errorf("cursor cell = %q, expected \"[X]\"", string(row[28:31]))
	}
	if row[24] != '│' || row[34] != '│' {
		t.Errorf("board row = %q, expected a frame at columns 24 and 34", string(row))
	}
	if c := screen.GetCell(24, hudHeight-1); c.Rune != '┌' {
		t.Errorf("top-left corner = %q, expected '┌'", c.Rune)
	}
	if c := screen.GetCell(34, hudHeight+3); c.Rune != '┘' {
		t.Errorf("bottom-right corner = %q, expected '┘'", c.Rune)
	}
	if screen.GetCell(29, hudHeight+1).Color != core.ColorGray {
		t.Error("hidden cells should be drawn gray")
	}
	if !strings.Contains(screenText(screen), g.Controls()) {
		t.Error("controls hint missing")
	}
}

func TestGameRenderLoss(t *testing.T) {
	g := newFixedGame(t, 3, At(0, 0))
	g.cursor = At(0, 0)
	step(g, core.ActionReveal)

	screen := core.NewScreen(60, 20)
	g.Render(screen)

	if !strings.Contains(screenText(screen), "BANG!!!") {
		t.Error("loss banner missing")
	}
	if c := screen.GetCell(26, hudHeight); c.Rune != '*' || c.Color != core.ColorBrightRed {
		t.Errorf("exploded mine = %+v, expected bright red '*'", c)
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newFixedGame(t, 3)
	g.Resize(8, 5)

	screen := core.NewScreen(8, 5)
	g.Render(screen)

	if !strings.Contains(screenText(screen), "too") {
		t.Errorf("expected too-small message, got %q", screenText(screen))
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("Snapshot().State = %v, expected paused_small_window", g.Snapshot().State)
	}
}

func TestGameIgnoresInputWhenTooSmall(t *testing.T) {
	g := newFixedGame(t, 5)
	g.Resize(4, 4)
	start := g.Cursor()

	state := step(g, core.ActionReveal)
	if state.Moves != 0 || state.GameOver {
		t.Errorf("state = %+v, expected no move while paused", state)
	}
	step(g, core.ActionRight, core.ActionMark)
	if g.Cursor() != start || g.Board().Flags() != 0 {
		t.Errorf("cursor = %v flags = %d, expected input ignored", g.Cursor(), g.Board().Flags())
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("Snapshot().State = %v, expected paused_small_window", g.Snapshot().State)
	}

	g.Resize(60, 20)
	if state := step(g, core.ActionReveal); !state.Won {
		t.Errorf("state = %+v, expected the empty board to be cleared after resize", state)
	}
}
