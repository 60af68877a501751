package shell_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/vovakirdan/tui-minesweeper/internal/games/mines"
	"github.com/vovakirdan/tui-minesweeper/internal/platform/shell"
)

func newBoard(t *testing.T, size int, layout ...mines.Coord) *mines.Board {
	t.Helper()
	b, err := mines.NewWithMines(size, layout)
	if err != nil {
		t.Fatalf("NewWithMines() failed: %v", err)
	}
	return b
}

func run(t *testing.T, b *mines.Board, input string) (shell.Result, string) {
	t.Helper()
	var out bytes.Buffer
	res, err := shell.New(b, strings.NewReader(input), &out, nil).Run()
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	return res, out.String()
}

func TestRunLoss(t *testing.T) {
	b := newBoard(t, 3, mines.At(1, 1))

	res, out := run(t, b, "1 1\nr\n")
	if res != shell.ResultLoss {
		t.Errorf("Run() = %v, expected loss", res)
	}
	if !strings.HasSuffix(out, "XXX\nX*X\nXXX\nMoves: 1\nBANG!!!\n") {
		t.Errorf("unexpected loss output:\n%s", out)
	}
	if !b.ShowMines() {
		t.Error("mines should be shown after a loss")
	}
}

func TestRunWin(t *testing.T) {
	b := newBoard(t, 3, mines.At(0, 0))

	res, out := run(t, b, "2 2\nr\n")
	if res != shell.ResultWin {
		t.Errorf("Run() = %v, expected win", res)
	}
	if !strings.HasSuffix(out, "X1 \n11 \n   \nMoves: 1\nCleared in 1 moves!\n") {
		t.Errorf("unexpected win output:\n%s", out)
	}
}

func TestRunRetriesUnparseableCoordinates(t *testing.T) {
	b := newBoard(t, 3, mines.At(0, 0))

	res, out := run(t, b, "foo\n1\n0 0 0\n\n2 2\nr\n")
	if res != shell.ResultWin {
		t.Errorf("Run() = %v, expected win", res)
	}
	if n := strings.Count(out, shell.PromptCoord); n != 5 {
		t.Errorf("coordinate prompted %d times, expected 5", n)
	}
	// Retrying the coordinate does not reprint the grid.
	if n := strings.Count(out, "Moves: 0"); n != 1 {
		t.Errorf("grid printed %d times before the move, expected 1", n)
	}
}

func TestRunUnknownActionStartsOver(t *testing.T) {
	b := newBoard(t, 3, mines.At(0, 0))

	res, out := run(t, b, "2 2\nx\n2 2\nr\n")
	if res != shell.ResultWin {
		t.Errorf("Run() = %v, expected win", res)
	}
	if n := strings.Count(out, "Moves: 0"); n != 2 {
		t.Errorf("grid printed %d times before the move, expected 2", n)
	}
	if b.Moves() != 1 {
		t.Errorf("Moves() = %d, expected 1", b.Moves())
	}
}

func TestRunActionWords(t *testing.T) {
	b := newBoard(t, 3, mines.At(0, 0))

	res, _ := run(t, b, "0 0\nMark\n2 2\nreveal\n")
	if res != shell.ResultWin {
		t.Errorf("Run() = %v, expected win", res)
	}
	if g, _ := b.Glyph(0, 0); g != '?' {
		t.Errorf("Glyph(0,0) = %q, expected '?'", g)
	}
}

func TestRunReportsRejectedMoves(t *testing.T) {
	b := newBoard(t, 3, mines.At(2, 2))

	res, out := run(t, b, "5 5\nr\n0 0\nm\n0 0\nr\n0 1\nR\n0 1\nm\n")
	if res != shell.ResultQuit {
		t.Errorf("Run() = %v, expected quit at end of input", res)
	}

	for _, want := range []error{mines.ErrOutOfBounds, mines.ErrCellMarked, mines.ErrCellRevealed} {
		if !strings.Contains(out, "Error: "+want.Error()) {
			t.Errorf("output missing %q", want)
		}
	}
	if b.Moves() != 1 {
		t.Errorf("Moves() = %d, expected 1", b.Moves())
	}
	if g, _ := b.Glyph(0, 0); g != '?' {
		t.Errorf("Glyph(0,0) = %q, expected '?'", g)
	}
}

func TestRunQuit(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"at coordinate", "q\n"},
		{"at action", "1 1\nQ\n"},
		{"end of input", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBoard(t, 3, mines.At(1, 1))
			res, _ := run(t, b, tt.input)
			if res != shell.ResultQuit {
				t.Errorf("Run() = %v, expected quit", res)
			}
			if b.Moves() != 0 {
				t.Errorf("Moves() = %d, expected 0", b.Moves())
			}
		})
	}
}

func TestRunEcho(t *testing.T) {
	b := newBoard(t, 1)
	var out bytes.Buffer
	sh := shell.New(b, strings.NewReader("0 0\nr\n"), &out, nil)
	sh.Echo = true

	if _, err := sh.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !strings.Contains(out.String(), shell.PromptCoord+"0 0\n"+shell.PromptAction+"r\n") {
		t.Errorf("input not echoed:\n%s", out.String())
	}
}

func TestRunReadError(t *testing.T) {
	boom := errors.New("boom")
	b := newBoard(t, 3)
	var out bytes.Buffer

	_, err := shell.New(b, iotest.ErrReader(boom), &out, nil).Run()
	if !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, expected %v", err, boom)
	}
}

func TestResultString(t *testing.T) {
	tests := []struct {
		r    shell.Result
		want string
	}{
		{shell.ResultQuit, "quit"},
		{shell.ResultWin, "win"},
		{shell.ResultLoss, "loss"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("Result(%d).String() = %q, expected %q", tt.r, got, tt.want)
		}
	}
}
