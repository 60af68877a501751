// Package shell implements the line-based interaction loop: print the grid,
// read a coordinate and an action, apply it to the board.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-minesweeper/internal/games/mines"
)

// Result describes how a session ended.
type Result int

const (
	ResultQuit Result = iota
	ResultWin
	ResultLoss
)

// String returns the result name.
func (r Result) String() string {
	switch r {
	case ResultWin:
		return "win"
	case ResultLoss:
		return "loss"
	default:
		return "quit"
	}
}

// Prompts written before each read.
const (
	PromptCoord  = "Enter row col: "
	PromptAction = "Mark (m) or reveal (r)? "
)

// Shell drives a single board from a line-oriented reader.
type Shell struct {
	board  *mines.Board
	in     *bufio.Scanner
	out    io.Writer
	logger *log.Logger

	// Echo repeats every line read after its prompt, which keeps transcripts
	// readable when input is piped rather than typed.
	Echo bool
}

// New creates a shell over board. A nil logger discards log output.
func New(board *mines.Board, in io.Reader, out io.Writer, logger *log.Logger) *Shell {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Shell{
		board:  board,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

// errQuit ends the session on 'q' or end of input.
var errQuit = errors.New("quit")

// Run plays until the board is lost or won, or the input is exhausted.
// The returned error is non-nil only for I/O failures.
func (s *Shell) Run() (Result, error) {
	for {
		if err := s.printBoard(); err != nil {
			return ResultQuit, err
		}

		pos, err := s.readCoord()
		if err != nil {
			return s.stop(err)
		}

		action, err := s.readAction()
		if err != nil {
			return s.stop(err)
		}

		switch action {
		case "m":
			s.logger.Debug("mark", "cell", pos)
			if err := s.board.ToggleMark(pos.Row, pos.Col); err != nil {
				if err := s.report(err); err != nil {
					return ResultQuit, err
				}
			}

		case "r":
			s.logger.Debug("reveal", "cell", pos)
			out, err := s.board.Reveal(pos.Row, pos.Col)
			if err != nil {
				if err := s.report(err); err != nil {
					return ResultQuit, err
				}
				continue
			}
			if out == mines.Loss {
				return s.lose(pos)
			}
			if s.board.Won() {
				return s.win()
			}
		}
	}
}

func (s *Shell) stop(err error) (Result, error) {
	if errors.Is(err, errQuit) {
		s.logger.Info("session ended", "result", ResultQuit, "moves", s.board.Moves())
		return ResultQuit, nil
	}
	return ResultQuit, err
}

func (s *Shell) lose(pos mines.Coord) (Result, error) {
	s.board.SetShowMines(true)
	s.logger.Info("session ended", "result", ResultLoss, "moves", s.board.Moves(), "cell", pos)
	if err := s.printBoard(); err != nil {
		return ResultLoss, err
	}
	_, err := fmt.Fprintln(s.out, "BANG!!!")
	return ResultLoss, err
}

func (s *Shell) win() (Result, error) {
	s.logger.Info("session ended", "result", ResultWin, "moves", s.board.Moves())
	if err := s.printBoard(); err != nil {
		return ResultWin, err
	}
	_, err := fmt.Fprintf(s.out, "Cleared in %d moves!\n", s.board.Moves())
	return ResultWin, err
}

func (s *Shell) report(err error) error {
	s.logger.Debug("move rejected", "err", err)
	_, werr := fmt.Fprintf(s.out, "Error: %v\n", err)
	return werr
}

func (s *Shell) printBoard() error {
	_, err := fmt.Fprintf(s.out, "%s\nMoves: %d\n", s.board, s.board.Moves())
	return err
}

// readCoord prompts until a line holds exactly two integers.
func (s *Shell) readCoord() (mines.Coord, error) {
	for {
		line, err := s.readLine(PromptCoord)
		if err != nil {
			return mines.Coord{}, err
		}
		if pos, ok := parseCoord(line); ok {
			return pos, nil
		}
		s.logger.Debug("unparseable coordinate", "input", line)
	}
}

// readAction returns "m" or "r" from the first letter of the answer, so
// "mark" and "reveal" work too. Any other answer yields an empty action so
// the caller starts over from the grid.
func (s *Shell) readAction() (string, error) {
	line, err := s.readLine(PromptAction)
	if err != nil {
		return "", err
	}
	if line == "" {
		return "", nil
	}
	switch a := strings.ToLower(line[:1]); a {
	case "m", "r":
		return a, nil
	default:
		return "", nil
	}
}

func (s *Shell) readLine(prompt string) (string, error) {
	if _, err := io.WriteString(s.out, prompt); err != nil {
		return "", err
	}
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errQuit
	}
	line := strings.TrimSpace(s.in.Text())
	if s.Echo {
		if _, err := fmt.Fprintln(s.out, line); err != nil {
			return "", err
		}
	}
	if strings.EqualFold(line, "q") {
		return "", errQuit
	}
	return line, nil
}

func parseCoord(line string) (mines.Coord, bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return mines.Coord{}, false
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return mines.Coord{}, false
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return mines.Coord{}, false
	}
	return mines.At(row, col), true
}
