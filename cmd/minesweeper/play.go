package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minesweeper/internal/games/mines"
	"github.com/vovakirdan/tui-minesweeper/internal/platform/shell"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the line-based shell",
	Long: `Play on stdin/stdout. Each turn prints the grid, then asks for a
coordinate and an action.

  Enter row col:           two numbers, 0-based (q quits)
  Mark (m) or reveal (r)?  m toggles a flag, r opens the cell

Glyphs:
  X  hidden      ?  marked     1-8  neighbouring mines
  *  mine (shown after a loss or with --show-mines)

Examples:
  minesweeper play
  minesweeper play --size 5 --mines 3 --seed 7
  printf '0 0\nr\n' | minesweeper play --size 3 --mines 0`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	w, closeLog, err := logWriter(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close of the log file

	logger, err := newLogger(w, flagLogLevel)
	if err != nil {
		return err
	}

	cfg, _, err := resolveConfig(cmd.Flags(), logger)
	if err != nil {
		return err
	}

	board, err := mines.New(cfg.Board.Size, cfg.Board.Mines, mines.NewRandom(cfg.Seed))
	if err != nil {
		return err
	}
	board.SetShowMines(cfg.Display.ShowMines)

	in := cmd.InOrStdin()
	sh := shell.New(board, in, cmd.OutOrStdout(), logger)
	sh.Echo = !isTerminal(in)

	result, err := sh.Run()
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	logger.Debug("shell finished", "result", result)
	return nil
}
