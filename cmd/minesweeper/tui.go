package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-minesweeper/internal/platform/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play in the full-screen terminal UI",
	Long: `Start the full-screen game.

Controls:
  Arrows/HJKL   - Move the cursor
  Space/Enter   - Reveal
  F/M           - Mark or unmark
  S             - Toggle mine display
  R             - New game (after the game ends)
  ?             - Toggle full help
  Q/Ctrl+C      - Quit

Logs are written only when --log-file is set.

Examples:
  minesweeper tui
  minesweeper tui --size 16 --mines 40
  minesweeper tui --log-file /tmp/mines.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, _ []string) error {
	w, closeLog, err := logWriter(io.Discard)
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

	rc := cfg.Runtime()
	if width, height, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = width
		rc.ScreenH = height
	}

	if err := tui.Run(rc, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
