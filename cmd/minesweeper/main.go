// minesweeper is a terminal minesweeper with a line-based shell and a
// full-screen UI.
//
// Usage:
//
//	minesweeper play      - Play in the line-based shell on stdin/stdout
//	minesweeper tui       - Play in the full-screen terminal UI
//	minesweeper config    - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>    - Config file (default search: ~/.minesweeper, ./configs)
//	--size <n>         - Grid dimension
//	--mines <n>        - Number of mines
//	--seed <value>     - RNG seed (0 = random based on time)
//	--show-mines       - Draw mines from the start
//	--log-level <lvl>  - debug, info, warn, error
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig    string
	flagSize      int
	flagMines     int
	flagSeed      int64
	flagShowMines bool
	flagLogLevel  string
	flagLogFile   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minesweeper",
	Short: "Minesweeper in your terminal",
	Long: `Minesweeper clears a square grid of hidden cells without touching a mine.
Revealed cells show how many of their eight neighbours hold mines; cells with
no neighbouring mines open up the whole surrounding region.

Available commands:
  play     - Line-based game: type "row col", then m to mark or r to reveal
  tui      - Full-screen game driven by the keyboard
  config   - Show the effective configuration

Examples:
  minesweeper play
  minesweeper play --size 16 --mines 40
  minesweeper tui --seed 42
  minesweeper config --config ./my-board.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagConfig, "config", "", "Path to config YAML")
	flags.IntVar(&flagSize, "size", 0, "Grid dimension (overrides config)")
	flags.IntVar(&flagMines, "mines", 0, "Number of mines (overrides config)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.BoolVar(&flagShowMines, "show-mines", false, "Show mines from the start")
	flags.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	flags.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(configCmd)
}
