package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
)

// resolveConfig loads the config file, applies the flags the user set and
// validates the result. It also returns where the file settings came from.
// Skipped config files are reported through logger.
func resolveConfig(flags *pflag.FlagSet, logger *log.Logger) (config.MinesConfig, string, error) {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return config.MinesConfig{}, "", err
	}
	for _, sk := range loaded.Skipped {
		logger.Warn("skipping config file", "path", sk.Path, "err", sk.Err)
	}

	cfg := loaded.Config
	if flags.Changed("size") {
		cfg.Board.Size = flagSize
	}
	if flags.Changed("mines") {
		cfg.Board.Mines = flagMines
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("show-mines") {
		cfg.Display.ShowMines = flagShowMines
	}

	if err := cfg.Validate(); err != nil {
		return config.MinesConfig{}, "", fmt.Errorf("%s: %w", loaded.Source, err)
	}
	logger.Debug("config loaded", "source", loaded.Source, "size", cfg.Board.Size, "mines", cfg.Board.Mines, "seed", cfg.Seed)
	return cfg, loaded.Source, nil
}

// newLogger builds the command logger writing to w.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "minesweeper",
	})
	logger.SetLevel(lvl)
	return logger, nil
}

// logWriter returns the --log-file destination, or fallback when unset.
func logWriter(fallback io.Writer) (io.Writer, func() error, error) {
	if flagLogFile == "" {
		return fallback, func() error { return nil }, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", flagLogFile, err)
	}
	return f, f.Close, nil
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
