// Package config provides YAML-based configuration loading for the
// minesweeper board and display.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/games/mines"
)

// MinesConfig contains all configuration for a minesweeper session.
type MinesConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Display DisplayConfig `yaml:"display"`
	Seed    int64         `yaml:"seed"` // 0 = derive from the clock
}

// BoardConfig defines the grid dimension and mine count.
type BoardConfig struct {
	Size  int `yaml:"size"`
	Mines int `yaml:"mines"`
}

// DisplayConfig defines rendering options.
type DisplayConfig struct {
	ShowMines bool `yaml:"show_mines"`
}

// Validate checks that a board can be built from the configuration.
func (c MinesConfig) Validate() error {
	if err := mines.Validate(c.Board.Size, c.Board.Mines); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Runtime converts the configuration into the runtime parameters used by
// the game and its front-ends.
func (c MinesConfig) Runtime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.GridSize = c.Board.Size
	rc.Mines = c.Board.Mines
	rc.Seed = c.Seed
	rc.ShowMines = c.Display.ShowMines
	return rc
}
