package config

import (
	_ "embed"
)

//go:embed defaults/minesweeper.yaml
var defaultYAML []byte

// Default returns the built-in configuration, a beginner 9x9 board.
func Default() MinesConfig {
	return MinesConfig{
		Board: BoardConfig{
			Size:  9,
			Mines: 10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
