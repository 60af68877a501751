package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration after the config file search and flag overrides.

Search order:
  1. --config <path>
  2. ~/.minesweeper/config.yaml
  3. ./configs/minesweeper.yaml
  4. built-in defaults

Examples:
  minesweeper config
  minesweeper config --size 16 --mines 40 > ~/.minesweeper/config.yaml
  minesweeper config --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default file instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), flagLogLevel)
	if err != nil {
		return err
	}

	cfg, src, err := resolveConfig(cmd.Flags(), logger)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "# source: %s\n", src); err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
