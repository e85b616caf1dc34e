package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/barigueira/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game configuration",
	Long: `Print the built-in configuration as YAML. Save it to
~/.arcade/configs/barigueira.yaml or pass a copy with --config to tune
timers, difficulties and layout.

Examples:
  barigueira config > ~/.arcade/configs/barigueira.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
