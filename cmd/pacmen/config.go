package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pacmen/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the embedded default configuration as YAML.

Save it to ~/.pacmen/configs/pacmen.yaml or ./configs/pacmen.yaml and edit
the values you want to change; missing keys keep their defaults.

Examples:
  pacmen config > ~/.pacmen/configs/pacmen.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		//nolint:errcheck // Nothing sensible to do if stdout is gone
		cmd.OutOrStdout().Write(config.DefaultYAML())
	},
}
