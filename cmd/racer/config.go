package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-racer/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in racer.yaml. Save it as ~/.racer/configs/racer.yaml
or ./configs/racer.yaml and edit it, or pass any file with --config.
Missing keys keep their defaults.

Examples:
  racer config > ~/.racer/configs/racer.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		//nolint:errcheck // Best-effort write to stdout
		os.Stdout.Write(config.DefaultYAML())
	},
}
