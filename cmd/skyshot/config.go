package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyshot/internal/config"
)

var flagCheck string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the default game configuration as YAML.

Save it to one of the search locations and edit the values you want to change:
  ~/.skyshot/configs/skyshot.yaml
  ./configs/skyshot.yaml

Use --check to validate a file instead.

Examples:
  skyshot config > ./configs/skyshot.yaml
  skyshot config --check ./configs/skyshot.yaml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Validate this config file and exit")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagCheck == "" {
		os.Stdout.Write(config.GetDefaultYAML()) //nolint:errcheck // stdout write
		return
	}

	cfg, err := config.LoadSkyshot(flagCheck)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s: ok (level %dx%d, %d obstacles)\n",
		flagCheck, cfg.LevelWidth(), cfg.Viewport.Height, cfg.Obstacles.Count)
}
