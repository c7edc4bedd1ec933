package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyshot/internal/platform/tui"
	"github.com/vovakirdan/skyshot/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Show the title screen, then play",
	Long: `Start with the title screen. Press Enter to play.
Press B after a game ends (or while paused) to return to the title screen.

Examples:
  skyshot menu
  skyshot menu --fps 30
  skyshot menu --config ./my-skyshot.yaml`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := useConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg := terminalConfig()

	// Title loop
	for {
		result, err := tui.RunTitle("Skyshot", cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = result.Config
		if result.Quit {
			break
		}

		game, err := registry.Create("skyshot")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			break
		}

		back, err := tui.Run(game, cfg, tui.Options{Logger: logger})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			break
		}
		if !back {
			break
		}
	}
}
