package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyshot/internal/config"
	"github.com/vovakirdan/skyshot/internal/core"
	"github.com/vovakirdan/skyshot/internal/games/skyshot"
	"github.com/vovakirdan/skyshot/internal/platform/gui"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a native window",
	Long: `Open a window sized to the viewport (640x480 by default).

Controls:
  Left click  - Shoot at the clicked column
  R           - Restart
  P           - Pause menu
  Esc/Q       - Quit

Logs go to stderr unless --log-file is set.

Examples:
  skyshot window
  skyshot window --scale 2
  skyshot window --config ./my-skyshot.yaml --seed 7`,
	Run: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	windowCmd.Flags().IntVar(&flagScale, "scale", 1, "Window scale factor")
}

func runWindow(_ *cobra.Command, _ []string) {
	if err := useConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, _ := config.LoadSkyshot(flagConfig) // Already validated by useConfig
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	runtime := core.RuntimeConfig{
		ScreenW:  cfg.Viewport.Width,
		ScreenH:  cfg.Viewport.Height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	runErr := gui.Run(skyshot.NewWithConfig(cfg), runtime, gui.Options{Logger: logger, Scale: flagScale})
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
