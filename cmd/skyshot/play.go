package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyshot/internal/config"
	"github.com/vovakirdan/skyshot/internal/core"
	"github.com/vovakirdan/skyshot/internal/games/skyshot"
	"github.com/vovakirdan/skyshot/internal/platform/tui"
	"github.com/vovakirdan/skyshot/internal/registry"
)

var (
	flagConfig string
	flagWatch  bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. The game defaults to skyshot.

Controls:
  Mouse click  - Shoot at the clicked column
  Space/Up     - Shoot ahead of the character
  R            - Restart (any time)
  P/Esc        - Pause
  Ctrl+S       - Save a text screenshot to ~/.skyshot/screenshots
  Q/Ctrl+C     - Quit

Config is read from --config, ~/.skyshot/configs/skyshot.yaml or
./configs/skyshot.yaml, falling back to built-in defaults. With --watch,
edits to that file apply on the next restart.

Examples:
  skyshot play
  skyshot play --seed 42
  skyshot play --config ./my-skyshot.yaml --watch
  skyshot play --log-file skyshot.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "skyshot"
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'skyshot list' to see available games.")
		os.Exit(1)
	}

	if err := run(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(gameID string) error {
	if err := useConfig(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := tui.Options{Logger: logger}
	if flagWatch {
		w, watchErr := startWatcher(logger)
		if watchErr != nil {
			return watchErr
		}
		defer w.Close()
		opts.Reloads = w.Reloads
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if _, err := tui.Run(game, terminalConfig(), opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// useConfig rejects a broken --config file up front, then hands the path to the game.
func useConfig() error {
	if flagConfig != "" {
		if _, err := config.LoadSkyshot(flagConfig); err != nil {
			return err
		}
	}
	skyshot.SetConfigPath(flagConfig)
	return nil
}

// startWatcher watches the config file the game will load.
func startWatcher(logger *log.Logger) (*config.Watcher, error) {
	path := config.ResolvePath(flagConfig)
	if path == "" {
		return nil, fmt.Errorf("--watch needs a config file; pass --config or create ./configs/%s", config.FileName)
	}

	w, err := config.NewWatcher(path)
	if err != nil {
		return nil, err
	}
	logger.Info("watching config", "path", w.Path())
	return w, nil
}

// terminalConfig builds the runtime config from the terminal size and global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
