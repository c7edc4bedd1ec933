// skyshot is a side-scrolling shooting game for the terminal and the desktop.
//
// Usage:
//
//	skyshot list              - List available games
//	skyshot play [game]       - Play in the terminal
//	skyshot menu              - Title screen, then play; returns to the title after each game
//	skyshot window            - Play in a native window
//	skyshot serve             - Start SSH server for remote play
//	skyshot config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-file <path>   - Write logs to a file (terminal modes log nowhere by default)
//	--log-level <level> - Minimum log level: debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/skyshot/internal/games/skyshot"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyshot",
	Short: "Skyshot - keep the runner airborne by shooting it from below",
	Long: `Skyshot is a side-scrolling game. A character runs right on its own and
gravity pulls it down. Shots fired from the bottom of the screen make it
jump; obstacles knock it back. Reach the goal three screens away.

Available commands:
  list     - Show all available games
  play     - Play in the terminal
  menu     - Title screen and play loop
  window   - Play in a native window
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  skyshot play
  skyshot play --seed 42 --log-file skyshot.log
  skyshot window --scale 2
  skyshot serve --ssh :2222
  skyshot config > ~/.skyshot/configs/skyshot.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second); physics is tuned for 60")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the session logger. Without --log-file, fallback receives
// the output; terminal modes pass io.Discard so logs never corrupt the screen.
// The returned function closes the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyshot",
		Level:           level,
	})
	return logger, closeFn, nil
}
