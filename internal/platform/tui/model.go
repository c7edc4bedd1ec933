package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyshot/internal/config"
	"github.com/vovakirdan/skyshot/internal/core"
	"github.com/vovakirdan/skyshot/internal/registry"
)

// Reconfigurable is implemented by games that accept a new configuration
// while running.
type Reconfigurable interface {
	ApplyConfig(cfg config.SkyshotConfig)
}

// Resizer is implemented by games that track the screen size without
// restarting.
type Resizer interface {
	Resize(width, height int)
}

// Options configure a game session.
type Options struct {
	// Logger receives session events. Nil discards them.
	Logger *log.Logger

	// Reloads delivers config changes from a config.Watcher. Optional.
	Reloads <-chan config.Reload

	// ScreenshotDir overrides ~/.skyshot/screenshots.
	ScreenshotDir string
}

// ConfigReloadMsg carries a config change into the Bubble Tea loop.
type ConfigReloadMsg config.Reload

// waitForReload returns a command that delivers the next config change,
// or nil when there is no reload source.
func waitForReload(ch <-chan config.Reload) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return ConfigReloadMsg(r)
	}
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	logger     *log.Logger
	reloads    <-chan config.Reload
	shotDir    string
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		logger:     logger,
		reloads:    opts.Reloads,
		shotDir:    opts.ScreenshotDir,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.config)
	m.logger.Info("episode started", "game", m.game.ID(), "seed", m.config.Seed,
		"screen", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))

	// Start the tick loop
	return tea.Batch(tickCmd(m.config.TickRate), waitForReload(m.reloads))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case ConfigReloadMsg:
		return m.handleReload(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		// Back only leaves a finished or paused episode
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			return m, tea.Quit
		}
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The game keeps running; only the cell mapping changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState
	restart := m.inputFrame.Has(core.ActionRestart)

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logTransition(prev, restart)

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// logTransition records episode ends, restarts and pause changes.
func (m Model) logTransition(prev core.GameState, restart bool) {
	cur := m.gameState

	if restart {
		m.logger.Info("episode restarted", "game", m.game.ID(), "previous_score", prev.Score)
	}

	if cur.GameOver && (!prev.GameOver || restart) {
		outcome := "gameover"
		if cur.Won {
			outcome = "clear"
		}
		m.logger.Info("episode ended", "game", m.game.ID(), "state", outcome, "score", cur.Score)
	}

	if cur.Paused != prev.Paused && !restart {
		m.logger.Debug("pause toggled", "paused", cur.Paused)
	}
}

// handleReload applies a changed config file. It takes effect on the next restart.
func (m Model) handleReload(msg ConfigReloadMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("config reload failed", "error", msg.Err)
		return m, waitForReload(m.reloads)
	}

	if rc, ok := m.game.(Reconfigurable); ok {
		rc.ApplyConfig(msg.Config)
		m.logger.Info("config reloaded, applies on restart", "game", m.game.ID())
	}

	return m, waitForReload(m.reloads)
}

// screenshotDir returns the directory screenshots are written to.
func (m Model) screenshotDir() (string, error) {
	if m.shotDir != "" {
		return m.shotDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot get home directory: %w", err)
	}
	return filepath.Join(home, ".skyshot", "screenshots"), nil
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	dir, err := m.screenshotDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// LastState returns the game state seen on the most recent tick.
func (m Model) LastState() core.GameState {
	return m.gameState
}

// BackToMenu returns true if the user requested the title screen.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
// It reports whether the user asked to return to the title screen.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (bool, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse clicks shoot
	)

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: run %s: %w", game.ID(), err)
	}

	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}
