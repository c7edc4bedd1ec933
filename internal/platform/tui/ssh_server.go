package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/skyshot/internal/core"
	"github.com/vovakirdan/skyshot/internal/registry"
)

const shutdownTimeout = 10 * time.Second

// SSHServerConfig configures the skyshot SSH server.
type SSHServerConfig struct {
	Address     string        // host:port to listen on
	HostKeyPath string        // Empty means ~/.skyshot/host_key, created on first start
	GameID      string        // Registered game every session plays
	TickRate    int           // Simulation rate for every session
	IdleTimeout time.Duration // Connections idle this long are closed
}

// DefaultSSHServerConfig returns the settings used by `skyshot serve` without flags.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		GameID:      "skyshot",
		TickRate:    60,
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer serves one independent game per SSH session.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	logger *log.Logger
}

// NewSSHServer validates cfg and builds the Wish server. It does not listen yet.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if !registry.Exists(cfg.GameID) {
		return nil, fmt.Errorf("tui: unknown game %q", cfg.GameID)
	}

	hostKeyPath, err := resolveHostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	srv := &SSHServer{
		config: cfg,
		logger: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "skyshot-ssh",
		}),
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// resolveHostKeyPath picks the key location and makes sure its directory exists.
// Wish generates the key itself when the file is missing.
func resolveHostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".skyshot", "host_key")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: cannot create host key directory: %w", err)
	}
	return path, nil
}

// teaHandler starts a session on the title screen, sized to the client's PTY.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
	}

	logger := s.logger.With("user", sshSession.User())
	model := NewSessionModel(s.config.GameID, cfg, logger)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware records when each connection opens and closes.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		logger := s.logger.With(
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)

		logger.Info("session started")
		next(sshSession)
		logger.Info("session ended", "duration", time.Since(start).Round(time.Second))
	}
}

// ListenAndServe blocks until SIGINT/SIGTERM or a listener error.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "game", s.config.GameID)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down...")
		return s.Shutdown()
	case err := <-errCh:
		s.logger.Error("server error", "error", err)
		return fmt.Errorf("tui: ssh server: %w", err)
	}
}

// Shutdown waits up to ten seconds for open sessions to finish.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModel is one SSH client: title screen, then a game, then back to
// the title. It keeps a tally of the runs the client has played.
type SessionModel struct {
	gameID   string
	config   core.RuntimeConfig
	logger   *log.Logger
	title    TitleModel
	game     *Model
	runs     int
	clears   int
	best     int
	quitting bool
}

// NewSessionModel creates a session that plays gameID.
func NewSessionModel(gameID string, cfg core.RuntimeConfig, logger *log.Logger) SessionModel {
	return SessionModel{
		gameID: gameID,
		config: cfg,
		logger: logger,
		title:  NewTitleModel(titleFor(gameID), cfg),
	}
}

// titleFor looks up the display title of a registered game.
func titleFor(gameID string) string {
	if title, ok := registry.Title(gameID); ok {
		return title
	}
	return gameID
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.title.Init()
}

// Update routes msg to the title screen or the running game.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateTitle(msg)
}

func (m SessionModel) updateTitle(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The title model quits its program when a choice is made; here the
	// choice is read from its state and the quit command is dropped.
	next, _ := m.title.Update(msg)
	if title, ok := next.(TitleModel); ok {
		m.title = title
	}

	switch {
	case m.title.IsQuitting():
		return m.quit()

	case m.title.Started():
		game, err := registry.Create(m.gameID)
		if err != nil {
			m.logger.Error("cannot create game", "error", err)
			return m.quit()
		}

		m.config.Seed = time.Now().UnixNano()
		model := NewModel(game, m.config, Options{Logger: m.logger})
		m.game = &model
		return m, m.game.Init()
	}

	return m, nil
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if model, ok := next.(Model); ok {
		m.game = &model
	}

	switch {
	case m.game.BackToMenu():
		m.record(m.game.LastState())
		m.game = nil
		m.title = NewTitleModel(titleFor(m.gameID), m.config).WithStatus(m.summary())
		return m, m.title.Init()

	case m.game.IsQuitting():
		m.record(m.game.LastState())
		return m.quit()
	}

	return m, cmd
}

// record adds a finished (or abandoned) run to the session tally.
func (m *SessionModel) record(state core.GameState) {
	m.runs++
	if state.Won {
		m.clears++
	}
	m.best = max(m.best, state.Score)
}

func (m SessionModel) summary() string {
	return fmt.Sprintf("Runs: %d  Clears: %d  Best: %d%%", m.runs, m.clears, m.best)
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.runs > 0 {
		m.logger.Info("session summary", "runs", m.runs, "clears", m.clears, "best", m.best)
	}
	return m, tea.Quit
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.game != nil {
		return m.game.View()
	}
	return m.title.View()
}
