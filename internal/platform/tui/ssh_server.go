package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/barigueira/internal/config"
	"github.com/vovakirdan/barigueira/internal/core"
	"github.com/vovakirdan/barigueira/internal/logging"
	"github.com/vovakirdan/barigueira/internal/registry"
	"github.com/vovakirdan/barigueira/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.arcade/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// GameID selects the registered game served to every connection.
	GameID string

	// Game is the game configuration handed to every new game.
	Game config.Config

	TickRate int
	Seed     int64

	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      storage.DefaultPath,
		IdleTimeout: 30 * time.Minute,
		GameID:      "barigueira",
		Game:        config.DefaultConfig(),
		TickRate:    60,
	}
}

// SSHServer wraps a Wish SSH server that serves the game.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		var err error
		logger, _, err = logging.New(logging.Options{Prefix: "barigueira-ssh"})
		if err != nil {
			return nil, err
		}
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if !registry.Exists(cfg.GameID) {
		return nil, fmt.Errorf("unknown game %q", cfg.GameID)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".arcade", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
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
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
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
		Seed:     s.config.Seed,
	}

	runID := storage.NewRunID()
	model := NewSessionModel(SessionConfig{
		Store:   s.store,
		Runtime: cfg,
		GameID:  s.config.GameID,
		Game:    s.config.Game,
		User:    sshSession.User(),
		RunID:   runID,
		Logger:  s.logger.With("run", runID),
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe serves until ctx is cancelled or the listener fails,
// then shuts the server down.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("starting SSH server", "address", s.config.Address)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("ssh server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("shutting down...")
		return s.Shutdown()
	})

	return g.Wait()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
		s.store = nil
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

type sessionMode int

const (
	modeLauncher sessionMode = iota
	modeGame
	modeScores
)

// SessionConfig configures one SSH session.
type SessionConfig struct {
	Store   *storage.Store
	Runtime core.RuntimeConfig
	GameID  string
	Game    config.Config
	User    string
	RunID   string
	Logger  *log.Logger
}

// SessionModel manages the full session flow: launcher -> game or
// scores -> launcher. This is the top-level model used for SSH sessions.
type SessionModel struct {
	cfg      SessionConfig
	title    string
	mode     sessionMode
	launcher LauncherModel
	scores   ScoreboardModel
	game     *Model
	err      error
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg SessionConfig) SessionModel {
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard()
	}
	if cfg.RunID == "" {
		cfg.RunID = storage.NewRunID()
	}

	title := cfg.GameID
	if g, err := registry.Create(cfg.GameID); err == nil {
		title = g.Title()
	}

	m := SessionModel{cfg: cfg, title: title}
	m.launcher = m.newLauncher()
	return m
}

func (m SessionModel) newLauncher() LauncherModel {
	l := NewLauncherModel(m.cfg.Store, m.cfg.GameID, m.title, m.cfg.Runtime)
	l.embedded = true
	return l
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.launcher.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.cfg.Runtime.ScreenW = wsm.Width
		m.cfg.Runtime.ScreenH = wsm.Height
	}

	switch m.mode {
	case modeGame:
		return m.updateGame(msg)
	case modeScores:
		return m.updateScores(msg)
	default:
		return m.updateLauncher(msg)
	}
}

// updateLauncher handles updates when in launcher mode.
func (m SessionModel) updateLauncher(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.launcher.Update(msg)
	if l, ok := next.(LauncherModel); ok {
		m.launcher = l
	}

	switch m.launcher.Choice() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoiceScores:
		m.scores = NewScoreboardModel(m.cfg.Store, m.cfg.GameID, m.title, "", m.cfg.Runtime.ScreenW, m.cfg.Runtime.ScreenH)
		m.scores.embedded = true
		m.mode = modeScores
		return m, m.scores.Init()

	case ChoicePlay:
		game, err := NewGame(m.cfg.GameID, m.cfg.Game)
		if err != nil {
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		gm, err := NewModel(game, m.cfg.Runtime, Options{
			Store:    m.cfg.Store,
			Logger:   m.cfg.Logger,
			RunID:    m.cfg.RunID,
			User:     m.cfg.User,
			Embedded: true,
		})
		if err != nil {
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		m.game = &gm
		m.mode = modeGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(Model); ok {
		m.game = &gm
	}

	if !m.game.Done() {
		return m, cmd
	}

	if err := m.game.Err(); err != nil {
		m.cfg.Logger.Error("game stopped", "user", m.cfg.User, "error", err)
		m.err = err
	}
	if m.game.Quitting() || m.err != nil {
		m.quitting = true
		return m, tea.Quit
	}

	// The game's own exit button returns to the launcher
	m.game = nil
	m.mode = modeLauncher
	m.launcher = m.newLauncher()
	return m, m.launcher.Init()
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scores = sb
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		m.mode = modeLauncher
		m.launcher = m.newLauncher()
		return m, m.launcher.Init()
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeGame:
		return m.game.View()
	case modeScores:
		return m.scores.View()
	default:
		return m.launcher.View()
	}
}

// Err returns the error that ended the session, if any.
func (m SessionModel) Err() error {
	return m.err
}
