package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/barigueira/internal/config"
	"github.com/vovakirdan/barigueira/internal/core"
	"github.com/vovakirdan/barigueira/internal/logging"
	"github.com/vovakirdan/barigueira/internal/platform"
	"github.com/vovakirdan/barigueira/internal/registry"
	"github.com/vovakirdan/barigueira/internal/storage"
)

// EventSink receives the events of every frame, e.g. a sound player.
type EventSink = platform.Sink

// Options configures a game model.
type Options struct {
	Store      *storage.Store // Optional; finished sessions are recorded here
	Logger     *log.Logger    // Optional; defaults to a discarding logger
	Sound      EventSink      // Optional
	RunID      string         // Groups recorded scores; generated when empty
	User       string         // Shown in logs (SSH user name)
	Difficulty string         // When set, skip the menus and start at this difficulty
	Embedded   bool           // Report Done instead of quitting the program
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model that runs a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	recorder   *platform.Recorder
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	err        error
	quitting   bool
	done       bool
}

// NewGame creates the registered game id and hands it cfg with the
// terminal metrics when it accepts a configuration.
func NewGame(id string, cfg config.Config) (registry.Game, error) {
	game, err := registry.Create(id)
	if err != nil {
		return nil, err
	}
	if c, ok := game.(registry.Configurable); ok {
		c.Configure(cfg, cfg.Layout.Terminal)
	}
	return game, nil
}

// NewModel creates a model for the given game and resets the game.
// cfg holds the full terminal size; the last row is kept for the help line.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) (Model, error) {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.RunID == "" {
		opts.RunID = storage.NewRunID()
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		config: cfg,
		opts:   opts,
		recorder: &platform.Recorder{
			GameID: game.ID(),
			Store:  opts.Store,
			Logger: opts.Logger,
			Sound:  opts.Sound,
			RunID:  opts.RunID,
			User:   opts.User,
		},
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
	m.help.Width = cfg.ScreenW

	game.Reset(m.gameConfig())
	var events []core.Event
	if opts.Difficulty != "" {
		starter, ok := game.(registry.Starter)
		if !ok {
			return m, fmt.Errorf("tui: %s has no difficulty selection", game.ID())
		}
		var err error
		if events, err = starter.StartAt(opts.Difficulty); err != nil {
			return m, err
		}
	}
	m.gameState = game.State()
	if len(events) > 0 {
		m.recorder.Record(m.gameState, events)
	}
	return m, nil
}

// playHeight is the screen height left to the game.
func playHeight(h int) int {
	if h > 1 {
		return h - 1
	}
	return 1
}

func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = playHeight(cfg.ScreenH)
	return cfg
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m.finish()
	case key.Matches(msg, m.keys.Shot):
		m.saveScreenshot()
		return m, nil
	}

	if action := m.keys.Action(msg); action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleMouse maps the left button to pointer presses.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.inputFrame.Press(msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		m.inputFrame.Move(msg.X, msg.Y)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, playHeight(msg.Height))
	} else if !m.gameState.GameOver {
		m.game.Reset(m.gameConfig())
	}

	return m, nil
}

// handleTick advances the game by the real time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now)
	m.lastTick = now

	result := m.game.Step(dt, m.inputFrame)
	m.gameState = result.State
	m.recorder.Record(m.gameState, result.Events)
	m.inputFrame.Clear()

	if m.gameState.Quit {
		if e, ok := m.game.(interface{ Err() error }); ok {
			m.err = e.Err()
		}
		return m.finish()
	}

	return m, tickCmd(m.config.TickRate)
}

// finish ends the program, or just marks the model done when embedded.
func (m Model) finish() (tea.Model, tea.Cmd) {
	m.done = true
	if m.opts.Embedded {
		return m, nil
	}
	return m, tea.Quit
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.done {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Done reports whether the game finished (quit key or the game's own exit).
func (m Model) Done() bool {
	return m.done
}

// Quitting reports whether the player pressed a quit key.
func (m Model) Quitting() bool {
	return m.quitting
}

// Err returns the error that stopped the game, if any.
func (m Model) Err() error {
	return m.err
}

// State returns the latest game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	opts.Embedded = false
	model, err := NewModel(game, cfg, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks and pointer motion
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
