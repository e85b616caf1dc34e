package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/barigueira/internal/config"
	"github.com/vovakirdan/barigueira/internal/core"
	"github.com/vovakirdan/barigueira/internal/storage"
)

// LauncherChoice is what the player picked in the launcher.
type LauncherChoice int

const (
	ChoiceNone LauncherChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

type launcherItem struct {
	title  string
	choice LauncherChoice
}

// LauncherModel is the Bubble Tea model for the start menu shown before
// the game: play, high scores or quit.
type LauncherModel struct {
	items    []launcherItem
	cursor   int
	width    int
	height   int
	title    string
	best     map[string]int // Best score per difficulty
	config   core.RuntimeConfig
	keys     KeyMap
	scores   key.Binding
	choice   LauncherChoice
	embedded bool
}

// NewLauncherModel creates a launcher for the game with the given id and title.
func NewLauncherModel(store *storage.Store, gameID, title string, cfg core.RuntimeConfig) LauncherModel {
	m := LauncherModel{
		items: []launcherItem{
			{"Play", ChoicePlay},
			{"High Scores", ChoiceScores},
			{"Quit", ChoiceQuit},
		},
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		title:  title,
		best:   make(map[string]int),
		config: cfg,
		keys:   DefaultKeyMap(),
		scores: key.NewBinding(key.WithKeys("tab")),
	}

	if store != nil {
		if stats, err := store.StatsByDifficulty(gameID); err == nil {
			for d, st := range stats {
				m.best[d] = st.HighScore
			}
		}
	}
	return m
}

// Init initializes the launcher model.
func (m LauncherModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the launcher.
func (m LauncherModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m LauncherModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.choose(ChoiceQuit)
	case key.Matches(msg, m.scores):
		return m.choose(ChoiceScores)
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Confirm):
		return m.choose(m.items[m.cursor].choice)
	}

	return m, nil
}

func (m LauncherModel) choose(c LauncherChoice) (tea.Model, tea.Cmd) {
	m.choice = c
	if m.embedded {
		return m, nil
	}
	return m, tea.Quit
}

// View renders the launcher.
func (m LauncherModel) View() string {
	if m.choice != ChoiceNone {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	selected := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("94"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(m.title), m.width))
	b.WriteString("\n\n")

	var best []string
	for _, p := range config.Presets {
		if score, ok := m.best[string(p)]; ok {
			best = append(best, fmt.Sprintf("%s %d", p, score))
		}
	}
	if len(best) > 0 {
		b.WriteString(centerText("Best: "+strings.Join(best, "  "), m.width))
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		line := "  " + item.title
		if i == m.cursor {
			line = selected.Render("> " + item.title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the player picked, ChoiceNone while undecided.
func (m LauncherModel) Choice() LauncherChoice {
	return m.choice
}

// Config returns the current runtime config (may have been updated by resize).
func (m LauncherModel) Config() core.RuntimeConfig {
	return m.config
}

// RunLauncher runs the launcher and returns the choice and the latest
// terminal size.
func RunLauncher(store *storage.Store, gameID, title string, cfg core.RuntimeConfig) (LauncherChoice, core.RuntimeConfig, error) {
	p := tea.NewProgram(NewLauncherModel(store, gameID, title, cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return ChoiceQuit, cfg, err
	}

	m, ok := final.(LauncherModel)
	if !ok || m.Choice() == ChoiceNone {
		return ChoiceQuit, cfg, nil
	}
	return m.Choice(), m.Config(), nil
}
