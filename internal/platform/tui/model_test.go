package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/barigueira/internal/config"
	"github.com/vovakirdan/barigueira/internal/core"
	"github.com/vovakirdan/barigueira/internal/games/barigueira"
	"github.com/vovakirdan/barigueira/internal/storage"
)

var epoch = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

type recordingSink struct {
	events []core.Event
	held   []bool
}

func (s *recordingSink) Handle(events []core.Event) { s.events = append(s.events, events...) }
func (s *recordingSink) Hold(held bool)             { s.held = append(s.held, held) }

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(t *testing.T, cfg config.Config, opts Options) (Model, *barigueira.Game) {
	t.Helper()
	game, err := NewGame(barigueira.ID, cfg)
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	m, err := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 3}, opts)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m, game.(*barigueira.Game)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

// tick sends n ticks spaced by d, starting after the model's last tick.
func tick(t *testing.T, m Model, n int, d time.Duration) Model {
	t.Helper()
	now := m.lastTick
	if now.IsZero() {
		now = epoch
	}
	for i := 0; i < n; i++ {
		now = now.Add(d)
		m, _ = update(t, m, TickMsg(now))
	}
	return m
}

func TestNewGameConfigures(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Session.Duration = 42

	game, err := NewGame(barigueira.ID, cfg)
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	g := game.(*barigueira.Game)
	g.Reset(core.DefaultConfig())
	if _, err := g.StartAt("easy"); err != nil {
		t.Fatal(err)
	}
	if g.Session().Remaining() != 42 {
		t.Errorf("configured duration not applied, remaining %g", g.Session().Remaining())
	}

	if _, err := NewGame("flappy", cfg); err == nil {
		t.Error("NewGame() should fail for unknown games")
	}
}

func TestModelPlaysAndSavesScore(t *testing.T) {
	store := openStore(t)
	cfg := config.DefaultConfig()
	cfg.Session.Duration = 1
	run := storage.NewRunID()
	sink := &recordingSink{}

	m, g := newTestModel(t, cfg, Options{Store: store, Difficulty: "medium", RunID: run, Sound: sink})
	if g.Screen() != barigueira.ScreenPlay {
		t.Fatalf("difficulty option should start playing, got %s", g.Screen())
	}
	if len(sink.events) != 1 || sink.events[0].Type != core.EventSessionStart {
		t.Fatalf("difficulty option should record session_start, got %+v", sink.events)
	}

	m = tick(t, m, 30, 250*time.Millisecond)
	if !m.State().GameOver {
		t.Fatalf("session should be over, state %+v", m.State())
	}

	scores, err := store.TopScores(barigueira.ID, "medium", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].RunID != run || scores[0].Score != m.State().Score {
		t.Fatalf("expected one recorded medium session, got %+v", scores)
	}

	// Further ticks on the end screen record nothing new
	m = tick(t, m, 4, 250*time.Millisecond)
	if scores, _ := store.TopScores(barigueira.ID, "", 10); len(scores) != 1 {
		t.Errorf("ended session recorded %d times", len(scores))
	}

	var countdown, end bool
	for _, e := range sink.events {
		countdown = countdown || e.Type == core.EventCountdownDone
		end = end || e.Type == core.EventSessionEnd
	}
	if !countdown || !end {
		t.Errorf("sound sink missed events: %+v", sink.events)
	}
	if len(sink.held) == 0 {
		t.Error("sound sink should follow the pause state every frame")
	}
}

func TestModelDifficultyRecordsStart(t *testing.T) {
	var buf bytes.Buffer
	sink := &recordingSink{}
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	m, _ := newTestModel(t, config.DefaultConfig(), Options{Difficulty: "hard", User: "ana", Logger: logger, Sound: sink})
	if len(sink.events) != 1 || sink.events[0].Type != core.EventSessionStart {
		t.Fatalf("sound sink should get session_start, got %+v", sink.events)
	}
	if len(sink.held) != 1 || sink.held[0] {
		t.Errorf("sink hold states %v", sink.held)
	}

	out := buf.String()
	if strings.Count(out, "session started") != 1 || !strings.Contains(out, "user=ana") || !strings.Contains(out, "difficulty=hard") {
		t.Errorf("expected one session start log line\n%s", out)
	}
	if m.State().Difficulty != "hard" {
		t.Errorf("state difficulty = %q", m.State().Difficulty)
	}
}

func TestModelKeysAndMouseReachGame(t *testing.T) {
	m, g := newTestModel(t, config.DefaultConfig(), Options{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, 1, 16*time.Millisecond)
	if g.Screen() != barigueira.ScreenMenu {
		t.Fatalf("enter should open the menu, got %s", g.Screen())
	}

	x, y := g.View().Buttons[0].Rect.Center()
	m, _ = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tick(t, m, 1, 16*time.Millisecond)
	if g.Screen() != barigueira.ScreenDifficultySelect {
		t.Fatalf("click on JOGAR should open the difficulty select, got %s", g.Screen())
	}

	// Right clicks are ignored
	x, y = g.View().Buttons[0].Rect.Center()
	m, _ = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	tick(t, m, 1, 16*time.Millisecond)
	if g.Screen() != barigueira.ScreenDifficultySelect {
		t.Errorf("right click should do nothing, got %s", g.Screen())
	}
}

func TestModelQuitKey(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultConfig(), Options{})
	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil || !m.Done() || !m.Quitting() {
		t.Error("q should quit the program")
	}
	if m.View() != "" {
		t.Error("finished model should render nothing")
	}

	em, _ := newTestModel(t, config.DefaultConfig(), Options{Embedded: true})
	em, cmd = update(t, em, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd != nil || !em.Done() {
		t.Error("embedded model should only report done")
	}
}

func TestModelGameExit(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultConfig(), Options{Embedded: true})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, 1, 16*time.Millisecond)
	for i := 0; i < 2; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
		m = tick(t, m, 1, 16*time.Millisecond)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, 1, 16*time.Millisecond)

	if !m.Done() || m.Quitting() || m.Err() != nil {
		t.Errorf("SAIR should finish the game without quit key or error: done %v quitting %v err %v",
			m.Done(), m.Quitting(), m.Err())
	}
}

func TestModelInvalidDifficulty(t *testing.T) {
	game, err := NewGame(barigueira.ID, config.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewModel(game, core.DefaultConfig(), Options{Difficulty: "extreme"}); err == nil {
		t.Error("NewModel() should reject unknown difficulties")
	}
}

func TestModelViewAndResize(t *testing.T) {
	m, g := newTestModel(t, config.DefaultConfig(), Options{})

	out := m.View()
	for _, want := range []string{barigueira.TitleIntro, "INICIAR", "whack slot", "quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("view should contain %q", want)
		}
	}
	if v := g.View(); v.Height != 24 {
		t.Errorf("game should get all rows but the help line, got %d", v.Height)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if v := g.View(); v.Width != 100 || v.Height != 29 {
		t.Errorf("resize not forwarded, game view %dx%d", v.Width, v.Height)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen not resized: %dx%d", m.screen.Width(), m.screen.Height())
	}
}
