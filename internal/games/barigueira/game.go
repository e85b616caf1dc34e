// Package barigueira implements Barigueira Attack, a whack-a-mole game set
// in Curitiba's Parque Barigui. Capybaras pop out of fixed slots and the
// player clicks them before they hide again; the cutia costs points and,
// on Hard, brings a rain that keeps everyone in their burrows.
package barigueira

import (
	"time"

	"github.com/vovakirdan/barigueira/internal/config"
	"github.com/vovakirdan/barigueira/internal/core"
	"github.com/vovakirdan/barigueira/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "barigueira"

// Game drives the screen dispatcher and the session loop.
type Game struct {
	cfg         config.Config
	metrics     config.Metrics
	runtime     core.RuntimeConfig
	randFactory RandFactory

	session *Session
	screen  Screen

	focus         int
	keyboardFocus bool
	pointer       core.Pointer

	quit bool
	err  error
}

// New creates a game with the built-in configuration and terminal metrics.
func New() *Game {
	cfg := config.DefaultConfig()
	return NewWithConfig(cfg, cfg.Layout.Terminal)
}

// NewWithConfig creates a game using cfg and the given layout metrics.
func NewWithConfig(cfg config.Config, m config.Metrics) *Game {
	g := &Game{randFactory: NewRand}
	g.Configure(cfg, m)
	g.Reset(core.DefaultConfig())
	return g
}

// Configure replaces the configuration. It takes effect on the next Reset.
func (g *Game) Configure(cfg config.Config, m config.Metrics) {
	g.cfg = cfg
	g.metrics = m
}

// SetRandFactory replaces the random source used by new sessions.
func (g *Game) SetRandFactory(f RandFactory) {
	if f == nil {
		return
	}
	g.randFactory = f
	if g.session != nil {
		g.session.SetRandFactory(f)
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Barigueira Attack!"
}

// Reset returns to the intro screen and drops any running session.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.session = NewSession(g.cfg, g.layout())
	g.session.SetRandFactory(g.randFactory)
	g.screen = ScreenIntro
	g.focus = 0
	g.keyboardFocus = false
	g.pointer = core.Pointer{}
	g.quit = false
	g.err = nil
}

// Resize updates the screen size. A running session keeps its slot
// geometry; the next session is laid out for the new size.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.session.SetLayout(g.layout())
}

func (g *Game) layout() Layout {
	return NewLayout(g.metrics, g.runtime.ScreenW, g.runtime.ScreenH)
}

// Step advances the game by one frame of dt real time.
func (g *Game) Step(dt time.Duration, in core.InputFrame) core.StepResult {
	if g.quit {
		return core.StepResult{State: g.State()}
	}

	g.pointer.X, g.pointer.Y = in.Pointer.X, in.Pointer.Y
	if in.Pointer.Pressed {
		g.keyboardFocus = false
	}

	var events []core.Event

	switch g.screen {
	case ScreenPlay:
		if !g.session.Ended() {
			// Session update runs before the pause check in the same frame
			events = g.session.Update(dt.Seconds(), g.playPointer(in))
			if in.Has(core.ActionPause) || in.Pointer.Inside(g.layout().PauseButton()) {
				events = append(events, g.activate(ButtonPause)...)
			}
			break
		}
		if in.Has(core.ActionRestart) {
			events = g.activate(ButtonRestart)
			break
		}
		events = g.handleButtons(in)

	case ScreenPause:
		if in.Has(core.ActionPause) || in.Has(core.ActionBack) {
			events = g.activate(ButtonContinue)
			break
		}
		if in.Has(core.ActionRestart) {
			events = g.activate(ButtonRestart)
			break
		}
		events = g.handleButtons(in)

	default:
		if in.Has(core.ActionBack) {
			if _, ok := Next(g.screen, ButtonBack); ok {
				events = g.activate(ButtonBack)
				break
			}
		}
		events = g.handleButtons(in)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// playPointer turns a slot key into a press at that slot's centre.
func (g *Game) playPointer(in core.InputFrame) core.Pointer {
	slots := g.session.slots
	for i, a := range core.SlotActions {
		if i >= len(slots) {
			break
		}
		if in.Has(a) {
			x, y := slots[i].Rect.Center()
			return core.Pointer{X: x, Y: y, Pressed: true}
		}
	}
	return in.Pointer
}

// handleButtons moves keyboard focus and activates pressed buttons.
func (g *Game) handleButtons(in core.InputFrame) []core.Event {
	buttons := g.buttons()
	n := len(buttons)
	if n == 0 {
		return nil
	}
	if g.focus >= n {
		g.focus = 0
	}

	if in.Has(core.ActionUp) {
		g.focus = (g.focus - 1 + n) % n
		g.keyboardFocus = true
	}
	if in.Has(core.ActionDown) {
		g.focus = (g.focus + 1) % n
		g.keyboardFocus = true
	}

	for i, b := range buttons {
		if in.Pointer.Inside(g.buttonRect(i, b)) {
			return g.activate(b)
		}
	}

	if in.Has(core.ActionConfirm) {
		return g.activate(buttons[g.focus])
	}
	return nil
}

// activate applies the transition of button b on the current screen.
func (g *Game) activate(b Button) []core.Event {
	t, ok := Next(g.screen, b)
	if !ok {
		return nil
	}

	var events []core.Event
	switch t.Command {
	case CommandStartSession:
		events = g.startSession(t.Difficulty)
	case CommandRestart:
		events = g.startSession(g.session.Difficulty())
	case CommandReleaseSession:
		events = []core.Event{{Type: core.EventSessionRelease, Slot: -1, Score: g.session.Score()}}
		g.session.Release()
	case CommandExit:
		g.quit = true
	}
	if g.err != nil {
		return nil
	}

	if t.To != g.screen {
		g.focus = 0
	}
	g.screen = t.To
	return events
}

// StartAt skips the menus and starts a session at the named difficulty.
// It returns the events of the start so the caller can record them.
func (g *Game) StartAt(difficulty string) ([]core.Event, error) {
	d, err := ParseDifficulty(difficulty)
	if err != nil {
		return nil, err
	}
	events := g.startSession(d)
	if g.err != nil {
		return nil, g.err
	}
	g.screen = ScreenPlay
	g.focus = 0
	g.keyboardFocus = false
	return events, nil
}

func (g *Game) startSession(d Difficulty) []core.Event {
	if err := g.session.Start(d, g.nextSeed()); err != nil {
		g.err = err
		g.quit = true
		return nil
	}
	return []core.Event{{Type: core.EventSessionStart, Slot: -1}}
}

// nextSeed returns the configured seed, or a time-based one when unset.
func (g *Game) nextSeed() int64 {
	if g.runtime.Seed != 0 {
		return g.runtime.Seed
	}
	return time.Now().UnixNano()
}

func (g *Game) buttons() []Button {
	return Buttons(g.screen, g.session.Active() && g.session.Ended())
}

// buttonRect returns where the i-th button of the current screen is drawn.
func (g *Game) buttonRect(i int, b Button) core.Rect {
	l := g.layout()
	switch g.screen {
	case ScreenPlay:
		restart, menu := l.EndButtons()
		switch b {
		case ButtonRestart:
			return restart
		case ButtonMainMenu:
			return menu
		default:
			return l.PauseButton()
		}
	case ScreenCredits:
		return l.BottomButton()
	case ScreenIntro:
		return l.MenuButton(2)
	}
	return l.MenuButton(i)
}

// Render draws the current state into dst.
func (g *Game) Render(dst *core.Screen) {
	Draw(dst, g.View())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Paused: g.screen == ScreenPause,
		Quit:   g.quit,
	}
	if g.session.Active() {
		st.Score = g.session.Score()
		st.GameOver = g.session.Ended()
		st.Difficulty = g.session.Difficulty().String()
	}
	return st
}

// Screen returns the current screen.
func (g *Game) Screen() Screen {
	return g.screen
}

// Session returns the session driven by the game.
func (g *Game) Session() *Session {
	return g.session
}

// Err returns the error that made the game quit, if any.
func (g *Game) Err() error {
	return g.err
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
