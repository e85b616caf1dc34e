//go:build ebiten

package window

import (
	"errors"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/barigueira/internal/config"
	"github.com/vovakirdan/barigueira/internal/core"
	"github.com/vovakirdan/barigueira/internal/games/barigueira"
)

var keyActions = map[ebiten.Key]core.Action{
	ebiten.KeyArrowUp:   core.ActionUp,
	ebiten.KeyW:         core.ActionUp,
	ebiten.KeyArrowDown: core.ActionDown,
	ebiten.KeyS:         core.ActionDown,
	ebiten.KeyEnter:     core.ActionConfirm,
	ebiten.KeySpace:     core.ActionConfirm,
	ebiten.KeyB:         core.ActionBack,
	ebiten.KeyP:         core.ActionPause,
	ebiten.KeyEscape:    core.ActionPause,
	ebiten.KeyR:         core.ActionRestart,
	ebiten.KeyDigit1:    core.ActionSlot1,
	ebiten.KeyDigit2:    core.ActionSlot2,
	ebiten.KeyDigit3:    core.ActionSlot3,
	ebiten.KeyDigit4:    core.ActionSlot4,
	ebiten.KeyDigit5:    core.ActionSlot5,
}

// App adapts the game to the ebiten.Game interface.
type App struct {
	game   *barigueira.Game
	opts   Options
	width  int
	height int

	input core.InputFrame
	state core.GameState
	err   error

	pixel *ebiten.Image
	texts map[string]*ebiten.Image // Rendered labels, drawn scaled
}

// NewApp creates an app for game sized by the window metrics of cfg.
func NewApp(game *barigueira.Game, cfg config.Config, opts Options) *App {
	m := cfg.Layout.Window
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	game.Configure(cfg, m)
	game.Reset(core.RuntimeConfig{
		ScreenW:  m.ScreenWidth,
		ScreenH:  m.ScreenHeight,
		TickRate: opts.TickRate,
		Seed:     opts.Seed,
	})

	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)

	return &App{
		game:   game,
		opts:   opts,
		width:  m.ScreenWidth,
		height: m.ScreenHeight,
		input:  core.NewInputFrame(),
		state:  game.State(),
		pixel:  pixel,
		texts:  make(map[string]*ebiten.Image),
	}
}

// Update reads input and advances the game by one tick.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	a.input.Move(x, y)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.input.Press(x, y)
	}
	for k, action := range keyActions {
		if inpututil.IsKeyJustPressed(k) {
			a.input.Set(action)
		}
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	result := a.game.Step(dt, a.input)
	a.state = result.State
	if a.opts.Recorder != nil {
		a.opts.Recorder.Record(a.state, result.Events)
	}
	a.input.Clear()

	if a.state.Quit {
		if err := a.game.Err(); err != nil {
			a.err = err
			return err
		}
		return ebiten.Termination
	}
	return nil
}

// Draw paints the current view.
func (a *App) Draw(screen *ebiten.Image) {
	v := a.game.View()

	switch v.Screen {
	case barigueira.ScreenPlay, barigueira.ScreenPause:
		screen.Fill(colorPark)
		a.drawSession(screen, v)
		if v.Screen == barigueira.ScreenPause {
			a.fillRect(screen, core.NewRect(0, 0, a.width, a.height), colorOverlay)
			a.drawTextCentered(screen, v.Title, a.titleY(v), 4, colorTitle)
		} else if v.Ended {
			a.drawGameOver(screen, v)
		}
	case barigueira.ScreenIntro:
		screen.Fill(colorMenuBG)
		a.drawTextCentered(screen, v.Title, a.height/3, 6, colorTitle)
		a.drawTextCentered(screen, "capivaras do Parque Barigui", a.height/3+90, 3, colorText)
	case barigueira.ScreenCredits:
		screen.Fill(colorMenuBG)
		a.drawTextCentered(screen, v.Title, 60, 4, colorTitle)
		for i, line := range v.Lines {
			a.drawTextCentered(screen, line, 140+i*36, 2, colorText)
		}
	default:
		screen.Fill(colorMenuBG)
		a.drawTextCentered(screen, v.Title, a.titleY(v), 4, colorTitle)
	}

	for _, b := range v.Buttons {
		a.drawButton(screen, b)
	}
}

// Layout returns the logical screen size from the window metrics.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// Err returns the error that stopped the game, if any.
func (a *App) Err() error {
	return a.err
}

func (a *App) titleY(v barigueira.View) int {
	if len(v.Buttons) == 0 {
		return 60
	}
	return core.Max(20, v.Buttons[0].Rect.Y-100)
}

func (a *App) drawSession(screen *ebiten.Image, v barigueira.View) {
	if v.Raining {
		a.drawRain(screen)
	}

	for _, s := range v.Slots {
		a.drawSlot(screen, s)
	}

	a.drawText(screen, v.ScoreText, 20, 20, 3, colorText)
	w := a.textWidth(v.TimeText, 3)
	a.drawText(screen, v.TimeText, a.width-w-20, 20, 3, colorText)

	if v.Countdown != "" {
		a.drawTextCentered(screen, v.Countdown, a.height/2-160, 6, rgba(core.ColorGold))
	}
}

// drawRain covers the park with slanted streaks.
func (a *App) drawRain(screen *ebiten.Image) {
	a.fillRect(screen, core.NewRect(0, 0, a.width, a.height), color.RGBA{R: 20, G: 30, B: 60, A: 90})
	for y := 0; y < a.height; y += 40 {
		for x := (y / 40 % 2) * 30; x < a.width; x += 60 {
			a.drawStreak(screen, float64(x), float64(y))
		}
	}
}

func (a *App) drawStreak(screen *ebiten.Image, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(2, 18)
	op.GeoM.Skew(-0.4, 0)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(colorRain)
	screen.DrawImage(a.pixel, op)
}

func (a *App) drawSlot(screen *ebiten.Image, s barigueira.Slot) {
	r := s.Rect
	burrow := core.NewRect(r.X, r.Bottom()-r.H/5, r.W, r.H/5)
	a.fillRect(screen, burrow, colorBurrow)
	if s.Empty() {
		return
	}

	body := r.Scaled(0.7)
	if s.Kind == barigueira.KindPest && !s.Stunned {
		body = r.Scaled(0.6)
	}
	body.Y = burrow.Y - body.H + body.H/6
	c := spriteColor(s.Kind.String(), s.Stunned)
	a.fillRect(screen, body, c)

	// Eyes
	eye := core.Max(4, body.W/12)
	eyeY := body.Y + body.H/4
	a.fillRect(screen, core.NewRect(body.X+body.W/3-eye/2, eyeY, eye, eye), color.RGBA{A: 255})
	a.fillRect(screen, core.NewRect(body.X+2*body.W/3-eye/2, eyeY, eye, eye), color.RGBA{A: 255})
	if s.Stunned {
		a.drawText(screen, "* * *", body.X+(body.W-a.textWidth("* * *", 2))/2, body.Y-30, 2, colorText)
	}
}

func (a *App) drawGameOver(screen *ebiten.Image, v barigueira.View) {
	top := a.height/2 - 160
	bottom := a.height/2 + 40
	if len(v.Buttons) > 0 {
		bottom = v.Buttons[0].Rect.Bottom() + 20
	}
	a.fillRect(screen, core.NewRect(0, top, a.width, bottom-top), colorOverlay)
	a.drawTextCentered(screen, v.Title, top+30, 5, colorTitle)
	a.drawTextCentered(screen, v.FinalScore, top+110, 3, colorText)
}

func (a *App) drawButton(screen *ebiten.Image, b barigueira.ButtonView) {
	c := colorButton
	if b.Highlighted() {
		c = colorButtonHi
	}
	a.fillRect(screen, b.Rect, c)

	scale := 3
	if a.textWidth(b.Label, scale) > b.Rect.W-10 {
		scale = 2
	}
	lh := 13 * scale
	x := b.Rect.X + (b.Rect.W-a.textWidth(b.Label, scale))/2
	a.drawText(screen, b.Label, x, b.Rect.Y+(b.Rect.H-lh)/2, scale, colorText)
}

func (a *App) fillRect(screen *ebiten.Image, r core.Rect, c color.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.W), float64(r.H))
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(a.pixel, op)
}

// label returns a cached white image of s drawn with the bitmap font.
func (a *App) label(s string) *ebiten.Image {
	s = fold(s)
	if img, ok := a.texts[s]; ok {
		return img
	}
	face := basicfont.Face7x13
	b := text.BoundString(face, s)
	w := b.Dx()
	if w <= 0 {
		w = 1
	}
	img := ebiten.NewImage(w, face.Height)
	text.Draw(img, s, face, -b.Min.X, face.Ascent, color.White)
	a.texts[s] = img
	return img
}

func (a *App) textWidth(s string, scale int) int {
	return a.label(s).Bounds().Dx() * scale
}

func (a *App) drawText(screen *ebiten.Image, s string, x, y, scale int, c color.Color) {
	if s == "" {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(a.label(s), op)
}

func (a *App) drawTextCentered(screen *ebiten.Image, s string, y, scale int, c color.Color) {
	a.drawText(screen, s, (a.width-a.textWidth(s, scale))/2, y, scale, c)
}

// Run opens the window and plays until the player quits or closes it.
func Run(game *barigueira.Game, cfg config.Config, opts Options) error {
	app := NewApp(game, cfg, opts)

	title := opts.Title
	if title == "" {
		title = game.Title()
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(app.opts.TickRate)
	ebiten.SetWindowSize(app.width, app.height)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
