package barigueira

import (
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/barigueira/internal/core"
)

// Sprite art, one string per row. Rows are centered inside the slot.
var (
	capybaraArt = []string{
		" ___ ",
		"(o o)",
		"( w )",
	}
	pestArt = []string{
		"/\\_/\\",
		"<o.o>",
	}
	stunnedArt = []string{
		"* * *",
		"(x_x)",
	}
)

const rainChar = '/'

// Draw renders a view into a character screen.
func Draw(dst *core.Screen, v View) {
	dst.Clear()

	switch v.Screen {
	case ScreenPlay:
		drawSession(dst, v)
		if v.Ended {
			drawGameOver(dst, v)
		}
	case ScreenPause:
		drawSession(dst, v)
		drawPausePanel(dst, v)
	case ScreenIntro:
		dst.DrawTextCenteredColored(dst.Height()/2-4, v.Title, core.ColorBeige)
		dst.DrawTextCenteredColored(dst.Height()/2-2, "capivaras do Parque Barigui", core.ColorBrown)
	case ScreenCredits:
		dst.DrawTextCenteredColored(1, v.Title, core.ColorBeige)
		for i, line := range v.Lines {
			dst.DrawTextCenteredColored(3+i, line, core.ColorBeige)
		}
	default:
		dst.DrawTextCenteredColored(titleRow(v), v.Title, core.ColorBeige)
	}

	for _, b := range v.Buttons {
		drawButton(dst, b)
	}
}

// titleRow places menu titles a few rows above the first button.
func titleRow(v View) int {
	if len(v.Buttons) == 0 {
		return 1
	}
	return core.Max(0, v.Buttons[0].Rect.Y-3)
}

func drawSession(dst *core.Screen, v View) {
	if v.Raining {
		drawRain(dst)
	}

	for _, s := range v.Slots {
		drawSlot(dst, s)
	}

	dst.DrawTextColored(1, 1, v.ScoreText, core.ColorBrightWhite)
	dst.DrawTextColored(dst.Width()-runewidth.StringWidth(v.TimeText)-1, 1, v.TimeText, core.ColorBrightWhite)

	if v.Countdown != "" {
		dst.DrawTextCenteredColored(dst.Height()/2-3, v.Countdown, core.ColorGold)
	}
}

// drawRain covers the screen with a diagonal rain pattern.
func drawRain(dst *core.Screen) {
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if (x+2*y)%6 == 0 {
				dst.SetColored(x, y, rainChar, core.ColorBlue)
			}
		}
	}
}

func drawSlot(dst *core.Screen, s Slot) {
	dst.DrawRect(s.Rect, ' ')
	for x := s.Rect.X; x < s.Rect.Right(); x++ {
		dst.SetColored(x, s.Rect.Bottom()-1, '▀', core.ColorBrown)
	}

	switch {
	case s.Stunned:
		drawArt(dst, s.Rect, stunnedArt, core.ColorGray)
	case !s.Visible:
		return
	case s.Kind == KindPest:
		drawArt(dst, s.Rect.Scaled(0.9), pestArt, core.ColorOrange)
	case s.Kind == KindGolden:
		drawArt(dst, s.Rect, capybaraArt, core.ColorGold)
	default:
		drawArt(dst, s.Rect, capybaraArt, core.ColorBrown)
	}
}

// drawArt centers the art rows inside r, above the burrow line.
func drawArt(dst *core.Screen, r core.Rect, art []string, c core.Color) {
	top := r.Y + (r.H-1-len(art))/2
	for i, row := range art {
		x := r.X + (r.W-runewidth.StringWidth(row))/2
		dst.DrawTextColored(x, top+i, row, c)
	}
}

func drawGameOver(dst *core.Screen, v View) {
	h := dst.Height()
	panel := core.NewRect(0, h/2-5, dst.Width(), 10)
	if len(v.Buttons) > 0 {
		panel.H = v.Buttons[0].Rect.Bottom() + 1 - panel.Y
	}
	dst.DrawRect(panel, ' ')
	dst.DrawTextCenteredColored(h/2-4, v.Title, core.ColorBrightWhite)
	dst.DrawTextCenteredColored(h/2-2, v.FinalScore, core.ColorBrightWhite)
}

func drawPausePanel(dst *core.Screen, v View) {
	top := titleRow(v)
	bottom := top + 2
	for _, b := range v.Buttons {
		bottom = core.Max(bottom, b.Rect.Bottom())
	}

	width := runewidth.StringWidth(v.Title) + 4
	for _, b := range v.Buttons {
		width = core.Max(width, b.Rect.W+4)
	}
	panel := core.NewRect((dst.Width()-width)/2, top-1, width, bottom-top+2)
	dst.DrawRect(panel, ' ')
	dst.DrawBoxColored(panel, core.ColorGray)
	dst.DrawTextCenteredColored(top, v.Title, core.ColorBeige)
}

func drawButton(dst *core.Screen, b ButtonView) {
	c := core.ColorRed
	if b.Highlighted() {
		c = core.ColorBrown
	}
	dst.DrawRect(b.Rect, ' ')
	dst.DrawBoxColored(b.Rect, c)

	label := b.Label
	x := b.Rect.X + (b.Rect.W-runewidth.StringWidth(label))/2
	labelColor := core.ColorWhite
	if b.Highlighted() {
		labelColor = core.ColorBrightWhite
	}
	dst.DrawTextColored(x, b.Rect.Y+b.Rect.H/2, label, labelColor)
}
