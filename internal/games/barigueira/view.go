package barigueira

import (
	"fmt"

	"github.com/vovakirdan/barigueira/internal/core"
)

// Screen titles.
const (
	TitleIntro      = "BARIGUEIRA ATTACK!"
	TitleMenu       = "MENU DO JOGO"
	TitleDifficulty = "SELECIONE A DIFICULDADE"
	TitlePause      = "JOGO PAUSADO"
	TitleCredits    = "CRÉDITOS"
	TitleGameOver   = "Fim de jogo!"
)

var creditsLines = []string{
	"ALUNOS:",
	"ANA WALTRICK | ÂNGELO MIRANDA | VITOR KLUPPELL",
	"",
	"INSTITUIÇÃO: CENTRO UNIVERSITÁRIO AUTÔNOMO DO BRASIL",
	"DISCIPLINA: PROGRAMAÇÃO AVANÇADA",
	"PROFESSOR: FABIO BETTIO",
	"",
	"INSPIRAÇÃO:",
	"JOGO WHACK-A-MOLE | CURITIBA | PARQUE BARIGUI | ANIMAIS",
	"",
	"OBRIGADO POR JOGAR!",
}

// ButtonView describes one drawn button.
type ButtonView struct {
	Button  Button
	Label   string
	Rect    core.Rect
	Focused bool // Selected with the keyboard
	Hovered bool // Under the pointer
}

// Highlighted reports whether the button should be drawn as active.
func (b ButtonView) Highlighted() bool {
	return b.Focused || b.Hovered
}

// View is a render-ready description of the game. Renderers draw it
// without touching game state.
type View struct {
	Screen Screen
	Width  int
	Height int

	Title   string
	Lines   []string // Body text (credits)
	Buttons []ButtonView

	// Session data, set on the play and pause screens
	InSession  bool
	Difficulty Difficulty
	Slots      []Slot
	ScoreText  string
	TimeText   string
	Countdown  string
	Raining    bool
	Ended      bool
	FinalScore string
}

// View builds the visual description of the current state.
func (g *Game) View() View {
	v := View{
		Screen: g.screen,
		Width:  g.runtime.ScreenW,
		Height: g.runtime.ScreenH,
	}

	switch g.screen {
	case ScreenIntro:
		v.Title = TitleIntro
	case ScreenMenu:
		v.Title = TitleMenu
	case ScreenDifficultySelect:
		v.Title = TitleDifficulty
	case ScreenPause:
		v.Title = TitlePause
	case ScreenCredits:
		v.Title = TitleCredits
		v.Lines = creditsLines
	}

	if (g.screen == ScreenPlay || g.screen == ScreenPause) && g.session.Active() {
		s := g.session
		v.InSession = true
		v.Difficulty = s.Difficulty()
		v.Slots = s.Slots()
		v.ScoreText = fmt.Sprintf("Pontos: %d", s.Score())
		v.TimeText = "Tempo: " + s.Clock()
		v.Countdown = s.CountdownLabel()
		v.Raining = s.Raining()
		v.Ended = s.Ended()
		if v.Ended && g.screen == ScreenPlay {
			v.Title = TitleGameOver
			v.FinalScore = fmt.Sprintf("Pontuação final: %d", s.Score())
		}
	}

	buttons := g.buttons()
	v.Buttons = make([]ButtonView, len(buttons))
	for i, b := range buttons {
		r := g.buttonRect(i, b)
		v.Buttons[i] = ButtonView{
			Button:  b,
			Label:   Label(g.screen, b),
			Rect:    r,
			Focused: g.keyboardFocus && i == g.focus,
			Hovered: r.Contains(g.pointer.X, g.pointer.Y),
		}
	}
	return v
}
