package barigueira

// Screen is one state of the screen dispatcher.
type Screen int

const (
	ScreenIntro Screen = iota
	ScreenMenu
	ScreenDifficultySelect
	ScreenPlay
	ScreenPause
	ScreenCredits
)

// String returns the screen name.
func (s Screen) String() string {
	switch s {
	case ScreenIntro:
		return "intro"
	case ScreenMenu:
		return "menu"
	case ScreenDifficultySelect:
		return "difficulty_select"
	case ScreenPlay:
		return "play"
	case ScreenPause:
		return "pause"
	case ScreenCredits:
		return "credits"
	default:
		return "unknown"
	}
}

// Button identifies a clickable control.
type Button int

const (
	ButtonNone Button = iota
	ButtonStart
	ButtonPlay
	ButtonCredits
	ButtonExit
	ButtonEasy
	ButtonMedium
	ButtonHard
	ButtonBack
	ButtonPause
	ButtonContinue
	ButtonRestart
	ButtonMainMenu
)

// Command is the side effect requested by a transition.
type Command int

const (
	CommandNone Command = iota
	CommandStartSession
	CommandRestart
	CommandReleaseSession
	CommandExit
)

// Transition is the outcome of activating a button on a screen.
type Transition struct {
	To         Screen
	Command    Command
	Difficulty Difficulty // Only meaningful for CommandStartSession
}

var transitions = map[Screen]map[Button]Transition{
	ScreenIntro: {
		ButtonStart: {To: ScreenMenu},
	},
	ScreenMenu: {
		ButtonPlay:    {To: ScreenDifficultySelect},
		ButtonCredits: {To: ScreenCredits},
		ButtonExit:    {To: ScreenMenu, Command: CommandExit},
	},
	ScreenDifficultySelect: {
		ButtonEasy:   {To: ScreenPlay, Command: CommandStartSession, Difficulty: Easy},
		ButtonMedium: {To: ScreenPlay, Command: CommandStartSession, Difficulty: Medium},
		ButtonHard:   {To: ScreenPlay, Command: CommandStartSession, Difficulty: Hard},
		ButtonBack:   {To: ScreenMenu},
	},
	ScreenPlay: {
		ButtonPause:    {To: ScreenPause},
		ButtonRestart:  {To: ScreenPlay, Command: CommandRestart},
		ButtonMainMenu: {To: ScreenMenu, Command: CommandReleaseSession},
	},
	ScreenPause: {
		ButtonContinue: {To: ScreenPlay},
		ButtonRestart:  {To: ScreenPlay, Command: CommandRestart},
		ButtonMainMenu: {To: ScreenMenu, Command: CommandReleaseSession},
	},
	ScreenCredits: {
		ButtonBack: {To: ScreenMenu},
	},
}

// Next returns the transition for activating button b on screen from.
// The second result is false when b does nothing on that screen.
func Next(from Screen, b Button) (Transition, bool) {
	t, ok := transitions[from][b]
	return t, ok
}

// Buttons returns the buttons offered on a screen, in focus order.
// On the play screen the set depends on whether the session has ended.
func Buttons(s Screen, ended bool) []Button {
	switch s {
	case ScreenIntro:
		return []Button{ButtonStart}
	case ScreenMenu:
		return []Button{ButtonPlay, ButtonCredits, ButtonExit}
	case ScreenDifficultySelect:
		return []Button{ButtonEasy, ButtonMedium, ButtonHard, ButtonBack}
	case ScreenPlay:
		if ended {
			return []Button{ButtonRestart, ButtonMainMenu}
		}
		return []Button{ButtonPause}
	case ScreenPause:
		return []Button{ButtonContinue, ButtonRestart, ButtonMainMenu}
	case ScreenCredits:
		return []Button{ButtonBack}
	}
	return nil
}

// Label returns the caption of button b on screen s.
func Label(s Screen, b Button) string {
	switch b {
	case ButtonStart:
		return "INICIAR"
	case ButtonPlay:
		return "JOGAR"
	case ButtonCredits:
		return "CRÉDITOS"
	case ButtonExit:
		return "SAIR"
	case ButtonEasy:
		return Easy.Label()
	case ButtonMedium:
		return Medium.Label()
	case ButtonHard:
		return Hard.Label()
	case ButtonBack:
		return "VOLTAR"
	case ButtonPause:
		return "PAUSE"
	case ButtonContinue:
		return "CONTINUAR"
	case ButtonRestart:
		return "REINICIAR"
	case ButtonMainMenu:
		if s == ScreenPause {
			return "MENU PRINCIPAL"
		}
		return "MENU INICIAL"
	}
	return ""
}
