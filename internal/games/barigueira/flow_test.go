package barigueira

import "testing"

func TestNextTransitions(t *testing.T) {
	tests := []struct {
		from    Screen
		button  Button
		to      Screen
		command Command
		diff    Difficulty
	}{
		{ScreenIntro, ButtonStart, ScreenMenu, CommandNone, Easy},
		{ScreenMenu, ButtonPlay, ScreenDifficultySelect, CommandNone, Easy},
		{ScreenMenu, ButtonCredits, ScreenCredits, CommandNone, Easy},
		{ScreenMenu, ButtonExit, ScreenMenu, CommandExit, Easy},
		{ScreenDifficultySelect, ButtonEasy, ScreenPlay, CommandStartSession, Easy},
		{ScreenDifficultySelect, ButtonMedium, ScreenPlay, CommandStartSession, Medium},
		{ScreenDifficultySelect, ButtonHard, ScreenPlay, CommandStartSession, Hard},
		{ScreenDifficultySelect, ButtonBack, ScreenMenu, CommandNone, Easy},
		{ScreenPlay, ButtonPause, ScreenPause, CommandNone, Easy},
		{ScreenPlay, ButtonRestart, ScreenPlay, CommandRestart, Easy},
		{ScreenPlay, ButtonMainMenu, ScreenMenu, CommandReleaseSession, Easy},
		{ScreenPause, ButtonContinue, ScreenPlay, CommandNone, Easy},
		{ScreenPause, ButtonRestart, ScreenPlay, CommandRestart, Easy},
		{ScreenPause, ButtonMainMenu, ScreenMenu, CommandReleaseSession, Easy},
		{ScreenCredits, ButtonBack, ScreenMenu, CommandNone, Easy},
	}

	for _, tc := range tests {
		got, ok := Next(tc.from, tc.button)
		if !ok {
			t.Errorf("Next(%s, %d) reported no transition", tc.from, tc.button)
			continue
		}
		if got.To != tc.to || got.Command != tc.command {
			t.Errorf("Next(%s, %d) = %+v, expected to=%s command=%d", tc.from, tc.button, got, tc.to, tc.command)
		}
		if got.Command == CommandStartSession && got.Difficulty != tc.diff {
			t.Errorf("Next(%s, %d) difficulty = %s, expected %s", tc.from, tc.button, got.Difficulty, tc.diff)
		}
	}
}

func TestNextRejectsForeignButtons(t *testing.T) {
	tests := []struct {
		from   Screen
		button Button
	}{
		{ScreenIntro, ButtonBack},
		{ScreenMenu, ButtonEasy},
		{ScreenCredits, ButtonPlay},
		{ScreenPause, ButtonPause},
		{ScreenPlay, ButtonContinue},
		{ScreenDifficultySelect, ButtonNone},
	}

	for _, tc := range tests {
		if _, ok := Next(tc.from, tc.button); ok {
			t.Errorf("Next(%s, %d) should not transition", tc.from, tc.button)
		}
	}
}

func TestButtonsHaveTransitions(t *testing.T) {
	screens := []Screen{ScreenIntro, ScreenMenu, ScreenDifficultySelect, ScreenPlay, ScreenPause, ScreenCredits}
	for _, s := range screens {
		for _, ended := range []bool{false, true} {
			buttons := Buttons(s, ended)
			if len(buttons) == 0 {
				t.Errorf("screen %s offers no buttons", s)
			}
			for _, b := range buttons {
				if _, ok := Next(s, b); !ok {
					t.Errorf("button %d on %s has no transition", b, s)
				}
				if Label(s, b) == "" {
					t.Errorf("button %d on %s has no label", b, s)
				}
			}
		}
	}
}

func TestPlayButtonsDependOnEnd(t *testing.T) {
	running := Buttons(ScreenPlay, false)
	if len(running) != 1 || running[0] != ButtonPause {
		t.Errorf("running play buttons = %v, expected [pause]", running)
	}

	ended := Buttons(ScreenPlay, true)
	if len(ended) != 2 || ended[0] != ButtonRestart || ended[1] != ButtonMainMenu {
		t.Errorf("ended play buttons = %v, expected [restart main-menu]", ended)
	}
}

func TestMainMenuLabel(t *testing.T) {
	if got := Label(ScreenPause, ButtonMainMenu); got != "MENU PRINCIPAL" {
		t.Errorf("pause main menu label = %q", got)
	}
	if got := Label(ScreenPlay, ButtonMainMenu); got != "MENU INICIAL" {
		t.Errorf("game over main menu label = %q", got)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in       string
		expected Difficulty
	}{
		{"easy", Easy},
		{"médio", Medium},
		{"HARD", Hard},
	}
	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if err != nil || got != tc.expected {
			t.Errorf("ParseDifficulty(%q) = %s, %v", tc.in, got, err)
		}
	}
	if _, err := ParseDifficulty("insane"); err == nil {
		t.Error("ParseDifficulty should reject unknown names")
	}
}
