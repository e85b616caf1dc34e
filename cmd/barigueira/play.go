package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/barigueira/internal/audio"
	"github.com/vovakirdan/barigueira/internal/config"
	"github.com/vovakirdan/barigueira/internal/games/barigueira"
	"github.com/vovakirdan/barigueira/internal/platform/tui"
)

var (
	flagDifficulty string
	flagSound      bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Barigueira Attack in the terminal.

Click the capybaras with the mouse, or whack a slot with its number key.

Controls:
  Mouse click   - Whack / press a button
  1-5           - Whack slot 1 to 5
  Up/Down/j/k   - Move button focus
  Enter/Space   - Press the focused button
  P/Esc         - Pause (Esc also resumes)
  R             - Restart after the session ended
  Ctrl+S        - Save a text screenshot
  Q/Ctrl+C      - Quit

Difficulty options (skip the menus):
  easy   - 3 slots, slow capybaras, cutia costs 1 point
  medium - 4 slots, golden capybaras, cutia costs 2 points
  hard   - 5 slots, cutia costs 3 points and brings the rain

Examples:
  barigueira play
  barigueira play --difficulty hard
  barigueira play --sound --volume 0.5
  barigueira play --config ./my-barigueira.toml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Start directly at easy, medium or hard")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 1, "Sound volume, 0 to 1")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
	}

	env, err := newEnv(cmd, false)
	if err != nil {
		return err
	}
	defer env.Close()

	game, err := tui.NewGame(barigueira.ID, env.cfg)
	if err != nil {
		return err
	}

	opts := env.options()
	opts.Difficulty = flagDifficulty
	if flagSound {
		player := audio.NewPlayer(flagVolume)
		if err := player.Start(); err != nil {
			env.logger.Warn("sound disabled", "error", err)
		} else {
			defer player.Close()
			opts.Sound = player
		}
	}

	return tui.Run(game, env.runtime(), opts)
}
