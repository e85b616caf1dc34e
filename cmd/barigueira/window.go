package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/barigueira/internal/audio"
	"github.com/vovakirdan/barigueira/internal/games/barigueira"
	"github.com/vovakirdan/barigueira/internal/platform"
	"github.com/vovakirdan/barigueira/internal/platform/window"
)

var flagWindowSound bool

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open Barigueira Attack in a 1500x800 desktop window.

The window frontend needs a binary built with the ebiten tag:
  go build -tags ebiten ./cmd/barigueira

Examples:
  barigueira window
  barigueira window --sound`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagWindowSound, "sound", true, "Play sound effects")
	windowCmd.Flags().Float64Var(&flagVolume, "volume", 1, "Sound volume, 0 to 1")
}

func runWindow(cmd *cobra.Command, _ []string) error {
	env, err := newEnv(cmd, true)
	if err != nil {
		return err
	}
	defer env.Close()

	game := barigueira.NewWithConfig(env.cfg, env.cfg.Layout.Window)
	rec := &platform.Recorder{
		GameID: game.ID(),
		Store:  env.store,
		Logger: env.logger,
		RunID:  env.runID,
	}
	if flagWindowSound {
		player := audio.NewPlayer(flagVolume)
		if err := player.Start(); err != nil {
			env.logger.Warn("sound disabled", "error", err)
		} else {
			defer player.Close()
			rec.Sound = player
		}
	}

	return window.Run(game, env.cfg, window.Options{
		TickRate: flagFPS,
		Seed:     flagSeed,
		Recorder: rec,
	})
}
