// barigueira is Barigueira Attack, a whack-a-mole game with the capybaras
// of Curitiba's Parque Barigui, played in the terminal, over SSH or in a
// desktop window.
//
// Usage:
//
//	barigueira               - Launcher: play, high scores, quit
//	barigueira list          - List available games
//	barigueira play          - Play in the terminal
//	barigueira window        - Play in a desktop window (ebiten builds)
//	barigueira serve         - Start SSH server for remote play
//	barigueira scores        - Show high scores
//	barigueira config        - Print the default configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/barigueira.db)
//	--config <path>     - Game config file (.yaml or .toml)
//	--log-level <level> - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/barigueira/internal/games/barigueira"
	"github.com/vovakirdan/barigueira/internal/platform/tui"
	"github.com/vovakirdan/barigueira/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "barigueira",
	Short: "Barigueira Attack - whack the capybaras of Parque Barigui",
	Long: `Barigueira Attack is a whack-a-mole game. Capybaras pop out of their
burrows and you click them before they hide again. Golden capybaras are
worth double; the cutia costs points and, on hard, brings the rain.

Without a subcommand a launcher offers to play or browse the high scores.

Examples:
  barigueira
  barigueira play --difficulty hard
  barigueira play --sound
  barigueira serve --ssh :2222
  barigueira scores --difficulty easy`,
	SilenceUsage: true,
	RunE:         runLauncher,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a game config file (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// runLauncher loops launcher -> game or scoreboard -> launcher until the
// player quits.
func runLauncher(cmd *cobra.Command, _ []string) error {
	env, err := newEnv(cmd, false)
	if err != nil {
		return err
	}
	defer env.Close()

	runtime := env.runtime()
	title := barigueira.New().Title()

	for {
		choice, cfg, err := tui.RunLauncher(env.store, barigueira.ID, title, runtime)
		if err != nil {
			return err
		}
		runtime = cfg

		switch choice {
		case tui.ChoicePlay:
			game, err := tui.NewGame(barigueira.ID, env.cfg)
			if err != nil {
				return err
			}
			if err := tui.Run(game, runtime, env.options()); err != nil {
				return err
			}

		case tui.ChoiceScores:
			goBack, err := tui.RunScoreboard(env.store, barigueira.ID, title, "", runtime.ScreenW, runtime.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			return nil
		}
	}
}
