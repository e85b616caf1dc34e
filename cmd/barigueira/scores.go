package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/barigueira/internal/config"
	"github.com/vovakirdan/barigueira/internal/games/barigueira"
	"github.com/vovakirdan/barigueira/internal/platform/tui"
	"github.com/vovakirdan/barigueira/internal/storage"
)

var (
	flagScoresDifficulty string
	flagScoresTUI        bool
	flagScoresLimit      int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top scores, for every difficulty or just one.

Examples:
  barigueira scores
  barigueira scores --difficulty hard
  barigueira scores --tui`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Only show easy, medium or hard")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the scores in the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, _ []string) error {
	difficulty := ""
	if flagScoresDifficulty != "" {
		p, err := config.ParsePreset(flagScoresDifficulty)
		if err != nil {
			return err
		}
		difficulty = string(p)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	title := barigueira.New().Title()

	if flagScoresTUI {
		rc := terminalRuntime()
		_, err := tui.RunScoreboard(store, barigueira.ID, title, difficulty, rc.ScreenW, rc.ScreenH)
		return err
	}

	return printScores(cmd, store, title, difficulty, flagScoresLimit)
}

// printScores writes the score table for one difficulty, or all of them.
func printScores(cmd *cobra.Command, store *storage.Store, title, difficulty string, limit int) error {
	out := cmd.OutOrStdout()

	scores, err := store.TopScores(barigueira.ID, difficulty, limit)
	if err != nil {
		return err
	}

	heading := fmt.Sprintf("High Scores - %s", title)
	if difficulty != "" {
		heading += " (" + difficulty + ")"
	}
	fmt.Fprintln(out, heading)
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'barigueira play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-10s  %s\n", "Rank", "Score", "Difficulty", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-10s  %s\n", "----", "-----", "----------", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-10d  %-10s  %s\n", i+1, entry.Score, entry.Difficulty, dateStr)
	}

	stats, err := store.GetGameStats(barigueira.ID, difficulty)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}
