package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mazechase/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Print the top 10 games and the play statistics of a mode
(default: mazechase).

Examples:
  mazechase scores
  mazechase scores --all
  mazechase scores --clear mazechase_demo
  mazechase scores --db ./scores.db`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

var (
	flagAllScores   bool
	flagClearScores bool
)

func init() {
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "List every recorded game instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete every recorded game of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := modeArg(args)
	title := mustCreateGame(gameID).Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClearScores {
		n, err := store.ClearScores(gameID)
		if err != nil {
			fatalf("clearing scores: %v", err)
		}
		fmt.Printf("Deleted %d %s games.\n", n, title)
		return
	}

	var scores []storage.ScoreEntry
	if flagAllScores {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		fatalf("reading scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Printf("Play 'mazechase play %s' to set the first one!\n", gameID)
		return
	}

	t := newTable("#", "Player", "Score", "Level", "Date")
	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "-"
		}
		t.Row(strconv.Itoa(i+1), player, strconv.Itoa(e.Score), strconv.Itoa(e.Level), e.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println(t)

	stats, err := store.GameStats(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading stats: %v\n", err)
		return
	}
	fmt.Printf("Best: %d  |  Games: %d  |  Average: %.0f  |  Furthest level: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestLevel)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
