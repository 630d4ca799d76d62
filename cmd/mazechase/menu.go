package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mazechase/internal/platform/tui"
	"github.com/vovakirdan/tui-mazechase/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode and Tab for
the scoreboard. After a game ends, Esc returns to the menu.

Examples:
  mazechase menu
  mazechase menu --fps 30
  mazechase menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	defer closeStore(store)

	cfg := runtimeConfig()
	player := playerName()
	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return
		case res.WantsScoreboard:
			back, err := tui.RunScoreboard(store, player, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if !back {
				return
			}
		default:
			game, err := registry.Create(res.GameID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			cfg.Seed = time.Now().UnixNano()
			if err := tui.Run(game, store, cfg, player); err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			}
		}
	}
}
