package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mazechase/internal/core"
	"github.com/vovakirdan/tui-mazechase/internal/platform/tui"
	"github.com/vovakirdan/tui-mazechase/internal/registry"
	"github.com/vovakirdan/tui-mazechase/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game",
	Long: `Start playing. The mode defaults to "mazechase"; "mazechase_demo"
starts with the attract loop until you press Space.

Controls:
  Arrows/WASD/HJKL - Steer (the last direction is held)
  Space/Enter      - Start / skip READY
  X                - Attract mode (after game over)
  P                - Pause
  R                - Play again (after game over)
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Five lives, longer hunts, slower antagonists
  normal - Configured values
  hard   - Two lives, short hunts, fast antagonists
  fixed  - No speed-up between levels

Examples:
  mazechase play
  mazechase play mazechase_demo
  mazechase play --difficulty easy
  mazechase play --level 2 --levels ./my-mazes`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	game := mustCreateGame(modeArg(args))
	store := openStore()
	defer closeStore(store)

	if err := tui.Run(game, store, runtimeConfig(), playerName()); err != nil {
		closeStore(store)
		fatalf("running game: %v", err)
	}
}

// modeArg returns the optional mode argument, "mazechase" when absent.
func modeArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "mazechase"
}

// mustCreateGame builds the mode or exits with a hint.
func mustCreateGame(id string) registry.Game {
	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'mazechase list' to see available modes.")
		os.Exit(1)
	}
	game, err := registry.Create(id)
	if err != nil {
		fatalf("creating %s: %v", id, err)
	}
	return game
}

// openStore opens the score database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: scores disabled: %v\n", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = time.Now().UnixNano()
	return cfg
}

// playerName labels saved scores with the login name.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
