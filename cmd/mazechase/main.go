// mazechase runs the maze chase arcade game in the terminal.
//
// Usage:
//
//	mazechase list              - List available modes
//	mazechase play [mode]       - Play (default: mazechase)
//	mazechase menu              - Start menu to pick a mode interactively
//	mazechase serve             - Start SSH server for remote play
//	mazechase watch             - Stream an attract session over websocket
//	mazechase scores [mode]     - Show high scores
//	mazechase board [level]     - Dump a maze's cell bitmasks in hex
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 50)
//	--db <path>           - Set database path (default: ~/.mazechase/scores.db)
//	--debug               - Log simulation transitions to stderr
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--level <n>           - Starting level
//	--levels <dir>        - Load mazes from a directory
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mazechase/internal/core"
	"github.com/vovakirdan/tui-mazechase/internal/games/mazechase"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagDebug      bool
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagLevelsDir  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazechase",
	Short: "Maze Chase - a maze chase arcade game in your terminal",
	Long: `Maze Chase is a terminal arcade game: clear the maze of pills while
four antagonists hunt you. Eat a power pill to turn the tables.

Available commands:
  list     - Show available modes
  play     - Play a game directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  watch    - Stream an attract session to websocket spectators
  scores   - View high scores
  board    - Dump a maze's cell bitmasks

Examples:
  mazechase play
  mazechase play --difficulty hard --level 3
  mazechase menu
  mazechase serve --ssh :2222
  mazechase watch --http :8080`,
	PersistentPreRun: applyGameFlags,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultTickRate, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mazechase/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log simulation transitions to stderr")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().IntVar(&flagLevel, "level", 0, "Starting level (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of maze YAML files (default: built-in mazes)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
}

// applyGameFlags hands the global game flags to the mazechase package
// before any command builds a game.
func applyGameFlags(_ *cobra.Command, _ []string) {
	mazechase.SetConfigPath(flagConfig)
	mazechase.SetDifficultyPreset(flagDifficulty)
	mazechase.SetStartLevel(flagLevel)
	mazechase.SetLevelsDir(flagLevelsDir)
	if flagDebug {
		mazechase.SetLogger(newLogger("sim", log.DebugLevel))
	}
}

// newLogger returns a stderr logger in the style used by every command.
func newLogger(prefix string, level log.Level) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// logLevel is Debug under --debug and Info otherwise.
func logLevel() log.Level {
	if flagDebug {
		return log.DebugLevel
	}
	return log.InfoLevel
}
