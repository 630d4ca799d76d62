package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mazechase/internal/games/mazechase/levels"
)

var boardCmd = &cobra.Command{
	Use:   "board [level]",
	Short: "Dump a maze's cell bitmasks in hex",
	Long: `Print the derived traversal bitmask of every cell of a maze, one row
per line. The low nibble holds the open directions (north=1, south=2,
east=4, west=8); 0x10, 0x20 and 0x40 flag a small pill, a power pill and a
bonus item.

Examples:
  mazechase board
  mazechase board 2
  mazechase board 1 --levels ./my-mazes`,
	Args: cobra.MaximumNArgs(1),
	Run:  runBoard,
}

func runBoard(_ *cobra.Command, args []string) {
	n := max(flagLevel, 1)
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 1 {
			fmt.Fprintf(os.Stderr, "Error: invalid level %q\n", args[0])
			os.Exit(1)
		}
		n = v
	}

	set, err := levels.Load(flagLevelsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	lvl := set.Level(n)
	b, err := lvl.Validate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Level %d - %s (%dx%d, %d consumables)\n", n, lvl.Name, b.W, b.H, b.Remaining())
	fmt.Println()
	for _, row := range b.HexRows() {
		fmt.Println(row)
	}
}
