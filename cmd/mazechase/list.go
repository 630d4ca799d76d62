package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mazechase/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the playable modes",
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	modes := registry.List()
	if len(modes) == 0 {
		fmt.Println("No modes registered.")
		return
	}

	t := newTable("ID", "Title")
	for _, m := range modes {
		t.Row(m.ID, m.Title)
	}
	fmt.Println(t)
	fmt.Println("Run 'mazechase play <id>' to play.")
}

// newTable returns the plain bordered table used by the CLI listings.
func newTable(headers ...string) *table.Table {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
}
