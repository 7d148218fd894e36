package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all variants",
	Long:  `Shows every registered 2048 variant with its board size and goal.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %-5s  %-7s  %s\n", maxIDLen, "ID", "Board", "Goal", "Title")
	fmt.Printf("  %-*s  %-5s  %-7s  %s\n", maxIDLen, "--", "-----", "----", "-----")

	for _, g := range games {
		board, goal := "?", "?"
		if v, ok := t2048.GetVariant(g.ID); ok {
			rules := v.Rules(t2048.BaseRules())
			board = fmt.Sprintf("%dx%d", rules.Size, rules.Size)
			goal = "endless"
			if rules.WinTile > 0 {
				goal = fmt.Sprint(rules.WinTile)
			}
		}
		fmt.Printf("  %-*s  %-5s  %-7s  %s\n", maxIDLen, g.ID, board, goal, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 't2048 play <id>' to play a variant.")
}
