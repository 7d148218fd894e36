package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (default: 2048).

A saved game for the session key is resumed; otherwise a new game starts.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  U/Backspace      - Undo
  N/R              - New game
  P                - Pause
  Enter/C          - Keep playing after a win
  Ctrl+S           - Save screenshot
  Q/Esc/Ctrl+C     - Quit

Difficulty options:
  easy   - Fewer 4s, deep undo history
  normal - Rules from config
  hard   - More 4s, three undos

Examples:
  t2048 play
  t2048 play 2048_mini
  t2048 play --difficulty hard
  t2048 play --session work --config ./my-2048.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "2048"
	if len(args) > 0 {
		gameID = args[0]
	}
	if err := requireVariant(gameID); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	tuiLog, closeLog := tuiLogger()
	defer closeLog()

	logger.Debug("starting game", "game", gameID, "session", flagSession)
	return tui.Run(game, store, runtimeConfig(), flagSession, tuiLog)
}
