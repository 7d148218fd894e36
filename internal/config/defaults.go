package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration used when even the
// embedded YAML cannot be parsed.
func DefaultConfig() Config {
	rules := t2048.DefaultRules()
	return Config{
		Rules: RulesConfig{
			Size:       rules.Size,
			WinTile:    rules.WinTile,
			Spawn4Prob: rules.Spawn4Prob,
			StartTiles: rules.StartTiles,
			UndoDepth:  rules.UndoDepth,
		},
		Storage: StorageConfig{
			Path: "~/.t2048/scores.db",
		},
		UI: UIConfig{
			TickRate: 60,
		},
	}
}
