// Package config provides YAML-based configuration loading and difficulty
// presets for the 2048 game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Config is the full application configuration.
type Config struct {
	Rules    RulesConfig     `yaml:"rules"`
	Storage  StorageConfig   `yaml:"storage"`
	UI       UIConfig        `yaml:"ui"`
	Variants []VariantConfig `yaml:"variants"`
}

// RulesConfig defines the base rules every variant is derived from.
type RulesConfig struct {
	Size       int     `yaml:"size"`
	WinTile    int     `yaml:"win_tile"`
	Spawn4Prob float64 `yaml:"spawn4_prob"`
	StartTiles int     `yaml:"start_tiles"`
	UndoDepth  int     `yaml:"undo_depth"`
}

// StorageConfig defines where scores and sessions are kept.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// UIConfig defines terminal UI parameters.
type UIConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// VariantConfig describes an extra variant. Zero fields keep the base rules,
// except spawn4, which keeps the base probability only when absent.
type VariantConfig struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	Size    int      `yaml:"size"`
	WinTile int      `yaml:"win_tile"`
	Endless bool     `yaml:"endless"`
	Spawn4  *float64 `yaml:"spawn4"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}

// ApplyPreset adjusts spawn odds and undo depth for a difficulty preset.
// Normal leaves the configured rules untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.Spawn4Prob = 0.05
		cfg.Rules.UndoDepth = max(cfg.Rules.UndoDepth, 50)
	case DifficultyHard:
		cfg.Rules.Spawn4Prob = 0.25
		cfg.Rules.UndoDepth = 3
	}
}

// EngineRules converts the rules section to engine rules.
func (c Config) EngineRules() t2048.Rules {
	return t2048.Rules{
		Size:       c.Rules.Size,
		WinTile:    c.Rules.WinTile,
		Spawn4Prob: c.Rules.Spawn4Prob,
		StartTiles: c.Rules.StartTiles,
		UndoDepth:  c.Rules.UndoDepth,
	}
}

// ExtraVariants converts the variants section to engine variants.
func (c Config) ExtraVariants() []t2048.Variant {
	out := make([]t2048.Variant, 0, len(c.Variants))
	for _, v := range c.Variants {
		name := v.Name
		if name == "" {
			name = v.ID
		}
		out = append(out, t2048.Variant{
			ID:      v.ID,
			Name:    name,
			Size:    v.Size,
			WinTile: v.WinTile,
			Endless: v.Endless,
			Spawn4:  v.Spawn4,
		})
	}
	return out
}

// Validate reports every setting that cannot be used.
func (c Config) Validate() error {
	var errs []error

	base := c.EngineRules()
	if err := base.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.UI.TickRate < 1 {
		errs = append(errs, fmt.Errorf("ui: tick rate %d below 1", c.UI.TickRate))
	}

	seen := make(map[string]bool)
	for _, v := range c.ExtraVariants() {
		if v.ID == "" {
			errs = append(errs, errors.New("variants: missing id"))
			continue
		}
		if seen[v.ID] {
			errs = append(errs, fmt.Errorf("variants: duplicate id %q", v.ID))
		}
		seen[v.ID] = true
		if err := v.Rules(base).Validate(); err != nil {
			errs = append(errs, fmt.Errorf("variants: %s: %w", v.ID, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
