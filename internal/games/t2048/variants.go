// Package t2048 implements the 2048 sliding-tile puzzle: the board engine,
// undo history, persisted sessions and the platform game adapter.
package t2048

import (
	"errors"
	"fmt"
)

// MinBoardSize is the smallest supported board dimension.
const MinBoardSize = 2

// Rules holds the parameters a session is played with.
type Rules struct {
	Size       int     // Board dimension
	WinTile    int     // Tile value that wins; 0 disables winning
	Spawn4Prob float64 // Probability of spawning 4 instead of 2 (0.0-1.0)
	StartTiles int     // Tiles placed on a new game
	UndoDepth  int     // Snapshots kept for undo
}

// DefaultRules returns the classic 4x4 rules.
func DefaultRules() Rules {
	return Rules{
		Size:       4,
		WinTile:    2048,
		Spawn4Prob: 0.10,
		StartTiles: 2,
		UndoDepth:  DefaultUndoDepth,
	}
}

// Validate reports every rule that cannot be played.
func (r Rules) Validate() error {
	var errs []error
	if r.Size < MinBoardSize {
		errs = append(errs, fmt.Errorf("size %d below minimum %d", r.Size, MinBoardSize))
	}
	if r.WinTile != 0 && !isPowerOfTwo(r.WinTile) {
		errs = append(errs, fmt.Errorf("win tile %d is not a power of two", r.WinTile))
	}
	if r.Spawn4Prob < 0 || r.Spawn4Prob > 1 {
		errs = append(errs, fmt.Errorf("spawn4 probability %v outside [0,1]", r.Spawn4Prob))
	}
	if r.StartTiles < 0 || r.StartTiles > r.Size*r.Size {
		errs = append(errs, fmt.Errorf("start tiles %d out of range", r.StartTiles))
	}
	if r.UndoDepth < 1 {
		errs = append(errs, fmt.Errorf("undo depth %d below 1", r.UndoDepth))
	}
	if len(errs) > 0 {
		return fmt.Errorf("t2048: invalid rules: %w", errors.Join(errs...))
	}
	return nil
}

// Variant is a named rule set registered as a playable game.
type Variant struct {
	ID      string
	Name    string
	Size    int      // 0 keeps the base size
	WinTile int      // 0 keeps the base win tile
	Endless bool     // No win tile at all
	Spawn4  *float64 // nil keeps the base probability; 0 spawns only 2s
}

// Rules derives the variant's rules from base.
func (v Variant) Rules(base Rules) Rules {
	r := base
	if v.Size > 0 {
		r.Size = v.Size
	}
	if v.WinTile > 0 {
		r.WinTile = v.WinTile
	}
	if v.Endless {
		r.WinTile = 0
	}
	if v.Spawn4 != nil {
		r.Spawn4Prob = *v.Spawn4
	}
	if r.StartTiles > r.Size*r.Size {
		r.StartTiles = r.Size * r.Size
	}
	return r
}

// Variants lists the built-in variants. Classic is first.
var Variants = []Variant{
	{ID: "2048", Name: "Classic"},
	{ID: "2048_endless", Name: "Endless", Endless: true},
	{ID: "2048_mini", Name: "Mini 3x3", Size: 3, WinTile: 256},
	{ID: "2048_big", Name: "Big 5x5", Size: 5, WinTile: 4096},
	{ID: "2048_hard", Name: "Hard", Spawn4: Prob(0.25)},
}

// Prob returns a pointer to p, for Variant.Spawn4.
func Prob(p float64) *float64 {
	return &p
}

// GetVariant returns the built-in or registered variant with the given ID.
func GetVariant(id string) (Variant, bool) {
	for _, v := range Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// Package-level rules every variant is derived from.
var baseRules = DefaultRules()

// SetBaseRules replaces the rules variants are derived from.
func SetBaseRules(r Rules) {
	baseRules = r
}

// BaseRules returns the rules variants are derived from.
func BaseRules() Rules {
	return baseRules
}
