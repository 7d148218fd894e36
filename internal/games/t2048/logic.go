package t2048

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every valid move direction.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the four move directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// ParseDirection parses a direction name or one of its vim/WASD aliases.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "k", "w":
		return DirUp, nil
	case "down", "j", "s":
		return DirDown, nil
	case "left", "h", "a":
		return DirLeft, nil
	case "right", "l", "d":
		return DirRight, nil
	}
	return 0, fmt.Errorf("t2048: unknown direction %q", s)
}

// Rand is the random source used for tile spawns.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// MoveResult describes the outcome of ApplyMove.
type MoveResult struct {
	Board   Board
	Score   int
	Gained  int
	Changed bool

	// Merged holds the cells that received a merged tile this move.
	// Spawned is the tile added after the move, nil when none was placed.
	// Both are for renderers and carry no game state.
	Merged  []Pos
	Spawned *Tile

	// WonNow is true only on the move where the win tile first appears.
	WonNow bool
}

// slideLine compacts and merges a line read in travel order.
// merged holds the indexes in result that received a merged tile.
// A merged tile never merges again in the same pass.
func slideLine(line []int) (result []int, score int, merged []int) {
	tiles := make([]int, 0, len(line))
	for _, v := range line {
		if v != 0 {
			tiles = append(tiles, v)
		}
	}

	result = make([]int, len(line))
	writePos := 0
	for i := 0; i < len(tiles); i++ {
		v := tiles[i]
		if i+1 < len(tiles) && tiles[i+1] == v {
			v *= 2
			score += v
			merged = append(merged, writePos)
			i++
		}
		result[writePos] = v
		writePos++
	}

	return result, score, merged
}

// linePositions returns the coordinates of line i in travel order.
// Rows for left/right, columns for up/down.
func linePositions(size, i int, dir Direction) []Pos {
	positions := make([]Pos, size)
	for k := range size {
		switch dir {
		case DirLeft:
			positions[k] = Pos{Row: i, Col: k}
		case DirRight:
			positions[k] = Pos{Row: i, Col: size - 1 - k}
		case DirUp:
			positions[k] = Pos{Row: k, Col: i}
		case DirDown:
			positions[k] = Pos{Row: size - 1 - k, Col: i}
		}
	}
	return positions
}

// Slide performs the deterministic part of a move: every line slides and
// merges toward dir. No tile is spawned. It panics on an invalid board or
// direction.
// Returns the new board, score gained, whether the board changed and the
// cells holding merged tiles.
func Slide(board Board, dir Direction) (Board, int, bool, []Pos) {
	mustValidate(board)
	if !dir.Valid() {
		panic(fmt.Sprintf("t2048: invalid direction %d", int(dir)))
	}

	size := board.Size()
	next := NewBoard(size)
	totalScore := 0
	changed := false
	var merged []Pos

	line := make([]int, size)
	for i := range size {
		positions := linePositions(size, i, dir)
		for k, p := range positions {
			line[k] = board[p.Row][p.Col]
		}

		out, score, mergedIdx := slideLine(line)
		totalScore += score

		for k, p := range positions {
			next[p.Row][p.Col] = out[k]
			if out[k] != line[k] {
				changed = true
			}
		}
		for _, k := range mergedIdx {
			merged = append(merged, positions[k])
		}
	}

	return next, totalScore, changed, merged
}

// Spawn places one tile on a uniformly random empty cell of board, in
// place: 4 with probability spawn4, otherwise 2. The cell is drawn before
// the value. Returns nil when the board is full.
func Spawn(board Board, rng Rand, spawn4 float64) *Tile {
	emptyCells := EmptyCells(board)
	if len(emptyCells) == 0 {
		return nil
	}

	cell := emptyCells[rng.Intn(len(emptyCells))]

	value := 2
	if rng.Float64() < spawn4 {
		value = 4
	}

	board[cell.Row][cell.Col] = value
	return &Tile{Pos: cell, Value: value}
}

// ApplyMove slides board toward dir and, when anything changed, spawns a
// new tile and adds the merge gains to score. reached tells whether the win
// tile was already reached in this game; it gates WonNow.
// A move that changes nothing returns a copy of the input with Changed
// false and no spawn.
func ApplyMove(board Board, score int, dir Direction, reached bool, rules Rules, rng Rand) MoveResult {
	next, gained, changed, merged := Slide(board, dir)
	if !changed {
		return MoveResult{Board: board.Clone(), Score: score}
	}

	res := MoveResult{
		Board:   next,
		Score:   score + gained,
		Gained:  gained,
		Changed: true,
		Merged:  merged,
	}
	res.Spawned = Spawn(res.Board, rng, rules.Spawn4Prob)
	res.WonNow = !reached && rules.WinTile > 0 && MaxTile(res.Board) >= rules.WinTile

	return res
}
