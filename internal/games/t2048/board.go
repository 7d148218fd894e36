package t2048

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidBoard is returned when a board has the wrong shape or holds a
// value that is not zero or a power of two >= 2.
var ErrInvalidBoard = errors.New("t2048: invalid board")

// Board is a square grid of tiles indexed as board[row][col].
// Zero marks an empty cell.
type Board [][]int

// Pos is a cell coordinate on the board.
type Pos struct {
	Row int
	Col int
}

// Tile is a value placed at a position.
type Tile struct {
	Pos
	Value int
}

// NewBoard returns an empty size x size board.
func NewBoard(size int) Board {
	b := make(Board, size)
	for r := range b {
		b[r] = make([]int, size)
	}
	return b
}

// Size returns the board dimension.
func (b Board) Size() int {
	return len(b)
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	c := make(Board, len(b))
	for r, row := range b {
		c[r] = make([]int, len(row))
		copy(c[r], row)
	}
	return c
}

// Equal reports whether two boards hold the same values in the same cells.
func (b Board) Equal(other Board) bool {
	if len(b) != len(other) {
		return false
	}
	for r := range b {
		if len(b[r]) != len(other[r]) {
			return false
		}
		for c := range b[r] {
			if b[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// Validate checks that the board is size x size and that every non-zero
// cell is a power of two >= 2.
func (b Board) Validate(size int) error {
	if size < MinBoardSize {
		return fmt.Errorf("%w: size %d below minimum %d", ErrInvalidBoard, size, MinBoardSize)
	}
	if len(b) != size {
		return fmt.Errorf("%w: %d rows, want %d", ErrInvalidBoard, len(b), size)
	}
	for r, row := range b {
		if len(row) != size {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, r, len(row), size)
		}
		for c, v := range row {
			if v != 0 && !isPowerOfTwo(v) {
				return fmt.Errorf("%w: cell (%d,%d) holds %d", ErrInvalidBoard, r, c, v)
			}
		}
	}
	return nil
}

// mustValidate panics when the board violates the engine's preconditions.
func mustValidate(b Board) {
	if err := b.Validate(len(b)); err != nil {
		panic(err)
	}
}

func isPowerOfTwo(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func EmptyCells(board Board) []Pos {
	var cells []Pos
	for r, row := range board {
		for c, v := range row {
			if v == 0 {
				cells = append(cells, Pos{Row: r, Col: c})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(board Board) bool {
	for _, row := range board {
		for _, v := range row {
			if v == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if two orthogonally adjacent tiles hold the
// same non-zero value.
func HasPossibleMerge(board Board) bool {
	size := len(board)
	for r := range size {
		for c := range size {
			val := board[r][c]
			if val == 0 {
				continue
			}
			if c < size-1 && board[r][c+1] == val {
				return true
			}
			if r < size-1 && board[r+1][c] == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any move is possible.
func CanMove(board Board) bool {
	return HasEmptyCell(board) || HasPossibleMerge(board)
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(board Board) int {
	maxVal := 0
	for _, row := range board {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}

// Sum returns the total of all tile values.
func Sum(board Board) int {
	total := 0
	for _, row := range board {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// String renders the board as right-aligned columns, one row per line.
// Empty cells are shown as dots.
func (b Board) String() string {
	width := len(strconv.Itoa(MaxTile(b)))
	var sb strings.Builder
	for r, row := range b {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if v != 0 {
				cell = strconv.Itoa(v)
			}
			sb.WriteString(strings.Repeat(" ", width-len(cell)))
			sb.WriteString(cell)
		}
	}
	return sb.String()
}
