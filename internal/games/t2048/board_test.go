package t2048

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCanMove(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  bool
	}{
		{"empty cell", Board{
			{2, 4, 8, 16},
			{4, 8, 16, 32},
			{8, 16, 32, 64},
			{16, 32, 64, 0},
		}, true},
		{"full, horizontal pair", Board{
			{2, 2, 8, 16},
			{4, 8, 16, 32},
			{8, 16, 32, 64},
			{16, 32, 64, 128},
		}, true},
		{"full, vertical pair", Board{
			{2, 4, 8, 16},
			{4, 8, 16, 32},
			{8, 16, 32, 64},
			{16, 32, 64, 64},
		}, true},
		{"full, stuck", Board{
			{2, 4, 2, 4},
			{4, 2, 4, 2},
			{2, 4, 2, 4},
			{4, 2, 4, 2},
		}, false},
		{"all empty", NewBoard(4), true},
		{"small stuck", Board{{2, 4}, {4, 2}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanMove(tt.board); got != tt.want {
				t.Errorf("CanMove = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasPossibleMergeIgnoresEmpty(t *testing.T) {
	board := Board{
		{2, 0, 0},
		{4, 8, 16},
		{0, 0, 2},
	}
	if HasPossibleMerge(board) {
		t.Error("adjacent empty cells are not a merge")
	}
}

func TestBoardValidate(t *testing.T) {
	tests := []struct {
		name    string
		board   Board
		size    int
		wantErr bool
	}{
		{"valid", Board{{2, 0}, {0, 1024}}, 2, false},
		{"empty", NewBoard(3), 3, false},
		{"wrong row count", Board{{2, 0}}, 2, true},
		{"short row", Board{{2, 0}, {0}}, 2, true},
		{"not power of two", Board{{6, 0}, {0, 0}}, 2, true},
		{"one", Board{{1, 0}, {0, 0}}, 2, true},
		{"negative", Board{{-2, 0}, {0, 0}}, 2, true},
		{"size below minimum", Board{{2}}, 1, true},
		{"size mismatch", NewBoard(4), 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.board.Validate(tt.size)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidBoard) {
				t.Errorf("error %v does not wrap ErrInvalidBoard", err)
			}
		})
	}
}

func TestMaxTile(t *testing.T) {
	board := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 0, 0},
		{0, 0, 0, 0},
	}
	if got := MaxTile(board); got != 1024 {
		t.Errorf("MaxTile = %d, want 1024", got)
	}
	if got := Sum(board); got != 2046 {
		t.Errorf("Sum = %d, want 2046", got)
	}
}

func TestEmptyCells(t *testing.T) {
	board := Board{
		{2, 0, 4},
		{0, 8, 0},
		{16, 32, 64},
	}
	want := []Pos{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}}
	if diff := cmp.Diff(want, EmptyCells(board)); diff != "" {
		t.Errorf("EmptyCells mismatch (-want +got):\n%s", diff)
	}
	if !HasEmptyCell(board) {
		t.Error("HasEmptyCell = false")
	}
}

func TestBoardCloneIsDeep(t *testing.T) {
	b := Board{{2, 0}, {0, 4}}
	c := b.Clone()
	c[0][0] = 8
	if b[0][0] != 2 {
		t.Error("Clone shares rows with the original")
	}
	if b.Equal(c) {
		t.Error("Equal reports modified clone as equal")
	}
	c[0][0] = 2
	if !b.Equal(c) {
		t.Error("Equal reports identical boards as different")
	}
}

func TestBoardString(t *testing.T) {
	board := Board{
		{2, 0, 128},
		{0, 16, 0},
		{4, 0, 0},
	}
	want := "  2   . 128\n  .  16   .\n  4   .   ."
	if got := board.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
