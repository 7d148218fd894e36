package t2048

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUndoRoundTrip(t *testing.T) {
	s := NewUndoStack(5)
	board := Board{{2, 0}, {4, 8}}

	s.Push(board, 12)
	board[0][0] = 16 // mutating the caller's board must not reach the stack

	snap, ok := s.Pop()
	if !ok {
		t.Fatal("Pop on non-empty stack returned false")
	}
	want := Snapshot{Board: Board{{2, 0}, {4, 8}}, Score: 12}
	if diff := cmp.Diff(want, snap); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}

	if _, ok := s.Pop(); ok {
		t.Error("Pop on empty stack returned true")
	}
}

func TestUndoEvictsOldest(t *testing.T) {
	const depth = 3
	s := NewUndoStack(depth)

	for i := range 7 {
		s.Push(Board{{2, 0}, {0, 0}}, i)
	}
	if s.Len() != depth {
		t.Fatalf("Len = %d, want %d", s.Len(), depth)
	}

	var scores []int
	for _, snap := range s.Snapshots() {
		scores = append(scores, snap.Score)
	}
	if diff := cmp.Diff([]int{4, 5, 6}, scores); diff != "" {
		t.Errorf("snapshots mismatch (-want +got):\n%s", diff)
	}

	for _, want := range []int{6, 5, 4} {
		snap, ok := s.Pop()
		if !ok || snap.Score != want {
			t.Fatalf("Pop = %d, %v; want %d, true", snap.Score, ok, want)
		}
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d after draining", s.Len())
	}
}

func TestUndoClear(t *testing.T) {
	s := NewUndoStack(4)
	s.Push(NewBoard(2), 1)
	s.Push(NewBoard(2), 2)

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len = %d after Clear", s.Len())
	}
	if _, ok := s.Pop(); ok {
		t.Error("Pop after Clear should be empty")
	}
}

func TestUndoDefaultDepth(t *testing.T) {
	if got := NewUndoStack(0).Cap(); got != DefaultUndoDepth {
		t.Errorf("Cap = %d, want %d", got, DefaultUndoDepth)
	}
}
