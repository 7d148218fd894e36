package t2048

// DefaultUndoDepth is the number of moves kept for undo.
const DefaultUndoDepth = 20

// Snapshot is a saved board and score pair.
type Snapshot struct {
	Board Board `json:"board"`
	Score int   `json:"score"`
}

// UndoStack is a bounded LIFO of snapshots backed by a ring buffer.
// Pushing onto a full stack evicts the oldest entry.
type UndoStack struct {
	entries []Snapshot
	head    int // index of the oldest entry
	size    int
}

// NewUndoStack creates a stack holding at most depth snapshots.
// A depth below 1 falls back to DefaultUndoDepth.
func NewUndoStack(depth int) *UndoStack {
	if depth < 1 {
		depth = DefaultUndoDepth
	}
	return &UndoStack{entries: make([]Snapshot, depth)}
}

// Cap returns the maximum number of snapshots kept.
func (s *UndoStack) Cap() int {
	return len(s.entries)
}

// Len returns the number of snapshots currently stored.
func (s *UndoStack) Len() int {
	return s.size
}

// Push stores a deep copy of board and score.
func (s *UndoStack) Push(board Board, score int) {
	snap := Snapshot{Board: board.Clone(), Score: score}

	if s.size == len(s.entries) {
		s.entries[s.head] = snap
		s.head = (s.head + 1) % len(s.entries)
		return
	}

	s.entries[(s.head+s.size)%len(s.entries)] = snap
	s.size++
}

// Pop removes and returns the most recent snapshot.
// Returns false when the stack is empty.
func (s *UndoStack) Pop() (Snapshot, bool) {
	if s.size == 0 {
		return Snapshot{}, false
	}

	idx := (s.head + s.size - 1) % len(s.entries)
	snap := s.entries[idx]
	s.entries[idx] = Snapshot{}
	s.size--

	return snap, true
}

// Clear removes every snapshot.
func (s *UndoStack) Clear() {
	for i := range s.entries {
		s.entries[i] = Snapshot{}
	}
	s.head = 0
	s.size = 0
}

// Snapshots returns copies of the stored snapshots, oldest first.
func (s *UndoStack) Snapshots() []Snapshot {
	out := make([]Snapshot, 0, s.size)
	for i := range s.size {
		snap := s.entries[(s.head+i)%len(s.entries)]
		out = append(out, Snapshot{Board: snap.Board.Clone(), Score: snap.Score})
	}
	return out
}
