package t2048

import "github.com/google/uuid"

// GameState is the authoritative state of one game session.
type GameState struct {
	Board          Board
	Score          int
	Best           int  // Highest score seen in this session; survives new games
	ReachedWinTile bool // Set on the first win; cleared only by a new game
	Over           bool // No move can change the board
	RunID          string
}

// MoveOutcome is what Session.Move reports to its caller.
type MoveOutcome struct {
	Moved   bool
	WonNow  bool
	Lost    bool
	Gained  int
	Merged  []Pos
	Spawned *Tile
}

// Session owns a game state and its undo history.
// A Session is not safe for concurrent use; give each player their own.
type Session struct {
	rules Rules
	rng   Rand
	state GameState
	undo  *UndoStack
}

func newSession(rules Rules, rng Rand) *Session {
	return &Session{
		rules: rules,
		rng:   rng,
		undo:  NewUndoStack(rules.UndoDepth),
		state: GameState{Board: NewBoard(rules.Size)},
	}
}

// NewSession creates a session and starts a new game.
func NewSession(rules Rules, rng Rand) *Session {
	s := newSession(rules, rng)
	s.NewGame()
	return s
}

// NewGame resets the board with fresh start tiles, zeroes the score and
// clears undo history. Best is preserved.
func (s *Session) NewGame() {
	board := NewBoard(s.rules.Size)
	for range s.rules.StartTiles {
		Spawn(board, s.rng, s.rules.Spawn4Prob)
	}

	s.state = GameState{
		Board: board,
		Best:  s.state.Best,
		Over:  !CanMove(board),
		RunID: uuid.NewString(),
	}
	s.undo.Clear()
}

// Move applies a move in dir. The pre-move board is pushed onto the undo
// history only when the move changed it, so a no-op leaves history as is
// even when it is full. Moves on a finished game are rejected.
func (s *Session) Move(dir Direction) MoveOutcome {
	if s.state.Over {
		return MoveOutcome{Lost: true}
	}

	res := ApplyMove(s.state.Board, s.state.Score, dir, s.state.ReachedWinTile, s.rules, s.rng)
	if !res.Changed {
		return MoveOutcome{}
	}

	s.undo.Push(s.state.Board, s.state.Score)
	s.state.Board = res.Board
	s.state.Score = res.Score
	if res.WonNow {
		s.state.ReachedWinTile = true
	}
	if s.state.Score > s.state.Best {
		s.state.Best = s.state.Score
	}
	s.state.Over = !CanMove(s.state.Board)

	return MoveOutcome{
		Moved:   true,
		WonNow:  res.WonNow,
		Lost:    s.state.Over,
		Gained:  res.Gained,
		Merged:  res.Merged,
		Spawned: res.Spawned,
	}
}

// Undo restores the most recent snapshot. Returns false when there is
// nothing to undo. Best and ReachedWinTile are not rolled back.
func (s *Session) Undo() bool {
	snap, ok := s.undo.Pop()
	if !ok {
		return false
	}

	s.state.Board = snap.Board
	s.state.Score = snap.Score
	s.state.Over = !CanMove(snap.Board)
	return true
}

// CanUndo reports whether Undo would change anything.
func (s *Session) CanUndo() bool {
	return s.undo.Len() > 0
}

// UndoLen returns the number of moves that can be undone.
func (s *Session) UndoLen() int {
	return s.undo.Len()
}

// Rules returns the rules the session plays by.
func (s *Session) Rules() Rules {
	return s.rules
}

// State returns a copy of the current state.
func (s *Session) State() GameState {
	st := s.state
	st.Board = s.state.Board.Clone()
	return st
}
