package t2048

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrCorruptRecord is returned when a persisted session cannot be restored.
// Callers treat it the same as a missing record.
var ErrCorruptRecord = errors.New("t2048: corrupt session record")

// Record is the persisted form of a session.
type Record struct {
	Board          Board      `json:"board"`
	Score          int        `json:"score"`
	Best           int        `json:"best"`
	ReachedWinTile bool       `json:"reachedWinTile"`
	RunID          string     `json:"runId,omitempty"`
	History        []Snapshot `json:"history,omitempty"`
}

// Record captures the session for persistence, undo history included.
func (s *Session) Record() Record {
	return Record{
		Board:          s.state.Board.Clone(),
		Score:          s.state.Score,
		Best:           s.state.Best,
		ReachedWinTile: s.state.ReachedWinTile,
		RunID:          s.state.RunID,
		History:        s.undo.Snapshots(),
	}
}

// MarshalRecord encodes the session record as JSON.
func (s *Session) MarshalRecord() ([]byte, error) {
	data, err := json.Marshal(s.Record())
	if err != nil {
		return nil, fmt.Errorf("t2048: cannot encode session: %w", err)
	}
	return data, nil
}

// DecodeRecord parses and validates a persisted record against rules.
// Any failure wraps ErrCorruptRecord.
func DecodeRecord(data []byte, rules Rules) (Record, error) {
	var rec Record
	if len(data) == 0 {
		return rec, fmt.Errorf("%w: empty", ErrCorruptRecord)
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return rec, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	if err := rec.validate(rules); err != nil {
		return rec, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	return rec, nil
}

func (r Record) validate(rules Rules) error {
	if err := r.Board.Validate(rules.Size); err != nil {
		return err
	}
	if r.Score < 0 || r.Best < 0 {
		return fmt.Errorf("negative score %d / best %d", r.Score, r.Best)
	}
	if r.RunID != "" {
		if _, err := uuid.Parse(r.RunID); err != nil {
			return fmt.Errorf("run id: %w", err)
		}
	}
	for i, snap := range r.History {
		if err := snap.Board.Validate(rules.Size); err != nil {
			return fmt.Errorf("history %d: %w", i, err)
		}
		if snap.Score < 0 {
			return fmt.Errorf("history %d: negative score %d", i, snap.Score)
		}
	}
	return nil
}

// RestoreSession rebuilds a session from a persisted record.
// History beyond the undo depth is trimmed from the oldest end.
func RestoreSession(rules Rules, rng Rand, data []byte) (*Session, error) {
	rec, err := DecodeRecord(data, rules)
	if err != nil {
		return nil, err
	}

	s := newSession(rules, rng)
	s.state = GameState{
		Board:          rec.Board,
		Score:          rec.Score,
		Best:           max(rec.Best, rec.Score),
		ReachedWinTile: rec.ReachedWinTile,
		Over:           !CanMove(rec.Board),
		RunID:          rec.RunID,
	}
	if s.state.RunID == "" {
		s.state.RunID = uuid.NewString()
	}
	for _, snap := range rec.History {
		s.undo.Push(snap.Board, snap.Score)
	}

	return s, nil
}

// LoadOrNew restores a session from data, or starts a new game when data
// is absent or invalid. fallbackBest seeds Best for the new game.
// restored reports which path was taken.
func LoadOrNew(rules Rules, rng Rand, data []byte, fallbackBest int) (s *Session, restored bool) {
	if prev, err := RestoreSession(rules, rng, data); err == nil {
		if fallbackBest > prev.state.Best {
			prev.state.Best = fallbackBest
		}
		return prev, true
	}

	s = newSession(rules, rng)
	s.state.Best = fallbackBest
	s.NewGame()
	return s, false
}
