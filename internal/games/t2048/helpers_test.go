package t2048

// scriptRand replays fixed values and records the bounds it was asked for.
// Once a script runs out, Intn returns 0 and Float64 returns 0.99 (a 2).
type scriptRand struct {
	ints   []int
	floats []float64
	asked  []int
}

func (r *scriptRand) Intn(n int) int {
	r.asked = append(r.asked, n)
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// sessionWith returns a session on board with the given score and no history.
func sessionWith(rules Rules, rng Rand, board Board, score int) *Session {
	s := newSession(rules, rng)
	s.state = GameState{
		Board: board,
		Score: score,
		Best:  score,
		Over:  !CanMove(board),
		RunID: "2f1d3c1a-8a4e-4f55-9c1e-2b0c7f6e9d10",
	}
	return s
}
