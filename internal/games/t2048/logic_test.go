package t2048

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSlideLine(t *testing.T) {
	tests := []struct {
		name   string
		input  []int
		want   []int
		score  int
		merged []int
	}{
		{"simple merge", []int{2, 2, 0, 0}, []int{4, 0, 0, 0}, 4, []int{0}},
		{"merge with trailing tile", []int{2, 2, 2, 0}, []int{4, 2, 0, 0}, 4, []int{0}},
		{"double merge", []int{2, 2, 2, 2}, []int{4, 4, 0, 0}, 8, []int{0, 1}},
		{"merged tile does not merge again", []int{2, 2, 4, 0}, []int{4, 4, 0, 0}, 4, []int{0}},
		{"two pairs", []int{4, 4, 8, 8}, []int{8, 16, 0, 0}, 24, []int{0, 1}},
		{"no merge possible", []int{2, 4, 8, 16}, []int{2, 4, 8, 16}, 0, nil},
		{"slide with gap", []int{0, 0, 2, 2}, []int{4, 0, 0, 0}, 4, []int{0}},
		{"slide with multiple gaps", []int{2, 0, 0, 2}, []int{4, 0, 0, 0}, 4, []int{0}},
		{"first pair wins", []int{8, 0, 8, 8}, []int{16, 8, 0, 0}, 16, []int{0}},
		{"no change needed", []int{4, 2, 0, 0}, []int{4, 2, 0, 0}, 0, nil},
		{"empty row", []int{0, 0, 0, 0}, []int{0, 0, 0, 0}, 0, nil},
		{"short line", []int{2, 2, 2}, []int{4, 2, 0}, 4, []int{0}},
		{"long line", []int{2, 2, 4, 4, 8}, []int{4, 8, 8, 0, 0}, 12, []int{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, score, merged := slideLine(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("slideLine(%v) mismatch (-want +got):\n%s", tt.input, diff)
			}
			if score != tt.score {
				t.Errorf("score = %d, want %d", score, tt.score)
			}
			if diff := cmp.Diff(tt.merged, merged); diff != "" {
				t.Errorf("merged mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSlideDirections(t *testing.T) {
	board := Board{
		{2, 2, 0, 0},
		{0, 4, 0, 4},
		{2, 0, 2, 0},
		{0, 0, 0, 8},
	}

	tests := []struct {
		dir   Direction
		want  Board
		score int
	}{
		{DirLeft, Board{
			{4, 0, 0, 0},
			{8, 0, 0, 0},
			{4, 0, 0, 0},
			{8, 0, 0, 0},
		}, 16},
		{DirRight, Board{
			{0, 0, 0, 4},
			{0, 0, 0, 8},
			{0, 0, 0, 4},
			{0, 0, 0, 8},
		}, 16},
		{DirUp, Board{
			{4, 2, 2, 4},
			{0, 4, 0, 8},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		}, 4},
		{DirDown, Board{
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 2, 0, 4},
			{4, 4, 2, 8},
		}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			got, score, changed, _ := Slide(board, tt.dir)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Slide %s mismatch (-want +got):\n%s", tt.dir, diff)
			}
			if score != tt.score {
				t.Errorf("score = %d, want %d", score, tt.score)
			}
			if !changed {
				t.Error("expected changed")
			}
		})
	}

	if board[0][0] != 2 || board[1][1] != 4 {
		t.Error("Slide modified its input")
	}
}

func TestSlideOtherSizes(t *testing.T) {
	three := Board{
		{2, 2, 2},
		{0, 0, 4},
		{4, 0, 4},
	}
	got, score, _, _ := Slide(three, DirLeft)
	want := Board{
		{4, 2, 0},
		{4, 0, 0},
		{8, 0, 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("3x3 left mismatch (-want +got):\n%s", diff)
	}
	if score != 12 {
		t.Errorf("3x3 score = %d, want 12", score)
	}

	five := NewBoard(5)
	for r := range 5 {
		five[r][2] = 2
	}
	got, score, _, _ = Slide(five, DirDown)
	want = NewBoard(5)
	want[4][2] = 4
	want[3][2] = 4
	want[2][2] = 2
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("5x5 down mismatch (-want +got):\n%s", diff)
	}
	if score != 8 {
		t.Errorf("5x5 score = %d, want 8", score)
	}
}

func TestSlideMergedPositions(t *testing.T) {
	board := Board{
		{0, 0, 2, 2},
		{0, 0, 0, 0},
		{4, 4, 4, 4},
		{0, 0, 0, 0},
	}
	_, _, _, merged := Slide(board, DirRight)
	want := []Pos{{Row: 0, Col: 3}, {Row: 2, Col: 3}, {Row: 2, Col: 2}}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Errorf("merged mismatch (-want +got):\n%s", diff)
	}
}

func TestNoChangeNoSpawn(t *testing.T) {
	board := Board{
		{2, 4, 8, 16},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	rng := &scriptRand{}

	res := ApplyMove(board, 10, DirLeft, false, DefaultRules(), rng)
	if res.Changed {
		t.Fatal("expected no change")
	}
	if diff := cmp.Diff(board, res.Board); diff != "" {
		t.Errorf("board changed on no-op (-want +got):\n%s", diff)
	}
	if res.Score != 10 || res.Gained != 0 {
		t.Errorf("score = %d gained = %d, want 10 and 0", res.Score, res.Gained)
	}
	if res.Spawned != nil {
		t.Error("no-op must not spawn")
	}
	if len(rng.asked) != 0 {
		t.Error("no-op must not draw from the random source")
	}
}

func TestSlidePanicsOnInvalidDirection(t *testing.T) {
	for _, dir := range []Direction{Direction(-1), Direction(9)} {
		t.Run(dir.String(), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			Slide(Board{{2, 2}, {0, 0}}, dir)
		})
	}
}

func TestSlidePanicsOnInvalidBoard(t *testing.T) {
	tests := map[string]Board{
		"odd value": {{3, 0}, {0, 0}},
		"ragged":    {{2, 0}, {0}},
		"too small": {{2}},
		"one":       {{1, 0}, {0, 0}},
	}
	for name, board := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			Slide(board, DirLeft)
		})
	}
}

func TestConcreteScenario(t *testing.T) {
	board := Board{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	rng := &scriptRand{ints: []int{7}}

	res := ApplyMove(board, 0, DirLeft, false, DefaultRules(), rng)
	if !res.Changed {
		t.Fatal("expected change")
	}
	if res.Gained != 4 || res.Score != 4 {
		t.Errorf("gained = %d score = %d, want 4 and 4", res.Gained, res.Score)
	}
	if diff := cmp.Diff([]int{15}, rng.asked); diff != "" {
		t.Errorf("spawn cell drawn from wrong range (-want +got):\n%s", diff)
	}

	wantSpawn := &Tile{Pos: Pos{Row: 2, Col: 0}, Value: 2}
	if diff := cmp.Diff(wantSpawn, res.Spawned); diff != "" {
		t.Errorf("spawned mismatch (-want +got):\n%s", diff)
	}

	want := Board{
		{4, 0, 0, 0},
		{0, 0, 0, 0},
		{2, 0, 0, 0},
		{0, 0, 0, 0},
	}
	if diff := cmp.Diff(want, res.Board); diff != "" {
		t.Errorf("board mismatch (-want +got):\n%s", diff)
	}
}

func TestSpawnValue(t *testing.T) {
	board := NewBoard(4)
	tile := Spawn(board, &scriptRand{floats: []float64{0.05}}, 0.10)
	if tile == nil || tile.Value != 4 {
		t.Fatalf("Spawn = %+v, want a 4", tile)
	}
	if board[tile.Row][tile.Col] != 4 {
		t.Error("spawned tile not placed on the board")
	}
}

func TestSpawnFullBoard(t *testing.T) {
	board := Board{{2, 4}, {8, 16}}
	if tile := Spawn(board, &scriptRand{}, 0.1); tile != nil {
		t.Errorf("Spawn on full board = %+v, want nil", tile)
	}
}

func TestSpawnDistribution(t *testing.T) {
	const trials = 10000
	rng := rand.New(rand.NewSource(1))

	fours := 0
	cells := make(map[Pos]int)
	for range trials {
		board := NewBoard(4)
		tile := Spawn(board, rng, 0.10)
		if tile.Value == 4 {
			fours++
		}
		cells[tile.Pos]++
	}

	// 10% of 10000 with a standard deviation of 30.
	if fours < 850 || fours > 1150 {
		t.Errorf("spawned %d fours in %d trials, want about 1000", fours, trials)
	}
	if len(cells) != 16 {
		t.Fatalf("spawned into %d distinct cells, want 16", len(cells))
	}
	for p, n := range cells {
		if n < 450 || n > 800 {
			t.Errorf("cell %v got %d spawns, want about 625", p, n)
		}
	}
}

func TestApplyMoveConservation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	rules := DefaultRules()
	rules.WinTile = 0
	board := NewBoard(4)
	Spawn(board, rng, rules.Spawn4Prob)
	Spawn(board, rng, rules.Spawn4Prob)
	score := 0

	for i := 0; i < 500 && CanMove(board); i++ {
		dir := Directions[rng.Intn(len(Directions))]
		res := ApplyMove(board, score, dir, false, rules, rng)

		if !res.Changed {
			if diff := cmp.Diff(board, res.Board); diff != "" {
				t.Fatalf("move %d: unchanged move altered board:\n%s", i, diff)
			}
			continue
		}

		if res.Spawned == nil {
			t.Fatalf("move %d: changed move did not spawn", i)
		}
		if got, want := Sum(res.Board), Sum(board)+res.Spawned.Value; got != want {
			t.Fatalf("move %d: tile sum %d, want %d", i, got, want)
		}

		mergedTotal := 0
		for _, p := range res.Merged {
			mergedTotal += res.Board[p.Row][p.Col]
		}
		if mergedTotal != res.Gained {
			t.Fatalf("move %d: gained %d, merged tiles total %d", i, res.Gained, mergedTotal)
		}
		if res.Score != score+res.Gained {
			t.Fatalf("move %d: score %d, want %d", i, res.Score, score+res.Gained)
		}
		if err := res.Board.Validate(4); err != nil {
			t.Fatalf("move %d: %v", i, err)
		}

		board, score = res.Board, res.Score
	}
}

func TestWinFiresOnce(t *testing.T) {
	rules := DefaultRules()
	s := sessionWith(rules, &scriptRand{}, Board{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{1024, 1024, 0, 0},
	}, 0)

	out := s.Move(DirLeft)
	if !out.WonNow {
		t.Fatal("expected WonNow on the move that makes 2048")
	}
	if !s.State().ReachedWinTile {
		t.Error("ReachedWinTile not set")
	}

	for _, dir := range []Direction{DirRight, DirUp, DirLeft, DirDown} {
		out = s.Move(dir)
		if out.WonNow {
			t.Fatalf("WonNow fired again on %s", dir)
		}
	}

	s.NewGame()
	if s.State().ReachedWinTile {
		t.Error("NewGame must clear ReachedWinTile")
	}
}

func TestWinDisabled(t *testing.T) {
	rules := DefaultRules()
	rules.WinTile = 0
	board := Board{{1024, 1024}, {0, 0}}
	res := ApplyMove(board, 0, DirLeft, false, rules, &scriptRand{})
	if res.WonNow {
		t.Error("WonNow with winning disabled")
	}
}

func TestParseDirection(t *testing.T) {
	tests := map[string]Direction{
		"up": DirUp, "K": DirUp, "w": DirUp,
		"down": DirDown, "j": DirDown, "S": DirDown,
		" left ": DirLeft, "h": DirLeft, "a": DirLeft,
		"RIGHT": DirRight, "l": DirRight, "d": DirRight,
	}
	for in, want := range tests {
		got, err := ParseDirection(in)
		if err != nil {
			t.Errorf("ParseDirection(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseDirection(%q) = %s, want %s", in, got, want)
		}
	}

	for _, in := range []string{"sideways", "u", "r", ""} {
		if _, err := ParseDirection(in); err == nil {
			t.Errorf("ParseDirection(%q) should fail", in)
		}
	}
}
