package t2048

import (
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Status is what the game adapter is currently showing.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon            // Win overlay, waiting for continue or restart
	StatusGameOver
	StatusPaused
	StatusTooSmall
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusGameOver:
		return "game over"
	case StatusPaused:
		return "paused"
	case StatusTooSmall:
		return "too small"
	default:
		return "unknown"
	}
}

// Game adapts a Session to the platform game loop.
type Game struct {
	variant Variant
	rules   Rules
	session *Session
	flash   flash

	screenW int
	screenH int

	paused   bool
	tooSmall bool
	showWin  bool // Win overlay is up
	resumed  bool // Reset restored a saved session
}

// New creates a game for the given variant using the current base rules.
func New(v Variant) *Game {
	return &Game{
		variant: v,
		rules:   v.Rules(BaseRules()),
	}
}

func init() {
	for _, v := range Variants {
		Register(v)
	}
}

// Register adds a variant to the package list and the game registry.
// Registering an ID twice panics, as with registry.Register.
func Register(v Variant) {
	registry.Register(v.ID, func() registry.Game {
		return New(v)
	})
	if _, ok := GetVariant(v.ID); !ok {
		Variants = append(Variants, v)
	}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048 " + g.variant.Name
}

// Reset resumes cfg.SavedSession when it is valid for the variant's rules,
// otherwise starts a new game with cfg.Best as the best score.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	g.session, g.resumed = LoadOrNew(g.rules, rng, cfg.SavedSession, cfg.Best)

	g.paused = false
	g.showWin = false
	g.flash = flash{}
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen size the board is laid out for.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := minScreenSize(g.rules.Size)
	g.tooSmall = w < minW || h < minH
}

// Resumed reports whether the last Reset restored a saved session.
func (g *Game) Resumed() bool {
	return g.resumed
}

// Session returns the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Rules returns the rules of the variant being played.
func (g *Game) Rules() Rules {
	return g.rules
}

// Status reports what the game is showing right now.
func (g *Game) Status() Status {
	switch {
	case g.tooSmall:
		return StatusTooSmall
	case g.paused:
		return StatusPaused
	case g.showWin:
		return StatusWon
	case g.session.state.Over:
		return StatusGameOver
	default:
		return StatusPlaying
	}
}

// Step advances the game by one tick. At most one action is applied.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.flash.tick()

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.session.NewGame()
		g.showWin = false
		g.flash = flash{}
		return core.StepResult{State: g.State(), Dirty: true}
	}

	if g.showWin {
		if in.Has(core.ActionConfirm) {
			g.showWin = false
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionUndo) {
		ok := g.session.Undo()
		if ok {
			g.flash = flash{}
		}
		return core.StepResult{State: g.State(), Dirty: ok}
	}

	dir, ok := directionFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	out := g.session.Move(dir)
	if !out.Moved {
		return core.StepResult{State: g.State()}
	}
	g.flash.start(out.Merged, out.Spawned)
	if out.WonNow {
		g.showWin = true
	}

	return core.StepResult{State: g.State(), Dirty: true}
}

// directionFor picks the move direction from an input frame.
func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.session.state
	return core.GameState{
		Score:    st.Score,
		Best:     st.Best,
		RunID:    st.RunID,
		Won:      st.ReachedWinTile,
		GameOver: st.Over,
		Paused:   g.paused || g.tooSmall || g.showWin,
	}
}

// Save encodes the session for resuming later.
func (g *Game) Save() ([]byte, error) {
	return g.session.MarshalRecord()
}
