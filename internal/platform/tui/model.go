package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// GameModel is the Bubble Tea model that runs one game. It resumes the
// player's saved session on start, saves it after every step that changed
// it and records the run's score when the game ends or the player leaves.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	sessionKey string
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper

	standalone bool // Quit the program instead of returning to a menu
	quitting   bool
	backToMenu bool
	savedRun   string // Run and score last written to the scoreboard
	savedScore int
}

// NewGameModel creates a game model. sessionKey identifies whose saved
// session is loaded and written. store and logger may be nil.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, sessionKey string, logger *log.Logger) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		sessionKey: sessionKey,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
	m.loadSaved()

	// Reset here rather than in Init so the first View has a board.
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// loadSaved fills the runtime config with the stored session and best score.
func (m *GameModel) loadSaved() {
	if m.store == nil {
		return
	}

	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not read high score", "game", m.game.ID(), "error", err)
	}
	m.config.Best = best

	data, err := m.store.LoadSession(m.sessionKey, m.game.ID())
	if err != nil {
		m.logger.Warn("could not load session", "game", m.game.ID(), "key", m.sessionKey, "error", err)
		return
	}
	m.config.SavedSession = data
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.leave()
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.inputFrame.Clear()
		m.leave()
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Dirty {
		m.saveSession()
	}
	if m.gameState.GameOver {
		m.saveScore()
	}

	return m, tickCmd(m.config.TickRate)
}

// leave persists everything before the model is closed.
func (m *GameModel) leave() {
	m.gameState = m.game.State()
	m.saveSession()
	m.saveScore()
}

// saveSession writes the game's session. Failures are logged and play goes on.
func (m *GameModel) saveSession() {
	if m.store == nil {
		return
	}
	data, err := m.game.Save()
	if err != nil {
		m.logger.Warn("could not encode session", "game", m.game.ID(), "error", err)
		return
	}
	if err := m.store.SaveSession(m.sessionKey, m.game.ID(), data); err != nil {
		m.logger.Warn("could not save session", "game", m.game.ID(), "key", m.sessionKey, "error", err)
	}
}

// saveScore records the current run's score on game over and when the
// player leaves. A run already recorded at this score is skipped; the store
// keeps one row per run.
func (m *GameModel) saveScore() {
	st := m.gameState
	if m.store == nil || st.Score == 0 {
		return
	}
	if st.RunID == m.savedRun && st.Score <= m.savedScore {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), st.RunID, st.Score); err != nil {
		m.logger.Warn("could not save score", "game", m.game.ID(), "error", err)
		return
	}
	m.savedRun, m.savedScore = st.RunID, st.Score
	m.logger.Debug("score saved", "game", m.game.ID(), "run", st.RunID, "score", st.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".t2048", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Resumed reports whether the game picked up a saved session.
func (m GameModel) Resumed() bool {
	r, ok := m.game.(interface{ Resumed() bool })
	return ok && r.Resumed()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the terminal until the player quits or goes back.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, sessionKey string, logger *log.Logger) error {
	model := NewGameModel(game, store, cfg, sessionKey, logger)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
