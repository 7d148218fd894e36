// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 list                   - List available variants
//	t2048 play [variant]         - Play a variant (default: 2048)
//	t2048 menu                   - Pick a variant interactively
//	t2048 serve                  - Start SSH server for remote play
//	t2048 scores [variant]       - Show high scores
//	t2048 show [--variant id]    - Print the saved board
//	t2048 move <dir>             - Apply one move to the saved game
//	t2048 undo [--variant id]    - Undo the last move of the saved game
//	t2048 new [--variant id]     - Start a new saved game
//	t2048 forget [--variant id]  - Delete the saved game
//
// Global flags:
//
//	--config <path>      - Config file (default search: ~/.t2048/config.yaml, ./configs/t2048.yaml)
//	--difficulty <name>  - easy, normal or hard
//	--db <path>          - Database path (default from config: ~/.t2048/scores.db)
//	--session <key>      - Session key saved games are stored under
//	--seed <value>       - RNG seed for reproducible spawns
//	--fps <rate>         - Tick rate (default from config)
//	--verbose            - Debug logging
//	--log-file <path>    - Write logs to a file while the TUI is running
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagSession    string
	flagVerbose    bool
	flagLogFile    string
)

// Set up by the root pre-run hook.
var logger *log.Logger

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - the sliding-tile puzzle in your terminal",
	Long: `t2048 plays 2048 in the terminal, locally or over SSH.

Slide the tiles, merge equal neighbours, reach 2048. Games are saved
after every move and resumed next time you play.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  show     - Print the saved board
  move     - Apply one move to the saved game
  undo     - Undo the last move of the saved game
  new      - Start a new saved game
  forget   - Delete the saved game

Examples:
  t2048 play
  t2048 play 2048_big --difficulty hard
  t2048 menu
  t2048 serve --ssh :2222
  t2048 move left`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (empty = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagSession, "session", "local", "Session key saved games are stored under")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file used while the TUI is running")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(undoCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(forgetCmd)
}

// setup loads the config, applies the difficulty preset and registers
// config-defined variants before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	logger = newLogger(os.Stderr)

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger.Debug("config loaded", "source", source, "difficulty", preset)

	if flagDBPath == "" {
		flagDBPath = cfg.Storage.Path
	}
	if flagFPS <= 0 {
		flagFPS = cfg.UI.TickRate
	}

	t2048.SetBaseRules(cfg.EngineRules())
	for _, v := range cfg.ExtraVariants() {
		if registry.Exists(v.ID) {
			logger.Warn("variant already registered, skipping", "id", v.ID)
			continue
		}
		t2048.Register(v)
	}

	return nil
}

func newLogger(w io.Writer) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
	})
	if flagVerbose {
		l.SetLevel(log.DebugLevel)
	}
	return l
}

// tuiLogger returns a logger that does not write over the alternate screen.
// The returned function closes the log file, if any.
func tuiLogger() (*log.Logger, func()) {
	if flagLogFile == "" {
		return newLogger(io.Discard), func() {}
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logger.Warn("could not open log file", "path", flagLogFile, "error", err)
		return newLogger(io.Discard), func() {}
	}
	return newLogger(f), func() { f.Close() }
}

// openStore opens the database. Failure is logged and yields nil; games
// still run without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// runtimeConfig builds the platform config for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// requireVariant fails with a hint when id is not a registered variant.
func requireVariant(id string) error {
	if !registry.Exists(id) {
		return fmt.Errorf("unknown variant %q (run 't2048 list' to see available variants)", id)
	}
	return nil
}
