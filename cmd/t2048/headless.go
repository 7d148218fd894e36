package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// ErrGameOver is returned when a move is requested on a finished game.
var ErrGameOver = errors.New("game over: start a new one with 't2048 new'")

var flagVariant string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved board",
	Long: `Print the board, score and status of the saved game.
A new game is started and saved when there is none.

Examples:
  t2048 show
  t2048 show --variant 2048_big --session work`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runHeadless(cmd.OutOrStdout(), func(*t2048.Session) (string, error) {
			return "", nil
		})
	},
}

var moveCmd = &cobra.Command{
	Use:   "move <up|down|left|right>",
	Short: "Apply one move to the saved game",
	Long: `Slide the tiles of the saved game in one direction and save the result.
Directions also accept the WASD and HJKL letters (d is right, not down).

Examples:
  t2048 move left
  t2048 move k`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := t2048.ParseDirection(args[0])
		if err != nil {
			return err
		}
		return runHeadless(cmd.OutOrStdout(), func(s *t2048.Session) (string, error) {
			return applyMove(s, dir)
		})
	},
}

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the last move of the saved game",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runHeadless(cmd.OutOrStdout(), func(s *t2048.Session) (string, error) {
			if !s.Undo() {
				return "Nothing to undo.", nil
			}
			return "Undone.", nil
		})
	},
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new saved game",
	Long:  `Discard the saved board and start over. The best score is kept.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runHeadless(cmd.OutOrStdout(), func(s *t2048.Session) (string, error) {
			s.NewGame()
			return "New game.", nil
		})
	},
}

var forgetCmd = &cobra.Command{
	Use:   "forget",
	Short: "Delete the saved game",
	Long: `Delete the saved game of the session. Recorded scores are kept; the
next play or show starts a new game.

Examples:
  t2048 forget
  t2048 forget --variant 2048_mini --session work`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := requireVariant(flagVariant); err != nil {
			return err
		}
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		return forgetSession(cmd.OutOrStdout(), store, flagVariant, flagSession)
	},
}

func init() {
	for _, c := range []*cobra.Command{showCmd, moveCmd, undoCmd, newCmd, forgetCmd} {
		c.Flags().StringVarP(&flagVariant, "variant", "g", "2048", "Variant to play")
	}
}

// runHeadless opens the store and runs op against the saved session.
func runHeadless(out io.Writer, op func(*t2048.Session) (string, error)) error {
	if err := requireVariant(flagVariant); err != nil {
		return err
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	return headlessStep(out, store, flagVariant, flagSession, rand.New(rand.NewSource(seed())), op)
}

// headlessStep loads the session for key, applies op, saves the session
// and prints the board. op's message is printed above the board.
func headlessStep(out io.Writer, store *storage.Store, gameID, key string, rng t2048.Rand, op func(*t2048.Session) (string, error)) error {
	v, ok := t2048.GetVariant(gameID)
	if !ok {
		return fmt.Errorf("unknown variant %q", gameID)
	}
	rules := v.Rules(t2048.BaseRules())

	best, err := store.HighScore(gameID)
	if err != nil {
		return err
	}
	data, err := store.LoadSession(key, gameID)
	if err != nil {
		return err
	}

	s, restored := t2048.LoadOrNew(rules, rng, data, best)
	if !restored && data != nil {
		logger.Warn("saved game unreadable, starting a new one", "game", gameID, "session", key)
	}

	msg, opErr := op(s)
	if err := persist(store, gameID, key, s); err != nil {
		return err
	}

	if msg != "" {
		fmt.Fprintln(out, msg)
	}
	printSession(out, s)
	return opErr
}

func applyMove(s *t2048.Session, dir t2048.Direction) (string, error) {
	out := s.Move(dir)
	switch {
	case !out.Moved && out.Lost:
		return "", ErrGameOver
	case !out.Moved:
		return fmt.Sprintf("Nothing moves %s.", dir), nil
	case out.Gained > 0:
		return fmt.Sprintf("Moved %s, +%d.", dir, out.Gained), nil
	}
	return fmt.Sprintf("Moved %s.", dir), nil
}

// persist saves the session and records the run's score.
func persist(store *storage.Store, gameID, key string, s *t2048.Session) error {
	data, err := s.MarshalRecord()
	if err != nil {
		return err
	}
	if err := store.SaveSession(key, gameID, data); err != nil {
		return err
	}

	st := s.State()
	if st.Score > 0 {
		if _, err := store.SaveScore(gameID, st.RunID, st.Score); err != nil {
			return err
		}
	}
	return nil
}

func printSession(out io.Writer, s *t2048.Session) {
	st := s.State()
	rules := s.Rules()

	fmt.Fprintln(out, st.Board.String())
	fmt.Fprintf(out, "Score: %d  Best: %d  Undo: %d\n", st.Score, st.Best, s.UndoLen())

	switch {
	case st.Over:
		fmt.Fprintln(out, "Game over.")
	case st.ReachedWinTile && rules.WinTile > 0:
		fmt.Fprintf(out, "You reached %d!\n", rules.WinTile)
	}
}

// forgetSession removes the saved game for key. Scores are untouched.
func forgetSession(out io.Writer, store *storage.Store, gameID, key string) error {
	data, err := store.LoadSession(key, gameID)
	if err != nil {
		return err
	}
	if data == nil {
		fmt.Fprintln(out, "No saved game.")
		return nil
	}
	if err := store.DeleteSession(key, gameID); err != nil {
		return err
	}
	fmt.Fprintf(out, "Forgot saved %s game of %s.\n", gameID, key)
	return nil
}
