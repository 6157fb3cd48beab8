// internal/cli/play.go
//
// `wordle play`: one game in the terminal, reading a guess per line.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/robalobadob/wordle-unlimited/internal/daily"
	"github.com/robalobadob/wordle-unlimited/internal/game"
	"github.com/robalobadob/wordle-unlimited/internal/render"
	"github.com/robalobadob/wordle-unlimited/internal/words"
)

type playOptions struct {
	Mode     game.Mode
	Attempts int
	Hard     bool
	Strict   bool
	Length   int
	Rand     game.Rand
	Date     daily.Date
	Selector daily.Selector
	Color    bool
}

func newPlayCmd() *cobra.Command {
	var (
		mode     string
		attempts int
		hard     bool
		strict   bool
		length   int
		seed     uint64
		date     string
		noColor  bool
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			useConsoleLog()

			o := playOptions{
				Mode:     game.ParseMode(mode),
				Attempts: cfg.Game.MaxAttempts,
				Hard:     cfg.Game.HardMode,
				Strict:   cfg.Game.StrictHardMode,
				Length:   length,
				Color:    !noColor && isTerminal(cmd.OutOrStdout()),
			}
			if cmd.Flags().Changed("attempts") {
				if attempts < 1 || attempts > 10 {
					return fmt.Errorf("--attempts must be between 1 and 10, got %d", attempts)
				}
				o.Attempts = attempts
			}
			if cmd.Flags().Changed("hard") {
				o.Hard = hard
			}
			if cmd.Flags().Changed("strict") {
				o.Strict = strict
			}
			if cmd.Flags().Changed("seed") {
				o.Rand = rand.New(rand.NewPCG(seed, seed))
			}

			d, err := resolveDate(time.Now(), date)
			if err != nil {
				return err
			}
			o.Date = d

			sel, err := daily.NewSelector(cfg.Daily.Scheme, cfg.Daily.Salt)
			if err != nil {
				return err
			}
			o.Selector = sel

			dict, err := loadDictionary(cfg)
			if err != nil {
				return err
			}
			_, err = runPlay(cmd.InOrStdin(), cmd.OutOrStdout(), dict, o)
			return err
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "daily", "daily or free")
	cmd.Flags().IntVar(&attempts, "attempts", game.DefaultMaxAttempts, "maximum number of guesses (1-10)")
	cmd.Flags().BoolVar(&hard, "hard", false, "hard mode: revealed hints must be used")
	cmd.Flags().BoolVar(&strict, "strict", false, "strict hard mode: present letters must also move")
	cmd.Flags().IntVar(&length, "length", 0, "free play: only words of this length")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "free play: seed for a reproducible word")
	cmd.Flags().StringVar(&date, "date", "", "daily: play another day (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable coloured output")
	return cmd
}

// resolveDate returns the Rome date of now, or the date given by flag.
func resolveDate(now time.Time, flag string) (daily.Date, error) {
	if flag == "" {
		return daily.DateOf(now), nil
	}
	return daily.ParseDate(flag)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// runPlay drives one game over line-based input. It returns the session when
// input ends, whether or not the game finished.
func runPlay(in io.Reader, out io.Writer, dict *words.Dictionary, o playOptions) (*game.Session, error) {
	sess, err := game.NewGame(dict, game.Options{
		Mode:           o.Mode,
		MaxAttempts:    o.Attempts,
		HardMode:       o.Hard,
		StrictHardMode: o.Strict,
		Date:           o.Date,
		Selector:       o.Selector,
		Rand:           o.Rand,
		Length:         o.Length,
	})
	if err != nil {
		if errors.Is(err, game.ErrEmptyAnswerList) {
			return nil, errors.New(game.Describe(err))
		}
		return nil, err
	}

	fmt.Fprintln(out, header(sess))
	alphabet := dict.Alphabet()
	showKeyboard := render.ShouldShowKeyboard(alphabet)

	sc := bufio.NewScanner(in)
	for !sess.Status().Terminal() {
		fmt.Fprintf(out, "%d/%d> ", sess.Attempts()+1, sess.MaxAttempts())
		if !sc.Scan() {
			fmt.Fprintln(out)
			break
		}
		guess := strings.TrimSuffix(sc.Text(), "\r")
		if guess == "" {
			continue
		}
		if _, err := sess.Submit(guess); err != nil {
			fmt.Fprintln(out, "! "+game.Describe(err))
			continue
		}

		history := sess.History()
		fmt.Fprintln(out, render.TerminalRow(history[len(history)-1], o.Color))
		if showKeyboard && !sess.Status().Terminal() {
			fmt.Fprint(out, render.TerminalKeyboard(render.Keyboard(alphabet, sess.Letters()), o.Color))
		}
	}
	if err := sc.Err(); err != nil {
		return sess, fmt.Errorf("failed to read guess: %w", err)
	}

	switch sess.Status() {
	case game.Won:
		fmt.Fprintf(out, "Well done! Solved in %d/%d.\n\n%s\n", sess.Attempts(), sess.MaxAttempts(), render.SessionShareText(sess))
	case game.Lost:
		fmt.Fprintf(out, "Out of attempts. The word was %q.\n\n%s\n", sess.Secret(), render.SessionShareText(sess))
	default:
		fmt.Fprintln(out, "Game left unfinished.")
	}
	return sess, nil
}

func header(s *game.Session) string {
	var b strings.Builder
	b.WriteString("Wordle senza limiti")
	if s.Mode() == game.ModeDaily {
		b.WriteString(" · daily " + s.Date().String())
	} else {
		b.WriteString(" · free play")
	}
	fmt.Fprintf(&b, " · %d letters · %d attempts", s.Length(), s.MaxAttempts())
	switch {
	case s.StrictHardMode():
		b.WriteString(" · strict hard mode")
	case s.HardMode():
		b.WriteString(" · hard mode")
	}
	return b.String()
}
