// internal/cli/daily.go
//
// `wordle daily`: prints which answer the daily selector picks for a date.

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-unlimited/internal/daily"
	"github.com/robalobadob/wordle-unlimited/internal/words"
)

func newDailyCmd() *cobra.Command {
	var (
		date   string
		reveal bool
	)
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Show the daily word for a Europe/Rome date",
		RunE: func(cmd *cobra.Command, args []string) error {
			useConsoleLog()

			d, err := resolveDate(time.Now(), date)
			if err != nil {
				return err
			}
			sel, err := daily.NewSelector(cfg.Daily.Scheme, cfg.Daily.Salt)
			if err != nil {
				return err
			}
			dict, err := loadDictionary(cfg)
			if err != nil {
				return err
			}
			return runDaily(cmd.OutOrStdout(), dict, sel, d, reveal)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date to inspect (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&reveal, "reveal", false, "print the word itself")
	return cmd
}

func runDaily(out io.Writer, dict *words.Dictionary, sel daily.Selector, d daily.Date, reveal bool) error {
	answers := dict.Answers()
	idx, err := sel.Index(d, len(answers))
	if err != nil {
		return err
	}
	word := answers[idx]
	fmt.Fprintf(out, "%s · day %d · answer #%d of %d · %d letters\n",
		d, d.DaysSince(daily.Epoch), idx, len(answers), len([]rune(word)))
	if reveal {
		fmt.Fprintln(out, word)
	}
	return nil
}
