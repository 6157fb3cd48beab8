// internal/cli/root.go
//
// Root cobra command: loads configuration once for every subcommand and
// sets the zerolog level from it.

package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-unlimited/internal/config"
	"github.com/robalobadob/wordle-unlimited/internal/words"
)

// Version is overridden at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

var (
	flagConfig string
	cfg        *config.Config
)

// NewRootCmd builds the command tree: serve, play, daily and version.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "wordle",
		Short:         "Wordle senza limiti: Wordle with words of any length",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(flagConfig)
			if err != nil {
				return err
			}
			cfg = c
			if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
				zerolog.SetGlobalLevel(lvl)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default ./wordle.yaml)")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newPlayCmd())
	cmd.AddCommand(newDailyCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// useConsoleLog switches the global logger to human-readable output on stderr
// for interactive commands.
func useConsoleLog() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
}

// loadDictionary loads word lists from the configured files or the embedded
// defaults and logs every loader warning.
func loadDictionary(c *config.Config) (*words.Dictionary, error) {
	dict, err := words.FromConfig(c.Words.AnswersFile, c.Words.AllowedFile, c.Words.CreateStubs)
	if err != nil {
		return nil, fmt.Errorf("failed to load word lists: %w", err)
	}
	for _, w := range dict.Warnings() {
		log.Warn().Msg(w)
	}
	a, g := dict.Stats()
	log.Debug().Int("answers", a).Int("allowed", g).Ints("lengths", dict.Lengths()).Msg("word lists loaded")
	return dict, nil
}
