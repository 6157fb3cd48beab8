// internal/cli/serve.go
//
// `wordle serve`: builds the web UI from configuration and listens.

package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-unlimited/internal/config"
	"github.com/robalobadob/wordle-unlimited/internal/daily"
	"github.com/robalobadob/wordle-unlimited/internal/game"
	"github.com/robalobadob/wordle-unlimited/internal/httpserver"
	"github.com/robalobadob/wordle-unlimited/internal/store"
)

func newServeCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != "" {
				cfg.Port = port
			}
			srv, err := newServer(cfg)
			if err != nil {
				return err
			}
			log.Info().Str("port", cfg.Port).Str("daily_scheme", cfg.Daily.Scheme).Msg("starting wordle server")
			return srv.Start(":" + cfg.Port)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")
	return cmd
}

func newServer(c *config.Config) (*httpserver.Server, error) {
	dict, err := loadDictionary(c)
	if err != nil {
		return nil, err
	}
	sel, err := daily.NewSelector(c.Daily.Scheme, c.Daily.Salt)
	if err != nil {
		return nil, err
	}
	return httpserver.New(dict, store.NewMemoryStore(), httpserver.Options{
		Defaults: store.Settings{
			Mode:        game.ModeDaily,
			MaxAttempts: c.Game.MaxAttempts,
			HardMode:    c.Game.HardMode,
			Strict:      c.Game.StrictHardMode,
		},
		Selector: sel,
	}), nil
}
