// Package cli implements the strfmt command.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bjaus/strfmt"
	"github.com/bjaus/strfmt/internal/config"
	"github.com/bjaus/strfmt/internal/logging"
)

// app holds state shared by the subcommands. It is populated by the root
// command's PersistentPreRunE.
type app struct {
	cfgPath   string
	verbosity int

	cfg    *config.Config
	log    zerolog.Logger
	engine *strfmt.Engine
}

// NewRootCmd returns the strfmt root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "strfmt",
		Short: "Render Python-style format templates",
		Long: `strfmt renders templates with indexed placeholders such as {0:>8.2f}
or {1.name|anonymous}, either once from command-line arguments or once per
row of structured input.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&a.cfgPath, "config", "", "config file (default $XDG_CONFIG_HOME/"+config.RelPath+")")
	cmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	cmd.AddCommand(
		a.formatCmd(),
		a.rowsCmd(),
		a.runCmd(),
		a.specCmd(),
		a.convertersCmd(),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.Setup(a.verbosity+cfg.Verbose, cmd.ErrOrStderr())
	a.engine = strfmt.New(strfmt.WithLogger(logging.Component(a.log, "engine")))

	a.log.Debug().
		Str("command", cmd.Name()).
		Str("config", cfg.Path).
		Msg("command started")
	return nil
}
