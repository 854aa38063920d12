package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) formatCmd() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "format TEMPLATE [ARG...]",
		Short: "Render a template once",
		Long: `Render TEMPLATE with the given arguments and print the result.

Arguments are read as YAML literals, so 42 is a number, [a, b] is a list
and {name: Ann} is a map. Use --raw to pass every argument as a string.`,
		Example: `  strfmt format '{0:>8.2f}' 3.14159
  strfmt format '{0.name|anonymous}' '{name: Ann}'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.engine.Write(cmd.OutOrStdout(), args[0], decodeArgs(args[1:], raw || a.cfg.Raw)...)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Pass arguments as plain strings")
	return cmd
}

func (a *app) runCmd() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "run [NAME [ARG...]]",
		Short: "Render a named template from the config file",
		Long: `Render the template configured under [templates] NAME. Without NAME,
list the configured templates.

Templates can also be set with STRFMT_TEMPLATES__NAME environment variables.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, name := range a.cfg.TemplateNames() {
					if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, a.cfg.Templates[name]); err != nil {
						return err
					}
				}
				return nil
			}
			tmpl, err := a.cfg.Template(args[0])
			if err != nil {
				return err
			}
			a.log.Debug().Str("name", args[0]).Str("template", tmpl).Msg("running template")
			return a.engine.Write(cmd.OutOrStdout(), tmpl, decodeArgs(args[1:], raw || a.cfg.Raw)...)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Pass arguments as plain strings")
	return cmd
}
