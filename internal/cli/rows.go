package cli

import (
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bjaus/strfmt/internal/logging"
	"github.com/bjaus/strfmt/internal/rows"
)

func (a *app) rowsCmd() *cobra.Command {
	var (
		input string
		skip  int
	)
	names := make([]string, 0, len(rows.Formats()))
	for _, f := range rows.Formats() {
		names = append(names, f.String())
	}

	cmd := &cobra.Command{
		Use:   "rows TEMPLATE [FILE]",
		Short: "Render a template once per input row",
		Long: `Render TEMPLATE once for every row decoded from FILE, or from standard
input when FILE is absent or "-". An array row is the argument list; any
other value is the single argument {0}.`,
		Example: `  printf '["ann", 3]\n["bob", 12]\n' | strfmt rows '{0:<6}{1:>4}'
  strfmt rows -i csv --skip 1 '{0}: {1:,}' sales.csv`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" {
				input = a.cfg.Input
			}
			f, err := rows.ParseFormat(input)
			if err != nil {
				return err
			}

			r := cmd.InOrStdin()
			if len(args) == 2 && args[1] != "-" {
				file, err := os.Open(args[1])
				if err != nil {
					return err
				}
				defer file.Close()
				r = file
			}
			return a.renderRows(cmd.OutOrStdout(), args[0], rows.Skip(rows.Read(r, f), skip))
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", fmt.Sprintf("Input format (%s)", strings.Join(names, ", ")))
	cmd.Flags().IntVar(&skip, "skip", 0, "Skip the first N rows, such as a CSV header")
	return cmd
}

// renderRows streams decoded rows into the engine. A decoding error stops
// the stream and is returned after the rows before it have been written.
func (a *app) renderRows(w io.Writer, tmpl string, seq iter.Seq2[[]any, error]) error {
	log := logging.Component(a.log, "rows")
	var decodeErr error
	n := 0
	err := a.engine.WriteIter(w, tmpl, func(yield func([]any) bool) {
		for row, err := range seq {
			if err != nil {
				decodeErr = err
				return
			}
			n++
			if !yield(row) {
				return
			}
		}
	})
	if decodeErr != nil {
		return decodeErr
	}
	if err != nil {
		return err
	}
	log.Info().Int("rows", n).Msg("rendered rows")
	return nil
}
