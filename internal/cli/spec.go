package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/strfmt"
)

var errInvalidSpec = errors.New("invalid format spec")

// specView is the YAML shape printed by the spec command.
type specView struct {
	Repeat    int    `yaml:"repeat,omitempty"`
	Fill      string `yaml:"fill,omitempty"`
	Align     string `yaml:"align,omitempty"`
	Sign      string `yaml:"sign,omitempty"`
	Alternate bool   `yaml:"alternate,omitempty"`
	Zero      bool   `yaml:"zero,omitempty"`
	Width     int    `yaml:"width,omitempty"`
	Group     bool   `yaml:"group,omitempty"`
	Precision *int   `yaml:"precision,omitempty"`
	Type      string `yaml:"type,omitempty"`
	Canonical string `yaml:"canonical"`
	Rendered  string `yaml:"rendered,omitempty"`
}

func newSpecView(sp strfmt.Spec) specView {
	v := specView{
		Repeat:    sp.Repeat,
		Alternate: sp.Alternate,
		Zero:      sp.Zero,
		Width:     sp.Width,
		Group:     sp.Group,
		Canonical: sp.String(),
	}
	if sp.Fill != 0 {
		v.Fill = string(sp.Fill)
	}
	if sp.Align != 0 {
		v.Align = string(sp.Align)
	}
	if sp.Sign != 0 {
		v.Sign = string(sp.Sign)
	}
	if sp.HasPrecision {
		p := sp.Precision
		v.Precision = &p
	}
	if sp.Type != 0 {
		v.Type = string(sp.Type)
	}
	return v
}

func (a *app) specCmd() *cobra.Command {
	var value string
	cmd := &cobra.Command{
		Use:   "spec SPEC",
		Short: "Show how a format spec parses",
		Long: `Print the fields of a format spec as YAML. With --value, also render
the value (read as a YAML literal) through the spec.`,
		Example: `  strfmt spec '*^10,.2f' --value 1234.5`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, ok := strfmt.ParseSpec(args[0])
			if !ok {
				return fmt.Errorf("%w: %q", errInvalidSpec, args[0])
			}
			view := newSpecView(sp)
			if cmd.Flags().Changed("value") {
				v := decodeArg(value, a.cfg.Raw)
				rendered, err := sp.Render(v)
				if err != nil {
					return err
				}
				out, ok := rendered.(string)
				if !ok {
					return fmt.Errorf("%w: %T", strfmt.ErrInvalidReplacement, v)
				}
				view.Rendered = out
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(view); err != nil {
				return err
			}
			return enc.Close()
		},
	}
	cmd.Flags().StringVar(&value, "value", "", "Render this value with the spec")
	return cmd
}

func (a *app) convertersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "converters",
		Short: "List the converter codes usable after '!'",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, c := range strfmt.Converters() {
				if err := a.engine.Write(cmd.OutOrStdout(), "{0:<4}{1}", string(c.Code), c.Description); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
