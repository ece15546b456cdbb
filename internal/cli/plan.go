package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"tuple-generator/internal/arity"
	"tuple-generator/internal/capability"
	"tuple-generator/internal/config"
)

// planEntry is one capability of a printed plan.
type planEntry struct {
	Name     string   `yaml:"name"`
	Doc      string   `yaml:"doc"`
	Arities  string   `yaml:"arities"`
	Index    string   `yaml:"index"`
	Units    int      `yaml:"units"`
	Requires []string `yaml:"requires,omitempty"`
}

// planOutput is the YAML form of a plan.
type planOutput struct {
	MaxArity     int         `yaml:"max_arity"`
	Units        int         `yaml:"units"`
	Capabilities []planEntry `yaml:"capabilities"`
}

func newPlanOutput(p *capability.Plan) planOutput {
	out := planOutput{MaxArity: int(p.Max), Units: p.Units()}

	for _, d := range p.Capabilities {
		lo, hi := d.Arities.Bounds(p.Max)

		e := planEntry{
			Name:    d.Name,
			Doc:     d.Doc,
			Arities: fmt.Sprintf("%d..%d", lo, hi),
			Index:   d.Index.String(),
			Units:   arity.Count(d.Arities, d.Index, p.Max),
		}

		for _, r := range d.Requires {
			e.Requires = append(e.Requires, r.String())
		}

		out.Capabilities = append(out.Capabilities, e)
	}

	return out
}

func newPlanCmd(flags *rootFlags) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the capabilities a run would generate, in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.loadConfig(cmd.Flags())
			if err != nil {
				return err
			}

			p, err := flags.resolve(cfg)
			if err != nil {
				return err
			}

			out := newPlanOutput(p)

			if asYAML {
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)

				if err := enc.Encode(out); err != nil {
					return err
				}

				return enc.Close()
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CAPABILITY\tARITIES\tINDEX\tUNITS")

			for _, e := range out.Capabilities {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", e.Name, e.Arities, e.Index, e.Units)
			}

			fmt.Fprintf(tw, "total\t\t\t%d\n", out.Units)

			return tw.Flush()
		},
	}

	config.BindFlags(cmd.Flags())
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the plan as YAML")

	return cmd
}
