package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tuple-generator/internal/config"
	"tuple-generator/internal/gen"
)

func newGenCmd(flags *rootFlags) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate the tuple package",
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

			g := gen.NewGenerator(cfg.GeneratorConfig())

			files, err := g.Generate(p)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if dryRun {
				for _, f := range files {
					fmt.Fprintf(out, "%s\t%d bytes\n", f.Filename, len(f.Content))
				}

				return nil
			}

			if err := gen.WriteFiles(files, cfg.Output); err != nil {
				return err
			}

			flags.logger().Info("generated",
				"package", cfg.Package,
				"files", len(files),
				"units", p.Units(),
				"output", cfg.Output)

			fmt.Fprintf(out, "wrote %d files to %s\n", len(files), cfg.Output)

			return nil
		},
	}

	config.BindFlags(cmd.Flags())
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list the files without writing them")

	return cmd
}
