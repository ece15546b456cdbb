package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"tuple-generator/internal/analyze"
	"tuple-generator/internal/capability"
	"tuple-generator/internal/config"
	"tuple-generator/internal/diagnostic"
	"tuple-generator/internal/modcheck"
)

func newCheckCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the generated package against the config",
		Long: "check finds the module holding the output directory, verifies its go\n" +
			"directive, then type-checks the generated package and reports every\n" +
			"declaration the configured capabilities should have produced but did not.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.loadConfig(cmd.Flags())
			if err != nil {
				return err
			}

			p, err := flags.resolve(cfg)
			if err != nil {
				return err
			}

			mod, err := modcheck.Find(cfg.Output)
			if err != nil {
				return fmt.Errorf("locating module of %s: %w", cfg.Output, err)
			}

			diags := moduleDiagnostics(mod, cfg.RuntimeModule, p)

			importPath, err := mod.ImportPath(cfg.Output)
			if err != nil {
				return err
			}

			flags.logger().Debug("type-checking", "package", importPath, "module", mod.Dir)

			pkg, missing, err := analyze.NewAnalyzer(mod.Dir).Verify(importPath, p)
			if err != nil {
				flags.report(diags)

				return err
			}

			origins, err := analyze.Origins(p)
			if err != nil {
				return err
			}

			diags.Merge(missingDiagnostics(missing, origins))

			flags.report(diags)

			if diags.HasErrors() {
				return errChecksFailed
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ok\t%s\t%d declarations\n", pkg.Path, len(pkg.Decls))

			return nil
		},
	}

	config.BindFlags(cmd.Flags())

	return cmd
}

// moduleDiagnostics checks the module holding the output against the plan:
// its go directive, and its requirement on the runtime when p needs it.
func moduleDiagnostics(mod *modcheck.Module, runtime string, p *capability.Plan) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if err := mod.CheckGoVersion(); err != nil {
		diags.AddError(diagnostic.CodeGoVersion, err.Error(), "", "")
	}

	if users := runtimeUsers(p); len(users) > 0 && !mod.Has(runtime) {
		diags.AddWarning(diagnostic.CodeMissingRuntime,
			fmt.Sprintf("module %s does not require %s, needed by %s", mod.Path, runtime, strings.Join(users, ", ")),
			"", "")
	}

	return diags
}

// missingDiagnostics reports every missing declaration against the unit
// expected to render it.
func missingDiagnostics(missing []analyze.DeclID, origins map[analyze.DeclID]analyze.Origin) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for _, id := range missing {
		o := origins[id]
		diags.AddError(diagnostic.CodeMissingDeclaration, id.String()+" is not declared", o.Capability, o.Unit.String())
	}

	return diags
}

// runtimeUsers names the capabilities of p importing a runtime package.
func runtimeUsers(p *capability.Plan) []string {
	var out []string

	for _, d := range p.Capabilities {
		if slices.ContainsFunc(d.Imports, func(i capability.Import) bool { return i.Runtime }) {
			out = append(out, d.Name)
		}
	}

	return out
}
