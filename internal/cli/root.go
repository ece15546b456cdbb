// Package cli implements the tuple-generator command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tuple-generator/internal/arity"
	"tuple-generator/internal/capability"
	"tuple-generator/internal/config"
	"tuple-generator/internal/diagnostic"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

// Version is the tuple-generator version, set at build time with
// -ldflags "-X tuple-generator/internal/cli.Version=...".
var Version = "dev"

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configPath string
	verbose    bool

	log *slog.Logger
}

// NewRootCmd creates the top-level "tuple-generator" command with global
// flags and all subcommands registered.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "tuple-generator",
		Short: "Generate tuple types and their capabilities",
		Long: "tuple-generator renders flat tuple types of arity 0 to N together with\n" +
			"capabilities such as equality, ordering, hashing, push/pop, split and nesting.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			flags.log = newLogger(cmd.ErrOrStderr(), flags.verbose)
		},
	}

	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "",
		"config file (default: ./"+config.DefaultFile+" when present)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log debug output")

	root.AddCommand(newGenCmd(flags))
	root.AddCommand(newPlanCmd(flags))
	root.AddCommand(newInitCmd(flags))
	root.AddCommand(newCheckCmd(flags))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		return exitUserError
	}

	return exitSuccess
}

// newLogger returns a text logger on w. Debug records are dropped unless
// verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// logger returns the logger of f, falling back to a discarding one for
// commands run without the root's pre-run hook.
func (f *rootFlags) logger() *slog.Logger {
	if f.log == nil {
		return slog.New(slog.DiscardHandler)
	}

	return f.log
}

// loadConfig layers the config file, environment and fs, then validates.
func (f *rootFlags) loadConfig(fs *pflag.FlagSet) (*config.Config, error) {
	path := f.configPath
	if path == "" {
		if _, err := os.Stat(config.DefaultFile); err == nil {
			path = config.DefaultFile
		}
	}

	cfg, err := config.Load(path, fs)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	f.logger().Debug("config loaded",
		"file", path,
		"package", cfg.Package,
		"output", cfg.Output,
		"max_arity", cfg.MaxArity,
		"capabilities", cfg.Capabilities)

	return cfg, nil
}

// resolve turns the capability selection of cfg into a plan, logging every
// diagnostic.
func (f *rootFlags) resolve(cfg *config.Config) (*capability.Plan, error) {
	p, diags := capability.Resolve(cfg.Capabilities, arity.Tier(cfg.MaxArity))
	f.report(diags)

	if err := diags.Error(); err != nil {
		return nil, err
	}

	return p, nil
}

// report logs diagnostics at the level matching their severity.
func (f *rootFlags) report(diags diagnostic.Diagnostics) {
	log := f.logger()

	for _, d := range diags.All() {
		attrs := []any{"code", d.Code}
		if d.Capability != "" {
			attrs = append(attrs, "capability", d.Capability)
		}

		if d.Unit != "" {
			attrs = append(attrs, "unit", d.Unit)
		}

		if len(d.Suggestions) > 0 {
			attrs = append(attrs, "suggestions", d.Suggestions)
		}

		switch d.Severity {
		case diagnostic.DiagnosticError:
			log.Error(d.Message, attrs...)
		case diagnostic.DiagnosticWarning:
			log.Warn(d.Message, attrs...)
		default:
			log.Debug(d.Message, attrs...)
		}
	}
}

// errChecksFailed is returned by commands that already reported what failed.
var errChecksFailed = errors.New("checks failed")
