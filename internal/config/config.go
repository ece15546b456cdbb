package config

import (
	"errors"
	"fmt"
	"go/token"
	"os"
	"strings"

	"go.uber.org/multierr"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"tuple-generator/internal/arity"
	"tuple-generator/internal/capability"
	"tuple-generator/internal/common"
	"tuple-generator/internal/gen"
)

// DefaultFile is the config file name looked up by the CLI.
const DefaultFile = "tuplegen.yaml"

// Config describes one generation run.
type Config struct {
	// Package is the name of the generated package. Derived from Output when
	// empty.
	Package string `yaml:"package" mapstructure:"package"`
	// Output is the directory generated files are written to.
	Output string `yaml:"output" mapstructure:"output"`
	// MaxArity is the arity tier.
	MaxArity int `yaml:"max_arity" mapstructure:"max_arity"`
	// RuntimeModule is the module path providing nested, option and hashing.
	RuntimeModule string `yaml:"runtime_module" mapstructure:"runtime_module"`
	// Capabilities lists the selected capabilities. Empty selects all.
	Capabilities []string `yaml:"capabilities,omitempty" mapstructure:"capabilities"`
	// Comments enables doc comments in generated code.
	Comments bool `yaml:"comments" mapstructure:"comments"`
	// FilePrefix is prepended to generated file names.
	FilePrefix string `yaml:"file_prefix" mapstructure:"file_prefix"`
}

// Default returns the configuration used when nothing else is given.
func Default() *Config {
	g := gen.DefaultGeneratorConfig()

	return &Config{
		Package:       g.PackageName,
		Output:        g.OutputDir,
		MaxArity:      int(g.Max),
		RuntimeModule: g.RuntimeModule,
		Comments:      g.GenerateComments,
		FilePrefix:    g.FilePrefix,
	}
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config. Keys missing from data keep their
// default values.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	cfg.normalize()

	return cfg, nil
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// WriteFile writes a Config to the given path.
func WriteFile(cfg *Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

// normalize trims capability names and fills the package name.
func (c *Config) normalize() {
	if c.Capabilities != nil {
		caps := make([]string, 0, len(c.Capabilities))

		for _, name := range c.Capabilities {
			for part := range strings.SplitSeq(name, ",") {
				if part = strings.TrimSpace(part); part != "" {
					caps = append(caps, part)
				}
			}
		}

		c.Capabilities = caps
	}

	if c.Package == "" {
		c.Package = common.PackageName(c.Output)
	}
}

// Validation errors.
var (
	ErrInvalidPackage    = errors.New("invalid package name")
	ErrInvalidPrefix     = errors.New("invalid file prefix")
	ErrMissingOutput     = errors.New("output directory is required")
	ErrInvalidRuntime    = errors.New("invalid runtime module")
	ErrUnknownCapability = errors.New("unknown capability")
)

// Validate reports every problem of c at once.
func (c *Config) Validate() error {
	var err error

	if _, tierErr := arity.ParseTier(c.MaxArity); tierErr != nil {
		err = multierr.Append(err, fmt.Errorf("max_arity: %w", tierErr))
	}

	if !token.IsIdentifier(c.Package) || token.IsKeyword(c.Package) || c.Package == "_" {
		err = multierr.Append(err, fmt.Errorf("%w: %q", ErrInvalidPackage, c.Package))
	}

	if c.Output == "" {
		err = multierr.Append(err, ErrMissingOutput)
	}

	if strings.ContainsAny(c.FilePrefix, `/\`) {
		err = multierr.Append(err, fmt.Errorf("%w: %q", ErrInvalidPrefix, c.FilePrefix))
	}

	if pathErr := module.CheckImportPath(c.RuntimeModule); pathErr != nil {
		err = multierr.Append(err, fmt.Errorf("%w: %w", ErrInvalidRuntime, pathErr))
	}

	for _, name := range c.Capabilities {
		if _, ok := capability.Lookup(name); !ok {
			err = multierr.Append(err, fmt.Errorf("%w: %q", ErrUnknownCapability, name))
		}
	}

	return err
}

// GeneratorConfig converts c for the generator. c must be valid.
func (c *Config) GeneratorConfig() gen.GeneratorConfig {
	return gen.GeneratorConfig{
		PackageName:      c.Package,
		OutputDir:        c.Output,
		Max:              arity.Tier(c.MaxArity),
		RuntimeModule:    c.RuntimeModule,
		GenerateComments: c.Comments,
		FilePrefix:       c.FilePrefix,
	}
}
