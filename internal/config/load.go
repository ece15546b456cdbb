package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables overriding config keys, for
// example TUPLEGEN_MAX_ARITY.
const EnvPrefix = "TUPLEGEN"

// Config keys.
const (
	keyPackage       = "package"
	keyOutput        = "output"
	keyMaxArity      = "max_arity"
	keyRuntimeModule = "runtime_module"
	keyCapabilities  = "capabilities"
	keyComments      = "comments"
	keyFilePrefix    = "file_prefix"
)

// flagKeys maps command line flags to config keys.
var flagKeys = map[string]string{
	"package":     keyPackage,
	"out":         keyOutput,
	"max":         keyMaxArity,
	"runtime":     keyRuntimeModule,
	"capability":  keyCapabilities,
	"comments":    keyComments,
	"file-prefix": keyFilePrefix,
}

// BindFlags registers the generation flags on fs. Their defaults are the
// values of Default.
func BindFlags(fs *pflag.FlagSet) {
	d := Default()

	fs.String("package", d.Package, "name of the generated package")
	fs.StringP("out", "o", d.Output, "output directory")
	fs.Int("max", d.MaxArity, "arity tier (8, 16, 32, 48, 64, 96 or 128)")
	fs.String("runtime", d.RuntimeModule, "module path of the nested, option and hashing packages")
	fs.StringSliceP("capability", "C", nil, "capability to generate (repeatable, default all)")
	fs.Bool("comments", d.Comments, "emit doc comments")
	fs.String("file-prefix", d.FilePrefix, "prefix of generated file names")
}

// Load builds a Config from, in increasing priority: defaults, the YAML file
// at path (skipped when path is empty), TUPLEGEN_* environment variables and
// the flags of fs that were set explicitly. fs may be nil.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	d := Default()
	v.SetDefault(keyPackage, d.Package)
	v.SetDefault(keyOutput, d.Output)
	v.SetDefault(keyMaxArity, d.MaxArity)
	v.SetDefault(keyRuntimeModule, d.RuntimeModule)
	v.SetDefault(keyCapabilities, []string{})
	v.SetDefault(keyComments, d.Comments)
	v.SetDefault(keyFilePrefix, d.FilePrefix)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}

			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.normalize()

	return &cfg, nil
}
