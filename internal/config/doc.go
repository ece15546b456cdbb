// Package config loads and validates the settings of a generation run.
//
// Settings come from a YAML file (see [LoadFile]) or are layered by [Load]
// from defaults, the file, TUPLEGEN_* environment variables and command line
// flags registered with [BindFlags].
package config
