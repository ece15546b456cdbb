// Package modcheck inspects the go.mod of the module receiving generated
// code.
package modcheck

import (
	"errors"
	"fmt"
	"go/version"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
)

// MinGoVersion is the oldest language version able to compile generated code.
// Generic type aliases need go1.24.
const MinGoVersion = "go1.24"

// ErrNoModule is returned when no go.mod is found.
var ErrNoModule = errors.New("go.mod not found")

// ErrGoVersion is returned when the module's go directive is too old.
var ErrGoVersion = errors.New("go version too old")

// Module summarizes a go.mod file.
type Module struct {
	// Path is the module path.
	Path string
	// Dir is the directory holding go.mod.
	Dir string
	// GoVersion is the go directive, e.g. "1.24". Empty when absent.
	GoVersion string
	// Requires maps required module paths to their versions.
	Requires map[string]string
}

// Find walks up from dir to the nearest go.mod and parses it.
func Find(dir string) (*Module, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, ErrNoModule
		}

		dir = parent
	}
}

// Load parses the go.mod file at path.
func Load(path string) (*Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return Parse(path, data)
}

// Parse parses go.mod content. path is used for error messages and to set
// Dir.
func Parse(path string, data []byte) (*Module, error) {
	f, err := modfile.ParseLax(path, data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if f.Module == nil {
		return nil, fmt.Errorf("%s: missing module directive", path)
	}

	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, err
	}

	m := &Module{
		Path:     f.Module.Mod.Path,
		Dir:      dir,
		Requires: make(map[string]string, len(f.Require)),
	}

	if f.Go != nil {
		m.GoVersion = f.Go.Version
	}

	for _, r := range f.Require {
		m.Requires[r.Mod.Path] = r.Mod.Version
	}

	return m, nil
}

// CheckGoVersion reports an error wrapping ErrGoVersion when the module's go
// directive is older than MinGoVersion. A missing directive counts as go1.16,
// the default the go command assumes.
func (m *Module) CheckGoVersion() error {
	v := m.GoVersion
	if v == "" {
		v = "1.16"
	}

	if version.Compare("go"+v, MinGoVersion) < 0 {
		return fmt.Errorf("%w: module %s declares go %s, generated code needs %s",
			ErrGoVersion, m.Path, v, strings.TrimPrefix(MinGoVersion, "go"))
	}

	return nil
}

// ImportPath returns the import path of dir inside the module. dir must be
// the module directory or below it.
func (m *Module) ImportPath(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(m.Dir, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside module %s", dir, m.Path)
	}

	if rel == "." {
		return m.Path, nil
	}

	return m.Path + "/" + filepath.ToSlash(rel), nil
}

// Has reports whether m is, or requires, the module at path.
func (m *Module) Has(path string) bool {
	if m.Path == path {
		return true
	}

	_, ok := m.Requires[path]

	return ok
}
