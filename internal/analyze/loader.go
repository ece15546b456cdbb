package analyze

import (
	"errors"
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedImports |
	packages.NeedDeps

// ErrNoPackages is returned when the patterns match no package.
var ErrNoPackages = errors.New("no packages matched")

// Analyzer loads and type-checks Go packages and inventories their exported
// declarations.
type Analyzer struct {
	dir string
}

// NewAnalyzer creates a new Analyzer resolving patterns relative to dir. An
// empty dir means the current directory.
func NewAnalyzer(dir string) *Analyzer {
	return &Analyzer{dir: dir}
}

// LoadPackages loads the specified packages. Any parse or type error fails
// the whole load. Patterns are standard Go package patterns (e.g.,
// "./generated", "tuple-generator/nested").
func (a *Analyzer) LoadPackages(patterns ...string) ([]*PackageInfo, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	if len(pkgs) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoPackages, patterns)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	out := make([]*PackageInfo, 0, len(pkgs))
	for _, pkg := range pkgs {
		out = append(out, a.processPackage(pkg))
	}

	return out, nil
}

// processPackage extracts the exported declarations of a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) *PackageInfo {
	info := NewPackageInfo(pkg.PkgPath, pkg.Name)
	info.Files = pkg.GoFiles

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if !obj.Exported() {
			continue
		}

		decl := &DeclInfo{
			ID:     DeclID{Name: name},
			Object: obj,
		}

		switch o := obj.(type) {
		case *types.TypeName:
			a.analyzeTypeName(o, decl, info)

		case *types.Func:
			decl.Kind = DeclKindFunc
			decl.TypeParams = o.Signature().TypeParams().Len()

		case *types.Const, *types.Var:
			decl.Kind = DeclKindValue

		default:
			decl.Kind = DeclKindUnknown
		}

		info.Decls[decl.ID] = decl
	}

	return info
}

// analyzeTypeName fills decl for a type declaration and records the exported
// methods of defined types.
func (a *Analyzer) analyzeTypeName(obj *types.TypeName, decl *DeclInfo, info *PackageInfo) {
	if obj.IsAlias() {
		decl.Kind = DeclKindAlias

		if alias, ok := obj.Type().(*types.Alias); ok {
			decl.TypeParams = alias.TypeParams().Len()
		}

		return
	}

	named, ok := obj.Type().(*types.Named)
	if !ok {
		decl.Kind = DeclKindUnknown

		return
	}

	decl.Kind = DeclKindType
	decl.TypeParams = named.TypeParams().Len()

	for i := range named.NumMethods() {
		m := named.Method(i)
		if !m.Exported() {
			continue
		}

		id := DeclID{Receiver: obj.Name(), Name: m.Name()}
		info.Decls[id] = &DeclInfo{
			ID:         id,
			Kind:       DeclKindMethod,
			TypeParams: decl.TypeParams,
			Object:     m,
		}
	}
}
