package analyze

import (
	"go/types"
	"maps"
	"slices"
	"strings"

	"tuple-generator/internal/common"
)

// DeclID identifies a package-level declaration. Receiver is empty for
// everything but methods.
type DeclID struct {
	Receiver string // e.g., "Tuple2"
	Name     string // e.g., "PopBack"
}

// String returns a human-readable representation of the DeclID.
func (d DeclID) String() string {
	if d.Receiver == "" {
		return d.Name
	}

	return d.Receiver + "." + d.Name
}

// Compare orders DeclIDs by receiver, then name.
func (d DeclID) Compare(other DeclID) int {
	if c := strings.Compare(d.Receiver, other.Receiver); c != 0 {
		return c
	}

	return strings.Compare(d.Name, other.Name)
}

// DeclKind represents the kind of a declaration.
type DeclKind int

const (
	DeclKindUnknown DeclKind = iota
	DeclKindType             // defined type
	DeclKindAlias            // type alias, possibly generic
	DeclKindFunc             // package-level function
	DeclKindMethod           // method of a defined type
	DeclKindValue            // const or var
)

// String returns a human-readable representation of the DeclKind.
func (k DeclKind) String() string {
	switch k {
	case DeclKindType:
		return "type"
	case DeclKindAlias:
		return "alias"
	case DeclKindFunc:
		return "func"
	case DeclKindMethod:
		return "method"
	case DeclKindValue:
		return "value"
	default:
		return common.UnknownStr
	}
}

// DeclInfo describes an exported declaration of a loaded package.
type DeclInfo struct {
	ID         DeclID       // Unique identifier within the package
	Kind       DeclKind     // Kind of declaration
	TypeParams int          // Number of type parameters (receiver's for methods)
	Object     types.Object // The original go/types object
}

// PackageInfo holds the declarations of a loaded package.
type PackageInfo struct {
	Path  string               // Import path
	Name  string               // Package name
	Files []string             // Absolute paths of the Go files
	Decls map[DeclID]*DeclInfo // Exported declarations
}

// NewPackageInfo creates an empty PackageInfo.
func NewPackageInfo(path, name string) *PackageInfo {
	return &PackageInfo{
		Path:  path,
		Name:  name,
		Decls: make(map[DeclID]*DeclInfo),
	}
}

// Lookup returns the declaration with the given id, or nil if not found.
func (p *PackageInfo) Lookup(id DeclID) *DeclInfo {
	return p.Decls[id]
}

// IDs returns the ids of every declaration in sorted order.
func (p *PackageInfo) IDs() []DeclID {
	return slices.SortedFunc(maps.Keys(p.Decls), DeclID.Compare)
}

// Count returns the number of declarations of kind k.
func (p *PackageInfo) Count(k DeclKind) int {
	n := 0

	for _, d := range p.Decls {
		if d.Kind == k {
			n++
		}
	}

	return n
}

// Missing returns the ids of want that p does not declare, in sorted order.
func (p *PackageInfo) Missing(want []DeclID) []DeclID {
	var out []DeclID

	for _, id := range want {
		if _, ok := p.Decls[id]; !ok {
			out = append(out, id)
		}
	}

	slices.SortFunc(out, DeclID.Compare)

	return slices.Compact(out)
}
