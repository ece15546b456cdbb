package analyze

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
)

// Declared parses src and returns the exported package-level declarations it
// defines, in source order. src may be a fragment without a package clause.
func Declared(src []byte) ([]DeclID, error) {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, "", src, parser.SkipObjectResolution)
	if err != nil {
		file, err = parser.ParseFile(fset, "", append([]byte("package p\n"), src...), parser.SkipObjectResolution)
		if err != nil {
			return nil, fmt.Errorf("parsing declarations: %w", err)
		}
	}

	var out []DeclID

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			id := DeclID{Name: d.Name.Name}
			if d.Recv != nil && len(d.Recv.List) == 1 {
				id.Receiver = receiverName(d.Recv.List[0].Type)
			}

			if ast.IsExported(id.Name) {
				out = append(out, id)
			}

		case *ast.GenDecl:
			out = append(out, specNames(d)...)
		}
	}

	return out, nil
}

func specNames(d *ast.GenDecl) []DeclID {
	var out []DeclID

	for _, spec := range d.Specs {
		switch s := spec.(type) {
		case *ast.TypeSpec:
			if s.Name.IsExported() {
				out = append(out, DeclID{Name: s.Name.Name})
			}

		case *ast.ValueSpec:
			for _, n := range s.Names {
				if n.IsExported() {
					out = append(out, DeclID{Name: n.Name})
				}
			}
		}
	}

	return out
}

// receiverName strips pointers and type arguments from a receiver type.
func receiverName(expr ast.Expr) string {
	for {
		switch e := expr.(type) {
		case *ast.StarExpr:
			expr = e.X
		case *ast.ParenExpr:
			expr = e.X
		case *ast.IndexExpr:
			expr = e.X
		case *ast.IndexListExpr:
			expr = e.X
		case *ast.Ident:
			return e.Name
		default:
			return ""
		}
	}
}
