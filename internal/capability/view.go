package capability

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"tuple-generator/internal/arity"
)

// list is an ordered list of Go expressions (type names, slot references or
// values) manipulated by the templates. Every method returns a new list.
type list []string

// Join returns the elements separated by ", ".
func (l list) Join() string { return strings.Join(l, ", ") }

// Args returns the instantiation suffix "[A, B]", or "" for an empty list.
func (l list) Args() string {
	if len(l) == 0 {
		return ""
	}

	return "[" + l.Join() + "]"
}

// Decl returns a type parameter list "[A, B constraint]", or "" for an empty
// list.
func (l list) Decl(constraint string) string {
	if len(l) == 0 {
		return ""
	}

	return "[" + l.Join() + " " + constraint + "]"
}

// DeclEach returns a type parameter list in which every parameter gets its
// own constraint, formatted from format with the parameter name.
func (l list) DeclEach(format string) string {
	if len(l) == 0 {
		return ""
	}

	parts := make([]string, len(l))
	for i, p := range l {
		parts[i] = p + " " + fmt.Sprintf(format, p)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// Wrap formats every element with format.
func (l list) Wrap(format string) list {
	out := make(list, len(l))
	for i, s := range l {
		out[i] = fmt.Sprintf(format, s)
	}

	return out
}

func (l list) Prepend(s string) list { return append(list{s}, l...) }

func (l list) Append(s string) list { return append(slices.Clone(l), s) }

func (l list) Concat(o list) list { return append(slices.Clone(l), o...) }

func (l list) Insert(k int, s string) list { return slices.Insert(slices.Clone(l), k, s) }

func (l list) Remove(k int) list { return slices.Delete(slices.Clone(l), k, k+1) }

func (l list) Take(k int) list { return slices.Clone(l[:k]) }

func (l list) Skip(k int) list { return slices.Clone(l[k:]) }

func (l list) Reverse() list {
	out := slices.Clone(l)
	slices.Reverse(out)

	return out
}

// View is the data every capability template is executed with. It describes
// one unit: a tuple of arity N and, for indexed capabilities, index K.
type View struct {
	N int
	K int
	// P holds the type parameters T1..TN.
	P list
	// S holds the slot field names V0..V(N-1).
	S list
	// V holds the value names v0..v(N-1).
	V list
	// U holds a second set of type parameters U1..UN.
	U list
	// Comments enables doc comments on generated declarations.
	Comments bool
}

// NewView returns the view of u.
func NewView(u arity.Unit, comments bool) View {
	return View{
		N:        u.Arity,
		K:        u.Index,
		P:        arity.TypeParams(u.Arity),
		S:        arity.Slots(u.Arity),
		V:        names("v", 0, u.Arity),
		U:        names("U", 1, u.Arity),
		Comments: comments,
	}
}

func names(prefix string, first, n int) list {
	out := make(list, n)
	for i := range out {
		out[i] = prefix + strconv.Itoa(first+i)
	}

	return out
}

// Tuple names the flat tuple type holding the element types l.
func (v View) Tuple(l list) string {
	return "Tuple" + strconv.Itoa(len(l)) + l.Args()
}

// Self is the tuple type of the unit.
func (v View) Self() string { return v.Tuple(v.P) }

// SelfDecl declares the tuple type of the unit.
func (v View) SelfDecl() string {
	return "Tuple" + strconv.Itoa(v.N) + v.P.Decl("any")
}

// PK is the type of element K.
func (v View) PK() string { return v.P[v.K] }

// SK is the slot name of element K.
func (v View) SK() string { return v.S[v.K] }

// Prev is N-1.
func (v View) Prev() int { return v.N - 1 }

// Keyed renders a composite literal body assigning vals to V0, V1, ...
func (v View) Keyed(vals list) string {
	parts := make([]string, len(vals))
	for i, val := range vals {
		parts[i] = "V" + strconv.Itoa(i) + ": " + val
	}

	return strings.Join(parts, ", ")
}

// Params renders the parameter list "v0 T1, v1 T2, ...".
func (v View) Params() string {
	parts := make([]string, v.N)
	for i := range parts {
		parts[i] = v.V[i] + " " + v.P[i]
	}

	return strings.Join(parts, ", ")
}

// Refs returns the slot references of t: t.V0, t.V1, ...
func (v View) Refs(t string) list { return v.S.Wrap(t + ".%s") }

// DebugFormat is the fmt format of the unit's String method.
func (v View) DebugFormat() string {
	switch v.N {
	case 0:
		return "()"
	case 1:
		return "(%v,)"
	default:
		return "(" + strings.Repeat("%v, ", v.N-1) + "%v)"
	}
}

// EqualExpr is the conjunction of slot equalities of a and b.
func (v View) EqualExpr() string {
	if v.N == 0 {
		return "true"
	}

	parts := make([]string, v.N)
	for i, s := range v.S {
		parts[i] = "a." + s + " == b." + s
	}

	return strings.Join(parts, " && ")
}

// Repeat returns s N times.
func (v View) Repeat(s string) list {
	out := make(list, v.N)
	for i := range out {
		out[i] = s
	}

	return out
}

// ReplicaVals fills N slots from v: clones first, the original last.
func (v View) ReplicaVals() list {
	if v.N == 0 {
		return nil
	}

	out := v.Repeat("v.Clone()")
	out[v.N-1] = "v"

	return out
}

// NestedType is the cons-list type equivalent to the unit's tuple.
func (v View) NestedType() string {
	if v.N == 0 {
		return "nested.Unit"
	}

	out := "nested.Single[" + v.P[v.N-1] + "]"
	for i := v.N - 2; i >= 0; i-- {
		out = "nested.Cons[" + v.P[i] + ", " + out + "]"
	}

	return out
}

// MapFuncs renders the mapping function parameters "f0 func(T1) R, ..." where
// R is result formatted with the matching U parameter.
func (v View) MapFuncs(result string) string {
	parts := make([]string, v.N)
	for i := range parts {
		parts[i] = fmt.Sprintf("f%d func(%s) %s", i, v.P[i], fmt.Sprintf(result, v.U[i]))
	}

	return strings.Join(parts, ", ")
}

// RowDecl declares the type parameters of a row accessor: element types
// E1..EN and row types R1..RN constrained to expose GetK.
func (v View) RowDecl() string {
	es, rs := v.Names("E"), v.Names("R")

	parts := []string{es.Join() + " any"}
	for i, r := range rs {
		parts = append(parts, fmt.Sprintf("%s interface{ Get%d() %s }", r, v.K, es[i]))
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// RowPtrDecl declares the type parameters of a row pointer accessor: element
// types E1..EN, row types R1..RN and P1..PN, the pointer types of the rows,
// constrained to expose PtrK.
func (v View) RowPtrDecl() string {
	es, rs, ps := v.Names("E"), v.Names("R"), v.Names("P")

	parts := []string{es.Join() + " any", rs.Join() + " any"}
	for i, p := range ps {
		parts = append(parts, fmt.Sprintf("%s interface {\n\t*%s\n\tPtr%d() *%s\n}", p, rs[i], v.K, es[i]))
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// RowPtrs converts the address of every row of m to its P type and calls
// PtrK on it.
func (v View) RowPtrs() list {
	out := make(list, v.N)
	for i, s := range v.S {
		out[i] = fmt.Sprintf("P%d(&m.%s).Ptr%d()", i+1, s, v.K)
	}

	return out
}

// Names returns prefix1..prefixN.
func (v View) Names(prefix string) list { return names(prefix, 1, v.N) }

// Doc renders a doc comment line, or nothing when comments are disabled.
func (v View) Doc(format string, args ...any) string {
	if !v.Comments {
		return ""
	}

	return "// " + fmt.Sprintf(format, args...) + "\n"
}
