// Package gen renders capability plans into Go source files.
//
// Generation approach uses text/template for the code of every (arity,
// index) unit and golang.org/x/tools/imports for formatting. One file is
// written per capability, holding all of its units in enumeration order, so
// the output is byte-for-byte deterministic for a given configuration.
//
// Codegen patterns:
//   - Methods on TupleN when no element constraint is needed
//   - Generic functions suffixed with the arity (EqualN, PushFrontN, ...)
//     when elements need constraints or a new type parameter appears
//   - Conversions to and from the nested cons-list form
package gen
