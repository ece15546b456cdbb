// Package analyze provides package loading and declaration inventories.
//
// It uses golang.org/x/tools/go/packages with go/types to type-check a
// generated package, and go/parser to list what rendered code declares, so
// the two can be compared.
//
// Key types:
//   - DeclID: receiver type name + declaration name
//   - DeclInfo: describes kind (type/alias/func/method/value) and type parameters
//   - PackageInfo: every exported declaration of a loaded package
package analyze
