package common

import (
	"path"
	"strings"
	"unicode"
)

// UnknownStr is the name printed for enum values outside their declared range.
const UnknownStr = "unknown"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// PackageName derives a Go package name from a directory or import path. It
// lowercases the last element and drops runes that cannot appear in an
// identifier. Returns empty string when nothing usable remains.
func PackageName(p string) string {
	alias := PkgAlias(strings.ReplaceAll(strings.TrimRight(p, `/\`), `\`, "/"))
	if alias == "." || alias == "/" {
		return ""
	}

	var b strings.Builder

	for _, r := range strings.ToLower(alias) {
		if r == '_' || unicode.IsLetter(r) || (unicode.IsDigit(r) && b.Len() > 0) {
			b.WriteRune(r)
		}
	}

	return b.String()
}
