// Package main provides the CLI entrypoint for tuple-generator.
//
// tuple-generator is a Go codegen tool that:
//   - Renders flat tuple types of arity 0 to N (N = 8, 16, ..., 128)
//   - Adds selected capabilities to them: equality, ordering, hashing,
//     push/pop, insert/remove, split, reverse, nesting and more
//   - Checks that a generated package type-checks and is complete
package main

import (
	"os"

	"tuple-generator/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
