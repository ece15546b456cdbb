// Package main provides build targets for the tuple-generator project using
// Mage.
//
// Usage:
//
//	mage build      Compile tuple-generator to bin/
//	mage generate   Render examples/tuplegen.yaml
//	mage stringer   Regenerate enum String methods
//	mage test       Run all tests
//	mage testShort  Run tests that do not invoke the go command
//	mage lint       Run golangci-lint
//	mage clean      Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo       = "go"
	binLint     = "golangci-lint"
	binaryName  = "tuple-generator"
	binaryDir   = "bin"
	cmdDir      = "./cmd/tuple-generator"
	exampleConf = "examples/tuplegen.yaml"
)

// Build compiles the tuple-generator binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}

	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}

	ldflags := "-X tuple-generator/internal/cli.Version=" + version

	return sh.RunV(binGo, "build", "-v", "-ldflags", ldflags, "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Generate renders the example configuration.
func Generate() error {
	mg.Deps(Build)

	return sh.RunV(filepath.Join(binaryDir, binaryName), "gen", "-c", exampleConf)
}

// Stringer regenerates the String methods of enums.
func Stringer() error {
	return sh.RunV(binGo, "generate", "./internal/capability/...")
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// TestShort runs the tests that do not shell out to the go command.
func TestShort() error {
	return sh.RunV(binGo, "test", "-short", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}

	return sh.RunV(binGo, "clean")
}
