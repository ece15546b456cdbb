package gen

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuple-generator/internal/arity"
	"tuple-generator/internal/capability"
)

func generateAll(t *testing.T, cfg GeneratorConfig, names ...string) map[string]string {
	t.Helper()

	p, diags := capability.Resolve(names, cfg.Max)
	require.NoError(t, diags.Error())

	files, err := NewGenerator(cfg).Generate(p)
	require.NoError(t, err)

	out := make(map[string]string, len(files))
	for _, f := range files {
		out[f.Filename] = string(f.Content)
	}

	return out
}

func TestGenerator_Generate_AllCapabilities(t *testing.T) {
	files := generateAll(t, DefaultGeneratorConfig())
	require.Len(t, files, len(capability.All())+1)

	fset := token.NewFileSet()

	for name, content := range files {
		assert.True(t, strings.HasPrefix(content, "// Code generated by tuple-generator. DO NOT EDIT.\n"), name)

		f, err := parser.ParseFile(fset, name, content, parser.ParseComments)
		require.NoError(t, err, name)
		assert.Equal(t, "tuples", f.Name.Name, name)
	}

	for _, d := range capability.All() {
		assert.Contains(t, files, "tuple_"+d.Name+".go")
	}

	assert.Contains(t, files["tuple_doc.go"], "// Package tuples holds flat tuple types of arity 0 to 8 and")
	assert.Contains(t, files["tuple_doc.go"], "//   - push-front\n")
}

func TestGenerator_Generate_Deterministic(t *testing.T) {
	first := generateAll(t, DefaultGeneratorConfig())
	second := generateAll(t, DefaultGeneratorConfig())

	assert.Equal(t, first, second)
}

func TestGenerator_Generate_Equality(t *testing.T) {
	files := generateAll(t, DefaultGeneratorConfig(), "eq")
	eq := files["tuple_eq.go"]

	assert.Contains(t, eq, "func Equal0(a, b Tuple0) bool {\n\treturn true\n}")
	assert.Contains(t, eq,
		"func Equal3[T1, T2, T3 comparable](a, b Tuple3[T1, T2, T3]) bool {\n\treturn a.V0 == b.V0 && a.V1 == b.V1 && a.V2 == b.V2\n}")
	assert.Contains(t, eq, "func Equal8[")
	assert.NotContains(t, eq, "func Equal9[")

	assert.Contains(t, files, "tuple_tuple.go")
}

func TestGenerator_Generate_Imports(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.RuntimeModule = "example.com/rt"

	files := generateAll(t, cfg, "hash", "nest", "option", "debug", "ord")

	assert.Contains(t, files["tuple_hash.go"], "\t\"hash\"\n")
	assert.Contains(t, files["tuple_hash.go"], "\t\"example.com/rt/hashing\"\n")
	assert.Contains(t, files["tuple_nest.go"], "\"example.com/rt/nested\"")
	assert.Contains(t, files["tuple_option.go"], "\"example.com/rt/option\"")
	assert.Contains(t, files["tuple_debug.go"], "\"fmt\"")
	assert.Contains(t, files["tuple_ord.go"], "\"cmp\"")
	assert.NotContains(t, files["tuple_tuple.go"], "import")
	assert.NotContains(t, files["tuple_push-front.go"], "import")
}

func TestGenerator_Generate_Tiers(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.Max = 16

	files := generateAll(t, cfg, "push-front", "index")

	assert.Contains(t, files["tuple_push-front.go"], "func PushFront15[")
	assert.NotContains(t, files["tuple_push-front.go"], "func PushFront16[")
	assert.Contains(t, files["tuple_index.go"], ") Get15() T16 {")
	assert.Contains(t, files["tuple_tuple.go"], "type Tuple16[")
}

func TestGenerator_Generate_NoComments(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.GenerateComments = false

	files := generateAll(t, cfg, "len")

	assert.NotContains(t, files["tuple_len.go"], "// Len returns")
	assert.NotContains(t, files["tuple_len.go"], "// Capability len")
	assert.Contains(t, files["tuple_len.go"], "func (Tuple2[T1, T2]) Len() int { return 2 }")
}

func TestGenerator_FilePrefix(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.FilePrefix = "zz_"

	files := generateAll(t, cfg, "tuple")

	assert.Contains(t, files, "zz_tuple.go")
	assert.Contains(t, files, "zz_doc.go")
}

func TestEnumerate(t *testing.T) {
	d, ok := capability.Lookup("remove")
	require.True(t, ok)

	var units []arity.Unit

	for impl, err := range Enumerate(d, 8) {
		require.NoError(t, err)
		require.NotEmpty(t, impl.Code, spew.Sdump(impl.Unit))

		units = append(units, impl.Unit)
	}

	assert.Len(t, units, arity.Count(d.Arities, d.Index, 8))
	assert.Equal(t, arity.Unit{Arity: 1, Index: 0, Max: 8}, units[0])
	assert.Equal(t, arity.Unit{Arity: 8, Index: 7, Max: 8}, units[len(units)-1])

	n := 0
	for range Enumerate(d, 8) {
		n++
		if n == 2 {
			break
		}
	}

	assert.Equal(t, 2, n)
}

func TestGenerator_FormatFailureWritesSidecar(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultGeneratorConfig()
	cfg.OutputDir = dir

	file, err := NewGenerator(cfg).format("broken.go", []byte("package x\nfunc {"))
	require.Error(t, err)
	require.NotNil(t, file)
	assert.Equal(t, "package x\nfunc {", string(file.Content))

	side, err := os.ReadFile(filepath.Join(dir, "broken.unformatted.go"))
	require.NoError(t, err)
	assert.Equal(t, "package x\nfunc {", string(side))
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	files := []GeneratedFile{
		{Filename: "a.go", Content: []byte("package a\n")},
		{Filename: "b.go", Content: []byte("package a\n\nvar B = 1\n")},
	}

	require.NoError(t, WriteFiles(files, dir))
	require.NoError(t, WriteFiles(files, dir))

	got, err := os.ReadFile(filepath.Join(dir, "b.go"))
	require.NoError(t, err)
	assert.Equal(t, "package a\n\nvar B = 1\n", string(got))

	files[1].Content = []byte("package a\n\nvar B = 2\n")
	require.NoError(t, WriteFiles(files, dir))

	got, err = os.ReadFile(filepath.Join(dir, "b.go"))
	require.NoError(t, err)
	assert.Equal(t, "package a\n\nvar B = 2\n", string(got))
}
