package gen

import (
	"bytes"
	"fmt"
	"iter"
	"slices"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"tuple-generator/internal/arity"
	"tuple-generator/internal/capability"
)

// DefaultRuntimeModule is the module path of the nested, option and hashing
// packages imported by generated code.
const DefaultRuntimeModule = "tuple-generator"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// Max is the arity tier of the run.
	Max arity.Tier
	// RuntimeModule prefixes the import paths of the runtime packages.
	RuntimeModule string
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
	// FilePrefix is prepended to every generated file name.
	FilePrefix string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:      "tuples",
		OutputDir:        "./generated",
		Max:              arity.DefaultTier,
		RuntimeModule:    DefaultRuntimeModule,
		GenerateComments: true,
		FilePrefix:       "tuple_",
	}
}

// Generator renders capability plans to Go source files.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "tuple_push-front.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Impl is the rendered code of one unit.
type Impl struct {
	Unit arity.Unit
	Code []byte
}

// Enumerate renders every unit of d for the tier top, lazily and in
// enumeration order. Doc comments are included.
func Enumerate(d *capability.Descriptor, top arity.Tier) iter.Seq2[Impl, error] {
	return NewGenerator(GeneratorConfig{Max: top, GenerateComments: true}).Enumerate(d)
}

// Enumerate renders every unit of d for the configured tier. Iteration stops
// after the first error.
func (g *Generator) Enumerate(d *capability.Descriptor) iter.Seq2[Impl, error] {
	return func(yield func(Impl, error) bool) {
		for u := range d.Units(g.config.Max) {
			code, err := d.Render(u, g.config.GenerateComments)
			if err != nil {
				yield(Impl{Unit: u}, err)

				return
			}

			if !yield(Impl{Unit: u, Code: code}, nil) {
				return
			}
		}
	}
}

// Generate generates one file per capability of p, plus a package doc file.
// The output only depends on the configuration and p.
func (g *Generator) Generate(p *capability.Plan) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, len(p.Capabilities)+1)

	doc, err := g.generateDoc(p)
	if err != nil {
		return nil, fmt.Errorf("generating package doc: %w", err)
	}

	files = append(files, *doc)

	for _, d := range p.Capabilities {
		file, err := g.generateCapability(d)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", d.Name, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// Filename returns the name of the file holding capability d.
func (g *Generator) Filename(d *capability.Descriptor) string {
	return g.config.FilePrefix + d.Name + ".go"
}

type importSpec struct {
	Path string
}

type templateData struct {
	PackageName string
	Capability  string
	Doc         string
	Comments    bool
	Imports     []importSpec
	Units       []string
}

// generateCapability renders every unit of d into a single file.
func (g *Generator) generateCapability(d *capability.Descriptor) (*GeneratedFile, error) {
	data := &templateData{
		PackageName: g.config.PackageName,
		Capability:  d.Name,
		Doc:         d.Doc,
		Comments:    g.config.GenerateComments,
		Imports:     g.importsOf(d),
	}

	for impl, err := range g.Enumerate(d) {
		if err != nil {
			return nil, err
		}

		data.Units = append(data.Units, string(impl.Code))
	}

	var buf bytes.Buffer
	if err := capabilityTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return g.format(g.Filename(d), buf.Bytes())
}

func (g *Generator) generateDoc(p *capability.Plan) (*GeneratedFile, error) {
	names := make([]string, len(p.Capabilities))
	for i, d := range p.Capabilities {
		names[i] = d.Name
	}

	data := struct {
		PackageName  string
		Max          arity.Tier
		Capabilities []string
	}{g.config.PackageName, g.config.Max, names}

	var buf bytes.Buffer
	if err := docTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return g.format(g.config.FilePrefix+"doc.go", buf.Bytes())
}

// importsOf resolves the imports of d against the runtime module, sorted by
// path.
func (g *Generator) importsOf(d *capability.Descriptor) []importSpec {
	runtime := g.config.RuntimeModule
	if runtime == "" {
		runtime = DefaultRuntimeModule
	}

	specs := make([]importSpec, 0, len(d.Imports))
	for _, imp := range d.Imports {
		specs = append(specs, importSpec{Path: imp.Resolve(runtime)})
	}

	slices.SortFunc(specs, func(a, b importSpec) int {
		return strings.Compare(a.Path, b.Path)
	})

	return specs
}

// format gofmts src. On failure the unformatted code goes to a sidecar file
// in the output directory.
func (g *Generator) format(filename string, src []byte) (*GeneratedFile, error) {
	formatted, err := imports.Process(filename, src, &imports.Options{
		FormatOnly: true,
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
	})
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, filename, src)
		}

		return &GeneratedFile{
			Filename: filename,
			Content:  src,
		}, fmt.Errorf("formatting %s: %w", filename, err)
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}

const generatedHeader = "// Code generated by tuple-generator. DO NOT EDIT."

var capabilityTemplate = template.Must(template.New("capability").Parse(generatedHeader + `
{{if .Comments}}
// Capability {{.Capability}}: {{.Doc}}.
{{end}}
package {{.PackageName}}

{{if .Imports}}
import (
{{range .Imports}}	"{{.Path}}"
{{end}})
{{end}}
{{range .Units}}
{{.}}{{end}}`))

var docTemplate = template.Must(template.New("doc").Parse(generatedHeader + `

// Package {{.PackageName}} holds flat tuple types of arity 0 to {{.Max}} and
// their capabilities:
//
{{range .Capabilities}}//   - {{.}}
{{end}}package {{.PackageName}}
`))
