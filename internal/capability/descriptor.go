package capability

import (
	"bytes"
	"fmt"
	"iter"
	"path"
	"text/template"

	"tuple-generator/internal/arity"
)

// Import is a package imported by the code of a capability.
type Import struct {
	// Path is the import path. For runtime imports it is relative to the
	// runtime module.
	Path string
	// Runtime marks packages shipped with this module (nested, option,
	// hashing).
	Runtime bool
}

// Resolve returns the full import path given the runtime module path.
func (i Import) Resolve(runtimeModule string) string {
	if !i.Runtime {
		return i.Path
	}

	return path.Join(runtimeModule, i.Path)
}

// Descriptor describes one capability: which units it is synthesized for and
// how each unit is rendered.
type Descriptor struct {
	Kind Kind
	// Name is the configuration name, equal to Kind.String().
	Name string
	// Doc is a one-line description shown by the plan command.
	Doc string
	// Arities is the arity window relative to the run's tier.
	Arities arity.Range
	// Index selects the indices generated per arity.
	Index arity.IndexPolicy
	// Requires lists capabilities whose generated code this one calls.
	Requires []Kind
	// Imports lists packages every file of this capability imports.
	Imports []Import

	tmpl *template.Template
}

func newDescriptor(kind Kind, doc string, r arity.Range, index arity.IndexPolicy, text string,
	requires []Kind, imports ...Import,
) *Descriptor {
	return &Descriptor{
		Kind:     kind,
		Name:     kind.String(),
		Doc:      doc,
		Arities:  r,
		Index:    index,
		Requires: requires,
		Imports:  imports,
		tmpl:     template.Must(template.New(kind.String()).Parse(text)),
	}
}

// Units enumerates the units of d for the given tier.
func (d *Descriptor) Units(top arity.Tier) iter.Seq[arity.Unit] {
	return arity.Units(d.Arities, d.Index, top)
}

// Render renders the code of a single unit.
func (d *Descriptor) Render(u arity.Unit, comments bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := d.tmpl.Execute(&buf, NewView(u, comments)); err != nil {
		return nil, fmt.Errorf("rendering %s %v: %w", d.Name, u, err)
	}

	return buf.Bytes(), nil
}

func (d *Descriptor) String() string { return d.Name }
