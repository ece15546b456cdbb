package capability

import (
	"fmt"
	"slices"
	"strings"

	"tuple-generator/internal/arity"
	"tuple-generator/internal/diagnostic"
	"tuple-generator/internal/suggest"
)

// largeUnitCount is the number of units above which Resolve warns about the
// size of the output.
const largeUnitCount = 10000

// Plan is the ordered set of capabilities a generation run synthesizes.
type Plan struct {
	Max          arity.Tier
	Capabilities []*Descriptor
}

// Units returns the total number of units of p.
func (p *Plan) Units() int {
	total := 0
	for _, d := range p.Capabilities {
		total += arity.Count(d.Arities, d.Index, p.Max)
	}

	return total
}

// Has reports whether p includes k.
func (p *Plan) Has(k Kind) bool {
	return slices.ContainsFunc(p.Capabilities, func(d *Descriptor) bool { return d.Kind == k })
}

// Resolve validates names, adds the capabilities they require and orders the
// result so every capability follows its requirements, catalog order breaking
// ties. An empty names list selects the whole catalog.
func Resolve(names []string, top arity.Tier) (*Plan, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	selected := make([]bool, KindTotal)
	explicit := make([]bool, KindTotal)

	if len(names) == 0 {
		for _, d := range catalog {
			selected[d.Kind], explicit[d.Kind] = true, true
		}
	}

	for _, name := range names {
		d, ok := Lookup(strings.TrimSpace(name))
		if !ok {
			diags.Errors = append(diags.Errors, diagnostic.Diagnostic{
				Severity:    diagnostic.DiagnosticError,
				Code:        diagnostic.CodeUnknownCapability,
				Message:     fmt.Sprintf("unknown capability %q", name),
				Capability:  name,
				Suggestions: suggestNames(name),
			})

			continue
		}

		if explicit[d.Kind] {
			diags.AddWarning(diagnostic.CodeDuplicateCapability, "listed more than once", d.Name, "")
		}

		selected[d.Kind], explicit[d.Kind] = true, true
	}

	closeOver(selected)

	var chosen []*Descriptor

	for _, d := range catalog {
		if !selected[d.Kind] {
			continue
		}

		if !explicit[d.Kind] {
			diags.AddInfo(diagnostic.CodeImpliedCapability, "added as a requirement", d.Name, "")
		}

		chosen = append(chosen, d)
	}

	if len(chosen) == 0 {
		diags.AddError(diagnostic.CodeEmptySelection, "no capability selected", "", "")

		return nil, diags
	}

	order, err := topoSort(len(chosen), func(i int) []int {
		var deps []int

		for _, r := range chosen[i].Requires {
			deps = append(deps, slices.IndexFunc(chosen, func(d *Descriptor) bool { return d.Kind == r }))
		}

		return deps
	})
	if err != nil {
		diags.AddError(diagnostic.CodeDependencyCycle, err.Error(), "", "")

		return nil, diags
	}

	p := &Plan{Max: top, Capabilities: make([]*Descriptor, len(order))}
	for i, j := range order {
		p.Capabilities[i] = chosen[j]
	}

	if n := p.Units(); n > largeUnitCount {
		diags.AddWarning(diagnostic.CodeLargeOutput,
			fmt.Sprintf("%d units will be generated for tier %d", n, top), "", "")
	}

	return p, diags
}

// closeOver marks every requirement of a selected capability as selected.
func closeOver(selected []bool) {
	for changed := true; changed; {
		changed = false

		for _, d := range catalog {
			if !selected[d.Kind] {
				continue
			}

			for _, r := range d.Requires {
				if !selected[r] {
					selected[r] = true
					changed = true
				}
			}
		}
	}
}

// suggestNames returns the catalog names closest to name, best first.
func suggestNames(name string) []string {
	return suggest.Closest(name, Names(), suggest.DefaultThreshold)
}
