package analyze

import (
	"fmt"

	"tuple-generator/internal/arity"
	"tuple-generator/internal/capability"
	"tuple-generator/internal/gen"
)

// Origin names the capability unit a declaration is rendered from.
type Origin struct {
	Capability string
	Unit       arity.Unit
}

// Expected renders every unit of p and returns the declarations they define,
// in generation order.
func Expected(p *capability.Plan) ([]DeclID, error) {
	var out []DeclID

	err := expect(p, func(id DeclID, _ Origin) { out = append(out, id) })

	return out, err
}

// Origins maps every declaration p defines to the unit rendering it.
func Origins(p *capability.Plan) (map[DeclID]Origin, error) {
	out := make(map[DeclID]Origin)

	err := expect(p, func(id DeclID, o Origin) { out[id] = o })

	return out, err
}

func expect(p *capability.Plan, yield func(DeclID, Origin)) error {
	g := gen.NewGenerator(gen.GeneratorConfig{Max: p.Max})

	for _, d := range p.Capabilities {
		for impl, err := range g.Enumerate(d) {
			if err != nil {
				return fmt.Errorf("rendering %s %s: %w", d.Name, impl.Unit, err)
			}

			ids, err := Declared(impl.Code)
			if err != nil {
				return fmt.Errorf("%s %s: %w", d.Name, impl.Unit, err)
			}

			for _, id := range ids {
				yield(id, Origin{Capability: d.Name, Unit: impl.Unit})
			}
		}
	}

	return nil
}

// Verify type-checks the single package matched by pattern and returns the
// declarations of p it lacks.
func (a *Analyzer) Verify(pattern string, p *capability.Plan) (*PackageInfo, []DeclID, error) {
	pkgs, err := a.LoadPackages(pattern)
	if err != nil {
		return nil, nil, err
	}

	if len(pkgs) != 1 {
		return nil, nil, fmt.Errorf("pattern %q matched %d packages, want 1", pattern, len(pkgs))
	}

	want, err := Expected(p)
	if err != nil {
		return nil, nil, err
	}

	return pkgs[0], pkgs[0].Missing(want), nil
}
