package generator

import "github.com/faspi/cli/internal/output"

// Entity generates the full vertical slice for name: entity, repository
// interface, use case set, repository implementation, model, schema and CRUD
// routes, in that order. The first failure stops the sequence; files already
// written are kept.
func (g *Generator) Entity(name string) ([]*Result, error) {
	results := make([]*Result, 0, len(entitySequence))

	for _, kind := range entitySequence {
		r, err := g.Generate(kind, name)
		if err != nil {
			output.Debug("entity generation stopped", "name", name, "kind", kind, "completed", len(results))
			return results, err
		}
		results = append(results, r)
	}

	return results, nil
}
