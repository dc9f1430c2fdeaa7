package analysis

import (
	"github.com/katalvlaran/dblcat/dbl/discrete"
	"github.com/katalvlaran/dblcat/path"
)

// Diagram is a diagram in a model: a free domain model together with a
// mapping of that model into a codomain model. An ODE analysis does not
// need to consume a whole model directly — a diagram lets it read off
// just the sub-model picked out by the mapping.
type Diagram struct {
	Dom     *discrete.Model
	Mapping *discrete.Mapping
}

func NewDiagram(dom *discrete.Model, mapping *discrete.Mapping) *Diagram {
	return &Diagram{Dom: dom, Mapping: mapping}
}

// Ob resolves a domain object generator to its image in the codomain
// model.
func (d *Diagram) Ob(gen string) (string, bool) {
	v, ok := d.Mapping.ObMap[gen]
	return v, ok
}

// Mor resolves a domain morphism generator to its image path in the
// codomain model.
func (d *Diagram) Mor(gen string) (path.Path[string, string], bool) {
	p, ok := d.Mapping.MorMap[gen]
	return p, ok
}
