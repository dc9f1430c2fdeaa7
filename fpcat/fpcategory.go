package fpcat

import (
	"errors"

	"github.com/katalvlaran/dblcat/graph"
	"github.com/katalvlaran/dblcat/path"
)

// ErrUnknownGenerator names a path edge never registered via
// AddMorGenerator. No function in this package returns it.
var ErrUnknownGenerator = errors.New("fpcat: unknown morphism generator")

// FPCategory is a finitely presented category: a graph of
// generating objects/morphisms plus equations, decided by an EGraph.
type FPCategory struct {
	Generators *graph.ColumnarGraph[string, string]
	egraph     *EGraph
}

// NewFPCategory builds an empty FPCategory.
func NewFPCategory() *FPCategory {
	return &FPCategory{
		Generators: graph.NewColumnarGraph[string, string](true),
		egraph:     NewEGraph(),
	}
}

// AddObGenerator adds an object generator.
func (c *FPCategory) AddObGenerator(ob string) { c.Generators.AddVertex(ob) }

// AddMorGenerator adds a morphism generator with the given dom/cod. Dom/cod
// tracking for generators lives in the underlying graph; the e-graph only
// needs to reason about composite words (see package doc).
func (c *FPCategory) AddMorGenerator(mor, dom, cod string) {
	c.Generators.AddEdge(mor, dom, cod)
}

// pathToWord flattens a path.Path into the Word the e-graph reasons about;
// identity paths contribute the empty word.
func (c *FPCategory) pathToWord(p path.Path[string, string]) Word {
	if p.IsIdent() {
		return nil
	}
	return Word(p.Edges())
}

// Dom returns the domain object of a path.
func (c *FPCategory) Dom(p path.Path[string, string]) (string, bool) {
	return p.Src(c.Generators)
}

// Cod returns the codomain object of a path.
func (c *FPCategory) Cod(p path.Path[string, string]) (string, bool) {
	return p.Tgt(c.Generators)
}

// Compose flattens a path-of-paths into a single path in the generator
// graph.
func (c *FPCategory) Compose(p path.Path[string, string]) path.Path[string, string] {
	return p
}

// Equate asserts a path equation: both sides must share src and share tgt
// (validated structurally), and the equation is folded into the e-graph.
func (c *FPCategory) Equate(eq path.PathEq[string, string]) error {
	if err := eq.Validate(c.Generators); err != nil {
		return err
	}
	c.egraph.Equate(c.pathToWord(eq.Lhs), c.pathToWord(eq.Rhs))
	return nil
}

// IsEqual decides whether lhs and rhs are equal morphisms under the
// equational theory asserted so far: symmetric, reflexive,
// transitive, and contains every equation passed to Equate.
func (c *FPCategory) IsEqual(lhs, rhs path.Path[string, string]) bool {
	return c.egraph.IsEqual(c.pathToWord(lhs), c.pathToWord(rhs))
}
