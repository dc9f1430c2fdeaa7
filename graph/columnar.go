package graph

import "github.com/katalvlaran/dblcat/zero"

// ColumnarGraph is a finite multigraph: a pair of finite sets
// (vertices, edges) plus src/tgt zero.Column maps from edges to vertices. An
// indexed variant maintains reverse adjacency for O(1)-ish InEdges/OutEdges,
// keyed through zero.Column instead of bespoke nested maps.
type ColumnarGraph[V comparable, E comparable] struct {
	vertices *zero.SliceFinSet[V]
	edges    *zero.SliceFinSet[E]
	src      zero.Column[E, V]
	tgt      zero.Column[E, V]
	indexed  bool
}

// NewColumnarGraph builds an empty ColumnarGraph. When indexed is true, src
// and tgt are backed by zero.IndexedColumn so InEdges/OutEdges run in time
// proportional to the result size rather than the full edge set.
func NewColumnarGraph[V comparable, E comparable](indexed bool) *ColumnarGraph[V, E] {
	g := &ColumnarGraph[V, E]{
		vertices: zero.NewSliceFinSet[V](),
		edges:    zero.NewSliceFinSet[E](),
		indexed:  indexed,
	}
	if indexed {
		g.src = zero.NewIndexedColumn[E, V]()
		g.tgt = zero.NewIndexedColumn[E, V]()
	} else {
		g.src = zero.NewHashColumn[E, V]()
		g.tgt = zero.NewHashColumn[E, V]()
	}
	return g
}

// AddVertex inserts v, a no-op if already present. Complexity: O(1).
func (g *ColumnarGraph[V, E]) AddVertex(v V) { g.vertices.Insert(v) }

// AddEdge inserts e with the given endpoints, adding them if absent.
// Complexity: O(1).
func (g *ColumnarGraph[V, E]) AddEdge(e E, src, tgt V) {
	g.AddVertex(src)
	g.AddVertex(tgt)
	g.edges.Insert(e)
	g.src.Set(e, src)
	g.tgt.Set(e, tgt)
}

func (g *ColumnarGraph[V, E]) HasVertex(v V) bool { return g.vertices.Contains(v) }
func (g *ColumnarGraph[V, E]) HasEdge(e E) bool    { return g.edges.Contains(e) }

func (g *ColumnarGraph[V, E]) Src(e E) (V, bool) { return g.src.Apply(e) }
func (g *ColumnarGraph[V, E]) Tgt(e E) (V, bool) { return g.tgt.Apply(e) }

func (g *ColumnarGraph[V, E]) Vertices() []V { return g.vertices.Iter() }
func (g *ColumnarGraph[V, E]) Edges() []E    { return g.edges.Iter() }

// SetSrc rewrites the source of an existing edge. It does not require e to
// be registered yet.
func (g *ColumnarGraph[V, E]) SetSrc(e E, v V) { g.src.Set(e, v) }

// SetTgt rewrites the target of an existing edge.
func (g *ColumnarGraph[V, E]) SetTgt(e E, v V) { g.tgt.Set(e, v) }

// OutEdges returns edges whose source is v. With an indexed graph this is
// O(|result|); otherwise it scans all edges, O(|E|).
func (g *ColumnarGraph[V, E]) OutEdges(v V) []E {
	if g.indexed {
		return g.src.Preimage(v)
	}
	var out []E
	for _, e := range g.edges.Iter() {
		if s, ok := g.src.Apply(e); ok && s == v {
			out = append(out, e)
		}
	}
	return out
}

// InEdges returns edges whose target is v, symmetric to OutEdges.
func (g *ColumnarGraph[V, E]) InEdges(v V) []E {
	if g.indexed {
		return g.tgt.Preimage(v)
	}
	var out []E
	for _, e := range g.edges.Iter() {
		if t, ok := g.tgt.Apply(e); ok && t == v {
			out = append(out, e)
		}
	}
	return out
}

// Validate checks that for each edge, src and
// tgt are defined and land in the vertex set. Returns every violation,
// not just the first.
func (g *ColumnarGraph[V, E]) Validate() []InvalidGraph[E] {
	var errs []InvalidGraph[E]
	for _, e := range g.edges.Iter() {
		s, ok := g.src.Apply(e)
		if !ok || !g.vertices.Contains(s) {
			errs = append(errs, InvalidGraph[E]{Edge: e, Field: "src"})
		}
		t, ok := g.tgt.Apply(e)
		if !ok || !g.vertices.Contains(t) {
			errs = append(errs, InvalidGraph[E]{Edge: e, Field: "tgt"})
		}
	}
	return errs
}
