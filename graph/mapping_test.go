package graph_test

import (
	"testing"

	"github.com/katalvlaran/dblcat/graph"
	"github.com/stretchr/testify/require"
)

func triangle() *graph.ColumnarGraph[int, int] {
	g := graph.NewColumnarGraph[int, int](false)
	g.AddEdge(0, 0, 1)
	g.AddEdge(1, 1, 2)
	g.AddEdge(2, 0, 2)
	return g
}

func TestGraphMorphism_Valid(t *testing.T) {
	dom := triangle()
	cod := triangle()
	m := graph.NewGraphMapping[int, int]()
	for _, v := range dom.Vertices() {
		m.MapVertex(v, v)
	}
	for _, e := range dom.Edges() {
		m.MapEdge(e, e)
	}
	morph := &graph.GraphMorphism[int, int]{Mapping: m, Dom: dom, Cod: cod}
	require.True(t, morph.IsValid())
}

func TestGraphMorphism_SrcMismatch(t *testing.T) {
	dom := triangle()
	cod := triangle()
	m := graph.NewGraphMapping[int, int]()
	for _, v := range dom.Vertices() {
		m.MapVertex(v, v)
	}
	for _, e := range dom.Edges() {
		m.MapEdge(e, e)
	}
	// Corrupt: send vertex 0 to 2 instead of itself, breaking edge 0 (0->1).
	m.MapVertex(0, 2)

	morph := &graph.GraphMorphism[int, int]{Mapping: m, Dom: dom, Cod: cod}
	errs := morph.Validate()
	require.NotEmpty(t, errs)
	found := false
	for _, e := range errs {
		if e.Kind == "src" && e.Edge == 0 {
			found = true
		}
	}
	require.True(t, found)
}
