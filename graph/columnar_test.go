package graph_test

import (
	"testing"

	"github.com/katalvlaran/dblcat/graph"
	"github.com/stretchr/testify/require"
)

// TestColumnarGraph_TriangleValidation checks that a triangle
// graph validates, then breaks with a single Src error after corrupting an
// edge's source, then heals again once the referenced vertex is added.
func TestColumnarGraph_TriangleValidation(t *testing.T) {
	g := graph.NewColumnarGraph[int, int](false)
	g.AddVertex(0)
	g.AddVertex(1)
	g.AddVertex(2)
	g.AddEdge(0, 0, 1)
	g.AddEdge(1, 1, 2)
	g.AddEdge(2, 0, 2)

	require.Empty(t, g.Validate())

	g.SetSrc(2, 3)
	errs := g.Validate()
	require.Len(t, errs, 1)
	require.Equal(t, "src", errs[0].Field)
	require.Equal(t, 2, errs[0].Edge)

	g.AddVertex(3)
	require.Empty(t, g.Validate())
}

func TestColumnarGraph_InOutEdgesIndexed(t *testing.T) {
	for _, indexed := range []bool{false, true} {
		g := graph.NewColumnarGraph[string, string](indexed)
		g.AddEdge("e1", "a", "b")
		g.AddEdge("e2", "a", "c")
		g.AddEdge("e3", "b", "c")

		require.ElementsMatch(t, []string{"e1", "e2"}, g.OutEdges("a"))
		require.ElementsMatch(t, []string{"e2", "e3"}, g.InEdges("c"))
		require.Empty(t, g.InEdges("a"))
	}
}
