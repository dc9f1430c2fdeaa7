package analysis_test

import (
	"testing"

	"github.com/katalvlaran/dblcat/analysis"
	"github.com/katalvlaran/dblcat/dbl/discrete"
	"github.com/katalvlaran/dblcat/path"
	"github.com/stretchr/testify/require"
)

func TestDiagram_ResolvesObAndMor(t *testing.T) {
	th := discrete.NewTheory()
	th.AddObType("Object")
	objType := "Object"
	th.AddMorType("Arrow", objType, objType)
	arrType := "Arrow"

	dom := discrete.NewModel(th)
	dom.AddOb("x", objType)
	dom.AddOb("y", objType)
	dom.AddMor("e", "x", "y", arrType)

	cod := discrete.NewModel(th)
	cod.AddOb("a", objType)
	cod.AddOb("b", objType)
	cod.AddMor("f", "a", "b", arrType)

	mapping := discrete.FindOne(dom, cod, discrete.FinderOptions{})
	require.NotNil(t, mapping)

	diagram := analysis.NewDiagram(dom, mapping)
	a, ok := diagram.Ob("x")
	require.True(t, ok)
	require.Equal(t, "a", a)

	image, ok := diagram.Mor("e")
	require.True(t, ok)
	require.Equal(t, path.Seq[string, string]("f"), image)
}
