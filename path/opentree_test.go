package path_test

import (
	"testing"

	"github.com/katalvlaran/dblcat/path"
	"github.com/stretchr/testify/require"
)

func TestOpenTree_ArityAndSize(t *testing.T) {
	id := path.Ident[string, string]("x")
	require.Equal(t, 1, id.Arity())
	require.Equal(t, 0, id.Size())

	leaf1 := path.Leaf[string, string]()
	leaf2 := path.Leaf[string, string]()
	node := path.Graft("op", leaf1, leaf2)
	require.Equal(t, 2, node.Arity())
	require.Equal(t, 1, node.Size())

	nested := path.Graft("outer", node, path.Leaf[string, string]())
	require.Equal(t, 3, nested.Arity())
	require.Equal(t, 2, nested.Size())
}

func TestOpenTree_FlattenIdentitySleeve(t *testing.T) {
	// outer: the identity tree over "boundary-val" at the outer level;
	// flattening should pass that value through with zero new nodes.
	outer := path.Ident[string, path.OpenTree[string, string]]("boundary-val")
	flat := path.Flatten[string, string](outer)
	require.True(t, flat.IsIdent())
	v, ok := flat.IdentValue()
	require.True(t, ok)
	require.Equal(t, "boundary-val", v)
}

func TestOpenTree_FlattenComposesInnerOps(t *testing.T) {
	inner1 := path.Graft("a", path.Leaf[int, string](), path.Leaf[int, string]())
	inner2 := path.Ident[int, string](7)

	outerOp := path.Graft("b", inner1, inner2)
	outer := path.Graft[int, path.OpenTree[int, string]](outerOp,
		path.Leaf[int, path.OpenTree[int, string]](),
		path.Leaf[int, path.OpenTree[int, string]](),
		path.Leaf[int, path.OpenTree[int, string]](),
	)

	flat := path.Flatten[int, string](outer)
	// flat should be isomorphic to Graft("b", Graft("a", leaf, leaf), leaf)
	expected := path.Graft("b",
		path.Graft("a", path.Leaf[int, string](), path.Leaf[int, string]()),
		path.Leaf[int, string](),
	)
	require.True(t, flat.IsIsomorphicTo(expected, func(a, b string) bool { return a == b }))
	require.Equal(t, 3, flat.Arity())
	require.Equal(t, 2, flat.Size())
}

func TestOpenTree_IsIsomorphicTo(t *testing.T) {
	a := path.Graft("x", path.Leaf[int, string](), path.Leaf[int, string]())
	b := path.Graft("x", path.Leaf[int, string](), path.Leaf[int, string]())
	c := path.Graft("y", path.Leaf[int, string](), path.Leaf[int, string]())
	eq := func(x, y string) bool { return x == y }
	require.True(t, a.IsIsomorphicTo(b, eq))
	require.False(t, a.IsIsomorphicTo(c, eq))
}
