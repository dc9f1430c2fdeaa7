package fpcat_test

import (
	"testing"

	"github.com/katalvlaran/dblcat/fpcat"
	"github.com/katalvlaran/dblcat/path"
	"github.com/stretchr/testify/require"
)

// TestFPCategory_SymmetricGraphEquations checks that the schema
// of symmetric graphs (V,E with s,t:E->V and i:E->E, plus i∘i=id_E,
// i∘s=t, i∘t=s) decides is_equal(i∘i∘i∘s, t) = true and is_equal(s,t) = false.
func TestFPCategory_SymmetricGraphEquations(t *testing.T) {
	c := fpcat.NewFPCategory()
	c.AddObGenerator("V")
	c.AddObGenerator("E")
	c.AddMorGenerator("s", "E", "V")
	c.AddMorGenerator("t", "E", "V")
	c.AddMorGenerator("i", "E", "E")

	idE := path.Ident[string, string]("E")
	require.NoError(t, c.Equate(path.PathEq[string, string]{
		Lhs: path.Seq[string, string]("i", "i"),
		Rhs: idE,
	}))
	require.NoError(t, c.Equate(path.PathEq[string, string]{
		Lhs: path.Seq[string, string]("i", "s"),
		Rhs: path.Seq[string, string]("t"),
	}))
	require.NoError(t, c.Equate(path.PathEq[string, string]{
		Lhs: path.Seq[string, string]("i", "t"),
		Rhs: path.Seq[string, string]("s"),
	}))

	iiis := path.Seq[string, string]("i", "i", "i", "s")
	tOnly := path.Seq[string, string]("t")
	require.True(t, c.IsEqual(iiis, tOnly))

	sOnly := path.Seq[string, string]("s")
	require.False(t, c.IsEqual(sOnly, tOnly))
}

func TestFPCategory_ReflexiveSymmetricTransitive(t *testing.T) {
	c := fpcat.NewFPCategory()
	c.AddObGenerator("x")
	c.AddObGenerator("y")
	c.AddObGenerator("z")
	c.AddMorGenerator("f", "x", "y")
	c.AddMorGenerator("g", "y", "z")
	c.AddMorGenerator("h", "x", "z")
	c.AddMorGenerator("k", "x", "z")

	fg := path.Seq[string, string]("f", "g")
	require.True(t, c.IsEqual(fg, fg)) // reflexive

	require.NoError(t, c.Equate(path.PathEq[string, string]{Lhs: fg, Rhs: path.Seq[string, string]("h")}))
	require.True(t, c.IsEqual(fg, path.Seq[string, string]("h")))
	require.True(t, c.IsEqual(path.Seq[string, string]("h"), fg)) // symmetric

	require.NoError(t, c.Equate(path.PathEq[string, string]{Lhs: path.Seq[string, string]("h"), Rhs: path.Seq[string, string]("k")}))
	require.True(t, c.IsEqual(fg, path.Seq[string, string]("k"))) // transitive
}
