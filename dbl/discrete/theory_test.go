package discrete_test

import (
	"testing"

	"github.com/katalvlaran/dblcat/dbl"
	"github.com/katalvlaran/dblcat/dbl/discrete"
	"github.com/katalvlaran/dblcat/path"
	"github.com/stretchr/testify/require"
)

func signedLoopTheory() *discrete.Theory {
	th := discrete.NewTheory()
	th.AddObType("Object")
	th.AddMorType("Loop", "Object", "Object")
	return th
}

func TestTheory_IsEqualType(t *testing.T) {
	th := signedLoopTheory()
	require.True(t, th.IsEqualType(path.Seq[string, string]("Loop"), path.Seq[string, string]("Loop")))
	require.NoError(t, th.AddEquation(path.Seq[string, string]("Loop", "Loop"), path.Ident[string, string]("Object")))
	require.True(t, th.IsEqualType(path.Seq[string, string]("Loop", "Loop"), path.Ident[string, string]("Object")))
	require.False(t, th.IsEqualType(path.Seq[string, string]("Loop"), path.Ident[string, string]("Object")))
}

func TestTheory_ComposeCells_Ident(t *testing.T) {
	th := signedLoopTheory()
	tree := dbl.IdentTree[string, string, string, string]("Loop", "Object", "Object")
	id := th.ComposeCells(tree)
	require.Equal(t, "Loop", th.CellCod(id))
	require.Equal(t, []string{"Loop"}, th.CellDom(id).Edges())
}

func TestModel_ValidateTriangle(t *testing.T) {
	th := discrete.NewTheory()
	th.AddObType("O")
	th.AddMorType("E", "O", "O")

	m := discrete.NewModel(th)
	m.AddOb("1", "O")
	m.AddOb("2", "O")
	m.AddOb("3", "O")
	m.AddMor("p", "1", "2", "E")
	m.AddMor("q", "2", "3", "E")
	m.AddMor("r", "1", "3", "E")

	require.True(t, m.IsValid())
}

func TestModel_ValidateRejectsUnknownType(t *testing.T) {
	th := discrete.NewTheory()
	th.AddObType("O")

	m := discrete.NewModel(th)
	m.AddOb("x", "NotAType")

	errs := m.Validate()
	require.Len(t, errs, 1)
	require.Equal(t, "ob_type", errs[0].Kind)
}

func TestModel_InferMissingThenValid(t *testing.T) {
	th := discrete.NewTheory()
	th.AddObType("O")
	th.AddMorType("E", "O", "O")

	m := discrete.NewModel(th)
	m.AddMor("f", "a", "b", "E")
	require.False(t, m.IsValid())

	m.InferMissing()
	require.True(t, m.IsValid())
	ta, _ := m.ObType("a")
	require.Equal(t, "O", ta)
}
