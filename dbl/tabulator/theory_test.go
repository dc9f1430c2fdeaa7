package tabulator_test

import (
	"testing"

	"github.com/katalvlaran/dblcat/dbl"
	"github.com/katalvlaran/dblcat/dbl/tabulator"
	"github.com/stretchr/testify/require"
)

// TestTheory_TabulatorAndCone mirrors the source theory's own
// theory_interface test: a basic object type x, its Hom(x) unit type, the
// tabulator of that unit, and a basic morphism type m : x -> Tab(Hom(x))
// whose cone(Hom(x)) cell has matching projection sides.
func TestTheory_TabulatorAndCone(t *testing.T) {
	th := tabulator.NewTheory()
	x := th.AddObType("x")
	require.True(t, th.HasOb(x))

	homX := tabulator.MorHom(x)
	require.True(t, th.HasPro(homX))

	tab := tabulator.ObTab(homX)
	require.True(t, th.HasOb(tab))
	require.True(t, th.HasPro(tabulator.MorHom(tab)))

	mKey := th.AddMorType("m", x, tab)
	require.True(t, th.HasPro(mKey))
	gotSrc, _ := th.ProSrc(mKey)
	gotCod, _ := th.ProTgt(mKey)
	require.Equal(t, x, gotSrc)
	require.Equal(t, tab, gotCod)

	cone := th.UnaryProjection("cone", homX)
	srcArr := tabulator.SrcProj(homX)
	tgtArr := tabulator.TgtProj(homX)
	require.Equal(t, srcArr, th.CellSrc(cone))
	require.Equal(t, tgtArr, th.CellTgt(cone))
}

func TestTheory_ComposeCells_Cone(t *testing.T) {
	th := tabulator.NewTheory()
	x := th.AddObType("x")
	homX := tabulator.MorHom(x)
	tab := tabulator.ObTab(homX)
	mKey := th.AddMorType("m", x, tab)

	tree := dbl.IdentTree[string, string, string, string](mKey, tabulator.SrcProj(homX), tabulator.TgtProj(homX))
	cell := th.ComposeCells(tree)
	require.Equal(t, mKey, th.CellCod(cell))
	require.Equal(t, []string{mKey}, th.CellDom(cell).Edges())
}

func TestModel_ValidateWithTabulator(t *testing.T) {
	th := tabulator.NewTheory()
	x := th.AddObType("x")
	homX := tabulator.MorHom(x)
	tab := tabulator.ObTab(homX)
	mKey := th.AddMorType("m", x, tab)

	mdl := tabulator.NewModel(th)
	mdl.AddOb("a", x)
	mdl.AddOb("b", tab)
	mdl.AddMor("f", "a", "b", mKey)

	require.True(t, mdl.IsValid())
}
