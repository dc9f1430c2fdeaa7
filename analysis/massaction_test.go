package analysis_test

import (
	"testing"

	"github.com/katalvlaran/dblcat/analysis"
	"github.com/katalvlaran/dblcat/dbl/modal"
	"github.com/stretchr/testify/require"
)

// TestPetriNetMassAction_Catalysis mirrors the source's catalysis_dynamics
// fixture: a catalyst c is consumed and produced in equal measure by a
// reaction x->y it catalyzes, so its net rate of change is zero.
func TestPetriNetMassAction_Catalysis(t *testing.T) {
	th := modal.NewTheory()
	ana := analysis.DefaultPetriNetMassActionAnalysis(th)

	m := modal.NewModel(th)
	for _, name := range []string{"c", "x", "y"} {
		m.AddOb(name, ana.PlaceObType)
	}

	dom := modal.ListOb(modal.Plain, []modal.Ob{modal.GeneratorOb("c"), modal.GeneratorOb("x")})
	cod := modal.ListOb(modal.Plain, []modal.Ob{modal.GeneratorOb("c"), modal.GeneratorOb("y")})
	m.AddMor("f", dom, cod, ana.TransitionMorType)

	sys := ana.BuildSystem(m)

	dc, ok := sys.Component("c")
	require.True(t, ok)
	require.Equal(t, "0", dc.String())

	dx, ok := sys.Component("x")
	require.True(t, ok)
	require.Equal(t, "((-1) f) c x", dx.String())

	dy, ok := sys.Component("y")
	require.True(t, ok)
	require.Equal(t, "f c x", dy.String())
}

func TestPetriNetMassAction_UnusedPlaceStaysZero(t *testing.T) {
	th := modal.NewTheory()
	ana := analysis.DefaultPetriNetMassActionAnalysis(th)

	m := modal.NewModel(th)
	m.AddOb("isolated", ana.PlaceObType)

	sys := ana.BuildSystem(m)
	d, ok := sys.Component("isolated")
	require.True(t, ok)
	require.Equal(t, "0", d.String())
}
