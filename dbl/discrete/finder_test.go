package discrete_test

import (
	"testing"

	"github.com/katalvlaran/dblcat/dbl/discrete"
	"github.com/stretchr/testify/require"
)

// TestFindAll_ParallelLoops checks that a single
// free-standing loop generator admits exactly one image per parallel loop
// in the codomain, and no others (composite paths of the wrong type-word
// length are enumerated as candidates and rejected by the IsEqualType check
// on their morphism type).
func TestFindAll_ParallelLoops(t *testing.T) {
	th := discrete.NewTheory()
	th.AddObType("O")
	th.AddMorType("F", "O", "O")

	dom := discrete.NewModel(th)
	dom.AddOb("x", "O")
	dom.AddMor("f", "x", "x", "F")

	cod := discrete.NewModel(th)
	cod.AddOb("y", "O")
	cod.AddMor("g", "y", "y", "F")
	cod.AddMor("h", "y", "y", "F")

	results := discrete.FindAll(dom, cod, discrete.FinderOptions{})
	require.Len(t, results, 2)

	var images []string
	for _, r := range results {
		images = append(images, r.MorMap["f"].Edges()[0])
	}
	require.ElementsMatch(t, []string{"g", "h"}, images)
}

// TestFindAll_FaithfulFiltersParallelImages pins the backtracking
// faithfulness filter: two parallel domain
// generators cannot be mapped onto the same codomain generator under a
// faithful search, and pinning one generator's image collapses the
// remaining search to exactly one homomorphism.
func TestFindAll_FaithfulFiltersParallelImages(t *testing.T) {
	th := discrete.NewTheory()
	th.AddObType("O")
	th.AddMorType("E", "O", "O")

	dom := discrete.NewModel(th)
	dom.AddOb("1", "O")
	dom.AddOb("2", "O")
	dom.AddMor("p1", "1", "2", "E")
	dom.AddMor("p2", "1", "2", "E")

	cod := discrete.NewModel(th)
	cod.AddOb("a", "O")
	cod.AddOb("b", "O")
	cod.AddMor("e1", "a", "b", "E")
	cod.AddMor("e2", "a", "b", "E")

	opts := discrete.FinderOptions{
		Faithful:   true,
		InitialOb:  map[string]string{"1": "a", "2": "b"},
		InitialMor: map[string]string{"p1": "e1"},
	}

	results := discrete.FindAll(dom, cod, opts)
	require.Len(t, results, 1)
	require.Equal(t, []string{"e2"}, results[0].MorMap["p2"].Edges())
}

func TestFinderOptions_Monic(t *testing.T) {
	require.True(t, discrete.FinderOptions{InjectiveOb: true, Faithful: true}.Monic())
	require.False(t, discrete.FinderOptions{InjectiveOb: true, Faithful: false}.Monic())
}

func TestFindOne_NoMatch(t *testing.T) {
	th := discrete.NewTheory()
	th.AddObType("O")
	th.AddMorType("F", "O", "O")

	dom := discrete.NewModel(th)
	dom.AddOb("x", "O")
	dom.AddMor("f", "x", "x", "F")

	cod := discrete.NewModel(th)
	cod.AddOb("y", "O") // no morphism generators at all

	require.Nil(t, discrete.FindOne(dom, cod, discrete.FinderOptions{}))
}
