package modal_test

import (
	"testing"

	"github.com/katalvlaran/dblcat/dbl/modal"
	"github.com/stretchr/testify/require"
)

// monoidalTheory builds a one-object-type theory with a binary "tensor"
// operation on pairs of objects, mirroring the source's monoidal_category
// test fixture.
func monoidalTheory() (*modal.Theory, modal.ObType) {
	th := modal.NewTheory()
	object := th.AddObType("Object")
	pairType := object.Apply(modal.ListModality(modal.Plain))
	th.AddObOp("tensor", pairType, object)
	return th, object
}

func TestConcat_FlattensNestedLists(t *testing.T) {
	th, object := monoidalTheory()
	m := modal.NewModel(th)
	for _, name := range []string{"w", "x", "y", "z"} {
		m.AddOb(name, object)
	}

	pairs := modal.ListOb(modal.Plain, []modal.Ob{
		modal.ListOb(modal.Plain, []modal.Ob{modal.GeneratorOb("w"), modal.GeneratorOb("x")}),
		modal.ListOb(modal.Plain, []modal.Ob{modal.GeneratorOb("y"), modal.GeneratorOb("z")}),
	})

	flat, err := m.ObAct(pairs, modal.ConcatObOp(modal.Plain, 2, object))
	require.NoError(t, err)

	want := modal.ListOb(modal.Plain, []modal.Ob{
		modal.GeneratorOb("w"), modal.GeneratorOb("x"), modal.GeneratorOb("y"), modal.GeneratorOb("z"),
	})
	require.True(t, flat.Equal(want))
}

func TestConcat_DepthZeroWrapsSingleton(t *testing.T) {
	th, object := monoidalTheory()
	m := modal.NewModel(th)
	m.AddOb("x", object)

	wrapped, err := m.ObAct(modal.GeneratorOb("x"), modal.ConcatObOp(modal.Plain, 0, object))
	require.NoError(t, err)
	require.True(t, wrapped.Equal(modal.ListOb(modal.Plain, []modal.Ob{modal.GeneratorOb("x")})))
}

func TestObAct_TensorAppliesToMatchingPair(t *testing.T) {
	th, object := monoidalTheory()
	m := modal.NewModel(th)
	m.AddOb("x", object)
	m.AddOb("y", object)

	pair := modal.ListOb(modal.Plain, []modal.Ob{modal.GeneratorOb("x"), modal.GeneratorOb("y")})
	require.True(t, m.HasOb(pair))

	prod, err := m.ObAct(pair, modal.GeneratorObOp("tensor"))
	require.NoError(t, err)
	require.True(t, m.HasOb(prod))
	gotType, ok := m.InferObType(prod)
	require.True(t, ok)
	require.True(t, gotType.Equal(object))
}

func TestListMorphism_DomCodAndType(t *testing.T) {
	th, object := monoidalTheory()
	homObject := modal.HomType(object)
	m := modal.NewModel(th)
	for _, name := range []string{"w", "x", "y", "z"} {
		m.AddOb(name, object)
	}
	m.AddMor("f", modal.GeneratorOb("x"), modal.GeneratorOb("y"), homObject)
	m.AddMor("g", modal.GeneratorOb("w"), modal.GeneratorOb("z"), homObject)

	fg := modal.PlainListMor([]modal.Mor{modal.GeneratorMor("f"), modal.GeneratorMor("g")})
	require.True(t, m.HasMor(fg))

	dom, ok := m.Dom(fg)
	require.True(t, ok)
	require.True(t, dom.Equal(modal.ListOb(modal.Plain, []modal.Ob{modal.GeneratorOb("x"), modal.GeneratorOb("w")})))

	cod, ok := m.Cod(fg)
	require.True(t, ok)
	require.True(t, cod.Equal(modal.ListOb(modal.Plain, []modal.Ob{modal.GeneratorOb("y"), modal.GeneratorOb("z")})))

	gotType, ok := m.InferMorType(fg)
	require.True(t, ok)
	require.True(t, gotType.Equal(homObject.Apply(modal.ListModality(modal.Plain))))
}

// TestSymmetricListMorphism_PermutesCodomain mirrors sym_monoidal_category:
// a permutation [1,0] on a two-element morphism list swaps the codomain
// order but leaves the domain order untouched.
func TestSymmetricListMorphism_PermutesCodomain(t *testing.T) {
	th, object := monoidalTheory()
	homObject := modal.HomType(object)
	m := modal.NewModel(th)
	for _, name := range []string{"a", "b", "c", "d"} {
		m.AddOb(name, object)
	}
	m.AddMor("f", modal.GeneratorOb("a"), modal.GeneratorOb("c"), homObject)
	m.AddMor("g", modal.GeneratorOb("b"), modal.GeneratorOb("d"), homObject)

	swap := modal.NewPermutation([]int{1, 0})
	fg := modal.SymmetricListMor(swap, []modal.Mor{modal.GeneratorMor("f"), modal.GeneratorMor("g")})
	require.True(t, m.HasMor(fg))

	dom, ok := m.Dom(fg)
	require.True(t, ok)
	require.True(t, dom.Equal(modal.ListOb(modal.Symmetric, []modal.Ob{modal.GeneratorOb("a"), modal.GeneratorOb("b")})))

	cod, ok := m.Cod(fg)
	require.True(t, ok)
	require.True(t, cod.Equal(modal.ListOb(modal.Symmetric, []modal.Ob{modal.GeneratorOb("d"), modal.GeneratorOb("c")})))
}

func TestSymmetricListMorphism_BadPermutationIsInvalid(t *testing.T) {
	th, object := monoidalTheory()
	homObject := modal.HomType(object)
	m := modal.NewModel(th)
	m.AddOb("a", object)
	m.AddOb("b", object)
	m.AddMor("f", modal.GeneratorOb("a"), modal.GeneratorOb("b"), homObject)
	m.AddMor("g", modal.GeneratorOb("a"), modal.GeneratorOb("b"), homObject)

	bad := modal.NewPermutation([]int{0, 0})
	fg := modal.SymmetricListMor(bad, []modal.Mor{modal.GeneratorMor("f"), modal.GeneratorMor("g")})
	require.False(t, m.HasMor(fg))
}

// TestMulticategory_ListTypedDomain mirrors multicategory: a binary
// morphism whose domain is a plain list of two objects and whose
// codomain is a single object, i.e. List(Object) -> Object.
func TestMulticategory_ListTypedDomain(t *testing.T) {
	th := modal.NewTheory()
	object := th.AddObType("Object")
	listObject := object.Apply(modal.ListModality(modal.Plain))
	binary := th.AddMorType("binary", listObject, object)

	m := modal.NewModel(th)
	m.AddOb("x", object)
	m.AddOb("y", object)
	m.AddOb("z", object)

	dom := modal.ListOb(modal.Plain, []modal.Ob{modal.GeneratorOb("x"), modal.GeneratorOb("y")})
	m.AddMor("op", dom, modal.GeneratorOb("z"), binary)

	require.True(t, m.HasMor(modal.GeneratorMor("op")))
	gotDom, ok := m.Dom(modal.GeneratorMor("op"))
	require.True(t, ok)
	require.True(t, gotDom.Equal(dom))
}
