package analysis

import "github.com/katalvlaran/dblcat/dbl/modal"

// PetriNetMassActionAnalysis implements the object part of the functorial
// semantics for reaction networks (Petri nets) due to Baez & Pollard:
// places are object generators of PlaceObType, transitions are morphism
// generators of TransitionMorType whose domain/codomain are plain lists of
// places (the inputs/outputs of the reaction).
type PetriNetMassActionAnalysis struct {
	PlaceObType       modal.ObType
	TransitionMorType modal.MorType
}

// DefaultPetriNetMassActionAnalysis builds the analysis for the
// conventional "Object"-typed place/transition theory.
func DefaultPetriNetMassActionAnalysis(th *modal.Theory) PetriNetMassActionAnalysis {
	object := th.AddObType("Object")
	places := object.Apply(modal.ListModality(modal.Plain))
	transitionType := th.AddMorType("Transition", places, places)
	return PetriNetMassActionAnalysis{PlaceObType: object, TransitionMorType: transitionType}
}

func placesOf(m *modal.Model, t modal.ObType) []string {
	var out []string
	for _, gen := range m.ObGens() {
		if got, ok := m.InferObType(modal.GeneratorOb(gen)); ok && got.Equal(t) {
			out = append(out, gen)
		}
	}
	return out
}

func transitionsOf(m *modal.Model, t modal.MorType) []string {
	var out []string
	for _, gen := range m.MorGens() {
		if got, ok := m.InferMorType(modal.GeneratorMor(gen)); ok && got.Equal(t) {
			out = append(out, gen)
		}
	}
	return out
}

// collectGenerators flattens a (possibly list-valued) object term down to
// its leaf generator names, mirroring collect_product/unwrap_generator on
// the Rust side for the Plain-list inputs/outputs this analysis builds.
func collectGenerators(ob modal.Ob) []string {
	switch ob.Kind {
	case modal.ObGenerator:
		return []string{ob.Gen}
	case modal.ObList:
		var out []string
		for _, e := range ob.Elems {
			out = append(out, collectGenerators(e)...)
		}
		return out
	}
	return nil
}

// BuildSystem constructs the mass-action polynomial system: each
// transition t:inputs->outputs contributes a term rate(t)*prod(inputs),
// subtracted from every input place and added to every output place.
func (a PetriNetMassActionAnalysis) BuildSystem(m *modal.Model) *PolynomialSystem {
	sys := NewPolynomialSystem()
	for _, ob := range placesOf(m, a.PlaceObType) {
		sys.AddTerm(ob, ZeroPolynomial())
	}

	for _, tr := range transitionsOf(m, a.TransitionMorType) {
		mor := modal.GeneratorMor(tr)
		dom, domOK := m.Dom(mor)
		cod, codOK := m.Cod(mor)
		if !domOK || !codOK {
			continue
		}
		inputs := collectGenerators(dom)
		outputs := collectGenerators(cod)

		mono := NewMonomial()
		for _, in := range inputs {
			mono = mono.Mul(GeneratorMonomial(in))
		}
		rateTerm := RateTerm(tr, mono)

		for _, in := range inputs {
			sys.AddTerm(in, rateTerm.Neg())
		}
		for _, out := range outputs {
			sys.AddTerm(out, rateTerm)
		}
	}

	return sys.Normalize()
}
