package modal

import "fmt"

// morGenInfo is a declared morphism generator: its endpoints (themselves
// Ob terms, since modal objects are structured rather than bare names)
// and its declared type.
type morGenInfo struct {
	Dom, Cod Ob
	Type     MorType
}

// Model is a modal double model: object generators with
// declared ObTypes, and morphism generators with declared endpoints and
// MorType, closed under the App/List term formers of Ob and Mor.
type Model struct {
	Theory *Theory

	obTypes map[string]ObType
	morGens map[string]morGenInfo
}

func NewModel(th *Theory) *Model {
	return &Model{
		Theory:  th,
		obTypes: make(map[string]ObType),
		morGens: make(map[string]morGenInfo),
	}
}

func (m *Model) AddOb(name string, t ObType) { m.obTypes[name] = t }

func (m *Model) AddMor(name string, dom, cod Ob, t MorType) {
	m.morGens[name] = morGenInfo{Dom: dom, Cod: cod, Type: t}
}

func (m *Model) ObGens() []string {
	names := make([]string, 0, len(m.obTypes))
	for name := range m.obTypes {
		names = append(names, name)
	}
	return names
}

func (m *Model) MorGens() []string {
	names := make([]string, 0, len(m.morGens))
	for name := range m.morGens {
		names = append(names, name)
	}
	return names
}

// InferObType computes the ObType of an object term, mirroring the source
// model's infer_ob_type: generators read their declared type, App reads
// the operation's codomain, and List requires every element with a known
// type to agree, then pushes the list's own modality onto that common
// type. A list with no elements of known type cannot be inferred without
// external context and reports ok=false, matching the upstream bandaid for
// empty/ambiguous lists.
func (m *Model) InferObType(ob Ob) (ObType, bool) {
	switch ob.Kind {
	case ObGenerator:
		t, ok := m.obTypes[ob.Gen]
		return t, ok
	case ObApp:
		if ob.Arg == nil {
			return ObType{}, false
		}
		_, opCod, ok := m.Theory.ObOpBounds(ob.Op)
		if !ok {
			return ObType{}, false
		}
		return opCod, true
	case ObList:
		var common *ObType
		for _, e := range ob.Elems {
			t, ok := m.InferObType(e)
			if !ok {
				continue
			}
			if common == nil {
				ct := t
				common = &ct
			} else if !common.Equal(t) {
				return ObType{}, false
			}
		}
		if common == nil {
			return ObType{}, false
		}
		return common.Apply(ListModality(ob.List)), true
	}
	return ObType{}, false
}

// HasOb reports whether ob is a well-formed term of this model: every
// generator it bottoms out in is declared, and every App's argument has
// the operation's declared source type.
func (m *Model) HasOb(ob Ob) bool {
	switch ob.Kind {
	case ObGenerator:
		_, ok := m.obTypes[ob.Gen]
		return ok
	case ObApp:
		if ob.Arg == nil || !m.HasOb(*ob.Arg) {
			return false
		}
		wantSrc, _, ok := m.Theory.ObOpBounds(ob.Op)
		if !ok {
			return false
		}
		t, ok := m.InferObType(*ob.Arg)
		return ok && t.Equal(wantSrc)
	case ObList:
		for _, e := range ob.Elems {
			if !m.HasOb(e) {
				return false
			}
		}
		return true
	}
	return false
}

// ObAct applies an object operation to a term: a generating operation
// checks the argument's type against the
// operation's declared source and wraps it in App; concat flattens list
// layers (or wraps a bare value in a singleton list at depth 0).
func (m *Model) ObAct(ob Ob, op ObOp) (Ob, error) {
	switch op.Kind {
	case OpGenerator:
		wantSrc, _, ok := m.Theory.ObOpBounds(op.Gen)
		if !ok {
			return Ob{}, fmt.Errorf("modal: unknown object operation %q", op.Gen)
		}
		t, ok := m.InferObType(ob)
		if !ok || !t.Equal(wantSrc) {
			return Ob{}, fmt.Errorf("modal: object operation %q not applicable to argument of inferred type %v", op.Gen, t)
		}
		return AppOb(ob, op.Gen), nil
	case OpConcat:
		elems, err := flattenList(ob, op.ListKind, op.Depth)
		if err != nil {
			return Ob{}, err
		}
		return ListOb(op.ListKind, elems), nil
	}
	return Ob{}, fmt.Errorf("modal: unknown object operation kind")
}

// HasMor reports whether mor is well-formed: generators must be declared,
// and a symmetric list's permutation must be a genuine bijection of its
// element count.
func (m *Model) HasMor(mor Mor) bool {
	switch mor.Kind {
	case MorGenerator:
		_, ok := m.morGens[mor.Gen]
		return ok
	case MorList:
		if mor.List == Symmetric && !mor.Perm.IsPermutation(len(mor.Elems)) {
			return false
		}
		for _, f := range mor.Elems {
			if !m.HasMor(f) {
				return false
			}
		}
		return true
	}
	return false
}

// Dom computes a morphism term's domain. A list morphism's domain is the
// list of its elements' domains in their given order — the permutation of
// a symmetric list affects only the codomain.
func (m *Model) Dom(mor Mor) (Ob, bool) {
	switch mor.Kind {
	case MorGenerator:
		g, ok := m.morGens[mor.Gen]
		return g.Dom, ok
	case MorList:
		doms := make([]Ob, 0, len(mor.Elems))
		for _, f := range mor.Elems {
			d, ok := m.Dom(f)
			if !ok {
				return Ob{}, false
			}
			doms = append(doms, d)
		}
		return ListOb(mor.List, doms), true
	}
	return Ob{}, false
}

// Cod computes a morphism term's codomain. A plain list's codomain lists
// each element's codomain in order; a symmetric list's codomain applies
// the permutation to that order.
func (m *Model) Cod(mor Mor) (Ob, bool) {
	switch mor.Kind {
	case MorGenerator:
		g, ok := m.morGens[mor.Gen]
		return g.Cod, ok
	case MorList:
		switch mor.List {
		case Plain:
			cods := make([]Ob, 0, len(mor.Elems))
			for _, f := range mor.Elems {
				c, ok := m.Cod(f)
				if !ok {
					return Ob{}, false
				}
				cods = append(cods, c)
			}
			return ListOb(Plain, cods), true
		case Symmetric:
			if !mor.Perm.IsPermutation(len(mor.Elems)) {
				return Ob{}, false
			}
			cods := make([]Ob, len(mor.Elems))
			for i := range mor.Elems {
				j := mor.Perm.At(i)
				c, ok := m.Cod(mor.Elems[j])
				if !ok {
					return Ob{}, false
				}
				cods[i] = c
			}
			return ListOb(Symmetric, cods), true
		}
	}
	return Ob{}, false
}

// InferMorType computes a morphism term's MorType, mirroring infer_mor_type:
// generators read their declared type, and a list requires every element
// with a known type to agree before pushing the list's modality onto it.
func (m *Model) InferMorType(mor Mor) (MorType, bool) {
	switch mor.Kind {
	case MorGenerator:
		g, ok := m.morGens[mor.Gen]
		return g.Type, ok
	case MorList:
		var common *MorType
		for _, f := range mor.Elems {
			t, ok := m.InferMorType(f)
			if !ok {
				continue
			}
			if common == nil {
				ct := t
				common = &ct
			} else if !common.Equal(t) {
				return MorType{}, false
			}
		}
		if common == nil {
			return MorType{}, false
		}
		return common.Apply(ListModality(mor.List)), true
	}
	return MorType{}, false
}
