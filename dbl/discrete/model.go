package discrete

import (
	"errors"

	"github.com/katalvlaran/dblcat/graph"
	"github.com/katalvlaran/dblcat/path"
	"github.com/katalvlaran/dblcat/zero"
)

// ValidationError names which generator failed which check.
type ValidationError struct {
	// Kind is one of "dom", "cod", "ob_type", "mor_type", "dom_type", "cod_type".
	Kind string
	Gen  string
}

func (e ValidationError) Error() string {
	return "discrete: " + e.Kind + " violation at generator " + e.Gen
}

// ErrUnknownGenerator names a reference to a generator the model has never
// added. No function in this package returns it: Model's lookups report an
// unknown generator through their ok result.
var ErrUnknownGenerator = errors.New("discrete: unknown generator")

// Model is a discrete double model: typed object and
// morphism generators over a Theory.
type Model struct {
	Theory *Theory

	obGens  *zero.SliceFinSet[string]
	morGens *graph.ColumnarGraph[string, string] // generator graph: src/tgt are object generators

	obTypes  zero.Column[string, string]
	morTypes zero.Column[string, string]
}

// NewModel builds an empty model over th.
func NewModel(th *Theory) *Model {
	return &Model{
		Theory:   th,
		obGens:   zero.NewSliceFinSet[string](),
		morGens:  graph.NewColumnarGraph[string, string](true),
		obTypes:  zero.NewHashColumn[string, string](),
		morTypes: zero.NewHashColumn[string, string](),
	}
}

// AddOb adds an object generator with its declared type.
func (m *Model) AddOb(gen, obType string) {
	m.obGens.Insert(gen)
	m.morGens.AddVertex(gen)
	m.obTypes.Set(gen, obType)
}

// MakeMor declares a morphism generator's type without yet fixing its
// dom/cod.
func (m *Model) MakeMor(gen, morType string) {
	m.morTypes.Set(gen, morType)
}

// SetDom/SetCod fix the endpoints of a declared morphism generator.
func (m *Model) SetDom(gen, dom string) { m.morGens.SetSrc(gen, dom) }
func (m *Model) SetCod(gen, cod string) { m.morGens.SetTgt(gen, cod) }

// AddMor is sugar for MakeMor + SetDom + SetCod + registering the edge.
func (m *Model) AddMor(gen, dom, cod, morType string) {
	m.morTypes.Set(gen, morType)
	m.morGens.AddEdge(gen, dom, cod)
}

// HasOb/HasMor decide membership syntactically.
func (m *Model) HasOb(gen string) bool  { return m.obGens.Contains(gen) }
func (m *Model) HasMor(gen string) bool { return m.morGens.HasEdge(gen) }

// ObType returns the stored type of an object generator.
func (m *Model) ObType(ob string) (string, bool) { return m.obTypes.Apply(ob) }

// MorType returns the stored type of a morphism generator.
func (m *Model) MorType(mor string) (string, bool) { return m.morTypes.Apply(mor) }

// Dom/Cod return a composite morphism's domain/codomain by flattening the
// underlying generator graph.
func (m *Model) Dom(p path.Path[string, string]) (string, bool) { return p.Src(m.morGens) }
func (m *Model) Cod(p path.Path[string, string]) (string, bool) { return p.Tgt(m.morGens) }

// Compose flattens a path-of-paths in the generator graph.
func (m *Model) Compose(p path.Path[string, string]) path.Path[string, string] { return p }

// ObGens/MorGens expose the generator carriers for the finder and for
// iteration.
func (m *Model) ObGens() []string  { return m.obGens.Iter() }
func (m *Model) MorGens() []string { return m.morGens.Edges() }
func (m *Model) Generators() *graph.ColumnarGraph[string, string] { return m.morGens }

// typeOfPath computes the morphism-type path (over m.Theory's type graph)
// that a path of this model's morphism generators denotes: the theory type
// of each edge in traversal order, or the identity at that object's type
// for an identity path. Used by the finder to check a candidate image's
// type against a domain generator's declared type.
func (m *Model) typeOfPath(p path.Path[string, string]) path.Path[string, string] {
	if p.IsIdent() {
		v, _ := p.Src(m.morGens)
		obType, _ := m.ObType(v)
		return path.Ident[string, string](obType)
	}
	edges := p.Edges()
	types := make([]string, len(edges))
	for i, e := range edges {
		t, _ := m.MorType(e)
		types[i] = t
	}
	return path.Seq[string, string](types...)
}

// Validate checks that every object/morphism type
// is declared in the theory, and that src/tgt types agree with the
// morphism type's dom/cod. Accumulates every violation.
func (m *Model) Validate() []ValidationError {
	var errs []ValidationError

	for _, ob := range m.obGens.Iter() {
		obType, ok := m.obTypes.Apply(ob)
		if !ok || !m.Theory.HasOb(obType) {
			errs = append(errs, ValidationError{Kind: "ob_type", Gen: ob})
		}
	}

	for _, mor := range m.morGens.Edges() {
		morType, ok := m.morTypes.Apply(mor)
		if !ok || !m.Theory.HasPro(morType) {
			errs = append(errs, ValidationError{Kind: "mor_type", Gen: mor})
			continue
		}

		dom, hasDom := m.morGens.Src(mor)
		if !hasDom || !m.obGens.Contains(dom) {
			errs = append(errs, ValidationError{Kind: "dom", Gen: mor})
		} else if domType, ok := m.obTypes.Apply(dom); !ok || domType != m.Theory.proInfo[morType].dom {
			errs = append(errs, ValidationError{Kind: "dom_type", Gen: mor})
		}

		cod, hasCod := m.morGens.Tgt(mor)
		if !hasCod || !m.obGens.Contains(cod) {
			errs = append(errs, ValidationError{Kind: "cod", Gen: mor})
		} else if codType, ok := m.obTypes.Apply(cod); !ok || codType != m.Theory.proInfo[morType].cod {
			errs = append(errs, ValidationError{Kind: "cod_type", Gen: mor})
		}
	}

	return errs
}

// IsValid reports whether Validate returns no errors.
func (m *Model) IsValid() bool { return len(m.Validate()) == 0 }

// InferMissing fills in gaps left by partial model construction: for each
// morphism generator whose dom or cod references an unknown object, it adds
// that object with its type inferred from the morphism type's declared
// dom/cod. Callers must re-validate afterward.
func (m *Model) InferMissing() {
	for _, mor := range m.morGens.Edges() {
		morType, ok := m.morTypes.Apply(mor)
		if !ok {
			continue
		}
		info := m.Theory.proInfo[morType]

		if dom, ok := m.morGens.Src(mor); ok && !m.obGens.Contains(dom) {
			m.AddOb(dom, info.dom)
		}
		if cod, ok := m.morGens.Tgt(mor); ok && !m.obGens.Contains(cod) {
			m.AddOb(cod, info.cod)
		}
	}
}

// Pushforward rewrites ob_types and mor_types through a theory morphism,
// given as plain maps on type names, and repoints the model at newTheory.
func (m *Model) Pushforward(newTheory *Theory, obTypeMap, morTypeMap map[string]string) {
	for _, ob := range m.obGens.Iter() {
		if t, ok := m.obTypes.Apply(ob); ok {
			if mapped, ok := obTypeMap[t]; ok {
				m.obTypes.Set(ob, mapped)
			}
		}
	}
	for _, mor := range m.morGens.Edges() {
		if t, ok := m.morTypes.Apply(mor); ok {
			if mapped, ok := morTypeMap[t]; ok {
				m.morTypes.Set(mor, mapped)
			}
		}
	}
	m.Theory = newTheory
}
