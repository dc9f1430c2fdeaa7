package tabulator

import (
	"errors"

	"github.com/katalvlaran/dblcat/graph"
	"github.com/katalvlaran/dblcat/path"
	"github.com/katalvlaran/dblcat/zero"
)

// ValidationError names which generator failed which check in a tabulator
// model.
type ValidationError struct {
	Kind string // "ob_type", "mor_type", "dom", "cod", "dom_type", "cod_type"
	Gen  string
}

func (e ValidationError) Error() string {
	return "tabulator: " + e.Kind + " violation at generator " + e.Gen
}

// ErrUnknownGenerator names a reference to a generator the model has never
// added. No function in this package returns it.
var ErrUnknownGenerator = errors.New("tabulator: unknown generator")

// Model is a discrete tabulator double model: typed object
// and morphism generators over a Theory, where the declared ob/mor types
// may themselves be tabulators or Hom types.
type Model struct {
	Theory *Theory

	obGens  *zero.SliceFinSet[string]
	morGens *graph.ColumnarGraph[string, string]

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

func (m *Model) AddOb(gen, obType string) {
	m.obGens.Insert(gen)
	m.morGens.AddVertex(gen)
	m.obTypes.Set(gen, obType)
}

func (m *Model) MakeMor(gen, morType string) { m.morTypes.Set(gen, morType) }
func (m *Model) SetDom(gen, dom string)      { m.morGens.SetSrc(gen, dom) }
func (m *Model) SetCod(gen, cod string)      { m.morGens.SetTgt(gen, cod) }

func (m *Model) AddMor(gen, dom, cod, morType string) {
	m.morTypes.Set(gen, morType)
	m.morGens.AddEdge(gen, dom, cod)
}

func (m *Model) HasOb(gen string) bool  { return m.obGens.Contains(gen) }
func (m *Model) HasMor(gen string) bool { return m.morGens.HasEdge(gen) }

func (m *Model) ObType(ob string) (string, bool)  { return m.obTypes.Apply(ob) }
func (m *Model) MorType(mor string) (string, bool) { return m.morTypes.Apply(mor) }

func (m *Model) Dom(p path.Path[string, string]) (string, bool) { return p.Src(m.morGens) }
func (m *Model) Cod(p path.Path[string, string]) (string, bool) { return p.Tgt(m.morGens) }

func (m *Model) ObGens() []string                                 { return m.obGens.Iter() }
func (m *Model) MorGens() []string                                { return m.morGens.Edges() }
func (m *Model) Generators() *graph.ColumnarGraph[string, string] { return m.morGens }

// Validate checks that declared types are known to
// the theory, and that src/tgt object types agree with the morphism type's
// declared src/tgt.
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

		wantDom, _ := m.Theory.ProSrc(morType)
		wantCod, _ := m.Theory.ProTgt(morType)

		dom, hasDom := m.morGens.Src(mor)
		if !hasDom || !m.obGens.Contains(dom) {
			errs = append(errs, ValidationError{Kind: "dom", Gen: mor})
		} else if domType, ok := m.obTypes.Apply(dom); !ok || domType != wantDom {
			errs = append(errs, ValidationError{Kind: "dom_type", Gen: mor})
		}

		cod, hasCod := m.morGens.Tgt(mor)
		if !hasCod || !m.obGens.Contains(cod) {
			errs = append(errs, ValidationError{Kind: "cod", Gen: mor})
		} else if codType, ok := m.obTypes.Apply(cod); !ok || codType != wantCod {
			errs = append(errs, ValidationError{Kind: "cod_type", Gen: mor})
		}
	}

	return errs
}

func (m *Model) IsValid() bool { return len(m.Validate()) == 0 }

// InferMissing mirrors the discrete model's heuristic: for each
// morphism generator whose dom/cod references an unknown object, add it
// with the type read off the morphism type's declared src/tgt.
func (m *Model) InferMissing() {
	for _, mor := range m.morGens.Edges() {
		morType, ok := m.morTypes.Apply(mor)
		if !ok {
			continue
		}
		wantDom, _ := m.Theory.ProSrc(morType)
		wantCod, _ := m.Theory.ProTgt(morType)

		if dom, ok := m.morGens.Src(mor); ok && !m.obGens.Contains(dom) {
			m.AddOb(dom, wantDom)
		}
		if cod, ok := m.morGens.Tgt(mor); ok && !m.obGens.Contains(cod) {
			m.AddOb(cod, wantCod)
		}
	}
}
