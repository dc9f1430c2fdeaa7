package graph

import "github.com/katalvlaran/dblcat/zero"

// GraphMapping assigns images to vertices and edges of a domain graph. It
// has no opinion on whether those images are valid; that is GraphMorphism's
// job.
type GraphMapping[V comparable, E comparable] struct {
	obMap  zero.Column[V, V]
	morMap zero.Column[E, E]
}

// NewGraphMapping builds an empty GraphMapping.
func NewGraphMapping[V comparable, E comparable]() *GraphMapping[V, E] {
	return &GraphMapping[V, E]{
		obMap:  zero.NewHashColumn[V, V](),
		morMap: zero.NewHashColumn[E, E](),
	}
}

// MapVertex records v -> image.
func (m *GraphMapping[V, E]) MapVertex(v, image V) { m.obMap.Set(v, image) }

// MapEdge records e -> image.
func (m *GraphMapping[V, E]) MapEdge(e, image E) { m.morMap.Set(e, image) }

// Vertex looks up the image of v.
func (m *GraphMapping[V, E]) Vertex(v V) (V, bool) { return m.obMap.Apply(v) }

// Edge looks up the image of e.
func (m *GraphMapping[V, E]) Edge(e E) (E, bool) { return m.morMap.Apply(e) }

// GraphMorphism pairs a GraphMapping with its declared domain and codomain
// and validates that the mapping commutes with src/tgt.
type GraphMorphism[V comparable, E comparable] struct {
	Mapping *GraphMapping[V, E]
	Dom     *ColumnarGraph[V, E]
	Cod     *ColumnarGraph[V, E]
}

// Validate returns every InvalidMorphism violation: vertices/edges without a
// valid image, and edges whose image's src/tgt disagree with the image of
// the edge's own src/tgt.
func (m *GraphMorphism[V, E]) Validate() []InvalidMorphism[V, E] {
	var errs []InvalidMorphism[V, E]

	for _, v := range m.Dom.Vertices() {
		img, ok := m.Mapping.Vertex(v)
		if !ok || !m.Cod.HasVertex(img) {
			errs = append(errs, InvalidMorphism[V, E]{Kind: "vertex", Vertex: v})
		}
	}

	for _, e := range m.Dom.Edges() {
		eImg, ok := m.Mapping.Edge(e)
		if !ok || !m.Cod.HasEdge(eImg) {
			errs = append(errs, InvalidMorphism[V, E]{Kind: "edge", Edge: e})
			continue
		}

		domSrc, hasDomSrc := m.Dom.Src(e)
		domTgt, hasDomTgt := m.Dom.Tgt(e)
		codSrc, _ := m.Cod.Src(eImg)
		codTgt, _ := m.Cod.Tgt(eImg)

		if hasDomSrc {
			srcImg, ok := m.Mapping.Vertex(domSrc)
			if !ok || srcImg != codSrc {
				errs = append(errs, InvalidMorphism[V, E]{Kind: "src", Edge: e})
			}
		}
		if hasDomTgt {
			tgtImg, ok := m.Mapping.Vertex(domTgt)
			if !ok || tgtImg != codTgt {
				errs = append(errs, InvalidMorphism[V, E]{Kind: "tgt", Edge: e})
			}
		}
	}

	return errs
}

// IsValid reports whether Validate returns no errors.
func (m *GraphMorphism[V, E]) IsValid() bool { return len(m.Validate()) == 0 }
