package graph

import "fmt"

// InvalidGraph classifies why a ColumnarGraph fails to be well-formed: every
// edge's src/tgt column entries must be defined and land in the vertex set.
type InvalidGraph[E comparable] struct {
	Edge E
	// Field is "src" or "tgt".
	Field string
}

func (e InvalidGraph[E]) Error() string {
	return fmt.Sprintf("graph: edge %v has invalid %s", e.Edge, e.Field)
}

// InvalidMorphism classifies the four ways a GraphMapping fails to be a
// GraphMorphism.
type InvalidMorphism[V comparable, E comparable] struct {
	// Kind is one of "vertex", "edge", "src", "tgt".
	Kind   string
	Vertex V
	Edge   E
}

func (e InvalidMorphism[V, E]) Error() string {
	switch e.Kind {
	case "vertex":
		return fmt.Sprintf("graph: vertex %v has no valid image", e.Vertex)
	case "edge":
		return fmt.Sprintf("graph: edge %v has no valid image", e.Edge)
	case "src":
		return fmt.Sprintf("graph: edge %v image disagrees with source vertex image", e.Edge)
	case "tgt":
		return fmt.Sprintf("graph: edge %v image disagrees with target vertex image", e.Edge)
	default:
		return "graph: invalid morphism"
	}
}
