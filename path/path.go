package path

import "errors"

// ErrConcatMismatch is returned by Concat when the target of the first path
// disagrees with the source of the second.
var ErrConcatMismatch = errors.New("path: tgt(p1) != src(p2)")

// edgeGraph is the minimal contract Path needs from a graph: endpoints of an
// edge. graph.Graph satisfies this structurally.
type edgeGraph[V comparable, E comparable] interface {
	Src(e E) (V, bool)
	Tgt(e E) (V, bool)
}

// Path is either an identity path Id(v), the empty path at v, or a
// non-empty sequence Seq(es) of one or more edges. The zero value is not a
// valid Path; use Ident or Seq to build one.
type Path[V comparable, E comparable] struct {
	ident    V
	isIdent  bool
	edges    []E // non-empty when !isIdent
}

// Ident builds the empty path at vertex v.
func Ident[V comparable, E comparable](v V) Path[V, E] {
	return Path[V, E]{ident: v, isIdent: true}
}

// Seq builds a non-empty path from one or more edges, in traversal order.
// Panics if edges is empty: a Seq path is non-empty by construction;
// callers wanting a possibly-empty path use Ident.
func Seq[V comparable, E comparable](edges ...E) Path[V, E] {
	if len(edges) == 0 {
		panic("path: Seq requires at least one edge")
	}
	cp := make([]E, len(edges))
	copy(cp, edges)
	return Path[V, E]{edges: cp}
}

// IsIdent reports whether p is the identity path at some vertex.
func (p Path[V, E]) IsIdent() bool { return p.isIdent }

// Edges returns the edge sequence; empty for an identity path.
func (p Path[V, E]) Edges() []E {
	out := make([]E, len(p.edges))
	copy(out, p.edges)
	return out
}

// Src returns the source vertex of p under g.
func (p Path[V, E]) Src(g edgeGraph[V, E]) (V, bool) {
	if p.isIdent {
		return p.ident, true
	}
	return g.Src(p.edges[0])
}

// Tgt returns the target vertex of p under g.
func (p Path[V, E]) Tgt(g edgeGraph[V, E]) (V, bool) {
	if p.isIdent {
		return p.ident, true
	}
	return g.Tgt(p.edges[len(p.edges)-1])
}

// Concat concatenates p1 then p2, requiring tgt(p1) == src(p2). Identity
// paths act as units: concatenating with an Id collapses to the other path.
func Concat[V comparable, E comparable](g edgeGraph[V, E], p1, p2 Path[V, E]) (Path[V, E], error) {
	t1, ok1 := p1.Tgt(g)
	s2, ok2 := p2.Src(g)
	if !ok1 || !ok2 || t1 != s2 {
		return Path[V, E]{}, ErrConcatMismatch
	}
	if p1.isIdent {
		return p2, nil
	}
	if p2.isIdent {
		return p1, nil
	}
	out := make([]E, 0, len(p1.edges)+len(p2.edges))
	out = append(out, p1.edges...)
	out = append(out, p2.edges...)
	return Path[V, E]{edges: out}, nil
}

// Flatten concatenates a path-of-paths into a single Path, removing one
// level of nesting. The outer path's own vertex/edge types must
// coincide with the inner paths' (a flattened Path[V,E] over Path[V,E]
// segments, expressed here as a plain slice since Go's type system cannot
// name "Path[V, Path[V,E]]" without a second edge-graph instance). Identity
// segments merge cleanly by contributing no edges.
func Flatten[V comparable, E comparable](g edgeGraph[V, E], segments []Path[V, E]) (Path[V, E], error) {
	if len(segments) == 0 {
		panic("path: Flatten requires at least one segment to anchor a vertex")
	}
	acc := segments[0]
	for _, seg := range segments[1:] {
		var err error
		acc, err = Concat(g, acc, seg)
		if err != nil {
			return Path[V, E]{}, err
		}
	}
	return acc, nil
}

// PathEq is an equation between two paths sharing src and tgt.
type PathEq[V comparable, E comparable] struct {
	Lhs, Rhs Path[V, E]
}

// Validate checks that Lhs and Rhs have equal src and equal tgt under g,
// the structural precondition for a path equation to make sense.
func (eq PathEq[V, E]) Validate(g edgeGraph[V, E]) error {
	ls, ok := eq.Lhs.Src(g)
	if !ok {
		return ErrConcatMismatch
	}
	rs, ok := eq.Rhs.Src(g)
	if !ok || ls != rs {
		return ErrConcatMismatch
	}
	lt, ok := eq.Lhs.Tgt(g)
	if !ok {
		return ErrConcatMismatch
	}
	rt, ok := eq.Rhs.Tgt(g)
	if !ok || lt != rt {
		return ErrConcatMismatch
	}
	return nil
}
