package dbl

import "github.com/katalvlaran/dblcat/path"

// DblTree is an open tree used as the syntax for composing
// cells: internal nodes are cells, boundary leaves are proarrows, and the
// leaves additionally carry arrows along their spine (Frame) to express how
// the left/right sides of each leaf's square line up with its neighbors'.
// Frame always has Tree.Arity()+1 entries: Frame[i] is the arrow to the
// left of the i-th boundary leaf, Frame[len(Frame)-1] the arrow to its
// right.
type DblTree[Ob comparable, Arr comparable, Pro comparable, Cell comparable] struct {
	Tree  path.OpenTree[Pro, Cell]
	Frame []Arr
}

// IdentTree builds the trivial DblTree over a single proarrow p, framed by
// the arrows lo (left) and hi (right). ComposeCells on an ident tree is
// expected to return the theory's identity cell on p.
func IdentTree[Ob comparable, Arr comparable, Pro comparable, Cell comparable](p Pro, lo, hi Arr) DblTree[Ob, Arr, Pro, Cell] {
	return DblTree[Ob, Arr, Pro, Cell]{
		Tree:  path.Ident[Pro, Cell](p),
		Frame: []Arr{lo, hi},
	}
}

// GraftCells attaches subtrees as the children of a new cell-labeled root.
// The caller supplies the full frame for the resulting tree (length
// arity+1); sub-frames are not independently checked for agreement here —
// that is ComposeCells' job, since agreement is a VDC-axiom concern, not a
// tree-shape concern.
func GraftCells[Ob comparable, Arr comparable, Pro comparable, Cell comparable](cell Cell, frame []Arr, subtrees ...DblTree[Ob, Arr, Pro, Cell]) DblTree[Ob, Arr, Pro, Cell] {
	kids := make([]path.OpenTree[Pro, Cell], len(subtrees))
	for i, s := range subtrees {
		kids[i] = s.Tree
	}
	return DblTree[Ob, Arr, Pro, Cell]{
		Tree:  path.Graft[Pro, Cell](cell, kids...),
		Frame: frame,
	}
}

// Arity is the number of proarrow boundary leaves.
func (t DblTree[Ob, Arr, Pro, Cell]) Arity() int { return t.Tree.Arity() }

// IsIdent reports whether t is the trivial identity tree.
func (t DblTree[Ob, Arr, Pro, Cell]) IsIdent() bool { return t.Tree.IsIdent() }
