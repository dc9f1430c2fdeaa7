package dbl

import "github.com/katalvlaran/dblcat/path"

// DblTheory is the virtual double category contract. Ob, Arr,
// Pro, Cell are the carrier types of objects, (vertical) arrows,
// proarrows, and cells. dbl/discrete and dbl/tabulator implement this
// interface with their own concrete ObType/MorType choices; dbl/modal's
// Theory does not implement it.
type DblTheory[Ob comparable, Arr comparable, Pro comparable, Cell comparable] interface {
	HasOb(o Ob) bool
	HasArr(a Arr) bool
	HasPro(p Pro) bool
	HasCell(c Cell) bool

	// ArrDom/ArrCod/ComposeArr: vertical arrow structure. ComposeArr must be
	// associative and unital over Path.
	ArrDom(a Arr) (Ob, bool)
	ArrCod(a Arr) (Ob, bool)
	ComposeArr(p path.Path[Ob, Arr]) Arr

	// ProSrc/ProTgt/ComposePro: horizontal proarrow structure. ComposePro
	// returns false when the theory does not have a composite for that
	// particular path (a "virtual" double category need not have all
	// composites); a VDC "with composites" always returns true.
	ProSrc(p Pro) (Ob, bool)
	ProTgt(p Pro) (Ob, bool)
	ComposePro(p path.Path[Ob, Pro]) (Pro, bool)

	// Cell accessors: a cell is a square with a path of proarrows on top,
	// a single proarrow on the bottom, and arrows on the left/right sides.
	CellDom(c Cell) path.Path[Ob, Pro]
	CellCod(c Cell) Pro
	CellSrc(c Cell) Arr
	CellTgt(c Cell) Arr

	// ComposeCells reduces a DblTree bottom-up into a single cell,
	// consistent with the double category's composition axioms.
	ComposeCells(tree DblTree[Ob, Arr, Pro, Cell]) Cell
}

// TheoryWithComposites extends DblTheory for the case where every
// well-formed path of proarrows has a composite: CompositeExt supplies the
// cell witnessing a path as an extension of its own composite, and
// ThroughComposite rewrites a sub-range of a cell's domain path by its
// composite.
type TheoryWithComposites[Ob comparable, Arr comparable, Pro comparable, Cell comparable] interface {
	DblTheory[Ob, Arr, Pro, Cell]

	CompositeExt(p path.Path[Ob, Pro]) Cell
	ThroughComposite(c Cell, lo, hi int) Cell
}
