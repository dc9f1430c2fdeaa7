package discrete

import (
	"strings"

	"github.com/katalvlaran/dblcat/dbl"
	"github.com/katalvlaran/dblcat/fpcat"
	"github.com/katalvlaran/dblcat/path"
)

const proSep = "∘" // U+2218 RING OPERATOR, used as ∘

func encodeWord(edges []string) string { return strings.Join(edges, proSep) }

func decodeWord(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, proSep)
}

type proInfo struct{ dom, cod string }

type cellInfo struct {
	dom      path.Path[string, string]
	cod      string
	src, tgt string
}

// proGraph adapts Theory's proInfo table to path's edgeGraph contract so
// cell domains (paths of proarrows) can be built with path.Path.
type proGraph struct{ t *Theory }

func (g proGraph) Src(p string) (string, bool) {
	info, ok := g.t.proInfo[p]
	return info.dom, ok
}

func (g proGraph) Tgt(p string) (string, bool) {
	info, ok := g.t.proInfo[p]
	return info.cod, ok
}

// Theory is the discrete double theory: an FP category whose
// objects/morphisms are the theory's ObType/MorType.
type Theory struct {
	Cat     *fpcat.FPCategory
	proInfo map[string]proInfo
	cells   map[string]cellInfo
	nextID  int
}

// NewTheory builds an empty discrete double theory.
func NewTheory() *Theory {
	return &Theory{
		Cat:     fpcat.NewFPCategory(),
		proInfo: make(map[string]proInfo),
		cells:   make(map[string]cellInfo),
	}
}

// AddObType registers an object type.
func (t *Theory) AddObType(name string) { t.Cat.AddObGenerator(name) }

// AddMorType registers a basic morphism type with the given dom/cod object
// types, and records it as a known (length-1) proarrow.
func (t *Theory) AddMorType(name, dom, cod string) {
	t.Cat.AddMorGenerator(name, dom, cod)
	t.proInfo[name] = proInfo{dom: dom, cod: cod}
}

// AddEquation asserts a path equation between two morphism-type composites.
func (t *Theory) AddEquation(lhs, rhs path.Path[string, string]) error {
	return t.Cat.Equate(path.PathEq[string, string]{Lhs: lhs, Rhs: rhs})
}

// IsEqualType decides whether two morphism-type composites are equal under
// the theory's equations.
func (t *Theory) IsEqualType(lhs, rhs path.Path[string, string]) bool {
	return t.Cat.IsEqual(lhs, rhs)
}

func (t *Theory) HasOb(o string) bool { return t.Cat.Generators.HasVertex(o) }
func (t *Theory) HasArr(a string) bool { return t.Cat.Generators.HasVertex(a) }

func (t *Theory) HasPro(p string) bool {
	_, ok := t.proInfo[p]
	return ok
}

func (t *Theory) HasCell(c string) bool {
	_, ok := t.cells[c]
	return ok
}

func (t *Theory) ArrDom(a string) (string, bool) { return a, t.Cat.Generators.HasVertex(a) }
func (t *Theory) ArrCod(a string) (string, bool) { return a, t.Cat.Generators.HasVertex(a) }

// ComposeArr composes a path of (trivial, identity) arrows: every arrow is
// an identity at its own object, so a well-formed path of them has a single
// underlying object and composes to the identity there.
func (t *Theory) ComposeArr(p path.Path[string, string]) string {
	if v, ok := p.Src(t.Cat.Generators); ok {
		return v
	}
	return ""
}

// ProSrc/ProTgt read the recorded dom/cod of a known proarrow.
func (t *Theory) ProSrc(p string) (string, bool) { return t.proInfo[p].dom, t.HasPro(p) }
func (t *Theory) ProTgt(p string) (string, bool) { return t.proInfo[p].cod, t.HasPro(p) }

// ComposePro flattens a path of morphism types into its FP-category
// composite, the discrete theory's compose_types, and registers the result
// as a known proarrow with the path's overall dom/cod. The discrete theory
// has all composites, so this always returns true for a well-formed path.
func (t *Theory) ComposePro(p path.Path[string, string]) (string, bool) {
	dom, ok1 := p.Src(t.Cat.Generators)
	cod, ok2 := p.Tgt(t.Cat.Generators)
	if !ok1 || !ok2 {
		return "", false
	}
	w := encodeWord(p.Edges())
	t.proInfo[w] = proInfo{dom: dom, cod: cod}
	return w, true
}

func (t *Theory) newCellID() string {
	t.nextID++
	return "cell#" + itoa(t.nextID)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var b []byte
	for n > 0 {
		b = append([]byte{byte('0' + n%10)}, b...)
		n /= 10
	}
	return string(b)
}

func (t *Theory) CellDom(c string) path.Path[string, string] { return t.cells[c].dom }
func (t *Theory) CellCod(c string) string                    { return t.cells[c].cod }
func (t *Theory) CellSrc(c string) string                    { return t.cells[c].src }
func (t *Theory) CellTgt(c string) string                    { return t.cells[c].tgt }

// ComposeCells registers a fresh cell for a DblTree: its domain is the path
// of the tree's boundary proarrows in left-to-right order, its codomain is
// ComposePro of that path, and its source and target are the first and last
// Frame arrows. The cells at the tree's internal nodes are not inspected,
// and the result is not checked against any previously declared cell.
func (t *Theory) ComposeCells(tree dbl.DblTree[string, string, string, string]) string {
	leafPros := leafProarrows(tree.Tree)
	var dom path.Path[string, string]
	if len(leafPros) == 1 {
		dom = path.Seq[string, string](leafPros[0])
	} else {
		dom = path.Seq[string, string](leafPros...)
	}
	cod, _ := t.ComposePro(dom)
	src := tree.Frame[0]
	tgt := tree.Frame[len(tree.Frame)-1]
	id := t.newCellID()
	t.cells[id] = cellInfo{dom: dom, cod: cod, src: src, tgt: tgt}
	return id
}

// leafProarrows collects the proarrow boundary leaves of an OpenTree whose
// node labels are Cell ids, in left-to-right order.
func leafProarrows(tree path.OpenTree[string, string]) []string {
	if tree.IsIdent() {
		v, _ := tree.IdentValue()
		return []string{v}
	}
	if tree.IsLeaf() {
		return nil
	}
	var out []string
	for _, c := range tree.Children() {
		out = append(out, leafProarrows(c)...)
	}
	return out
}

// CompositeExt builds the cell exhibiting path p as an extension of its own
// composite: the top boundary is p itself, the bottom is p's composite
// proarrow, and both sides are the identity arrows at p's own endpoints. In
// a discrete theory every cell arises this way, since there are no
// nontrivial operations to cross.
func (t *Theory) CompositeExt(p path.Path[string, string]) string {
	cod, ok := t.ComposePro(p)
	if !ok {
		panic("discrete: composite of path is undefined")
	}
	src, _ := p.Src(proGraph{t})
	tgt, _ := p.Tgt(proGraph{t})
	id := t.newCellID()
	t.cells[id] = cellInfo{dom: p, cod: cod, src: src, tgt: tgt}
	return id
}

// ThroughComposite rewrites cell c's domain path by collapsing the
// sub-range [lo, hi) into its own composite proarrow, leaving c's
// codomain and sides unchanged.
func (t *Theory) ThroughComposite(c string, lo, hi int) string {
	info, ok := t.cells[c]
	if !ok {
		panic("discrete: unknown cell " + c)
	}
	edges := info.dom.Edges()
	if lo < 0 || hi > len(edges) || lo >= hi {
		panic("discrete: invalid sub-range for through_composite")
	}
	subCod, ok := t.ComposePro(path.Seq[string, string](edges[lo:hi]...))
	if !ok {
		panic("discrete: composite of sub-range is undefined")
	}
	newEdges := make([]string, 0, len(edges)-(hi-lo)+1)
	newEdges = append(newEdges, edges[:lo]...)
	newEdges = append(newEdges, subCod)
	newEdges = append(newEdges, edges[hi:]...)
	id := t.newCellID()
	t.cells[id] = cellInfo{dom: path.Seq[string, string](newEdges...), cod: info.cod, src: info.src, tgt: info.tgt}
	return id
}

var _ dbl.DblTheory[string, string, string, string] = (*Theory)(nil)
var _ dbl.TheoryWithComposites[string, string, string, string] = (*Theory)(nil)
