package tabulator

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dblcat/dbl"
	"github.com/katalvlaran/dblcat/path"
)

const (
	obBasicTag  = "B:"
	obTabTag    = "T:"
	morBasicTag = "b:"
	morHomTag   = "h:"
	projSrcTag  = "src_proj:"
	projTgtTag  = "tgt_proj:"
	identTag    = "id@"
	arrSep      = "∘"
)

// ObBasic encodes a generating (Basic) object type by name.
func ObBasic(name string) string { return obBasicTag + name }

// ObTab encodes the tabulator Tab(m) of the morphism type m.
func ObTab(m string) string { return obTabTag + m }

// MorBasic encodes a generating (Basic) morphism type by name.
func MorBasic(name string) string { return morBasicTag + name }

// MorHom encodes the Hom(x) unit morphism type of object type x.
func MorHom(ob string) string { return morHomTag + ob }

func isTab(ob string) (string, bool) {
	if strings.HasPrefix(ob, obTabTag) {
		return strings.TrimPrefix(ob, obTabTag), true
	}
	return "", false
}

func isHom(mor string) (string, bool) {
	if strings.HasPrefix(mor, morHomTag) {
		return strings.TrimPrefix(mor, morHomTag), true
	}
	return "", false
}

// SrcProj encodes the projection arrow Tab(m) -> src(m).
func SrcProj(m string) string { return projSrcTag + m }

// TgtProj encodes the projection arrow Tab(m) -> tgt(m).
func TgtProj(m string) string { return projTgtTag + m }

func isSrcProj(arr string) (string, bool) {
	if strings.HasPrefix(arr, projSrcTag) {
		return strings.TrimPrefix(arr, projSrcTag), true
	}
	return "", false
}

func isTgtProj(arr string) (string, bool) {
	if strings.HasPrefix(arr, projTgtTag) {
		return strings.TrimPrefix(arr, projTgtTag), true
	}
	return "", false
}

// IdentArr encodes the identity arrow at object type ob.
func IdentArr(ob string) string { return identTag + ob }

// cellInfo carries the structure of a TabMorOp cell: a path of morphism
// types on top and a parallel list of per-leaf projections on the sides.
type cellInfo struct {
	dom         path.Path[string, string]
	cod         string
	src, tgt    string
	projections []string // one of SrcProj/TgtProj/Cone(m) per leaf, parallel to dom's edges
}

// projGraph adapts Theory to path's edgeGraph contract over (ObType, single
// projection arrow) so Arr values can be built and flattened with
// path.Path.
type projGraph struct{ t *Theory }

func (g projGraph) Src(arr string) (string, bool) {
	if m, ok := isSrcProj(arr); ok {
		return ObTab(m), true
	}
	if m, ok := isTgtProj(arr); ok {
		return ObTab(m), true
	}
	if strings.HasPrefix(arr, identTag) {
		ob := strings.TrimPrefix(arr, identTag)
		return ob, true
	}
	return "", false
}

func (g projGraph) Tgt(arr string) (string, bool) {
	if m, ok := isSrcProj(arr); ok {
		return g.t.proSrc(m)
	}
	if m, ok := isTgtProj(arr); ok {
		return g.t.proTgt(m)
	}
	if strings.HasPrefix(arr, identTag) {
		ob := strings.TrimPrefix(arr, identTag)
		return ob, true
	}
	return "", false
}

// Theory is the discrete tabulator double theory.
type Theory struct {
	obTypes    map[string]bool   // registered Basic ob type keys
	morTypes   map[string]bool   // registered Basic mor type keys
	morSrc     map[string]string // Basic mor type key -> ob type key
	morCod     map[string]string
	composeMap map[[2]string]string // (Basic,Basic) -> Basic composite, user-supplied

	arrows map[string]path.Path[string, string] // composite Arr key -> its projGraph path
	cells  map[string]cellInfo

	nextID int
}

// NewTheory builds an empty discrete tabulator theory.
func NewTheory() *Theory {
	return &Theory{
		obTypes:    make(map[string]bool),
		morTypes:   make(map[string]bool),
		morSrc:     make(map[string]string),
		morCod:     make(map[string]string),
		composeMap: make(map[[2]string]string),
		arrows:     make(map[string]path.Path[string, string]),
		cells:      make(map[string]cellInfo),
	}
}

// AddObType registers a generating object type, returning its encoded key.
func (t *Theory) AddObType(name string) string {
	k := ObBasic(name)
	t.obTypes[k] = true
	return k
}

// AddMorType registers a generating morphism type with the given src/tgt
// object types (themselves possibly Tab(...) keys), returning its encoded
// key.
func (t *Theory) AddMorType(name, src, cod string) string {
	k := MorBasic(name)
	t.morTypes[k] = true
	t.morSrc[k] = src
	t.morCod[k] = cod
	return k
}

// SetComposite records the user-supplied composite of two Basic morphism
// types in the theory's compose_map: binary composition of basics here is
// an explicit table rather than an e-graph, unlike the discrete theory.
func (t *Theory) SetComposite(m, n, mn string) { t.composeMap[[2]string{m, n}] = mn }

func (t *Theory) proSrc(m string) (string, bool) {
	if x, ok := isHom(m); ok {
		return x, true
	}
	v, ok := t.morSrc[m]
	return v, ok
}

func (t *Theory) proTgt(m string) (string, bool) {
	if x, ok := isHom(m); ok {
		return x, true
	}
	v, ok := t.morCod[m]
	return v, ok
}

// HasOb reports whether ob is a known object type: a registered Basic, or a
// Tabulator whose underlying morphism type is known.
func (t *Theory) HasOb(ob string) bool {
	if x, ok := isTab(ob); ok {
		return t.HasPro(x)
	}
	return t.obTypes[ob]
}

// HasPro reports whether m is a known morphism type: a registered Basic, or
// a Hom whose underlying object type is known.
func (t *Theory) HasPro(m string) bool {
	if x, ok := isHom(m); ok {
		return t.HasOb(x)
	}
	return t.morTypes[m]
}

// HasArr reports whether arr is a well-formed arrow: every atomic edge in
// its path decodes to a known projection, or it is an identity at a known
// object type.
func (t *Theory) HasArr(arr string) bool {
	p, ok := t.arrows[arr]
	if !ok {
		if strings.HasPrefix(arr, identTag) {
			return t.HasOb(strings.TrimPrefix(arr, identTag))
		}
		return false
	}
	_, srcOK := p.Src(projGraph{t})
	_, tgtOK := p.Tgt(projGraph{t})
	return srcOK && tgtOK
}

func (t *Theory) HasCell(c string) bool {
	_, ok := t.cells[c]
	return ok
}

// ArrDom/ArrCod read an arrow's endpoints via the projection graph.
func (t *Theory) ArrDom(arr string) (string, bool) { return t.arrowPath(arr).Src(projGraph{t}) }
func (t *Theory) ArrCod(arr string) (string, bool) { return t.arrowPath(arr).Tgt(projGraph{t}) }

func (t *Theory) arrowPath(arr string) path.Path[string, string] {
	if p, ok := t.arrows[arr]; ok {
		return p
	}
	if ob, ok := strings.CutPrefix(arr, identTag); ok {
		return path.Ident[string, string](ob)
	}
	// Atomic projection not yet registered as a composite: treat as a
	// length-1 path over itself.
	return path.Seq[string, string](arr)
}

// registerArrow flattens edges into a single Arr key, remembering its path.
func (t *Theory) registerArrow(edges []string) string {
	if len(edges) == 1 {
		return edges[0]
	}
	key := strings.Join(edges, arrSep)
	t.arrows[key] = path.Seq[string, string](edges...)
	return key
}

// ComposeArr flattens a path of arrows into one: vertical arrow composition
// is always path flattening.
func (t *Theory) ComposeArr(p path.Path[string, string]) string {
	if ob, ok := p.Src(projGraph{t}); ok && p.IsIdent() {
		return IdentArr(ob)
	}
	var edges []string
	for _, a := range p.Edges() {
		edges = append(edges, t.arrowPath(a).Edges()...)
	}
	return t.registerArrow(edges)
}

// ProSrc/ProTgt expose a morphism type's endpoints.
func (t *Theory) ProSrc(m string) (string, bool) { return t.proSrc(m) }
func (t *Theory) ProTgt(m string) (string, bool) { return t.proTgt(m) }

// composite2 composes two morphism types: a Hom(x)
// unit composed with anything collapses to the other side; two Basics
// consult the explicit compose_map.
func (t *Theory) composite2(m, n string) (string, bool) {
	if x, ok := isHom(m); ok {
		if nx, ok2 := t.proSrc(n); ok2 && nx == x {
			return n, true
		}
	}
	if y, ok := isHom(n); ok {
		if my, ok2 := t.proTgt(m); ok2 && my == y {
			return m, true
		}
	}
	mn, ok := t.composeMap[[2]string{m, n}]
	return mn, ok
}

// ComposePro reduces a path of morphism types via composite2/unit: a
// path's composite is path.reduce(unit, composite2).
func (t *Theory) ComposePro(p path.Path[string, string]) (string, bool) {
	if p.IsIdent() {
		ob, ok := p.Src(projGraph{t})
		if !ok {
			return "", false
		}
		return MorHom(ob), true
	}
	edges := p.Edges()
	acc := edges[0]
	for _, e := range edges[1:] {
		next, ok := t.composite2(acc, e)
		if !ok {
			return "", false
		}
		acc = next
	}
	return acc, true
}

func (t *Theory) newCellID() string {
	t.nextID++
	return fmt.Sprintf("tabcell#%d", t.nextID)
}

func (t *Theory) CellDom(c string) path.Path[string, string] { return t.cells[c].dom }
func (t *Theory) CellCod(c string) string                    { return t.cells[c].cod }
func (t *Theory) CellSrc(c string) string                     { return t.cells[c].src }
func (t *Theory) CellTgt(c string) string                     { return t.cells[c].tgt }

// UnaryProjection builds the cell witnessing a single projection out of a
// tabulator: its domain is the unit path at Tab(proj's morphism type), and
// it carries exactly one projection.
func (t *Theory) UnaryProjection(projKind, m string) string {
	id := t.newCellID()
	tab := ObTab(m)
	var src, tgt string
	switch projKind {
	case "cone":
		src, tgt = SrcProj(m), TgtProj(m)
	case "src":
		src, tgt = SrcProj(m), SrcProj(m)
	case "tgt":
		src, tgt = TgtProj(m), TgtProj(m)
	}
	t.cells[id] = cellInfo{
		dom:         path.Ident[string, string](tab),
		cod:         MorHom(tab),
		src:         src,
		tgt:         tgt,
		projections: []string{projKindKey(projKind, m)},
	}
	return id
}

func projKindKey(kind, m string) string {
	switch kind {
	case "cone":
		return "cone:" + m
	case "src":
		return SrcProj(m)
	case "tgt":
		return TgtProj(m)
	}
	return ""
}

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

// ComposeCells reduces a DblTree bottom-up: the top boundary
// flattens to a path of morphism types reduced via ComposePro; the sides
// zip each leaf's own (left, right) projection pair from the tree's frame,
// emitting Cone(m) when they agree on m in opposite direction, Src(m)/
// Tgt(m) when they agree in the same direction, and leaving a leaf's
// projection unset when its sides are not recognized tabulator
// projections (a plain, non-tabulator composite).
func (t *Theory) ComposeCells(tree dbl.DblTree[string, string, string, string]) string {
	leafPros := leafProarrows(tree.Tree)
	var dom path.Path[string, string]
	if len(leafPros) == 1 {
		dom = path.Seq[string, string](leafPros[0])
	} else {
		dom = path.Seq[string, string](leafPros...)
	}
	cod, ok := t.ComposePro(dom)
	if !ok {
		panic("tabulator: composite of cell domain morphism types is undefined")
	}

	arity := tree.Arity()
	projections := make([]string, 0, arity)
	for i := 0; i < arity; i++ {
		left, right := tree.Frame[i], tree.Frame[i+1]
		lm, lIsSrc := isSrcProj(left)
		lmT, lIsTgt := isTgtProj(left)
		rm, rIsSrc := isSrcProj(right)
		rmT, rIsTgt := isTgtProj(right)
		switch {
		case lIsSrc && rIsTgt && lm == rmT:
			projections = append(projections, "cone:"+lm)
		case lIsSrc && rIsSrc && lm == rm:
			projections = append(projections, SrcProj(lm))
		case lIsTgt && rIsTgt && lmT == rmT:
			projections = append(projections, TgtProj(lmT))
		case (lIsSrc || lIsTgt) && (rIsSrc || rIsTgt):
			panic("tabulator: projection cells should have compatible source/target boundaries")
		default:
			// Neither side is a tabulator projection: a plain identity
			// composite, no projection recorded for this leaf.
		}
	}

	id := t.newCellID()
	src := t.registerArrow(tree.Frame[:arity])
	tgt := t.registerArrow(tree.Frame[1:])
	t.cells[id] = cellInfo{dom: dom, cod: cod, src: src, tgt: tgt, projections: projections}
	return id
}

// CompositeExt builds the cell exhibiting a path of morphism types as an
// extension of its own composite: the top boundary is p, the bottom is p's
// composite morphism type, and the sides are the identity arrows at p's
// own endpoints. Unlike the cells produced by UnaryProjection or
// ComposeCells, an extension cell carries no projections of its own.
func (t *Theory) CompositeExt(p path.Path[string, string]) string {
	cod, ok := t.ComposePro(p)
	if !ok {
		panic("tabulator: composite of path is undefined")
	}
	var src, tgt string
	if p.IsIdent() {
		ob, _ := p.Src(projGraph{t})
		src, tgt = ob, ob
	} else {
		edges := p.Edges()
		src, _ = t.proSrc(edges[0])
		tgt, _ = t.proTgt(edges[len(edges)-1])
	}
	id := t.newCellID()
	t.cells[id] = cellInfo{dom: p, cod: cod, src: IdentArr(src), tgt: IdentArr(tgt)}
	return id
}

// ThroughComposite rewrites cell c's domain path by collapsing the
// sub-range [lo, hi) into its own composite morphism type, leaving c's
// codomain, sides, and projections unchanged.
func (t *Theory) ThroughComposite(c string, lo, hi int) string {
	info, ok := t.cells[c]
	if !ok {
		panic("tabulator: unknown cell " + c)
	}
	edges := info.dom.Edges()
	if lo < 0 || hi > len(edges) || lo >= hi {
		panic("tabulator: invalid sub-range for through_composite")
	}
	subCod, ok := t.ComposePro(path.Seq[string, string](edges[lo:hi]...))
	if !ok {
		panic("tabulator: composite of sub-range is undefined")
	}
	newEdges := make([]string, 0, len(edges)-(hi-lo)+1)
	newEdges = append(newEdges, edges[:lo]...)
	newEdges = append(newEdges, subCod)
	newEdges = append(newEdges, edges[hi:]...)
	id := t.newCellID()
	t.cells[id] = cellInfo{
		dom:         path.Seq[string, string](newEdges...),
		cod:         info.cod,
		src:         info.src,
		tgt:         info.tgt,
		projections: info.projections,
	}
	return id
}

var _ dbl.DblTheory[string, string, string, string] = (*Theory)(nil)
var _ dbl.TheoryWithComposites[string, string, string, string] = (*Theory)(nil)
