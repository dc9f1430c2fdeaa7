package discrete

import (
	"sort"

	"github.com/katalvlaran/dblcat/path"
)

// FinderOptions configures the model morphism search.
type FinderOptions struct {
	// MaxPathLen bounds simple-path enumeration in the codomain. nil means
	// unbounded in principle, but since FindAll materializes every mapping
	// eagerly (rather than an unbounded lazy iterator) a nil value is
	// treated as DefaultMaxPathLen to guarantee termination; pass an
	// explicit value for any other bound.
	MaxPathLen *int

	InjectiveOb bool
	Faithful    bool

	// InitialOb/InitialMor pre-assign specific generators, pruning the
	// search instead of leaving them free.
	InitialOb  map[string]string
	InitialMor map[string]string
}

// DefaultMaxPathLen is used when MaxPathLen is nil, see FinderOptions.
const DefaultMaxPathLen = 8

// Monic reports whether the options require an injective-on-objects,
// faithful mapping: monic = injective_ob ∧ faithful.
func (o FinderOptions) Monic() bool { return o.InjectiveOb && o.Faithful }

func (o FinderOptions) maxPathLen() int {
	if o.MaxPathLen != nil {
		return *o.MaxPathLen
	}
	return DefaultMaxPathLen
}

// Mapping is a DiscreteDblModelMapping: object and morphism generator
// assignments from a domain model into a codomain model.
type Mapping struct {
	ObMap  map[string]string
	MorMap map[string]path.Path[string, string]
}

func newMapping() *Mapping {
	return &Mapping{ObMap: map[string]string{}, MorMap: map[string]path.Path[string, string]{}}
}

func (m *Mapping) clone() *Mapping {
	cp := newMapping()
	for k, v := range m.ObMap {
		cp.ObMap[k] = v
	}
	for k, v := range m.MorMap {
		cp.MorMap[k] = v
	}
	return cp
}

// simplePaths enumerates simple (no repeated edge) paths in g from src to
// tgt, up to maxLen edges, via bounded DFS. Deterministic order: edges are
// tried in the graph's own Edges() order at each step.
func simplePaths(g *Model, src, tgt string, maxLen int) []path.Path[string, string] {
	var out []path.Path[string, string]
	if src == tgt {
		out = append(out, path.Ident[string, string](src))
	}
	var visited = map[string]bool{}
	var seq []string

	var dfs func(cur string, depth int)
	dfs = func(cur string, depth int) {
		if depth >= maxLen {
			return
		}
		for _, e := range g.morGens.Edges() {
			if s, ok := g.morGens.Src(e); !ok || s != cur || visited[e] {
				continue
			}
			next, ok := g.morGens.Tgt(e)
			if !ok {
				continue
			}
			visited[e] = true
			seq = append(seq, e)
			if next == tgt {
				cp := make([]string, len(seq))
				copy(cp, seq)
				out = append(out, path.Seq[string, string](cp...))
			}
			dfs(next, depth+1)
			seq = seq[:len(seq)-1]
			visited[e] = false
		}
	}
	dfs(src, 0)
	return out
}

// variable is one element of the domain's generator graph to be assigned
// during backtracking: either an object generator or a morphism generator.
type variable struct {
	isOb bool
	name string
}

func degree(g *Model, ob string) int {
	return len(g.morGens.InEdges(ob)) + len(g.morGens.OutEdges(ob))
}

func orderedVariables(dom *Model) []variable {
	obs := dom.ObGens()
	sort.SliceStable(obs, func(i, j int) bool {
		return degree(dom, obs[i]) > degree(dom, obs[j])
	})
	vars := make([]variable, 0, len(obs)+len(dom.MorGens()))
	for _, o := range obs {
		vars = append(vars, variable{isOb: true, name: o})
	}
	for _, e := range dom.MorGens() {
		vars = append(vars, variable{isOb: false, name: e})
	}
	return vars
}

// FindAll exhaustively searches for homomorphisms dom -> cod. The domain is
// assumed free (no path equations beyond its bare generator graph); any
// equations on cod are honored via cod.Theory's equational closure when
// matching morphism types.
func FindAll(dom, cod *Model, opts FinderOptions) []*Mapping {
	vars := orderedVariables(dom)
	var results []*Mapping
	var obInv = map[string]string{} // cod object -> dom object, only under InjectiveOb

	var backtrack func(i int, cur *Mapping)
	backtrack = func(i int, cur *Mapping) {
		if i == len(vars) {
			if opts.Faithful && !isFreeSimpleFaithful(dom, cod, cur, opts) {
				return
			}
			results = append(results, cur.clone())
			return
		}
		v := vars[i]
		if v.isOb {
			if pre, ok := opts.InitialOb[v.name]; ok {
				if tryOb(dom, cod, cur, obInv, opts, v.name, pre) {
					backtrack(i+1, cur)
					undoOb(cur, obInv, opts, v.name, pre)
				}
				return
			}
			obType, _ := dom.ObType(v.name)
			for _, y := range cod.ObGens() {
				yType, _ := cod.ObType(y)
				if yType != obType {
					continue
				}
				if tryOb(dom, cod, cur, obInv, opts, v.name, y) {
					backtrack(i+1, cur)
					undoOb(cur, obInv, opts, v.name, y)
				}
			}
			return
		}

		// Edge variable.
		domSrc, _ := dom.morGens.Src(v.name)
		domTgt, _ := dom.morGens.Tgt(v.name)
		fSrc := cur.ObMap[domSrc]
		fTgt := cur.ObMap[domTgt]
		morType, _ := dom.MorType(v.name)

		domTypePath := path.Seq[string, string](morType)
		tryCandidate := func(p path.Path[string, string]) {
			if !cod.Theory.IsEqualType(domTypePath, cod.typeOfPath(p)) {
				return
			}
			cur.MorMap[v.name] = p
			backtrack(i+1, cur)
			delete(cur.MorMap, v.name)
		}

		if preName, ok := opts.InitialMor[v.name]; ok {
			tryCandidate(path.Seq[string, string](preName))
			return
		}
		for _, p := range simplePaths(cod, fSrc, fTgt, opts.maxPathLen()) {
			tryCandidate(p)
		}
	}

	backtrack(0, newMapping())
	return results
}

func tryOb(dom, cod *Model, cur *Mapping, obInv map[string]string, opts FinderOptions, x, y string) bool {
	if opts.InjectiveOb {
		if owner, used := obInv[y]; used && owner != x {
			return false
		}
		obInv[y] = x
	}
	cur.ObMap[x] = y
	return true
}

func undoOb(cur *Mapping, obInv map[string]string, opts FinderOptions, x, y string) {
	delete(cur.ObMap, x)
	if opts.InjectiveOb {
		delete(obInv, y)
	}
}

// isFreeSimpleFaithful checks faithfulness: for every pair of domain
// objects, the induced map on simple paths must be injective. Only simple
// domain paths of at most maxPathLen edges are compared, so two distinct
// domain paths that repeat an edge (or are longer) and have equal images
// are not detected.
func isFreeSimpleFaithful(dom, cod *Model, m *Mapping, opts FinderOptions) bool {
	obs := dom.ObGens()
	for _, x := range obs {
		for _, y := range obs {
			domPaths := simplePaths(dom, x, y, opts.maxPathLen())
			seen := map[string]bool{}
			for _, p := range domPaths {
				img := mapPathEdges(m, p)
				key := encodeWord(img)
				if seen[key] {
					return false
				}
				seen[key] = true
			}
		}
	}
	return true
}

// mapPathEdges composes a domain path's edge images (under m.MorMap,
// themselves codomain paths) into a single flattened codomain edge
// sequence.
func mapPathEdges(m *Mapping, p path.Path[string, string]) []string {
	var out []string
	for _, e := range p.Edges() {
		if img, ok := m.MorMap[e]; ok {
			out = append(out, img.Edges()...)
		}
	}
	return out
}

// FindOne returns the first homomorphism found, or nil if none exists.
func FindOne(dom, cod *Model, opts FinderOptions) *Mapping {
	all := FindAll(dom, cod, opts)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}
