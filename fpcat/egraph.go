package fpcat

import "strings"

// Word is a flattened composite morphism: a sequence of generator edge ids
// in composition (left-to-right, domain-to-codomain) order. The empty word
// is an identity morphism.
type Word []string

const wordSep = "\x1f"

func wordKey(w Word) string { return strings.Join(w, wordSep) }

// rule is one oriented rewrite direction of a user equation; EGraph always
// installs both directions since category equations are symmetric.
type rule struct {
	lhs, rhs Word
}

// EGraph is the congruence-closure engine behind FPCategory.IsEqual: a
// union-find over every word discovered so far, saturated by repeatedly
// rewriting known words at every rule-matching position and unioning the
// result with its source (congruence: substituting an equal subterm
// preserves overall equality). This is the word-problem specialization of
// the usual e-graph saturation loop.
type EGraph struct {
	parent map[string]string
	words  map[string]Word
	rules  []rule

	// MaxRounds bounds saturation; deciding equality is semi-decidable in
	// general, so termination is governed by this schedule rather than
	// a proof of confluence.
	MaxRounds int
}

// NewEGraph builds an empty EGraph with a default saturation budget.
func NewEGraph() *EGraph {
	return &EGraph{
		parent:    make(map[string]string),
		words:     make(map[string]Word),
		MaxRounds: 16,
	}
}

func (g *EGraph) register(w Word) string {
	k := wordKey(w)
	if _, ok := g.parent[k]; !ok {
		g.parent[k] = k
		cp := make(Word, len(w))
		copy(cp, w)
		g.words[k] = cp
	}
	return k
}

func (g *EGraph) find(k string) string {
	parent, ok := g.parent[k]
	if !ok {
		g.parent[k] = k
		return k
	}
	if parent != k {
		root := g.find(parent)
		g.parent[k] = root
		return root
	}
	return k
}

func (g *EGraph) union(a, b Word) {
	ka, kb := g.register(a), g.register(b)
	ra, rb := g.find(ka), g.find(kb)
	if ra != rb {
		g.parent[ra] = rb
	}
}

// Equate asserts lhs == rhs as a category equation: it unions the two words
// immediately and installs a bidirectional rewrite rule so the equivalence
// propagates to any larger word that contains lhs or rhs as a subword.
func (g *EGraph) Equate(lhs, rhs Word) {
	g.union(lhs, rhs)
	g.rules = append(g.rules, rule{lhs: lhs, rhs: rhs})
}

// occurrences returns every start index where pattern occurs as a
// contiguous subsequence of w.
func occurrences(w, pattern Word) []int {
	if len(pattern) == 0 || len(pattern) > len(w) {
		return nil
	}
	var out []int
	for i := 0; i+len(pattern) <= len(w); i++ {
		match := true
		for j := range pattern {
			if w[i+j] != pattern[j] {
				match = false
				break
			}
		}
		if match {
			out = append(out, i)
		}
	}
	return out
}

func rewriteAt(w Word, i int, patternLen int, replacement Word) Word {
	out := make(Word, 0, len(w)-patternLen+len(replacement))
	out = append(out, w[:i]...)
	out = append(out, replacement...)
	out = append(out, w[i+patternLen:]...)
	return out
}

// saturate runs rewrite rounds to a fixpoint or MaxRounds, whichever comes
// first, discovering and unioning every word reachable from the current
// frontier by a single rule application.
func (g *EGraph) saturate() {
	for round := 0; round < g.MaxRounds; round++ {
		changed := false
		// Snapshot current words; new discoveries this round are applied to
		// next round rather than mutating the map mid-iteration.
		frontier := make([]Word, 0, len(g.words))
		for _, w := range g.words {
			frontier = append(frontier, w)
		}
		for _, w := range frontier {
			for _, r := range g.rules {
				for _, dir := range [2]rule{{r.lhs, r.rhs}, {r.rhs, r.lhs}} {
					for _, i := range occurrences(w, dir.lhs) {
						w2 := rewriteAt(w, i, len(dir.lhs), dir.rhs)
						k2 := wordKey(w2)
						if _, known := g.parent[k2]; known && g.find(wordKey(w)) == g.find(k2) {
							continue
						}
						g.union(w, w2)
						changed = true
					}
				}
			}
		}
		if !changed {
			return
		}
	}
}

// IsEqual decides whether lhs and rhs are related by the congruence closure
// of every Equate call so far, running saturation on demand. Reflexive,
// symmetric, and transitive by construction (union-find over an undirected
// rewrite graph), and contains every asserted equation (each Equate unions
// its pair directly). Complexity: bounded by MaxRounds * |known words| *
// |rules| per call; callers needing repeated queries against a stable rule
// set should cache an EGraph rather than rebuild it.
func (g *EGraph) IsEqual(lhs, rhs Word) bool {
	ka, kb := g.register(lhs), g.register(rhs)
	g.saturate()
	return g.find(ka) == g.find(kb)
}
