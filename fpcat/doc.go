// Package fpcat implements a finitely presented category: a
// graph of generating objects/morphisms plus a set of path equations, with
// equality of composite morphisms decided by congruence closure.
//
// Composite morphisms are represented as flattened path words (sequences of
// generator edge ids), exactly as path.Path already flattens composition.
// That representation makes the typing axioms (dom(id x)=x, cod(id x)=x,
// dom(f∘g)=dom(f), cod(f∘g)=cod(g)) and the associativity/unit laws hold by
// construction — concatenating words is associative and the identity word is
// the empty slice — so the e-graph in this package only needs to saturate
// the user-supplied category equations, not rediscover axioms the
// representation already guarantees for free. See DESIGN.md for the
// grounding of this choice.
package fpcat
