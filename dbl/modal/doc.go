// Package modal implements a modal double theory: a theory
// whose object/morphism types carry a stack of modalities (List, Symmetric
// list, Discrete, Codiscrete) applied in order, together with models whose
// objects are Generator | App | List forms and whose morphisms are
// Generator | List forms.
//
// Unlike dbl/discrete and dbl/tabulator, ObType and MorType here are plain
// Go structs holding genuine slices (the modality stack, and — for MorType
// — a possibly-recursive Hom(ObType) argument), and are therefore not
// Go-`comparable`. This package does not instantiate them against
// dbl.DblTheory's generic, comparable-constrained type parameters: nothing
// elsewhere in this engine consumes a modal theory through that generic
// interface, so there is no pressure to flatten these types into the
// opaque-string encoding used in dbl/discrete and dbl/tabulator. Equality
// is instead a recursive Equal method, the ordinary Go idiom for value
// types that embed slices.
package modal
