// Package discrete implements the discrete double theory, its models (the
// common "double model" behaviors specialized to the discrete case), and
// the model morphism finder.
//
// A discrete double theory has no structure beyond a finitely presented
// category (fpcat.FPCategory): object types and morphism types are exactly
// the FP category's objects/morphisms, arrows are trivial (only
// identities), and cells exist only to witness that a composite of
// morphism types equals some other morphism type under the FP category's
// equations. Ob, Arr, Pro, Cell are therefore all represented as plain
// strings here, with side tables recording the structure Path/Cell values
// would otherwise carry — Go's comparable constraint on dbl.DblTheory's
// type parameters rules out using path.Path (which holds a slice) directly
// as Pro or Cell.
package discrete
