package tt

import "reflect"

// ConvertibleTy decides whether two semantic types are the same type, by
// reading both back to syntax at scope depth n and comparing structurally.
// n must be the number of variables already bound in the ambient scope.
func ConvertibleTy(n int, a, b TyV) bool {
	return reflect.DeepEqual(QuoteTy(n, a), QuoteTy(n, b))
}

// ConvertibleTm decides whether two terms of type ty are the same term.
// Morphism-typed terms are never compared structurally: per the package's
// design, any two well-typed morphism terms of convertible type are taken
// as equal, since no later type can ever depend on which one was written.
// Everything else is eta-expanded at ty (so e.g. two differently-built but
// field-wise-equal records compare equal) and then compared structurally.
func ConvertibleTm(n int, ty TyV, a, b TmV) bool {
	if _, ok := ty.(MorTypeV); ok {
		return true
	}
	return reflect.DeepEqual(QuoteTmAt(n, a, ty), QuoteTmAt(n, b, ty))
}

// NaturalTypeFunc resolves the declared type of a term, when known, for
// use by the singleton subtyping rule below. The elaborator supplies one
// backed by its local Ctx; callers with no such context may pass nil,
// which makes the singleton rule inapplicable (ConvertibleTy still
// applies).
type NaturalTypeFunc func(TmV) (TyV, bool)

// SingletonSubtype checks the specialization rule "if t : A then @sing(t)
// <: A": termTy is the type the elaborator already inferred for the term
// underlying the singleton, and sup is the candidate supertype. The
// elaborator is responsible for supplying the correct termTy; this
// function only checks that it matches sup.
func SingletonSubtype(n int, termTy, sup TyV) bool {
	return ConvertibleTy(n, termTy, sup)
}

// Subtype decides sub <: sup using both specialization rules: a singleton
// @sing(t) is a subtype of any type convertible to t's natural type, and
// a specialization A & [.x : B] is a subtype of whatever its Base
// forgets down to.
func Subtype(n int, sub, sup TyV, natural NaturalTypeFunc) bool {
	if ConvertibleTy(n, sub, sup) {
		return true
	}
	switch s := sub.(type) {
	case SingV:
		if natural == nil {
			return false
		}
		if nt, ok := natural(s.Tm); ok {
			return ConvertibleTy(n, nt, sup)
		}
		return false
	case SpecializeV:
		return Subtype(n, s.Base, sup, natural)
	}
	return false
}

// RecordSubtype checks whether sub (a record or a specialization of one)
// is a subtype of sup by repeatedly forgetting specialization narrowings,
// per the rule "A & [.x : B] <: A".
func RecordSubtype(n int, sub, sup TyV) bool {
	return Subtype(n, sub, sup, nil)
}
