// Package tt implements a small dependently-typed term language over double
// models: a category-with-families whose object-typed terms are normalized
// by evaluation (NbE) in the usual way, while morphism-typed terms
// (identities and composition) are carried opaquely.
// This follows a Grothendieck-construction design: no type ever depends
// on the value of a morphism term, so morphism terms never need their own
// normalizer or conversion check —
// they are stored as their elaborated syntax and two morphism terms of
// convertible type are simply considered equal without inspecting them
// further. Only object-typed terms and the types built from them
// (singletons, records, specializations) carry real NbE machinery.
package tt
