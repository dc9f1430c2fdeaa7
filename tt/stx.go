package tt

// TyS is a syntactic type, pre-elaboration and pre-evaluation.
type TyS interface{ isTyS() }

// TmS is a syntactic term, pre-elaboration and pre-evaluation.
type TmS interface{ isTmS() }

// ObTypeS is the type of objects.
type ObTypeS struct{}

// MorTypeS is the type of morphisms between two object terms.
type MorTypeS struct{ Src, Tgt TmS }

// SingS is the singleton type @sing(t): the type inhabited by exactly the
// values convertible to t.
type SingS struct{ Tm TmS }

// FieldS is one field of a record type: a name and a type that may refer
// to the values of the preceding fields.
type FieldS struct {
	Name string
	Ty   TyS
}

// RecordS is an ordered-field record type.
type RecordS struct{ Fields []FieldS }

// SpecializeS is a record specialization A & [path : Sty]: the subtype of
// Base whose named field's type is narrowed to Sty.
type SpecializeS struct {
	Base  TyS
	Field string
	Sty   TyS
}

// UnitTypeS is the one-element type.
type UnitTypeS struct{}

// TopTypeRefS references a top-level type declaration by name, so one
// named type can be used inside another's field list (as Graph is used
// inside Graph2's g1/g2 fields).
type TopTypeRefS struct{ Name string }

func (ObTypeS) isTyS()     {}
func (MorTypeS) isTyS()    {}
func (SingS) isTyS()       {}
func (RecordS) isTyS()     {}
func (SpecializeS) isTyS() {}
func (UnitTypeS) isTyS()   {}
func (TopTypeRefS) isTyS() {}

// VarS references a bound variable by de Bruijn index (distance from the
// innermost binder).
type VarS struct{ Idx int }

// TopRefS references a top-level declaration by name.
type TopRefS struct{ Name string }

// ProjS projects a named field out of a record term.
type ProjS struct {
	Tm    TmS
	Field string
}

// IdMorS is the identity morphism @id(x) on an object term.
type IdMorS struct{ Ob TmS }

// OpAppS applies a named model operation to an object term.
type OpAppS struct {
	Op string
	Ob TmS
}

// ComposeS is the composition f*g of two morphism terms.
type ComposeS struct{ Lhs, Rhs TmS }

// RecordConsS builds a record value field-by-field. Fields names its
// entries so projection never needs a side-channel type to resolve which
// positional slot a name denotes.
type RecordConsS struct {
	Fields []string
	Elems  []TmS
}

// ListConsS builds a plain list term.
type ListConsS struct{ Elems []TmS }

// TopAppS applies a top-level definition to arguments.
type TopAppS struct {
	Name string
	Args []TmS
}

// UnitS is the unit term tt.
type UnitS struct{}

func (VarS) isTmS()         {}
func (TopRefS) isTmS()      {}
func (ProjS) isTmS()        {}
func (IdMorS) isTmS()       {}
func (OpAppS) isTmS()       {}
func (ComposeS) isTmS()     {}
func (RecordConsS) isTmS()  {}
func (ListConsS) isTmS()    {}
func (TopAppS) isTmS()      {}
func (UnitS) isTmS()        {}
