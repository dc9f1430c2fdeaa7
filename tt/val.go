package tt

// TyV is a semantic type: mirrors TyS but holds
// closures over an environment for the dependent parts of record types.
type TyV interface{ isTyV() }

// TmV is a semantic term. NeuV is a
// stuck term: a variable head applied to a stack of eliminators.
type TmV interface{ isTmV() }

// Env is an evaluation environment: a stack of values for the bound
// variables currently in scope, most-recently-bound last. VarS{Idx} reads
// Env[len(Env)-1-Idx].
type Env []TmV

func (e Env) lookup(idx int) TmV { return e[len(e)-1-idx] }

func (e Env) extend(v TmV) Env {
	out := make(Env, len(e)+1)
	copy(out, e)
	out[len(e)] = v
	return out
}

type ObTypeV struct{}

type MorTypeV struct{ Src, Tgt TmV }

type SingV struct{ Tm TmV }

// RecordV is a record type's closure: the environment it closes over and
// its (still-syntactic) row of field types, expanded lazily field by
// field since a later field's type may read earlier fields' values.
type RecordV struct {
	Env    Env
	Fields []FieldS
}

type SpecializeV struct {
	Base  TyV
	Field string
	Sty   TyV
}

type UnitTypeV struct{}

func (ObTypeV) isTyV()     {}
func (MorTypeV) isTyV()    {}
func (SingV) isTyV()       {}
func (RecordV) isTyV()     {}
func (SpecializeV) isTyV() {}
func (UnitTypeV) isTyV()   {}

// Elim is one eliminator in a stuck term's spine.
type Elim interface{ isElim() }

// ProjElim projects a named field.
type ProjElim struct{ Field string }

// OpElim applies a named operation.
type OpElim struct{ Op string }

func (ProjElim) isElim() {}
func (OpElim) isElim()   {}

// NeuV is a stuck term: a free variable (by de Bruijn level, stable under
// further extension of the environment) applied to a spine of Elim steps.
type NeuV struct {
	Head  int
	Spine []Elim
}

func (n NeuV) extend(e Elim) NeuV {
	spine := make([]Elim, len(n.Spine)+1)
	copy(spine, n.Spine)
	spine[len(n.Spine)] = e
	return NeuV{Head: n.Head, Spine: spine}
}

// TopRefV is a reference to an evaluated top-level constant. It carries
// the referenced name (so quoting can fold it back to TopRefS) and its
// reduced value (so eliminators applied to it still compute).
type TopRefV struct {
	Name string
	Val  TmV
}

// OpaqueMorV is any morphism-typed term value: this core does not
// normalize morphism terms (see package doc), so it carries its
// elaborated syntax unchanged and is quoted back verbatim.
type OpaqueMorV struct{ Stx TmS }

// ObOpAppV is a stuck object-level operation application: this core does
// not know any reduction rules for model operations, so @op(x) is always
// left in this tagged normal form regardless of whether x itself is a
// further value or a stuck term.
type ObOpAppV struct {
	Op  string
	Arg TmV
}

type RecordConsV struct {
	Fields []string
	Elems  []TmV
}

type ListConsV struct{ Elems []TmV }

type UnitV struct{}

func (ObOpAppV) isTmV()    {}
func (NeuV) isTmV()        {}
func (TopRefV) isTmV()     {}
func (OpaqueMorV) isTmV()  {}
func (RecordConsV) isTmV() {}
func (ListConsV) isTmV()   {}
func (UnitV) isTmV()       {}
