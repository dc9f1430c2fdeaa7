package tt

import "fmt"

// Elaborator is bidirectional: Syn reads a type off a term that carries
// enough information to determine its own type, and Chk verifies a term
// against an already-known expected type,
// pushing that expectation down into record and list construction so
// their element terms need no annotation of their own.
type Elaborator struct {
	Theory   *Theory
	Top      TopEnv
	Reporter *Reporter
	Ctx      Ctx
}

func NewElaborator(theory *Theory, top TopEnv, reporter *Reporter) *Elaborator {
	return &Elaborator{Theory: theory, Top: top, Reporter: reporter}
}

// Intro binds a fresh local variable of type ty and returns the
// elaborator continuing under that binding. The receiver is left
// unmodified so callers can backtrack to try an alternative binding.
func (e *Elaborator) Intro(name string, ty TyV) *Elaborator {
	return &Elaborator{Theory: e.Theory, Top: e.Top, Reporter: e.Reporter, Ctx: e.Ctx.Extend(name, ty)}
}

func (e *Elaborator) env() Env {
	env := make(Env, e.Ctx.Len())
	for i := range env {
		env[i] = NeuV{Head: i}
	}
	return env
}

func (e *Elaborator) fail(loc Loc, format string, args ...any) (TyS, TyV, error) {
	msg := fmt.Sprintf(format, args...)
	e.Reporter.Error(loc, msg)
	return nil, nil, fmt.Errorf("%s", msg)
}

// Syn infers a syntactic and semantic type for tm, the source's syn.
func (e *Elaborator) Syn(loc Loc, tm TmS) (TyS, TyV, error) {
	switch t := tm.(type) {
	case VarS:
		if t.Idx < 0 || t.Idx >= e.Ctx.Len() {
			return e.fail(loc, "variable index %d out of scope", t.Idx)
		}
		b := e.Ctx.Bindings[e.Ctx.Len()-1-t.Idx]
		return QuoteTy(e.Ctx.Len(), b.Ty), b.Ty, nil

	case TopRefS:
		tyV, ok := e.Top.LookupType(t.Name)
		if !ok {
			return e.fail(loc, "unknown top-level name %q", t.Name)
		}
		return QuoteTy(e.Ctx.Len(), tyV), tyV, nil

	case ProjS:
		_, baseTy, err := e.Syn(loc, t.Tm)
		if err != nil {
			return nil, nil, err
		}
		// A specialization narrowing exactly this field overrides the
		// base record's own declared type for it: this is what gives
		// g.g1.V its sharper @sing(g.V) type instead of Graph.V's plain
		// Entity type.
		if spec, ok := baseTy.(SpecializeV); ok && spec.Field == t.Field {
			return QuoteTy(e.Ctx.Len(), spec.Sty), spec.Sty, nil
		}
		rv, ok := asRecord(baseTy)
		if !ok {
			return e.fail(loc, "cannot project field %q off a non-record type", t.Field)
		}
		idx := -1
		for i, f := range rv.Fields {
			if f.Name == t.Field {
				idx = i
				break
			}
		}
		if idx < 0 {
			return e.fail(loc, "no field %q", t.Field)
		}
		baseV := EvalTm(e.env(), t.Tm)
		priorVals := make([]TmV, idx)
		for i := 0; i < idx; i++ {
			priorVals[i] = projectField(baseV, rv.Fields[i].Name)
		}
		fty := fieldType(rv, idx, priorVals)
		return QuoteTy(e.Ctx.Len(), fty), fty, nil

	case IdMorS:
		if _, err := e.check(loc, ObTypeV{}, t.Ob); err != nil {
			return nil, nil, err
		}
		mt := MorTypeV{Src: EvalTm(e.env(), t.Ob), Tgt: EvalTm(e.env(), t.Ob)}
		return QuoteTy(e.Ctx.Len(), mt), mt, nil

	case OpAppS:
		sig, ok := e.Theory.Ops[t.Op]
		if !ok {
			return e.fail(loc, "unknown operation %q", t.Op)
		}
		domV := EvalTy(e.env(), sig.Dom)
		if _, err := e.check(loc, domV, t.Ob); err != nil {
			return nil, nil, err
		}
		argEnv := e.env().extend(EvalTm(e.env(), t.Ob))
		codV := EvalTy(argEnv, sig.Cod)
		return QuoteTy(e.Ctx.Len(), codV), codV, nil

	case ComposeS:
		_, lhsTy, err := e.Syn(loc, t.Lhs)
		if err != nil {
			return nil, nil, err
		}
		_, rhsTy, err := e.Syn(loc, t.Rhs)
		if err != nil {
			return nil, nil, err
		}
		lhsMor, ok := lhsTy.(MorTypeV)
		if !ok {
			return e.fail(loc, "left side of composition is not a morphism")
		}
		rhsMor, ok := rhsTy.(MorTypeV)
		if !ok {
			return e.fail(loc, "right side of composition is not a morphism")
		}
		if !ConvertibleTm(e.Ctx.Len(), ObTypeV{}, lhsMor.Tgt, rhsMor.Src) {
			return e.fail(loc, "composition's middle objects do not match")
		}
		mt := MorTypeV{Src: lhsMor.Src, Tgt: rhsMor.Tgt}
		return QuoteTy(e.Ctx.Len(), mt), mt, nil

	case TopAppS:
		tyV, ok := e.Top.LookupType(t.Name)
		if !ok {
			return e.fail(loc, "unknown top-level definition %q", t.Name)
		}
		return QuoteTy(e.Ctx.Len(), tyV), tyV, nil

	case UnitS:
		return UnitTypeS{}, UnitTypeV{}, nil
	}
	return e.fail(loc, "cannot infer a type for %T, an annotation is required", tm)
}

// check is the internal worker behind Chk, reporting through loc.
func (e *Elaborator) check(loc Loc, expected TyV, tm TmS) (TmS, error) {
	switch t := tm.(type) {
	case RecordConsS:
		rv, ok := asRecord(expected)
		if !ok {
			break
		}
		if len(t.Elems) != len(rv.Fields) {
			msg := fmt.Sprintf("record has %d fields, expected %d", len(t.Elems), len(rv.Fields))
			e.Reporter.Error(loc, msg)
			return nil, fmt.Errorf("%s", msg)
		}
		fields := make([]string, len(t.Elems))
		elems := make([]TmS, len(t.Elems))
		priorVals := make([]TmV, 0, len(t.Elems))
		for i, elemN := range t.Elems {
			fty := fieldType(rv, i, priorVals)
			checked, err := e.check(loc, fty, elemN)
			if err != nil {
				return nil, err
			}
			fields[i] = rv.Fields[i].Name
			elems[i] = checked
			priorVals = append(priorVals, EvalTm(e.env(), checked))
		}
		return RecordConsS{Fields: fields, Elems: elems}, nil

	case ListConsS:
		elems := make([]TmS, len(t.Elems))
		for i, elemN := range t.Elems {
			checked, err := e.check(loc, expected, elemN)
			if err != nil {
				return nil, err
			}
			elems[i] = checked
		}
		return ListConsS{Elems: elems}, nil
	}

	_, inferred, err := e.Syn(loc, tm)
	if err != nil {
		return nil, err
	}
	if Subtype(e.Ctx.Len(), inferred, expected, e.naturalTypeFunc(loc)) {
		return tm, nil
	}
	msg := "term does not have the expected type"
	e.Reporter.Error(loc, msg)
	return nil, fmt.Errorf("%s", msg)
}

// naturalTypeFunc builds a NaturalTypeFunc over this elaborator's current
// context: it reads a value back to syntax and re-infers its type via
// Syn, so it works uniformly for plain variables and for any chain of
// field projections or operation applications applied to them.
func (e *Elaborator) naturalTypeFunc(loc Loc) NaturalTypeFunc {
	return func(tm TmV) (TyV, bool) {
		stx := QuoteTm(e.Ctx.Len(), tm)
		_, ty, err := e.Syn(loc, stx)
		if err != nil {
			return nil, false
		}
		return ty, true
	}
}

// Chk checks tm against an expected type, the source's chk. It returns
// the (possibly field-annotated) checked syntax on success.
func (e *Elaborator) Chk(loc Loc, expected TyV, tm TmS) (TmS, error) {
	return e.check(loc, expected, tm)
}

// Ty elaborates a syntactic type expression, validating it is
// well-formed in the current context, and returns both its syntax and
// semantic value.
func (e *Elaborator) Ty(loc Loc, ty TyS) (TyS, TyV, error) {
	ty = ResolveTopTypeRefs(ty, e.Top)
	switch t := ty.(type) {
	case ObTypeS:
		return ty, ObTypeV{}, nil
	case MorTypeS:
		if _, err := e.check(loc, ObTypeV{}, t.Src); err != nil {
			return nil, nil, err
		}
		if _, err := e.check(loc, ObTypeV{}, t.Tgt); err != nil {
			return nil, nil, err
		}
		return ty, EvalTyTop(e.env(), ty, e.Top), nil
	case SingS:
		if _, _, err := e.Syn(loc, t.Tm); err != nil {
			return nil, nil, err
		}
		return ty, EvalTyTop(e.env(), ty, e.Top), nil
	case RecordS:
		sub := *e
		for _, f := range t.Fields {
			_, fv, err := sub.Ty(loc, f.Ty)
			if err != nil {
				return nil, nil, err
			}
			sub = *sub.Intro(f.Name, fv)
		}
		return ty, EvalTyTop(e.env(), ty, e.Top), nil
	case SpecializeS:
		_, baseV, err := e.Ty(loc, t.Base)
		if err != nil {
			return nil, nil, err
		}
		_, styV, err := e.Ty(loc, t.Sty)
		if err != nil {
			return nil, nil, err
		}
		spec, ok := TrySpecialize(e.Ctx.Len(), baseV, t.Field, styV, e.naturalTypeFunc(loc))
		if !ok {
			msg := fmt.Sprintf("cannot specialize field %q", t.Field)
			e.Reporter.Error(loc, msg)
			return nil, nil, fmt.Errorf("%s", msg)
		}
		return ty, spec, nil
	case UnitTypeS:
		return ty, UnitTypeV{}, nil
	}
	return nil, nil, fmt.Errorf("tt: ty: unhandled syntax %T", ty)
}
