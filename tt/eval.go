package tt

import "fmt"

// TopEnv resolves top-level names to their already-evaluated values and
// declared types, for TopRefS/TopAppS.
type TopEnv interface {
	LookupVal(name string) (TmV, bool)
	LookupType(name string) (TyV, bool)
}

// EvalTy evaluates a syntactic type to a value.
func EvalTy(env Env, ty TyS) TyV {
	switch t := ty.(type) {
	case ObTypeS:
		return ObTypeV{}
	case MorTypeS:
		return MorTypeV{Src: EvalTm(env, t.Src), Tgt: EvalTm(env, t.Tgt)}
	case SingS:
		return SingV{Tm: EvalTm(env, t.Tm)}
	case RecordS:
		return RecordV{Env: env, Fields: t.Fields}
	case SpecializeS:
		return SpecializeV{Base: EvalTy(env, t.Base), Field: t.Field, Sty: EvalTy(env, t.Sty)}
	case UnitTypeS:
		return UnitTypeV{}
	case TopTypeRefS:
		panic("tt: eval_ty: TopTypeRefS requires EvalTyTop")
	}
	panic(fmt.Sprintf("tt: eval_ty: unhandled syntax %T", ty))
}

// EvalTyTop is EvalTy extended with access to a TopEnv, for TopTypeRefS
// and for the nested TmS appearing inside MorTypeS/SingS bounds.
func EvalTyTop(env Env, ty TyS, top TopEnv) TyV {
	switch t := ty.(type) {
	case TopTypeRefS:
		v, ok := top.LookupType(t.Name)
		if !ok {
			panic("tt: unknown top-level type " + t.Name)
		}
		return v
	case MorTypeS:
		return MorTypeV{Src: EvalTmTop(env, t.Src, top), Tgt: EvalTmTop(env, t.Tgt, top)}
	case SingS:
		return SingV{Tm: EvalTmTop(env, t.Tm, top)}
	case RecordS:
		return RecordV{Env: env, Fields: t.Fields}
	case SpecializeS:
		return SpecializeV{Base: EvalTyTop(env, t.Base, top), Field: t.Field, Sty: EvalTyTop(env, t.Sty, top)}
	default:
		return EvalTy(env, ty)
	}
}

// EvalTm evaluates a syntactic term to a value. Morphism
// term formers (identity, composition) are never reduced further: they
// are recorded as OpaqueMorV carrying their own syntax, per the package's
// no-normalizer-for-morphisms design.
func EvalTm(env Env, tm TmS) TmV {
	switch t := tm.(type) {
	case VarS:
		return env.lookup(t.Idx)
	case TopRefS:
		panic("tt: eval_tm: TopRefS requires EvalTmTop")
	case ProjS:
		return projectField(EvalTm(env, t.Tm), t.Field)
	case IdMorS:
		return OpaqueMorV{Stx: t}
	case OpAppS:
		return ObOpAppV{Op: t.Op, Arg: EvalTm(env, t.Ob)}
	case ComposeS:
		return OpaqueMorV{Stx: t}
	case RecordConsS:
		elems := make([]TmV, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = EvalTm(env, e)
		}
		return RecordConsV{Fields: append([]string{}, t.Fields...), Elems: elems}
	case ListConsS:
		elems := make([]TmV, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = EvalTm(env, e)
		}
		return ListConsV{Elems: elems}
	case TopAppS:
		panic("tt: eval_tm: TopAppS requires EvalTmTop")
	case UnitS:
		return UnitV{}
	}
	panic(fmt.Sprintf("tt: eval_tm: unhandled syntax %T", tm))
}

// EvalTmTop is EvalTm extended with access to a TopEnv, for TopRefS and
// TopAppS (which this core treats as already-elaborated constants: a
// top-level definition's body is evaluated once at declaration time, and
// TopAppS's arguments are discarded into the definition's own closed
// value — consistent with a Toplevel of constant/closed definitions).
func EvalTmTop(env Env, tm TmS, top TopEnv) TmV {
	switch t := tm.(type) {
	case TopRefS:
		v, ok := top.LookupVal(t.Name)
		if !ok {
			panic("tt: unknown top-level reference " + t.Name)
		}
		return TopRefV{Name: t.Name, Val: v}
	case TopAppS:
		v, ok := top.LookupVal(t.Name)
		if !ok {
			panic("tt: unknown top-level definition " + t.Name)
		}
		return TopRefV{Name: t.Name, Val: v}
	case ProjS:
		return projectField(EvalTmTop(env, t.Tm, top), t.Field)
	case OpAppS:
		return ObOpAppV{Op: t.Op, Arg: EvalTmTop(env, t.Ob, top)}
	case RecordConsS:
		elems := make([]TmV, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = EvalTmTop(env, e, top)
		}
		return RecordConsV{Fields: append([]string{}, t.Fields...), Elems: elems}
	case ListConsS:
		elems := make([]TmV, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = EvalTmTop(env, e, top)
		}
		return ListConsV{Elems: elems}
	default:
		return EvalTm(env, tm)
	}
}

// projectField applies a named-field projection to a value: a concrete
// record picks out its element directly, while a stuck term grows its
// elimination spine.
func projectField(v TmV, field string) TmV {
	switch r := v.(type) {
	case RecordConsV:
		for i, name := range r.Fields {
			if name == field {
				return r.Elems[i]
			}
		}
		panic("tt: projectField: no field " + field)
	case NeuV:
		return r.extend(ProjElim{Field: field})
	case TopRefV:
		return projectField(r.Val, field)
	}
	panic(fmt.Sprintf("tt: projectField: cannot project %T", v))
}

// fieldType computes the TyV of record field i given the already-known
// values of fields 0..i-1 (concrete values for a real record, or fresh
// Neu variables during eta-expansion/quoting of a generic one).
func fieldType(rv RecordV, i int, fieldVals []TmV) TyV {
	env := rv.Env
	for _, v := range fieldVals {
		env = env.extend(v)
	}
	return EvalTy(env, rv.Fields[i].Ty)
}
