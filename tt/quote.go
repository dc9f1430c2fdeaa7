package tt

import "fmt"

// QuoteTy reads a semantic type back to syntax. n is the length of the
// ambient scope (the number of Neu variables already bound), used to turn
// de Bruijn levels in nested Neu heads back into de Bruijn indices.
func QuoteTy(n int, ty TyV) TyS {
	switch t := ty.(type) {
	case ObTypeV:
		return ObTypeS{}
	case MorTypeV:
		return MorTypeS{Src: QuoteTm(n, t.Src), Tgt: QuoteTm(n, t.Tgt)}
	case SingV:
		return SingS{Tm: QuoteTm(n, t.Tm)}
	case RecordV:
		fields := make([]FieldS, len(t.Fields))
		vals := make([]TmV, 0, len(t.Fields))
		for i, f := range t.Fields {
			fty := fieldType(t, i, vals)
			fields[i] = FieldS{Name: f.Name, Ty: QuoteTy(n+i, fty)}
			vals = append(vals, NeuV{Head: n + i})
		}
		return RecordS{Fields: fields}
	case SpecializeV:
		return SpecializeS{Base: QuoteTy(n, t.Base), Field: t.Field, Sty: QuoteTy(n, t.Sty)}
	case UnitTypeV:
		return UnitTypeS{}
	}
	panic(fmt.Sprintf("tt: quote_ty: unhandled value %T", ty))
}

// QuoteTm reads a semantic term back to syntax, purely structurally (no
// type-directed eta-expansion). Use Eta first when a type is known and
// eta-long form is required, e.g. before a conversion check.
func QuoteTm(n int, tm TmV) TmS {
	switch v := tm.(type) {
	case NeuV:
		head := VarS{Idx: n - 1 - v.Head}
		var cur TmS = head
		for _, e := range v.Spine {
			switch el := e.(type) {
			case ProjElim:
				cur = ProjS{Tm: cur, Field: el.Field}
			case OpElim:
				cur = OpAppS{Op: el.Op, Ob: cur}
			default:
				panic(fmt.Sprintf("tt: quote_tm: unhandled eliminator %T", e))
			}
		}
		return cur
	case TopRefV:
		return TopRefS{Name: v.Name}
	case OpaqueMorV:
		return v.Stx
	case ObOpAppV:
		return OpAppS{Op: v.Op, Ob: QuoteTm(n, v.Arg)}
	case RecordConsV:
		elems := make([]TmS, len(v.Elems))
		for i, e := range v.Elems {
			elems[i] = QuoteTm(n, e)
		}
		return RecordConsS{Fields: append([]string{}, v.Fields...), Elems: elems}
	case ListConsV:
		elems := make([]TmS, len(v.Elems))
		for i, e := range v.Elems {
			elems[i] = QuoteTm(n, e)
		}
		return ListConsS{Elems: elems}
	case UnitV:
		return UnitS{}
	}
	panic(fmt.Sprintf("tt: quote_tm: unhandled value %T", tm))
}

// Eta expands v into its eta-long form at type ty: a record-typed value is
// replaced by the record built from projecting each of its own fields
// (recursively eta-expanded at that field's type), and a singleton-typed
// value is replaced by the singleton's own canonical inhabitant — the
// source's canonicity property for @sing types. Object, morphism and unit
// types have no proper eta rule here and are returned unchanged.
func Eta(n int, v TmV, ty TyV) TmV {
	switch t := ty.(type) {
	case SingV:
		return t.Tm
	case RecordV:
		fields := make([]string, len(t.Fields))
		elems := make([]TmV, len(t.Fields))
		priorVals := make([]TmV, 0, len(t.Fields))
		for i, f := range t.Fields {
			fields[i] = f.Name
			proj := projectField(v, f.Name)
			fty := fieldType(t, i, priorVals)
			elems[i] = Eta(n, proj, fty)
			priorVals = append(priorVals, proj)
		}
		return RecordConsV{Fields: fields, Elems: elems}
	case SpecializeV:
		return Eta(n, v, t.Base)
	default:
		return v
	}
}

// QuoteTmAt quotes v at type ty after eta-expanding it, producing the
// canonical syntactic form used by conversion checks (ConvertibleTm).
func QuoteTmAt(n int, v TmV, ty TyV) TmS {
	return QuoteTm(n, Eta(n, v, ty))
}
