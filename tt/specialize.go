package tt

import "fmt"

// TrySpecialize builds the specialization A & [field : sty]: it resolves
// ty down to its underlying RecordV (forgetting any prior specializations
// along the way), locates the named field, and checks that sty is a
// subtype of that field's declared type evaluated at a generic element of
// A — a fresh Neu variable at scope depth n standing for "an arbitrary
// element of A". On success it returns the new SpecializeV; ok is false
// if ty has no such field or sty does not narrow it validly.
func TrySpecialize(n int, ty TyV, field string, sty TyV, natural NaturalTypeFunc) (TyV, bool) {
	rv, ok := asRecord(ty)
	if !ok {
		return nil, false
	}

	idx := -1
	for i, f := range rv.Fields {
		if f.Name == field {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false
	}

	// Project each preceding field off a generic element of A so later
	// fields' dependent types see the right values.
	priorVals := priorValsFromGeneric(rv, NeuV{Head: n}, idx)
	declared := fieldType(rv, idx, priorVals)

	if !Subtype(n+1, sty, declared, natural) {
		return nil, false
	}
	return SpecializeV{Base: ty, Field: field, Sty: sty}, true
}

// priorValsFromGeneric builds the values of record fields 0..idx-1 as
// projections off a single generic element of the record.
func priorValsFromGeneric(rv RecordV, generic NeuV, idx int) []TmV {
	vals := make([]TmV, idx)
	for i := 0; i < idx; i++ {
		vals[i] = projectField(generic, rv.Fields[i].Name)
	}
	return vals
}

// asRecord unwraps specializations to reach the underlying RecordV.
func asRecord(ty TyV) (RecordV, bool) {
	switch t := ty.(type) {
	case RecordV:
		return t, true
	case SpecializeV:
		return asRecord(t.Base)
	default:
		return RecordV{}, false
	}
}

// FieldPathType resolves the declared type of a dotted field path (e.g.
// "g1.V") against a record type, threading generic projections the same
// way TrySpecialize does for a single field.
func FieldPathType(n int, ty TyV, path []string) (TyV, error) {
	cur := ty
	generic := NeuV{Head: n}
	var projected TmV = generic
	for _, field := range path {
		rv, ok := asRecord(cur)
		if !ok {
			return nil, fmt.Errorf("tt: field path: %s is not a record type", field)
		}
		idx := -1
		for i, f := range rv.Fields {
			if f.Name == field {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("tt: field path: no field %q", field)
		}
		priorVals := make([]TmV, idx)
		for i := 0; i < idx; i++ {
			priorVals[i] = projectField(projected, rv.Fields[i].Name)
		}
		cur = fieldType(rv, idx, priorVals)
		projected = projectField(projected, field)
	}
	return cur, nil
}
