package tt

// ResolveTopTypeRefs substitutes every TopTypeRefS appearing in ty with
// the already-elaborated type it names, so the rest of the core (eval,
// quote, specialize) never needs to carry a TopEnv of its own: a
// top-level type name used inside another declaration, as Graph is used
// inside Graph2's fields, is expanded once at elaboration time.
func ResolveTopTypeRefs(ty TyS, top TopEnv) TyS {
	switch t := ty.(type) {
	case TopTypeRefS:
		v, ok := top.LookupType(t.Name)
		if !ok {
			return ty
		}
		return QuoteTy(0, v)
	case MorTypeS:
		return MorTypeS{Src: t.Src, Tgt: t.Tgt}
	case SingS:
		return t
	case RecordS:
		fields := make([]FieldS, len(t.Fields))
		for i, f := range t.Fields {
			fields[i] = FieldS{Name: f.Name, Ty: ResolveTopTypeRefs(f.Ty, top)}
		}
		return RecordS{Fields: fields}
	case SpecializeS:
		return SpecializeS{
			Base:  ResolveTopTypeRefs(t.Base, top),
			Field: t.Field,
			Sty:   ResolveTopTypeRefs(t.Sty, top),
		}
	default:
		return ty
	}
}
