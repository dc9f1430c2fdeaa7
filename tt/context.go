package tt

// Loc is a source span. This core's elaborator runs over already-parsed
// syntax trees rather than raw text (see package doc), so Loc carries
// only whatever the caller wants to report back to a user, not byte
// offsets into a concrete grammar.
type Loc struct {
	Label string
}

// Diagnostic is one reported elaboration error.
type Diagnostic struct {
	Loc     Loc
	Message string
}

// Reporter collects diagnostics without aborting elaboration: every
// top-level statement is elaborated even if earlier ones failed, the
// same continue-on-error discipline the source elaborator uses so one
// typo does not hide every other error in a file.
type Reporter struct {
	diags []Diagnostic
}

func NewReporter() *Reporter { return &Reporter{} }

func (r *Reporter) Error(loc Loc, msg string) {
	r.diags = append(r.diags, Diagnostic{Loc: loc, Message: msg})
}

func (r *Reporter) Diagnostics() []Diagnostic { return r.diags }

func (r *Reporter) HasErrors() bool { return len(r.diags) > 0 }

// OpSig is the signature of a named object-level operation: the type of
// the argument it expects and the type of the object it produces. Dom is
// evaluated in the caller's scope; Cod is still-open syntax that can depend
// on the argument, bound as variable 0.
type OpSig struct {
	Dom TyS
	Cod TyS
}

// Theory is the table of named operations and morphism-type formers
// available during elaboration, the dependent-type analogue of
// dbl/modal.Theory: where that package's ops are indexed by concrete
// ObType trees, this theory's ops are indexed by dependent types built
// from the term language itself.
type Theory struct {
	Ops map[string]OpSig
}

func NewTheory() *Theory { return &Theory{Ops: map[string]OpSig{}} }

func (t *Theory) AddOp(name string, dom, cod TyS) { t.Ops[name] = OpSig{Dom: dom, Cod: cod} }

// Binding is one entry of the elaborator's local context: a bound
// variable's name (for error messages) and its semantic type.
type Binding struct {
	Name string
	Ty   TyV
}

// Ctx is the elaborator's local typing context, a stack of Bindings
// parallel to the Env used to evaluate open terms under those bindings.
type Ctx struct {
	Bindings []Binding
}

func (c Ctx) Len() int { return len(c.Bindings) }

func (c Ctx) Lookup(name string) (idx int, ty TyV, ok bool) {
	for i := len(c.Bindings) - 1; i >= 0; i-- {
		if c.Bindings[i].Name == name {
			return len(c.Bindings) - 1 - i, c.Bindings[i].Ty, true
		}
	}
	return 0, nil, false
}

func (c Ctx) Extend(name string, ty TyV) Ctx {
	out := Ctx{Bindings: make([]Binding, len(c.Bindings)+1)}
	copy(out.Bindings, c.Bindings)
	out.Bindings[len(c.Bindings)] = Binding{Name: name, Ty: ty}
	return out
}
