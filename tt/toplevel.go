package tt

import "fmt"

// TopDecl is a top-level declaration: a named type (TypeDecl) or a named,
// argument-free term of a declared type (DefDecl). Definitions that take
// parameters are not represented.
type TopDecl interface{ isTopDecl() }

// TypeDecl names a type expression.
type TypeDecl struct {
	Syntax TyS
	Value  TyV
}

// DefDecl is a named, closed (argument-free) term of a declared type.
type DefDecl struct {
	TySyntax TyS
	TyValue  TyV
	Syntax   TmS
	Value    TmV
}

func (TypeDecl) isTopDecl() {}
func (DefDecl) isTopDecl()  {}

// Toplevel accumulates named declarations in elaboration order and
// implements TopEnv so later declarations can refer to earlier ones by
// name, mirroring the source's Toplevel of accumulated TopDecls.
type Toplevel struct {
	Theory *Theory
	order  []string
	decls  map[string]TopDecl
}

func NewToplevel(theory *Theory) *Toplevel {
	return &Toplevel{Theory: theory, decls: map[string]TopDecl{}}
}

func (tl *Toplevel) LookupVal(name string) (TmV, bool) {
	d, ok := tl.decls[name]
	if !ok {
		return nil, false
	}
	def, ok := d.(DefDecl)
	if !ok {
		return nil, false
	}
	return def.Value, true
}

func (tl *Toplevel) LookupType(name string) (TyV, bool) {
	d, ok := tl.decls[name]
	if !ok {
		return nil, false
	}
	switch t := d.(type) {
	case TypeDecl:
		return t.Value, true
	case DefDecl:
		return t.TyValue, true
	}
	return nil, false
}

func (tl *Toplevel) Decl(name string) (TopDecl, bool) {
	d, ok := tl.decls[name]
	return d, ok
}

func (tl *Toplevel) Names() []string { return append([]string{}, tl.order...) }

func (tl *Toplevel) elaborator(reporter *Reporter) *Elaborator {
	return NewElaborator(tl.Theory, tl, reporter)
}

// DeclareType elaborates and records a named type declaration.
func (tl *Toplevel) DeclareType(reporter *Reporter, loc Loc, name string, ty TyS) error {
	stx, val, err := tl.elaborator(reporter).Ty(loc, ty)
	if err != nil {
		return err
	}
	tl.set(name, TypeDecl{Syntax: stx, Value: val})
	return nil
}

// DeclareDef elaborates and records a named, closed term of type ty.
func (tl *Toplevel) DeclareDef(reporter *Reporter, loc Loc, name string, ty TyS, tm TmS) error {
	elab := tl.elaborator(reporter)
	_, tyVal, err := elab.Ty(loc, ty)
	if err != nil {
		return err
	}
	checked, err := elab.Chk(loc, tyVal, tm)
	if err != nil {
		return err
	}
	val := EvalTmTop(Env{}, checked, tl)
	tl.set(name, DefDecl{TySyntax: ty, TyValue: tyVal, Syntax: checked, Value: val})
	return nil
}

func (tl *Toplevel) set(name string, d TopDecl) {
	if _, exists := tl.decls[name]; !exists {
		tl.order = append(tl.order, name)
	}
	tl.decls[name] = d
}

// Syn elaborates and infers a type for a closed term against this
// toplevel's declarations (the source's top-level "syn" statement).
func (tl *Toplevel) Syn(reporter *Reporter, loc Loc, tm TmS) (TyS, TyV, error) {
	return tl.elaborator(reporter).Syn(loc, tm)
}

// Chk elaborates a closed term against an expected type (the source's
// top-level "chk" statement).
func (tl *Toplevel) Chk(reporter *Reporter, loc Loc, ty TyS, tm TmS) (TmS, error) {
	elab := tl.elaborator(reporter)
	_, tyVal, err := elab.Ty(loc, ty)
	if err != nil {
		return nil, err
	}
	return elab.Chk(loc, tyVal, tm)
}

// Norm evaluates and reads back a closed term of a declared type,
// mirroring the source's top-level "norm" statement: chk followed by
// eval and eta-long quote, so the caller sees the canonical normal form.
func (tl *Toplevel) Norm(reporter *Reporter, loc Loc, ty TyS, tm TmS) (TmS, error) {
	elab := tl.elaborator(reporter)
	_, tyVal, err := elab.Ty(loc, ty)
	if err != nil {
		return nil, err
	}
	checked, err := elab.Chk(loc, tyVal, tm)
	if err != nil {
		return nil, err
	}
	val := EvalTmTop(Env{}, checked, tl)
	return QuoteTmAt(0, val, tyVal), nil
}

// GeneratedModel is the free model produced by Generate out of a record
// type describing a collection of objects and morphisms: each field typed
// ObTypeV becomes a generating object, and each field typed MorTypeV
// becomes a generating morphism between the two object fields its type
// names.
type GeneratedModel struct {
	Objects   []string
	Morphisms []GeneratedMorphism
}

type GeneratedMorphism struct {
	Name     string
	Src, Cod string
}

// Generate builds a GeneratedModel from a record type, the source's
// top-level "generate" statement: it reads the record's field types in
// order, and for each morphism field resolves its declared source and
// target back to the name of whichever earlier object field they project
// from a generic element of the record.
func Generate(ty TyV) (*GeneratedModel, error) {
	rv, ok := asRecord(ty)
	if !ok {
		return nil, fmt.Errorf("tt: generate: expected a record type")
	}
	gm := &GeneratedModel{}
	generic := NeuV{Head: 0}
	fieldOwner := map[string]string{}
	priorVals := make([]TmV, 0, len(rv.Fields))
	for i, f := range rv.Fields {
		fty := fieldType(rv, i, priorVals)
		val := projectField(generic, f.Name)
		priorVals = append(priorVals, val)
		switch t := fty.(type) {
		case ObTypeV:
			gm.Objects = append(gm.Objects, f.Name)
			fieldOwner[f.Name] = f.Name
		case MorTypeV:
			src, err := resolveFieldName(t.Src, fieldOwner)
			if err != nil {
				return nil, fmt.Errorf("tt: generate: morphism %q: %w", f.Name, err)
			}
			cod, err := resolveFieldName(t.Tgt, fieldOwner)
			if err != nil {
				return nil, fmt.Errorf("tt: generate: morphism %q: %w", f.Name, err)
			}
			gm.Morphisms = append(gm.Morphisms, GeneratedMorphism{Name: f.Name, Src: src, Cod: cod})
		default:
			return nil, fmt.Errorf("tt: generate: field %q has unsupported type %T", f.Name, fty)
		}
	}
	return gm, nil
}

// resolveFieldName reads which record field a projection off the generic
// element refers to.
func resolveFieldName(v TmV, fieldOwner map[string]string) (string, error) {
	neu, ok := v.(NeuV)
	if !ok || len(neu.Spine) != 1 {
		return "", fmt.Errorf("expected a direct field reference")
	}
	proj, ok := neu.Spine[0].(ProjElim)
	if !ok {
		return "", fmt.Errorf("expected a field projection")
	}
	name, ok := fieldOwner[proj.Field]
	if !ok {
		return "", fmt.Errorf("field %q is not a previously declared object", proj.Field)
	}
	return name, nil
}
