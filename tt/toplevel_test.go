package tt_test

import (
	"testing"

	"github.com/katalvlaran/dblcat/tt"
)

func TestToplevel_DefAndNorm(t *testing.T) {
	theory := tt.NewTheory()
	top := tt.NewToplevel(theory)
	reporter := tt.NewReporter()

	pairTy := tt.RecordS{Fields: []tt.FieldS{
		{Name: "fst", Ty: tt.ObTypeS{}},
		{Name: "snd", Ty: tt.ObTypeS{}},
	}}
	if err := top.DeclareType(reporter, tt.Loc{Label: "Pair"}, "Pair", pairTy); err != nil {
		t.Fatalf("declaring Pair: %v (%v)", err, reporter.Diagnostics())
	}

	// Unit-typed values do not satisfy Pair's Object-typed fields.
	body := tt.RecordConsS{Fields: []string{"fst", "snd"}, Elems: []tt.TmS{tt.UnitS{}, tt.UnitS{}}}
	if _, err := top.Chk(reporter, tt.Loc{Label: "bad"}, pairTy, body); err == nil {
		t.Fatalf("expected a type error checking unit values against Object fields")
	}

	generatorsTy := tt.RecordS{Fields: []tt.FieldS{
		{Name: "a", Ty: tt.ObTypeS{}},
		{Name: "b", Ty: tt.ObTypeS{}},
		{Name: "f", Ty: tt.MorTypeS{Src: tt.VarS{Idx: 1}, Tgt: tt.VarS{Idx: 0}}},
	}}
	if err := top.DeclareType(reporter, tt.Loc{Label: "Generators"}, "Generators", generatorsTy); err != nil {
		t.Fatalf("declaring Generators: %v (%v)", err, reporter.Diagnostics())
	}
	genTyV, ok := top.LookupType("Generators")
	if !ok {
		t.Fatal("Generators not declared")
	}

	model, err := tt.Generate(genTyV)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(model.Objects) != 2 || model.Objects[0] != "a" || model.Objects[1] != "b" {
		t.Fatalf("unexpected generated objects: %v", model.Objects)
	}
	if len(model.Morphisms) != 1 {
		t.Fatalf("expected one generated morphism, got %d", len(model.Morphisms))
	}
	mor := model.Morphisms[0]
	if mor.Name != "f" || mor.Src != "a" || mor.Cod != "b" {
		t.Fatalf("unexpected generated morphism: %+v", mor)
	}
}
