package tt_test

import (
	"testing"

	"github.com/katalvlaran/dblcat/tt"
)

// TestGraphSpecialization mirrors the worked example of the package's
// specialization rule: a Graph2 bundling two Graphs that share a vertex
// set exposes that shared vertex set's type as the singleton @sing(V)
// once projected through either inner graph, rather than the coarser
// Entity type.
//
//	type Graph := [ E : Entity, V : Entity, src : Hom(E,V), tgt : Hom(E,V) ]
//	type Graph2 := [ V : Entity, g1 : Graph & [.V := V], g2 : Graph & [.V := V] ]
//	syn  [g : Graph2] g.g1.V  =>  @sing(g.V)
//	norm [g : Graph2] g.g1.V  =>  g.V
func TestGraphSpecialization(t *testing.T) {
	theory := tt.NewTheory()
	top := tt.NewToplevel(theory)
	reporter := tt.NewReporter()

	graphFields := tt.RecordS{Fields: []tt.FieldS{
		{Name: "E", Ty: tt.ObTypeS{}},
		{Name: "V", Ty: tt.ObTypeS{}},
		{Name: "src", Ty: tt.MorTypeS{Src: tt.VarS{Idx: 1}, Tgt: tt.VarS{Idx: 0}}},
		{Name: "tgt", Ty: tt.MorTypeS{Src: tt.VarS{Idx: 2}, Tgt: tt.VarS{Idx: 1}}},
	}}
	if err := top.DeclareType(reporter, tt.Loc{Label: "Graph"}, "Graph", graphFields); err != nil {
		t.Fatalf("declaring Graph: %v (%v)", err, reporter.Diagnostics())
	}

	graph2Fields := tt.RecordS{Fields: []tt.FieldS{
		{Name: "V", Ty: tt.ObTypeS{}},
		{Name: "g1", Ty: tt.SpecializeS{
			Base: tt.TopTypeRefS{Name: "Graph"}, Field: "V", Sty: tt.SingS{Tm: tt.VarS{Idx: 0}},
		}},
		{Name: "g2", Ty: tt.SpecializeS{
			Base: tt.TopTypeRefS{Name: "Graph"}, Field: "V", Sty: tt.SingS{Tm: tt.VarS{Idx: 1}},
		}},
	}}
	if err := top.DeclareType(reporter, tt.Loc{Label: "Graph2"}, "Graph2", graph2Fields); err != nil {
		t.Fatalf("declaring Graph2: %v (%v)", err, reporter.Diagnostics())
	}

	graph2Ty, ok := top.LookupType("Graph2")
	if !ok {
		t.Fatal("Graph2 not declared")
	}

	elab := tt.NewElaborator(theory, top, reporter)
	gElab := elab.Intro("g", graph2Ty)

	ggV := tt.ProjS{Tm: tt.ProjS{Tm: tt.VarS{Idx: 0}, Field: "g1"}, Field: "V"}

	_, synTy, err := gElab.Syn(tt.Loc{Label: "syn"}, ggV)
	if err != nil {
		t.Fatalf("syn g.g1.V: %v (%v)", err, reporter.Diagnostics())
	}
	sing, ok := synTy.(tt.SingV)
	if !ok {
		t.Fatalf("expected g.g1.V to synthesize a singleton type, got %T", synTy)
	}
	gV := tt.ProjS{Tm: tt.VarS{Idx: 0}, Field: "V"}
	gVVal := tt.EvalTm(tt.Env{tt.NeuV{Head: 0}}, gV)
	if !tt.ConvertibleTm(1, tt.ObTypeV{}, sing.Tm, gVVal) {
		t.Fatalf("expected @sing(g.V), got @sing of a different term")
	}

	normed := tt.QuoteTmAt(1, tt.EvalTm(tt.Env{tt.NeuV{Head: 0}}, ggV), synTy)
	want := tt.QuoteTmAt(1, gVVal, tt.ObTypeV{})
	if !deepEqualTm(normed, want) {
		t.Fatalf("norm g.g1.V = %#v, want %#v", normed, want)
	}
}

func deepEqualTm(a, b tt.TmS) bool {
	pa, oka := a.(tt.ProjS)
	pb, okb := b.(tt.ProjS)
	if oka && okb {
		return pa.Field == pb.Field && deepEqualTm(pa.Tm, pb.Tm)
	}
	va, oka := a.(tt.VarS)
	vb, okb := b.(tt.VarS)
	if oka && okb {
		return va.Idx == vb.Idx
	}
	return false
}
