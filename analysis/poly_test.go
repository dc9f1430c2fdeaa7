package analysis_test

import (
	"testing"

	"github.com/katalvlaran/dblcat/analysis"
	"github.com/stretchr/testify/require"
)

func TestMonomial_MulAddsExponents(t *testing.T) {
	x := analysis.GeneratorMonomial("x")
	xy := x.Mul(analysis.GeneratorMonomial("y")).Mul(x)
	require.Equal(t, []string{"x", "y"}, xy.Variables())
	require.Equal(t, "x^2 y", xy.String())
}

func TestPolynomialSystem_NormalizeDropsZeroTerms(t *testing.T) {
	sys := analysis.NewPolynomialSystem()
	mono := analysis.GeneratorMonomial("x")
	sys.AddTerm("x", analysis.RateTerm("r", mono))
	sys.AddTerm("x", analysis.RateTerm("r", mono).Neg())

	normalized := sys.Normalize()
	component, ok := normalized.Component("x")
	require.True(t, ok)
	require.Equal(t, "0", component.String())
}

func TestPolynomial_Eval(t *testing.T) {
	p := analysis.RateTerm("rate", analysis.GeneratorMonomial("x").Mul(analysis.GeneratorMonomial("x")))
	values := map[string]float64{"rate": 2, "x": 3}
	got := p.Eval(func(name string) float64 { return values[name] })
	require.InDelta(t, 18.0, got, 1e-9)
}
