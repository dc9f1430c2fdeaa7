package analysis_test

import (
	"testing"

	"github.com/katalvlaran/dblcat/analysis"
	"github.com/stretchr/testify/require"
)

// TestStockFlowMassAction_BackwardLink mirrors the source's
// backward_link_dynamics fixture: a flow f:x->y whose rate is linked
// (positively) to its target stock y, giving dx = -f*x*y, dy = f*x*y.
func TestStockFlowMassAction_BackwardLink(t *testing.T) {
	m := analysis.NewStockFlowModel()
	m.AddStock("x")
	m.AddStock("y")
	m.AddFlow("f", "x", "y")
	m.AddPositiveLink("link", "y", "f")

	sys := analysis.StockFlowMassActionAnalysis{}.BuildSystem(m)

	dx, ok := sys.Component("x")
	require.True(t, ok)
	require.Equal(t, "((-1) f) x y", dx.String())

	dy, ok := sys.Component("y")
	require.True(t, ok)
	require.Equal(t, "f x y", dy.String())
}
