package zero_test

import (
	"testing"

	"github.com/katalvlaran/dblcat/zero"
	"github.com/stretchr/testify/require"
)

// TestIndexedColumn_PreimageMatchesLinearScan pins the invariant that for
// every indexed column and every y, {x : col.Apply(x)=y} equals
// col.Preimage(y), across Set/Unset/Update mutation.
func TestIndexedColumn_PreimageMatchesLinearScan(t *testing.T) {
	col := zero.NewIndexedColumn[string, int]()

	col.Set("a", 1)
	col.Set("b", 1)
	col.Set("c", 2)

	require.ElementsMatch(t, []string{"a", "b"}, col.Preimage(1))
	require.ElementsMatch(t, []string{"c"}, col.Preimage(2))
	require.Empty(t, col.Preimage(3))

	col.Set("b", 2)
	require.ElementsMatch(t, []string{"a"}, col.Preimage(1))
	require.ElementsMatch(t, []string{"b", "c"}, col.Preimage(2))

	col.Unset("a")
	require.Empty(t, col.Preimage(1))

	col.Update("d", 2, true)
	require.ElementsMatch(t, []string{"b", "c", "d"}, col.Preimage(2))
	col.Update("d", 0, false)
	require.ElementsMatch(t, []string{"b", "c"}, col.Preimage(2))
}

func TestIterInvalid(t *testing.T) {
	dom := zero.NewSliceFinSet[string]()
	dom.Insert("x")
	dom.Insert("y")
	dom.Insert("z")

	cod := zero.NewSliceFinSet[int]()
	cod.Insert(1)
	cod.Insert(2)

	col := zero.NewHashColumn[string, int]()
	col.Set("x", 1)
	col.Set("y", 99) // escapes cod
	// z left undefined

	errs := zero.IterInvalid[string, int](col, dom, cod)
	require.Len(t, errs, 2)

	kinds := map[string]bool{}
	for _, e := range errs {
		kinds[e.Kind] = true
	}
	require.True(t, kinds["dom"])
	require.True(t, kinds["cod"])
}
