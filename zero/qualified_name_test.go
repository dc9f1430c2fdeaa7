package zero_test

import (
	"testing"

	"github.com/katalvlaran/dblcat/zero"
	"github.com/stretchr/testify/require"
)

// TestQualifiedName_RoundTrip checks the round-trip property:
// DeserializeStr(n.SerializeString()) == n for every constructible name.
func TestQualifiedName_RoundTrip(t *testing.T) {
	cases := []zero.QualifiedName{
		zero.NewQualifiedName(zero.TextSegment("foo")),
		zero.NewQualifiedName(zero.TextSegment("foo"), zero.TextSegment("bar")),
		zero.NewQualifiedName(zero.NewUUIDSegment()),
		zero.NewQualifiedName(zero.TextSegment("has.dot"), zero.NewUUIDSegment()),
		zero.NewQualifiedName(zero.TextSegment("has`tick")),
		zero.NewQualifiedName(zero.TextSegment("")),
	}
	for _, n := range cases {
		s := n.SerializeString()
		got, err := zero.DeserializeStr(s)
		require.NoError(t, err)
		require.True(t, n.Equal(got), "round trip mismatch for %q -> %#v", s, got)
	}
}

func TestNamespace_LabelLookup(t *testing.T) {
	ns := zero.NewNamespace()
	a := zero.NewUUIDSegment()
	b := zero.NewUUIDSegment()
	lbl := zero.TextLabel("x")

	require.NoError(t, ns.Insert(nil, a, &lbl))
	require.NoError(t, ns.Insert(nil, b, &lbl))

	_, kind := ns.LabelToName(nil, lbl)
	require.Equal(t, zero.LookupArbitrary, kind)

	missing := zero.TextLabel("missing")
	_, kind = ns.LabelToName(nil, missing)
	require.Equal(t, zero.LookupNone, kind)

	require.Equal(t, lbl, ns.NameToLabel(nil, a))

	other := zero.NewUUIDSegment()
	fallback := ns.NameToLabel(nil, other)
	text, ok := fallback.Text()
	require.True(t, ok)
	require.Equal(t, other.String(), text)
}

func TestNamespace_DuplicateInsert(t *testing.T) {
	ns := zero.NewNamespace()
	seg := zero.TextSegment("dup")
	require.NoError(t, ns.Insert(nil, seg, nil))
	require.ErrorIs(t, ns.Insert(nil, seg, nil), zero.ErrDuplicateKey)
}
