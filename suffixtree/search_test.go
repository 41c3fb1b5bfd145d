package suffixtree_test

import (
	"testing"

	"github.com/lzforge/costlz/suffixtree"
	"github.com/stretchr/testify/require"
)

func TestSearch_AtSentinelPositionNeverPanics(t *testing.T) {
	tree, err := suffixtree.New([]byte("banana"), suffixtree.WithCost(3))
	require.NoError(t, err)

	require.NotPanics(t, func() {
		_, _ = tree.Search(tree.Len() + 1)
	})
}

func TestSearch_LastInputPositionTerminatesCleanly(t *testing.T) {
	tree, err := suffixtree.New([]byte("aaaa"), suffixtree.WithCost(2))
	require.NoError(t, err)

	require.NoError(t, tree.SetU(1, 0))
	tree.PropagateFromLeaf(1, 1)

	// Position 4 is the last input byte: T[4..] is "a" followed only by the
	// sentinel. With position 1 admitted as a source, Search must still
	// terminate cleanly there.
	m, err := tree.Search(4)
	require.NoError(t, err)
	require.GreaterOrEqual(t, m.Length, 0)
}
