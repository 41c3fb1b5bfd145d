package suffixtree_test

import (
	"testing"

	"github.com/lzforge/costlz/suffixtree"
	"github.com/stretchr/testify/require"
)

func TestSetU_RejectsCostAboveCeiling(t *testing.T) {
	tree, err := suffixtree.New([]byte("banana"), suffixtree.WithCost(2))
	require.NoError(t, err)

	err = tree.SetU(1, 3)
	require.ErrorIs(t, err, suffixtree.ErrCostExceeded)
}

func TestSetU_UpdatesUAndIsReadableBack(t *testing.T) {
	tree, err := suffixtree.New([]byte("banana"), suffixtree.WithCost(2))
	require.NoError(t, err)

	require.NoError(t, tree.SetU(1, 0))
	require.Equal(t, int64(0), tree.U(1))

	require.NoError(t, tree.SetU(1, 2))
	require.Equal(t, int64(2), tree.U(1))
}

func TestSearch_OnFreshTreeHasNoCandidates(t *testing.T) {
	// Before any position is given a real cost via SetU, no leaf has been
	// admitted as a copy-source candidate anywhere in the tree, so every
	// search must report "no admissible source" (the zero Match).
	tree, err := suffixtree.New([]byte("banana"), suffixtree.WithCost(3))
	require.NoError(t, err)

	m, err := tree.Search(1)
	require.NoError(t, err)
	require.Equal(t, suffixtree.Match{}, m)
}

func TestSearch_FindsAdmittedSourceAfterPropagation(t *testing.T) {
	tree, err := suffixtree.New([]byte("aa"), suffixtree.WithCost(1))
	require.NoError(t, err)

	require.NoError(t, tree.SetU(1, 0))
	tree.PropagateFromLeaf(1, 1)

	m, err := tree.Search(2)
	require.NoError(t, err)
	require.Greater(t, m.Length, 0, "position 2 ('a') should find position 1 ('a') as a source after propagation")
	require.Equal(t, 1, m.Pos)
}

func TestSearch_ExhaustedSourceNeverExceedsCostAfterAdmission(t *testing.T) {
	// Once position 1 saturates at the COST ceiling, the optimistic path may
	// still offer it as a fallback source (tiebroken by D), but Search must
	// never error and must never report a source position that was never a
	// real text position.
	tree, err := suffixtree.New([]byte("aaa"), suffixtree.WithCost(1))
	require.NoError(t, err)

	require.NoError(t, tree.SetU(1, 1))
	tree.PropagateFromLeaf(1, 1)

	m, err := tree.Search(2)
	require.NoError(t, err)
	require.GreaterOrEqual(t, m.Pos, 0)
	require.LessOrEqual(t, m.Pos, tree.Len())
}
