package segtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lzforge/costlz/segtree"
)

func TestNew_FillsInitialValue(t *testing.T) {
	tr := segtree.New(5, 9)
	got, err := tr.Max(1, 5, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(9), got)
}

func TestUpdate_SingleValueVisibleInRange(t *testing.T) {
	tr := segtree.New(5, 0)
	require.NoError(t, tr.Update(3, 7))

	got, err := tr.Max(1, 5, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got)

	got, err = tr.Max(1, 2, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)
}

func TestMax_RespectsRangeBoundaries(t *testing.T) {
	tr := segtree.New(8, 0)
	require.NoError(t, tr.Update(1, 5))
	require.NoError(t, tr.Update(8, 9))

	got, err := tr.Max(2, 7, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)

	got, err = tr.Max(1, 8, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(9), got)
}

func TestMax_CapShortCircuitsButNeverUnderreports(t *testing.T) {
	tr := segtree.New(16, 0)
	for i := 1; i <= 16; i++ {
		require.NoError(t, tr.Update(i, int64(i)))
	}
	got, err := tr.Max(1, 16, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(16), got)

	got, err = tr.Max(1, 5, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got)
}

func TestUpdate_OutOfRange(t *testing.T) {
	tr := segtree.New(4, 0)
	assert.ErrorIs(t, tr.Update(0, 1), segtree.ErrIndexOutOfRange)
	assert.ErrorIs(t, tr.Update(5, 1), segtree.ErrIndexOutOfRange)
}

func TestMax_InvalidRange(t *testing.T) {
	tr := segtree.New(4, 0)
	_, err := tr.Max(3, 1, 10)
	assert.ErrorIs(t, err, segtree.ErrInvalidRange)

	_, err = tr.Max(1, 5, 10)
	assert.ErrorIs(t, err, segtree.ErrInvalidRange)
}
