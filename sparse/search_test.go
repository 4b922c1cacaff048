package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/sparse"
)

func TestPairSearchFoundAndInsertionPoint(t *testing.T) {
	rows := []int{0, 0, 1, 2}
	cols := []int{1, 3, 0, 2}

	// Present pairs return their position.
	require.Equal(t, 0, sparse.PairSearch(rows, cols, 0, 1))
	require.Equal(t, 3, sparse.PairSearch(rows, cols, 2, 2))

	// Absent pairs return -(insertionPoint)-1.
	require.Equal(t, -1, sparse.PairSearch(rows, cols, 0, 0))  // before everything
	require.Equal(t, -2, sparse.PairSearch(rows, cols, 0, 2))  // between (0,1) and (0,3)
	require.Equal(t, -5, sparse.PairSearch(rows, cols, 5, 0))  // after everything
	require.Equal(t, -1, sparse.PairSearch(nil, nil, 0, 0))    // empty arrays
}

func TestTupleSearch(t *testing.T) {
	indices := [][]int{{0, 0, 1}, {0, 2, 3}, {1, 1, 0}}

	require.Equal(t, 1, sparse.TupleSearch(indices, []int{0, 2, 3}))
	require.Equal(t, -2, sparse.TupleSearch(indices, []int{0, 1, 0}))
	require.Equal(t, -4, sparse.TupleSearch(indices, []int{2, 0, 0}))
}

func TestRowRange(t *testing.T) {
	rows := []int{0, 0, 2, 2, 2, 4}

	start, end := sparse.RowRange(rows, 0)
	require.Equal(t, 0, start)
	require.Equal(t, 2, end)

	start, end = sparse.RowRange(rows, 2)
	require.Equal(t, 2, start)
	require.Equal(t, 5, end)

	// Missing row: empty range at its insertion point.
	start, end = sparse.RowRange(rows, 1)
	require.Equal(t, 2, start)
	require.Equal(t, start, end)

	start, end = sparse.RowRange(rows, 9)
	require.Equal(t, 6, start)
	require.Equal(t, start, end)
}
