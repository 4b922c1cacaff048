package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/sparse"
)

func csrDiag3(t *testing.T) *sparse.CsrMatrix[algebra.Real64] {
	t.Helper()
	m, err := sparse.NewCsrMatrix(3, 3,
		[]algebra.Real64{1, 2, 3},
		[]int{0, 1, 2, 3},
		[]int{0, 1, 2})
	require.NoError(t, err)

	return m
}

func TestCsrDiagonalLayout(t *testing.T) {
	m := csrDiag3(t)

	require.Equal(t, []int{0, 1, 2, 3}, m.RowPointers())
	require.Equal(t, []int{0, 1, 2}, m.ColIndices())
	require.Equal(t, []algebra.Real64{1, 2, 3}, m.Values())
	require.Equal(t, []int{0, 1, 2}, m.RowIndices())
}

func TestCsrRejectsBadPointers(t *testing.T) {
	// Wrong pointer count.
	_, err := sparse.NewCsrMatrix(3, 3, []algebra.Real64{1}, []int{0, 1}, []int{0})
	require.ErrorIs(t, err, sparse.ErrInvalidStructure)

	// Decreasing pointers.
	_, err = sparse.NewCsrMatrix(2, 2, []algebra.Real64{1}, []int{0, 1, 0}, []int{0})
	require.ErrorIs(t, err, sparse.ErrInvalidStructure)

	// Span not ending at nnz.
	_, err = sparse.NewCsrMatrix(2, 2, []algebra.Real64{1}, []int{0, 0, 0}, []int{0})
	require.ErrorIs(t, err, sparse.ErrInvalidStructure)

	// Column outside the shape.
	_, err = sparse.NewCsrMatrix(2, 2, []algebra.Real64{1}, []int{0, 1, 1}, []int{5})
	require.ErrorIs(t, err, sparse.ErrIndexOutOfBounds)
}

func TestCsrConstructorSortsRowColumns(t *testing.T) {
	// Row 0 given with columns out of order.
	m, err := sparse.NewCsrMatrix(2, 3,
		[]algebra.Real64{9, 1},
		[]int{0, 2, 2},
		[]int{2, 0})
	require.NoError(t, err)

	require.Equal(t, []int{0, 2}, m.ColIndices())
	require.Equal(t, []algebra.Real64{1, 9}, m.Values())
}

func TestCsrGetSet(t *testing.T) {
	m := csrDiag3(t)

	got, err := m.Get(1, 1)
	require.NoError(t, err)
	require.Equal(t, algebra.Real64(2), got)

	got, err = m.Get(0, 2) // empty position
	require.NoError(t, err)
	require.True(t, got.IsZero())

	_, err = m.Get(3, 0)
	require.ErrorIs(t, err, sparse.ErrIndexOutOfBounds)

	// Inserting into row 0 shifts every later row pointer.
	out, err := m.Set(7, 0, 2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 3, 4}, out.RowPointers())
	got, err = out.Get(0, 2)
	require.NoError(t, err)
	require.Equal(t, algebra.Real64(7), got)

	// Overwrite keeps the structure.
	out, err = m.Set(9, 2, 2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, out.RowPointers())
}

func TestCsrAddSub(t *testing.T) {
	a := csrDiag3(t)
	b, err := sparse.NewCsrMatrix(3, 3,
		[]algebra.Real64{5},
		[]int{0, 1, 1, 1},
		[]int{1})
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, 4, sum.NNZ())
	got, err := sum.Get(0, 1)
	require.NoError(t, err)
	require.Equal(t, algebra.Real64(5), got)

	diff, err := a.Sub(b)
	require.NoError(t, err)
	got, err = diff.Get(0, 1)
	require.NoError(t, err)
	require.Equal(t, algebra.Real64(-5), got)
}

func TestCsrDivScalarGatedOnField(t *testing.T) {
	m := csrDiag3(t)

	out, err := m.DivScalar(2)
	require.NoError(t, err)
	require.Equal(t, []algebra.Real64{0.5, 1, 1.5}, out.Values())
	require.Equal(t, m.RowPointers(), out.RowPointers())

	// Bool is a bare semiring: no division.
	bools, err := sparse.NewCsrMatrix(1, 2, []algebra.Bool{true}, []int{0, 1}, []int{0})
	require.NoError(t, err)
	_, err = bools.DivScalar(true)
	require.ErrorIs(t, err, sparse.ErrUnsupported)
}

func TestCsrSubGatedOnSemiring(t *testing.T) {
	a, err := sparse.NewCsrMatrix(1, 2, []algebra.Bool{true}, []int{0, 1}, []int{0})
	require.NoError(t, err)
	b, err := sparse.NewCsrMatrix(1, 2, []algebra.Bool{true}, []int{0, 1}, []int{1})
	require.NoError(t, err)

	_, err = a.Sub(b)
	require.ErrorIs(t, err, sparse.ErrUnsupported)
}

func TestCsrTranspose(t *testing.T) {
	m, err := sparse.NewCsrMatrix(2, 3,
		[]algebra.Real64{1, 2, 3},
		[]int{0, 2, 3},
		[]int{0, 2, 1})
	require.NoError(t, err)

	tt := m.Transpose()
	require.Equal(t, 3, tt.Rows())
	require.Equal(t, 2, tt.Cols())
	// Column counts become the new row pointers.
	require.Equal(t, []int{0, 1, 2, 3}, tt.RowPointers())

	got, err := tt.Get(2, 0)
	require.NoError(t, err)
	require.Equal(t, algebra.Real64(2), got)

	require.True(t, tt.Transpose().Equal(m))
}

func TestCsrEqualIgnoresExplicitZeros(t *testing.T) {
	a := csrDiag3(t)

	// Same matrix plus one explicitly stored zero.
	b, err := sparse.NewCsrMatrix(3, 3,
		[]algebra.Real64{1, 0, 2, 3},
		[]int{0, 2, 3, 4},
		[]int{0, 1, 1, 2})
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	require.True(t, b.Equal(a))
}

func TestCsrSwapRows(t *testing.T) {
	m, err := sparse.NewCsrMatrix(3, 3,
		[]algebra.Real64{1, 2, 3},
		[]int{0, 2, 2, 3},
		[]int{0, 1, 2})
	require.NoError(t, err)

	_, err = m.SwapRowsInPlace(0, 2)
	require.NoError(t, err)

	// Row 0 now holds the single old row-2 entry, row 2 the old pair.
	require.Equal(t, []int{0, 1, 1, 3}, m.RowPointers())
	got, err := m.Get(0, 2)
	require.NoError(t, err)
	require.Equal(t, algebra.Real64(3), got)
	got, err = m.Get(2, 0)
	require.NoError(t, err)
	require.Equal(t, algebra.Real64(1), got)
}

func TestCsrSwapCols(t *testing.T) {
	m := csrDiag3(t)

	_, err := m.SwapColsInPlace(0, 2)
	require.NoError(t, err)

	got, err := m.Get(0, 2)
	require.NoError(t, err)
	require.Equal(t, algebra.Real64(1), got)
	got, err = m.Get(2, 0)
	require.NoError(t, err)
	require.Equal(t, algebra.Real64(3), got)
	// Columns within each row stay sorted after the relabel.
	require.Equal(t, []int{2, 1, 0}, m.ColIndices())
}

func TestCsrRowColumnAccess(t *testing.T) {
	m := csrDiag3(t)

	row, err := m.GetRow(1)
	require.NoError(t, err)
	require.Equal(t, []int{1}, row.Indices())
	require.Equal(t, []algebra.Real64{2}, row.Values())

	col, err := m.GetCol(2)
	require.NoError(t, err)
	require.Equal(t, []int{2}, col.Indices())
	require.Equal(t, []algebra.Real64{3}, col.Values())
}

func TestCsrStructuralEditsViaCoo(t *testing.T) {
	m := csrDiag3(t)

	out, err := m.RemoveRow(1)
	require.NoError(t, err)
	require.Equal(t, 2, out.Rows())
	require.Equal(t, []int{0, 1, 2}, out.RowPointers())
	got, err := out.Get(1, 2)
	require.NoError(t, err)
	require.Equal(t, algebra.Real64(3), got)

	out, err = m.RemoveCol(0)
	require.NoError(t, err)
	require.Equal(t, 2, out.Cols())
	require.Equal(t, 2, out.NNZ())

	stacked, err := m.VStack(m)
	require.NoError(t, err)
	require.Equal(t, 6, stacked.Rows())
	require.Equal(t, 6, stacked.NNZ())
}

func TestCsrProperties(t *testing.T) {
	diag := csrDiag3(t)
	require.True(t, diag.IsTriU())
	require.True(t, diag.IsTriL())
	require.True(t, diag.IsDiag())
	require.True(t, diag.IsSymmetric())
	require.False(t, diag.IsIdentity()) // values are not all one

	eye, err := sparse.NewCsrMatrix(2, 2,
		[]algebra.Real64{1, 1},
		[]int{0, 1, 2},
		[]int{0, 1})
	require.NoError(t, err)
	require.True(t, eye.IsIdentity())

	upper, err := sparse.NewCsrMatrix(2, 2,
		[]algebra.Real64{1, 2},
		[]int{0, 2, 2},
		[]int{0, 1})
	require.NoError(t, err)
	require.True(t, upper.IsTriU())
	require.False(t, upper.IsTriL())
	require.False(t, upper.IsSymmetric())
}

func TestCsrHermitian(t *testing.T) {
	// [[2, 3+4i], [3-4i, 5]] is Hermitian but not symmetric.
	m, err := sparse.NewCsrMatrix(2, 2,
		[]algebra.Complex128{2, 3 + 4i, 3 - 4i, 5},
		[]int{0, 2, 4},
		[]int{0, 1, 0, 1})
	require.NoError(t, err)

	require.True(t, m.IsHermitian())
	require.False(t, m.IsSymmetric())
}
