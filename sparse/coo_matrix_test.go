package sparse_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/sparse"
)

// coo builds a COO matrix over Real64 or fails the test.
func coo(t *testing.T, rows, cols int, vals []algebra.Real64, ri, ci []int) *sparse.CooMatrix[algebra.Real64] {
	t.Helper()
	m, err := sparse.NewCooMatrix(rows, cols, vals, ri, ci)
	require.NoError(t, err)

	return m
}

// requireSorted asserts the lexicographic (row, col) entry order.
func requireSorted(t *testing.T, m *sparse.CooMatrix[algebra.Real64]) {
	t.Helper()
	rows, cols := m.RowIndices(), m.ColIndices()
	ok := sort.SliceIsSorted(rows, func(i, j int) bool {
		if rows[i] != rows[j] {
			return rows[i] < rows[j]
		}
		return cols[i] < cols[j]
	})
	require.True(t, ok, "entries must stay sorted by (row, col)")
}

func TestNewCooMatrixSortsEntries(t *testing.T) {
	// Deliberately unsorted input.
	m := coo(t, 3, 3,
		[]algebra.Real64{9, 1, 5},
		[]int{2, 0, 1},
		[]int{2, 0, 1})

	requireSorted(t, m)
	require.Equal(t, []int{0, 1, 2}, m.RowIndices())
	require.Equal(t, []algebra.Real64{1, 5, 9}, m.Values())
}

func TestNewCooMatrixRejectsBadInput(t *testing.T) {
	// Mismatched parallel arrays.
	_, err := sparse.NewCooMatrix(2, 2, []algebra.Real64{1}, []int{0, 1}, []int{0})
	require.ErrorIs(t, err, sparse.ErrInvalidStructure)

	// Index outside the shape.
	_, err = sparse.NewCooMatrix(2, 2, []algebra.Real64{1}, []int{2}, []int{0})
	require.ErrorIs(t, err, sparse.ErrIndexOutOfBounds)
}

func TestGetReturnsZeroForEmptyPosition(t *testing.T) {
	m := coo(t, 2, 2, []algebra.Real64{7}, []int{0}, []int{0})

	got, err := m.Get(1, 1) // empty position
	require.NoError(t, err)
	require.True(t, got.IsZero())

	_, err = m.Get(5, 0)
	require.ErrorIs(t, err, sparse.ErrIndexOutOfBounds)
}

func TestGetOnEmptyMatrixNeedsSeededZero(t *testing.T) {
	m := coo(t, 2, 2, nil, nil, nil)

	// No stored values, no way to derive the additive identity.
	_, err := m.Get(0, 0)
	require.ErrorIs(t, err, sparse.ErrUnknownZero)

	// Seeding the zero makes the same read succeed.
	m.SetZero(0)
	got, err := m.Get(0, 0)
	require.NoError(t, err)
	require.True(t, got.IsZero())
}

func TestSetSplicesKeepingOrder(t *testing.T) {
	m := coo(t, 3, 3, []algebra.Real64{1, 3}, []int{0, 2}, []int{0, 2})

	out, err := m.Set(2, 1, 1)
	require.NoError(t, err)
	requireSorted(t, out)
	require.Equal(t, 3, out.NNZ())

	got, err := out.Get(1, 1)
	require.NoError(t, err)
	require.Equal(t, algebra.Real64(2), got)

	// The receiver is untouched.
	require.Equal(t, 2, m.NNZ())
}

func TestAddUnionAndElemMultIntersection(t *testing.T) {
	a := coo(t, 2, 2, []algebra.Real64{2, 4}, []int{0, 1}, []int{0, 1})
	b := coo(t, 2, 2, []algebra.Real64{3}, []int{0}, []int{0})

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, []algebra.Real64{5, 4}, sum.Values()) // union of supports
	require.Equal(t, []int{0, 1}, sum.RowIndices())

	prod, err := a.ElemMult(b)
	require.NoError(t, err)
	require.Equal(t, []algebra.Real64{6}, prod.Values()) // intersection only
	require.Equal(t, []int{0}, prod.RowIndices())
	require.Equal(t, []int{0}, prod.ColIndices())
}

func TestAddIdentity(t *testing.T) {
	a := coo(t, 2, 2, []algebra.Real64{2, 4}, []int{0, 1}, []int{0, 1})
	empty := coo(t, 2, 2, nil, nil, nil)

	sum, err := a.Add(empty)
	require.NoError(t, err)
	require.True(t, sum.Equal(a)) // A + 0 == A
}

func TestAddShapeMismatch(t *testing.T) {
	a := coo(t, 2, 2, []algebra.Real64{1}, []int{0}, []int{0})
	b := coo(t, 2, 3, []algebra.Real64{1}, []int{0}, []int{0})

	_, err := a.Add(b)
	require.ErrorIs(t, err, sparse.ErrShapeMismatch)
}

func TestSubGatedOnSemiring(t *testing.T) {
	a, err := sparse.NewCooMatrix(2, 2, []algebra.Bool{true}, []int{0}, []int{0})
	require.NoError(t, err)
	b, err := sparse.NewCooMatrix(2, 2, []algebra.Bool{true}, []int{1}, []int{1})
	require.NoError(t, err)

	// Booleans form a semiring only; subtraction must refuse.
	_, err = a.Sub(b)
	require.ErrorIs(t, err, sparse.ErrUnsupported)
}

func TestDivScalarGatedOnField(t *testing.T) {
	m := coo(t, 2, 2, []algebra.Real64{2, 6}, []int{0, 1}, []int{0, 1})

	out, err := m.DivScalar(2)
	require.NoError(t, err)
	require.Equal(t, []algebra.Real64{1, 3}, out.Values())
	require.Equal(t, []algebra.Real64{2, 6}, m.Values()) // receiver untouched

	// Int64 is a ring without division.
	ints, err := sparse.NewCooMatrix(2, 2, []algebra.Int64{4}, []int{0}, []int{0})
	require.NoError(t, err)
	_, err = ints.DivScalar(2)
	require.ErrorIs(t, err, sparse.ErrUnsupported)

	// Bool is a bare semiring.
	bools, err := sparse.NewCooMatrix(2, 2, []algebra.Bool{true}, []int{0}, []int{0})
	require.NoError(t, err)
	_, err = bools.DivScalar(true)
	require.ErrorIs(t, err, sparse.ErrUnsupported)
}

func TestTransposeInvolution(t *testing.T) {
	m := coo(t, 2, 3, []algebra.Real64{1, 2, 3}, []int{0, 0, 1}, []int{1, 2, 0})

	tt := m.Transpose()
	require.Equal(t, 3, tt.Rows())
	require.Equal(t, 2, tt.Cols())
	requireSorted(t, tt)

	back := tt.Transpose()
	require.True(t, back.Equal(m)) // (Mᵀ)ᵀ == M
}

func TestRemoveRowShiftsLaterRows(t *testing.T) {
	m := coo(t, 3, 2, []algebra.Real64{1, 2, 3}, []int{0, 1, 2}, []int{0, 1, 0})

	out, err := m.RemoveRow(1)
	require.NoError(t, err)
	require.Equal(t, 2, out.Rows())
	// Row 2's entry shifts up into row 1.
	require.Equal(t, []int{0, 1}, out.RowIndices())
	require.Equal(t, []algebra.Real64{1, 3}, out.Values())

	_, err = m.RemoveRow(7)
	require.ErrorIs(t, err, sparse.ErrIndexOutOfBounds)
}

func TestRemoveColsPrefixShift(t *testing.T) {
	m := coo(t, 2, 5, []algebra.Real64{1, 2, 3, 4}, []int{0, 0, 1, 1}, []int{0, 2, 3, 4})

	out, err := m.RemoveCols(1, 3)
	require.NoError(t, err)
	require.Equal(t, 3, out.Cols())
	// Column 2 shifts to 1; column 4 shifts past two removals to 2.
	require.Equal(t, []int{0, 1, 2}, out.ColIndices())
	require.Equal(t, []algebra.Real64{1, 2, 4}, out.Values())
	requireSorted(t, out)
}

func TestReshapeKeepsFlatOrder(t *testing.T) {
	m := coo(t, 2, 3, []algebra.Real64{1, 2}, []int{0, 1}, []int{2, 0})

	out, err := m.Reshape(3, 2)
	require.NoError(t, err)
	requireSorted(t, out)

	// Flat positions 2 and 3 map to (1,0) and (1,1) under 2 columns.
	got, err := out.Get(1, 0)
	require.NoError(t, err)
	require.Equal(t, algebra.Real64(1), got)
	got, err = out.Get(1, 1)
	require.NoError(t, err)
	require.Equal(t, algebra.Real64(2), got)

	_, err = m.Reshape(4, 4)
	require.ErrorIs(t, err, sparse.ErrShapeMismatch)
}

func TestReshapeRejectsUnrepresentableTotal(t *testing.T) {
	// The virtual shape is fine, but its total element count does not
	// fit in an int, so flat-index remapping must refuse.
	m := coo(t, math.MaxInt, 4, []algebra.Real64{1}, []int{0}, []int{1})

	_, err := m.Reshape(4, math.MaxInt)
	require.ErrorIs(t, err, sparse.ErrShapeMismatch)
}

func TestCoalesceFoldsDuplicates(t *testing.T) {
	// The unchecked constructor admits duplicates directly.
	m := sparse.NewCooMatrixUnchecked(2, 2,
		[]algebra.Real64{1, 2, 5},
		[]int{0, 0, 1},
		[]int{0, 0, 1})

	out := m.Coalesce()
	require.Equal(t, 2, out.NNZ())
	require.Equal(t, []algebra.Real64{3, 5}, out.Values())
}

func TestDropZerosAndEqualNormalize(t *testing.T) {
	a := coo(t, 2, 2, []algebra.Real64{1, 0}, []int{0, 1}, []int{0, 1})
	b := coo(t, 2, 2, []algebra.Real64{1}, []int{0}, []int{0})

	require.Equal(t, 1, a.DropZeros().NNZ())
	require.True(t, a.Equal(b)) // explicit zero does not break equality
}

func TestSliceAndStack(t *testing.T) {
	m := coo(t, 3, 3, []algebra.Real64{1, 2, 3}, []int{0, 1, 2}, []int{0, 1, 2})

	sub, err := m.GetSlice(0, 2, 0, 2)
	require.NoError(t, err)
	require.Equal(t, 2, sub.Rows())
	require.Equal(t, 2, sub.NNZ()) // (2,2) falls outside the window

	v, err := m.VStack(m)
	require.NoError(t, err)
	require.Equal(t, 6, v.Rows())
	requireSorted(t, v)

	h, err := m.HStack(m)
	require.NoError(t, err)
	require.Equal(t, 6, h.Cols())
	requireSorted(t, h)
}

func TestTriangularExtraction(t *testing.T) {
	m := coo(t, 3, 3,
		[]algebra.Real64{1, 2, 3, 4},
		[]int{0, 1, 2, 2},
		[]int{2, 1, 0, 2})

	up := m.TriU(0)
	require.Equal(t, []algebra.Real64{1, 2, 4}, up.Values())

	low := m.TriL(0)
	require.Equal(t, []algebra.Real64{2, 3, 4}, low.Values())
}

func TestSwapRowsRestoresOrder(t *testing.T) {
	m := coo(t, 3, 2, []algebra.Real64{1, 2}, []int{0, 2}, []int{0, 1})

	_, err := m.SwapRowsInPlace(0, 2)
	require.NoError(t, err)
	requireSorted(t, m)

	got, err := m.Get(0, 1)
	require.NoError(t, err)
	require.Equal(t, algebra.Real64(2), got)
}

func TestIsSymmetric(t *testing.T) {
	m := coo(t, 2, 2, []algebra.Real64{1, 5, 5}, []int{0, 0, 1}, []int{0, 1, 0})
	require.True(t, m.IsSymmetric())

	n := coo(t, 2, 2, []algebra.Real64{5}, []int{0}, []int{1})
	require.False(t, n.IsSymmetric())
}
