package sparse_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/shape"
	"github.com/katalvlaran/lvlalg/sparse"
)

func tensor3(t *testing.T) *sparse.CooTensor[algebra.Real64] {
	t.Helper()
	ten, err := sparse.NewCooTensor(shape.MustNew(2, 3, 4),
		[]algebra.Real64{1, 2, 3},
		[][]int{{0, 0, 1}, {0, 2, 3}, {1, 1, 0}})
	require.NoError(t, err)

	return ten
}

func TestTensorGetSet(t *testing.T) {
	ten := tensor3(t)

	got, err := ten.Get(0, 2, 3)
	require.NoError(t, err)
	require.Equal(t, algebra.Real64(2), got)

	got, err = ten.Get(1, 2, 2) // empty position
	require.NoError(t, err)
	require.True(t, got.IsZero())

	_, err = ten.Get(0, 0) // wrong arity
	require.ErrorIs(t, err, sparse.ErrRankMismatch)

	_, err = ten.Get(0, 3, 0) // axis 1 extent is 3
	require.ErrorIs(t, err, sparse.ErrIndexOutOfBounds)

	out, err := ten.Set(9, 1, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 4, out.NNZ())
	got, err = out.Get(1, 0, 0)
	require.NoError(t, err)
	require.Equal(t, algebra.Real64(9), got)
	require.Equal(t, 3, ten.NNZ()) // receiver untouched
}

func TestTensorArithmetic(t *testing.T) {
	a := tensor3(t)
	b, err := sparse.NewCooTensor(shape.MustNew(2, 3, 4),
		[]algebra.Real64{10, 5},
		[][]int{{0, 0, 1}, {1, 2, 2}})
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, 4, sum.NNZ())
	got, err := sum.Get(0, 0, 1)
	require.NoError(t, err)
	require.Equal(t, algebra.Real64(11), got)

	prod, err := a.ElemMult(b)
	require.NoError(t, err)
	require.Equal(t, 1, prod.NNZ()) // only (0,0,1) is shared
	got, err = prod.Get(0, 0, 1)
	require.NoError(t, err)
	require.Equal(t, algebra.Real64(10), got)
}

func TestTensorTransposeAxes(t *testing.T) {
	ten := tensor3(t)

	out, err := ten.TransposeAxes(0, 2)
	require.NoError(t, err)
	require.Equal(t, []int{4, 3, 2}, out.Shape().Dims())

	// (0,2,3) moves to (3,2,0).
	got, err := out.Get(3, 2, 0)
	require.NoError(t, err)
	require.Equal(t, algebra.Real64(2), got)

	// Swapping back restores the original tensor.
	back, err := out.TransposeAxes(0, 2)
	require.NoError(t, err)
	require.True(t, back.Equal(ten))

	_, err = ten.TransposeAxes(0, 5)
	require.ErrorIs(t, err, sparse.ErrIndexOutOfBounds)
}

func TestTensorReshapeFlatten(t *testing.T) {
	ten := tensor3(t)

	flat, err := ten.Flatten()
	require.NoError(t, err)
	require.Equal(t, 1, flat.Rank())

	// (0,2,3) flattens to 0*12 + 2*4 + 3 = 11.
	got, err := flat.Get(11)
	require.NoError(t, err)
	require.Equal(t, algebra.Real64(2), got)

	// A full round trip through another shape preserves the tensor.
	other, err := ten.Reshape(shape.MustNew(4, 6))
	require.NoError(t, err)
	back, err := other.Reshape(shape.MustNew(2, 3, 4))
	require.NoError(t, err)
	require.True(t, back.Equal(ten))

	_, err = ten.Reshape(shape.MustNew(5, 5))
	require.ErrorIs(t, err, sparse.ErrShapeMismatch)
}

func TestTensorToDense(t *testing.T) {
	ten, err := sparse.NewCooTensor(shape.MustNew(2, 2, 2),
		[]algebra.Real64{5, 7},
		[][]int{{0, 1, 0}, {1, 0, 1}})
	require.NoError(t, err)

	got, err := ten.ToDense()
	require.NoError(t, err)
	// (0,1,0) flattens to 2, (1,0,1) to 5 under strides (4,2,1).
	require.Equal(t, []algebra.Real64{0, 0, 5, 0, 0, 7, 0, 0}, got)

	// An empty tensor with no seeded zero cannot densify.
	empty, err := sparse.NewCooTensor[algebra.Real64](shape.MustNew(2, 2), nil, nil)
	require.NoError(t, err)
	_, err = empty.ToDense()
	require.ErrorIs(t, err, sparse.ErrUnknownZero)
	empty.SetZero(0)
	_, err = empty.ToDense()
	require.NoError(t, err)
}

func TestTensorReshapeRejectsUnrepresentableTotal(t *testing.T) {
	ten, err := sparse.NewCooTensor(shape.MustNew(math.MaxInt, 4),
		[]algebra.Real64{1},
		[][]int{{0, 1}})
	require.NoError(t, err)

	_, err = ten.Reshape(shape.MustNew(4, math.MaxInt))
	require.ErrorIs(t, err, sparse.ErrShapeMismatch)
	_, err = ten.Flatten()
	require.ErrorIs(t, err, sparse.ErrShapeMismatch)
}

func TestTensorMatrixVectorBridges(t *testing.T) {
	ten, err := sparse.NewCooTensor(shape.MustNew(2, 2),
		[]algebra.Real64{1, 2},
		[][]int{{0, 1}, {1, 0}})
	require.NoError(t, err)

	m, err := ten.ToMatrix()
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, m.RowIndices())
	require.Equal(t, []int{1, 0}, m.ColIndices())

	// Lifting back round-trips.
	require.True(t, m.ToTensor().Equal(ten))

	// Rank gates.
	_, err = tensor3(t).ToMatrix()
	require.ErrorIs(t, err, sparse.ErrRankMismatch)
	_, err = ten.ToVector()
	require.ErrorIs(t, err, sparse.ErrRankMismatch)

	flat, err := ten.Flatten()
	require.NoError(t, err)
	v, err := flat.ToVector()
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, v.Indices())
}
