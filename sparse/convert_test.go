package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/dense"
	"github.com/katalvlaran/lvlalg/sparse"
)

func TestCooCsrRoundTrip(t *testing.T) {
	m := coo(t, 3, 4,
		[]algebra.Real64{1, 2, 3, 4},
		[]int{0, 0, 2, 2},
		[]int{1, 3, 0, 2})

	csr := m.ToCsr()
	require.Equal(t, []int{0, 2, 2, 4}, csr.RowPointers())
	require.Equal(t, m.ColIndices(), csr.ColIndices())
	require.Equal(t, m.Values(), csr.Values())

	back := csr.ToCoo()
	require.True(t, back.Equal(m))
}

func TestConversionConservesDensity(t *testing.T) {
	m := coo(t, 4, 5, []algebra.Real64{1, 2, 3}, []int{0, 1, 3}, []int{4, 2, 0})

	require.InDelta(t, 3.0/20.0, m.Density(), 1e-15)
	require.InDelta(t, m.Density(), m.ToCsr().Density(), 1e-15)
	require.InDelta(t, 1-m.Density(), m.Sparsity(), 1e-15)
}

func TestCooToDense(t *testing.T) {
	m := coo(t, 2, 2, []algebra.Real64{1, 2}, []int{0, 1}, []int{1, 0})

	d, err := m.ToDense()
	require.NoError(t, err)
	got, err := d.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, algebra.Real64(1), got)
	got, err = d.At(0, 0)
	require.NoError(t, err)
	require.True(t, got.IsZero())

	// Empty matrix without a seeded zero cannot densify.
	empty := coo(t, 2, 2, nil, nil, nil)
	_, err = empty.ToDense()
	require.ErrorIs(t, err, sparse.ErrUnknownZero)
	empty.SetZero(0)
	_, err = empty.ToDense()
	require.NoError(t, err)
}

func TestCsrToDense(t *testing.T) {
	m := csrDiag3(t)

	d, err := m.ToDense()
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		got, err := d.At(i, i)
		require.NoError(t, err)
		require.Equal(t, algebra.Real64(i+1), got)
	}
}

func TestFromDenseExtractsNonZeros(t *testing.T) {
	d, err := dense.NewFromSlice(2, 3, []algebra.Real64{0, 5, 0, 7, 0, 0})
	require.NoError(t, err)

	m := sparse.FromDense(d, sparse.FromDenseOptions{EstimatedSparsity: 0.5})
	require.Equal(t, 2, m.NNZ())
	require.Equal(t, []int{0, 1}, m.RowIndices())
	require.Equal(t, []int{1, 0}, m.ColIndices())

	// The round trip back to dense restores the original.
	back, err := m.ToDense()
	require.NoError(t, err)
	require.True(t, back.Equal(d))
}

func TestFromDenseAllZerosKeepsZeroCache(t *testing.T) {
	d, err := dense.NewFromSlice(2, 2, []algebra.Real64{0, 0, 0, 0})
	require.NoError(t, err)

	m := sparse.FromDense(d, sparse.FromDenseOptions{})
	require.Equal(t, 0, m.NNZ())

	// The zero was seeded from the dense elements despite zero nnz.
	z, err := m.ZeroElem()
	require.NoError(t, err)
	require.True(t, z.IsZero())
}

func TestVectorFromDense(t *testing.T) {
	v := sparse.VectorFromDense([]algebra.Real64{0, 3, 0, 4})
	require.Equal(t, []int{1, 3}, v.Indices())
	require.Equal(t, []algebra.Real64{3, 4}, v.Values())

	got, err := v.ToDense()
	require.NoError(t, err)
	require.Equal(t, []algebra.Real64{0, 3, 0, 4}, got)
}

func TestTensorBridgeRoundTrip(t *testing.T) {
	m := coo(t, 2, 3, []algebra.Real64{1, 2}, []int{0, 1}, []int{2, 0})

	ten := m.ToTensor()
	back, err := ten.ToMatrix()
	require.NoError(t, err)
	require.True(t, back.Equal(m))
}
