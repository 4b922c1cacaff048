// Package shape_test exercises the Shape codec: construction rules,
// flat/multi index round trips and the overflow-safe total size.
package shape_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/lvlalg/shape"
	"github.com/stretchr/testify/require"
)

// TestNewRejectsNegativeExtent ensures negative extents are refused.
func TestNewRejectsNegativeExtent(t *testing.T) {
	_, err := shape.New(3, -1)
	require.ErrorIs(t, err, shape.ErrInvalidShape)
}

// TestBasicAccessors verifies rank, extents and strides.
func TestBasicAccessors(t *testing.T) {
	s := shape.MustNew(2, 3, 4)

	require.Equal(t, 3, s.Rank())
	require.Equal(t, []int{2, 3, 4}, s.Dims())
	require.Equal(t, []int{12, 4, 1}, s.Strides()) // row-major, last axis fastest
	require.Equal(t, 4, s.Dim(2))
	require.Equal(t, "(2, 3, 4)", s.String())
}

// TestFlatIndexRoundTrip checks FlatIndex and MultiIndex invert each other.
func TestFlatIndexRoundTrip(t *testing.T) {
	s := shape.MustNew(2, 3, 4)

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				flat, err := s.FlatIndex(i, j, k)
				require.NoError(t, err)
				require.Equal(t, i*12+j*4+k, flat)

				multi, err := s.MultiIndex(flat)
				require.NoError(t, err)
				require.Equal(t, []int{i, j, k}, multi)
			}
		}
	}
}

// TestFlatIndexErrors verifies rank and bounds checking.
func TestFlatIndexErrors(t *testing.T) {
	s := shape.MustNew(2, 3)

	_, err := s.FlatIndex(1) // too few coordinates
	require.ErrorIs(t, err, shape.ErrRankMismatch)

	_, err = s.FlatIndex(2, 0) // row out of range
	require.ErrorIs(t, err, shape.ErrIndexOutOfBounds)

	_, err = s.FlatIndex(0, -1) // negative column
	require.ErrorIs(t, err, shape.ErrIndexOutOfBounds)

	_, err = s.MultiIndex(6) // flat == total
	require.ErrorIs(t, err, shape.ErrIndexOutOfBounds)
}

// TestTotalSizeBig ensures huge virtual shapes do not overflow.
func TestTotalSizeBig(t *testing.T) {
	s := shape.MustNew(1 << 31, 1 << 31, 1 << 31)

	want := new(big.Int).Lsh(big.NewInt(1), 93) // (2^31)^3
	require.Zero(t, want.Cmp(s.TotalSize()))

	_, ok := s.TotalSizeInt()
	require.False(t, ok) // does not fit an int

	small := shape.MustNew(6, 7)
	n, ok := small.TotalSizeInt()
	require.True(t, ok)
	require.Equal(t, 42, n)
}

// TestEqualAndSameTotal verifies shape comparison and reshape compatibility.
func TestEqualAndSameTotal(t *testing.T) {
	a := shape.MustNew(4, 6)
	b := shape.MustNew(4, 6)
	c := shape.MustNew(3, 8)
	d := shape.MustNew(5, 5)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.True(t, a.SameTotal(c)) // 24 == 24: reshape legal
	require.False(t, a.SameTotal(d))
}

// TestZeroExtent allows empty axes: total size zero, no valid indices.
func TestZeroExtent(t *testing.T) {
	s := shape.MustNew(0, 5)

	n, ok := s.TotalSizeInt()
	require.True(t, ok)
	require.Zero(t, n)

	_, err := s.MultiIndex(0)
	require.ErrorIs(t, err, shape.ErrIndexOutOfBounds)
}
