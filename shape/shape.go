package shape

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Shape is an immutable ordered sequence of non-negative dimension
// extents. The zero value is the rank-0 scalar shape. Shapes are cheap
// to copy; the backing slices are never exposed directly.
type Shape struct {
	dims    []int
	strides []int
	total   *big.Int
}

// New builds a Shape from the given extents.
// Returns ErrInvalidShape if any extent is negative.
func New(dims ...int) (Shape, error) {
	for _, d := range dims {
		if d < 0 {
			return Shape{}, fmt.Errorf("extent %d: %w", d, ErrInvalidShape)
		}
	}

	s := Shape{
		dims:    append([]int(nil), dims...),
		strides: make([]int, len(dims)),
		total:   big.NewInt(1),
	}

	// Row-major strides: last axis fastest.
	for i := len(dims) - 1; i >= 0; i-- {
		if i == len(dims)-1 {
			s.strides[i] = 1
		} else {
			s.strides[i] = s.strides[i+1] * dims[i+1]
		}
		s.total.Mul(s.total, big.NewInt(int64(dims[i])))
	}

	return s, nil
}

// MustNew is New for extents known valid at compile time.
// Panics on a negative extent; intended for tests and literals.
func MustNew(dims ...int) Shape {
	s, err := New(dims...)
	if err != nil {
		panic(err)
	}

	return s
}

// Rank returns the number of axes.
func (s Shape) Rank() int { return len(s.dims) }

// Dim returns the extent of axis i.
// Panics on an invalid axis: axis arithmetic is programmer-controlled,
// unlike element indices which flow from user data.
func (s Shape) Dim(i int) int {
	if i < 0 || i >= len(s.dims) {
		panic(fmt.Sprintf("shape: axis %d out of range for rank %d", i, len(s.dims)))
	}

	return s.dims[i]
}

// Dims returns a copy of the extents.
func (s Shape) Dims() []int { return append([]int(nil), s.dims...) }

// Strides returns a copy of the row-major strides.
func (s Shape) Strides() []int { return append([]int(nil), s.strides...) }

// TotalSize returns the total element count as a fresh *big.Int.
func (s Shape) TotalSize() *big.Int {
	if s.total == nil {
		return big.NewInt(1) // zero-value scalar shape
	}

	return new(big.Int).Set(s.total)
}

// TotalSizeInt returns the total element count as an int, with ok=false
// when the count does not fit.
func (s Shape) TotalSizeInt() (int, bool) {
	t := s.TotalSize()
	if !t.IsInt64() || t.Int64() > int64(math.MaxInt) {
		return 0, false
	}

	return int(t.Int64()), true
}

// Equal reports whether the two shapes have identical extents.
func (s Shape) Equal(other Shape) bool {
	if len(s.dims) != len(other.dims) {
		return false
	}
	for i, d := range s.dims {
		if d != other.dims[i] {
			return false
		}
	}

	return true
}

// SameTotal reports whether both shapes cover the same element count,
// i.e. whether a reshape between them is legal.
func (s Shape) SameTotal(other Shape) bool {
	return s.TotalSize().Cmp(other.TotalSize()) == 0
}

// FlatIndex maps a multi-index to its row-major flat position.
// Returns ErrRankMismatch on wrong arity, ErrIndexOutOfBounds when any
// coordinate is outside its extent.
func (s Shape) FlatIndex(multi ...int) (int, error) {
	if len(multi) != len(s.dims) {
		return 0, fmt.Errorf("got %d coordinates for rank %d: %w",
			len(multi), len(s.dims), ErrRankMismatch)
	}

	flat := 0
	for i, m := range multi {
		if m < 0 || m >= s.dims[i] {
			return 0, fmt.Errorf("coordinate %d on axis %d (extent %d): %w",
				m, i, s.dims[i], ErrIndexOutOfBounds)
		}
		flat += m * s.strides[i]
	}

	return flat, nil
}

// MultiIndex maps a row-major flat position back to its multi-index.
// Returns ErrIndexOutOfBounds when flat is outside [0, TotalSize).
func (s Shape) MultiIndex(flat int) ([]int, error) {
	total, ok := s.TotalSizeInt()
	if !ok || flat < 0 || flat >= total {
		return nil, fmt.Errorf("flat index %d: %w", flat, ErrIndexOutOfBounds)
	}

	multi := make([]int, len(s.dims))
	for i, stride := range s.strides {
		multi[i] = flat / stride
		flat %= stride
	}

	return multi, nil
}

// String renders the shape as "(d0, d1, ...)".
func (s Shape) String() string {
	parts := make([]string, len(s.dims))
	for i, d := range s.dims {
		parts[i] = fmt.Sprint(d)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
