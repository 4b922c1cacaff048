package dense

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/shape"
)

// Matrix is a row-major dense matrix over a semiring element type.
// The flat buffer has length rows*cols with offset = i*cols + j.
type Matrix[T algebra.Semiring[T]] struct {
	rows, cols int
	data       []T
}

// New creates a rows×cols matrix filled with T's Go zero value.
// For every element type shipped in algebra, the Go zero value is the
// additive identity; element types for which that does not hold must be
// constructed via NewFilled with an explicit zero.
// Returns ErrInvalidDimensions on negative dimensions.
func New[T algebra.Semiring[T]](rows, cols int) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// NewFilled creates a rows×cols matrix with every cell set to fill.
func NewFilled[T algebra.Semiring[T]](rows, cols int, fill T) (*Matrix[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = fill
	}

	return m, nil
}

// NewFromSlice wraps data (copied) as a rows×cols matrix.
// Returns ErrShapeMismatch when len(data) != rows*cols.
func NewFromSlice[T algebra.Semiring[T]](rows, cols int, data []T) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewFromSlice(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewFromSlice: have %d values for %d cells: %w",
			len(data), rows*cols, ErrShapeMismatch)
	}

	return &Matrix[T]{rows: rows, cols: cols, data: append([]T(nil), data...)}, nil
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// Shape returns the matrix's shape.
func (m *Matrix[T]) Shape() shape.Shape { return shape.MustNew(m.rows, m.cols) }

// Data returns a copy of the flat row-major buffer.
func (m *Matrix[T]) Data() []T { return append([]T(nil), m.data...) }

// At returns the element at (i, j).
// Returns ErrIndexOutOfBounds on an invalid position.
func (m *Matrix[T]) At(i, j int) (T, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		var none T
		return none, fmt.Errorf("At(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}

	return m.data[i*m.cols+j], nil
}

// Set assigns v at (i, j).
// Returns ErrIndexOutOfBounds on an invalid position.
func (m *Matrix[T]) Set(i, j int, v T) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return fmt.Errorf("Set(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}
	m.data[i*m.cols+j] = v

	return nil
}

// Clone returns a deep copy sharing no storage with m.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{rows: m.rows, cols: m.cols, data: append([]T(nil), m.data...)}
}

// Equal reports element-wise equality via T.Eq.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, v := range m.data {
		if !v.Eq(other.data[i]) {
			return false
		}
	}

	return true
}

// NNZ counts the cells that are not the additive identity.
func (m *Matrix[T]) NNZ() int {
	n := 0
	for _, v := range m.data {
		if !v.IsZero() {
			n++
		}
	}

	return n
}

// String renders the matrix one bracketed row per line.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteString("[")
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.data[i*m.cols+j].String())
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
