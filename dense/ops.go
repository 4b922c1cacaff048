package dense

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/algebra"
)

// Add returns m + other element-wise.
// Returns ErrShapeMismatch when the shapes differ.
func (m *Matrix[T]) Add(other *Matrix[T]) (*Matrix[T], error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, fmt.Errorf("Add %dx%d vs %dx%d: %w",
			m.rows, m.cols, other.rows, other.cols, ErrShapeMismatch)
	}

	out := m.Clone()
	for i, v := range other.data {
		out.data[i] = out.data[i].Add(v)
	}

	return out, nil
}

// Sub returns m - other element-wise.
// Returns ErrUnsupported when T is a bare semiring, ErrShapeMismatch
// when the shapes differ.
func (m *Matrix[T]) Sub(other *Matrix[T]) (*Matrix[T], error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, fmt.Errorf("Sub %dx%d vs %dx%d: %w",
			m.rows, m.cols, other.rows, other.cols, ErrShapeMismatch)
	}

	out := m.Clone()
	for i, v := range other.data {
		d, ok := algebra.TrySub(out.data[i], v)
		if !ok {
			return nil, fmt.Errorf("Sub: %w", ErrUnsupported)
		}
		out.data[i] = d
	}

	return out, nil
}

// ElemMult returns the Hadamard (element-wise) product of m and other.
// Returns ErrShapeMismatch when the shapes differ.
func (m *Matrix[T]) ElemMult(other *Matrix[T]) (*Matrix[T], error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, fmt.Errorf("ElemMult %dx%d vs %dx%d: %w",
			m.rows, m.cols, other.rows, other.cols, ErrShapeMismatch)
	}

	out := m.Clone()
	for i, v := range other.data {
		out.data[i] = out.data[i].Mul(v)
	}

	return out, nil
}

// Scale returns m with every cell multiplied by s.
func (m *Matrix[T]) Scale(s T) *Matrix[T] {
	out := m.Clone()
	for i, v := range out.data {
		out.data[i] = v.Mul(s)
	}

	return out
}

// Transpose returns a fresh cols×rows transpose of m.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	out := &Matrix[T]{rows: m.cols, cols: m.rows, data: make([]T, len(m.data))}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j*out.cols+i] = m.data[i*m.cols+j]
		}
	}

	return out
}

// Mul returns the matrix product m * other.
// Returns ErrShapeMismatch when m.Cols() != other.Rows().
func (m *Matrix[T]) Mul(other *Matrix[T]) (*Matrix[T], error) {
	if m.cols != other.rows {
		return nil, fmt.Errorf("Mul inner dims %d vs %d: %w",
			m.cols, other.rows, ErrShapeMismatch)
	}

	out, err := New[T](m.rows, other.cols)
	if err != nil {
		return nil, err
	}

	// ikj loop order: stream other's rows for locality.
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			v := m.data[i*m.cols+k]
			if v.IsZero() {
				continue
			}
			for j := 0; j < other.cols; j++ {
				pos := i*out.cols + j
				out.data[pos] = out.data[pos].Add(v.Mul(other.data[k*other.cols+j]))
			}
		}
	}

	return out, nil
}

// TensorDot contracts m's columns against other's rows — for matrices
// this is exactly Mul, exposed under the tensor-capability name the
// sparse engines program against.
func (m *Matrix[T]) TensorDot(other *Matrix[T]) (*Matrix[T], error) {
	return m.Mul(other)
}
