package sparse

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/dense"
	"github.com/katalvlaran/lvlalg/shape"
)

// keep passes an entry through a merge unchanged.
func keep[T any](x T) (T, error) { return x, nil }

// addOf combines equal-keyed entries by semiring addition.
func addOf[T algebra.Semiring[T]](x, y T) (T, error) { return x.Add(y), nil }

// subOf combines equal-keyed entries by ring subtraction, failing with
// ErrUnsupported on semiring-only elements.
func subOf[T algebra.Semiring[T]](x, y T) (T, error) {
	d, ok := algebra.TrySub(x, y)
	if !ok {
		return d, fmt.Errorf("subtraction: %w", ErrUnsupported)
	}

	return d, nil
}

// negOf negates a right-only entry during subtraction.
func negOf[T algebra.Semiring[T]](y T) (T, error) {
	n, ok := algebra.TryNeg(y)
	if !ok {
		return n, fmt.Errorf("negation: %w", ErrUnsupported)
	}

	return n, nil
}

// mulOf combines equal-keyed entries by semiring multiplication.
func mulOf[T algebra.Semiring[T]](x, y T) (T, error) { return x.Mul(y), nil }

// divOf divides x by y via field division, failing with ErrUnsupported
// on non-field elements.
func divOf[T algebra.Semiring[T]](x, y T) (T, error) {
	q, ok := algebra.TryDiv(x, y)
	if !ok {
		return q, fmt.Errorf("division: %w", ErrUnsupported)
	}

	return q, nil
}

// Add returns m + other via a merge-join of the two sorted entry lists.
// Returns ErrShapeMismatch unless the shapes are identical.
func (m *CooMatrix[T]) Add(other *CooMatrix[T]) (*CooMatrix[T], error) {
	if !m.sh.Equal(other.sh) {
		return nil, fmt.Errorf("Add %s vs %s: %w", m.sh, other.sh, ErrShapeMismatch)
	}

	vals, rows, cols, err := mergePairs(
		m.vals, m.rowIdx, m.colIdx,
		other.vals, other.rowIdx, other.colIdx,
		addOf[T], keep[T], keep[T])
	if err != nil {
		return nil, err
	}

	return newCooResult(m.sh, vals, rows, cols, m.zero), nil
}

// Sub returns m - other. Entries present only in other are negated.
// Returns ErrUnsupported for semiring-only elements, ErrShapeMismatch
// unless the shapes are identical.
func (m *CooMatrix[T]) Sub(other *CooMatrix[T]) (*CooMatrix[T], error) {
	if !m.sh.Equal(other.sh) {
		return nil, fmt.Errorf("Sub %s vs %s: %w", m.sh, other.sh, ErrShapeMismatch)
	}

	vals, rows, cols, err := mergePairs(
		m.vals, m.rowIdx, m.colIdx,
		other.vals, other.rowIdx, other.colIdx,
		subOf[T], keep[T], negOf[T])
	if err != nil {
		return nil, err
	}

	return newCooResult(m.sh, vals, rows, cols, m.zero), nil
}

// ElemMult returns the Hadamard product of m and other. Only positions
// stored on both sides survive: the missing side is implicitly zero and
// zero annihilates products.
// Returns ErrShapeMismatch unless the shapes are identical.
func (m *CooMatrix[T]) ElemMult(other *CooMatrix[T]) (*CooMatrix[T], error) {
	if !m.sh.Equal(other.sh) {
		return nil, fmt.Errorf("ElemMult %s vs %s: %w", m.sh, other.sh, ErrShapeMismatch)
	}

	vals, rows, cols, err := mergePairs(
		m.vals, m.rowIdx, m.colIdx,
		other.vals, other.rowIdx, other.colIdx,
		mulOf[T], nil, nil)
	if err != nil {
		return nil, err
	}

	return newCooResult(m.sh, vals, rows, cols, m.zero), nil
}

// AddScalar returns m with s added to every stored entry. Implicit
// zeros are untouched — adding to them would densify the matrix; use
// ToDense first when that is the intent.
func (m *CooMatrix[T]) AddScalar(s T) *CooMatrix[T] {
	out := m.Clone()
	for i, v := range out.vals {
		out.vals[i] = v.Add(s)
	}

	return out
}

// MulScalar returns m with every stored entry multiplied by s.
func (m *CooMatrix[T]) MulScalar(s T) *CooMatrix[T] {
	out := m.Clone()
	for i, v := range out.vals {
		out.vals[i] = v.Mul(s)
	}

	return out
}

// DivScalar returns m with every stored entry divided by s. Implicit
// zeros stay zero, so only stored entries are touched.
// Returns ErrUnsupported for elements without field division.
func (m *CooMatrix[T]) DivScalar(s T) (*CooMatrix[T], error) {
	out := m.Clone()
	for i, v := range out.vals {
		q, err := divOf(v, s)
		if err != nil {
			return nil, err
		}
		out.vals[i] = q
	}

	return out, nil
}

// Transpose returns the matrix transpose. Swapping the index arrays
// breaks the row-major order, so the result is re-sorted — skipping
// that re-sort is the classic COO transpose bug.
func (m *CooMatrix[T]) Transpose() *CooMatrix[T] {
	vals := append([]T(nil), m.vals...)
	rows := append([]int(nil), m.colIdx...)
	cols := append([]int(nil), m.rowIdx...)
	sortPairs(rows, cols, vals)

	return newCooResult(shape.MustNew(m.Cols(), m.Rows()), vals, rows, cols, m.zero)
}

// HermTranspose returns the conjugate transpose.
// Returns ErrUnsupported for elements without conjugation.
func (m *CooMatrix[T]) HermTranspose() (*CooMatrix[T], error) {
	out := m.Transpose()
	for i, v := range out.vals {
		c, ok := algebra.TryConj(v)
		if !ok {
			return nil, fmt.Errorf("HermTranspose: %w", ErrUnsupported)
		}
		out.vals[i] = c
	}

	return out, nil
}

// Reshape returns the matrix with the same entries under a rows×cols
// shape covering the same total element count. Each entry's flat index
// is computed under the old shape and re-derived under the new one; the
// result is re-sorted defensively since column-count changes do not
// preserve the lexicographic order.
// Returns ErrShapeMismatch when the total counts differ.
func (m *CooMatrix[T]) Reshape(rows, cols int) (*CooMatrix[T], error) {
	newShape, err := shape.New(rows, cols)
	if err != nil {
		return nil, err
	}
	if !m.sh.SameTotal(newShape) {
		return nil, fmt.Errorf("Reshape %s to %s: %w", m.sh, newShape, ErrShapeMismatch)
	}
	// The remap goes through machine-int flat indices; a virtual shape
	// whose total exceeds int range cannot be remapped that way.
	if _, ok := m.sh.TotalSizeInt(); !ok {
		return nil, fmt.Errorf("Reshape %s: flat indices exceed int range: %w", m.sh, ErrShapeMismatch)
	}

	oldCols := m.Cols()
	vals := append([]T(nil), m.vals...)
	newRows := make([]int, len(m.rowIdx))
	newCols := make([]int, len(m.colIdx))

	for i := range m.rowIdx {
		flat := m.rowIdx[i]*oldCols + m.colIdx[i]
		newRows[i] = flat / cols
		newCols[i] = flat % cols
	}
	sortPairs(newRows, newCols, vals)

	return newCooResult(newShape, vals, newRows, newCols, m.zero), nil
}

// resolveZero picks the first known additive identity among the caches.
func resolveZero[T algebra.Semiring[T]](caches ...*T) (T, error) {
	for _, c := range caches {
		if c != nil {
			return *c, nil
		}
	}
	var none T

	return none, ErrUnknownZero
}

// Mul returns the matrix product m * other as a dense matrix — the
// right call when the product is expected to fill in.
// Returns ErrShapeMismatch on inner-dimension disagreement and
// ErrUnknownZero when no additive identity is resolvable to pre-fill
// the result.
func (m *CooMatrix[T]) Mul(other *CooMatrix[T]) (*dense.Matrix[T], error) {
	if m.Cols() != other.Rows() {
		return nil, fmt.Errorf("Mul inner dims %d vs %d: %w",
			m.Cols(), other.Rows(), ErrShapeMismatch)
	}
	zero, err := resolveZero(m.zero, other.zero)
	if err != nil {
		return nil, err
	}

	buf := cooMulDense(m.vals, m.rowIdx, m.colIdx,
		other.vals, other.rowIdx, other.colIdx,
		m.Rows(), other.Cols(), zero)

	return dense.NewFromSlice(m.Rows(), other.Cols(), buf)
}

// MulToSparse returns the matrix product m * other in COO form, using a
// sparse per-row accumulator. Potentially slower than Mul when the
// product is not actually sparse; the caller chooses based on the
// expected density.
// Returns ErrShapeMismatch on inner-dimension disagreement.
func (m *CooMatrix[T]) MulToSparse(other *CooMatrix[T]) (*CooMatrix[T], error) {
	if m.Cols() != other.Rows() {
		return nil, fmt.Errorf("MulToSparse inner dims %d vs %d: %w",
			m.Cols(), other.Rows(), ErrShapeMismatch)
	}

	vals, rows, cols := cooMulSparse(m.vals, m.rowIdx, m.colIdx,
		other.vals, other.rowIdx, other.colIdx)

	return newCooResult(shape.MustNew(m.Rows(), other.Cols()), vals, rows, cols, m.zero), nil
}

// MulVec returns m * x for a dense vector x of length Cols().
// Returns ErrShapeMismatch on a length disagreement and ErrUnknownZero
// when no additive identity is resolvable.
func (m *CooMatrix[T]) MulVec(x []T) ([]T, error) {
	if len(x) != m.Cols() {
		return nil, fmt.Errorf("MulVec length %d for %d columns: %w",
			len(x), m.Cols(), ErrShapeMismatch)
	}

	var zero T
	if len(x) > 0 {
		zero = x[0].Zero()
	} else {
		z, err := resolveZero(m.zero)
		if err != nil {
			return nil, err
		}
		zero = z
	}

	dst := make([]T, m.Rows())
	for i := range dst {
		dst[i] = zero
	}
	for i, v := range m.vals {
		dst[m.rowIdx[i]] = dst[m.rowIdx[i]].Add(v.Mul(x[m.colIdx[i]]))
	}

	return dst, nil
}
