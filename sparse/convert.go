package sparse

import (
	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/dense"
)

// Format conversions. All conversions copy; none of the returned
// structures alias the source arrays.

// ToCsr converts the COO matrix to CSR by a counting pass and prefix
// sum, in O(nnz + rows). The entry list is already row-major sorted,
// so the values and column indices carry over verbatim.
func (m *CooMatrix[T]) ToCsr() *CsrMatrix[T] {
	rows := m.Rows()

	ptrs := make([]int, rows+1)
	for _, r := range m.rowIdx {
		ptrs[r+1]++
	}
	for r := 0; r < rows; r++ {
		ptrs[r+1] += ptrs[r]
	}

	return newCsrResult(m.sh,
		append([]T(nil), m.vals...),
		ptrs,
		append([]int(nil), m.colIdx...),
		m.zero)
}

// ToCoo converts the CSR matrix to COO by expanding the row pointers.
// The result is sorted by construction.
func (m *CsrMatrix[T]) ToCoo() *CooMatrix[T] {
	return newCooResult(m.sh,
		append([]T(nil), m.vals...),
		m.RowIndices(),
		append([]int(nil), m.colIdx...),
		m.zero)
}

// ToTensor lifts the COO matrix into its rank-2 tensor form.
func (m *CooMatrix[T]) ToTensor() *CooTensor[T] {
	return TensorFromMatrix(m)
}

// ToDense scatters the stored entries into a dense matrix pre-filled
// with the additive identity.
// Returns ErrUnknownZero when no zero element is known.
func (m *CooMatrix[T]) ToDense() (*dense.Matrix[T], error) {
	zero, err := resolveZero(m.zero)
	if err != nil {
		return nil, err
	}

	buf := make([]T, m.Rows()*m.Cols())
	for i := range buf {
		buf[i] = zero
	}
	cols := m.Cols()
	for i, v := range m.vals {
		buf[m.rowIdx[i]*cols+m.colIdx[i]] = v
	}

	return dense.NewFromSlice(m.Rows(), m.Cols(), buf)
}

// ToDense scatters the stored entries into a dense matrix pre-filled
// with the additive identity.
// Returns ErrUnknownZero when no zero element is known.
func (m *CsrMatrix[T]) ToDense() (*dense.Matrix[T], error) {
	zero, err := resolveZero(m.zero)
	if err != nil {
		return nil, err
	}

	cols := m.Cols()
	buf := make([]T, m.Rows()*cols)
	for i := range buf {
		buf[i] = zero
	}
	for r := 0; r+1 < len(m.rowPtrs); r++ {
		for p := m.rowPtrs[r]; p < m.rowPtrs[r+1]; p++ {
			buf[r*cols+m.colIdx[p]] = m.vals[p]
		}
	}

	return dense.NewFromSlice(m.Rows(), cols, buf)
}

// FromDenseOptions tunes dense-to-sparse extraction.
type FromDenseOptions struct {
	// EstimatedSparsity pre-sizes the entry arrays as a fraction of the
	// total element count in [0, 1]. Zero means no pre-sizing.
	EstimatedSparsity float64
}

// FromDense extracts the non-zero entries of a dense matrix into COO
// form, scanning in row-major order so the result is sorted by
// construction. The zero cache is seeded from the dense elements even
// when every element is zero.
func FromDense[T algebra.Semiring[T]](d *dense.Matrix[T], opts FromDenseOptions) *CooMatrix[T] {
	rows, cols := d.Rows(), d.Cols()

	capHint := 0
	if opts.EstimatedSparsity > 0 && opts.EstimatedSparsity <= 1 {
		capHint = int(opts.EstimatedSparsity * float64(rows*cols))
	}
	vals := make([]T, 0, capHint)
	rowIdx := make([]int, 0, capHint)
	colIdx := make([]int, 0, capHint)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			e, _ := d.At(r, c)
			if e.IsZero() {
				continue
			}
			vals = append(vals, e)
			rowIdx = append(rowIdx, r)
			colIdx = append(colIdx, c)
		}
	}

	out := newCooResult(d.Shape(), vals, rowIdx, colIdx, nil)
	if out.zero == nil && rows > 0 && cols > 0 {
		e, _ := d.At(0, 0)
		z := e.Zero()
		out.zero = &z
	}

	return out
}

// VectorFromDense extracts the non-zero entries of a dense slice into a
// sparse vector.
func VectorFromDense[T algebra.Semiring[T]](x []T) *CooVector[T] {
	var vals []T
	var idx []int
	for i, e := range x {
		if e.IsZero() {
			continue
		}
		vals = append(vals, e)
		idx = append(idx, i)
	}

	out := newCooVecResult(len(x), vals, idx, nil)
	if out.zero == nil && len(x) > 0 {
		z := x[0].Zero()
		out.zero = &z
	}

	return out
}

// Density returns the stored-entry fraction nnz / (rows * cols).
func (m *CooMatrix[T]) Density() float64 {
	total := m.Rows() * m.Cols()
	if total == 0 {
		return 0
	}

	return float64(len(m.vals)) / float64(total)
}

// Density returns the stored-entry fraction nnz / (rows * cols).
func (m *CsrMatrix[T]) Density() float64 {
	total := m.Rows() * m.Cols()
	if total == 0 {
		return 0
	}

	return float64(len(m.vals)) / float64(total)
}

// Sparsity returns 1 - Density.
func (m *CooMatrix[T]) Sparsity() float64 { return 1 - m.Density() }

// Sparsity returns 1 - Density.
func (m *CsrMatrix[T]) Sparsity() float64 { return 1 - m.Density() }
