package sparse

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/shape"
)

// CsrMatrix is a rank-2 compressed-sparse-row matrix: rowPtrs holds
// numRows+1 offsets into the parallel vals/colIdx arrays, so row r's
// entries live in [rowPtrs[r], rowPtrs[r+1]) with columns ascending.
// The layout trades COO's cheap construction for O(log nnz(row)) access
// and cache-friendly row iteration; convert back to COO for structural
// edits done in bulk.
type CsrMatrix[T algebra.Semiring[T]] struct {
	sh      shape.Shape
	vals    []T
	rowPtrs []int
	colIdx  []int
	zero    *T // lazily derived additive identity; nil until known
}

// NewCsrMatrix builds a rows×cols CSR matrix from its three arrays.
// The arrays are copied, validated and each row's columns sorted.
// Returns ErrInvalidStructure on malformed pointers,
// ErrIndexOutOfBounds on out-of-range columns.
func NewCsrMatrix[T algebra.Semiring[T]](rows, cols int, vals []T, rowPtrs, colIdx []int) (*CsrMatrix[T], error) {
	sh, err := shape.New(rows, cols)
	if err != nil {
		return nil, err
	}
	if err = validateCsr(sh, len(vals), rowPtrs, colIdx); err != nil {
		return nil, err
	}

	m := &CsrMatrix[T]{
		sh:      sh,
		vals:    append([]T(nil), vals...),
		rowPtrs: append([]int(nil), rowPtrs...),
		colIdx:  append([]int(nil), colIdx...),
	}
	sortCsrRows(m.rowPtrs, m.colIdx, m.vals)
	m.zero = derivedZero(m.vals, nil)

	return m, nil
}

// NewCsrMatrixUnchecked wraps the given arrays without copying,
// validating or sorting; the CSR invariants must already hold.
func NewCsrMatrixUnchecked[T algebra.Semiring[T]](rows, cols int, vals []T, rowPtrs, colIdx []int) *CsrMatrix[T] {
	m := &CsrMatrix[T]{
		sh:      shape.MustNew(rows, cols),
		vals:    vals,
		rowPtrs: rowPtrs,
		colIdx:  colIdx,
	}
	m.zero = derivedZero(m.vals, nil)

	return m
}

// newCsrResult assembles an operation result, inheriting the zero cache.
func newCsrResult[T algebra.Semiring[T]](sh shape.Shape, vals []T, rowPtrs, colIdx []int, inherited *T) *CsrMatrix[T] {
	return &CsrMatrix[T]{
		sh:      sh,
		vals:    vals,
		rowPtrs: rowPtrs,
		colIdx:  colIdx,
		zero:    derivedZero(vals, inherited),
	}
}

// Shape returns the matrix shape.
func (m *CsrMatrix[T]) Shape() shape.Shape { return m.sh }

// Rows returns the number of rows.
func (m *CsrMatrix[T]) Rows() int { return m.sh.Dim(0) }

// Cols returns the number of columns.
func (m *CsrMatrix[T]) Cols() int { return m.sh.Dim(1) }

// NNZ returns the number of stored entries.
func (m *CsrMatrix[T]) NNZ() int { return len(m.vals) }

// Values returns a copy of the stored values in row-major order.
func (m *CsrMatrix[T]) Values() []T { return append([]T(nil), m.vals...) }

// RowPointers returns a copy of the row-pointer array.
func (m *CsrMatrix[T]) RowPointers() []int { return append([]int(nil), m.rowPtrs...) }

// ColIndices returns a copy of the column-index array.
func (m *CsrMatrix[T]) ColIndices() []int { return append([]int(nil), m.colIdx...) }

// RowIndices expands the row pointers into one row index per stored
// entry, the COO view of the row structure.
func (m *CsrMatrix[T]) RowIndices() []int {
	out := make([]int, len(m.vals))
	for r := 0; r+1 < len(m.rowPtrs); r++ {
		for p := m.rowPtrs[r]; p < m.rowPtrs[r+1]; p++ {
			out[p] = r
		}
	}

	return out
}

// SetZero seeds the additive-identity cache. Needed only for matrices
// constructed with no stored values, whose zero cannot be inferred.
// Single-writer: seed before sharing the matrix across goroutines.
func (m *CsrMatrix[T]) SetZero(z T) { m.zero = &z }

// ZeroElem returns the cached additive identity.
// Returns ErrUnknownZero when it was never derived nor seeded.
func (m *CsrMatrix[T]) ZeroElem() (T, error) {
	if m.zero == nil {
		var none T
		return none, ErrUnknownZero
	}

	return *m.zero, nil
}

// Clone returns a deep copy sharing no storage with m.
func (m *CsrMatrix[T]) Clone() *CsrMatrix[T] {
	return newCsrResult(m.sh,
		append([]T(nil), m.vals...),
		append([]int(nil), m.rowPtrs...),
		append([]int(nil), m.colIdx...),
		m.zero)
}

// Get returns the value stored at (row, col), or the additive identity
// when the position holds no entry. The lookup is a binary search over
// the row's sorted column slice.
// Returns ErrIndexOutOfBounds outside the shape and ErrUnknownZero when
// the position is empty and no zero element is known.
func (m *CsrMatrix[T]) Get(row, col int) (T, error) {
	var none T
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Cols() {
		return none, fmt.Errorf("Get(%d,%d) on %s: %w", row, col, m.sh, ErrIndexOutOfBounds)
	}

	start, end := m.rowPtrs[row], m.rowPtrs[row+1]
	p := start + sort.SearchInts(m.colIdx[start:end], col)
	if p < end && m.colIdx[p] == col {
		return m.vals[p], nil
	}

	return m.ZeroElem()
}

// Set returns a new matrix with v stored at (row, col). An existing
// entry is overwritten; a new entry is spliced into the row and every
// later row pointer shifts up by one.
// Returns ErrIndexOutOfBounds outside the shape.
func (m *CsrMatrix[T]) Set(v T, row, col int) (*CsrMatrix[T], error) {
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Cols() {
		return nil, fmt.Errorf("Set(%d,%d) on %s: %w", row, col, m.sh, ErrIndexOutOfBounds)
	}

	start, end := m.rowPtrs[row], m.rowPtrs[row+1]
	p := start + sort.SearchInts(m.colIdx[start:end], col)
	if p < end && m.colIdx[p] == col {
		out := m.Clone()
		out.vals[p] = v

		return out, nil
	}

	nnz := len(m.vals)
	vals := make([]T, nnz+1)
	cols := make([]int, nnz+1)
	copy(vals, m.vals[:p])
	copy(cols, m.colIdx[:p])
	vals[p], cols[p] = v, col
	copy(vals[p+1:], m.vals[p:])
	copy(cols[p+1:], m.colIdx[p:])

	ptrs := append([]int(nil), m.rowPtrs...)
	for r := row + 1; r < len(ptrs); r++ {
		ptrs[r]++
	}

	return newCsrResult(m.sh, vals, ptrs, cols, m.zero), nil
}

// Equal reports whether m and other represent the same matrix,
// tolerating explicitly stored zeros on either side: the row walk
// advances past zero entries that the other operand does not store.
func (m *CsrMatrix[T]) Equal(other *CsrMatrix[T]) bool {
	if !m.sh.Equal(other.sh) {
		return false
	}

	for r := 0; r < m.Rows(); r++ {
		i, iEnd := m.rowPtrs[r], m.rowPtrs[r+1]
		j, jEnd := other.rowPtrs[r], other.rowPtrs[r+1]

		for i < iEnd || j < jEnd {
			switch {
			case j >= jEnd || (i < iEnd && m.colIdx[i] < other.colIdx[j]):
				if !m.vals[i].IsZero() {
					return false
				}
				i++
			case i >= iEnd || other.colIdx[j] < m.colIdx[i]:
				if !other.vals[j].IsZero() {
					return false
				}
				j++
			default:
				if !m.vals[i].Eq(other.vals[j]) {
					return false
				}
				i++
				j++
			}
		}
	}

	return true
}

// String renders the matrix as shape plus the entry list.
func (m *CsrMatrix[T]) String() string {
	s := "CsrMatrix" + m.sh.String() + "{"
	first := true
	for r := 0; r+1 < len(m.rowPtrs); r++ {
		for p := m.rowPtrs[r]; p < m.rowPtrs[r+1]; p++ {
			if !first {
				s += ", "
			}
			first = false
			s += fmt.Sprintf("(%d, %d): %s", r, m.colIdx[p], m.vals[p].String())
		}
	}

	return s + "}"
}
