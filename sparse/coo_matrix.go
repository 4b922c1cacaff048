package sparse

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/shape"
)

// CooMatrix is a rank-2 coordinate-list sparse matrix: three parallel
// arrays (values, row indices, column indices) owned together as one
// unit, kept sorted lexicographically by (row, col). Explicit zeros and
// duplicate coordinates may be stored; Coalesce and DropZeros normalize
// them away.
type CooMatrix[T algebra.Semiring[T]] struct {
	sh     shape.Shape
	vals   []T
	rowIdx []int
	colIdx []int
	zero   *T // lazily derived additive identity; nil until known
}

// derivedZero propagates the additive-identity cache to a result
// structure: prefer the inherited cache, else derive from the first
// value, else stay unknown.
func derivedZero[T algebra.Semiring[T]](vals []T, inherited *T) *T {
	if inherited != nil {
		z := *inherited
		return &z
	}
	if len(vals) > 0 {
		z := vals[0].Zero()
		return &z
	}

	return nil
}

// NewCooMatrix builds a rows×cols COO matrix from parallel arrays.
// The arrays are copied, validated and sorted; the caller keeps
// ownership of its slices.
// Returns ErrInvalidStructure on length mismatches,
// ErrIndexOutOfBounds on out-of-range indices.
func NewCooMatrix[T algebra.Semiring[T]](rows, cols int, vals []T, rowIdx, colIdx []int) (*CooMatrix[T], error) {
	sh, err := shape.New(rows, cols)
	if err != nil {
		return nil, err
	}
	if err = validateCooMatrix(sh, len(vals), rowIdx, colIdx); err != nil {
		return nil, err
	}

	m := &CooMatrix[T]{
		sh:     sh,
		vals:   append([]T(nil), vals...),
		rowIdx: append([]int(nil), rowIdx...),
		colIdx: append([]int(nil), colIdx...),
	}
	sortPairs(m.rowIdx, m.colIdx, m.vals)
	m.zero = derivedZero(m.vals, nil)

	return m, nil
}

// NewCooMatrixUnchecked wraps the given arrays without copying,
// validating or sorting. For internal and performance-critical paths
// where the invariants already hold by construction; passing arrays
// that violate them puts every subsequent operation off contract.
func NewCooMatrixUnchecked[T algebra.Semiring[T]](rows, cols int, vals []T, rowIdx, colIdx []int) *CooMatrix[T] {
	m := &CooMatrix[T]{
		sh:     shape.MustNew(rows, cols),
		vals:   vals,
		rowIdx: rowIdx,
		colIdx: colIdx,
	}
	m.zero = derivedZero(m.vals, nil)

	return m
}

// newCooResult assembles an operation result, inheriting the zero cache.
func newCooResult[T algebra.Semiring[T]](sh shape.Shape, vals []T, rowIdx, colIdx []int, inherited *T) *CooMatrix[T] {
	return &CooMatrix[T]{
		sh:     sh,
		vals:   vals,
		rowIdx: rowIdx,
		colIdx: colIdx,
		zero:   derivedZero(vals, inherited),
	}
}

// Shape returns the matrix shape.
func (m *CooMatrix[T]) Shape() shape.Shape { return m.sh }

// Rows returns the number of rows.
func (m *CooMatrix[T]) Rows() int { return m.sh.Dim(0) }

// Cols returns the number of columns.
func (m *CooMatrix[T]) Cols() int { return m.sh.Dim(1) }

// NNZ returns the number of stored entries (including any explicit
// zeros and duplicates).
func (m *CooMatrix[T]) NNZ() int { return len(m.vals) }

// Values returns a copy of the stored values in entry order.
func (m *CooMatrix[T]) Values() []T { return append([]T(nil), m.vals...) }

// RowIndices returns a copy of the row-index array.
func (m *CooMatrix[T]) RowIndices() []int { return append([]int(nil), m.rowIdx...) }

// ColIndices returns a copy of the column-index array.
func (m *CooMatrix[T]) ColIndices() []int { return append([]int(nil), m.colIdx...) }

// SetZero seeds the additive-identity cache. Needed only for matrices
// constructed with no stored values, whose zero cannot be inferred.
// Single-writer: seed before sharing the matrix across goroutines.
func (m *CooMatrix[T]) SetZero(z T) { m.zero = &z }

// ZeroElem returns the cached additive identity.
// Returns ErrUnknownZero when it was never derived nor seeded.
func (m *CooMatrix[T]) ZeroElem() (T, error) {
	if m.zero == nil {
		var none T
		return none, ErrUnknownZero
	}

	return *m.zero, nil
}

// Clone returns a deep copy sharing no storage with m.
func (m *CooMatrix[T]) Clone() *CooMatrix[T] {
	return newCooResult(m.sh,
		append([]T(nil), m.vals...),
		append([]int(nil), m.rowIdx...),
		append([]int(nil), m.colIdx...),
		m.zero)
}

// Get returns the value stored at (row, col), or the additive identity
// when the position holds no entry.
// Returns ErrIndexOutOfBounds outside the shape and ErrUnknownZero when
// the position is empty and no zero element is known.
func (m *CooMatrix[T]) Get(row, col int) (T, error) {
	var none T
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Cols() {
		return none, fmt.Errorf("Get(%d,%d) on %s: %w", row, col, m.sh, ErrIndexOutOfBounds)
	}

	if pos := PairSearch(m.rowIdx, m.colIdx, row, col); pos >= 0 {
		return m.vals[pos], nil
	}

	return m.ZeroElem()
}

// Set returns a new matrix with v stored at (row, col). An existing
// entry is overwritten; otherwise the entry is spliced in at its
// insertion point, so the result stays sorted without a re-sort.
// Returns ErrIndexOutOfBounds outside the shape.
func (m *CooMatrix[T]) Set(v T, row, col int) (*CooMatrix[T], error) {
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Cols() {
		return nil, fmt.Errorf("Set(%d,%d) on %s: %w", row, col, m.sh, ErrIndexOutOfBounds)
	}

	pos := PairSearch(m.rowIdx, m.colIdx, row, col)
	if pos >= 0 {
		out := m.Clone()
		out.vals[pos] = v

		return out, nil
	}

	ip := -pos - 1
	nnz := len(m.vals)
	vals := make([]T, nnz+1)
	rows := make([]int, nnz+1)
	cols := make([]int, nnz+1)

	copy(vals, m.vals[:ip])
	copy(rows, m.rowIdx[:ip])
	copy(cols, m.colIdx[:ip])
	vals[ip], rows[ip], cols[ip] = v, row, col
	copy(vals[ip+1:], m.vals[ip:])
	copy(rows[ip+1:], m.rowIdx[ip:])
	copy(cols[ip+1:], m.colIdx[ip:])

	return newCooResult(m.sh, vals, rows, cols, m.zero), nil
}

// String renders the matrix as shape plus the entry list, one
// "(row, col): value" per entry.
func (m *CooMatrix[T]) String() string {
	s := "CooMatrix" + m.sh.String() + "{"
	for i, v := range m.vals {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("(%d, %d): %s", m.rowIdx[i], m.colIdx[i], v.String())
	}

	return s + "}"
}
