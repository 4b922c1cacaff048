package sparse

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/dense"
	"github.com/katalvlaran/lvlalg/shape"
)

// csrBinOp applies a merge-join row by row, building the result's row
// pointers from the emitted entry counts. The handlers follow the COO
// merge conventions (nil one-side handler drops the entry).
func csrBinOp[T algebra.Semiring[T]](
	a, b *CsrMatrix[T],
	onBoth func(x, y T) (T, error),
	onLeft func(x T) (T, error),
	onRight func(y T) (T, error),
) (vals []T, rowPtrs, colIdx []int, err error) {
	rows := a.Rows()
	rowPtrs = make([]int, rows+1)

	for r := 0; r < rows; r++ {
		aStart, aEnd := a.rowPtrs[r], a.rowPtrs[r+1]
		bStart, bEnd := b.rowPtrs[r], b.rowPtrs[r+1]

		rowVals, rowCols, err := mergeSingles(
			a.vals[aStart:aEnd], a.colIdx[aStart:aEnd],
			b.vals[bStart:bEnd], b.colIdx[bStart:bEnd],
			onBoth, onLeft, onRight)
		if err != nil {
			return nil, nil, nil, err
		}

		vals = append(vals, rowVals...)
		colIdx = append(colIdx, rowCols...)
		rowPtrs[r+1] = rowPtrs[r] + len(rowVals)
	}

	return vals, rowPtrs, colIdx, nil
}

// Add returns m + other via per-row merge-joins.
// Returns ErrShapeMismatch unless the shapes are identical.
func (m *CsrMatrix[T]) Add(other *CsrMatrix[T]) (*CsrMatrix[T], error) {
	if !m.sh.Equal(other.sh) {
		return nil, fmt.Errorf("Add %s vs %s: %w", m.sh, other.sh, ErrShapeMismatch)
	}

	vals, ptrs, cols, err := csrBinOp(m, other, addOf[T], keep[T], keep[T])
	if err != nil {
		return nil, err
	}

	return newCsrResult(m.sh, vals, ptrs, cols, m.zero), nil
}

// Sub returns m - other; entries present only in other are negated.
// Returns ErrUnsupported for semiring-only elements, ErrShapeMismatch
// unless the shapes are identical.
func (m *CsrMatrix[T]) Sub(other *CsrMatrix[T]) (*CsrMatrix[T], error) {
	if !m.sh.Equal(other.sh) {
		return nil, fmt.Errorf("Sub %s vs %s: %w", m.sh, other.sh, ErrShapeMismatch)
	}

	vals, ptrs, cols, err := csrBinOp(m, other, subOf[T], keep[T], negOf[T])
	if err != nil {
		return nil, err
	}

	return newCsrResult(m.sh, vals, ptrs, cols, m.zero), nil
}

// ElemMult returns the Hadamard product over the shared positions.
// Returns ErrShapeMismatch unless the shapes are identical.
func (m *CsrMatrix[T]) ElemMult(other *CsrMatrix[T]) (*CsrMatrix[T], error) {
	if !m.sh.Equal(other.sh) {
		return nil, fmt.Errorf("ElemMult %s vs %s: %w", m.sh, other.sh, ErrShapeMismatch)
	}

	vals, ptrs, cols, err := csrBinOp(m, other, mulOf[T], nil, nil)
	if err != nil {
		return nil, err
	}

	return newCsrResult(m.sh, vals, ptrs, cols, m.zero), nil
}

// AddScalar returns m with s added to every stored entry; implicit
// zeros are untouched.
func (m *CsrMatrix[T]) AddScalar(s T) *CsrMatrix[T] {
	out := m.Clone()
	for i, v := range out.vals {
		out.vals[i] = v.Add(s)
	}

	return out
}

// MulScalar returns m with every stored entry multiplied by s.
func (m *CsrMatrix[T]) MulScalar(s T) *CsrMatrix[T] {
	out := m.Clone()
	for i, v := range out.vals {
		out.vals[i] = v.Mul(s)
	}

	return out
}

// DivScalar returns m with every stored entry divided by s.
// Returns ErrUnsupported for elements without field division.
func (m *CsrMatrix[T]) DivScalar(s T) (*CsrMatrix[T], error) {
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

// Transpose returns the matrix transpose directly in CSR form, in
// O(nnz + rows + cols): count entries per column, prefix-sum the counts
// into the new row pointers, then scatter each entry through a cursor
// array. Scanning source rows in order lands each transposed row's
// columns already sorted.
func (m *CsrMatrix[T]) Transpose() *CsrMatrix[T] {
	rows, cols := m.Rows(), m.Cols()
	nnz := len(m.vals)

	ptrs := make([]int, cols+1)
	for _, c := range m.colIdx {
		ptrs[c+1]++
	}
	for c := 0; c < cols; c++ {
		ptrs[c+1] += ptrs[c]
	}

	vals := make([]T, nnz)
	outCols := make([]int, nnz)
	cursor := append([]int(nil), ptrs[:cols]...)

	for r := 0; r < rows; r++ {
		for p := m.rowPtrs[r]; p < m.rowPtrs[r+1]; p++ {
			c := m.colIdx[p]
			vals[cursor[c]] = m.vals[p]
			outCols[cursor[c]] = r
			cursor[c]++
		}
	}

	return newCsrResult(shape.MustNew(cols, rows), vals, ptrs, outCols, m.zero)
}

// HermTranspose returns the conjugate transpose.
// Returns ErrUnsupported for elements without conjugation.
func (m *CsrMatrix[T]) HermTranspose() (*CsrMatrix[T], error) {
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

// Mul returns the matrix product m * other as a dense matrix.
// Returns ErrShapeMismatch on inner-dimension disagreement and
// ErrUnknownZero when no additive identity is resolvable to pre-fill
// the result.
func (m *CsrMatrix[T]) Mul(other *CsrMatrix[T]) (*dense.Matrix[T], error) {
	if m.Cols() != other.Rows() {
		return nil, fmt.Errorf("Mul inner dims %d vs %d: %w",
			m.Cols(), other.Rows(), ErrShapeMismatch)
	}
	zero, err := resolveZero(m.zero, other.zero)
	if err != nil {
		return nil, err
	}

	buf := csrMulDense(m.vals, m.rowPtrs, m.colIdx,
		other.vals, other.rowPtrs, other.colIdx,
		other.Cols(), zero)

	return dense.NewFromSlice(m.Rows(), other.Cols(), buf)
}

// MulToSparse returns the matrix product m * other in CSR form, using a
// sparse accumulator per output row.
// Returns ErrShapeMismatch on inner-dimension disagreement.
func (m *CsrMatrix[T]) MulToSparse(other *CsrMatrix[T]) (*CsrMatrix[T], error) {
	if m.Cols() != other.Rows() {
		return nil, fmt.Errorf("MulToSparse inner dims %d vs %d: %w",
			m.Cols(), other.Rows(), ErrShapeMismatch)
	}

	vals, ptrs, cols := csrMulSparse(m.vals, m.rowPtrs, m.colIdx,
		other.vals, other.rowPtrs, other.colIdx)

	return newCsrResult(shape.MustNew(m.Rows(), other.Cols()), vals, ptrs, cols, m.zero), nil
}

// MulVec returns m * x for a dense vector x of length Cols().
// Returns ErrShapeMismatch on a length disagreement and ErrUnknownZero
// when no additive identity is resolvable.
func (m *CsrMatrix[T]) MulVec(x []T) ([]T, error) {
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
	for r := range dst {
		acc := zero
		for p := m.rowPtrs[r]; p < m.rowPtrs[r+1]; p++ {
			acc = acc.Add(m.vals[p].Mul(x[m.colIdx[p]]))
		}
		dst[r] = acc
	}

	return dst, nil
}

// SwapRowsInPlace exchanges rows a and b in place and returns m. The
// row pointers are rebuilt around the exchanged slices; column order
// within each row is preserved, so no re-sort is needed.
// Returns ErrIndexOutOfBounds on an invalid row.
func (m *CsrMatrix[T]) SwapRowsInPlace(a, b int) (*CsrMatrix[T], error) {
	if a < 0 || a >= m.Rows() || b < 0 || b >= m.Rows() {
		return nil, fmt.Errorf("SwapRowsInPlace(%d,%d) on %s: %w", a, b, m.sh, ErrIndexOutOfBounds)
	}
	if a == b {
		return m, nil
	}
	if a > b {
		a, b = b, a
	}

	// Rebuild vals/colIdx with the two row slices exchanged, then shift
	// the pointers of the rows in between by the length difference.
	aStart, aEnd := m.rowPtrs[a], m.rowPtrs[a+1]
	bStart, bEnd := m.rowPtrs[b], m.rowPtrs[b+1]
	aLen, bLen := aEnd-aStart, bEnd-bStart

	vals := make([]T, 0, len(m.vals))
	cols := make([]int, 0, len(m.colIdx))
	vals = append(vals, m.vals[:aStart]...)
	cols = append(cols, m.colIdx[:aStart]...)
	vals = append(vals, m.vals[bStart:bEnd]...)
	cols = append(cols, m.colIdx[bStart:bEnd]...)
	vals = append(vals, m.vals[aEnd:bStart]...)
	cols = append(cols, m.colIdx[aEnd:bStart]...)
	vals = append(vals, m.vals[aStart:aEnd]...)
	cols = append(cols, m.colIdx[aStart:aEnd]...)
	vals = append(vals, m.vals[bEnd:]...)
	cols = append(cols, m.colIdx[bEnd:]...)

	delta := bLen - aLen
	for r := a + 1; r <= b; r++ {
		m.rowPtrs[r] += delta
	}

	m.vals = vals
	m.colIdx = cols

	return m, nil
}

// SwapColsInPlace relabels columns a and b in place and returns m. Each
// affected row's slice is re-sorted to restore ascending column order.
// Returns ErrIndexOutOfBounds on an invalid column.
func (m *CsrMatrix[T]) SwapColsInPlace(a, b int) (*CsrMatrix[T], error) {
	if a < 0 || a >= m.Cols() || b < 0 || b >= m.Cols() {
		return nil, fmt.Errorf("SwapColsInPlace(%d,%d) on %s: %w", a, b, m.sh, ErrIndexOutOfBounds)
	}
	if a == b {
		return m, nil
	}

	for r := 0; r+1 < len(m.rowPtrs); r++ {
		start, end := m.rowPtrs[r], m.rowPtrs[r+1]
		touched := false
		for p := start; p < end; p++ {
			switch m.colIdx[p] {
			case a:
				m.colIdx[p] = b
				touched = true
			case b:
				m.colIdx[p] = a
				touched = true
			}
		}
		if touched {
			sortSingles(m.colIdx[start:end], m.vals[start:end])
		}
	}

	return m, nil
}

// GetRow returns row r as a sparse vector of length Cols().
// Returns ErrIndexOutOfBounds on an invalid row.
func (m *CsrMatrix[T]) GetRow(r int) (*CooVector[T], error) {
	if r < 0 || r >= m.Rows() {
		return nil, fmt.Errorf("GetRow(%d) on %s: %w", r, m.sh, ErrIndexOutOfBounds)
	}

	start, end := m.rowPtrs[r], m.rowPtrs[r+1]

	return newCooVecResult(m.Cols(),
		append([]T(nil), m.vals[start:end]...),
		append([]int(nil), m.colIdx[start:end]...),
		m.zero), nil
}

// GetCol returns column c as a sparse vector of length Rows().
// Returns ErrIndexOutOfBounds on an invalid column.
func (m *CsrMatrix[T]) GetCol(c int) (*CooVector[T], error) {
	if c < 0 || c >= m.Cols() {
		return nil, fmt.Errorf("GetCol(%d) on %s: %w", c, m.sh, ErrIndexOutOfBounds)
	}

	var vals []T
	var idx []int
	for r := 0; r+1 < len(m.rowPtrs); r++ {
		for p := m.rowPtrs[r]; p < m.rowPtrs[r+1]; p++ {
			if m.colIdx[p] == c {
				vals = append(vals, m.vals[p])
				idx = append(idx, r)
			}
		}
	}

	return newCooVecResult(m.Rows(), vals, idx, m.zero), nil
}

// Structural bulk edits round-trip through COO, where splicing parallel
// arrays is natural; the CSR row pointers are rebuilt on the way back.

// RemoveRow returns m without row r; later rows shift up by one.
func (m *CsrMatrix[T]) RemoveRow(r int) (*CsrMatrix[T], error) {
	coo, err := m.ToCoo().RemoveRow(r)
	if err != nil {
		return nil, err
	}

	return coo.ToCsr(), nil
}

// RemoveRows returns m without the given rows.
func (m *CsrMatrix[T]) RemoveRows(rs ...int) (*CsrMatrix[T], error) {
	coo, err := m.ToCoo().RemoveRows(rs...)
	if err != nil {
		return nil, err
	}

	return coo.ToCsr(), nil
}

// RemoveCol returns m without column c; later columns shift left by one.
func (m *CsrMatrix[T]) RemoveCol(c int) (*CsrMatrix[T], error) {
	coo, err := m.ToCoo().RemoveCol(c)
	if err != nil {
		return nil, err
	}

	return coo.ToCsr(), nil
}

// RemoveCols returns m without the given columns.
func (m *CsrMatrix[T]) RemoveCols(cs ...int) (*CsrMatrix[T], error) {
	coo, err := m.ToCoo().RemoveCols(cs...)
	if err != nil {
		return nil, err
	}

	return coo.ToCsr(), nil
}

// SetRow returns m with row r replaced by the given sparse row.
func (m *CsrMatrix[T]) SetRow(r int, row *CooVector[T]) (*CsrMatrix[T], error) {
	coo, err := m.ToCoo().SetRow(r, row)
	if err != nil {
		return nil, err
	}

	return coo.ToCsr(), nil
}

// SetCol returns m with column c replaced by the given sparse column.
func (m *CsrMatrix[T]) SetCol(c int, col *CooVector[T]) (*CsrMatrix[T], error) {
	coo, err := m.ToCoo().SetCol(c, col)
	if err != nil {
		return nil, err
	}

	return coo.ToCsr(), nil
}

// GetSlice returns the half-open sub-matrix [rowStart, rowEnd) ×
// [colStart, colEnd) as a fresh CSR matrix.
func (m *CsrMatrix[T]) GetSlice(rowStart, rowEnd, colStart, colEnd int) (*CsrMatrix[T], error) {
	coo, err := m.ToCoo().GetSlice(rowStart, rowEnd, colStart, colEnd)
	if err != nil {
		return nil, err
	}

	return coo.ToCsr(), nil
}

// VStack returns m stacked on top of other.
func (m *CsrMatrix[T]) VStack(other *CsrMatrix[T]) (*CsrMatrix[T], error) {
	coo, err := m.ToCoo().VStack(other.ToCoo())
	if err != nil {
		return nil, err
	}

	return coo.ToCsr(), nil
}

// HStack returns m side by side with other.
func (m *CsrMatrix[T]) HStack(other *CsrMatrix[T]) (*CsrMatrix[T], error) {
	coo, err := m.ToCoo().HStack(other.ToCoo())
	if err != nil {
		return nil, err
	}

	return coo.ToCsr(), nil
}

// Coalesce folds duplicate columns within each row by semiring addition.
func (m *CsrMatrix[T]) Coalesce() *CsrMatrix[T] {
	return m.ToCoo().Coalesce().ToCsr()
}

// DropZeros returns m without explicitly stored additive identities.
func (m *CsrMatrix[T]) DropZeros() *CsrMatrix[T] {
	return m.ToCoo().DropZeros().ToCsr()
}

// TriU keeps the entries on and above the diagOffset-th diagonal.
func (m *CsrMatrix[T]) TriU(diagOffset int) *CsrMatrix[T] {
	return m.ToCoo().TriU(diagOffset).ToCsr()
}

// TriL keeps the entries on and below the diagOffset-th diagonal.
func (m *CsrMatrix[T]) TriL(diagOffset int) *CsrMatrix[T] {
	return m.ToCoo().TriL(diagOffset).ToCsr()
}
