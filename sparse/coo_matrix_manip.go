package sparse

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlalg/shape"
)

// sortedUnique returns a sorted copy of idxs with duplicates removed.
func sortedUnique(idxs []int) []int {
	out := append([]int(nil), idxs...)
	sort.Ints(out)

	n := 0
	for i, v := range out {
		if i == 0 || v != out[n-1] {
			out[n] = v
			n++
		}
	}

	return out[:n]
}

// RemoveRow returns m without row rowIdx; rows below it shift up by
// one. The sorted-by-row invariant makes the deleted entries a
// contiguous range, located in O(log nnz).
// Returns ErrIndexOutOfBounds for an invalid row.
func (m *CooMatrix[T]) RemoveRow(rowIdx int) (*CooMatrix[T], error) {
	if rowIdx < 0 || rowIdx >= m.Rows() {
		return nil, fmt.Errorf("RemoveRow(%d) on %s: %w", rowIdx, m.sh, ErrIndexOutOfBounds)
	}

	start, end := RowRange(m.rowIdx, rowIdx)
	size := len(m.vals) - (end - start)

	vals := make([]T, size)
	rows := make([]int, size)
	cols := make([]int, size)

	copy(vals, m.vals[:start])
	copy(rows, m.rowIdx[:start])
	copy(cols, m.colIdx[:start])
	copy(vals[start:], m.vals[end:])
	copy(rows[start:], m.rowIdx[end:])
	copy(cols[start:], m.colIdx[end:])

	// Everything after the removed range belonged to a later row.
	for i := start; i < size; i++ {
		rows[i]--
	}

	return newCooResult(shape.MustNew(m.Rows()-1, m.Cols()), vals, rows, cols, m.zero), nil
}

// RemoveRows returns m without the given rows (duplicates tolerated).
// Surviving rows shift up by the number of removed rows below them,
// tracked with a running prefix count over one O(nnz) scan.
// Returns ErrIndexOutOfBounds for any invalid row.
func (m *CooMatrix[T]) RemoveRows(rowIdxs ...int) (*CooMatrix[T], error) {
	for _, r := range rowIdxs {
		if r < 0 || r >= m.Rows() {
			return nil, fmt.Errorf("RemoveRows(%d) on %s: %w", r, m.sh, ErrIndexOutOfBounds)
		}
	}

	removed := sortedUnique(rowIdxs)

	var vals []T
	var rows, cols []int

	j, below := 0, 0 // cursor into removed; rows removed below the current entry
	for i, oldRow := range m.rowIdx {
		for j < len(removed) && removed[j] < oldRow {
			below++
			j++
		}
		if j < len(removed) && removed[j] == oldRow {
			continue
		}

		vals = append(vals, m.vals[i])
		rows = append(rows, oldRow-below)
		cols = append(cols, m.colIdx[i])
	}

	return newCooResult(shape.MustNew(m.Rows()-len(removed), m.Cols()), vals, rows, cols, m.zero), nil
}

// RemoveCol returns m without column colIdx; columns right of it shift
// left by one. Relative entry order is unaffected, so no re-sort.
// Returns ErrIndexOutOfBounds for an invalid column.
func (m *CooMatrix[T]) RemoveCol(colIdx int) (*CooMatrix[T], error) {
	if colIdx < 0 || colIdx >= m.Cols() {
		return nil, fmt.Errorf("RemoveCol(%d) on %s: %w", colIdx, m.sh, ErrIndexOutOfBounds)
	}

	var vals []T
	var rows, cols []int

	for i, c := range m.colIdx {
		if c == colIdx {
			continue
		}
		vals = append(vals, m.vals[i])
		rows = append(rows, m.rowIdx[i])
		if c < colIdx {
			cols = append(cols, c)
		} else {
			cols = append(cols, c-1)
		}
	}

	return newCooResult(shape.MustNew(m.Rows(), m.Cols()-1), vals, rows, cols, m.zero), nil
}

// RemoveCols returns m without the given columns (duplicates
// tolerated). Each surviving column shifts left by the number of
// removed columns below it — an explicit prefix count against the
// sorted removal set, never insertion-point arithmetic on unsorted
// data.
// Returns ErrIndexOutOfBounds for any invalid column.
func (m *CooMatrix[T]) RemoveCols(colIdxs ...int) (*CooMatrix[T], error) {
	for _, c := range colIdxs {
		if c < 0 || c >= m.Cols() {
			return nil, fmt.Errorf("RemoveCols(%d) on %s: %w", c, m.sh, ErrIndexOutOfBounds)
		}
	}

	removed := sortedUnique(colIdxs)

	var vals []T
	var rows, cols []int

	for i, oldCol := range m.colIdx {
		below := sort.SearchInts(removed, oldCol) // removed columns < oldCol
		if below < len(removed) && removed[below] == oldCol {
			continue
		}

		vals = append(vals, m.vals[i])
		rows = append(rows, m.rowIdx[i])
		cols = append(cols, oldCol-below)
	}

	return newCooResult(shape.MustNew(m.Rows(), m.Cols()-len(removed)), vals, rows, cols, m.zero), nil
}

// GetRow extracts row rowIdx as a sparse vector of length Cols().
// Returns ErrIndexOutOfBounds for an invalid row.
func (m *CooMatrix[T]) GetRow(rowIdx int) (*CooVector[T], error) {
	if rowIdx < 0 || rowIdx >= m.Rows() {
		return nil, fmt.Errorf("GetRow(%d) on %s: %w", rowIdx, m.sh, ErrIndexOutOfBounds)
	}

	start, end := RowRange(m.rowIdx, rowIdx)

	return newCooVecResult(m.Cols(),
		append([]T(nil), m.vals[start:end]...),
		append([]int(nil), m.colIdx[start:end]...),
		m.zero), nil
}

// GetCol extracts column colIdx as a sparse vector of length Rows().
// Returns ErrIndexOutOfBounds for an invalid column.
func (m *CooMatrix[T]) GetCol(colIdx int) (*CooVector[T], error) {
	if colIdx < 0 || colIdx >= m.Cols() {
		return nil, fmt.Errorf("GetCol(%d) on %s: %w", colIdx, m.sh, ErrIndexOutOfBounds)
	}

	var vals []T
	var idx []int
	for i, c := range m.colIdx {
		if c == colIdx {
			vals = append(vals, m.vals[i])
			idx = append(idx, m.rowIdx[i])
		}
	}

	return newCooVecResult(m.Rows(), vals, idx, m.zero), nil
}

// SetRow returns m with row rowIdx replaced by the sparse vector v
// (length must equal Cols()). The old row's entries are dropped, the
// vector's entries spliced in, and the result re-sorted.
// Returns ErrIndexOutOfBounds for an invalid row, ErrShapeMismatch on a
// length disagreement.
func (m *CooMatrix[T]) SetRow(rowIdx int, v *CooVector[T]) (*CooMatrix[T], error) {
	if rowIdx < 0 || rowIdx >= m.Rows() {
		return nil, fmt.Errorf("SetRow(%d) on %s: %w", rowIdx, m.sh, ErrIndexOutOfBounds)
	}
	if v.Size() != m.Cols() {
		return nil, fmt.Errorf("SetRow: vector of size %d for %d columns: %w",
			v.Size(), m.Cols(), ErrShapeMismatch)
	}

	var vals []T
	var rows, cols []int

	for i, r := range m.rowIdx {
		if r != rowIdx {
			vals = append(vals, m.vals[i])
			rows = append(rows, r)
			cols = append(cols, m.colIdx[i])
		}
	}
	for i, val := range v.vals {
		vals = append(vals, val)
		rows = append(rows, rowIdx)
		cols = append(cols, v.idx[i])
	}
	sortPairs(rows, cols, vals)

	return newCooResult(m.sh, vals, rows, cols, m.zero), nil
}

// SetCol returns m with column colIdx replaced by the sparse vector v
// (length must equal Rows()).
// Returns ErrIndexOutOfBounds for an invalid column, ErrShapeMismatch
// on a length disagreement.
func (m *CooMatrix[T]) SetCol(colIdx int, v *CooVector[T]) (*CooMatrix[T], error) {
	if colIdx < 0 || colIdx >= m.Cols() {
		return nil, fmt.Errorf("SetCol(%d) on %s: %w", colIdx, m.sh, ErrIndexOutOfBounds)
	}
	if v.Size() != m.Rows() {
		return nil, fmt.Errorf("SetCol: vector of size %d for %d rows: %w",
			v.Size(), m.Rows(), ErrShapeMismatch)
	}

	var vals []T
	var rows, cols []int

	for i, c := range m.colIdx {
		if c != colIdx {
			vals = append(vals, m.vals[i])
			rows = append(rows, m.rowIdx[i])
			cols = append(cols, c)
		}
	}
	for i, val := range v.vals {
		vals = append(vals, val)
		rows = append(rows, v.idx[i])
		cols = append(cols, colIdx)
	}
	sortPairs(rows, cols, vals)

	return newCooResult(m.sh, vals, rows, cols, m.zero), nil
}

// GetSlice returns the half-open window [rowStart, rowEnd) ×
// [colStart, colEnd) as a fresh matrix in the window's local
// coordinates. Always a copy, never a view: slice and parent share no
// storage.
// Returns ErrIndexOutOfBounds for an empty or out-of-range window.
func (m *CooMatrix[T]) GetSlice(rowStart, rowEnd, colStart, colEnd int) (*CooMatrix[T], error) {
	if rowStart < 0 || rowEnd > m.Rows() || rowStart >= rowEnd ||
		colStart < 0 || colEnd > m.Cols() || colStart >= colEnd {
		return nil, fmt.Errorf("GetSlice[%d:%d, %d:%d] on %s: %w",
			rowStart, rowEnd, colStart, colEnd, m.sh, ErrIndexOutOfBounds)
	}

	var vals []T
	var rows, cols []int

	for i, r := range m.rowIdx {
		c := m.colIdx[i]
		if r >= rowStart && r < rowEnd && c >= colStart && c < colEnd {
			vals = append(vals, m.vals[i])
			rows = append(rows, r-rowStart)
			cols = append(cols, c-colStart)
		}
	}

	return newCooResult(shape.MustNew(rowEnd-rowStart, colEnd-colStart), vals, rows, cols, m.zero), nil
}

// SetSliceCopy returns m with sub's entries written into the window
// anchored at (rowOff, colOff): the window's old entries are dropped
// and sub's entries spliced in at their translated coordinates.
// Returns ErrIndexOutOfBounds when the window does not fit.
func (m *CooMatrix[T]) SetSliceCopy(sub *CooMatrix[T], rowOff, colOff int) (*CooMatrix[T], error) {
	if rowOff < 0 || colOff < 0 ||
		rowOff+sub.Rows() > m.Rows() || colOff+sub.Cols() > m.Cols() {
		return nil, fmt.Errorf("SetSliceCopy %s at (%d,%d) on %s: %w",
			sub.sh, rowOff, colOff, m.sh, ErrIndexOutOfBounds)
	}

	rowEnd, colEnd := rowOff+sub.Rows(), colOff+sub.Cols()

	var vals []T
	var rows, cols []int

	for i, r := range m.rowIdx {
		c := m.colIdx[i]
		if r >= rowOff && r < rowEnd && c >= colOff && c < colEnd {
			continue // window contents are replaced wholesale
		}
		vals = append(vals, m.vals[i])
		rows = append(rows, r)
		cols = append(cols, c)
	}
	for i, v := range sub.vals {
		vals = append(vals, v)
		rows = append(rows, sub.rowIdx[i]+rowOff)
		cols = append(cols, sub.colIdx[i]+colOff)
	}
	sortPairs(rows, cols, vals)

	return newCooResult(m.sh, vals, rows, cols, m.zero), nil
}

// VStack returns m stacked on top of other. Row offsets increase
// monotonically, so plain concatenation preserves the sort order.
// Returns ErrShapeMismatch unless the column counts agree.
func (m *CooMatrix[T]) VStack(other *CooMatrix[T]) (*CooMatrix[T], error) {
	if m.Cols() != other.Cols() {
		return nil, fmt.Errorf("VStack %s on %s: %w", m.sh, other.sh, ErrShapeMismatch)
	}

	vals := make([]T, 0, len(m.vals)+len(other.vals))
	rows := make([]int, 0, len(m.vals)+len(other.vals))
	cols := make([]int, 0, len(m.vals)+len(other.vals))

	vals = append(append(vals, m.vals...), other.vals...)
	cols = append(append(cols, m.colIdx...), other.colIdx...)
	rows = append(rows, m.rowIdx...)
	for _, r := range other.rowIdx {
		rows = append(rows, r+m.Rows())
	}

	return newCooResult(shape.MustNew(m.Rows()+other.Rows(), m.Cols()), vals, rows, cols, m.zero), nil
}

// HStack returns m with other appended to its right. Rows interleave,
// so the concatenation is re-sorted.
// Returns ErrShapeMismatch unless the row counts agree.
func (m *CooMatrix[T]) HStack(other *CooMatrix[T]) (*CooMatrix[T], error) {
	if m.Rows() != other.Rows() {
		return nil, fmt.Errorf("HStack %s with %s: %w", m.sh, other.sh, ErrShapeMismatch)
	}

	vals := make([]T, 0, len(m.vals)+len(other.vals))
	rows := make([]int, 0, len(m.vals)+len(other.vals))
	cols := make([]int, 0, len(m.vals)+len(other.vals))

	vals = append(append(vals, m.vals...), other.vals...)
	rows = append(append(rows, m.rowIdx...), other.rowIdx...)
	cols = append(cols, m.colIdx...)
	for _, c := range other.colIdx {
		cols = append(cols, c+m.Cols())
	}
	sortPairs(rows, cols, vals)

	return newCooResult(shape.MustNew(m.Rows(), m.Cols()+other.Cols()), vals, rows, cols, m.zero), nil
}

// TriU returns the entries on or above the diagOffset-th diagonal
// (col - row >= diagOffset); diagOffset 0 keeps the main diagonal.
func (m *CooMatrix[T]) TriU(diagOffset int) *CooMatrix[T] {
	var vals []T
	var rows, cols []int

	for i, r := range m.rowIdx {
		if m.colIdx[i]-r >= diagOffset {
			vals = append(vals, m.vals[i])
			rows = append(rows, r)
			cols = append(cols, m.colIdx[i])
		}
	}

	return newCooResult(m.sh, vals, rows, cols, m.zero)
}

// TriL returns the entries on or below the diagOffset-th diagonal
// (col - row <= diagOffset).
func (m *CooMatrix[T]) TriL(diagOffset int) *CooMatrix[T] {
	var vals []T
	var rows, cols []int

	for i, r := range m.rowIdx {
		if m.colIdx[i]-r <= diagOffset {
			vals = append(vals, m.vals[i])
			rows = append(rows, r)
			cols = append(cols, m.colIdx[i])
		}
	}

	return newCooResult(m.sh, vals, rows, cols, m.zero)
}

// CoalesceWith folds runs of duplicate (row, col) entries into one via
// agg. Relies on the sort invariant — duplicates are adjacent — so a
// single O(nnz) pass suffices.
func (m *CooMatrix[T]) CoalesceWith(agg func(a, b T) T) *CooMatrix[T] {
	var vals []T
	var rows, cols []int

	for i, v := range m.vals {
		n := len(vals)
		if n > 0 && rows[n-1] == m.rowIdx[i] && cols[n-1] == m.colIdx[i] {
			vals[n-1] = agg(vals[n-1], v)
			continue
		}
		vals = append(vals, v)
		rows = append(rows, m.rowIdx[i])
		cols = append(cols, m.colIdx[i])
	}

	return newCooResult(m.sh, vals, rows, cols, m.zero)
}

// Coalesce folds duplicates by semiring addition.
func (m *CooMatrix[T]) Coalesce() *CooMatrix[T] {
	return m.CoalesceWith(func(a, b T) T { return a.Add(b) })
}

// DropZeros returns m without explicitly stored additive identities.
func (m *CooMatrix[T]) DropZeros() *CooMatrix[T] {
	var vals []T
	var rows, cols []int

	for i, v := range m.vals {
		if v.IsZero() {
			continue
		}
		vals = append(vals, v)
		rows = append(rows, m.rowIdx[i])
		cols = append(cols, m.colIdx[i])
	}

	return newCooResult(m.sh, vals, rows, cols, m.zero)
}

// SwapRowsInPlace relabels rows r1 and r2 in m's own backing arrays and
// re-sorts them — the documented exception to value semantics, kept
// in-place for large structural permutations. Returns m.
// Returns ErrIndexOutOfBounds for invalid rows.
func (m *CooMatrix[T]) SwapRowsInPlace(r1, r2 int) (*CooMatrix[T], error) {
	if r1 < 0 || r1 >= m.Rows() || r2 < 0 || r2 >= m.Rows() {
		return nil, fmt.Errorf("SwapRowsInPlace(%d,%d) on %s: %w", r1, r2, m.sh, ErrIndexOutOfBounds)
	}

	for i, r := range m.rowIdx {
		switch r {
		case r1:
			m.rowIdx[i] = r2
		case r2:
			m.rowIdx[i] = r1
		}
	}
	sortPairs(m.rowIdx, m.colIdx, m.vals)

	return m, nil
}

// SwapColsInPlace relabels columns c1 and c2 in m's own backing arrays
// and re-sorts them. Returns m.
// Returns ErrIndexOutOfBounds for invalid columns.
func (m *CooMatrix[T]) SwapColsInPlace(c1, c2 int) (*CooMatrix[T], error) {
	if c1 < 0 || c1 >= m.Cols() || c2 < 0 || c2 >= m.Cols() {
		return nil, fmt.Errorf("SwapColsInPlace(%d,%d) on %s: %w", c1, c2, m.sh, ErrIndexOutOfBounds)
	}

	for i, c := range m.colIdx {
		switch c {
		case c1:
			m.colIdx[i] = c2
		case c2:
			m.colIdx[i] = c1
		}
	}
	sortPairs(m.rowIdx, m.colIdx, m.vals)

	return m, nil
}

// Equal reports value equality: identical shapes and identical entry
// sets once duplicates are folded and explicit zeros dropped.
func (m *CooMatrix[T]) Equal(other *CooMatrix[T]) bool {
	if !m.sh.Equal(other.sh) {
		return false
	}

	a := m.Coalesce().DropZeros()
	b := other.Coalesce().DropZeros()
	if len(a.vals) != len(b.vals) {
		return false
	}
	for i, v := range a.vals {
		if a.rowIdx[i] != b.rowIdx[i] || a.colIdx[i] != b.colIdx[i] || !v.Eq(b.vals[i]) {
			return false
		}
	}

	return true
}

// IsSymmetric reports whether the matrix equals its transpose.
func (m *CooMatrix[T]) IsSymmetric() bool {
	return m.Rows() == m.Cols() && m.Equal(m.Transpose())
}
