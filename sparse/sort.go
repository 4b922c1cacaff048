package sparse

import "sort"

// In-place co-sorting of the parallel value/index arrays. Entry order
// among duplicate keys is irrelevant: only key adjacency matters, and
// Coalesce folds duplicates regardless of their relative order.

// pairSorter sorts a rank-2 entry list by (row, col).
type pairSorter[T any] struct {
	rows, cols []int
	vals       []T
}

func (s *pairSorter[T]) Len() int { return len(s.rows) }

func (s *pairSorter[T]) Less(i, j int) bool {
	if s.rows[i] != s.rows[j] {
		return s.rows[i] < s.rows[j]
	}

	return s.cols[i] < s.cols[j]
}

func (s *pairSorter[T]) Swap(i, j int) {
	s.rows[i], s.rows[j] = s.rows[j], s.rows[i]
	s.cols[i], s.cols[j] = s.cols[j], s.cols[i]
	s.vals[i], s.vals[j] = s.vals[j], s.vals[i]
}

// sortPairs restores the lexicographic (row, col) order.
func sortPairs[T any](rows, cols []int, vals []T) {
	sort.Sort(&pairSorter[T]{rows: rows, cols: cols, vals: vals})
}

// singleSorter sorts a rank-1 entry list by index.
type singleSorter[T any] struct {
	idx  []int
	vals []T
}

func (s *singleSorter[T]) Len() int           { return len(s.idx) }
func (s *singleSorter[T]) Less(i, j int) bool { return s.idx[i] < s.idx[j] }

func (s *singleSorter[T]) Swap(i, j int) {
	s.idx[i], s.idx[j] = s.idx[j], s.idx[i]
	s.vals[i], s.vals[j] = s.vals[j], s.vals[i]
}

// sortSingles restores ascending index order.
func sortSingles[T any](idx []int, vals []T) {
	sort.Sort(&singleSorter[T]{idx: idx, vals: vals})
}

// tupleSorter sorts a rank-general entry list lexicographically by
// index tuple.
type tupleSorter[T any] struct {
	indices [][]int
	vals    []T
}

func (s *tupleSorter[T]) Len() int { return len(s.indices) }

func (s *tupleSorter[T]) Less(i, j int) bool {
	return compareTuple(s.indices[i], s.indices[j]) < 0
}

func (s *tupleSorter[T]) Swap(i, j int) {
	s.indices[i], s.indices[j] = s.indices[j], s.indices[i]
	s.vals[i], s.vals[j] = s.vals[j], s.vals[i]
}

// sortTuples restores the lexicographic tuple order.
func sortTuples[T any](indices [][]int, vals []T) {
	sort.Sort(&tupleSorter[T]{indices: indices, vals: vals})
}

// sortCsrRows sorts each CSR row's column slice ascending, carrying the
// values along. Used by the checked CSR constructor; operations keep
// rows sorted by construction.
func sortCsrRows[T any](rowPtrs, colIdx []int, vals []T) {
	for r := 0; r+1 < len(rowPtrs); r++ {
		start, end := rowPtrs[r], rowPtrs[r+1]
		sortSingles(colIdx[start:end], vals[start:end])
	}
}
