package sparse

// Binary searches over sorted sparse index arrays. These are the leaf
// routines everything else in the package leans on; they follow the
// standard negative-encoding convention so callers can distinguish
// "found" from "insert here" without a second pass.

// PairSearch locates (row, col) in the lexicographically sorted pair of
// parallel index arrays. It returns the position if present, otherwise
// -(insertionPoint)-1 where insertionPoint is the index at which the
// pair would be inserted to keep the arrays sorted.
func PairSearch(rowIdx, colIdx []int, row, col int) int {
	lo, hi := 0, len(rowIdx)-1

	for lo <= hi {
		mid := (lo + hi) / 2
		r, c := rowIdx[mid], colIdx[mid]

		if r == row && c == col {
			return mid
		}
		if r < row || (r == row && c < col) {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	return -(lo + 1)
}

// TupleSearch locates target in indices, a slice of index tuples sorted
// lexicographically. Same return convention as PairSearch. Tuples are
// assumed to share target's arity.
func TupleSearch(indices [][]int, target []int) int {
	lo, hi := 0, len(indices)-1

	for lo <= hi {
		mid := (lo + hi) / 2
		cmp := compareTuple(indices[mid], target)

		switch {
		case cmp == 0:
			return mid
		case cmp < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return -(lo + 1)
}

// RowRange returns the half-open range [start, end) of positions in
// rowIdx (sorted ascending) holding exactly row. start == end means the
// row stores no entries; start is then the insertion point for the row.
func RowRange(rowIdx []int, row int) (start, end int) {
	// Lower bound: first position with rowIdx[pos] >= row.
	lo, hi := 0, len(rowIdx)
	for lo < hi {
		mid := (lo + hi) / 2
		if rowIdx[mid] < row {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	start = lo

	// Upper bound: first position with rowIdx[pos] > row.
	hi = len(rowIdx)
	for lo < hi {
		mid := (lo + hi) / 2
		if rowIdx[mid] <= row {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	end = lo

	return start, end
}

// compareTuple orders index tuples lexicographically.
func compareTuple(a, b []int) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}

	return 0
}
