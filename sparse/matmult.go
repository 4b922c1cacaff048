package sparse

import (
	"sort"

	"github.com/katalvlaran/lvlalg/algebra"
)

// Sparse matrix-multiplication kernels shared by the COO and CSR
// engines: the standard triple-loop contraction over a semiring,
// accumulated either into a dense row-major buffer or into per-row
// sparse accumulators.

// groupByRow maps a contraction index (B's row) to the entry positions
// holding it, so the A×B join costs O(nnz(A) * avg_row_nnz(B)) instead
// of O(nnz(A) * nnz(B)).
func groupByRow(rowIdx []int) map[int][]int {
	byRow := make(map[int][]int)
	for pos, r := range rowIdx {
		byRow[r] = append(byRow[r], pos)
	}

	return byRow
}

// cooMulDense contracts two COO entry lists into a rowsA×colsB dense
// row-major buffer pre-filled with zero.
func cooMulDense[T algebra.Semiring[T]](
	aVals []T, aRows, aCols []int,
	bVals []T, bRows, bCols []int,
	rowsA, colsB int, zero T,
) []T {
	dst := make([]T, rowsA*colsB)
	for i := range dst {
		dst[i] = zero
	}

	bByRow := groupByRow(bRows)

	for i, v := range aVals {
		r, k := aRows[i], aCols[i]
		for _, pos := range bByRow[k] {
			out := r*colsB + bCols[pos]
			dst[out] = dst[out].Add(v.Mul(bVals[pos]))
		}
	}

	return dst
}

// cooMulSparse contracts two COO entry lists into fresh sorted COO
// arrays, accumulating through one map per output row.
func cooMulSparse[T algebra.Semiring[T]](
	aVals []T, aRows, aCols []int,
	bVals []T, bRows, bCols []int,
) (vals []T, rows, cols []int) {
	bByRow := groupByRow(bRows)

	rowAcc := make(map[int]map[int]T)
	for i, v := range aVals {
		r, k := aRows[i], aCols[i]
		for _, pos := range bByRow[k] {
			c := bCols[pos]
			acc, ok := rowAcc[r]
			if !ok {
				acc = make(map[int]T)
				rowAcc[r] = acc
			}
			if cur, ok := acc[c]; ok {
				acc[c] = cur.Add(v.Mul(bVals[pos]))
			} else {
				acc[c] = v.Mul(bVals[pos])
			}
		}
	}

	// Flatten row-by-row, columns sorted, so the output needs no re-sort.
	outRows := make([]int, 0, len(rowAcc))
	for r := range rowAcc {
		outRows = append(outRows, r)
	}
	sort.Ints(outRows)

	for _, r := range outRows {
		acc := rowAcc[r]
		outCols := make([]int, 0, len(acc))
		for c := range acc {
			outCols = append(outCols, c)
		}
		sort.Ints(outCols)

		for _, c := range outCols {
			vals = append(vals, acc[c])
			rows = append(rows, r)
			cols = append(cols, c)
		}
	}

	return vals, rows, cols
}

// csrMulDense contracts two CSR layouts into a rowsA×colsB dense
// row-major buffer pre-filled with zero: for each output row i, every
// non-zero (k, v) of A's row i scatter-accumulates v * B.row(k).
func csrMulDense[T algebra.Semiring[T]](
	aVals []T, aPtrs, aCols []int,
	bVals []T, bPtrs, bCols []int,
	colsB int, zero T,
) []T {
	rowsA := len(aPtrs) - 1
	dst := make([]T, rowsA*colsB)
	for i := range dst {
		dst[i] = zero
	}

	for i := 0; i < rowsA; i++ {
		for p := aPtrs[i]; p < aPtrs[i+1]; p++ {
			k, v := aCols[p], aVals[p]
			for q := bPtrs[k]; q < bPtrs[k+1]; q++ {
				out := i*colsB + bCols[q]
				dst[out] = dst[out].Add(v.Mul(bVals[q]))
			}
		}
	}

	return dst
}

// csrMulSparse contracts two CSR layouts directly into CSR arrays,
// using one map accumulator per output row and emitting columns in
// sorted order.
func csrMulSparse[T algebra.Semiring[T]](
	aVals []T, aPtrs, aCols []int,
	bVals []T, bPtrs, bCols []int,
) (vals []T, rowPtrs, colIdx []int) {
	rowsA := len(aPtrs) - 1
	rowPtrs = make([]int, rowsA+1)

	for i := 0; i < rowsA; i++ {
		acc := make(map[int]T)
		for p := aPtrs[i]; p < aPtrs[i+1]; p++ {
			k, v := aCols[p], aVals[p]
			for q := bPtrs[k]; q < bPtrs[k+1]; q++ {
				c := bCols[q]
				if cur, ok := acc[c]; ok {
					acc[c] = cur.Add(v.Mul(bVals[q]))
				} else {
					acc[c] = v.Mul(bVals[q])
				}
			}
		}

		outCols := make([]int, 0, len(acc))
		for c := range acc {
			outCols = append(outCols, c)
		}
		sort.Ints(outCols)

		for _, c := range outCols {
			vals = append(vals, acc[c])
			colIdx = append(colIdx, c)
		}
		rowPtrs[i+1] = rowPtrs[i] + len(outCols)
	}

	return vals, rowPtrs, colIdx
}
