package sparse

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/shape"
)

// Construction-time invariant checks for the COO and CSR layouts.
// The checked constructors run these; the *Unchecked constructors skip
// them for internal paths that build arrays invariant-correct.

// validateCooMatrix checks the rank-2 COO invariants: equal-length
// parallel arrays and every index within its axis extent.
func validateCooMatrix(sh shape.Shape, nVals int, rowIdx, colIdx []int) error {
	if len(rowIdx) != nVals || len(colIdx) != nVals {
		return fmt.Errorf("parallel arrays of lengths %d/%d/%d: %w",
			nVals, len(rowIdx), len(colIdx), ErrInvalidStructure)
	}

	rows, cols := sh.Dim(0), sh.Dim(1)
	for i := 0; i < nVals; i++ {
		if rowIdx[i] < 0 || rowIdx[i] >= rows || colIdx[i] < 0 || colIdx[i] >= cols {
			return fmt.Errorf("entry %d at (%d,%d) outside %s: %w",
				i, rowIdx[i], colIdx[i], sh, ErrIndexOutOfBounds)
		}
	}

	return nil
}

// validateCooVector checks the rank-1 COO invariants.
func validateCooVector(size, nVals int, idx []int) error {
	if len(idx) != nVals {
		return fmt.Errorf("parallel arrays of lengths %d/%d: %w",
			nVals, len(idx), ErrInvalidStructure)
	}
	for i := 0; i < nVals; i++ {
		if idx[i] < 0 || idx[i] >= size {
			return fmt.Errorf("entry %d at %d outside size %d: %w",
				i, idx[i], size, ErrIndexOutOfBounds)
		}
	}

	return nil
}

// validateCooTensor checks the rank-general COO invariants: one index
// tuple of matching arity per value, every coordinate in bounds.
func validateCooTensor(sh shape.Shape, nVals int, indices [][]int) error {
	if len(indices) != nVals {
		return fmt.Errorf("%d values with %d index tuples: %w",
			nVals, len(indices), ErrInvalidStructure)
	}

	rank := sh.Rank()
	for i, tuple := range indices {
		if len(tuple) != rank {
			return fmt.Errorf("tuple %d has arity %d for rank %d: %w",
				i, len(tuple), rank, ErrRankMismatch)
		}
		for ax, c := range tuple {
			if c < 0 || c >= sh.Dim(ax) {
				return fmt.Errorf("tuple %d coordinate %d on axis %d (extent %d): %w",
					i, c, ax, sh.Dim(ax), ErrIndexOutOfBounds)
			}
		}
	}

	return nil
}

// validateCsr checks the CSR invariants: rowPointers has numRows+1
// monotonically non-decreasing entries starting at 0 and ending at the
// value count, and every column index is in bounds.
func validateCsr(sh shape.Shape, nVals int, rowPtrs, colIdx []int) error {
	rows, cols := sh.Dim(0), sh.Dim(1)

	if len(rowPtrs) != rows+1 {
		return fmt.Errorf("rowPointers length %d for %d rows: %w",
			len(rowPtrs), rows, ErrInvalidStructure)
	}
	if len(colIdx) != nVals {
		return fmt.Errorf("%d values with %d column indices: %w",
			nVals, len(colIdx), ErrInvalidStructure)
	}
	if rowPtrs[0] != 0 || rowPtrs[rows] != nVals {
		return fmt.Errorf("rowPointers must span [0, %d], got [%d, %d]: %w",
			nVals, rowPtrs[0], rowPtrs[rows], ErrInvalidStructure)
	}
	for i := 1; i < len(rowPtrs); i++ {
		if rowPtrs[i] < rowPtrs[i-1] {
			return fmt.Errorf("rowPointers decrease at %d: %w", i, ErrInvalidStructure)
		}
	}
	for i, c := range colIdx {
		if c < 0 || c >= cols {
			return fmt.Errorf("entry %d in column %d of %d: %w",
				i, c, cols, ErrIndexOutOfBounds)
		}
	}

	return nil
}
