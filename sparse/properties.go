package sparse

import (
	"sort"

	"github.com/katalvlaran/lvlalg/algebra"
)

// Structural predicates over the CSR layout. All of them ignore
// explicitly stored zeros: a zero entry below the diagonal does not
// break IsTriU, matching the semantic view of the matrix rather than
// its storage.

// IsTriU reports whether every non-zero entry sits on or above the
// main diagonal.
func (m *CsrMatrix[T]) IsTriU() bool {
	for r := 0; r+1 < len(m.rowPtrs); r++ {
		for p := m.rowPtrs[r]; p < m.rowPtrs[r+1]; p++ {
			if m.colIdx[p] < r && !m.vals[p].IsZero() {
				return false
			}
		}
	}

	return true
}

// IsTriL reports whether every non-zero entry sits on or below the
// main diagonal.
func (m *CsrMatrix[T]) IsTriL() bool {
	for r := 0; r+1 < len(m.rowPtrs); r++ {
		for p := m.rowPtrs[r]; p < m.rowPtrs[r+1]; p++ {
			if m.colIdx[p] > r && !m.vals[p].IsZero() {
				return false
			}
		}
	}

	return true
}

// IsDiag reports whether every non-zero entry sits on the main diagonal.
func (m *CsrMatrix[T]) IsDiag() bool {
	return m.IsTriU() && m.IsTriL()
}

// IsIdentity reports whether m is square with the multiplicative
// identity at every diagonal position and zero elsewhere. An identity
// with missing diagonal entries is not recognized: all diagonal
// positions must be stored.
func (m *CsrMatrix[T]) IsIdentity() bool {
	if m.Rows() != m.Cols() {
		return false
	}

	for r := 0; r+1 < len(m.rowPtrs); r++ {
		onDiag := false
		for p := m.rowPtrs[r]; p < m.rowPtrs[r+1]; p++ {
			switch {
			case m.colIdx[p] == r:
				if !m.vals[p].IsOne() {
					return false
				}
				onDiag = true
			case !m.vals[p].IsZero():
				return false
			}
		}
		if !onDiag {
			return false
		}
	}

	return true
}

// symmetricUnder checks entry-wise agreement between m and its mirror
// image under the given comparison.
func (m *CsrMatrix[T]) symmetricUnder(eq func(a, b T) bool) bool {
	if m.Rows() != m.Cols() {
		return false
	}

	for r := 0; r+1 < len(m.rowPtrs); r++ {
		for p := m.rowPtrs[r]; p < m.rowPtrs[r+1]; p++ {
			c := m.colIdx[p]
			mirror, found := m.lookup(c, r)
			if !found {
				if !m.vals[p].IsZero() {
					return false
				}
				continue
			}
			if !eq(m.vals[p], mirror) {
				return false
			}
		}
	}

	return true
}

// lookup is the raw stored-entry probe behind Get, without the zero
// fallback.
func (m *CsrMatrix[T]) lookup(row, col int) (T, bool) {
	var none T
	start, end := m.rowPtrs[row], m.rowPtrs[row+1]
	p := start + sort.SearchInts(m.colIdx[start:end], col)
	if p < end && m.colIdx[p] == col {
		return m.vals[p], true
	}

	return none, false
}

// IsSymmetric reports whether m equals its transpose.
func (m *CsrMatrix[T]) IsSymmetric() bool {
	return m.symmetricUnder(func(a, b T) bool { return a.Eq(b) })
}

// IsHermitian reports whether m equals its conjugate transpose.
// Elements without conjugation fall back to plain symmetry.
func (m *CsrMatrix[T]) IsHermitian() bool {
	return m.symmetricUnder(func(a, b T) bool {
		c, ok := algebra.TryConj(b)
		if !ok {
			return a.Eq(b)
		}

		return a.Eq(c)
	})
}
