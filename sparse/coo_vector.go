package sparse

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/shape"
)

// CooVector is a rank-1 coordinate-list sparse vector: parallel value
// and index arrays kept sorted by index ascending. The matrix
// documentation on explicit zeros, duplicates and the zero-element
// cache applies unchanged.
type CooVector[T algebra.Semiring[T]] struct {
	size int
	vals []T
	idx  []int
	zero *T
}

// NewCooVector builds a sparse vector of the given size from parallel
// arrays; they are copied, validated and sorted.
// Returns ErrInvalidShape on a negative size, ErrInvalidStructure on a
// length mismatch, ErrIndexOutOfBounds on out-of-range indices.
func NewCooVector[T algebra.Semiring[T]](size int, vals []T, idx []int) (*CooVector[T], error) {
	if size < 0 {
		return nil, fmt.Errorf("size %d: %w", size, shape.ErrInvalidShape)
	}
	if err := validateCooVector(size, len(vals), idx); err != nil {
		return nil, err
	}

	v := &CooVector[T]{
		size: size,
		vals: append([]T(nil), vals...),
		idx:  append([]int(nil), idx...),
	}
	sortSingles(v.idx, v.vals)
	v.zero = derivedZero(v.vals, nil)

	return v, nil
}

// NewCooVectorUnchecked wraps the given arrays without copying,
// validating or sorting; the invariants must already hold.
func NewCooVectorUnchecked[T algebra.Semiring[T]](size int, vals []T, idx []int) *CooVector[T] {
	v := &CooVector[T]{size: size, vals: vals, idx: idx}
	v.zero = derivedZero(v.vals, nil)

	return v
}

// newCooVecResult assembles an operation result, inheriting the zero cache.
func newCooVecResult[T algebra.Semiring[T]](size int, vals []T, idx []int, inherited *T) *CooVector[T] {
	return &CooVector[T]{size: size, vals: vals, idx: idx, zero: derivedZero(vals, inherited)}
}

// Size returns the vector length.
func (v *CooVector[T]) Size() int { return v.size }

// Shape returns the rank-1 shape.
func (v *CooVector[T]) Shape() shape.Shape { return shape.MustNew(v.size) }

// NNZ returns the number of stored entries.
func (v *CooVector[T]) NNZ() int { return len(v.vals) }

// Values returns a copy of the stored values in entry order.
func (v *CooVector[T]) Values() []T { return append([]T(nil), v.vals...) }

// Indices returns a copy of the index array.
func (v *CooVector[T]) Indices() []int { return append([]int(nil), v.idx...) }

// SetZero seeds the additive-identity cache.
func (v *CooVector[T]) SetZero(z T) { v.zero = &z }

// ZeroElem returns the cached additive identity, or ErrUnknownZero.
func (v *CooVector[T]) ZeroElem() (T, error) {
	if v.zero == nil {
		var none T
		return none, ErrUnknownZero
	}

	return *v.zero, nil
}

// Clone returns a deep copy sharing no storage with v.
func (v *CooVector[T]) Clone() *CooVector[T] {
	return newCooVecResult(v.size,
		append([]T(nil), v.vals...),
		append([]int(nil), v.idx...),
		v.zero)
}

// Get returns the value at index, or the additive identity for an
// empty position.
// Returns ErrIndexOutOfBounds outside [0, Size()), ErrUnknownZero when
// the position is empty and no zero element is known.
func (v *CooVector[T]) Get(index int) (T, error) {
	var none T
	if index < 0 || index >= v.size {
		return none, fmt.Errorf("Get(%d) on size %d: %w", index, v.size, ErrIndexOutOfBounds)
	}

	lo, hi := 0, len(v.idx)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		switch {
		case v.idx[mid] == index:
			return v.vals[mid], nil
		case v.idx[mid] < index:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return v.ZeroElem()
}

// Set returns a new vector with val stored at index; an existing entry
// is overwritten, otherwise the entry is spliced in at its insertion
// point so the result stays sorted.
// Returns ErrIndexOutOfBounds outside [0, Size()).
func (v *CooVector[T]) Set(val T, index int) (*CooVector[T], error) {
	if index < 0 || index >= v.size {
		return nil, fmt.Errorf("Set(%d) on size %d: %w", index, v.size, ErrIndexOutOfBounds)
	}

	lo, hi := 0, len(v.idx)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		switch {
		case v.idx[mid] == index:
			out := v.Clone()
			out.vals[mid] = val

			return out, nil
		case v.idx[mid] < index:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	ip := lo
	nnz := len(v.vals)
	vals := make([]T, nnz+1)
	idx := make([]int, nnz+1)

	copy(vals, v.vals[:ip])
	copy(idx, v.idx[:ip])
	vals[ip], idx[ip] = val, index
	copy(vals[ip+1:], v.vals[ip:])
	copy(idx[ip+1:], v.idx[ip:])

	return newCooVecResult(v.size, vals, idx, v.zero), nil
}

// Add returns v + other via a merge-join.
// Returns ErrShapeMismatch unless the sizes agree.
func (v *CooVector[T]) Add(other *CooVector[T]) (*CooVector[T], error) {
	if v.size != other.size {
		return nil, fmt.Errorf("Add sizes %d vs %d: %w", v.size, other.size, ErrShapeMismatch)
	}

	vals, idx, err := mergeSingles(v.vals, v.idx, other.vals, other.idx,
		addOf[T], keep[T], keep[T])
	if err != nil {
		return nil, err
	}

	return newCooVecResult(v.size, vals, idx, v.zero), nil
}

// Sub returns v - other; entries present only in other are negated.
// Returns ErrUnsupported for semiring-only elements, ErrShapeMismatch
// unless the sizes agree.
func (v *CooVector[T]) Sub(other *CooVector[T]) (*CooVector[T], error) {
	if v.size != other.size {
		return nil, fmt.Errorf("Sub sizes %d vs %d: %w", v.size, other.size, ErrShapeMismatch)
	}

	vals, idx, err := mergeSingles(v.vals, v.idx, other.vals, other.idx,
		subOf[T], keep[T], negOf[T])
	if err != nil {
		return nil, err
	}

	return newCooVecResult(v.size, vals, idx, v.zero), nil
}

// ElemMult returns the element-wise product; only positions stored on
// both sides survive.
// Returns ErrShapeMismatch unless the sizes agree.
func (v *CooVector[T]) ElemMult(other *CooVector[T]) (*CooVector[T], error) {
	if v.size != other.size {
		return nil, fmt.Errorf("ElemMult sizes %d vs %d: %w", v.size, other.size, ErrShapeMismatch)
	}

	vals, idx, err := mergeSingles(v.vals, v.idx, other.vals, other.idx,
		mulOf[T], nil, nil)
	if err != nil {
		return nil, err
	}

	return newCooVecResult(v.size, vals, idx, v.zero), nil
}

// Dot returns the inner product of v and other: a merge-join over the
// shared positions, since disjoint positions contribute zero.
// Returns ErrShapeMismatch unless the sizes agree, ErrUnknownZero when
// the supports are disjoint and no additive identity is known.
func (v *CooVector[T]) Dot(other *CooVector[T]) (T, error) {
	var acc T
	if v.size != other.size {
		return acc, fmt.Errorf("Dot sizes %d vs %d: %w", v.size, other.size, ErrShapeMismatch)
	}

	have := false
	i, j := 0, 0
	for i < len(v.vals) && j < len(other.vals) {
		switch {
		case v.idx[i] == other.idx[j]:
			p := v.vals[i].Mul(other.vals[j])
			if have {
				acc = acc.Add(p)
			} else {
				acc, have = p, true
			}
			i++
			j++
		case v.idx[i] < other.idx[j]:
			i++
		default:
			j++
		}
	}

	if !have {
		return resolveZero(v.zero, other.zero)
	}

	return acc, nil
}

// AddScalar returns v with s added to every stored entry; implicit
// zeros are untouched.
func (v *CooVector[T]) AddScalar(s T) *CooVector[T] {
	out := v.Clone()
	for i, val := range out.vals {
		out.vals[i] = val.Add(s)
	}

	return out
}

// MulScalar returns v with every stored entry multiplied by s.
func (v *CooVector[T]) MulScalar(s T) *CooVector[T] {
	out := v.Clone()
	for i, val := range out.vals {
		out.vals[i] = val.Mul(s)
	}

	return out
}

// DivScalar returns v with every stored entry divided by s.
// Returns ErrUnsupported for elements without field division.
func (v *CooVector[T]) DivScalar(s T) (*CooVector[T], error) {
	out := v.Clone()
	for i, val := range out.vals {
		q, err := divOf(val, s)
		if err != nil {
			return nil, err
		}
		out.vals[i] = q
	}

	return out, nil
}

// Join concatenates other after v: indices of other shift by v's size,
// which preserves the sort order by construction.
func (v *CooVector[T]) Join(other *CooVector[T]) *CooVector[T] {
	vals := make([]T, 0, len(v.vals)+len(other.vals))
	idx := make([]int, 0, len(v.vals)+len(other.vals))

	vals = append(append(vals, v.vals...), other.vals...)
	idx = append(idx, v.idx...)
	for _, i := range other.idx {
		idx = append(idx, i+v.size)
	}

	return newCooVecResult(v.size+other.size, vals, idx, v.zero)
}

// Stack returns a 2×Size matrix with v as row 0 and other as row 1.
// Returns ErrShapeMismatch unless the sizes agree.
func (v *CooVector[T]) Stack(other *CooVector[T]) (*CooMatrix[T], error) {
	if v.size != other.size {
		return nil, fmt.Errorf("Stack sizes %d vs %d: %w", v.size, other.size, ErrShapeMismatch)
	}

	vals := make([]T, 0, len(v.vals)+len(other.vals))
	rows := make([]int, 0, len(v.vals)+len(other.vals))
	cols := make([]int, 0, len(v.vals)+len(other.vals))

	vals = append(append(vals, v.vals...), other.vals...)
	cols = append(append(cols, v.idx...), other.idx...)
	for range v.vals {
		rows = append(rows, 0)
	}
	for range other.vals {
		rows = append(rows, 1)
	}

	return newCooResult(shape.MustNew(2, v.size), vals, rows, cols, v.zero), nil
}

// Repeat returns an n×Size matrix whose every row is v.
// Returns ErrInvalidShape for negative n.
func (v *CooVector[T]) Repeat(n int) (*CooMatrix[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("Repeat(%d): %w", n, shape.ErrInvalidShape)
	}

	vals := make([]T, 0, n*len(v.vals))
	rows := make([]int, 0, n*len(v.vals))
	cols := make([]int, 0, n*len(v.vals))

	for r := 0; r < n; r++ {
		vals = append(vals, v.vals...)
		cols = append(cols, v.idx...)
		for range v.vals {
			rows = append(rows, r)
		}
	}

	return newCooResult(shape.MustNew(n, v.size), vals, rows, cols, v.zero), nil
}

// CoalesceWith folds runs of duplicate indices into one entry via agg.
func (v *CooVector[T]) CoalesceWith(agg func(a, b T) T) *CooVector[T] {
	var vals []T
	var idx []int

	for i, val := range v.vals {
		n := len(vals)
		if n > 0 && idx[n-1] == v.idx[i] {
			vals[n-1] = agg(vals[n-1], val)
			continue
		}
		vals = append(vals, val)
		idx = append(idx, v.idx[i])
	}

	return newCooVecResult(v.size, vals, idx, v.zero)
}

// Coalesce folds duplicates by semiring addition.
func (v *CooVector[T]) Coalesce() *CooVector[T] {
	return v.CoalesceWith(func(a, b T) T { return a.Add(b) })
}

// DropZeros returns v without explicitly stored additive identities.
func (v *CooVector[T]) DropZeros() *CooVector[T] {
	var vals []T
	var idx []int

	for i, val := range v.vals {
		if val.IsZero() {
			continue
		}
		vals = append(vals, val)
		idx = append(idx, v.idx[i])
	}

	return newCooVecResult(v.size, vals, idx, v.zero)
}

// ToDense scatters the vector into a dense slice.
// Returns ErrUnknownZero when no additive identity is known to fill the
// empty positions.
func (v *CooVector[T]) ToDense() ([]T, error) {
	zero, err := resolveZero(v.zero)
	if err != nil && v.size > len(v.vals) {
		return nil, err
	}

	out := make([]T, v.size)
	for i := range out {
		out[i] = zero
	}
	for i, val := range v.vals {
		out[v.idx[i]] = val
	}

	return out, nil
}

// Equal reports value equality after coalescing and zero dropping.
func (v *CooVector[T]) Equal(other *CooVector[T]) bool {
	if v.size != other.size {
		return false
	}

	a := v.Coalesce().DropZeros()
	b := other.Coalesce().DropZeros()
	if len(a.vals) != len(b.vals) {
		return false
	}
	for i, val := range a.vals {
		if a.idx[i] != b.idx[i] || !val.Eq(b.vals[i]) {
			return false
		}
	}

	return true
}

// String renders the vector as size plus the entry list.
func (v *CooVector[T]) String() string {
	s := fmt.Sprintf("CooVector(%d){", v.size)
	for i, val := range v.vals {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%d: %s", v.idx[i], val.String())
	}

	return s + "}"
}
