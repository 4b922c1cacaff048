package sparse

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/shape"
)

// CooTensor is the rank-general coordinate-list sparse tensor: one
// index tuple of length Rank per stored value, tuples kept sorted
// lexicographically. CooMatrix and CooVector are the specialized rank-2
// and rank-1 forms; conversions between the three are lossless.
type CooTensor[T algebra.Semiring[T]] struct {
	sh      shape.Shape
	vals    []T
	indices [][]int
	zero    *T
}

// NewCooTensor builds a sparse tensor from parallel value and index
// arrays; both are copied (tuples deeply), validated and sorted.
// Returns ErrInvalidStructure / ErrRankMismatch / ErrIndexOutOfBounds
// on malformed input.
func NewCooTensor[T algebra.Semiring[T]](sh shape.Shape, vals []T, indices [][]int) (*CooTensor[T], error) {
	if err := validateCooTensor(sh, len(vals), indices); err != nil {
		return nil, err
	}

	t := &CooTensor[T]{
		sh:      sh,
		vals:    append([]T(nil), vals...),
		indices: make([][]int, len(indices)),
	}
	for i, tuple := range indices {
		t.indices[i] = append([]int(nil), tuple...)
	}
	sortTuples(t.indices, t.vals)
	t.zero = derivedZero(t.vals, nil)

	return t, nil
}

// NewCooTensorUnchecked wraps the given arrays without copying,
// validating or sorting; the invariants must already hold.
func NewCooTensorUnchecked[T algebra.Semiring[T]](sh shape.Shape, vals []T, indices [][]int) *CooTensor[T] {
	t := &CooTensor[T]{sh: sh, vals: vals, indices: indices}
	t.zero = derivedZero(t.vals, nil)

	return t
}

// newCooTensorResult assembles an operation result, inheriting the zero cache.
func newCooTensorResult[T algebra.Semiring[T]](sh shape.Shape, vals []T, indices [][]int, inherited *T) *CooTensor[T] {
	return &CooTensor[T]{sh: sh, vals: vals, indices: indices, zero: derivedZero(vals, inherited)}
}

// Shape returns the tensor shape.
func (t *CooTensor[T]) Shape() shape.Shape { return t.sh }

// Rank returns the number of axes.
func (t *CooTensor[T]) Rank() int { return t.sh.Rank() }

// NNZ returns the number of stored entries.
func (t *CooTensor[T]) NNZ() int { return len(t.vals) }

// Values returns a copy of the stored values in entry order.
func (t *CooTensor[T]) Values() []T { return append([]T(nil), t.vals...) }

// Indices returns a deep copy of the index tuples.
func (t *CooTensor[T]) Indices() [][]int {
	out := make([][]int, len(t.indices))
	for i, tuple := range t.indices {
		out[i] = append([]int(nil), tuple...)
	}

	return out
}

// SetZero seeds the additive-identity cache.
func (t *CooTensor[T]) SetZero(z T) { t.zero = &z }

// ZeroElem returns the cached additive identity, or ErrUnknownZero.
func (t *CooTensor[T]) ZeroElem() (T, error) {
	if t.zero == nil {
		var none T
		return none, ErrUnknownZero
	}

	return *t.zero, nil
}

// checkTuple validates arity and bounds of an access tuple.
func (t *CooTensor[T]) checkTuple(multi []int) error {
	if len(multi) != t.sh.Rank() {
		return fmt.Errorf("tuple arity %d for rank %d: %w", len(multi), t.sh.Rank(), ErrRankMismatch)
	}
	for ax, c := range multi {
		if c < 0 || c >= t.sh.Dim(ax) {
			return fmt.Errorf("coordinate %d on axis %d of %s: %w", c, ax, t.sh, ErrIndexOutOfBounds)
		}
	}

	return nil
}

// Get returns the value at the given multi-index, or the additive
// identity for an empty position.
func (t *CooTensor[T]) Get(multi ...int) (T, error) {
	var none T
	if err := t.checkTuple(multi); err != nil {
		return none, err
	}

	if pos := TupleSearch(t.indices, multi); pos >= 0 {
		return t.vals[pos], nil
	}

	return t.ZeroElem()
}

// Set returns a new tensor with val stored at the given multi-index.
// The splice keeps the tuple order without a re-sort.
func (t *CooTensor[T]) Set(val T, multi ...int) (*CooTensor[T], error) {
	if err := t.checkTuple(multi); err != nil {
		return nil, err
	}

	pos := TupleSearch(t.indices, multi)
	if pos >= 0 {
		out := t.Clone()
		out.vals[pos] = val

		return out, nil
	}

	ip := -pos - 1
	nnz := len(t.vals)
	vals := make([]T, nnz+1)
	indices := make([][]int, nnz+1)

	copy(vals, t.vals[:ip])
	for i := 0; i < ip; i++ {
		indices[i] = append([]int(nil), t.indices[i]...)
	}
	vals[ip] = val
	indices[ip] = append([]int(nil), multi...)
	copy(vals[ip+1:], t.vals[ip:])
	for i := ip; i < nnz; i++ {
		indices[i+1] = append([]int(nil), t.indices[i]...)
	}

	return newCooTensorResult(t.sh, vals, indices, t.zero), nil
}

// Clone returns a deep copy sharing no storage with t.
func (t *CooTensor[T]) Clone() *CooTensor[T] {
	return newCooTensorResult(t.sh, append([]T(nil), t.vals...), t.Indices(), t.zero)
}

// Add returns t + other via a merge-join of the sorted tuple lists.
// Returns ErrShapeMismatch unless the shapes are identical.
func (t *CooTensor[T]) Add(other *CooTensor[T]) (*CooTensor[T], error) {
	if !t.sh.Equal(other.sh) {
		return nil, fmt.Errorf("Add %s vs %s: %w", t.sh, other.sh, ErrShapeMismatch)
	}

	vals, indices, err := mergeTuples(t.vals, t.indices, other.vals, other.indices,
		addOf[T], keep[T], keep[T])
	if err != nil {
		return nil, err
	}

	return newCooTensorResult(t.sh, vals, indices, t.zero), nil
}

// Sub returns t - other; entries present only in other are negated.
// Returns ErrUnsupported for semiring-only elements.
func (t *CooTensor[T]) Sub(other *CooTensor[T]) (*CooTensor[T], error) {
	if !t.sh.Equal(other.sh) {
		return nil, fmt.Errorf("Sub %s vs %s: %w", t.sh, other.sh, ErrShapeMismatch)
	}

	vals, indices, err := mergeTuples(t.vals, t.indices, other.vals, other.indices,
		subOf[T], keep[T], negOf[T])
	if err != nil {
		return nil, err
	}

	return newCooTensorResult(t.sh, vals, indices, t.zero), nil
}

// ElemMult returns the element-wise product over the shared positions.
func (t *CooTensor[T]) ElemMult(other *CooTensor[T]) (*CooTensor[T], error) {
	if !t.sh.Equal(other.sh) {
		return nil, fmt.Errorf("ElemMult %s vs %s: %w", t.sh, other.sh, ErrShapeMismatch)
	}

	vals, indices, err := mergeTuples(t.vals, t.indices, other.vals, other.indices,
		mulOf[T], nil, nil)
	if err != nil {
		return nil, err
	}

	return newCooTensorResult(t.sh, vals, indices, t.zero), nil
}

// TransposeAxes returns t with axes a and b exchanged: every tuple has
// its a-th and b-th coordinates swapped and the entries are re-sorted
// under the permuted order.
// Panics are avoided: invalid axes yield ErrIndexOutOfBounds.
func (t *CooTensor[T]) TransposeAxes(a, b int) (*CooTensor[T], error) {
	rank := t.sh.Rank()
	if a < 0 || a >= rank || b < 0 || b >= rank {
		return nil, fmt.Errorf("TransposeAxes(%d,%d) on rank %d: %w", a, b, rank, ErrIndexOutOfBounds)
	}

	dims := t.sh.Dims()
	dims[a], dims[b] = dims[b], dims[a]

	vals := append([]T(nil), t.vals...)
	indices := make([][]int, len(t.indices))
	for i, tuple := range t.indices {
		nt := append([]int(nil), tuple...)
		nt[a], nt[b] = nt[b], nt[a]
		indices[i] = nt
	}
	sortTuples(indices, vals)

	return newCooTensorResult(shape.MustNew(dims...), vals, indices, t.zero), nil
}

// Reshape returns the tensor with identical entries under a new shape
// covering the same total count: each tuple flattens under the old
// strides and re-derives under the new ones, then the result is
// re-sorted defensively.
// Returns ErrShapeMismatch when the totals differ.
func (t *CooTensor[T]) Reshape(newShape shape.Shape) (*CooTensor[T], error) {
	if !t.sh.SameTotal(newShape) {
		return nil, fmt.Errorf("Reshape %s to %s: %w", t.sh, newShape, ErrShapeMismatch)
	}
	// The remap goes through machine-int flat indices; a virtual shape
	// whose total exceeds int range cannot be remapped that way.
	if _, ok := t.sh.TotalSizeInt(); !ok {
		return nil, fmt.Errorf("Reshape %s: flat indices exceed int range: %w", t.sh, ErrShapeMismatch)
	}

	oldStrides := t.sh.Strides()
	newStrides := newShape.Strides()
	newRank := newShape.Rank()

	vals := append([]T(nil), t.vals...)
	indices := make([][]int, len(t.indices))

	for i, tuple := range t.indices {
		flat := 0
		for ax, c := range tuple {
			flat += c * oldStrides[ax]
		}

		nt := make([]int, newRank)
		for ax := 0; ax < newRank; ax++ {
			nt[ax] = flat / newStrides[ax]
			flat %= newStrides[ax]
		}
		indices[i] = nt
	}
	sortTuples(indices, vals)

	return newCooTensorResult(newShape, vals, indices, t.zero), nil
}

// Flatten returns the rank-1 reshape of t.
func (t *CooTensor[T]) Flatten() (*CooTensor[T], error) {
	total, ok := t.sh.TotalSizeInt()
	if !ok {
		return nil, fmt.Errorf("Flatten %s: %w", t.sh, ErrShapeMismatch)
	}

	return t.Reshape(shape.MustNew(total))
}

// CoalesceWith folds runs of duplicate tuples into one entry via agg.
func (t *CooTensor[T]) CoalesceWith(agg func(a, b T) T) *CooTensor[T] {
	var vals []T
	var indices [][]int

	for i, v := range t.vals {
		n := len(vals)
		if n > 0 && compareTuple(indices[n-1], t.indices[i]) == 0 {
			vals[n-1] = agg(vals[n-1], v)
			continue
		}
		vals = append(vals, v)
		indices = append(indices, append([]int(nil), t.indices[i]...))
	}

	return newCooTensorResult(t.sh, vals, indices, t.zero)
}

// Coalesce folds duplicates by semiring addition.
func (t *CooTensor[T]) Coalesce() *CooTensor[T] {
	return t.CoalesceWith(func(a, b T) T { return a.Add(b) })
}

// DropZeros returns t without explicitly stored additive identities.
func (t *CooTensor[T]) DropZeros() *CooTensor[T] {
	var vals []T
	var indices [][]int

	for i, v := range t.vals {
		if v.IsZero() {
			continue
		}
		vals = append(vals, v)
		indices = append(indices, append([]int(nil), t.indices[i]...))
	}

	return newCooTensorResult(t.sh, vals, indices, t.zero)
}

// ToMatrix converts a rank-2 tensor to its CooMatrix form.
// Returns ErrRankMismatch for any other rank.
func (t *CooTensor[T]) ToMatrix() (*CooMatrix[T], error) {
	if t.sh.Rank() != 2 {
		return nil, fmt.Errorf("ToMatrix on rank %d: %w", t.sh.Rank(), ErrRankMismatch)
	}

	vals := append([]T(nil), t.vals...)
	rows := make([]int, len(t.indices))
	cols := make([]int, len(t.indices))
	for i, tuple := range t.indices {
		rows[i], cols[i] = tuple[0], tuple[1]
	}

	return newCooResult(t.sh, vals, rows, cols, t.zero), nil
}

// ToVector converts a rank-1 tensor to its CooVector form.
// Returns ErrRankMismatch for any other rank.
func (t *CooTensor[T]) ToVector() (*CooVector[T], error) {
	if t.sh.Rank() != 1 {
		return nil, fmt.Errorf("ToVector on rank %d: %w", t.sh.Rank(), ErrRankMismatch)
	}

	vals := append([]T(nil), t.vals...)
	idx := make([]int, len(t.indices))
	for i, tuple := range t.indices {
		idx[i] = tuple[0]
	}

	return newCooVecResult(t.sh.Dim(0), vals, idx, t.zero), nil
}

// ToDense scatters the tensor into a flat row-major slice, indexed the
// way Shape().FlatIndex maps coordinates. The dense matrix type is
// rank-2 only, so higher ranks densify to the flat buffer directly.
// Returns ErrShapeMismatch when the total count exceeds int range and
// ErrUnknownZero when no additive identity is known to fill the empty
// positions.
func (t *CooTensor[T]) ToDense() ([]T, error) {
	total, ok := t.sh.TotalSizeInt()
	if !ok {
		return nil, fmt.Errorf("ToDense %s: %w", t.sh, ErrShapeMismatch)
	}

	zero, err := resolveZero(t.zero)
	if err != nil && total > len(t.vals) {
		return nil, err
	}

	strides := t.sh.Strides()
	out := make([]T, total)
	for i := range out {
		out[i] = zero
	}
	for i, tuple := range t.indices {
		flat := 0
		for ax, c := range tuple {
			flat += c * strides[ax]
		}
		out[flat] = t.vals[i]
	}

	return out, nil
}

// TensorFromMatrix lifts a CooMatrix into the rank-2 tensor form.
func TensorFromMatrix[T algebra.Semiring[T]](m *CooMatrix[T]) *CooTensor[T] {
	vals := append([]T(nil), m.vals...)
	indices := make([][]int, len(m.vals))
	for i := range m.vals {
		indices[i] = []int{m.rowIdx[i], m.colIdx[i]}
	}

	return newCooTensorResult(m.sh, vals, indices, m.zero)
}

// Equal reports value equality after coalescing and zero dropping.
func (t *CooTensor[T]) Equal(other *CooTensor[T]) bool {
	if !t.sh.Equal(other.sh) {
		return false
	}

	a := t.Coalesce().DropZeros()
	b := other.Coalesce().DropZeros()
	if len(a.vals) != len(b.vals) {
		return false
	}
	for i, v := range a.vals {
		if compareTuple(a.indices[i], b.indices[i]) != 0 || !v.Eq(b.vals[i]) {
			return false
		}
	}

	return true
}

// String renders the tensor as shape plus the entry list.
func (t *CooTensor[T]) String() string {
	s := "CooTensor" + t.sh.String() + "{"
	for i, v := range t.vals {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%v: %s", t.indices[i], v.String())
	}

	return s + "}"
}
