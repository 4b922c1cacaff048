package sparse

// Merge-join kernels for element-wise arithmetic between two sorted
// entry lists. At each step the smaller key is emitted via its one-side
// handler; equal keys are combined. A nil one-side handler drops the
// entry, which yields intersection semantics (ElemMult: the missing
// side is implicitly zero, and zero annihilates products).
//
// Inputs must be sorted; entries within one operand sharing a key are
// consumed one at a time, so uncoalesced operands still merge without
// losing entries.

// mergePairs joins two (row, col)-sorted rank-2 entry lists.
func mergePairs[T any](
	aVals []T, aRows, aCols []int,
	bVals []T, bRows, bCols []int,
	onBoth func(x, y T) (T, error),
	onLeft func(x T) (T, error),
	onRight func(y T) (T, error),
) (vals []T, rows, cols []int, err error) {
	i, j := 0, 0
	var v T

	for i < len(aVals) && j < len(bVals) {
		cmp := comparePair(aRows[i], aCols[i], bRows[j], bCols[j])

		switch {
		case cmp == 0:
			if v, err = onBoth(aVals[i], bVals[j]); err != nil {
				return nil, nil, nil, err
			}
			vals = append(vals, v)
			rows = append(rows, aRows[i])
			cols = append(cols, aCols[i])
			i++
			j++
		case cmp < 0:
			if onLeft != nil {
				if v, err = onLeft(aVals[i]); err != nil {
					return nil, nil, nil, err
				}
				vals = append(vals, v)
				rows = append(rows, aRows[i])
				cols = append(cols, aCols[i])
			}
			i++
		default:
			if onRight != nil {
				if v, err = onRight(bVals[j]); err != nil {
					return nil, nil, nil, err
				}
				vals = append(vals, v)
				rows = append(rows, bRows[j])
				cols = append(cols, bCols[j])
			}
			j++
		}
	}

	for ; i < len(aVals) && onLeft != nil; i++ {
		if v, err = onLeft(aVals[i]); err != nil {
			return nil, nil, nil, err
		}
		vals = append(vals, v)
		rows = append(rows, aRows[i])
		cols = append(cols, aCols[i])
	}
	for ; j < len(bVals) && onRight != nil; j++ {
		if v, err = onRight(bVals[j]); err != nil {
			return nil, nil, nil, err
		}
		vals = append(vals, v)
		rows = append(rows, bRows[j])
		cols = append(cols, bCols[j])
	}

	return vals, rows, cols, nil
}

// mergeSingles joins two index-sorted rank-1 entry lists.
func mergeSingles[T any](
	aVals []T, aIdx []int,
	bVals []T, bIdx []int,
	onBoth func(x, y T) (T, error),
	onLeft func(x T) (T, error),
	onRight func(y T) (T, error),
) (vals []T, idx []int, err error) {
	i, j := 0, 0
	var v T

	for i < len(aVals) && j < len(bVals) {
		switch {
		case aIdx[i] == bIdx[j]:
			if v, err = onBoth(aVals[i], bVals[j]); err != nil {
				return nil, nil, err
			}
			vals = append(vals, v)
			idx = append(idx, aIdx[i])
			i++
			j++
		case aIdx[i] < bIdx[j]:
			if onLeft != nil {
				if v, err = onLeft(aVals[i]); err != nil {
					return nil, nil, err
				}
				vals = append(vals, v)
				idx = append(idx, aIdx[i])
			}
			i++
		default:
			if onRight != nil {
				if v, err = onRight(bVals[j]); err != nil {
					return nil, nil, err
				}
				vals = append(vals, v)
				idx = append(idx, bIdx[j])
			}
			j++
		}
	}

	for ; i < len(aVals) && onLeft != nil; i++ {
		if v, err = onLeft(aVals[i]); err != nil {
			return nil, nil, err
		}
		vals = append(vals, v)
		idx = append(idx, aIdx[i])
	}
	for ; j < len(bVals) && onRight != nil; j++ {
		if v, err = onRight(bVals[j]); err != nil {
			return nil, nil, err
		}
		vals = append(vals, v)
		idx = append(idx, bIdx[j])
	}

	return vals, idx, nil
}

// mergeTuples joins two lexicographically sorted rank-general entry
// lists. Result tuples are copied, never aliased to either input.
func mergeTuples[T any](
	aVals []T, aIdx [][]int,
	bVals []T, bIdx [][]int,
	onBoth func(x, y T) (T, error),
	onLeft func(x T) (T, error),
	onRight func(y T) (T, error),
) (vals []T, idx [][]int, err error) {
	i, j := 0, 0
	var v T

	emit := func(val T, tuple []int) {
		vals = append(vals, val)
		idx = append(idx, append([]int(nil), tuple...))
	}

	for i < len(aVals) && j < len(bVals) {
		cmp := compareTuple(aIdx[i], bIdx[j])

		switch {
		case cmp == 0:
			if v, err = onBoth(aVals[i], bVals[j]); err != nil {
				return nil, nil, err
			}
			emit(v, aIdx[i])
			i++
			j++
		case cmp < 0:
			if onLeft != nil {
				if v, err = onLeft(aVals[i]); err != nil {
					return nil, nil, err
				}
				emit(v, aIdx[i])
			}
			i++
		default:
			if onRight != nil {
				if v, err = onRight(bVals[j]); err != nil {
					return nil, nil, err
				}
				emit(v, bIdx[j])
			}
			j++
		}
	}

	for ; i < len(aVals) && onLeft != nil; i++ {
		if v, err = onLeft(aVals[i]); err != nil {
			return nil, nil, err
		}
		emit(v, aIdx[i])
	}
	for ; j < len(bVals) && onRight != nil; j++ {
		if v, err = onRight(bVals[j]); err != nil {
			return nil, nil, err
		}
		emit(v, bIdx[j])
	}

	return vals, idx, nil
}

// comparePair orders (row, col) keys lexicographically.
func comparePair(r1, c1, r2, c2 int) int {
	switch {
	case r1 != r2:
		if r1 < r2 {
			return -1
		}
		return 1
	case c1 != c2:
		if c1 < c2 {
			return -1
		}
		return 1
	default:
		return 0
	}
}
