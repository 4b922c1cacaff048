// Package shape provides immutable tensor shapes and the row-major
// flat-index / multi-index codec the sparse and dense engines share.
//
// What:
//
//   - Shape: an ordered sequence of non-negative dimension extents with
//     precomputed row-major strides.
//   - FlatIndex/MultiIndex: conversions between an n-dimensional index
//     tuple and its position in a flattened row-major buffer
//     (last axis fastest).
//   - TotalSize: the element count as a *big.Int, so pathological
//     virtual shapes cannot silently overflow int.
//
// Why:
//
//   - Sparse reshape recomputes every entry's flat index under the old
//     shape and re-derives the tuple under the new one; both directions
//     live here so the two engines agree byte-for-byte.
//
// Complexity:
//
//   - New: O(rank); FlatIndex/MultiIndex: O(rank); TotalSize: O(1)
//     (computed once at construction).
//
// Errors:
//
//   - ErrInvalidShape: a negative dimension extent was supplied.
//   - ErrRankMismatch: an index tuple's arity differs from the rank.
//   - ErrIndexOutOfBounds: a coordinate or flat index exceeds its bound.
package shape
