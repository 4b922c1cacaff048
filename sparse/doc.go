// Package sparse implements coordinate-list (COO) and compressed-row
// (CSR) storage for matrices, vectors and tensors over any
// algebra.Semiring element type.
//
// What:
//
//   - CooMatrix / CooVector / CooTensor: parallel value/index arrays,
//     entries kept lexicographically sorted by index tuple. Arithmetic
//     (Add, Sub, ElemMult, scalar ops), search, slicing, stacking,
//     row/column removal, triangular extraction, transpose, reshape,
//     coalescing and zero dropping.
//   - CsrMatrix: row-pointer storage with fast row-range lookups,
//     matrix products (dense- and sparse-result), transpose and
//     structural property checks. Operations outside CSR's efficient
//     suit (stacking, slicing, removal) delegate through a COO round
//     trip — a deliberate simplicity trade-off.
//   - Conversions: COO <-> CSR, COO/CSR -> dense, dense -> COO. The
//     dense matrix type is rank-2, so CooTensor.ToDense produces the
//     flat row-major slice instead.
//
// Value semantics:
//
//   - Every operation returns a fresh structure owning fresh arrays.
//     The only exceptions are SwapRowsInPlace/SwapColsInPlace, named to
//     advertise the mutation, and the lazily set zero-element cache.
//   - Structures are safe for concurrent reads once constructed; they
//     are not safe for concurrent mutation.
//
// Zero element:
//
//   - The additive identity is cached from the first stored value at
//     construction. An all-implicit structure has no sample to derive
//     it from; operations that need it then return ErrUnknownZero until
//     the caller seeds it with SetZero.
//
// Sorting invariant:
//
//   - Checked constructors sort; every public operation preserves or
//     restores the lexicographic order, so results are always sorted.
//     Unchecked constructors trust the caller and skip both validation
//     and sorting.
//
// Errors:
//
//   - ErrShapeMismatch, ErrIndexOutOfBounds, ErrInvalidStructure,
//     ErrUnsupported, ErrUnknownZero — all sentinels, matched with
//     errors.Is; no public entry point panics on user input.
package sparse
