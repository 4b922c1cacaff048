// Package dense provides the generic dense matrix the sparse engines
// convert to and from, plus a bridge to gonum for float64 data.
//
// What:
//
//   - Matrix[T]: a row-major flat buffer over any algebra.Semiring
//     element, with value-semantics arithmetic (Add, Sub, ElemMult,
//     Scale, Mul, Transpose, TensorDot).
//   - ToGonum / FromGonum: zero-surprise interchange between
//     Matrix[algebra.Real64] and *mat.Dense.
//
// Why:
//
//   - The sparse engines need a dense collaborator for operations whose
//     result is legitimately dense (matrix products, ToDense) and as a
//     conversion source (sparse.FromDense).
//
// Ring-level operations (Sub) on semiring-only elements fail with
// ErrUnsupported; shape disagreements fail with ErrShapeMismatch. All
// public indexers return errors rather than panicking.
//
// Complexity: At/Set O(1); Add/Sub/ElemMult/Scale/Transpose O(r*c);
// Mul O(r*k*c); Clone O(r*c).
package dense
