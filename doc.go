// Package lvlalg is a generic linear-algebra toolkit built around sparse
// coordinate (COO) and compressed-row (CSR) storage, parameterized over
// abstract algebraic structures (semirings, rings, fields).
//
// 🚀 What is lvlalg?
//
//	A pure-Go library that brings together:
//		• algebra/ — Semiring/Ring/Field element contracts + ready-made
//		  Real64, Complex128, Int64 and Bool element types
//		• shape/   — immutable shapes with row-major flat/multi index codecs
//		• dense/   — a generic dense matrix collaborator with a gonum bridge
//		• sparse/  — COO matrices, vectors and tensors plus CSR matrices:
//		  arithmetic, slicing, stacking, coalescing, format conversion
//		• spy/     — sparsity-pattern plots rendered with gonum/plot
//
// ✨ Why choose lvlalg?
//
//   - Value semantics – every operation returns a fresh structure; the two
//     in-place row/column swaps are the only, clearly named, exceptions
//   - Capability-gated algebra – subtraction needs a Ring element, division
//     a Field element; semiring-only types are rejected with ErrUnsupported
//   - Sentinel errors everywhere – match with errors.Is, never panic on
//     user input
//
// Structures are safe for concurrent reads once fully constructed. They are
// not safe for concurrent mutation: the in-place swaps and the lazily set
// zero-element cache assume a single writer.
//
// Start with the sparse package; see its examples for typical flows.
package lvlalg
