// Package algebra defines the element contracts the sparse and dense
// engines are generic over, plus ready-made element types.
//
// What:
//
//   - Semiring[T]: Add, Mul, additive/multiplicative identities, IsZero.
//   - Ring[T]: Semiring + Sub, Neg, Conj.
//   - Field[T]: Ring + Div, Inv.
//   - Real64, Complex128 (fields), Int64 (ring), Bool (semiring).
//   - TrySub/TryNeg/TryDiv/TryConj: runtime capability probes for code
//     that is compiled against the Semiring bound but must offer
//     ring/field operations when the concrete element supports them.
//
// Why:
//
//   - A single generic matrix type can serve every algebraic level
//     instead of one hand-written copy per level. Operations undefined
//     at a given level (subtraction on a bare semiring) are surfaced as
//     ErrUnsupported by the callers of the Try* probes.
//
// The constraints are self-referential (T's methods consume and produce
// T), so all dispatch is static. Element types are small value types;
// their methods never mutate the receiver.
package algebra
