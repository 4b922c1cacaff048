package algebra

import "strconv"

// Bool is the boolean semiring: Add is logical OR, Mul is logical AND.
// It is the canonical semiring-only element — it has no Sub/Neg/Div, so
// ring- and field-level operations on Bool structures fail with
// ErrUnsupported. Useful for reachability and pattern algebra.
type Bool bool

// Compile-time check: Bool is a Semiring element.
var _ Semiring[Bool] = Bool(false)

// Add returns b OR other.
func (b Bool) Add(other Bool) Bool { return b || other }

// Mul returns b AND other.
func (b Bool) Mul(other Bool) Bool { return b && other }

// Zero returns the additive identity false.
func (b Bool) Zero() Bool { return false }

// One returns the multiplicative identity true.
func (b Bool) One() Bool { return true }

// IsZero reports whether b is false.
func (b Bool) IsZero() bool { return !bool(b) }

// IsOne reports whether b is true.
func (b Bool) IsOne() bool { return bool(b) }

// Eq reports equality with other.
func (b Bool) Eq(other Bool) bool { return b == other }

// String renders b as "true" or "false".
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }
