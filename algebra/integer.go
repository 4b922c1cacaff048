package algebra

import "strconv"

// Int64 is the ring of int64 integers. It deliberately carries no Div:
// integers do not form a field, so field-level operations on Int64
// structures fail with ErrUnsupported in the engines.
type Int64 int64

// Compile-time check: Int64 is a Ring element (and not a Field).
var _ Ring[Int64] = Int64(0)

// Add returns i + other.
func (i Int64) Add(other Int64) Int64 { return i + other }

// Mul returns i * other.
func (i Int64) Mul(other Int64) Int64 { return i * other }

// Sub returns i - other.
func (i Int64) Sub(other Int64) Int64 { return i - other }

// Neg returns -i.
func (i Int64) Neg() Int64 { return -i }

// Conj returns i; integers are self-conjugate.
func (i Int64) Conj() Int64 { return i }

// Zero returns the additive identity 0.
func (i Int64) Zero() Int64 { return 0 }

// One returns the multiplicative identity 1.
func (i Int64) One() Int64 { return 1 }

// IsZero reports whether i == 0.
func (i Int64) IsZero() bool { return i == 0 }

// IsOne reports whether i == 1.
func (i Int64) IsOne() bool { return i == 1 }

// Eq reports exact equality with other.
func (i Int64) Eq(other Int64) bool { return i == other }

// String renders i in base 10.
func (i Int64) String() string { return strconv.FormatInt(int64(i), 10) }
