package algebra

// Semiring is the minimal element contract required by every sparse and
// dense structure: an associative, commutative addition with identity
// Zero, and an associative multiplication with identity One that
// distributes over addition.
//
// Implementations must be usable as value types: methods take and return
// values and never mutate the receiver.
type Semiring[T any] interface {
	// Add returns the sum of the receiver and other.
	Add(other T) T
	// Mul returns the product of the receiver and other.
	Mul(other T) T
	// Zero returns the additive identity of the element type.
	Zero() T
	// One returns the multiplicative identity of the element type.
	One() T
	// IsZero reports whether the receiver equals the additive identity.
	IsZero() bool
	// IsOne reports whether the receiver equals the multiplicative identity.
	IsOne() bool
	// Eq reports exact equality with other.
	Eq(other T) bool
	// String renders the element for diagnostics.
	String() string
}

// Ring extends Semiring with additive inverses and conjugation.
// For element types without a meaningful conjugate (reals, integers),
// Conj returns the receiver unchanged.
type Ring[T any] interface {
	Semiring[T]
	// Sub returns the difference of the receiver and other.
	Sub(other T) T
	// Neg returns the additive inverse of the receiver.
	Neg() T
	// Conj returns the conjugate of the receiver.
	Conj() T
}

// Field extends Ring with multiplicative inverses.
type Field[T any] interface {
	Ring[T]
	// Div returns the quotient of the receiver and other.
	// Division by the additive identity is the caller's responsibility.
	Div(other T) T
	// Inv returns the multiplicative inverse of the receiver.
	Inv() T
}

// TrySub subtracts b from a when the concrete element type carries a
// Sub method (i.e. is at least a ring). The second return is false when
// the element is a bare semiring; the first return is then meaningless.
func TrySub[T Semiring[T]](a, b T) (T, bool) {
	if r, ok := any(a).(interface{ Sub(T) T }); ok {
		return r.Sub(b), true
	}
	var none T

	return none, false
}

// TryNeg negates a when the concrete element type carries a Neg method.
func TryNeg[T Semiring[T]](a T) (T, bool) {
	if r, ok := any(a).(interface{ Neg() T }); ok {
		return r.Neg(), true
	}
	var none T

	return none, false
}

// TryConj conjugates a when the concrete element type carries a Conj
// method.
func TryConj[T Semiring[T]](a T) (T, bool) {
	if r, ok := any(a).(interface{ Conj() T }); ok {
		return r.Conj(), true
	}
	var none T

	return none, false
}

// TryDiv divides a by b when the concrete element type carries a Div
// method (i.e. is a field).
func TryDiv[T Semiring[T]](a, b T) (T, bool) {
	if f, ok := any(a).(interface{ Div(T) T }); ok {
		return f.Div(b), true
	}
	var none T

	return none, false
}
