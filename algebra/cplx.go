package algebra

import (
	"math/cmplx"
	"strconv"
)

// Complex128 is the field of complex128 numbers.
type Complex128 complex128

// Compile-time check: Complex128 is a Field element.
var _ Field[Complex128] = Complex128(0)

// Add returns c + other.
func (c Complex128) Add(other Complex128) Complex128 { return c + other }

// Mul returns c * other.
func (c Complex128) Mul(other Complex128) Complex128 { return c * other }

// Sub returns c - other.
func (c Complex128) Sub(other Complex128) Complex128 { return c - other }

// Div returns c / other.
func (c Complex128) Div(other Complex128) Complex128 { return c / other }

// Neg returns -c.
func (c Complex128) Neg() Complex128 { return -c }

// Inv returns 1 / c.
func (c Complex128) Inv() Complex128 { return 1 / c }

// Conj returns the complex conjugate of c.
func (c Complex128) Conj() Complex128 {
	return Complex128(complex(real(c), -imag(c)))
}

// Sqrt returns the principal square root of c.
func (c Complex128) Sqrt() Complex128 {
	return Complex128(cmplx.Sqrt(complex128(c)))
}

// Zero returns the additive identity 0.
func (c Complex128) Zero() Complex128 { return 0 }

// One returns the multiplicative identity 1.
func (c Complex128) One() Complex128 { return 1 }

// IsZero reports whether c == 0.
func (c Complex128) IsZero() bool { return c == 0 }

// IsOne reports whether c == 1.
func (c Complex128) IsOne() bool { return c == 1 }

// Eq reports exact equality with other.
func (c Complex128) Eq(other Complex128) bool { return c == other }

// String renders c in Go's complex literal form.
func (c Complex128) String() string {
	return strconv.FormatComplex(complex128(c), 'g', -1, 128)
}
