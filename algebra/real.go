package algebra

import (
	"math"
	"strconv"
)

// Real64 is the field of float64 real numbers.
type Real64 float64

// Compile-time check: Real64 is a Field element.
var _ Field[Real64] = Real64(0)

// Add returns r + other.
func (r Real64) Add(other Real64) Real64 { return r + other }

// Mul returns r * other.
func (r Real64) Mul(other Real64) Real64 { return r * other }

// Sub returns r - other.
func (r Real64) Sub(other Real64) Real64 { return r - other }

// Div returns r / other.
func (r Real64) Div(other Real64) Real64 { return r / other }

// Neg returns -r.
func (r Real64) Neg() Real64 { return -r }

// Inv returns 1 / r.
func (r Real64) Inv() Real64 { return 1 / r }

// Conj returns r; real numbers are self-conjugate.
func (r Real64) Conj() Real64 { return r }

// Sqrt returns the principal square root of r.
// Negative inputs yield NaN, matching math.Sqrt.
func (r Real64) Sqrt() Real64 { return Real64(math.Sqrt(float64(r))) }

// Zero returns the additive identity 0.
func (r Real64) Zero() Real64 { return 0 }

// One returns the multiplicative identity 1.
func (r Real64) One() Real64 { return 1 }

// IsZero reports whether r == 0.
func (r Real64) IsZero() bool { return r == 0 }

// IsOne reports whether r == 1.
func (r Real64) IsOne() bool { return r == 1 }

// Eq reports exact equality with other.
func (r Real64) Eq(other Real64) bool { return r == other }

// String renders r in the shortest float64 form.
func (r Real64) String() string {
	return strconv.FormatFloat(float64(r), 'g', -1, 64)
}
