package sparse

import (
	"errors"

	"github.com/katalvlaran/lvlalg/shape"
)

var (
	// ErrShapeMismatch indicates operand shapes incompatible with the
	// requested operation (element-wise shape equality, matmult inner
	// dimension, reshape total count).
	ErrShapeMismatch = errors.New("sparse: operand shapes incompatible")

	// ErrInvalidStructure indicates malformed parallel arrays at
	// construction: length mismatches or non-monotonic row pointers.
	ErrInvalidStructure = errors.New("sparse: malformed sparse structure")

	// ErrUnsupported indicates an operation undefined for the element's
	// algebraic level, e.g. subtraction on a bare semiring.
	ErrUnsupported = errors.New("sparse: operation undefined for element capability")

	// ErrUnknownZero indicates the additive identity was needed but the
	// structure holds no values to derive it from and none was seeded
	// via SetZero. Recoverable: seed the zero and retry.
	ErrUnknownZero = errors.New("sparse: additive identity unknown; seed it with SetZero")
)

// Bounds and rank violations are the shape package's domain; alias its
// sentinels so sparse callers can match either name with errors.Is.
var (
	ErrIndexOutOfBounds = shape.ErrIndexOutOfBounds
	ErrRankMismatch     = shape.ErrRankMismatch
)
