package dense

import (
	"errors"

	"github.com/katalvlaran/lvlalg/shape"
)

var (
	// ErrInvalidDimensions indicates a negative row or column count.
	ErrInvalidDimensions = errors.New("dense: dimensions must be non-negative")
	// ErrShapeMismatch indicates operand dimensions incompatible with the operation.
	ErrShapeMismatch = errors.New("dense: dimension mismatch")
	// ErrUnsupported indicates an operation undefined for the element's algebraic level.
	ErrUnsupported = errors.New("dense: operation undefined for element capability")
)

// ErrIndexOutOfBounds aliases the shape package's bounds sentinel so
// callers can match either name with errors.Is.
var ErrIndexOutOfBounds = shape.ErrIndexOutOfBounds
