package shape

import "errors"

var (
	// ErrInvalidShape indicates a negative dimension extent.
	ErrInvalidShape = errors.New("shape: dimension extents must be non-negative")
	// ErrRankMismatch indicates an index tuple whose arity differs from the shape's rank.
	ErrRankMismatch = errors.New("shape: index arity does not match rank")
	// ErrIndexOutOfBounds indicates a coordinate or flat index outside the shape's extents.
	ErrIndexOutOfBounds = errors.New("shape: index out of bounds")
)
