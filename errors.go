package algonufft

import "errors"

// Sentinel errors returned by plan construction and evaluation.
var (
	// ErrWindow is returned when a table's window width J or subdivision
	// rate L is not positive.
	ErrWindow = errors.New("algonufft: window parameters must be positive")

	// ErrTableLength is returned when a table slice does not have the
	// required J*L+1 samples.
	ErrTableLength = errors.New("algonufft: table length must be J*L+1")

	// ErrTableKind is returned when the two axis tables disagree on being
	// real or complex. The evaluator variants require a single kind.
	ErrTableKind = errors.New("algonufft: axis tables must both be real or both be complex")

	// ErrGridExtent is returned when a grid extent is negative.
	// Zero extents are legal and evaluate to an empty result.
	ErrGridExtent = errors.New("algonufft: negative grid extent")

	// ErrNilSlice is returned when a required slice argument is nil.
	ErrNilSlice = errors.New("algonufft: nil slice")

	// ErrLengthMismatch is returned when slice arguments do not match the
	// plan's grid size or each other's query-point count.
	ErrLengthMismatch = errors.New("algonufft: slice length mismatch")

	// ErrNotImplemented is returned for variant combinations with no
	// evaluator, currently 1st-order lookup on complex tables.
	ErrNotImplemented = errors.New("algonufft: not implemented")
)
