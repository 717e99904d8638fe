package dataset

import "errors"

var (
	// ErrShapeMismatch indicates Data and Mask do not share dimensions.
	ErrShapeMismatch = errors.New("dataset: data and mask dimensions differ")

	// ErrWeightLength indicates the weight vector length does not match the
	// feature count implied by the transpose flag.
	ErrWeightLength = errors.New("dataset: weight vector length mismatch")

	// ErrEmptyBlock indicates a block with zero objects or zero features.
	ErrEmptyBlock = errors.New("dataset: block has no rows or no columns")

	// ErrIndexOutOfRange indicates an object or feature index outside the
	// block's bounds.
	ErrIndexOutOfRange = errors.New("dataset: index out of range")
)
