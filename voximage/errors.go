package voximage

import "errors"

// Sentinel errors for voximage operations.
var (
	// ErrBufferSizeMismatch indicates the supplied buffer length does not
	// equal the product of the declared dimension sizes.
	ErrBufferSizeMismatch = errors.New("voximage: buffer length does not match width*height*depth")

	// ErrNonPositiveDimension indicates a declared dimension size is <= 0.
	ErrNonPositiveDimension = errors.New("voximage: dimension sizes must be positive")

	// ErrDimensionIndex indicates GetDimensionSize was called with an index
	// outside [0, GetNumberOfDimensions()).
	ErrDimensionIndex = errors.New("voximage: dimension index out of range")
)
