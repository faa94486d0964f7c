package rockio

import "errors"

// ErrBufferSizeMismatch is returned by LoadCube when the file's byte
// length does not equal nx*ny*nz -- an invalid-argument per spec §7.
var ErrBufferSizeMismatch = errors.New("rockio: buffer length does not match requested dimensions")

// ErrNonMonotonicSizes is returned by WritePlotFile when the supplied
// box sizes are not strictly increasing, per spec §6's "monotonically
// increasing in column 1" requirement.
var ErrNonMonotonicSizes = errors.New("rockio: box sizes are not strictly increasing")

// ErrMismatchedLengths is returned by WritePlotFile when sizes and
// counts have different lengths.
var ErrMismatchedLengths = errors.New("rockio: sizes and counts have different lengths")

// ErrIOFailure wraps any underlying read/write/create failure so
// callers can distinguish io-failure from invalid-argument via
// errors.Is, per spec §7's error-kind policy.
var ErrIOFailure = errors.New("rockio: io failure")
