package rockconfig

import "errors"

// ErrInvalidMode is returned when Mode is not "setup" or "segmentation".
var ErrInvalidMode = errors.New("rockconfig: mode must be \"setup\" or \"segmentation\"")

// ErrInvalidConnectivity is returned when Connectivity is not 4, 6, or 26.
var ErrInvalidConnectivity = errors.New("rockconfig: connectivity must be 4, 6, or 26")

// ErrInvalidDimensions is returned when any cube dimension is <= 0.
var ErrInvalidDimensions = errors.New("rockconfig: cube dimensions must be positive")

// ErrIOFailure wraps a configuration file that could not be read.
var ErrIOFailure = errors.New("rockconfig: io failure")
