package morphology

import "errors"

// ErrNoRockVoxels is returned by SurfaceToVolume when a cube is entirely
// pore -- the rock-phase ratio is undefined (zero volume), a
// precondition-violation in spec §7's terms rather than a silent 0/0.
var ErrNoRockVoxels = errors.New("morphology: cube has no rock voxels")

// ErrNoPoreVoxels is the pore-phase analog of ErrNoRockVoxels.
var ErrNoPoreVoxels = errors.New("morphology: cube has no pore voxels")

// ErrEmptyBoxSizes is returned by FractalDimension when given no box
// edge lengths to sample.
var ErrEmptyBoxSizes = errors.New("morphology: no box sizes supplied")

// ErrNonMonotonicSizes is returned by FractalDimension when the box
// sizes supplied are not strictly increasing, the same invariant
// rockio.WritePlotFile enforces for its own callers.
var ErrNonMonotonicSizes = errors.New("morphology: box sizes must be strictly increasing")

// ErrIOFailure wraps a plot file that could not be created or written.
var ErrIOFailure = errors.New("morphology: plot file io failure")
