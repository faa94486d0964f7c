// Package morphology implements the two independent auxiliary kernels
// of spec §4.10: SurfaceToVolume and FractalDimension. Neither depends
// on the skeletonization pipeline; both operate directly on a
// voximage.Image.
//
// Phase classification follows the raw voxel value: 0 is pore, any
// nonzero value is rock. A third derived phase, surface, is the subset
// of rock voxels with at least one 6-neighbour in the pore phase --
// the same "6-neighbour intersects the other phase" rule
// SurfaceToVolume itself uses, so both kernels agree on what counts as
// an interface voxel.
//
// FractalDimension's box-counting loop and its log-log slope fit are
// grounded on lvlath `matrix`'s plain numeric-kernel package layout
// (one function per statistic, operating on slices), with the
// regression itself delegated to gonum.org/v1/gonum/stat rather than
// hand-rolled, per the Megidd-sdfx dependency this package carries.
package morphology
