// Package neighbor enumerates neighbouring voxels under a configured
// connectivity.
//
// What:
//
//   - Six: 3D face-adjacency (the 6 points at L1 distance 1).
//   - TwentySix: the full 3x3x3 Moore neighbourhood minus the centre.
//   - Four: the 2D analog of Six.
//
// Why:
//
//   - ContourCalculator and the Dijkstra expansion both need a
//     Point -> []Point enumeration that is agnostic to the image they
//     walk; keeping it a pure function (no bounds checking) lets callers
//     decide what "out of bounds" means for their algorithm (spec: an
//     out-of-bounds neighbour of a contour check counts as non-object).
//
// Offsets are precomputed package-level tables, read-only after
// initialization, so no calculator allocates on the hot path beyond the
// returned slice.
//
// Complexity: O(1) per call (6, 26, or 4 fixed offsets).
package neighbor
