// Package contour implements ContourCalculator: it labels object voxels
// adjacent to at least one non-object (or out-of-bounds) neighbour as
// contour voxels, assigning each object voxel a monotonically increasing
// pixel label and each contour voxel a contour-component label.
//
// Algorithm (spec §4.7):
//
//  1. Iterate every point in linear order. For each object point, assign
//     the next pixel label.
//  2. A point is contour if any neighbour (under the configured
//     connectivity) is out-of-bounds or non-object.
//  3. Contour voxels are grouped into connected components via BFS over
//     the contour set itself (not the whole object), the same flood-fill
//     shape as lvlath gridgraph.ConnectedComponents generalized from a 2D
//     grid to a 3D voxel cube and from "same value" adjacency to "is
//     contour" adjacency.
//
// A fully-foreground cube whose neighbours never leave the image (e.g. a
// 3x3x3 solid interior queried with a neighbour calculator that never
// exits bounds) produces zero contours -- this is a deliberate, literal
// reading of "out of bounds counts as non-object, but a calculator that
// itself never returns an out-of-bounds point cannot trigger that rule".
// See spec §9 Open Questions and §8 scenario 7.
package contour
