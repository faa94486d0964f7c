// Package voximage implements the dense 3D voxel cube: a flat buffer of
// labels addressed by point.Point3, with x-fastest linear indexing.
//
// What:
//
//   - Image: owns a packed []int16 buffer plus (width, height, depth).
//   - Iterator: yields every point exactly once in linear order; a
//     default-constructed Iterator compares equal to an exhausted one,
//     so it is usable as a sentinel.
//
// Why:
//
//   - A dense array is the natural representation for a cube that must
//     fit entirely in memory (spec: no streaming) and supports O(1)
//     random access by coordinate, which ContourCalculator and Dijkstra
//     both rely on for neighbour lookups.
//   - x + W*y + W*H*z indexing matches the row/column/plane convention
//     used by lvlath's GridGraph.index (y*Width+x) generalized to 3D.
//
// Binary convention: Background = 0 (pore), Foreground = any nonzero
// value (rock). A three-valued 0/1/2 labeling is also accepted by
// IsObjectPoint (anything != Background is object).
//
// Complexity: construction O(W*H*D); IsObjectPoint/At O(1); iteration
// O(W*H*D) total.
package voximage
