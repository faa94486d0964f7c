// Package point defines fixed-dimension integer coordinate types used
// throughout the voxel-graph pipeline.
//
// What:
//
//   - Point3 / Point2: plain, comparable value types for 3D and 2D voxel
//     coordinates.
//   - Builder3 / Builder2: arity-based constructors (Get). The other
//     packages of this module build points by struct literal and do not
//     go through the builders.
//
// Why:
//
//   - Points are map keys (AnnotatedImage, pqueue hash-index) and must be
//     cheap to copy and comparable. Plain structs of int satisfy both:
//     Go's built-in map hashing gives the "deterministic hash of
//     components" invariant for free.
//   - The builders mirror the source's PointBuilder construction idiom.
//     Neighbour calculators and other callers use Point3/Point2 struct
//     literals directly, so changing the Point representation touches
//     them as well.
//
// Complexity: every operation here is O(1).
package point
