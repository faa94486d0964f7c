// Package annotation implements AnnotatedImage, a sparse point -> record
// mapping, plus the two concrete annotation records the pipeline writes:
// ContourAnnotation and DijkstraAnnotation.
//
// What:
//
//   - AnnotatedImage[P, A]: generic sparse map, P comparable (point.Point3
//     or point.Point2), A any application record.
//   - ContourAnnotation: contour/pixel labels written by ContourCalculator.
//   - DijkstraAnnotation: per-axis accumulated displacement, squared
//     distance, and a reference label, written by the Dijkstra expansion.
//
// Why:
//
//   - Only a fraction of voxels ever get annotated (contour voxels during
//     labeling, object voxels during expansion); a dense array would waste
//     the background voxels' slots, so AnnotatedImage follows lvlath
//     core's map-of-metadata pattern rather than a second dense array.
//
// Complexity: Write/Read/Contains are O(1) amortized (backed by a Go
// map); Size is O(1).
package annotation
