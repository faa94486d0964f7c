// Package rockio implements the ambient voxel-buffer ingestion and
// annotation-export glue named in spec §6: loading a dense voxel cube
// from a raw byte file, and writing centerline, annotation-array, and
// morphology plot files in the exact wire formats spec.md specifies.
//
// rockio is caller-side glue, not part of the skeletonization engine:
// the engine packages (point through morphology) never import it, so
// the engine stays side-effect-free and testable without a filesystem,
// matching spec §5's single-threaded, synchronous core. Its io helper
// shape -- small functions over an io.Writer/io.Reader, one per wire
// format -- follows the same internal/ io-helper layout other digital
// tooling in the reference corpus uses for binary export.
package rockio
