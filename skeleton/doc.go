// Package skeleton implements the multi-source Dijkstra expansion and
// medial-axis (centerline) extraction described in spec §4.8.
//
// Expand seeds every contour voxel at distance 0 and relaxes outward
// through object voxels using pathcost.QuadraticPathCalculator for edge
// costs and a pqueue.BinaryHeap keyed by squared distance for ordering,
// following the same "seed all sources, then pop-relax-freeze" shape as
// lvlath dijkstra.runner, generalized from a single string-keyed source
// to many Point3-keyed contour sources and from int64 edge weights to
// the accumulated-axis quadratic metric.
//
// ExtractCenterline then applies the local-maximum rule: a voxel is
// medial when its distance is >= the distance of every object neighbour.
package skeleton
