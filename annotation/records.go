package annotation

// ContourAnnotation is written by ContourCalculator for every object
// voxel. PixelLabel increases monotonically in order of discovery;
// ContourLabel identifies which connected contour component (BFS flood
// among contour voxels) a contour voxel belongs to. Non-contour object
// voxels carry PixelLabel but a zero ContourLabel.
type ContourAnnotation struct {
	PixelLabel   int
	ContourLabel int
	IsContour    bool
}

// DijkstraAnnotation is written by the Dijkstra expansion. Axis holds
// the accumulated per-axis absolute displacement from the nearest
// contour voxel; Distance is always the sum of squares of Axis (spec
// invariant: distance == sum(axis_i^2)). Label is a reference to the
// originating contour's ContourLabel, propagated during expansion so
// downstream network extraction can tell which contour a medial voxel
// was grown from.
type DijkstraAnnotation struct {
	Axis     [3]int
	Distance int64
	Label    int
}

// ComputedDistance recomputes Sum(Axis_i^2) from scratch, independent of
// the stored Distance field -- used by invariant checks to assert
// distance == sum(axis^2) without trusting the cached value.
func (a DijkstraAnnotation) ComputedDistance() int64 {
	var sum int64
	for _, ax := range a.Axis {
		sum += int64(ax) * int64(ax)
	}
	return sum
}
