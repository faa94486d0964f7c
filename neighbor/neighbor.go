package neighbor

import "github.com/flowdiscovery/voxelskeleton/point"

// six3Offsets holds the 6 face-adjacent offsets (L1 distance exactly 1).
var six3Offsets = [6]point.Point3{
	{X: -1, Y: 0, Z: 0},
	{X: 1, Y: 0, Z: 0},
	{X: 0, Y: -1, Z: 0},
	{X: 0, Y: 1, Z: 0},
	{X: 0, Y: 0, Z: -1},
	{X: 0, Y: 0, Z: 1},
}

// twentySix3Offsets holds every nonzero offset in {-1,0,1}^3 (26 entries),
// computed once at package init.
var twentySix3Offsets = computeTwentySix()

func computeTwentySix() [26]point.Point3 {
	var out [26]point.Point3
	i := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				out[i] = point.Point3{X: dx, Y: dy, Z: dz}
				i++
			}
		}
	}
	return out
}

// four2Offsets holds the 4 face-adjacent 2D offsets.
var four2Offsets = [4]point.Point2{
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: 0, Y: 1},
}

// Six returns the 6 face-adjacent neighbours of p. No bounds check is
// performed; callers are responsible for rejecting out-of-image points.
func Six(p point.Point3) []point.Point3 {
	out := make([]point.Point3, len(six3Offsets))
	for i, d := range six3Offsets {
		out[i] = p.Add(d)
	}
	return out
}

// TwentySix returns the 26 points of the Moore neighbourhood around p.
// No bounds check is performed.
func TwentySix(p point.Point3) []point.Point3 {
	out := make([]point.Point3, len(twentySix3Offsets))
	for i, d := range twentySix3Offsets {
		out[i] = p.Add(d)
	}
	return out
}

// Four returns the 4 face-adjacent neighbours of p in 2D. No bounds
// check is performed.
func Four(p point.Point2) []point.Point2 {
	out := make([]point.Point2, len(four2Offsets))
	for i, d := range four2Offsets {
		out[i] = p.Add(d)
	}
	return out
}

// Calculator3 is the capability every 3D neighbourhood enumerator
// provides: a pure Point3 -> []Point3 function. Six and TwentySix already
// satisfy this signature as plain functions; Calculator3 lets algorithms
// (ContourCalculator, Dijkstra) accept either polymorphically.
type Calculator3 func(point.Point3) []point.Point3

// Calculator2 is the 2D analog of Calculator3.
type Calculator2 func(point.Point2) []point.Point2
