package pathcost

import "github.com/flowdiscovery/voxelskeleton/point"

// QuadraticPathCalculator computes annotation updates along an edge p ->
// q using the accumulated-axis squared-distance metric. It holds no
// state: every method is a pure function of its arguments.
type QuadraticPathCalculator struct{}

// UpdatePointPathCost computes the annotation at q given the edge p -> q
// and the axis accumulator axisAtP already established at p. It returns
// the new axis accumulator and its squared-distance.
//
//	axis_i(q) = axis_i(p) + |q_i - p_i|
//	distance(q) = sum_i axis_i(q)^2
func (QuadraticPathCalculator) UpdatePointPathCost(p point.Point3, axisAtP [3]int, q point.Point3) (axis [3]int, distance int64) {
	axis = [3]int{
		axisAtP[0] + absInt(q.X-p.X),
		axisAtP[1] + absInt(q.Y-p.Y),
		axisAtP[2] + absInt(q.Z-p.Z),
	}
	for _, a := range axis {
		distance += int64(a) * int64(a)
	}
	return axis, distance
}

// GetConcatenatedPathCost returns only the resulting squared distance at
// q, discarding the axis accumulator that UpdatePointPathCost computes
// along the way.
func (qc QuadraticPathCalculator) GetConcatenatedPathCost(p point.Point3, axisAtP [3]int, q point.Point3) int64 {
	_, distance := qc.UpdatePointPathCost(p, axisAtP, q)
	return distance
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
