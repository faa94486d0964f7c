package skeleton

import (
	"github.com/flowdiscovery/voxelskeleton/annotation"
	"github.com/flowdiscovery/voxelskeleton/neighbor"
	"github.com/flowdiscovery/voxelskeleton/point"
	"github.com/flowdiscovery/voxelskeleton/voximage"
)

// ExtractCenterline applies the local-maximum rule of spec §4.8 to a
// completed Dijkstra annotation: a voxel is medial when its distance is
// greater than or equal to the distance of every object neighbour. Only
// annotated (reachable) voxels are considered; an image with no
// annotations yields an empty, non-error result.
//
// neighbours should be the same calculator the Expander was built with,
// so medial-axis connectivity matches the expansion's own connectivity.
func ExtractCenterline(
	img *voximage.Image,
	dijkstra *annotation.AnnotatedImage[point.Point3, annotation.DijkstraAnnotation],
	neighbours neighbor.Calculator3,
) []point.Point3 {
	var medial []point.Point3

	for _, p := range dijkstra.Points() {
		pAnn, err := dijkstra.Read(p)
		if err != nil {
			continue
		}
		if isLocalMaximum(img, dijkstra, neighbours, p, pAnn) {
			medial = append(medial, p)
		}
	}

	return medial
}

func isLocalMaximum(
	img *voximage.Image,
	dijkstra *annotation.AnnotatedImage[point.Point3, annotation.DijkstraAnnotation],
	neighbours neighbor.Calculator3,
	p point.Point3,
	pAnn annotation.DijkstraAnnotation,
) bool {
	for _, q := range neighbours(p) {
		if !img.IsObjectPoint(q) {
			continue
		}
		qAnn, err := dijkstra.Read(q)
		if err != nil {
			// An object neighbour with no Dijkstra annotation was never
			// reached from any contour; it cannot outrank p.
			continue
		}
		if qAnn.Distance > pAnn.Distance {
			return false
		}
	}
	return true
}
