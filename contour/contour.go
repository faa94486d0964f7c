package contour

import (
	"github.com/flowdiscovery/voxelskeleton/annotation"
	"github.com/flowdiscovery/voxelskeleton/neighbor"
	"github.com/flowdiscovery/voxelskeleton/point"
	"github.com/flowdiscovery/voxelskeleton/voximage"
)

// ContourCalculator labels object-boundary voxels of an Image, writing
// results into a caller-supplied AnnotatedImage. It holds no state of
// its own beyond the neighbour calculator it was built with, so one
// instance may be reused across images.
type ContourCalculator struct {
	neighbours neighbor.Calculator3
}

// New constructs a ContourCalculator that enumerates neighbours via calc
// (typically neighbor.Six or neighbor.TwentySix).
func New(calc neighbor.Calculator3) *ContourCalculator {
	return &ContourCalculator{neighbours: calc}
}

// ComputeContours walks img in linear order exactly once and writes a
// ContourAnnotation for every object voxel into out. Non-object voxels
// are left unannotated. The result is deterministic for a fixed image,
// neighbour enumeration, and iteration order.
//
// PixelLabel increments once per object voxel, in discovery (linear
// iteration) order. ContourLabel identifies the connected component (by
// the same connectivity) of the contour subset only; non-contour object
// voxels keep ContourLabel == 0.
func (cc *ContourCalculator) ComputeContours(img *voximage.Image, out *annotation.AnnotatedImage[point.Point3, annotation.ContourAnnotation]) {
	pixelCounter := 0
	var contourPoints []point.Point3

	it := img.Cbegin()
	for !it.Done() {
		p := it.Next()
		if !img.IsObjectPoint(p) {
			continue
		}
		pixelCounter++
		isContour := cc.isContourVoxel(img, p)
		out.Write(p, annotation.ContourAnnotation{PixelLabel: pixelCounter, IsContour: isContour})
		if isContour {
			contourPoints = append(contourPoints, p)
		}
	}

	cc.labelContourComponents(contourPoints, out)
}

// isContourVoxel reports whether any neighbour of p, as enumerated by
// cc.neighbours, fails IsObjectPoint -- which is true both for points
// outside img's bounds and for in-bounds background voxels, matching
// spec §4.7's "out-of-bounds or non-object" rule in one check.
func (cc *ContourCalculator) isContourVoxel(img *voximage.Image, p point.Point3) bool {
	for _, q := range cc.neighbours(p) {
		if !img.IsObjectPoint(q) {
			return true
		}
	}
	return false
}

// labelContourComponents assigns a ContourLabel to every point in
// contourPoints via BFS flood over the contour subset itself, using the
// same connectivity as ComputeContours. Components are discovered in the
// order their seed point appears in contourPoints (which is linear
// iteration order), so labeling is deterministic.
func (cc *ContourCalculator) labelContourComponents(contourPoints []point.Point3, out *annotation.AnnotatedImage[point.Point3, annotation.ContourAnnotation]) {
	if len(contourPoints) == 0 {
		return
	}
	isContour := make(map[point.Point3]bool, len(contourPoints))
	for _, p := range contourPoints {
		isContour[p] = true
	}

	visited := make(map[point.Point3]bool, len(contourPoints))
	label := 0
	for _, seed := range contourPoints {
		if visited[seed] {
			continue
		}
		label++
		queue := []point.Point3{seed}
		visited[seed] = true
		for qi := 0; qi < len(queue); qi++ {
			cur := queue[qi]
			ann, err := out.Read(cur)
			if err != nil {
				// Every point in contourPoints was just written by
				// ComputeContours; an absent annotation here would be a bug,
				// not a user error.
				panic("contour: BFS visited a point with no annotation")
			}
			ann.ContourLabel = label
			out.Write(cur, ann)

			for _, n := range cc.neighbours(cur) {
				if isContour[n] && !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			}
		}
	}
}
