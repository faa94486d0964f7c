package skeleton

import (
	"fmt"

	"github.com/flowdiscovery/voxelskeleton/annotation"
	"github.com/flowdiscovery/voxelskeleton/neighbor"
	"github.com/flowdiscovery/voxelskeleton/pathcost"
	"github.com/flowdiscovery/voxelskeleton/point"
	"github.com/flowdiscovery/voxelskeleton/pqueue"
	"github.com/flowdiscovery/voxelskeleton/voximage"
)

// Expander runs the multi-source Dijkstra expansion of spec §4.8. It
// holds no per-run state beyond the neighbour calculator it was built
// with, so one instance may be reused across images.
type Expander struct {
	neighbours neighbor.Calculator3
	cost       pathcost.QuadraticPathCalculator
}

// New constructs an Expander that enumerates neighbours via calc
// (typically neighbor.Six or neighbor.TwentySix -- the same calculator
// used to build the contours being seeded from).
func New(calc neighbor.Calculator3) *Expander {
	return &Expander{neighbours: calc}
}

// Expand seeds every contour voxel at distance 0 and relaxes outward
// over object voxels, returning an AnnotatedImage covering every object
// voxel reachable from a contour. An image with no object voxels (hence
// no contour voxels) yields an empty, non-error result.
//
// If the heap ever reports a decrease-key violation during relaxation --
// which the algorithm's own precondition (only call IncreasePriority when
// the tentative distance is strictly smaller) should make unreachable --
// Expand returns ErrHeapInvariant wrapping the underlying cause rather
// than panicking.
func (e *Expander) Expand(
	img *voximage.Image,
	contours *annotation.AnnotatedImage[point.Point3, annotation.ContourAnnotation],
) (*annotation.AnnotatedImage[point.Point3, annotation.DijkstraAnnotation], error) {
	out := annotation.New[point.Point3, annotation.DijkstraAnnotation]()
	heap := pqueue.New[point.Point3, int64]()
	frozen := make(map[point.Point3]bool)

	for _, p := range contours.Points() {
		contourAnn, err := contours.Read(p)
		if err != nil {
			continue
		}
		if !contourAnn.IsContour {
			continue
		}
		out.Write(p, annotation.DijkstraAnnotation{Axis: [3]int{0, 0, 0}, Distance: 0, Label: contourAnn.ContourLabel})
		if err := heap.Insert(pqueue.Element[point.Point3, int64]{ID: p, Priority: 0}); err != nil {
			// Duplicate contour point: contours.Points() never repeats a
			// key, so this cannot happen.
			return nil, fmt.Errorf("skeleton: seeding contour voxel %v: %w", p, err)
		}
	}

	for !heap.IsEmpty() {
		elem, err := heap.Remove()
		if err != nil {
			return nil, fmt.Errorf("skeleton: draining heap: %w", err)
		}
		p := elem.ID
		if frozen[p] {
			continue
		}
		frozen[p] = true

		pAnn, err := out.Read(p)
		if err != nil {
			return nil, fmt.Errorf("skeleton: frozen voxel %v missing annotation: %w", p, err)
		}

		for _, q := range e.neighbours(p) {
			if !img.IsObjectPoint(q) || frozen[q] {
				continue
			}
			axis, distance := e.cost.UpdatePointPathCost(p, pAnn.Axis, q)

			if !out.Contains(q) {
				out.Write(q, annotation.DijkstraAnnotation{Axis: axis, Distance: distance, Label: pAnn.Label})
				if err := heap.Insert(pqueue.Element[point.Point3, int64]{ID: q, Priority: distance}); err != nil {
					return nil, fmt.Errorf("skeleton: inserting %v: %w", q, err)
				}
				continue
			}

			qAnn, err := out.Read(q)
			if err != nil {
				return nil, fmt.Errorf("skeleton: re-reading %v: %w", q, err)
			}
			if distance < qAnn.Distance {
				out.Write(q, annotation.DijkstraAnnotation{Axis: axis, Distance: distance, Label: pAnn.Label})
				if err := heap.IncreasePriority(q, distance); err != nil {
					return nil, fmt.Errorf("%w: %v: %v", ErrHeapInvariant, q, err)
				}
			}
		}
	}

	return out, nil
}
