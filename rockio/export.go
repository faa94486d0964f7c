package rockio

import (
	"encoding/binary"
	"fmt"
	"io"
	"sort"

	"github.com/flowdiscovery/voxelskeleton/annotation"
	"github.com/flowdiscovery/voxelskeleton/point"
	"github.com/flowdiscovery/voxelskeleton/voximage"
)

// WriteCenterlinesRaw emits the packed, row-major, 4-column (x, y, z,
// squared-radius) matrix described in spec §6: one little-endian int32
// quadruple per point annotated in ann, ordered by point.Point3.Less for
// determinism. ann is expected to hold exactly the medial (centerline)
// voxels the caller wants exported -- WriteCenterlinesRaw does not
// filter by any local-maximum rule itself.
func WriteCenterlinesRaw(w io.Writer, ann *annotation.AnnotatedImage[point.Point3, annotation.DijkstraAnnotation]) error {
	points := ann.Points()
	sort.Slice(points, func(i, j int) bool { return points[i].Less(points[j]) })

	row := make([]int32, 4)
	for _, p := range points {
		a, err := ann.Read(p)
		if err != nil {
			return fmt.Errorf("rockio: reading annotation for %v: %w", p, err)
		}
		row[0], row[1], row[2], row[3] = int32(p.X), int32(p.Y), int32(p.Z), int32(a.Distance)
		if err := binary.Write(w, binary.LittleEndian, row); err != nil {
			return fmt.Errorf("%w: writing centerline row for %v: %v", ErrIOFailure, p, err)
		}
	}
	return nil
}

// Per-voxel sentinels for the dense annotation array format (spec §6).
const (
	arrayNonObject   int32 = -2
	arrayUnannotated int32 = -1
)

// WriteAnnotationArray emits a dense, linear (x-fastest) int32 array
// covering every voxel of img: arrayNonObject for background voxels,
// arrayUnannotated for object voxels absent from ann, and the
// annotation's Distance otherwise.
func WriteAnnotationArray(w io.Writer, img *voximage.Image, ann *annotation.AnnotatedImage[point.Point3, annotation.DijkstraAnnotation]) error {
	out := make([]int32, 0, img.Len())

	it := img.Cbegin()
	for !it.Done() {
		p := it.Next()
		switch {
		case !img.IsObjectPoint(p):
			out = append(out, arrayNonObject)
		case !ann.Contains(p):
			out = append(out, arrayUnannotated)
		default:
			a, err := ann.Read(p)
			if err != nil {
				return fmt.Errorf("rockio: reading annotation for %v: %w", p, err)
			}
			out = append(out, int32(a.Distance))
		}
	}

	if err := binary.Write(w, binary.LittleEndian, out); err != nil {
		return fmt.Errorf("%w: writing annotation array: %v", ErrIOFailure, err)
	}
	return nil
}
