package contour_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowdiscovery/voxelskeleton/annotation"
	"github.com/flowdiscovery/voxelskeleton/contour"
	"github.com/flowdiscovery/voxelskeleton/neighbor"
	"github.com/flowdiscovery/voxelskeleton/point"
	"github.com/flowdiscovery/voxelskeleton/voximage"
)

func solidCube(t *testing.T, n int) *voximage.Image {
	t.Helper()
	buf := make([]int16, n*n*n)
	for i := range buf {
		buf[i] = 1
	}
	img, err := voximage.New(buf, n, n, n)
	require.NoError(t, err)
	return img
}

// restrictToBounds wraps calc so it never returns a point outside img,
// reproducing spec §8 scenario 7's "neighbour calculator restricted to
// in-bounds points".
func restrictToBounds(img *voximage.Image, calc neighbor.Calculator3) neighbor.Calculator3 {
	return func(p point.Point3) []point.Point3 {
		raw := calc(p)
		out := make([]point.Point3, 0, len(raw))
		for _, q := range raw {
			if img.InBounds(q) {
				out = append(out, q)
			}
		}
		return out
	}
}

// TestComputeContours_SolidCube_UnrestrictedCalculator_FaceVoxelsAreContour
// uses the ordinary Six calculator (which can return out-of-bounds
// points); a fully-foreground 3x3x3 cube then has every face/edge/corner
// voxel flagged contour, and only the single centre voxel is not.
func TestComputeContours_SolidCube_UnrestrictedCalculator_FaceVoxelsAreContour(t *testing.T) {
	img := solidCube(t, 3)
	cc := contour.New(neighbor.Six)
	out := annotation.New[point.Point3, annotation.ContourAnnotation]()
	cc.ComputeContours(img, out)

	centre := point.Point3{X: 1, Y: 1, Z: 1}
	centreAnn, err := out.Read(centre)
	require.NoError(t, err)
	assert.False(t, centreAnn.IsContour)

	contourCount := 0
	out.Iterate(func(p point.Point3, a annotation.ContourAnnotation) {
		if a.IsContour {
			contourCount++
		}
	})
	assert.Equal(t, 26, contourCount) // every voxel except the centre
}

// TestComputeContours_SolidCube_RestrictedCalculator_ZeroContours verifies
// spec §8 scenario 7 literally: with a neighbour calculator restricted to
// in-bounds points, a solid 3x3x3 cube yields zero contour voxels.
func TestComputeContours_SolidCube_RestrictedCalculator_ZeroContours(t *testing.T) {
	img := solidCube(t, 3)
	calc := restrictToBounds(img, neighbor.Six)
	cc := contour.New(calc)
	out := annotation.New[point.Point3, annotation.ContourAnnotation]()
	cc.ComputeContours(img, out)

	assert.Equal(t, 27, out.Size())
	out.Iterate(func(p point.Point3, a annotation.ContourAnnotation) {
		assert.False(t, a.IsContour, "voxel %v unexpectedly flagged contour", p)
		assert.Equal(t, 0, a.ContourLabel)
	})
}

func TestComputeContours_PixelLabelsAreUniqueAndMonotonic(t *testing.T) {
	img := solidCube(t, 3)
	cc := contour.New(neighbor.Six)
	out := annotation.New[point.Point3, annotation.ContourAnnotation]()
	cc.ComputeContours(img, out)

	seen := map[int]bool{}
	maxLabel := 0
	out.Iterate(func(p point.Point3, a annotation.ContourAnnotation) {
		assert.False(t, seen[a.PixelLabel], "duplicate pixel label %d", a.PixelLabel)
		seen[a.PixelLabel] = true
		if a.PixelLabel > maxLabel {
			maxLabel = a.PixelLabel
		}
	})
	assert.Equal(t, 27, len(seen))
	assert.Equal(t, 27, maxLabel)
}

func TestComputeContours_CubeWithCavity_CavitySurfaceIsContour(t *testing.T) {
	n := 5
	buf := make([]int16, n*n*n)
	for i := range buf {
		buf[i] = 1
	}
	// Carve a single background voxel at the centre before construction
	// (Image copies and freezes its buffer in New).
	centreIdx := 2 + n*2 + n*n*2
	buf[centreIdx] = 0
	img, err := voximage.New(buf, n, n, n)
	require.NoError(t, err)

	cc := contour.New(neighbor.Six)
	out := annotation.New[point.Point3, annotation.ContourAnnotation]()
	cc.ComputeContours(img, out)

	// The 6 face-neighbours of the cleared centre voxel must all be
	// flagged contour.
	centre := point.Point3{X: 2, Y: 2, Z: 2}
	for _, nb := range neighbor.Six(centre) {
		ann, err := out.Read(nb)
		require.NoError(t, err)
		assert.True(t, ann.IsContour, "expected %v adjacent to cavity to be contour", nb)
	}
}

func TestComputeContours_Deterministic(t *testing.T) {
	img := solidCube(t, 4)
	cc := contour.New(neighbor.Six)

	out1 := annotation.New[point.Point3, annotation.ContourAnnotation]()
	cc.ComputeContours(img, out1)
	out2 := annotation.New[point.Point3, annotation.ContourAnnotation]()
	cc.ComputeContours(img, out2)

	out1.Iterate(func(p point.Point3, a annotation.ContourAnnotation) {
		b, err := out2.Read(p)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}
