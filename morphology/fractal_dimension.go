package morphology

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/stat"

	"github.com/flowdiscovery/voxelskeleton/point"
	"github.com/flowdiscovery/voxelskeleton/voximage"
)

// phaseFile names the plot file spec §6 assigns to each phase.
var phaseFile = map[Phase]string{
	PhasePore: "pore_frac_plot.dat",
	PhaseRock: "rock_frac_plot.dat",
}

const phaseSurfaceFile = "surf_frac_plot.dat"

// Dimensions holds the box-counting fractal dimension estimate fitted
// per phase, in addition to the raw plot files FractalDimension writes
// to folder.
type Dimensions struct {
	Pore, Surface, Rock float64
}

// FractalDimension performs box counting over three phases -- pore,
// surface (rock voxels touching pore), and rock -- at every box edge in
// sizes, and writes one whitespace-separated (box size, count) plot file
// per phase into folder, per spec §4.10 / §6.
//
// sizes must be non-empty and should evenly divide each of img's
// dimensions for the count to be meaningful; sizes that do not divide
// evenly still produce a count (partial boundary boxes are included),
// but the caller is responsible for choosing a sensible sequence (e.g.
// divisors of the cube edge, as spec §8's "N³ random cube" scenario
// implies).
func FractalDimension(folder string, img *voximage.Image, sizes []int) (Dimensions, error) {
	if len(sizes) == 0 {
		return Dimensions{}, ErrEmptyBoxSizes
	}

	surface := surfaceVoxels(img)

	poreCounts := boxCounts(img, sizes, func(p point.Point3) bool { return !img.IsObjectPoint(p) })
	rockCounts := boxCounts(img, sizes, func(p point.Point3) bool { return img.IsObjectPoint(p) })
	surfCounts := boxCounts(img, sizes, func(p point.Point3) bool { return surface[p] })

	if err := writePlotFile(filepath.Join(folder, phaseFile[PhasePore]), sizes, poreCounts); err != nil {
		return Dimensions{}, err
	}
	if err := writePlotFile(filepath.Join(folder, phaseFile[PhaseRock]), sizes, rockCounts); err != nil {
		return Dimensions{}, err
	}
	if err := writePlotFile(filepath.Join(folder, phaseSurfaceFile), sizes, surfCounts); err != nil {
		return Dimensions{}, err
	}

	return Dimensions{
		Pore:    fitDimension(sizes, poreCounts),
		Surface: fitDimension(sizes, surfCounts),
		Rock:    fitDimension(sizes, rockCounts),
	}, nil
}

// surfaceVoxels returns the set of rock voxels with at least one pore
// 6-neighbour, matching SurfaceToVolume's interface-voxel rule.
func surfaceVoxels(img *voximage.Image) map[point.Point3]bool {
	out := make(map[point.Point3]bool)
	it := img.Cbegin()
	for !it.Done() {
		p := it.Next()
		if img.IsObjectPoint(p) && touchesOtherPhase(img, p, true) {
			out[p] = true
		}
	}
	return out
}

// boxCounts computes, for every size in sizes, the number of
// non-overlapping size^3 boxes tiling img that contain at least one
// voxel satisfying inPhase.
func boxCounts(img *voximage.Image, sizes []int, inPhase func(point.Point3) bool) []int64 {
	counts := make([]int64, len(sizes))
	for i, size := range sizes {
		if size <= 0 {
			continue
		}
		occupied := make(map[[3]int]bool)
		it := img.Cbegin()
		for !it.Done() {
			p := it.Next()
			if !inPhase(p) {
				continue
			}
			box := [3]int{p.X / size, p.Y / size, p.Z / size}
			occupied[box] = true
		}
		counts[i] = int64(len(occupied))
	}
	return counts
}

// fitDimension fits log(count) against log(1/size) via least squares
// and returns the slope -- the standard box-counting fractal dimension
// estimator. Sizes with a zero count are skipped (undefined log).
func fitDimension(sizes []int, counts []int64) float64 {
	var xs, ys []float64
	for i, size := range sizes {
		if counts[i] <= 0 || size <= 0 {
			continue
		}
		xs = append(xs, math.Log(1/float64(size)))
		ys = append(ys, math.Log(float64(counts[i])))
	}
	if len(xs) < 2 {
		return 0
	}
	_, slope := stat.LinearRegression(xs, ys, nil, false)
	return slope
}

// writePlotFile emits sizes/counts as whitespace-separated ASCII pairs,
// one per line, matching spec §6's plot file format. FractalDimension
// writes its own files directly (rather than delegating to rockio)
// because the engine packages never import the ambient rockio package;
// see SPEC_FULL.md §2 non-goals. sizes must be strictly increasing, the
// same invariant rockio.WritePlotFile enforces for its own callers.
func writePlotFile(path string, sizes []int, counts []int64) error {
	for i := 1; i < len(sizes); i++ {
		if sizes[i] <= sizes[i-1] {
			return fmt.Errorf("%w: got %d after %d", ErrNonMonotonicSizes, sizes[i], sizes[i-1])
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrIOFailure, path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i, size := range sizes {
		if _, err := fmt.Fprintf(w, "%d %d\n", size, counts[i]); err != nil {
			return fmt.Errorf("%w: writing %s: %v", ErrIOFailure, path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: flushing %s: %v", ErrIOFailure, path, err)
	}
	return nil
}
