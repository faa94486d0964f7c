package morphology

import (
	"gonum.org/v1/gonum/floats"

	"github.com/flowdiscovery/voxelskeleton/neighbor"
	"github.com/flowdiscovery/voxelskeleton/point"
	"github.com/flowdiscovery/voxelskeleton/voximage"
)

// Phase identifies one of the two binary voxel classes.
type Phase int

const (
	PhasePore Phase = iota
	PhaseRock
)

// SurfaceToVolume computes, for the pore and rock phases in turn, the
// ratio of interface voxels (6-neighbour touches the other phase) to
// total voxels of that phase, per spec §4.10. Index 0 is pore, index 1
// is rock.
//
// Returns ErrNoPoreVoxels or ErrNoRockVoxels if a phase is entirely
// absent from the cube, since the ratio's denominator would be zero.
func SurfaceToVolume(img *voximage.Image) ([2]float64, error) {
	var pore, rock volumeSurfaceCount

	it := img.Cbegin()
	for !it.Done() {
		p := it.Next()
		if img.IsObjectPoint(p) {
			rock.volume++
			if touchesOtherPhase(img, p, true) {
				rock.surface++
			}
		} else {
			pore.volume++
			if touchesOtherPhase(img, p, false) {
				pore.surface++
			}
		}
	}

	if pore.volume == 0 {
		return [2]float64{}, ErrNoPoreVoxels
	}
	if rock.volume == 0 {
		return [2]float64{}, ErrNoRockVoxels
	}

	ratios := []float64{float64(pore.surface), float64(rock.surface)}
	volumes := []float64{float64(pore.volume), float64(rock.volume)}
	floats.DivTo(ratios, ratios, volumes)

	return [2]float64{ratios[0], ratios[1]}, nil
}

type volumeSurfaceCount struct {
	volume, surface int
}

// touchesOtherPhase reports whether any 6-neighbour of p holds a voxel
// of the opposite phase from isRock. Out-of-bounds neighbours count as
// pore (spec's background convention), so a rock voxel on the cube
// boundary is always a surface voxel.
func touchesOtherPhase(img *voximage.Image, p point.Point3, isRock bool) bool {
	for _, q := range neighbor.Six(p) {
		if img.IsObjectPoint(q) != isRock {
			return true
		}
	}
	return false
}
