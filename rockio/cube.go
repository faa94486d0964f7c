package rockio

import (
	"fmt"
	"os"

	"github.com/flowdiscovery/voxelskeleton/voximage"
)

// LoadCube reads a raw packed byte buffer from path -- one byte per
// voxel, x-fastest -- and constructs a voximage.Image of the requested
// dimensions, per spec §6. 0 is background/pore; any nonzero byte is
// foreground/rock (a three-valued 0/1/2 labeling, used by morphology's
// pore/surface/rock classification, round-trips unchanged).
//
// Returns ErrIOFailure if the file cannot be read, or
// ErrBufferSizeMismatch if its length does not equal nx*ny*nz.
func LoadCube(path string, nx, ny, nz int) (*voximage.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrIOFailure, path, err)
	}

	want := nx * ny * nz
	if len(data) != want {
		return nil, fmt.Errorf("%w: %s has %d bytes, want %d", ErrBufferSizeMismatch, path, len(data), want)
	}

	buf := make([]int16, want)
	for i, b := range data {
		buf[i] = int16(b)
	}

	img, err := voximage.New(buf, nx, ny, nz)
	if err != nil {
		return nil, fmt.Errorf("rockio: constructing image from %s: %w", path, err)
	}
	return img, nil
}
