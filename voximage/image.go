package voximage

import "github.com/flowdiscovery/voxelskeleton/point"

// Background is the distinguished non-object voxel value (pore space).
const Background int16 = 0

// Image is a dense, read-only-after-construction 3D voxel cube. The
// zero value is not usable; construct with New.
type Image struct {
	width, height, depth int
	voxels               []int16
}

// New constructs an Image from a packed buffer and explicit dimension
// sizes. The buffer is addressed x-fastest: idx = x + width*y +
// width*height*z. New copies the buffer so the Image owns its storage.
//
// Returns ErrNonPositiveDimension if any size is <= 0, or
// ErrBufferSizeMismatch if len(buf) != width*height*depth.
func New(buf []int16, width, height, depth int) (*Image, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, ErrNonPositiveDimension
	}
	if len(buf) != width*height*depth {
		return nil, ErrBufferSizeMismatch
	}
	owned := make([]int16, len(buf))
	copy(owned, buf)

	return &Image{width: width, height: height, depth: depth, voxels: owned}, nil
}

// index maps a point to its linear offset in the voxel buffer.
func (img *Image) index(p point.Point3) int {
	return p.X + img.width*p.Y + img.width*img.height*p.Z
}

// InBounds reports whether p addresses a voxel within the cube.
func (img *Image) InBounds(p point.Point3) bool {
	return p.X >= 0 && p.X < img.width &&
		p.Y >= 0 && p.Y < img.height &&
		p.Z >= 0 && p.Z < img.depth
}

// At returns the raw voxel label at p. Out-of-bounds points return
// Background, 0 -- callers that must distinguish "out of bounds" from
// "background" should check InBounds first.
func (img *Image) At(p point.Point3) int16 {
	if !img.InBounds(p) {
		return Background
	}
	return img.voxels[img.index(p)]
}

// IsObjectPoint reports whether p is in-bounds and holds a nonzero
// (foreground / rock) label.
func (img *Image) IsObjectPoint(p point.Point3) bool {
	return img.InBounds(p) && img.voxels[img.index(p)] != Background
}

// GetDimensionSize returns the size along dimension i (0=width, 1=height,
// 2=depth). Returns ErrDimensionIndex for i outside [0,3).
func (img *Image) GetDimensionSize(i int) (int, error) {
	switch i {
	case 0:
		return img.width, nil
	case 1:
		return img.height, nil
	case 2:
		return img.depth, nil
	default:
		return 0, ErrDimensionIndex
	}
}

// GetNumberOfDimensions always returns 3 for a voximage.Image.
func (img *Image) GetNumberOfDimensions() int { return 3 }

// Len returns the total voxel count (width*height*depth).
func (img *Image) Len() int { return len(img.voxels) }

// Iterator walks every point of an Image exactly once, in linear
// (x-fastest) order. The zero value is an exhausted iterator, so it
// compares equal to any iterator positioned at end -- useful as a
// sentinel without constructing one from an Image.
type Iterator struct {
	img       *Image
	next      int
	exhausted bool
}

// Cbegin returns an Iterator positioned at the first point of img.
// A nil or empty img yields an already-exhausted iterator.
func (img *Image) Cbegin() Iterator {
	if img == nil || len(img.voxels) == 0 {
		return Iterator{exhausted: true}
	}
	return Iterator{img: img, next: 0}
}

// Cend returns an exhausted Iterator for img, matching any iterator that
// has advanced past the last point.
func (img *Image) Cend() Iterator {
	return Iterator{exhausted: true}
}

// Done reports whether the iterator has yielded every point already.
func (it Iterator) Done() bool {
	return it.exhausted || it.img == nil || it.next >= len(it.img.voxels)
}

// Next returns the current point and advances the iterator. Calling Next
// on a Done iterator returns the zero Point3 and leaves it Done.
func (it *Iterator) Next() point.Point3 {
	if it.Done() {
		return point.Point3{}
	}
	idx := it.next
	w, h := it.img.width, it.img.height
	z := idx / (w * h)
	rem := idx % (w * h)
	y := rem / w
	x := rem % w
	it.next++
	if it.next >= len(it.img.voxels) {
		it.exhausted = true
	}
	return point.Point3{X: x, Y: y, Z: z}
}

// Equal reports whether two iterators are positioned equivalently: both
// done, or both referencing the same image at the same offset.
func (it Iterator) Equal(other Iterator) bool {
	if it.Done() && other.Done() {
		return true
	}
	if it.Done() != other.Done() {
		return false
	}
	return it.img == other.img && it.next == other.next
}
