package voximage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowdiscovery/voxelskeleton/point"
	"github.com/flowdiscovery/voxelskeleton/voximage"
)

func solidCube(n int) *voximage.Image {
	buf := make([]int16, n*n*n)
	for i := range buf {
		buf[i] = 1
	}
	img, err := voximage.New(buf, n, n, n)
	if err != nil {
		panic(err)
	}
	return img
}

func TestNew_RejectsBufferSizeMismatch(t *testing.T) {
	_, err := voximage.New(make([]int16, 5), 2, 2, 2)
	assert.ErrorIs(t, err, voximage.ErrBufferSizeMismatch)
}

func TestNew_RejectsNonPositiveDimension(t *testing.T) {
	_, err := voximage.New(make([]int16, 0), 0, 2, 2)
	assert.ErrorIs(t, err, voximage.ErrNonPositiveDimension)
}

func TestImage_IndexingXFastest(t *testing.T) {
	// buf laid out so voxel value == linear index, to assert x-fastest order.
	w, h, d := 2, 3, 4
	buf := make([]int16, w*h*d)
	for i := range buf {
		buf[i] = int16(i)
	}
	img, err := voximage.New(buf, w, h, d)
	require.NoError(t, err)

	assert.EqualValues(t, 0, img.At(point.Point3{X: 0, Y: 0, Z: 0}))
	assert.EqualValues(t, 1, img.At(point.Point3{X: 1, Y: 0, Z: 0}))
	assert.EqualValues(t, 2, img.At(point.Point3{X: 0, Y: 1, Z: 0}))
	assert.EqualValues(t, w*h, img.At(point.Point3{X: 0, Y: 0, Z: 1}))
}

func TestImage_IsObjectPoint(t *testing.T) {
	img := solidCube(3)
	assert.True(t, img.IsObjectPoint(point.Point3{X: 1, Y: 1, Z: 1}))
	assert.False(t, img.IsObjectPoint(point.Point3{X: -1, Y: 1, Z: 1}))
	assert.False(t, img.IsObjectPoint(point.Point3{X: 3, Y: 1, Z: 1}))
}

func TestImage_GetDimensionSize(t *testing.T) {
	img := solidCube(3)
	w, err := img.GetDimensionSize(0)
	require.NoError(t, err)
	assert.Equal(t, 3, w)
	_, err = img.GetDimensionSize(3)
	assert.ErrorIs(t, err, voximage.ErrDimensionIndex)
	assert.Equal(t, 3, img.GetNumberOfDimensions())
}

func TestIterator_YieldsEveryPointExactlyOnce(t *testing.T) {
	w, h, d := 2, 3, 2
	buf := make([]int16, w*h*d)
	img, err := voximage.New(buf, w, h, d)
	require.NoError(t, err)

	seen := map[point.Point3]int{}
	it := img.Cbegin()
	for !it.Done() {
		p := it.Next()
		seen[p]++
	}
	assert.Len(t, seen, w*h*d)
	for _, count := range seen {
		assert.Equal(t, 1, count)
	}
}

func TestIterator_CoordinatedAdvanceRemainsEqual(t *testing.T) {
	img := solidCube(2)
	a := img.Cbegin()
	b := img.Cbegin()
	assert.True(t, a.Equal(b))
	a.Next()
	assert.False(t, a.Equal(b))
	b.Next()
	assert.True(t, a.Equal(b))
}

func TestIterator_DefaultConstructedEqualsEnd(t *testing.T) {
	img := solidCube(2)
	var zero voximage.Iterator
	assert.True(t, zero.Equal(img.Cend()))
}
