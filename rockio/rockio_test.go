package rockio_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowdiscovery/voxelskeleton/annotation"
	"github.com/flowdiscovery/voxelskeleton/point"
	"github.com/flowdiscovery/voxelskeleton/rockio"
	"github.com/flowdiscovery/voxelskeleton/voximage"
)

func TestLoadCube_RoundTripsVoxelValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cube.raw")
	raw := []byte{0, 1, 2, 0, 1, 0, 0, 1}
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	img, err := rockio.LoadCube(path, 2, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int16(2), img.At(point.Point3{X: 0, Y: 1, Z: 0}))
	assert.True(t, img.IsObjectPoint(point.Point3{X: 1, Y: 0, Z: 0}))
	assert.False(t, img.IsObjectPoint(point.Point3{X: 0, Y: 0, Z: 0}))
}

func TestLoadCube_SizeMismatch_ReturnsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cube.raw")
	require.NoError(t, os.WriteFile(path, []byte{0, 1, 2}, 0o644))

	_, err := rockio.LoadCube(path, 2, 2, 2)
	assert.ErrorIs(t, err, rockio.ErrBufferSizeMismatch)
}

func TestLoadCube_MissingFile_ReturnsIOFailure(t *testing.T) {
	_, err := rockio.LoadCube(filepath.Join(t.TempDir(), "missing.raw"), 1, 1, 1)
	assert.ErrorIs(t, err, rockio.ErrIOFailure)
}

func TestWriteCenterlinesRaw_EmitsSortedPackedRows(t *testing.T) {
	ann := annotation.New[point.Point3, annotation.DijkstraAnnotation]()
	ann.Write(point.Point3{X: 1, Y: 0, Z: 0}, annotation.DijkstraAnnotation{Distance: 4})
	ann.Write(point.Point3{X: 0, Y: 0, Z: 0}, annotation.DijkstraAnnotation{Distance: 1})

	var buf bytes.Buffer
	require.NoError(t, rockio.WriteCenterlinesRaw(&buf, ann))

	require.Equal(t, 2*4*4, buf.Len())
	var rows [2][4]int32
	require.NoError(t, binary.Read(&buf, binary.LittleEndian, &rows))
	assert.Equal(t, [4]int32{0, 0, 0, 1}, rows[0])
	assert.Equal(t, [4]int32{1, 0, 0, 4}, rows[1])
}

func TestWriteAnnotationArray_ClassifiesEveryVoxel(t *testing.T) {
	voxBuf := []int16{0, 1, 1, 0}
	img, err := voximage.New(voxBuf, 2, 2, 1)
	require.NoError(t, err)

	ann := annotation.New[point.Point3, annotation.DijkstraAnnotation]()
	ann.Write(point.Point3{X: 1, Y: 0, Z: 0}, annotation.DijkstraAnnotation{Distance: 9})

	var buf bytes.Buffer
	require.NoError(t, rockio.WriteAnnotationArray(&buf, img, ann))

	var out [4]int32
	require.NoError(t, binary.Read(&buf, binary.LittleEndian, &out))
	assert.Equal(t, [4]int32{-2, 9, -1, -2}, out)
}

func TestWritePlotFile_NonMonotonicSizes_ReturnsError(t *testing.T) {
	var buf bytes.Buffer
	err := rockio.WritePlotFile(&buf, []int{4, 2, 8}, []int64{1, 2, 3})
	assert.ErrorIs(t, err, rockio.ErrNonMonotonicSizes)
}

func TestWritePlotFile_WritesWhitespaceSeparatedPairs(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, rockio.WritePlotFile(&buf, []int{1, 2, 4}, []int64{64, 20, 6}))
	assert.Equal(t, "1 64\n2 20\n4 6\n", buf.String())
}
