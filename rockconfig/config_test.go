package rockconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowdiscovery/voxelskeleton/rockconfig"
)

func writeConfig(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_YAML_ValidConfig(t *testing.T) {
	path := writeConfig(t, "cfg.yaml", `
cube_path: /data/cube.raw
nx: 64
ny: 64
nz: 64
output_folder: /data/out
connectivity: 26
mode: setup
`)
	cfg, err := rockconfig.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/cube.raw", cfg.CubePath)
	assert.Equal(t, 64, cfg.NX)
	assert.Equal(t, 26, cfg.Connectivity)
	assert.Equal(t, rockconfig.ModeSetup, cfg.Mode)
}

func TestLoad_JSON_ValidConfig(t *testing.T) {
	path := writeConfig(t, "cfg.json", `{
		"cube_path": "/data/cube.raw",
		"nx": 32, "ny": 32, "nz": 32,
		"output_folder": "/data/out",
		"connectivity": 6,
		"mode": "segmentation"
	}`)
	cfg, err := rockconfig.Load(path)
	require.NoError(t, err)
	assert.Equal(t, rockconfig.ModeSegmentation, cfg.Mode)
}

func TestLoad_InvalidMode_ReturnsError(t *testing.T) {
	path := writeConfig(t, "cfg.yaml", `
cube_path: /data/cube.raw
nx: 1
ny: 1
nz: 1
output_folder: /data/out
connectivity: 6
mode: bogus
`)
	_, err := rockconfig.Load(path)
	assert.ErrorIs(t, err, rockconfig.ErrInvalidMode)
}

func TestLoad_InvalidConnectivity_ReturnsError(t *testing.T) {
	path := writeConfig(t, "cfg.yaml", `
cube_path: /data/cube.raw
nx: 1
ny: 1
nz: 1
output_folder: /data/out
connectivity: 5
mode: setup
`)
	_, err := rockconfig.Load(path)
	assert.ErrorIs(t, err, rockconfig.ErrInvalidConnectivity)
}

func TestLoad_MissingFile_ReturnsIOFailure(t *testing.T) {
	_, err := rockconfig.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, rockconfig.ErrIOFailure)
}
