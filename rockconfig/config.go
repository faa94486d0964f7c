package rockconfig

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ModeSetup runs contour + Dijkstra + centerline extraction.
// ModeSegmentation runs the morphology kernels.
const (
	ModeSetup        = "setup"
	ModeSegmentation = "segmentation"
)

// Config is the minimal set of fields cmd/voxelskel needs to run either
// execution mode against one input cube.
type Config struct {
	// CubePath is the raw voxel buffer LoadCube reads.
	CubePath string `mapstructure:"cube_path"`
	// NX, NY, NZ are the cube's dimensions.
	NX int `mapstructure:"nx"`
	NY int `mapstructure:"ny"`
	NZ int `mapstructure:"nz"`
	// OutputFolder receives centerline, annotation-array, and plot files.
	OutputFolder string `mapstructure:"output_folder"`
	// Connectivity selects the neighbour calculator: 4 (2D), 6, or 26.
	Connectivity int `mapstructure:"connectivity"`
	// Mode selects which pipeline to run: ModeSetup or ModeSegmentation.
	Mode string `mapstructure:"mode"`
}

// Load reads a JSON or YAML configuration file at path via viper
// (format inferred from the file extension; YAML if absent) and
// validates it.
//
// Returns an ErrIOFailure-wrapping error if the file cannot be read, or
// one of ErrInvalidMode / ErrInvalidConnectivity / ErrInvalidDimensions
// if the parsed values fail validation.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext == "" {
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrIOFailure, path, err)
	}

	cfg := &Config{Connectivity: 6, Mode: ModeSetup}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrIOFailure, path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Mode != ModeSetup && c.Mode != ModeSegmentation {
		return ErrInvalidMode
	}
	if c.Connectivity != 4 && c.Connectivity != 6 && c.Connectivity != 26 {
		return ErrInvalidConnectivity
	}
	if c.NX <= 0 || c.NY <= 0 || c.NZ <= 0 {
		return ErrInvalidDimensions
	}
	return nil
}
