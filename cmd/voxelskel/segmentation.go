package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/flowdiscovery/voxelskeleton/morphology"
	"github.com/flowdiscovery/voxelskeleton/rockconfig"
	"github.com/flowdiscovery/voxelskeleton/rockio"
	"github.com/flowdiscovery/voxelskeleton/rocklog"
)

// boxSizes lists the box edge lengths FractalDimension samples at,
// doubling from 1 up to the cube edge. rockio.WritePlotFile and spec §6
// both require box sizes strictly increasing down the plot file, so this
// builds the sequence ascending rather than halving from edge down to 1.
func boxSizes(edge int) []int {
	var sizes []int
	for s := 1; s <= edge; s *= 2 {
		sizes = append(sizes, s)
	}
	return sizes
}

func newSegmentationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "segmentation",
		Short: "Run the morphology kernels and write the box-counting plot files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSegmentation(configPath)
		},
	}
}

func runSegmentation(configPath string) error {
	cfg, err := rockconfig.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := rocklog.New("info")
	if err != nil {
		return err
	}
	defer logger.Sync()

	img, err := rockio.LoadCube(cfg.CubePath, cfg.NX, cfg.NY, cfg.NZ)
	if err != nil {
		return err
	}

	ratios, err := morphology.SurfaceToVolume(img)
	if err != nil {
		return err
	}
	logger.Info("surface-to-volume computed",
		zap.Float64("pore_ratio", ratios[0]),
		zap.Float64("rock_ratio", ratios[1]))

	if err := os.MkdirAll(cfg.OutputFolder, 0o755); err != nil {
		return fmt.Errorf("voxelskel: creating output folder: %w", err)
	}

	dims, err := morphology.FractalDimension(cfg.OutputFolder, img, boxSizes(cfg.NX))
	if err != nil {
		return err
	}
	logger.Info("fractal dimension estimated",
		zap.Float64("pore", dims.Pore),
		zap.Float64("surface", dims.Surface),
		zap.Float64("rock", dims.Rock))

	return nil
}
