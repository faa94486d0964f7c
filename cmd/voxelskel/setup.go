package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/flowdiscovery/voxelskeleton/annotation"
	"github.com/flowdiscovery/voxelskeleton/contour"
	"github.com/flowdiscovery/voxelskeleton/neighbor"
	"github.com/flowdiscovery/voxelskeleton/point"
	"github.com/flowdiscovery/voxelskeleton/rockconfig"
	"github.com/flowdiscovery/voxelskeleton/rockio"
	"github.com/flowdiscovery/voxelskeleton/rocklog"
	"github.com/flowdiscovery/voxelskeleton/skeleton"
)

func newSetupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Extract contours, the medial axis, and write centerline files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(configPath)
		},
	}
}

func calculatorFor(connectivity int) (neighbor.Calculator3, error) {
	switch connectivity {
	case 6:
		return neighbor.Six, nil
	case 26:
		return neighbor.TwentySix, nil
	default:
		return nil, fmt.Errorf("voxelskel: connectivity %d is not valid for the 3D pipeline (use 6 or 26)", connectivity)
	}
}

func runSetup(configPath string) error {
	cfg, err := rockconfig.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := rocklog.New("info")
	if err != nil {
		return err
	}
	defer logger.Sync()

	calc, err := calculatorFor(cfg.Connectivity)
	if err != nil {
		return err
	}

	img, err := rockio.LoadCube(cfg.CubePath, cfg.NX, cfg.NY, cfg.NZ)
	if err != nil {
		return err
	}

	cc := contour.New(calc)
	contours := annotation.New[point.Point3, annotation.ContourAnnotation]()
	cc.ComputeContours(img, contours)

	exp := skeleton.New(calc)
	dijkstra, err := exp.Expand(img, contours)
	if err != nil {
		return err
	}

	medial := skeleton.ExtractCenterline(img, dijkstra, calc)
	logger.Info("centerline extracted", zap.Int("medial_voxels", len(medial)))

	centerline := annotation.New[point.Point3, annotation.DijkstraAnnotation]()
	for _, p := range medial {
		a, err := dijkstra.Read(p)
		if err != nil {
			return fmt.Errorf("voxelskel: reading medial annotation for %v: %w", p, err)
		}
		centerline.Write(p, a)
	}

	if err := os.MkdirAll(cfg.OutputFolder, 0o755); err != nil {
		return fmt.Errorf("voxelskel: creating output folder: %w", err)
	}

	if err := writeFile(filepath.Join(cfg.OutputFolder, "centerlines.raw"), func(f *os.File) error {
		return rockio.WriteCenterlinesRaw(f, centerline)
	}); err != nil {
		return err
	}

	return writeFile(filepath.Join(cfg.OutputFolder, "annotations.bin"), func(f *os.File) error {
		return rockio.WriteAnnotationArray(f, img, dijkstra)
	})
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("voxelskel: creating %s: %w", path, err)
	}
	defer f.Close()
	return write(f)
}
