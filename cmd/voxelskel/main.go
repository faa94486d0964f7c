// Command voxelskel runs the voxel skeletonization pipeline against a
// raw voxel cube: `setup` extracts contours, the medial axis, and
// writes centerline/annotation files; `segmentation` runs the
// morphology kernels and writes the three box-counting plot files.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
