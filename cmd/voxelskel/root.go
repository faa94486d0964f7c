package main

import (
	"github.com/spf13/cobra"
)

var configPath string

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "voxelskel",
		Short: "Digital-rock voxel skeletonization and morphology tooling",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to the YAML/JSON configuration file")
	_ = root.MarkPersistentFlagRequired("config")

	root.AddCommand(newSetupCommand())
	root.AddCommand(newSegmentationCommand())
	return root
}
