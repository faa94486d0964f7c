// Package rockconfig loads the thin JSON/YAML configuration cmd/voxelskel
// needs: where the input cube lives, its dimensions, which connectivity
// to use, and which mode to run. This is deliberately minimal -- the
// spec's Non-goals name CLI parsing and config loading as outside the
// skeletonization engine's scope, so rockconfig exists only to give
// cmd/voxelskel something concrete to parse, using spf13/viper the way
// a small Go CLI conventionally does.
package rockconfig
