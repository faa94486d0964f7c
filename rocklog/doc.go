// Package rocklog wraps zap.Config the way a small CLI initializes
// structured logging once at startup: console encoding for interactive
// debug runs, JSON encoding otherwise. It is used by cmd/voxelskel only;
// rockio, rockconfig and the engine packages never log --
// they return errors and let the caller decide how to report them, per
// spec §5's side-effect-free core.
package rocklog
