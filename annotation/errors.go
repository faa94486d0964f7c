package annotation

import "errors"

// ErrNotFound indicates Read was called for a point with no annotation.
var ErrNotFound = errors.New("annotation: point not found")
