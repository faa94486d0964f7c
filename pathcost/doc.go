// Package pathcost implements the quadratic (squared-Euclidean) path
// metric used as the Dijkstra heap key.
//
// The metric is not a sum of edge lengths: it accumulates per-axis
// absolute displacement from the path's origin and squares the
// resulting Manhattan-per-axis vector, yielding the squared Euclidean
// distance along a straight line between the path's two endpoints. This
// keeps every heap key an exact integer, so comparisons and updates are
// reproducible independent of floating-point rounding.
//
// Example (spec §4.6): p=(1,-2), q=(-1,9), axis(p)=(0,0). Then
// axis(q) = (|1-(-1)|, |-2-9|) = (2,11), distance(q) = 4+121 = 125.
package pathcost
