package point

import "fmt"

// Point3 is an ordered 3-tuple of signed integer coordinates. It is a
// plain comparable struct: equality and hashing (when used as a map key)
// are Go's built-in componentwise behaviour, which already satisfies the
// "equality is componentwise" and "deterministic hash" invariants.
type Point3 struct {
	X, Y, Z int
}

// Point2 is the 2D analog of Point3.
type Point2 struct {
	X, Y int
}

// Coord returns the i-th coordinate (0=X, 1=Y, 2=Z). It panics on an
// out-of-range index; callers that accept untrusted indices should check
// 0 <= i < 3 first (see Dim).
func (p Point3) Coord(i int) int {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	case 2:
		return p.Z
	default:
		panic(fmt.Sprintf("point: coordinate index %d out of range for Point3", i))
	}
}

// Dim reports the dimensionality of a Point3 (always 3).
func (p Point3) Dim() int { return 3 }

// Less defines a strict lexicographic total order over Point3, so points
// can be used wherever a deterministic ordering is required (e.g. stable
// iteration when a caller chooses key-sorted AnnotatedImage iteration).
func (p Point3) Less(q Point3) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.Z < q.Z
}

// Add returns the componentwise sum of p and q.
func (p Point3) Add(q Point3) Point3 {
	return Point3{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Coord returns the i-th coordinate (0=X, 1=Y) of a Point2.
func (p Point2) Coord(i int) int {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		panic(fmt.Sprintf("point: coordinate index %d out of range for Point2", i))
	}
}

// Dim reports the dimensionality of a Point2 (always 2).
func (p Point2) Dim() int { return 2 }

// Less defines a strict lexicographic total order over Point2.
func (p Point2) Less(q Point2) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Add returns the componentwise sum of p and q.
func (p Point2) Add(q Point2) Point2 {
	return Point2{X: p.X + q.X, Y: p.Y + q.Y}
}

// Builder3 constructs Point3 values by arity, decoupling call sites from
// the concrete struct layout.
type Builder3 struct{}

// Get constructs a Point3 from three coordinates.
func (Builder3) Get(x, y, z int) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Builder2 constructs Point2 values by arity.
type Builder2 struct{}

// Get constructs a Point2 from two coordinates.
func (Builder2) Get(x, y int) Point2 {
	return Point2{X: x, Y: y}
}
