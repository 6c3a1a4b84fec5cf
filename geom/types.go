package geom

type Point struct {
	X float64
	Y float64
}

// A polygon is closed: the last point connects back to the first.
//
// Points are pointers so that triangles, clipped cells and convex pieces cut
// from a polygon share vertices with it. Identity is used as a map key when
// building meshes and merging pieces, so a point value belonging to an input
// polygon should never be modified in place.
type Polygon struct {
	Points []*Point
}

type Segment struct {
	Start *Point
	End   *Point
}

type Triangle struct {
	A, B, C *Point
}

// Anything with a signed area. Counterclockwise shapes have positive area.
type Shape interface {
	SignedArea() float64
}

type PointStack []*Point

type PointSet map[*Point]struct{}
