package geom

import "math"

// Triangulate a simple polygon, choosing the cheapest method that handles it:
// a fan for convex polygons, the monotone sweep for Y-monotone ones, and ear
// clipping for everything else. Triangles are counterclockwise and share
// points with the (simplified) polygon. Degenerate polygons give no triangles.
func Triangulate(poly Polygon) (triangles []*Triangle) {
	poly = poly.Simplify()
	if len(poly.Points) < 3 {
		return nil
	}
	poly = poly.CCW()

	switch {
	case poly.IsConvex():
		return TriangulateFan(poly, poly.Points[0])
	case poly.IsYMonotone():
		// Near-collinear input can trip the sweep's invariants. Ear clipping is
		// slower but tolerates it.
		defer func() {
			if err := HandlePanicRecover(recover()); err != nil {
				triangles = EarClip(poly)
			}
		}()
		return TriangulateMonotone(&poly)
	default:
		return EarClip(poly)
	}
}

// Fan triangulation around apex. This is only valid when the polygon is
// star-shaped with respect to apex, which the caller must guarantee. The apex
// may be one of the polygon's own vertices, in which case the two edges
// touching it are skipped. Zero area triangles are dropped.
func TriangulateFan(poly Polygon, apex *Point) []*Triangle {
	n := len(poly.Points)
	if n < 3 {
		return nil
	}
	triangles := make([]*Triangle, 0, n)
	for i, p := range poly.Points {
		next := poly.Points[CircularIndex(i+1, n)]
		if p == apex || next == apex {
			continue
		}
		triangle := &Triangle{apex, p, next}
		if triangle.IsDegenerate() {
			continue
		}
		if IsCW(triangle) {
			triangle.B, triangle.C = triangle.C, triangle.B
		}
		triangles = append(triangles, triangle)
	}
	return triangles
}

// Ear clipping, O(n²). Works on any simple polygon, and keeps going on weakly
// simple ones (touching vertices, zero width bridges) by cutting the flattest
// corner when no proper ear exists.
func EarClip(poly Polygon) []*Triangle {
	poly = poly.Simplify()
	if len(poly.Points) < 3 {
		return nil
	}
	poly = poly.CCW()

	remaining := append([]*Point(nil), poly.Points...)
	triangles := make([]*Triangle, 0, len(remaining)-2)
	for len(remaining) > 3 {
		ear := -1
		for i := range remaining {
			if isEar(remaining, i) {
				ear = i
				break
			}
		}
		if ear < 0 {
			ear = mostConvexCorner(remaining)
		}

		n := len(remaining)
		triangle := &Triangle{
			remaining[CircularIndex(ear-1, n)],
			remaining[ear],
			remaining[CircularIndex(ear+1, n)],
		}
		if !triangle.IsDegenerate() && IsCCW(triangle) {
			triangles = append(triangles, triangle)
		}
		remaining = append(remaining[:ear], remaining[ear+1:]...)
	}

	last := &Triangle{remaining[0], remaining[1], remaining[2]}
	if !last.IsDegenerate() && IsCCW(last) {
		triangles = append(triangles, last)
	}
	return triangles
}

// A corner is an ear if it turns left and no other vertex lies inside (or on)
// the triangle it cuts off. Vertices coinciding with the corner's own points
// do not count; they show up where bridges touch.
func isEar(points []*Point, i int) bool {
	n := len(points)
	prev := points[CircularIndex(i-1, n)]
	cur := points[i]
	next := points[CircularIndex(i+1, n)]
	if Turn(prev, cur, next) <= Epsilon {
		return false
	}

	triangle := &Triangle{prev, cur, next}
	for _, p := range points {
		if p == prev || p == cur || p == next {
			continue
		}
		if p.Near(*prev) || p.Near(*cur) || p.Near(*next) {
			continue
		}
		if triangle.ContainsPoint(p) {
			return false
		}
	}
	return true
}

func mostConvexCorner(points []*Point) int {
	best := 0
	bestTurn := math.Inf(-1)
	n := len(points)
	for i, p := range points {
		turn := Turn(points[CircularIndex(i-1, n)], p, points[CircularIndex(i+1, n)])
		if turn > bestTurn {
			best = i
			bestTurn = turn
		}
	}
	return best
}

// Convert a triangle list back into polygons, e.g. for containment sampling.
func TrianglesToPolygons(triangles []*Triangle) []Polygon {
	polygons := make([]Polygon, len(triangles))
	for i, triangle := range triangles {
		polygons[i] = triangle.Polygon()
	}
	return polygons
}
