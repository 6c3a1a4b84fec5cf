package geom

// ConvexDecompose splits a simple polygon into convex pieces whose union is the
// polygon, for collision systems that only accept convex shapes.
//
// This is Hertel–Mehlhorn: triangulate, then repeatedly remove a diagonal
// between two pieces whenever the merged piece is still convex. The result is
// at most four times the optimal number of pieces. Convex input comes back as
// a single piece, degenerate input as none.
func ConvexDecompose(poly Polygon) []Polygon {
	poly = poly.Simplify()
	if len(poly.Points) < 3 {
		return nil
	}
	poly = poly.CCW()
	if poly.IsConvex() {
		return []Polygon{poly}
	}

	triangles := Triangulate(poly)
	pieces := make([][]*Point, len(triangles))
	for i, triangle := range triangles {
		pieces[i] = []*Point{triangle.A, triangle.B, triangle.C}
	}

	for merged := true; merged; {
		merged = false
	search:
		for i := range pieces {
			for j := i + 1; j < len(pieces); j++ {
				candidate, ok := mergeAcrossSharedEdge(pieces[i], pieces[j])
				if !ok || !(Polygon{Points: candidate}).IsConvex() {
					continue
				}
				pieces[i] = candidate
				pieces = append(pieces[:j], pieces[j+1:]...)
				merged = true
				break search
			}
		}
	}

	result := make([]Polygon, len(pieces))
	for i, piece := range pieces {
		result[i] = Polygon{Points: piece}
	}
	return result
}

// Join two counterclockwise pieces that share an edge. The edge runs a0 -> a1
// in a and a1 -> a0 in b. Shared edges are found by point identity, which holds
// for pieces cut from the same triangulation.
func mergeAcrossSharedEdge(a, b []*Point) ([]*Point, bool) {
	na, nb := len(a), len(b)
	for i := range a {
		a0, a1 := a[i], a[CircularIndex(i+1, na)]
		for j := range b {
			if b[j] != a1 || b[CircularIndex(j+1, nb)] != a0 {
				continue
			}
			merged := make([]*Point, 0, na+nb-2)
			// a1 all the way round a to a0
			for k := 0; k < na; k++ {
				merged = append(merged, a[CircularIndex(i+1+k, na)])
			}
			// then the rest of b, after a0 and before a1
			for k := 2; k < nb; k++ {
				merged = append(merged, b[CircularIndex(j+k, nb)])
			}
			return merged, true
		}
	}
	return nil, false
}
