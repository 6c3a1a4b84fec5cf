package geom

import "math"

// HalfPlane is the set of points p with Normal·p <= Offset.
type HalfPlane struct {
	Normal Point
	Offset float64
}

// Bisector returns the half-plane of points at least as close to a as to b.
// Clipping an outline against the bisectors of one seed with every other seed
// leaves that seed's Voronoi cell.
func Bisector(a, b *Point) HalfPlane {
	normal := b.Sub(*a)
	return HalfPlane{
		Normal: normal,
		Offset: normal.Dot(a.Lerp(*b, 0.5)),
	}
}

// Signed distance from the boundary line, scaled by the length of the normal.
// Negative inside.
func (h HalfPlane) Distance(p *Point) float64 {
	return h.Normal.Dot(*p) - h.Offset
}

// Points within Tolerance of the boundary line are inside.
func (h HalfPlane) Contains(p *Point) bool {
	return h.Distance(p) <= Tolerance*h.Normal.Length()
}

// Clip a polygon against a half-plane, Sutherland–Hodgman style. Kept vertices
// are shared with the input; intersections are new points. If nothing (or
// nothing with three vertices) survives, the result is an empty polygon.
//
// A concave polygon stays a single polygon: where the half-plane cuts it into
// several pieces, they are joined by zero width bridges along the clip line.
// The area and the even-odd interior are still correct.
func Clip(poly Polygon, h HalfPlane) Polygon {
	n := len(poly.Points)
	if n < 3 {
		return Polygon{}
	}
	tolerance := Tolerance * h.Normal.Length()
	if tolerance == 0 {
		// Zero normal: every point is on the line.
		return poly
	}

	clipped := make([]*Point, 0, n+2)
	prev := poly.Points[n-1]
	prevDist := h.Distance(prev)
	for _, cur := range poly.Points {
		curDist := h.Distance(cur)
		if prevDist <= tolerance {
			clipped = append(clipped, prev)
		}
		if (prevDist < -tolerance && curDist > tolerance) || (prevDist > tolerance && curDist < -tolerance) {
			t := math.Abs(prevDist) / (math.Abs(prevDist) + math.Abs(curDist))
			intersection := prev.Lerp(*cur, t)
			clipped = append(clipped, &intersection)
		}
		prev, prevDist = cur, curDist
	}

	if len(clipped) < 3 {
		return Polygon{}
	}
	return Polygon{Points: clipped}
}
