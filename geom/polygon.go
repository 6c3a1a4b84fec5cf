package geom

import (
	"fmt"
	"math"
	"strings"
)

// NewPolygon allocates fresh points for the given values.
func NewPolygon(points ...Point) Polygon {
	poly := Polygon{Points: make([]*Point, len(points))}
	for i := range points {
		p := points[i]
		poly.Points[i] = &p
	}
	return poly
}

// Even-odd point-in-polygon. Points lying on an edge (within Tolerance) are
// always inside; the alpha-mask sampler and the partitioners rely on this, so
// that samples on the outline are never rejected and shared cell edges belong
// to both cells.
func (poly Polygon) ContainsPoint(p *Point) bool {
	if len(poly.Points) < 3 {
		return false
	}
	if poly.OnBoundary(p) {
		return true
	}
	return poly.CrossingCount(p)%2 == 1
}

// Crossing count of a ray cast from p towards +X.
func (poly Polygon) CrossingCount(p *Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]

		segment := Segment{vertex, nextVertex}
		if vertex.Below(p) != nextVertex.Below(p) && segment.IsRightOf(p) {
			crossingCount++
		}
	}
	return crossingCount
}

func (poly Polygon) OnBoundary(p *Point) bool {
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		if (Segment{vertex, nextVertex}).Contains(p) {
			return true
		}
	}
	return false
}

// Shoelace formula. Positive for counterclockwise polygons.
func (poly Polygon) SignedArea() float64 {
	var sum float64
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, len(poly.Points))]
		sum += p.Cross(*q)
	}
	return sum / 2
}

// Area weighted centroid. Polygons with no area fall back to the vertex mean.
func (poly Polygon) Centroid() Point {
	n := len(poly.Points)
	if n == 0 {
		return Point{}
	}
	area := poly.SignedArea()
	if math.Abs(area) < Epsilon {
		var sum Point
		for _, p := range poly.Points {
			sum = sum.Add(*p)
		}
		return sum.Scale(1 / float64(n))
	}

	// Work relative to the first vertex to keep the products small.
	origin := *poly.Points[0]
	var cx, cy float64
	for i, p := range poly.Points {
		a := p.Sub(origin)
		b := poly.Points[CircularIndex(i+1, n)].Sub(origin)
		cross := a.Cross(b)
		cx += (a.X + b.X) * cross
		cy += (a.Y + b.Y) * cross
	}
	return Point{origin.X + cx/(6*area), origin.Y + cy/(6*area)}
}

// Axis aligned bounding box.
func (poly Polygon) Bounds() (min, max Point) {
	min = Point{math.Inf(1), math.Inf(1)}
	max = Point{math.Inf(-1), math.Inf(-1)}
	for _, p := range poly.Points {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Points: make([]*Point, 0, len(poly.Points))}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Counterclockwise version of the polygon. Shares points with the receiver.
func (poly Polygon) CCW() Polygon {
	if IsCW(poly) {
		return poly.Reverse()
	}
	return poly
}

// Deep copy, with new point pointers.
func (poly Polygon) Clone() Polygon {
	return NewPolygon(poly.Values()...)
}

func (poly Polygon) Values() []Point {
	values := make([]Point, len(poly.Points))
	for i, p := range poly.Points {
		values[i] = *p
	}
	return values
}

// Fewer than three points or less than AreaTolerance of area.
func (poly Polygon) IsDegenerate() bool {
	return len(poly.Points) < 3 || Area(poly) < AreaTolerance
}

// Simplify drops repeated points and vertices where the outline goes straight
// on or doubles back on itself. Neither changes the enclosed area. Clipping a
// concave outline leaves such vertices behind as zero width bridges, and they
// would otherwise stall triangulation.
func (poly Polygon) Simplify() Polygon {
	points := append([]*Point(nil), poly.Points...)
	for changed := true; changed && len(points) >= 3; {
		changed = false
		for i := 0; i < len(points) && len(points) >= 3; i++ {
			prev := points[CircularIndex(i-1, len(points))]
			cur := points[i]
			next := points[CircularIndex(i+1, len(points))]
			if cur.Near(*prev) || math.Abs(Turn(prev, cur, next)) < Epsilon {
				points = append(points[:i], points[i+1:]...)
				changed = true
				i--
			}
		}
	}
	if len(points) < 3 {
		return Polygon{}
	}
	return Polygon{Points: points}
}

// Cross product sign test, after gogpu's convexity analysis. Collinear edges
// do not break convexity, but a polygon with no turns at all is not convex.
func (poly Polygon) IsConvex() bool {
	n := len(poly.Points)
	if n < 3 {
		return false
	}
	var positive, negative int
	for i := range poly.Points {
		turn := Turn(poly.Points[i], poly.Points[CircularIndex(i+1, n)], poly.Points[CircularIndex(i+2, n)])
		if turn > Epsilon {
			positive++
		} else if turn < -Epsilon {
			negative++
		}
	}
	return (positive > 0) != (negative > 0)
}

// A simple polygon is Y-monotone iff it has exactly one local top under the
// lexicographic ordering.
func (poly Polygon) IsYMonotone() bool {
	n := len(poly.Points)
	if n < 3 {
		return false
	}
	tops := 0
	for i, p := range poly.Points {
		prev := poly.Points[CircularIndex(i-1, n)]
		next := poly.Points[CircularIndex(i+1, n)]
		if prev.Below(p) && next.Below(p) {
			tops++
		}
	}
	return tops == 1
}

func (t *Triangle) SignedArea() float64 {
	return t.B.Sub(*t.A).Cross(t.C.Sub(*t.A)) / 2
}

func (t *Triangle) Polygon() Polygon {
	return Polygon{Points: []*Point{t.A, t.B, t.C}}
}

// Degenerate triangles are slivers: twice the area is negligible compared to
// the square of the longest edge.
func (t *Triangle) IsDegenerate() bool {
	longest := math.Max(t.A.Distance(*t.B), math.Max(t.B.Distance(*t.C), t.C.Distance(*t.A)))
	if longest < Tolerance {
		return true
	}
	return math.Abs(2*t.SignedArea()) <= Epsilon*longest*longest
}

// Inclusive containment test for a counterclockwise triangle.
func (t *Triangle) ContainsPoint(p *Point) bool {
	d1 := t.B.Sub(*t.A).Cross(p.Sub(*t.A))
	d2 := t.C.Sub(*t.B).Cross(p.Sub(*t.B))
	d3 := t.A.Sub(*t.C).Cross(p.Sub(*t.C))
	if d1 >= 0 && d2 >= 0 && d3 >= 0 {
		return true
	}
	// Close to an edge counts as inside
	return t.Polygon().OnBoundary(p)
}

func (t *Triangle) String() string {
	return t.Polygon().String()
}

func (poly Polygon) String() string {
	parts := make([]string, len(poly.Points))
	for i, p := range poly.Points {
		parts[i] = fmt.Sprintf("(%g, %g)", p.X, p.Y)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
