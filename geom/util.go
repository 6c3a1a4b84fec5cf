package geom

import "math"

// Coordinates closer than Tolerance are the same point. This is also the
// distance under which a point counts as lying on an edge.
const Tolerance = 1e-6

// AreaTolerance is the area under which a polygon is treated as degenerate.
const AreaTolerance = 1e-6

// Epsilon is used for normalized cross products, i.e. the sine of the angle
// between two edges. Below it, edges are collinear.
const Epsilon = 1e-9

// To compensate for imprecision in floats, equality is tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// If two points have the same Y value, the one with the smaller X value is
// "lower". This simulates a slightly rotated coordinate system, allowing us to
// assume Y values are never equal.
func (p *Point) Below(otherPoint *Point) bool {
	if Equal(p.Y, otherPoint.Y) {
		return p.X < otherPoint.X
	}
	return p.Y < otherPoint.Y
}

func (p *Point) Above(otherPoint *Point) bool {
	return !p.Below(otherPoint)
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// 2D cross product (z component of the 3D cross product).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

func (p Point) Distance(q Point) float64 {
	return q.Sub(p).Length()
}

// Near reports whether two points are within Tolerance of each other.
func (p Point) Near(q Point) bool {
	return p.Distance(q) < Tolerance
}

// Turn gives the sine of the angle turned at b when walking a -> b -> c.
// Positive is a left (counterclockwise) turn. Zero length edges give zero.
func Turn(a, b, c *Point) float64 {
	e1 := b.Sub(*a)
	e2 := c.Sub(*b)
	l := e1.Length() * e2.Length()
	if l == 0 {
		return 0
	}
	return e1.Cross(e2) / l
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s *PointStack) Push(p *Point) {
	*s = append(*s, p)
}

func (s *PointStack) Pop() *Point {
	if len(*s) == 0 {
		return nil
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p
}

func (s *PointStack) Peek() *Point {
	if len(*s) == 0 {
		return nil
	}
	return (*s)[len(*s)-1]
}

func (s *PointStack) Empty() bool {
	return len(*s) == 0
}

func (set PointSet) Add(p *Point) {
	set[p] = struct{}{}
}

func (set PointSet) Contains(p *Point) bool {
	_, ok := set[p]
	return ok
}

func (set PointSet) Equals(other PointSet) bool {
	if len(set) != len(other) {
		return false
	}
	for p := range set {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}

// Signed area helpers shared by polygons and triangles.

func Area(s Shape) float64 {
	return math.Abs(s.SignedArea())
}

func IsCCW(s Shape) bool {
	return s.SignedArea() > 0
}

func IsCW(s Shape) bool {
	return s.SignedArea() < 0
}
