package geom

import "math"

// Top and Bottom use the lexicographic ordering from Below.
func (s Segment) Top() *Point {
	if s.Start.Below(s.End) {
		return s.End
	}
	return s.Start
}

func (s Segment) Bottom() *Point {
	if s.Start.Below(s.End) {
		return s.Start
	}
	return s.End
}

func (s Segment) IsHorizontal() bool {
	return Equal(s.Start.Y, s.End.Y)
}

// Find the x value of the line through the segment at y. Horizontal segments
// have no single answer, so the leftmost x is returned.
func (s Segment) SolveForX(y float64) float64 {
	if s.IsHorizontal() {
		return math.Min(s.Start.X, s.End.X)
	}
	t := (y - s.Start.Y) / (s.End.Y - s.Start.Y)
	return s.Start.X + t*(s.End.X-s.Start.X)
}

// Is the segment to the right of the point? Only the line through the segment
// is tested, not its bounds.
func (s Segment) IsRightOf(p *Point) bool {
	return s.SolveForX(p.Y) > p.X
}

func (s Segment) IsLeftOf(p *Point) bool {
	return s.SolveForX(p.Y) < p.X
}

// Distance from p to the closest point of the segment.
func (s Segment) Distance(p *Point) float64 {
	d := s.End.Sub(*s.Start)
	lengthSquared := d.Dot(d)
	if lengthSquared == 0 {
		return p.Distance(*s.Start)
	}
	t := p.Sub(*s.Start).Dot(d) / lengthSquared
	t = math.Max(0, math.Min(1, t))
	return p.Distance(s.Start.Lerp(*s.End, t))
}

// Does the point lie on the segment (within Tolerance)?
func (s Segment) Contains(p *Point) bool {
	return s.Distance(p) <= Tolerance
}
