package geom

import "math"

// Ad hoc fixtures. All are counterclockwise.

func Square(size float64) Polygon {
	return NewPolygon(
		Point{0, 0},
		Point{size, 0},
		Point{size, size},
		Point{0, size},
	)
}

func SimpleStar() Polygon {
	var points []Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		radius := float64(outerRadius)
		if i%2 == 1 {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return NewPolygon(points...)
}

func LShape() Polygon {
	return NewPolygon(
		Point{0, 0},
		Point{4, 0},
		Point{4, 1},
		Point{1, 1},
		Point{1, 4},
		Point{0, 4},
	)
}

// A comb with three teeth pointing up. Not Y-monotone.
func Comb() Polygon {
	return NewPolygon(
		Point{0, 0},
		Point{5, 0},
		Point{5, 3},
		Point{4, 3},
		Point{4, 1},
		Point{3, 1},
		Point{3, 3},
		Point{2, 3},
		Point{2, 1},
		Point{1, 1},
		Point{1, 3},
		Point{0, 3},
	)
}
