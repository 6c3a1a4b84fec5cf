package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointStack(t *testing.T) {
	var ps PointStack
	assert.True(t, ps.Empty())
	ps.Push(&Point{1, 2})
	assert.False(t, ps.Empty())
	assert.Equal(t, &Point{1, 2}, ps.Peek())
	assert.Equal(t, &Point{1, 2}, ps.Pop())
	assert.True(t, ps.Empty())
	assert.Nil(t, ps.Pop())
	assert.Nil(t, ps.Peek())

	ps.Push(&Point{1, 2})
	ps.Push(&Point{3, 4})
	assert.Equal(t, &Point{3, 4}, ps.Pop())
	assert.Equal(t, &Point{1, 2}, ps.Peek())
}

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		assert.Equal(t, expectedIndexes[i+3], CircularIndex(i, n))
	}
}

func TestBelow(t *testing.T) {
	assert.True(t, (&Point{0, 0}).Below(&Point{0, 1}))
	assert.False(t, (&Point{0, 1}).Below(&Point{0, 0}))

	// Equal Y values are broken by X
	assert.True(t, (&Point{0, 1}).Below(&Point{1, 1}))
	assert.True(t, (&Point{1, 1}).Above(&Point{0, 1 + Tolerance/2}))
}

func TestTurn(t *testing.T) {
	a, b := &Point{0, 0}, &Point{1, 0}
	assert.InDelta(t, 1, Turn(a, b, &Point{1, 1}), 1e-12)
	assert.InDelta(t, -1, Turn(a, b, &Point{1, -1}), 1e-12)
	assert.InDelta(t, 0, Turn(a, b, &Point{2, 0}), 1e-12)
	assert.InDelta(t, 0, Turn(a, b, b), 1e-12)
}

func TestSignedAreaIsRigid(t *testing.T) {
	shapes := map[string]Polygon{
		"triangle": NewPolygon(Point{0, -1}, Point{1, 0}, Point{0, 1}),
		"L":        LShape(),
		"star":     SimpleStar(),
	}
	for name, poly := range shapes {
		poly := poly
		t.Run(name, func(t *testing.T) {
			expected := poly.SignedArea()
			reversed := poly.Reverse()

			// An awkward angle, so that nothing lands back on the grid
			angle := math.Pi / 7
			for i := 0; i < 14; i++ {
				for _, p := range poly.Points {
					transform(p, angle, 0.25, -3)
				}
				assert.InDelta(t, expected, poly.SignedArea(), 1e-9)
				assert.InDelta(t, -expected, reversed.SignedArea(), 1e-9)
			}
		})
	}

	t.Run("triangles agree with their polygon", func(t *testing.T) {
		tri := &Triangle{&Point{0, -1}, &Point{1, 0}, &Point{0, 2}}
		assert.InDelta(t, 1.5, tri.SignedArea(), 1e-12)
		assert.InDelta(t, tri.SignedArea(), tri.Polygon().SignedArea(), 1e-12)
		tri.A, tri.B = tri.B, tri.A
		assert.InDelta(t, -1.5, tri.SignedArea(), 1e-12)
	})
}

// Helpers

// Rotate about the origin, then translate.
func transform(point *Point, angle, dx, dy float64) {
	sin, cos := math.Sincos(angle)
	x, y := point.X, point.Y
	point.X = x*cos - y*sin + dx
	point.Y = x*sin + y*cos + dy
}
