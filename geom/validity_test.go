package geom

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. Every point of a triangle is a point of the polygon.
// 2. Every triangle is counterclockwise and has nonzero area.
// 3. The sum of the areas of all triangles is equal to the area of the polygon.
// 4. Sampling finds the same interior for the triangles as for the polygon.
func AssertValidTriangulation(t *testing.T, polygon *Polygon, triangles []*Triangle) {
	polyPoints := make(PointSet)
	for _, p := range polygon.Points {
		polyPoints.Add(p)
	}

	var triangleArea float64
	for _, tri := range triangles {
		for _, p := range []*Point{tri.A, tri.B, tri.C} {
			require.True(t, polyPoints.Contains(p), "triangle point %v is not a polygon point", p)
		}
		require.True(t, IsCCW(tri), "clockwise triangle: %s", tri)
		require.False(t, tri.IsDegenerate(), "degenerate triangle: %s", tri)
		triangleArea += Area(tri)
	}

	require.InDelta(t, Area(*polygon), triangleArea, 1e-9, "sum of the areas of all triangles is equal to the area of the polygon")
	validatePolygonsBySampling(t, TrianglesToPolygons(triangles), []Polygon{*polygon})
}

func containsAny(polygons []Polygon, p *Point) bool {
	for _, poly := range polygons {
		if poly.ContainsPoint(p) {
			return true
		}
	}
	return false
}

func onAnyBoundary(polygons []Polygon, p *Point) bool {
	for _, poly := range polygons {
		if poly.OnBoundary(p) {
			return true
		}
	}
	return false
}

// Walk a grid over both sets of polygons and check that they agree on what is
// inside. Points on a boundary of either set are skipped, since containment
// there is a convention rather than a property.
func validatePolygonsBySampling(t *testing.T, actualPolygons []Polygon, expectedPolygons []Polygon) {
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, list := range [][]Polygon{actualPolygons, expectedPolygons} {
		for _, poly := range list {
			min, max := poly.Bounds()
			minX = math.Min(minX, min.X)
			minY = math.Min(minY, min.Y)
			maxX = math.Max(maxX, max.X)
			maxY = math.Max(maxY, max.Y)
		}
	}

	// Pad the bounding box by 10%
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding
	minY -= yPadding
	maxX += xPadding
	maxY += yPadding

	// An irrational-ish step keeps the grid off the fixtures' integer edges
	step := math.Max(maxX-minX, maxY-minY) / 47.3

	for y := minY; y <= maxY; y += step {
		for x := minX; x <= maxX; x += step {
			p := &Point{X: x, Y: y}
			if onAnyBoundary(actualPolygons, p) || onAnyBoundary(expectedPolygons, p) {
				continue
			}

			actual := containsAny(actualPolygons, p)
			if containsAny(expectedPolygons, p) {
				assert.True(t, actual, "point %v should be covered", p)
			} else {
				assert.False(t, actual, "point %v should not be covered", p)
			}
		}
	}
}
