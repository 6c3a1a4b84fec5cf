package partition

// Helpers for checking that a set of polygons tiles an outline.

import (
	"math"
	"testing"

	"github.com/osuushi/shatter/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The polygons must cover the outline exactly once: their areas sum to the
// outline's area, and every sampled point inside the outline is in exactly
// one polygon, while points outside are in none.
func assertTiles(t *testing.T, outline geom.Polygon, polygons []geom.Polygon) {
	t.Helper()
	require.NotEmpty(t, polygons)

	var area float64
	for _, poly := range polygons {
		require.GreaterOrEqual(t, len(poly.Points), 3)
		assert.True(t, geom.IsCCW(poly), "clockwise polygon %s", poly)
		area += geom.Area(poly)
	}
	assert.InDelta(t, geom.Area(outline), area, 1e-6)

	min, max := outline.Bounds()
	step := math.Max(max.X-min.X, max.Y-min.Y) / 37.7
	for y := min.Y - step; y <= max.Y+step; y += step {
		for x := min.X - step; x <= max.X+step; x += step {
			p := &geom.Point{X: x, Y: y}
			if onAnyBoundary(append([]geom.Polygon{outline}, polygons...), p) {
				continue
			}
			count := 0
			for _, poly := range polygons {
				if poly.ContainsPoint(p) {
					count++
				}
			}
			if outline.ContainsPoint(p) {
				assert.Equal(t, 1, count, "point %v is covered %d times", p, count)
			} else {
				assert.Zero(t, count, "point %v is outside but covered", p)
			}
		}
	}
}

func onAnyBoundary(polygons []geom.Polygon, p *geom.Point) bool {
	for _, poly := range polygons {
		if poly.OnBoundary(p) {
			return true
		}
	}
	return false
}

func assertSamePolygons(t *testing.T, expected, actual []geom.Polygon) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.Equal(t, expected[i].Values(), actual[i].Values())
	}
}
