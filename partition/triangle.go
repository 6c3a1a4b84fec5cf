package partition

import (
	"github.com/osuushi/shatter/geom"
	"github.com/osuushi/shatter/sample"
)

// Triangulate the outline, then split the triangle containing each interior
// sample into the fan from that sample to its edges. Every split keeps the
// covered area unchanged, so the result tiles the outline.
//
// With no interior samples this is just the outline's triangulation: n-2
// triangles for n vertices, so a quad gives two and a triangle gives itself.
//
// A sample on an edge only splits the first triangle found; the neighbor across
// the edge keeps a T-junction, which is harmless for tiling. A sample so close
// to an edge that its fan would have a sliver too thin to keep is skipped.
func triangulateSamples(outline geom.Polygon, samples []sample.Sample) []*geom.Triangle {
	triangles := geom.Triangulate(outline)
	for _, s := range samples {
		if s.Kind != sample.Interior {
			continue
		}
		for i, triangle := range triangles {
			if !triangle.ContainsPoint(s.Point) {
				continue
			}
			fan := geom.TriangulateFan(triangle.Polygon(), s.Point)
			if len(fan) == 0 || !fanCovers(triangle, fan) {
				break
			}
			triangles[i] = fan[0]
			triangles = append(triangles, fan[1:]...)
			break
		}
	}
	return triangles
}

// The fan drops degenerate triangles, which is only safe when they have no
// area to lose.
func fanCovers(triangle *geom.Triangle, fan []*geom.Triangle) bool {
	var covered float64
	for _, t := range fan {
		covered += geom.Area(t)
	}
	return covers(geom.Area(triangle), covered)
}
