package partition

import (
	"github.com/osuushi/shatter/geom"
	"github.com/osuushi/shatter/sample"
)

// Voronoi cells of the samples, clipped to the outline. Each cell starts as the
// whole outline and is cut down by the bisector between its seed and every
// other seed. Every point of the outline is nearest to some seed, so the cells
// tile the outline; seeds whose cells vanish are simply missing from the
// result.
//
// On a concave outline one seed's cell can fall apart into pieces. Clipping
// keeps them as a single polygon joined by zero width bridges, which have no
// area and triangulate fine.
func voronoiCells(outline geom.Polygon, samples []sample.Sample) []geom.Polygon {
	seeds := dedupe(sample.Points(samples))
	cells := make([]geom.Polygon, 0, len(seeds))
	for i, seed := range seeds {
		cell := outline
		for j, other := range seeds {
			if i == j {
				continue
			}
			cell = geom.Clip(cell, geom.Bisector(seed, other))
			if len(cell.Points) == 0 {
				break
			}
		}
		cell = cell.Simplify()
		if len(cell.Points) == 0 {
			continue
		}
		cells = append(cells, cell)
	}
	return cells
}

// Coincident seeds would have an undefined bisector.
func dedupe(points []*geom.Point) []*geom.Point {
	unique := make([]*geom.Point, 0, len(points))
outer:
	for _, p := range points {
		for _, q := range unique {
			if p.Near(*q) {
				continue outer
			}
		}
		unique = append(unique, p)
	}
	return unique
}
