// Package fixture provides named outlines for tests.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.
// Each file holds exactly one polygon. Anything going wrong panics, since a
// broken fixture is a broken test.
package fixture

import (
	"embed"
	"fmt"

	"github.com/osuushi/shatter/geom"
	"github.com/osuushi/shatter/outline"
)

//go:embed fixtures
var fixtures embed.FS

// Names of all embedded fixtures.
var Names = []string{
	"crate",
	"diamond",
	"monotone_c",
	"rock",
}

func Load(name string) geom.Polygon {
	file, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		panic(fmt.Sprintf("could not load fixture %q: %v", name, err))
	}
	defer file.Close()

	polygons, err := outline.ReadSVG(file)
	if err != nil {
		panic(fmt.Sprintf("failed to parse fixture %q: %v", name, err))
	}
	if len(polygons) != 1 {
		panic(fmt.Sprintf("fixture %q has %d polygons", name, len(polygons)))
	}
	return polygons[0]
}

// Ad hoc fixtures. All are counterclockwise.

func Square(size float64) geom.Polygon {
	return geom.NewPolygon(
		geom.Point{X: 0, Y: 0},
		geom.Point{X: size, Y: 0},
		geom.Point{X: size, Y: size},
		geom.Point{X: 0, Y: size},
	)
}

// A unit square centered on the origin, the usual outline of a default sprite.
func UnitSquare() geom.Polygon {
	return geom.NewPolygon(
		geom.Point{X: -0.5, Y: -0.5},
		geom.Point{X: 0.5, Y: -0.5},
		geom.Point{X: 0.5, Y: 0.5},
		geom.Point{X: -0.5, Y: 0.5},
	)
}

func LShape() geom.Polygon {
	return geom.NewPolygon(
		geom.Point{X: 0, Y: 0},
		geom.Point{X: 4, Y: 0},
		geom.Point{X: 4, Y: 1},
		geom.Point{X: 1, Y: 1},
		geom.Point{X: 1, Y: 4},
		geom.Point{X: 0, Y: 4},
	)
}
