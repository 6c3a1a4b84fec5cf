// Package fragment turns partition polygons into fragment descriptors: a
// textured mesh, a collider and simulation parameters, ready for a host to
// instantiate.
package fragment

import (
	"fmt"
	"image"

	"github.com/osuushi/shatter/geom"
)

type Mesh struct {
	// Relative to the fragment's pivot.
	Vertices []geom.Point
	UVs      []geom.Point
	// Counterclockwise triples of indices into Vertices.
	Triangles []int
}

type Collider struct {
	// Relative to the fragment's pivot. Convex, unless Concave is set, in
	// which case there is exactly one part: the fragment's polygon.
	Parts   []geom.Polygon
	Concave bool
}

type SimParams struct {
	GravityScale float64
	// Mass per unit area.
	Density float64
	// Seconds until the fragment is destroyed, fading out on the way. Zero
	// means the fragment lives forever.
	Lifetime float64
}

func DefaultSimParams() SimParams {
	return SimParams{GravityScale: 1, Density: 1}
}

// Material is the texture binding shared by all fragments of one source. It
// must not be modified once assigned.
type Material struct {
	Name    string
	Texture image.Image
}

type Fragment struct {
	Index int

	// In the source sprite's local space, counterclockwise.
	Polygon geom.Polygon
	// Centroid of Polygon. The fragment's local origin.
	Pivot geom.Point

	Mesh     Mesh
	Collider Collider
	Params   SimParams
	Mass     float64

	Layer            string
	SortingLayerName string
	OrderInLayer     int
	Material         *Material

	Alpha  float64
	Active bool
	// Nil unless Params.Lifetime is positive.
	Fader *Fader

	// Free for observers to attach their own data.
	Data map[string]interface{}
}

func (f *Fragment) Area() float64 {
	return geom.Area(f.Polygon)
}

// The polygon moved by origin, as a fresh polygon.
func (f *Fragment) WorldPolygon(origin geom.Point) geom.Polygon {
	poly := f.Polygon.Clone()
	for _, p := range poly.Points {
		*p = p.Add(origin)
	}
	return poly
}

func (f *Fragment) String() string {
	return fmt.Sprintf("fragment %d (%d vertices, area %.4g)", f.Index, len(f.Polygon.Points), f.Area())
}
