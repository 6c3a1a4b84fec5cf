package fragment

import (
	"github.com/osuushi/shatter/geom"
	"github.com/osuushi/shatter/sprite"
)

// Builder constructs fragments for one sprite. Building has no side effects;
// the caller decides what to do with the fragments.
type Builder struct {
	Sprite *sprite.Sprite
	Params SimParams
	// Keep concave polygons as a single collider part instead of decomposing
	// them. Only for hosts whose collision system handles concave shapes.
	ConcaveColliders bool
}

// Build a fragment from a polygon in the sprite's local space. Degenerate
// polygons give no fragment.
func (b *Builder) Build(index int, poly geom.Polygon) (*Fragment, bool) {
	poly = poly.Simplify()
	if poly.IsDegenerate() {
		return nil, false
	}
	poly = poly.CCW()

	pivot := poly.Centroid()
	mesh, ok := b.buildMesh(poly, pivot)
	if !ok {
		return nil, false
	}

	f := &Fragment{
		Index:    index,
		Polygon:  poly,
		Pivot:    pivot,
		Mesh:     mesh,
		Collider: b.buildCollider(poly, pivot),
		Params:   b.Params,
		Mass:     geom.Area(poly) * b.Params.Density,
		Alpha:    1,
	}
	if b.Params.Lifetime > 0 {
		f.Fader = NewFader(f.Alpha, b.Params.Lifetime)
	}
	return f, true
}

// BuildAll builds a fragment per polygon, skipping degenerate ones. Indexes
// are consecutive over the fragments actually built.
func (b *Builder) BuildAll(polygons []geom.Polygon) []*Fragment {
	fragments := make([]*Fragment, 0, len(polygons))
	for _, poly := range polygons {
		if f, ok := b.Build(len(fragments), poly); ok {
			fragments = append(fragments, f)
		}
	}
	return fragments
}

func (b *Builder) buildMesh(poly geom.Polygon, pivot geom.Point) (Mesh, bool) {
	triangles := geom.Triangulate(poly)
	if len(triangles) == 0 {
		return Mesh{}, false
	}

	var mesh Mesh
	indexes := make(map[*geom.Point]int, len(poly.Points))
	vertexIndex := func(p *geom.Point) int {
		if i, ok := indexes[p]; ok {
			return i
		}
		i := len(mesh.Vertices)
		indexes[p] = i
		mesh.Vertices = append(mesh.Vertices, p.Sub(pivot))
		if b.Sprite != nil {
			mesh.UVs = append(mesh.UVs, b.Sprite.UV(*p))
		}
		return i
	}

	// Outline order first, so vertex i is polygon point i
	for _, p := range poly.Points {
		vertexIndex(p)
	}
	mesh.Triangles = make([]int, 0, 3*len(triangles))
	for _, triangle := range triangles {
		mesh.Triangles = append(mesh.Triangles,
			vertexIndex(triangle.A),
			vertexIndex(triangle.B),
			vertexIndex(triangle.C),
		)
	}
	return mesh, true
}

func (b *Builder) buildCollider(poly geom.Polygon, pivot geom.Point) Collider {
	if b.ConcaveColliders || poly.IsConvex() {
		return Collider{
			Parts:   []geom.Polygon{relativeTo(poly, pivot)},
			Concave: !poly.IsConvex(),
		}
	}

	pieces := geom.ConvexDecompose(poly)
	parts := make([]geom.Polygon, len(pieces))
	for i, piece := range pieces {
		parts[i] = relativeTo(piece, pivot)
	}
	return Collider{Parts: parts}
}

func relativeTo(poly geom.Polygon, origin geom.Point) geom.Polygon {
	points := make([]geom.Point, len(poly.Points))
	for i, p := range poly.Points {
		points[i] = p.Sub(origin)
	}
	return geom.NewPolygon(points...)
}
