// Package sample generates the seed points that a partitioner cuts an outline
// along.
package sample

import (
	"math/rand"

	"github.com/osuushi/shatter/geom"
)

type Kind int

const (
	// A vertex of the outline.
	Boundary Kind = iota
	// A random point strictly for breaking up the inside.
	Interior
)

func (k Kind) String() string {
	if k == Boundary {
		return "boundary"
	}
	return "interior"
}

type Sample struct {
	Point *geom.Point
	Kind  Kind
}

// AlphaMask reports whether a texel is visible. *sprite.Sprite implements
// it.
type AlphaMask interface {
	IsOpaque(p *geom.Point) bool
}

// MaxAttempts is how many rejected candidates an interior point may cost
// before the sampler gives up on the remaining points. A mask with almost no
// opaque area inside the outline would otherwise never finish.
const MaxAttempts = 1000

// Generate returns every outline vertex as a Boundary sample, in outline
// order, followed by up to extraPoints Interior samples. Interior points are
// drawn uniformly from the outline's bounding box and rejected unless they
// are inside the outline and, when a mask is given, on an opaque texel.
//
// Boundary samples share points with the outline. The result depends only on
// the inputs and the state of rng. A negative count is the same as zero.
func Generate(outline geom.Polygon, extraPoints int, mask AlphaMask, rng *rand.Rand) []Sample {
	if extraPoints < 0 {
		extraPoints = 0
	}
	samples := make([]Sample, 0, len(outline.Points)+extraPoints)
	for _, p := range outline.Points {
		samples = append(samples, Sample{Point: p, Kind: Boundary})
	}
	if extraPoints <= 0 || outline.IsDegenerate() {
		return samples
	}

	min, max := outline.Bounds()
	width, height := max.X-min.X, max.Y-min.Y
	for i := 0; i < extraPoints; i++ {
		p, ok := interiorPoint(outline, min, width, height, mask, rng)
		if !ok {
			break
		}
		samples = append(samples, Sample{Point: p, Kind: Interior})
	}
	return samples
}

func interiorPoint(outline geom.Polygon, min geom.Point, width, height float64, mask AlphaMask, rng *rand.Rand) (*geom.Point, bool) {
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		p := &geom.Point{
			X: min.X + rng.Float64()*width,
			Y: min.Y + rng.Float64()*height,
		}
		if !outline.ContainsPoint(p) {
			continue
		}
		if mask != nil && !mask.IsOpaque(p) {
			continue
		}
		return p, true
	}
	return nil, false
}

// Points extracts the sample points, in order.
func Points(samples []Sample) []*geom.Point {
	points := make([]*geom.Point, len(samples))
	for i, s := range samples {
		points[i] = s.Point
	}
	return points
}
