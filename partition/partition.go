// Package partition cuts a sprite outline into disjoint polygons that tile it.
//
// Both strategies start from the same samples: every outline vertex plus a
// number of random interior points. The union of the output polygons is the
// outline, and no two of them overlap by more than geom.AreaTolerance.
//
// Every single cut is checked to cover the polygon it was cut from. A cut
// that would lose area (a sliver under MinArea, say) is redrawn, and after
// maxCutAttempts the polygon is kept whole, so subshattering never leaks area.
package partition

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/osuushi/shatter/geom"
	"github.com/osuushi/shatter/sample"
	"github.com/pkg/errors"
)

// Cuts of one polygon tried before it is kept whole.
const maxCutAttempts = 8

// Relative area a cut may lose and still count as covering its polygon.
const coverageTolerance = 1e-10

type Partitioner struct {
	Strategy Strategy
	// Interior samples per partition. Negative counts are treated as zero.
	ExtraPoints int
	// How many times every polygon is partitioned again, with the same
	// strategy and number of extra points.
	SubshatterSteps int
	// Seeds the sampler. The same seed and outline always give the same
	// polygons.
	Seed int64
	// Optional. Interior samples are only taken on opaque texels.
	Mask sample.AlphaMask
	// No polygon with less area is produced, and an outline with less is
	// degenerate. Zero means geom.AreaTolerance.
	MinArea float64

	Logger *slog.Logger
}

// Partition the outline. The outline may wind either way and is not modified.
// A degenerate outline gives no polygons and no error; only an invalid
// strategy is an error, in which case nothing is produced.
func (p *Partitioner) Partition(outline geom.Polygon) (polygons []geom.Polygon, err error) {
	if !p.Strategy.Valid() {
		return nil, errors.Wrapf(ErrInvalidStrategy, "%s", p.Strategy)
	}

	outline = outline.Simplify()
	if p.degenerate(outline) {
		p.logger().Debug("degenerate outline, nothing to partition", "points", len(outline.Points))
		return nil, nil
	}
	outline = outline.CCW()

	defer func() {
		if recoveredErr := geom.HandlePanicRecover(recover()); recoveredErr != nil {
			polygons = nil
			err = errors.Wrap(recoveredErr, "partitioning outline")
		}
	}()

	rng := rand.New(rand.NewSource(p.Seed))
	polygons = p.cut(outline, rng)
	for step := 0; step < p.SubshatterSteps; step++ {
		var next []geom.Polygon
		for _, poly := range polygons {
			next = append(next, p.cut(poly, rng)...)
		}
		polygons = next
	}

	p.logger().Debug("partitioned outline",
		"strategy", p.Strategy,
		"extraPoints", p.ExtraPoints,
		"subshatterSteps", p.SubshatterSteps,
		"polygons", len(polygons),
	)
	return polygons, nil
}

// Cut one polygon, falling back to the polygon itself when no attempt covers
// it.
func (p *Partitioner) cut(poly geom.Polygon, rng *rand.Rand) []geom.Polygon {
	for attempt := 0; attempt < maxCutAttempts; attempt++ {
		if pieces, ok := p.partitionOnce(poly, rng); ok {
			return pieces
		}
	}
	p.logger().Debug("no cut covers polygon, keeping it whole", "area", geom.Area(poly), "points", len(poly.Points))
	return []geom.Polygon{poly}
}

// Partition the outline once. The pieces are only usable when their areas
// add up to the outline's.
func (p *Partitioner) partitionOnce(outline geom.Polygon, rng *rand.Rand) ([]geom.Polygon, bool) {
	samples := sample.Generate(outline, p.ExtraPoints, p.Mask, rng)

	var candidates []geom.Polygon
	switch p.Strategy {
	case Triangle:
		candidates = geom.TrianglesToPolygons(triangulateSamples(outline, samples))
	case Voronoi:
		candidates = voronoiCells(outline, samples)
	}
	pieces := p.dropDegenerate(candidates)
	if len(pieces) == 0 {
		return nil, false
	}

	var covered float64
	for _, piece := range pieces {
		covered += geom.Area(piece)
	}
	return pieces, covers(geom.Area(outline), covered)
}

func covers(area, covered float64) bool {
	return math.Abs(area-covered) <= coverageTolerance*math.Max(1, area)
}

func (p *Partitioner) minArea() float64 {
	if p.MinArea > 0 {
		return p.MinArea
	}
	return geom.AreaTolerance
}

func (p *Partitioner) degenerate(poly geom.Polygon) bool {
	return len(poly.Points) < 3 || geom.Area(poly) < p.minArea()
}

func (p *Partitioner) dropDegenerate(polygons []geom.Polygon) []geom.Polygon {
	kept := polygons[:0]
	dropped := 0
	for _, poly := range polygons {
		poly = poly.Simplify()
		if p.degenerate(poly) {
			dropped++
			continue
		}
		kept = append(kept, poly)
	}
	if dropped > 0 {
		p.logger().Debug("dropped degenerate polygons", "count", dropped)
	}
	return kept
}

func (p *Partitioner) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}
