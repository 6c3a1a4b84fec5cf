// Shatter 2D sprites into polygonal fragments.
//
// This package is a one-call entry point. It cuts a sprite's outline into
// polygons that tile it, and builds a fragment (mesh, collider and
// simulation parameters) for each. For fragments that are spawned, faded and
// restored over time, use the explodable package.
package shatter

import (
	"github.com/osuushi/shatter/config"
	"github.com/osuushi/shatter/fragment"
	"github.com/osuushi/shatter/geom"
	"github.com/osuushi/shatter/partition"
	"github.com/osuushi/shatter/sprite"
	"github.com/pkg/errors"
)

type Point = geom.Point
type Polygon = geom.Polygon
type Fragment = fragment.Fragment
type Sprite = sprite.Sprite
type Settings = config.Explodable
type Strategy = partition.Strategy

const (
	Triangle = partition.Triangle
	Voronoi  = partition.Voronoi
)

// Default settings: triangles, no extra points, no subshattering.
func DefaultSettings() Settings {
	return config.Default()
}

// Partition cuts an outline into polygons. The outline may wind either way. A
// degenerate outline gives no polygons and no error.
func Partition(outline Polygon, settings Settings) (result []Polygon, err error) {
	defer func() {
		if recoveredErr := geom.HandlePanicRecover(recover()); recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings.Partitioner().Partition(outline)
}

// Shatter cuts the sprite's outline and builds a fragment per polygon.
// Interior samples are only taken where the sprite's texture is opaque.
func Shatter(s *Sprite, settings Settings) (result []*Fragment, err error) {
	defer func() {
		if recoveredErr := geom.HandlePanicRecover(recover()); recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	if s == nil {
		return nil, errors.Wrap(sprite.ErrInvalidSprite, "nil sprite")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	partitioner := settings.Partitioner()
	partitioner.Mask = s
	polygons, err := partitioner.Partition(s.Outline)
	if err != nil {
		return nil, errors.Wrapf(err, "shattering %q", s.Name)
	}

	builder := &fragment.Builder{
		Sprite: s,
		Params: fragment.SimParams{
			GravityScale: settings.GravityScale,
			Density:      settings.Density,
			Lifetime:     settings.FragmentLifetime,
		},
		ConcaveColliders: settings.ConcaveColliders,
	}
	fragments := builder.BuildAll(polygons)
	for _, f := range fragments {
		f.Layer = settings.FragmentLayer
		f.SortingLayerName = settings.SortingLayerName
		f.OrderInLayer = settings.OrderInLayer
	}
	return fragments, nil
}
