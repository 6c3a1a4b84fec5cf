package explodable

import (
	"github.com/osuushi/shatter/fragment"
	"github.com/osuushi/shatter/geom"
)

// Spawner turns fragment descriptors into live, independently simulated
// entities. host.World is one.
type Spawner interface {
	// Spawn a fragment whose polygon is relative to origin.
	Spawn(origin geom.Point, f *fragment.Fragment)
	SetAlpha(f *fragment.Fragment, alpha float64)
	Despawn(f *fragment.Fragment)
}

type nopSpawner struct{}

func (nopSpawner) Spawn(geom.Point, *fragment.Fragment) {}
func (nopSpawner) SetAlpha(*fragment.Fragment, float64) {}
func (nopSpawner) Despawn(*fragment.Fragment)           {}
