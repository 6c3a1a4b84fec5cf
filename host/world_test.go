package host

import (
	"image"
	"testing"

	"github.com/osuushi/shatter/config"
	"github.com/osuushi/shatter/explodable"
	"github.com/osuushi/shatter/fragment"
	"github.com/osuushi/shatter/geom"
	"github.com/osuushi/shatter/internal/fixture"
	"github.com/osuushi/shatter/partition"
	"github.com/osuushi/shatter/sprite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ explodable.Spawner = (*World)(nil)

func testSprite() *sprite.Sprite {
	return sprite.FromImage("crate", image.NewNRGBA(image.Rect(0, 0, 16, 16)), 16)
}

func testFragment(t *testing.T, params fragment.SimParams) *fragment.Fragment {
	t.Helper()
	f, ok := (&fragment.Builder{Sprite: testSprite(), Params: params}).Build(0, fixture.UnitSquare())
	require.True(t, ok)
	f.Layer = "Debris"
	f.Material = &fragment.Material{Name: "crate"}
	return f
}

func TestSpawnAndDespawn(t *testing.T) {
	w := NewWorld(DefaultConfig(), nil)
	f := testFragment(t, fragment.DefaultSimParams())

	w.Spawn(geom.Point{X: 10, Y: 5}, f)
	assert.Equal(t, 1, w.Len())
	// Spawning twice is ignored
	w.Spawn(geom.Point{X: 10, Y: 5}, f)
	assert.Equal(t, 1, w.Len())

	body, ok := w.Body(f)
	require.True(t, ok)
	assert.InDelta(t, 10, body.Position.X, 1e-12)
	assert.InDelta(t, 5, body.Position.Y, 1e-12)

	display, ok := w.Display(f)
	require.True(t, ok)
	assert.Equal(t, 1.0, display.Alpha)
	assert.Equal(t, "Debris", display.Layer)
	assert.Same(t, f.Material, display.Material)

	w.SetAlpha(f, 0.25)
	display, _ = w.Display(f)
	assert.Equal(t, 0.25, display.Alpha)

	polygons := w.Polygons()
	require.Len(t, polygons, 1)
	min, max := polygons[0].Bounds()
	assert.InDelta(t, 9.5, min.X, 1e-12)
	assert.InDelta(t, 5.5, max.Y, 1e-12)

	w.Despawn(f)
	assert.Zero(t, w.Len())
	_, ok = w.Body(f)
	assert.False(t, ok)

	// Unknown fragments are ignored
	assert.NotPanics(t, func() {
		w.Despawn(f)
		w.SetAlpha(f, 0)
	})
}

func TestStep(t *testing.T) {
	t.Run("falling", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.GroundHeight = 0
		w := NewWorld(cfg, nil)
		f := testFragment(t, fragment.DefaultSimParams())
		w.Spawn(geom.Point{X: 10, Y: 30}, f)

		for i := 0; i < 10; i++ {
			w.Step(1.0 / 60)
		}
		body, _ := w.Body(f)
		assert.Less(t, body.Position.Y, 30.0)
		assert.Less(t, body.Velocity.Y, 0.0)
		assert.InDelta(t, 10, body.Position.X, 1e-9)
	})

	t.Run("no gravity", func(t *testing.T) {
		w := NewWorld(DefaultConfig(), nil)
		f := testFragment(t, fragment.SimParams{GravityScale: 0, Density: 1})
		w.Spawn(geom.Point{X: 10, Y: 30}, f)
		w.Step(1)
		body, _ := w.Body(f)
		assert.InDelta(t, 30, body.Position.Y, 1e-9)
	})

	t.Run("landing on the ground", func(t *testing.T) {
		w := NewWorld(DefaultConfig(), nil)
		f := testFragment(t, fragment.DefaultSimParams())
		w.Spawn(geom.Point{X: 10, Y: 4}, f)

		for i := 0; i < 300; i++ {
			w.Step(1.0 / 60)
		}
		body, _ := w.Body(f)
		assert.True(t, body.OnGround)
		// The bottom of the box rests on the ground's top
		assert.InDelta(t, 1, body.Position.Y+body.BoxOffset.Y, 1e-3)
	})
}

func TestApplyImpulse(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GroundHeight = 0
	w := NewWorld(cfg, nil)

	near := testFragment(t, fragment.DefaultSimParams())
	far := testFragment(t, fragment.DefaultSimParams())
	center := testFragment(t, fragment.DefaultSimParams())
	w.Spawn(geom.Point{X: 11, Y: 30}, near)
	w.Spawn(geom.Point{X: 40, Y: 30}, far)
	w.Spawn(geom.Point{X: 10, Y: 30}, center)

	w.ApplyImpulse(geom.Point{X: 10, Y: 30}, 4, 2)

	body, _ := w.Body(near)
	assert.InDelta(t, 2, body.Velocity.X, 1e-9)
	assert.InDelta(t, 0, body.Velocity.Y, 1e-9)

	body, _ = w.Body(far)
	assert.Zero(t, body.Velocity.X)

	body, _ = w.Body(center)
	assert.InDelta(t, 4, body.Velocity.Y, 1e-9)
}

// The host as an explodable's spawner, from explosion until the fragments fade
// away.
func TestExplodableIntegration(t *testing.T) {
	w := NewWorld(DefaultConfig(), nil)
	settings := config.Default()
	settings.AllowRuntimeFragmentation = true
	settings.Strategy = partition.Voronoi
	settings.ExtraPoints = 5
	settings.FragmentLifetime = 2

	e, err := explodable.New("crate", testSprite(), settings,
		explodable.WithSpawner(w),
		explodable.WithPosition(geom.Point{X: 20, Y: 10}),
	)
	require.NoError(t, err)
	require.NoError(t, e.Explode())
	require.Equal(t, len(e.Fragments()), w.Len())

	w.ApplyImpulse(geom.Point{X: 20, Y: 9}, 1, 3)
	for i := 0; i < 60; i++ {
		w.Step(1.0 / 60)
		e.Tick(1.0 / 60)
	}
	for _, f := range e.Fragments() {
		display, ok := w.Display(f)
		require.True(t, ok)
		assert.InDelta(t, 0.5, display.Alpha, 1e-3)
	}

	for i := 0; i < 61; i++ {
		w.Step(1.0 / 60)
		e.Tick(1.0 / 60)
	}
	assert.Equal(t, explodable.Destroyed, e.State())
	assert.Zero(t, w.Len())
}
