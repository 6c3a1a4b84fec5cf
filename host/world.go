// Package host is a small simulation that fragments can be spawned into. Each
// fragment becomes an entity in a donburi world, with a box in a resolv space
// for collisions against solid ground, so fragments fall, land and fade.
//
// Coordinates are world units with Y up. The resolv space works in
// world units times Scale, so that its integer cells stay reasonably sized.
package host

import (
	"log/slog"
	"math"

	"github.com/osuushi/shatter/fragment"
	"github.com/osuushi/shatter/geom"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type Config struct {
	// Size of the simulated area, in world units. Things outside it do not
	// collide.
	Width, Height float64
	// Space units per world unit.
	Scale float64
	// Resolv cell size, in space units.
	CellSize int
	// Downward acceleration in world units per second squared, before each
	// fragment's gravity scale.
	Gravity float64
	// Height of the solid floor at the bottom of the area. Zero for none.
	GroundHeight float64
}

func DefaultConfig() Config {
	return Config{
		Width:        64,
		Height:       64,
		Scale:        16,
		CellSize:     16,
		Gravity:      9.81,
		GroundHeight: 1,
	}
}

type World struct {
	config   Config
	ecs      donburi.World
	space    *resolv.Space
	entities map[*fragment.Fragment]donburi.Entity
	logger   *slog.Logger
}

func NewWorld(config Config, logger *slog.Logger) *World {
	if logger == nil {
		logger = slog.Default()
	}
	w := &World{
		config:   config,
		ecs:      donburi.NewWorld(),
		space:    resolv.NewSpace(int(config.Width*config.Scale), int(config.Height*config.Scale), config.CellSize, config.CellSize),
		entities: make(map[*fragment.Fragment]donburi.Entity),
		logger:   logger,
	}
	if config.GroundHeight > 0 {
		ground := resolv.NewObject(0, 0, config.Width*config.Scale, config.GroundHeight*config.Scale, TagSolid)
		ground.SetShape(resolv.NewRectangle(0, 0, ground.W, ground.H))
		w.space.Add(ground)
	}
	return w
}

// Spawn implements explodable.Spawner.
func (w *World) Spawn(origin geom.Point, f *fragment.Fragment) {
	if _, ok := w.entities[f]; ok {
		return
	}

	min, max := colliderBounds(f)
	position := origin.Add(f.Pivot)
	scale := w.config.Scale
	obj := resolv.NewObject(
		(position.X+min.X)*scale,
		(position.Y+min.Y)*scale,
		(max.X-min.X)*scale,
		(max.Y-min.Y)*scale,
		TagFragment,
	)
	obj.SetShape(resolv.NewRectangle(0, 0, obj.W, obj.H))

	entity := w.ecs.Create(Body, Display, Object, FragmentTag)
	entry := w.ecs.Entry(entity)
	obj.Data = entry
	w.space.Add(obj)

	Body.SetValue(entry, BodyData{
		Fragment:  f,
		Position:  position,
		BoxOffset: min,
	})
	Display.SetValue(entry, DisplayData{
		Alpha:            f.Alpha,
		Layer:            f.Layer,
		SortingLayerName: f.SortingLayerName,
		OrderInLayer:     f.OrderInLayer,
		Material:         f.Material,
	})
	Object.SetValue(entry, ObjectData{Object: obj})
	w.entities[f] = entity
}

// SetAlpha implements explodable.Spawner.
func (w *World) SetAlpha(f *fragment.Fragment, alpha float64) {
	entry, ok := w.entry(f)
	if !ok {
		return
	}
	Display.Get(entry).Alpha = alpha
}

// Despawn implements explodable.Spawner.
func (w *World) Despawn(f *fragment.Fragment) {
	entity, ok := w.entities[f]
	if !ok {
		return
	}
	delete(w.entities, f)
	if !w.ecs.Valid(entity) {
		return
	}
	entry := w.ecs.Entry(entity)
	w.space.Remove(Object.Get(entry).Object)
	w.ecs.Remove(entity)
}

// Step moves every fragment by dt seconds: gravity, then movement resolved
// against solid objects one axis at a time.
func (w *World) Step(dt float64) {
	scale := w.config.Scale
	Body.Each(w.ecs, func(entry *donburi.Entry) {
		body := Body.Get(entry)
		obj := Object.Get(entry).Object

		body.Velocity.Y -= w.config.Gravity * body.Fragment.Params.GravityScale * dt

		dx := body.Velocity.X * dt * scale
		if dx != 0 {
			if check := obj.Check(dx, 0, TagSolid); check != nil {
				if solids := check.ObjectsByTags(TagSolid); len(solids) > 0 {
					dx = check.ContactWithObject(solids[0]).X()
					body.Velocity.X = 0
				}
			}
			obj.X += dx
		}

		dy := body.Velocity.Y * dt * scale
		body.OnGround = false
		if dy != 0 {
			if check := obj.Check(0, dy, TagSolid); check != nil {
				if solids := check.ObjectsByTags(TagSolid); len(solids) > 0 {
					dy = check.ContactWithObject(solids[0]).Y()
					body.OnGround = body.Velocity.Y < 0
					body.Velocity.Y = 0
					// Ground friction
					body.Velocity.X *= 0.8
				}
			}
			obj.Y += dy
		}
		obj.Update()

		body.Position = geom.Point{X: obj.X/scale - body.BoxOffset.X, Y: obj.Y/scale - body.BoxOffset.Y}
	})
}

// ApplyImpulse pushes every fragment within radius of center away from it.
// The push falls off linearly with distance and is divided by the fragment's
// mass.
func (w *World) ApplyImpulse(center geom.Point, strength, radius float64) {
	if radius <= 0 {
		return
	}
	Body.Each(w.ecs, func(entry *donburi.Entry) {
		body := Body.Get(entry)
		offset := body.Position.Sub(center)
		distance := offset.Length()
		if distance >= radius {
			return
		}
		direction := geom.Point{X: 0, Y: 1}
		if distance > geom.Tolerance {
			direction = offset.Scale(1 / distance)
		}
		mass := math.Max(body.Fragment.Mass, geom.AreaTolerance)
		impulse := strength * (1 - distance/radius) / mass
		body.Velocity = body.Velocity.Add(direction.Scale(impulse))
	})
	w.logger.Debug("applied impulse", "center", center, "strength", strength, "radius", radius)
}

// Number of live fragments.
func (w *World) Len() int {
	return len(w.entities)
}

func (w *World) Body(f *fragment.Fragment) (BodyData, bool) {
	entry, ok := w.entry(f)
	if !ok {
		return BodyData{}, false
	}
	return *Body.Get(entry), true
}

func (w *World) Display(f *fragment.Fragment) (DisplayData, bool) {
	entry, ok := w.entry(f)
	if !ok {
		return DisplayData{}, false
	}
	return *Display.Get(entry), true
}

// Polygons of every live fragment in world space, e.g. for drawing.
func (w *World) Polygons() []geom.Polygon {
	var polygons []geom.Polygon
	Body.Each(w.ecs, func(entry *donburi.Entry) {
		body := Body.Get(entry)
		polygons = append(polygons, body.Fragment.WorldPolygon(body.Position.Sub(body.Fragment.Pivot)))
	})
	return polygons
}

func (w *World) entry(f *fragment.Fragment) (*donburi.Entry, bool) {
	entity, ok := w.entities[f]
	if !ok || !w.ecs.Valid(entity) {
		return nil, false
	}
	return w.ecs.Entry(entity), true
}

// Bounds of all collider parts, relative to the pivot.
func colliderBounds(f *fragment.Fragment) (min, max geom.Point) {
	min = geom.Point{X: math.Inf(1), Y: math.Inf(1)}
	max = geom.Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, part := range f.Collider.Parts {
		partMin, partMax := part.Bounds()
		min.X = math.Min(min.X, partMin.X)
		min.Y = math.Min(min.Y, partMin.Y)
		max.X = math.Max(max.X, partMax.X)
		max.Y = math.Max(max.Y, partMax.Y)
	}
	if len(f.Collider.Parts) == 0 {
		return geom.Point{}, geom.Point{}
	}
	return min, max
}
