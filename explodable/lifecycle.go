package explodable

import (
	"github.com/osuushi/shatter/fragment"
	"github.com/pkg/errors"
)

// GenerateFragments cuts the sprite's outline into fresh fragments, replacing
// any existing ones, and notifies observers. The fragments start inactive.
// Only an Intact explodable can regenerate; live fragments have to be
// restored or deleted first.
//
// On error nothing changes: existing fragments are kept and observers are not
// called.
func (e *Explodable) GenerateFragments() error {
	if e.state != Intact {
		return errors.Wrapf(ErrInvalidTransition, "explodable %q: generate fragments while %s", e.Name, e.state)
	}
	return e.generate()
}

func (e *Explodable) generate() error {
	if e.sprite == nil {
		e.logger.Error("cannot generate fragments", "err", ErrMissingSpriteBinding)
		return errors.Wrapf(ErrMissingSpriteBinding, "explodable %q", e.Name)
	}

	partitioner := e.Settings.Partitioner()
	partitioner.Mask = e.sprite
	partitioner.Logger = e.logger
	polygons, err := partitioner.Partition(e.sprite.Outline)
	if err != nil {
		e.logger.Error("cannot generate fragments", "err", err)
		return errors.Wrapf(err, "explodable %q", e.Name)
	}

	builder := &fragment.Builder{
		Sprite: e.sprite,
		Params: fragment.SimParams{
			GravityScale: e.Settings.GravityScale,
			Density:      e.Settings.Density,
			Lifetime:     e.Settings.FragmentLifetime,
		},
		ConcaveColliders: e.Settings.ConcaveColliders,
	}
	fragments := builder.BuildAll(polygons)
	if skipped := len(polygons) - len(fragments); skipped > 0 {
		e.logger.Debug("skipped degenerate fragments", "count", skipped)
	}

	material := e.Material()
	for _, f := range fragments {
		f.Layer = e.Settings.FragmentLayer
		f.SortingLayerName = e.Settings.SortingLayerName
		f.OrderInLayer = e.Settings.OrderInLayer
		f.Material = material
	}

	e.discardFragments()
	e.fragments = fragments
	e.cachePolygons()
	e.logger.Debug("generated fragments", "count", len(fragments), "strategy", e.Settings.Strategy)

	e.notify(fragments)
	return nil
}

// Prepare fragments ahead of time, so that exploding only has to activate
// them.
func (e *Explodable) Prepare() error {
	if e.state != Intact {
		return errors.Wrapf(ErrInvalidTransition, "explodable %q: prepare while %s", e.Name, e.state)
	}
	return e.generate()
}

// Explode swaps the sprite for its fragments. Without prepared fragments they
// are generated now if the settings allow it. The source's renderer and
// collider are disabled either way, so exploding with no fragments and no
// runtime fragmentation just hides the sprite.
//
// Without a bound sprite this fails with ErrMissingSpriteBinding and changes
// nothing.
func (e *Explodable) Explode() error {
	if e.sprite == nil {
		e.logger.Error("cannot explode", "err", ErrMissingSpriteBinding)
		return errors.Wrapf(ErrMissingSpriteBinding, "explodable %q", e.Name)
	}
	if e.state != Intact {
		return errors.Wrapf(ErrInvalidTransition, "explodable %q: explode while %s", e.Name, e.state)
	}

	e.state = Exploding
	if len(e.fragments) == 0 && e.Settings.AllowRuntimeFragmentation {
		if err := e.generate(); err != nil {
			e.state = Intact
			return err
		}
	}

	for _, f := range e.fragments {
		if f.Material == nil {
			f.Material = e.Material()
		}
		f.Active = true
		e.spawner.Spawn(e.Position, f)
	}

	e.RendererEnabled = false
	e.ColliderEnabled = false
	e.state = Exploded
	e.logger.Info("exploded", "fragments", len(e.fragments))
	return nil
}

// Restore despawns the fragments and shows the sprite again. The fragments are
// kept, reset, for the next explosion.
func (e *Explodable) Restore() error {
	if e.state != Exploded {
		return errors.Wrapf(ErrInvalidTransition, "explodable %q: restore while %s", e.Name, e.state)
	}
	for _, f := range e.fragments {
		e.deactivate(f)
		f.Alpha = 1
		if f.Params.Lifetime > 0 {
			f.Fader = fragment.NewFader(f.Alpha, f.Params.Lifetime)
		}
	}
	e.RendererEnabled = true
	e.ColliderEnabled = true
	e.state = Intact
	return nil
}

// DeleteFragments discards every fragment and cached polygon, and puts the
// sprite back.
func (e *Explodable) DeleteFragments() {
	e.discardFragments()
	e.RendererEnabled = true
	e.ColliderEnabled = true
	e.state = Intact
}

func (e *Explodable) discardFragments() {
	for _, f := range e.fragments {
		e.deactivate(f)
	}
	e.fragments = nil
	e.polygons = nil
}

func (e *Explodable) deactivate(f *fragment.Fragment) {
	if f.Active {
		e.spawner.Despawn(f)
		f.Active = false
	}
}

// Tick advances fade timers by dt seconds. Fragments at the end of their
// lifetime are despawned and dropped; once none are left the explodable is
// Destroyed.
func (e *Explodable) Tick(dt float64) {
	if e.state != Exploded {
		return
	}

	kept := e.fragments[:0]
	removed := 0
	for _, f := range e.fragments {
		if !f.Active || f.Fader == nil {
			kept = append(kept, f)
			continue
		}
		alpha, expired := f.Fader.Advance(dt)
		if expired {
			e.deactivate(f)
			removed++
			continue
		}
		f.Alpha = alpha
		e.spawner.SetAlpha(f, alpha)
		kept = append(kept, f)
	}
	// Clear the tail so dropped fragments can be collected
	for i := len(kept); i < len(e.fragments); i++ {
		e.fragments[i] = nil
	}
	e.fragments = kept

	if removed > 0 {
		e.polygons = nil
		if len(e.fragments) == 0 {
			e.state = Destroyed
			e.logger.Debug("all fragments destroyed")
		}
	}
}
