// Package explodable manages the fragments of one sprite over its life:
// generating them ahead of time or on demand, swapping them in for the sprite
// when it explodes, fading them out, and putting the sprite back.
//
// Everything runs on the caller's goroutine. Tick is expected once per
// simulation step.
package explodable

import (
	"log/slog"

	"github.com/osuushi/shatter/config"
	"github.com/osuushi/shatter/fragment"
	"github.com/osuushi/shatter/geom"
	"github.com/osuushi/shatter/sprite"
	"github.com/pkg/errors"
)

var (
	ErrMissingSpriteBinding = errors.New("no sprite bound")
	ErrInvalidTransition    = errors.New("invalid state transition")
)

type Explodable struct {
	Name string
	// Where the sprite's local origin is in the world.
	Position geom.Point

	// Whether the source sprite is drawn and collides. Exploding clears both.
	RendererEnabled bool
	ColliderEnabled bool

	Settings config.Explodable

	sprite    *sprite.Sprite
	material  *fragment.Material
	state     State
	fragments []*fragment.Fragment
	polygons  []geom.Polygon
	observers []*Registration
	spawner   Spawner
	logger    *slog.Logger
}

type Option func(*Explodable)

func WithSpawner(s Spawner) Option {
	return func(e *Explodable) { e.spawner = s }
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Explodable) { e.logger = l }
}

// Share an existing material instead of creating one from the sprite on
// first use.
func WithMaterial(m *fragment.Material) Option {
	return func(e *Explodable) { e.material = m }
}

func WithPosition(p geom.Point) Option {
	return func(e *Explodable) { e.Position = p }
}

// New validates the settings and, if one is given, the sprite. A nil sprite is
// allowed, but the explodable cannot explode until one is bound.
func New(name string, s *sprite.Sprite, settings config.Explodable, opts ...Option) (*Explodable, error) {
	if err := settings.Validate(); err != nil {
		return nil, errors.Wrapf(err, "explodable %q", name)
	}
	if s != nil {
		if err := s.Validate(); err != nil {
			return nil, errors.Wrapf(err, "explodable %q", name)
		}
	}

	e := &Explodable{
		Name:            name,
		RendererEnabled: true,
		ColliderEnabled: true,
		Settings:        settings,
		sprite:          s,
		spawner:         nopSpawner{},
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With("explodable", name)
	return e, nil
}

func (e *Explodable) State() State {
	return e.state
}

func (e *Explodable) Sprite() *sprite.Sprite {
	return e.sprite
}

// Bind a sprite. Existing fragments were cut from the old one, so they are
// deleted.
func (e *Explodable) BindSprite(s *sprite.Sprite) error {
	if s != nil {
		if err := s.Validate(); err != nil {
			return errors.Wrapf(err, "explodable %q", e.Name)
		}
	}
	e.DeleteFragments()
	e.sprite = s
	e.material = nil
	return nil
}

// Fragments returns a copy of the fragment list.
func (e *Explodable) Fragments() []*fragment.Fragment {
	return append([]*fragment.Fragment(nil), e.fragments...)
}

// Outlines of the fragments in the sprite's local space, for drawing.
func (e *Explodable) Polygons() []geom.Polygon {
	if len(e.polygons) == 0 && len(e.fragments) > 0 {
		e.cachePolygons()
	}
	return e.polygons
}

func (e *Explodable) cachePolygons() {
	e.polygons = make([]geom.Polygon, len(e.fragments))
	for i, f := range e.fragments {
		e.polygons[i] = f.Polygon.Clone()
	}
}

// The material shared by all fragments, created from the sprite on first use.
func (e *Explodable) Material() *fragment.Material {
	if e.material == nil && e.sprite != nil {
		e.material = &fragment.Material{Name: e.Name, Texture: e.sprite.Texture}
	}
	return e.material
}
