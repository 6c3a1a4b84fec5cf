// Package sprite describes the input to shattering: a sub-rectangle of a
// texture, the pivot and scale that place it in local space, and the outline
// of its visible shape.
//
// Texel coordinates have their origin at the bottom left of the texture and Y
// pointing up, like local space. image.Image rows run the other way, which is
// handled when reading alpha.
package sprite

import (
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/osuushi/shatter/geom"
	"github.com/pkg/errors"
)

var ErrInvalidSprite = errors.New("invalid sprite")

// Rect is a rectangle in texels.
type Rect struct {
	X, Y float64
	W, H float64
}

type Sprite struct {
	Name string

	// Texture may be nil, in which case every texel counts as opaque. The
	// texture size is still needed to compute UVs.
	Texture       image.Image
	TextureWidth  int
	TextureHeight int

	// Rect is the part of the texture this sprite shows.
	Rect Rect
	// Pivot is the local origin, in texels relative to Rect's corner.
	Pivot geom.Point
	// Texels per local unit.
	PixelsPerUnit float64

	// Outline of the visible shape in local units. Usually authored on the
	// entity's collider; FromImage uses the sprite's rectangle.
	Outline geom.Polygon
}

// FromImage makes a sprite showing the whole image with its pivot in the
// center and a rectangular outline.
func FromImage(name string, img image.Image, pixelsPerUnit float64) *Sprite {
	bounds := img.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	s := &Sprite{
		Name:          name,
		Texture:       img,
		TextureWidth:  bounds.Dx(),
		TextureHeight: bounds.Dy(),
		Rect:          Rect{W: w, H: h},
		Pivot:         geom.Point{X: w / 2, Y: h / 2},
		PixelsPerUnit: pixelsPerUnit,
	}
	s.Outline = s.RectOutline()
	return s
}

// LoadPNG reads a PNG file into a sprite, as FromImage.
func LoadPNG(path string, pixelsPerUnit float64) (*Sprite, error) {
	img, err := gg.LoadPNG(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loading sprite %q", path)
	}
	return FromImage(path, img, pixelsPerUnit), nil
}

func (s *Sprite) Validate() error {
	switch {
	case s.PixelsPerUnit <= 0:
		return errors.Wrapf(ErrInvalidSprite, "%q: pixels per unit must be positive, got %g", s.Name, s.PixelsPerUnit)
	case s.TextureWidth <= 0 || s.TextureHeight <= 0:
		return errors.Wrapf(ErrInvalidSprite, "%q: texture size %dx%d", s.Name, s.TextureWidth, s.TextureHeight)
	case s.Rect.W <= 0 || s.Rect.H <= 0:
		return errors.Wrapf(ErrInvalidSprite, "%q: empty texture rect", s.Name)
	case s.Rect.X < 0 || s.Rect.Y < 0 ||
		s.Rect.X+s.Rect.W > float64(s.TextureWidth) || s.Rect.Y+s.Rect.H > float64(s.TextureHeight):
		return errors.Wrapf(ErrInvalidSprite, "%q: texture rect %+v outside %dx%d texture", s.Name, s.Rect, s.TextureWidth, s.TextureHeight)
	case len(s.Outline.Points) < 3:
		return errors.Wrapf(ErrInvalidSprite, "%q: outline has %d points", s.Name, len(s.Outline.Points))
	}
	return nil
}

// Local units to texel coordinates.
func (s *Sprite) Texel(p geom.Point) geom.Point {
	return geom.Point{
		X: s.Rect.X + s.Pivot.X + p.X*s.PixelsPerUnit,
		Y: s.Rect.Y + s.Pivot.Y + p.Y*s.PixelsPerUnit,
	}
}

// UV maps a local point into normalized texture space, so that a mesh vertex
// samples the same texel the sprite shows there.
func (s *Sprite) UV(p geom.Point) geom.Point {
	texel := s.Texel(p)
	return geom.Point{
		X: texel.X / float64(s.TextureWidth),
		Y: texel.Y / float64(s.TextureHeight),
	}
}

// The sprite's rectangle in local units, counterclockwise.
func (s *Sprite) RectOutline() geom.Polygon {
	left := -s.Pivot.X / s.PixelsPerUnit
	bottom := -s.Pivot.Y / s.PixelsPerUnit
	right := left + s.Rect.W/s.PixelsPerUnit
	top := bottom + s.Rect.H/s.PixelsPerUnit
	return geom.NewPolygon(
		geom.Point{X: left, Y: bottom},
		geom.Point{X: right, Y: bottom},
		geom.Point{X: right, Y: top},
		geom.Point{X: left, Y: top},
	)
}

// Alpha of the texel under a local point, in [0, 1]. Points outside the
// sprite's rect are fully transparent. Without a texture everything inside
// is opaque.
func (s *Sprite) Alpha(p *geom.Point) float64 {
	texel := s.Texel(*p)
	if texel.X < s.Rect.X || texel.Y < s.Rect.Y ||
		texel.X >= s.Rect.X+s.Rect.W || texel.Y >= s.Rect.Y+s.Rect.H {
		return 0
	}
	if s.Texture == nil {
		return 1
	}

	bounds := s.Texture.Bounds()
	x := bounds.Min.X + int(math.Floor(texel.X))
	y := bounds.Max.Y - 1 - int(math.Floor(texel.Y))
	if !(image.Point{X: x, Y: y}).In(bounds) {
		return 0
	}
	_, _, _, a := s.Texture.At(x, y).RGBA()
	return float64(a) / 0xffff
}

// IsOpaque reports whether the texel under p is not fully transparent. This
// makes a sprite usable as the sampler's alpha mask.
func (s *Sprite) IsOpaque(p *geom.Point) bool {
	return s.Alpha(p) > 0
}
