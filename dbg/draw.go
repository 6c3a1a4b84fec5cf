package dbg

import (
	"image/color"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/shatter/geom"
	"github.com/pkg/errors"
)

// This is for debugging and the command line tool only.

// Padding around the drawing, in pixels.
const DrawPadding = 20

// Palette the fragments are filled with, in turn.
var Palette = []color.NRGBA{
	{R: 0x2e, G: 0x86, B: 0xab, A: 0xff},
	{R: 0xe0, G: 0x7a, B: 0x5f, A: 0xff},
	{R: 0x81, G: 0xb2, B: 0x9a, A: 0xff},
	{R: 0xf2, G: 0xcc, B: 0x8f, A: 0xff},
	{R: 0x9d, G: 0x4e, B: 0xdd, A: 0xff},
	{R: 0x3d, G: 0x40, B: 0x5b, A: 0xff},
}

// DrawPolygons draws each polygon filled with the next palette color and
// outlined, on a black background. scale is pixels per unit. The origin is at
// the bottom left, as in geometry space.
func DrawPolygons(polygons []geom.Polygon, scale float64) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range polygons {
		min, max := poly.Bounds()
		minX = math.Min(minX, min.X)
		minY = math.Min(minY, min.Y)
		maxX = math.Max(maxX, max.X)
		maxY = math.Max(maxY, max.Y)
	}
	if len(polygons) == 0 || math.IsInf(minX, 1) {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	// Set up the context
	width := int(math.Ceil(scale*(maxX-minX))) + DrawPadding*2
	height := int(math.Ceil(scale*(maxY-minY))) + DrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(DrawPadding, DrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(1)
	for i, poly := range polygons {
		if len(poly.Points) < 3 {
			continue
		}
		c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
		for _, p := range poly.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetColor(Palette[i%len(Palette)])
		c.FillPreserve()
		c.SetRGB(1, 1, 1)
		c.Stroke()
	}
	return c
}

func SavePNG(path string, polygons []geom.Polygon, scale float64) error {
	if err := DrawPolygons(polygons, scale).SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %q", path)
	}
	return nil
}

// Show prints the polygons to the terminal (iTerm only).
func Show(polygons []geom.Polygon, scale float64) error {
	file, err := os.CreateTemp("", "shatter-*.png")
	if err != nil {
		return errors.Wrap(err, "creating preview file")
	}
	path := file.Name()
	file.Close()
	defer os.Remove(path)

	if err := SavePNG(path, polygons, scale); err != nil {
		return err
	}
	return errors.Wrap(imgcat.CatFile(path, os.Stdout), "printing preview")
}
