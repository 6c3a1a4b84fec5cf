package dbg

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/osuushi/shatter/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	a, b := &geom.Point{}, &geom.Point{}
	assert.Equal(t, Name(a), Name(a))
	assert.NotEmpty(t, Name(b))
	assert.Equal(t, "Ø", Name(nil))
	assert.Equal(t, "Ø", Name((*geom.Point)(nil)))
	assert.NotPanics(t, func() { Name(3) })
}

func TestDrawPolygons(t *testing.T) {
	square := geom.NewPolygon(
		geom.Point{X: 0, Y: 0},
		geom.Point{X: 2, Y: 0},
		geom.Point{X: 2, Y: 1},
		geom.Point{X: 0, Y: 1},
	)
	c := DrawPolygons([]geom.Polygon{square}, 10)
	assert.Equal(t, 20+DrawPadding*2, c.Width())
	assert.Equal(t, 10+DrawPadding*2, c.Height())

	// The middle of the square. Image rows run downward.
	img := c.Image()
	r, g, b, _ := img.At(DrawPadding+10, c.Height()-DrawPadding-5).RGBA()
	er, eg, eb, _ := color.Color(Palette[0]).RGBA()
	assert.InDelta(t, er, r, 0x200)
	assert.InDelta(t, eg, g, 0x200)
	assert.InDelta(t, eb, b, 0x200)

	// Background
	r, g, b, _ = img.At(1, 1).RGBA()
	assert.Zero(t, r+g+b)

	assert.NotPanics(t, func() { DrawPolygons(nil, 10) })
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fragments.png")
	square := geom.NewPolygon(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}, geom.Point{X: 1, Y: 1})
	require.NoError(t, SavePNG(path, []geom.Polygon{square}, 16))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestColorize(t *testing.T) {
	assert.Contains(t, Colorize(0, "rock"), "rock")
	assert.NotEqual(t, Colorize(0, "rock"), Colorize(1, "rock"))
	assert.Contains(t, Colorize(-7, "rock"), "rock")
}
