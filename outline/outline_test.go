package outline

import (
	"strings"
	"testing"

	"github.com/osuushi/shatter/geom"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSVG(t *testing.T) {
	t.Run("clockwise polygons come back counterclockwise", func(t *testing.T) {
		svg := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">
  <polygon points="0,0 0,4 4,4 4,0" />
  <polygon points="5 5, 8 5, 8 8" />
</svg>`
		polygons, err := ReadSVG(strings.NewReader(svg))
		require.NoError(t, err)
		require.Len(t, polygons, 2)
		assert.True(t, geom.IsCCW(polygons[0]))
		assert.InDelta(t, 16, polygons[0].SignedArea(), 1e-12)
		assert.InDelta(t, 4.5, polygons[1].SignedArea(), 1e-12)
	})

	t.Run("no polygons", func(t *testing.T) {
		svg := `<svg xmlns="http://www.w3.org/2000/svg"><rect width="1" height="1" /></svg>`
		_, err := ReadSVG(strings.NewReader(svg))
		assert.True(t, errors.Is(err, ErrNoOutline))
	})

	t.Run("bad coordinates", func(t *testing.T) {
		svg := `<svg xmlns="http://www.w3.org/2000/svg"><polygon points="0,0 1,x 2,2" /></svg>`
		_, err := ReadSVG(strings.NewReader(svg))
		assert.Error(t, err)
	})
}

func TestParsePoints(t *testing.T) {
	poly, err := ParsePoints("0,0 2,0\n2,2")
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}}, poly.Values())

	_, err = ParsePoints("0,0 2,0 2")
	assert.Error(t, err)

	_, err = ParsePoints("0,0 2,0")
	assert.Error(t, err)
}

func TestReadPoints(t *testing.T) {
	input := `0 0
4 0
4 4

10 10
10 12
12 10
`
	polygons, err := ReadPoints(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, polygons, 2)
	assert.InDelta(t, 8, polygons[0].SignedArea(), 1e-12)
	// The second one was clockwise
	assert.InDelta(t, 2, polygons[1].SignedArea(), 1e-12)

	_, err = ReadPoints(strings.NewReader(""))
	assert.True(t, errors.Is(err, ErrNoOutline))

	_, err = ReadPoints(strings.NewReader("0 0\n1 1\n\n"))
	assert.Error(t, err)

	_, err = ReadPoints(strings.NewReader("0 0\n1\n2 2\n"))
	assert.EqualError(t, err, `line 2: expected "x y", got "1"`)
}
