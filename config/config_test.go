package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osuushi/shatter/partition"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
defaults:
  strategy: voronoi
  extraPoints: 12
  fragmentLifetime: 3
explodables:
  crate:
    strategy: triangle
    subshatterSteps: 1
    orderInLayer: 2
  rock:
    extraPoints: 30
    seed: 9
`

func TestLoad(t *testing.T) {
	file, err := Load(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, partition.Voronoi, file.Defaults.Strategy)
	assert.Equal(t, 12, file.Defaults.ExtraPoints)
	// Untouched defaults survive
	assert.Equal(t, 1.0, file.Defaults.GravityScale)
	assert.Equal(t, "Default", file.Defaults.FragmentLayer)

	crate := file.Lookup("crate")
	assert.Equal(t, partition.Triangle, crate.Strategy)
	assert.Equal(t, 12, crate.ExtraPoints)
	assert.Equal(t, 1, crate.SubshatterSteps)
	assert.Equal(t, 2, crate.OrderInLayer)
	assert.Equal(t, 3.0, crate.FragmentLifetime)

	rock := file.Lookup("rock")
	assert.Equal(t, partition.Voronoi, rock.Strategy)
	assert.Equal(t, 30, rock.ExtraPoints)
	assert.Equal(t, int64(9), rock.Seed)

	assert.Equal(t, file.Defaults, file.Lookup("barrel"))
}

func TestLoadEmpty(t *testing.T) {
	file, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), file.Defaults)
	assert.Empty(t, file.Explodables)
}

func TestLoadErrors(t *testing.T) {
	t.Run("unknown strategy", func(t *testing.T) {
		_, err := Load(strings.NewReader("defaults:\n  strategy: hexagon\n"))
		assert.Error(t, err)
	})

	t.Run("invalid section", func(t *testing.T) {
		_, err := Load(strings.NewReader("explodables:\n  crate:\n    extraPoints: -1\n"))
		assert.True(t, errors.Is(err, ErrInvalidConfig))
		assert.Contains(t, err.Error(), `"crate"`)
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := Load(strings.NewReader("defaults: [\n"))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	require.NoError(t, Default().Validate())

	cases := map[string]func(e *Explodable){
		"extra points":     func(e *Explodable) { e.ExtraPoints = -1 },
		"subshatter steps": func(e *Explodable) { e.SubshatterSteps = -1 },
		"min area":         func(e *Explodable) { e.MinArea = -1 },
		"lifetime":         func(e *Explodable) { e.FragmentLifetime = -1 },
		"density":          func(e *Explodable) { e.Density = 0 },
	}
	for name, breakIt := range cases {
		breakIt := breakIt
		t.Run(name, func(t *testing.T) {
			e := Default()
			breakIt(&e)
			assert.True(t, errors.Is(e.Validate(), ErrInvalidConfig))
		})
	}

	e := Default()
	e.Strategy = partition.Strategy(5)
	assert.True(t, errors.Is(e.Validate(), partition.ErrInvalidStrategy))
}

func TestWriteRoundTrip(t *testing.T) {
	file, err := Load(strings.NewReader(sample))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, file.Write(&buf))
	assert.Contains(t, buf.String(), "strategy: voronoi")

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	reloaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, file, reloaded)
}

func TestPartitioner(t *testing.T) {
	e := Default()
	e.Strategy = partition.Voronoi
	e.ExtraPoints = 4
	e.Seed = 3
	p := e.Partitioner()
	assert.Equal(t, partition.Voronoi, p.Strategy)
	assert.Equal(t, 4, p.ExtraPoints)
	assert.Equal(t, int64(3), p.Seed)
}
