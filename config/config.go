// Package config holds the settings of explodable sprites and reads them from
// YAML.
//
// A settings file has a defaults section and a section per named sprite.
// Named sections only need to list what differs from the defaults:
//
//	defaults:
//	  strategy: voronoi
//	  extraPoints: 12
//	explodables:
//	  crate:
//	    fragmentLifetime: 2
package config

import (
	"io"
	"os"

	"github.com/osuushi/shatter/partition"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid explodable settings")

type Explodable struct {
	// Fragment on the first explosion when nothing was prepared ahead.
	AllowRuntimeFragmentation bool               `yaml:"allowRuntimeFragmentation"`
	Strategy                  partition.Strategy `yaml:"strategy"`
	ExtraPoints               int                `yaml:"extraPoints"`
	SubshatterSteps           int                `yaml:"subshatterSteps"`
	Seed                      int64              `yaml:"seed"`
	MinArea                   float64            `yaml:"minArea,omitempty"`

	FragmentLayer    string `yaml:"fragmentLayer"`
	SortingLayerName string `yaml:"sortingLayerName"`
	OrderInLayer     int    `yaml:"orderInLayer"`

	// Zero keeps fragments forever.
	FragmentLifetime float64 `yaml:"fragmentLifetime"`
	GravityScale     float64 `yaml:"gravityScale"`
	Density          float64 `yaml:"density"`
	ConcaveColliders bool    `yaml:"concaveColliders"`
}

func Default() Explodable {
	return Explodable{
		Strategy:         partition.Triangle,
		FragmentLayer:    "Default",
		SortingLayerName: "Default",
		GravityScale:     1,
		Density:          1,
	}
}

func (e Explodable) Validate() error {
	switch {
	case !e.Strategy.Valid():
		return errors.Wrapf(partition.ErrInvalidStrategy, "%s", e.Strategy)
	case e.ExtraPoints < 0:
		return errors.Wrapf(ErrInvalidConfig, "extraPoints must not be negative, got %d", e.ExtraPoints)
	case e.SubshatterSteps < 0:
		return errors.Wrapf(ErrInvalidConfig, "subshatterSteps must not be negative, got %d", e.SubshatterSteps)
	case e.MinArea < 0:
		return errors.Wrapf(ErrInvalidConfig, "minArea must not be negative, got %g", e.MinArea)
	case e.FragmentLifetime < 0:
		return errors.Wrapf(ErrInvalidConfig, "fragmentLifetime must not be negative, got %g", e.FragmentLifetime)
	case e.Density <= 0:
		return errors.Wrapf(ErrInvalidConfig, "density must be positive, got %g", e.Density)
	}
	return nil
}

// The partitioner these settings describe.
func (e Explodable) Partitioner() *partition.Partitioner {
	return &partition.Partitioner{
		Strategy:        e.Strategy,
		ExtraPoints:     e.ExtraPoints,
		SubshatterSteps: e.SubshatterSteps,
		Seed:            e.Seed,
		MinArea:         e.MinArea,
	}
}

type File struct {
	Defaults    Explodable
	Explodables map[string]Explodable
}

// Settings for the named explodable, falling back to the defaults.
func (f *File) Lookup(name string) Explodable {
	if e, ok := f.Explodables[name]; ok {
		return e
	}
	return f.Defaults
}

type rawFile struct {
	Defaults    yaml.Node            `yaml:"defaults"`
	Explodables map[string]yaml.Node `yaml:"explodables"`
}

// Load reads a settings file. Every section is validated.
func Load(r io.Reader) (*File, error) {
	var raw rawFile
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decoding settings")
	}

	file := &File{
		Defaults:    Default(),
		Explodables: make(map[string]Explodable, len(raw.Explodables)),
	}
	if !raw.Defaults.IsZero() {
		if err := raw.Defaults.Decode(&file.Defaults); err != nil {
			return nil, errors.Wrap(err, "decoding defaults")
		}
	}
	if err := file.Defaults.Validate(); err != nil {
		return nil, errors.Wrap(err, "defaults")
	}

	for name, node := range raw.Explodables {
		settings := file.Defaults
		if err := node.Decode(&settings); err != nil {
			return nil, errors.Wrapf(err, "decoding %q", name)
		}
		if err := settings.Validate(); err != nil {
			return nil, errors.Wrapf(err, "%q", name)
		}
		file.Explodables[name] = settings
	}
	return file, nil
}

func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening settings")
	}
	defer f.Close()
	return Load(f)
}

// Write the settings as YAML, in the format Load reads.
func (f *File) Write(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	err := encoder.Encode(struct {
		Defaults    Explodable            `yaml:"defaults"`
		Explodables map[string]Explodable `yaml:"explodables,omitempty"`
	}{f.Defaults, f.Explodables})
	if err != nil {
		return errors.Wrap(err, "encoding settings")
	}
	return encoder.Close()
}
