package partition

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Strategy selects how an outline is cut up.
type Strategy int

const (
	// Triangle cuts the outline into triangles, fanning out from every
	// interior sample.
	Triangle Strategy = iota
	// Voronoi cuts the outline into the Voronoi cells of the samples.
	Voronoi
)

var ErrInvalidStrategy = errors.New("invalid shatter strategy")

var strategyNames = map[Strategy]string{
	Triangle: "triangle",
	Voronoi:  "voronoi",
}

func ParseStrategy(name string) (Strategy, error) {
	for strategy, strategyName := range strategyNames {
		if strings.EqualFold(strings.TrimSpace(name), strategyName) {
			return strategy, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidStrategy, "%q", name)
}

func (s Strategy) Valid() bool {
	_, ok := strategyNames[s]
	return ok
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return "Strategy(" + strconv.Itoa(int(s)) + ")"
}

func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, errors.Wrapf(ErrInvalidStrategy, "%d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Strategy) UnmarshalText(text []byte) error {
	strategy, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = strategy
	return nil
}
