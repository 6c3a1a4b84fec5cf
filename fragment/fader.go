package fragment

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fader fades a fragment from its initial alpha to zero over its lifetime and
// reports when the lifetime is up. It is advanced by elapsed time once per
// simulation step; it never blocks.
type Fader struct {
	Lifetime float64
	Elapsed  float64

	tween *gween.Tween
	alpha float64
}

func NewFader(initialAlpha, lifetime float64) *Fader {
	return &Fader{
		Lifetime: lifetime,
		tween:    gween.New(float32(initialAlpha), 0, float32(lifetime), ease.Linear),
		alpha:    initialAlpha,
	}
}

// Advance by dt seconds, returning the new alpha and whether the fragment has
// reached the end of its life.
func (f *Fader) Advance(dt float64) (alpha float64, expired bool) {
	if dt < 0 {
		dt = 0
	}
	f.Elapsed += dt
	current, finished := f.tween.Update(float32(dt))
	f.alpha = float64(current)
	if finished || f.Elapsed >= f.Lifetime {
		f.alpha = 0
		return 0, true
	}
	return f.alpha, false
}

func (f *Fader) Alpha() float64 {
	return f.alpha
}

func (f *Fader) Expired() bool {
	return f.Elapsed >= f.Lifetime
}
