package explodable

import "github.com/osuushi/shatter/fragment"

// Observer is notified once per fragment generation, with every fragment that
// was generated, in order. The slice is a copy; observers may read fragments
// and attach Data to them but should not change their geometry.
type Observer interface {
	FragmentsGenerated(fragments []*fragment.Fragment)
}

type ObserverFunc func(fragments []*fragment.Fragment)

func (f ObserverFunc) FragmentsGenerated(fragments []*fragment.Fragment) {
	f(fragments)
}

// Registration of an observer. Disabled observers are skipped.
type Registration struct {
	Observer Observer
	Enabled  bool
}

func (e *Explodable) AddObserver(o Observer) *Registration {
	r := &Registration{Observer: o, Enabled: true}
	e.observers = append(e.observers, r)
	return r
}

func (e *Explodable) notify(fragments []*fragment.Fragment) {
	for _, r := range e.observers {
		if !r.Enabled {
			continue
		}
		r.Observer.FragmentsGenerated(append([]*fragment.Fragment(nil), fragments...))
	}
}
