package explodable

import "strconv"

type State int

const (
	// Showing the source sprite. Fragments may exist, inactive.
	Intact State = iota
	// Fragmenting and spawning. Only seen by observers.
	Exploding
	// The source is hidden and its fragments are live.
	Exploded
	// Every fragment has reached the end of its lifetime.
	Destroyed
)

var stateNames = [...]string{"intact", "exploding", "exploded", "destroyed"}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}
