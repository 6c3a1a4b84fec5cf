package host

import (
	"github.com/osuushi/shatter/fragment"
	"github.com/osuushi/shatter/geom"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type BodyData struct {
	Fragment *fragment.Fragment
	// World position of the fragment's pivot.
	Position geom.Point
	Velocity geom.Point
	// Offset of the collision box's corner from the pivot, in world units.
	BoxOffset geom.Point
	OnGround  bool
}

type DisplayData struct {
	Alpha            float64
	Layer            string
	SortingLayerName string
	OrderInLayer     int
	Material         *fragment.Material
}

type ObjectData struct {
	*resolv.Object
}

var (
	Body    = donburi.NewComponentType[BodyData]()
	Display = donburi.NewComponentType[DisplayData]()
	Object  = donburi.NewComponentType[ObjectData]()

	FragmentTag = donburi.NewTag().SetName("Fragment")
)

// Tags of resolv objects.
const (
	TagSolid    = "solid"
	TagFragment = "fragment"
)
