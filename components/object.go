package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData mirrors a physics body into the resolv space. X/Y is the
// top-left corner of the body's bounding box in space coordinates.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the resolv space that holds every mirror and dead zone.
var Space = donburi.NewComponentType[resolv.Space]()
