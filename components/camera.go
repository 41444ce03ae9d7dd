package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData offsets the whole scene. The level fits the screen, so only
// screen shake moves it.
type CameraData struct {
	Offset math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
