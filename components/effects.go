package components

import (
	"image/color"

	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData tracks the hit tint applied after a noticeable contact
type FlashData struct {
	Duration int     // frames remaining
	R, G, B  float32 // tint passed to the shader
}

var Flash = donburi.NewComponentType[FlashData]()

// SquashStretchData tweens a sprite's scale back to 1 after an impact
type SquashStretchData struct {
	Tween *gween.Tween
	Scale float64
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()

// AutoDestroyData marks entities that should be destroyed after a duration
type AutoDestroyData struct {
	FramesRemaining int
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()

// DebrisData is one particle of the puff left behind by a destroyed body.
// It lives in world coordinates and is not simulated.
type DebrisData struct {
	Position gamemath.Point2D
	Velocity gamemath.Point2D
	Size     float64
	Life     int // initial frames, for fading
	Color    color.RGBA
}

var Debris = donburi.NewComponentType[DebrisData]()
