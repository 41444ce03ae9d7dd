package components

import (
	"image/color"

	"github.com/automoto/slingshot/assets"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData is drawn centred on the body and rotated with it. Image is
// generated from Shape, size and Color on first draw.
type SpriteData struct {
	Shape  assets.SpriteShape
	Width  float64
	Height float64
	Color  color.RGBA
	Image  *ebiten.Image
}

var Sprite = donburi.NewComponentType[SpriteData]()
