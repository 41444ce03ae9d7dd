package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData is the "Level N" title faded over the scene when a level
// starts. Alpha is driven by Sequence.
type BannerData struct {
	Text     string
	Sequence *gween.Sequence
	Alpha    float32
	Done     bool
}

var Banner = donburi.NewComponentType[BannerData]()
