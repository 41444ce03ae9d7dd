package components

import (
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/yohamta/donburi"
)

// AimData is the slingshot gesture in world coordinates.
type AimData struct {
	Start   gamemath.Point2D
	End     gamemath.Point2D
	Active  bool
	Preview []gamemath.Point2D

	// Forced overrides the distance tiering when non-nil.
	Forced *cfg.BirdKind
}

var Aim = donburi.NewComponentType[AimData]()

// Choice returns the bird kind a release right now would fire.
func (a *AimData) Choice() cfg.BirdKind {
	if a.Forced != nil {
		return *a.Forced
	}
	return cfg.BirdForDistance(gamemath.Distance(a.Start, a.End))
}

// SelectionLabel is the HUD text for the current selection mode.
func (a *AimData) SelectionLabel() string {
	if a.Forced == nil {
		return "auto"
	}
	return a.Forced.String()
}
