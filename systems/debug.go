package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/fonts"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/automoto/slingshot/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every resolv mirror and dead zone. Mirrors touching a
// dead zone are filled: they are about to leave play.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateDebug(ecs).Overlay {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	leaving := 0
	for _, obj := range space.Objects() {
		x, y := WorldToScreen(ecs, factory.SpaceToWorld(obj.X, obj.Y))

		c := debugColor(obj)
		if !obj.HasTags(tags.ResolvDeadZone) && obj.Check(0, 0, tags.ResolvDeadZone) != nil {
			vector.FillRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), cfg.Effects.DeadZoneColor, false)
			leaving++
		}

		vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
	}

	summary := fmt.Sprintf("objects: %d  leaving: %d", len(space.Objects()), leaving)
	text.Draw(screen, summary, fonts.Small.Get(), cfg.HUD.Margin, cfg.C.Height-cfg.HUD.Margin, cfg.Effects.DebugOutlineColor)
}

func debugColor(obj *resolv.Object) color.Color {
	switch {
	case obj.HasTags(tags.ResolvDeadZone):
		return cfg.Effects.DeadZoneColor
	case obj.HasTags(tags.ResolvSolid):
		return cfg.Grey
	case obj.HasTags(tags.ResolvBird):
		return cfg.Red
	case obj.HasTags(tags.ResolvPig):
		return cfg.Green
	case obj.HasTags(tags.ResolvPassive):
		return cfg.Brown
	}
	return cfg.Effects.DebugOutlineColor
}
