package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/assets"
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePig spawns a target at pos.
func CreatePig(ecs *ecs.ECS, pos gamemath.Point2D) *donburi.Entry {
	world := GetWorld(ecs)
	if world == nil {
		return nil
	}

	pig := archetypes.Pig.Spawn(ecs)
	binding := physics.NewCircleBinding(world, cfg.Pig.Mass, cfg.Pig.Radius, pos, material(cfg.Pig.Material))
	components.Body.SetValue(pig, components.BodyData{Binding: binding})
	components.Target.SetValue(pig, components.TargetData{Award: cfg.Collision.PigAward})

	size := cfg.Pig.Radius * 2
	addMirror(ecs, pig, pos, size, size, tags.ResolvPig)

	components.Sprite.SetValue(pig, components.SpriteData{
		Shape:  assets.ShapeCircle,
		Width:  size,
		Height: size,
		Color:  cfg.Pig.Color,
	})
	components.Flash.SetValue(pig, components.FlashData{Duration: 0, R: 1, G: 1, B: 1})
	return pig
}
