package factory

import (
	"math"

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

// CreateColumn spawns a dynamic, destructible box centred on pos.
func CreateColumn(ecs *ecs.ECS, pos gamemath.Point2D) *donburi.Entry {
	world := GetWorld(ecs)
	if world == nil {
		return nil
	}

	c := cfg.Column
	column := archetypes.Column.Spawn(ecs)
	binding := physics.NewBoxBinding(world, c.Mass, c.Width, c.Height, pos, material(c.Material))
	components.Body.SetValue(column, components.BodyData{Binding: binding})

	addMirror(ecs, column, pos, c.Width, c.Height, tags.ResolvPassive)

	components.Sprite.SetValue(column, components.SpriteData{
		Shape:  assets.ShapeBox,
		Width:  c.Width,
		Height: c.Height,
		Color:  c.Color,
	})
	components.Flash.SetValue(column, components.FlashData{Duration: 0, R: 1, G: 1, B: 1})
	return column
}

// CreateStatic spawns an immovable block centred on pos. A zero size falls
// back to the configured block size.
func CreateStatic(ecs *ecs.ECS, pos gamemath.Point2D, w, h float64) *donburi.Entry {
	world := GetWorld(ecs)
	if world == nil {
		return nil
	}
	if w <= 0 || h <= 0 {
		w, h = cfg.Static.Width, cfg.Static.Height
	}

	block := archetypes.StaticBlock.Spawn(ecs)
	binding := physics.NewStaticBoxBinding(world, w, h, pos, material(cfg.Static.Material))
	components.Body.SetValue(block, components.BodyData{Binding: binding})

	addMirror(ecs, block, pos, w, h, tags.ResolvSolid)

	components.Sprite.SetValue(block, components.SpriteData{
		Shape:  assets.ShapeBox,
		Width:  w,
		Height: h,
		Color:  cfg.Static.Color,
	})
	return block
}

// CreateGround spawns a static floor segment from a to b. A zero friction
// uses the configured ground material.
func CreateGround(ecs *ecs.ECS, a, b gamemath.Point2D, friction float64) *donburi.Entry {
	world := GetWorld(ecs)
	if world == nil {
		return nil
	}

	m := material(cfg.Ground.Material)
	if friction > 0 {
		m.Friction = friction
	}

	ground := archetypes.Ground.Spawn(ecs)
	binding := physics.NewSegmentBinding(world, a, b, cfg.Ground.Radius, m)
	components.Body.SetValue(ground, components.BodyData{Binding: binding})

	// Mirror the segment's bounding box, at least a few pixels thick
	w := math.Max(math.Abs(b.X-a.X), 1)
	h := math.Abs(b.Y-a.Y) + 4
	center := gamemath.Point2D{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	addMirror(ecs, ground, center, w, h, tags.ResolvSolid)
	return ground
}
