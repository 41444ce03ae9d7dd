package archetypes

import (
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Bird = newArchetype(
		tags.Bird,
		components.Bird,
		components.Body,
		components.Object,
		components.Sprite,
	)
	Pig = newArchetype(
		tags.Pig,
		tags.Destructible,
		components.Target,
		components.Body,
		components.Object,
		components.Sprite,
		components.Flash,
	)
	Column = newArchetype(
		tags.Passive,
		tags.Destructible,
		components.Body,
		components.Object,
		components.Sprite,
		components.Flash,
	)
	StaticBlock = newArchetype(
		tags.Static,
		components.Body,
		components.Object,
		components.Sprite,
	)
	Ground = newArchetype(
		tags.Static,
		tags.Ground,
		components.Body,
		components.Object,
	)
	DeadZone = newArchetype(
		tags.DeadZone,
		components.Object,
	)
	Debris = newArchetype(
		components.Debris,
		components.AutoDestroy,
	)
	Space = newArchetype(
		components.Space,
	)
	Simulation = newArchetype(
		components.Simulation,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
