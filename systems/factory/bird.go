package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/assets"
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBird spawns a launched bird of the given kind at pos and applies the
// launch impulse for iv. It returns nil for an unknown kind or when the
// scene has no physics world.
func CreateBird(ecs *ecs.ECS, kind cfg.BirdKind, pos gamemath.Point2D, iv gamemath.ImpulseVector) *donburi.Entry {
	if !kind.Valid() {
		log.Warn("unknown bird kind", "kind", int(kind))
		return nil
	}
	params := cfg.Birds[kind]
	bird := spawnBird(ecs, kind, params, pos, abilityFor(params))
	if bird == nil {
		return nil
	}

	lp := launchParams(params)
	components.Body.Get(bird).ApplyImpulse(gamemath.LaunchImpulse(lp, iv))
	components.Bird.Get(bird).Launched = true

	log.Debug("bird launched", "kind", kind, "angle", iv.Angle, "impulse", gamemath.AppliedImpulse(lp, iv))
	return bird
}

// spawnBird creates the entity and its body without any impulse.
func spawnBird(ecs *ecs.ECS, kind cfg.BirdKind, params cfg.BirdTypeConfig, pos gamemath.Point2D, ability components.Ability) *donburi.Entry {
	world := GetWorld(ecs)
	if world == nil {
		return nil
	}

	bird := archetypes.Bird.Spawn(ecs)
	binding := physics.NewCircleBinding(world, params.Mass, params.Radius, pos, material(params.Material))
	components.Body.SetValue(bird, components.BodyData{Binding: binding})

	components.Bird.SetValue(bird, components.BirdData{
		Kind:    kind,
		Params:  params,
		Ability: ability,
	})

	size := params.Radius * 2
	addMirror(ecs, bird, pos, size, size, tags.ResolvBird)

	components.Sprite.SetValue(bird, components.SpriteData{
		Shape:  assets.ShapeCircle,
		Width:  size,
		Height: size,
		Color:  params.Color,
	})
	return bird
}

func launchParams(p cfg.BirdTypeConfig) gamemath.LaunchParams {
	return gamemath.LaunchParams{
		Mass:            p.Mass,
		MaxImpulse:      p.MaxImpulse,
		PowerMultiplier: p.PowerMultiplier,
	}
}

// LaunchParamsFor returns the launch numbers of a bird kind, used by the
// aim preview. Unknown kinds get zero params, which predict nothing.
func LaunchParamsFor(kind cfg.BirdKind) gamemath.LaunchParams {
	if !kind.Valid() {
		return gamemath.LaunchParams{}
	}
	return launchParams(cfg.Birds[kind])
}
