package systems

import (
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/automoto/slingshot/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions applies the impulse policy to every contact reported by
// the last physics step. Weak contacts are ignored, strong ones destroy the
// destructible entities involved and anything in between only gives visual
// feedback.
func UpdateCollisions(ecs *ecs.ECS) {
	world := factory.GetWorld(ecs)
	if world == nil {
		return
	}
	for _, c := range world.Contacts() {
		applyContact(ecs, c)
	}
}

func applyContact(ecs *ecs.ECS, c physics.Contact) {
	if c.Impulse < cfg.Collision.Low {
		return
	}
	log.Debug("collision", "impulse", c.Impulse)

	if c.Impulse > cfg.Collision.High {
		for _, e := range contactOwners(ecs, c, tags.Destructible) {
			destroyTarget(ecs, e)
		}
		return
	}

	for _, e := range contactOwners(ecs, c, components.Flash) {
		TriggerHitFlash(e)
	}
	for _, e := range contactOwners(ecs, c, tags.Bird) {
		TriggerSquashStretch(e, cfg.Effects.SquashScale)
	}
}

// contactOwners snapshots the live entities of a kind that own one of the
// contact's shapes.
func contactOwners[T any](ecs *ecs.ECS, c physics.Contact, kind *donburi.ComponentType[T]) []*donburi.Entry {
	var owners []*donburi.Entry
	kind.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Body) {
			return
		}
		body := components.Body.Get(e)
		if body.Owns(c.Shapes[0]) || body.Owns(c.Shapes[1]) {
			owners = append(owners, e)
		}
	})
	return owners
}

// destroyTarget removes a destructible entity and awards its points.
func destroyTarget(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	award := 0
	if e.HasComponent(components.Target) {
		award = components.Target.Get(e).Award
	}
	pos := components.Body.Get(e).Position()
	clr := cfg.White
	if e.HasComponent(components.Sprite) {
		clr = components.Sprite.Get(e).Color
	}

	if !factory.Destroy(ecs, e) {
		return
	}
	factory.SpawnDebris(ecs, pos, clr)

	if award > 0 {
		TriggerScreenShake(ecs, cfg.Effects.ShakeIntensity, cfg.Effects.ShakeDuration)
		AddScore(ecs, award)
	}
}
