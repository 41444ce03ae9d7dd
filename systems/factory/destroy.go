package factory

import (
	"github.com/automoto/slingshot/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Destroy takes an entity out of the game: its body leaves the physics
// world, its mirror leaves the resolv space and the entry is removed. It
// returns false when the entity was already gone.
func Destroy(ecs *ecs.ECS, e *donburi.Entry) bool {
	if e == nil || !e.Valid() {
		return false
	}

	if e.HasComponent(components.Body) {
		if body := components.Body.Get(e); body.Binding != nil {
			body.Remove()
		}
	}
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e).Object; obj != nil && obj.Space != nil {
			obj.Space.Remove(obj)
		}
	}

	ecs.World.Remove(e.Entity())
	return true
}
