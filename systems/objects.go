package systems

import (
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/automoto/slingshot/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves every dynamic body's resolv mirror to the body's
// current position. Static mirrors never move.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		if !e.HasComponent(components.Body) || e.HasComponent(tags.Static) {
			continue
		}
		body := components.Body.Get(e)
		if body.Removed() {
			continue
		}
		obj := components.Object.Get(e)
		obj.X, obj.Y = factory.ToSpace(body.Position(), obj.W, obj.H)
		obj.Update()
	}
}
