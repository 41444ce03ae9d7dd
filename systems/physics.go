package systems

import (
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics advances the simulation by one fixed step. Contacts reported
// during the step stay queued until UpdateCollisions drains them.
func UpdatePhysics(ecs *ecs.ECS) {
	world := factory.GetWorld(ecs)
	if world == nil {
		return
	}
	world.Step(cfg.Physics.Step)
}
