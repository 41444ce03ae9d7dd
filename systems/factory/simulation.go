package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSimulation registers the physics world every body of the scene is
// created in.
func CreateSimulation(ecs *ecs.ECS, world physics.World) *donburi.Entry {
	sim := archetypes.Simulation.Spawn(ecs)
	components.Simulation.SetValue(sim, components.SimulationData{World: world})
	return sim
}

// GetWorld returns the scene's physics world, or nil before CreateSimulation.
func GetWorld(ecs *ecs.ECS) physics.World {
	if entry, ok := components.Simulation.First(ecs.World); ok {
		return components.Simulation.Get(entry).World
	}
	return nil
}

func material(m cfg.MaterialConfig) physics.Material {
	return physics.Material{Elasticity: m.Elasticity, Friction: m.Friction}
}
