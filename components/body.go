package components

import (
	"github.com/automoto/slingshot/physics"
	"github.com/yohamta/donburi"
)

// BodyData is the entity's exclusive handle on its physics body.
type BodyData struct {
	*physics.Binding
}

var Body = donburi.NewComponentType[BodyData]()

// SimulationData holds the physics world shared by every body in a scene.
type SimulationData struct {
	World physics.World
}

var Simulation = donburi.NewComponentType[SimulationData]()
