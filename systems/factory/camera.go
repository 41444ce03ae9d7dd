package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}
