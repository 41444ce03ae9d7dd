package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// CreateDeadZone creates an invisible zone in space coordinates. Anything
// whose mirror touches one is about to leave play.
func CreateDeadZone(ecs *ecs.ECS, x, y, w, h float64) *resolv.Object {
	entry := archetypes.DeadZone.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvDeadZone)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	// Add to space if it exists
	if space := spaceOf(ecs); space != nil {
		space.Add(obj)
	}

	return obj
}

// CreateBoundsDeadZones covers the padding beyond the out-of-bounds limits:
// below Bounds.MinY, left of Bounds.MinX and right of Bounds.MaxX.
func CreateBoundsDeadZones(ecs *ecs.ECS) []*resolv.Object {
	w, h := SpaceSize()
	pad := cfg.Space.Padding
	// Bounds.MinY expressed in space coordinates
	floor := SpaceOrigin().Y - cfg.Bounds.MinY

	return []*resolv.Object{
		CreateDeadZone(ecs, 0, floor, float64(w), float64(h)-floor),
		CreateDeadZone(ecs, 0, 0, pad, float64(h)),
		CreateDeadZone(ecs, float64(w)-pad, 0, pad, float64(h)),
	}
}
