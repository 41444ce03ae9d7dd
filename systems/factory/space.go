package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// The resolv space runs y-down with its origin at the top-left corner of the
// play area, padded past the out-of-bounds limits.

// SpaceOrigin is the world position of the space's top-left corner.
func SpaceOrigin() gamemath.Point2D {
	return gamemath.Point2D{
		X: cfg.Bounds.MinX - cfg.Space.Padding,
		Y: float64(cfg.C.Height) + cfg.Space.Padding,
	}
}

// SpaceSize returns the space dimensions in pixels.
func SpaceSize() (int, int) {
	w := cfg.Bounds.MaxX - cfg.Bounds.MinX + 2*cfg.Space.Padding
	h := float64(cfg.C.Height) - cfg.Bounds.MinY + 2*cfg.Space.Padding
	return int(w), int(h)
}

// ToSpace returns the top-left corner, in space coordinates, of a w×h box
// centred on the world point p.
func ToSpace(p gamemath.Point2D, w, h float64) (float64, float64) {
	o := SpaceOrigin()
	return p.X - o.X - w/2, o.Y - p.Y - h/2
}

// SpaceToWorld converts a space coordinate to world coordinates.
func SpaceToWorld(x, y float64) gamemath.Point2D {
	o := SpaceOrigin()
	return gamemath.Point2D{X: x + o.X, Y: o.Y - y}
}

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateDefaultSpace creates a space covering the padded play area.
func CreateDefaultSpace(ecs *ecs.ECS) *donburi.Entry {
	w, h := SpaceSize()
	return CreateSpace(ecs, w, h, cfg.Space.CellSize, cfg.Space.CellSize)
}

func spaceOf(ecs *ecs.ECS) *resolv.Space {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		return components.Space.Get(spaceEntry)
	}
	return nil
}

// addMirror gives entry a resolv object for a w×h box centred on center and
// adds it to the space if one exists.
func addMirror(ecs *ecs.ECS, entry *donburi.Entry, center gamemath.Point2D, w, h float64, resolvTags ...string) *resolv.Object {
	x, y := ToSpace(center, w, h)
	obj := resolv.NewObject(x, y, w, h, resolvTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry // Link for O(1) lookup

	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	if space := spaceOf(ecs); space != nil {
		space.Add(obj)
	}
	return obj
}
