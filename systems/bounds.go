package systems

import (
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/automoto/slingshot/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// OutOfBounds reports whether a position has left play.
func OutOfBounds(p gamemath.Point2D) bool {
	return p.Y < cfg.Bounds.MinY || p.X < cfg.Bounds.MinX || p.X > cfg.Bounds.MaxX
}

// UpdateBounds destroys birds, pigs and passive scenery that left play.
// Nothing is scored.
func UpdateBounds(ecs *ecs.ECS) {
	var gone []*donburi.Entry
	collect := func(e *donburi.Entry) {
		if OutOfBounds(components.Body.Get(e).Position()) {
			gone = append(gone, e)
		}
	}
	tags.Bird.Each(ecs.World, collect)
	tags.Pig.Each(ecs.World, collect)
	tags.Passive.Each(ecs.World, collect)

	for _, e := range gone {
		if factory.Destroy(ecs, e) {
			log.Debug("entity left play", "entity", e.Entity())
		}
	}
}
