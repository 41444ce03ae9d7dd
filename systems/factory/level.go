package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/automoto/slingshot/shared/progression"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds the level progression from cfg.Levels. Entering level i
// spawns layouts[i]; a missing layout enters the level without spawning
// anything. The progression is not started.
func CreateLevel(w *ecs.ECS, layouts []*leveldata.Layout) *donburi.Entry {
	level := archetypes.Level.Spawn(w)

	prog := progression.New[*ecs.ECS]()
	for i, lc := range cfg.Levels {
		var layout *leveldata.Layout
		if i < len(layouts) {
			layout = layouts[i]
		}
		prog.AddLevel(lc.Threshold, func(e *ecs.ECS, index int) {
			if layout != nil {
				ApplyLayout(e, layout)
			}
			components.Level.Get(level).Entered = true
			log.Info("level started", "level", index, "layout", lc.Layout)
		})
	}

	components.Level.SetValue(level, components.LevelData{Progression: prog})
	return level
}

// ApplyLayout spawns everything a layout describes.
func ApplyLayout(ecs *ecs.ECS, layout *leveldata.Layout) {
	for _, g := range layout.Ground {
		CreateGround(ecs, point(g.A), point(g.B), g.Friction)
	}
	for _, s := range layout.Statics {
		CreateStatic(ecs, gamemath.Point2D{X: s.X, Y: s.Y}, s.W, s.H)
	}
	for _, c := range layout.Columns {
		CreateColumn(ecs, point(c))
	}
	for _, p := range layout.Pigs {
		CreatePig(ecs, point(p))
	}
}

func point(p leveldata.Point) gamemath.Point2D {
	return gamemath.Point2D{X: p.X, Y: p.Y}
}
