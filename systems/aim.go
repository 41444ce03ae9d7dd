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

// SlingshotOrigin is where every aim gesture starts and every bird spawns.
func SlingshotOrigin() gamemath.Point2D {
	return gamemath.Point2D{X: cfg.Aim.Origin[0], Y: cfg.Aim.Origin[1]}
}

// UpdateAim consumes the queued input events and refreshes the preview.
func UpdateAim(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	aim := GetOrCreateAim(ecs)

	for _, ev := range input.Events {
		handleAimEvent(ecs, aim, ev)
	}
	input.Events = input.Events[:0]

	updatePreview(ecs, aim)
}

func handleAimEvent(ecs *ecs.ECS, aim *components.AimData, ev components.InputEvent) {
	switch ev.Kind {
	case components.PointerDown:
		if aim.Active {
			return
		}
		// A press while birds fly is spent on the first ability that fires
		if activateFlyingAbility(ecs) {
			return
		}
		aim.Active = true
		aim.Start = SlingshotOrigin()
		aim.End = ev.Pos
	case components.PointerDrag:
		if aim.Active {
			aim.End = ev.Pos
		}
	case components.PointerUp:
		if !aim.Active {
			return
		}
		aim.End = ev.Pos
		releaseAim(ecs, aim)
	case components.KeyForce:
		if !ev.Bird.Valid() {
			return
		}
		kind := ev.Bird
		aim.Forced = &kind
		log.Debug("bird selection forced", "kind", kind)
	case components.KeyClear:
		aim.Forced = nil
	}
}

// activateFlyingAbility tries each launched bird in turn and stops at the
// first one whose ability fires.
func activateFlyingAbility(ecs *ecs.ECS) bool {
	var birds []*donburi.Entry
	tags.Bird.Each(ecs.World, func(e *donburi.Entry) {
		if components.Bird.Get(e).Launched {
			birds = append(birds, e)
		}
	})

	for _, bird := range birds {
		if factory.TryActivateAbility(ecs, bird).Activated {
			return true
		}
	}
	return false
}

func releaseAim(ecs *ecs.ECS, aim *components.AimData) {
	kind := aim.Choice()
	iv := gamemath.ImpulseVectorBetween(aim.Start, aim.End)
	if bird := factory.CreateBird(ecs, kind, aim.Start, iv); bird != nil {
		log.Info("bird spawned", "kind", kind, "distance", iv.Impulse)
	}

	aim.Active = false
	aim.Preview = aim.Preview[:0]
}

// updatePreview predicts the flight under the world's vertical gravity.
func updatePreview(ecs *ecs.ECS, aim *components.AimData) {
	world := factory.GetWorld(ecs)
	if !aim.Active || world == nil {
		aim.Preview = aim.Preview[:0]
		return
	}
	iv := gamemath.ImpulseVectorBetween(aim.Start, aim.End)
	params := factory.LaunchParamsFor(aim.Choice())
	aim.Preview = gamemath.CollectTrajectory(aim.Preview, gamemath.PredictTrajectory(
		aim.Start, iv, params, world.Gravity().Y,
		gamemath.TrajectoryOptions{
			Steps:        cfg.Preview.Steps,
			Dt:           cfg.Preview.Dt,
			GroundCutoff: cfg.Preview.GroundCutoff,
		},
	))
}

// GetOrCreateAim returns the singleton aim state.
func GetOrCreateAim(ecs *ecs.ECS) *components.AimData {
	entry, ok := components.Aim.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Aim))
	}
	return components.Aim.Get(entry)
}
