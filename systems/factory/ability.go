package factory

import (
	"math"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BoostAbility multiplies the bird's current velocity.
type BoostAbility struct {
	Multiplier float64
}

func (a BoostAbility) Activate(ctx components.AbilityContext) components.ActivationResult {
	v := gamemath.Point2D{X: ctx.Velocity.X * a.Multiplier, Y: ctx.Velocity.Y * a.Multiplier}
	components.Body.Get(ctx.Bird).SetVelocity(v)
	return components.ActivationResult{Activated: true}
}

// SplitAbility replaces the bird with three copies fanned out by HalfAngle
// around its heading. The copies keep the speed and carry no ability.
type SplitAbility struct {
	HalfAngle float64
}

func (a SplitAbility) Activate(ctx components.AbilityContext) components.ActivationResult {
	parent := components.Bird.Get(ctx.Bird)
	speed := gamemath.Speed(ctx.Velocity)
	base := math.Atan2(ctx.Velocity.Y, ctx.Velocity.X)

	angles := [...]float64{base + a.HalfAngle, base, base - a.HalfAngle}
	spawned := make([]*donburi.Entry, 0, len(angles))
	for _, angle := range angles {
		child := spawnBird(ctx.ECS, parent.Kind, parent.Params, ctx.Position, nil)
		if child == nil {
			continue
		}
		data := components.Bird.Get(child)
		data.Launched = true
		data.UsedAbility = true
		components.Body.Get(child).SetVelocity(gamemath.FromPolar(speed, angle))
		spawned = append(spawned, child)
	}

	return components.ActivationResult{Activated: true, Spawned: spawned, Consumed: true}
}

// abilityFor picks the ability a variant's tuning describes.
func abilityFor(p cfg.BirdTypeConfig) components.Ability {
	switch {
	case p.BoostMultiplier > 0:
		return BoostAbility{Multiplier: p.BoostMultiplier}
	case p.SplitHalfAngle > 0:
		return SplitAbility{HalfAngle: p.SplitHalfAngle}
	}
	return nil
}

// TryActivateAbility fires the bird's ability once per flight. Nothing
// changes when the bird is not launched, has already used its ability, has
// none, or is nearly at rest.
func TryActivateAbility(ecs *ecs.ECS, bird *donburi.Entry) components.ActivationResult {
	if bird == nil || !bird.Valid() || !bird.HasComponent(components.Bird) {
		return components.ActivationResult{}
	}
	data := components.Bird.Get(bird)
	if !data.Launched || data.UsedAbility || data.Ability == nil {
		return components.ActivationResult{}
	}

	body := components.Body.Get(bird)
	pos, vel := body.Position(), body.Velocity()
	if gamemath.Speed(vel) < cfg.Ability.MinSpeed {
		return components.ActivationResult{}
	}

	res := data.Ability.Activate(components.AbilityContext{
		ECS:      ecs,
		Bird:     bird,
		Position: pos,
		Velocity: vel,
	})
	if !res.Activated {
		return res
	}

	data.UsedAbility = true
	log.Debug("ability activated", "kind", data.Kind, "spawned", len(res.Spawned))
	if res.Consumed {
		Destroy(ecs, bird)
	}
	return res
}
