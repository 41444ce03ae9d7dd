package components

import (
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AbilityContext is what an ability sees when it fires.
type AbilityContext struct {
	ECS      *ecs.ECS
	Bird     *donburi.Entry
	Position gamemath.Point2D
	Velocity gamemath.Point2D
}

// ActivationResult reports whether an ability fired and which birds it
// created. Consumed asks the caller to destroy the bird once it is marked
// used.
type ActivationResult struct {
	Activated bool
	Spawned   []*donburi.Entry
	Consumed  bool
}

// Ability is a one-shot mid-flight action. Implementations must not touch
// the bird's UsedAbility flag; the caller owns that transition.
type Ability interface {
	Activate(ctx AbilityContext) ActivationResult
}

type BirdData struct {
	Kind   cfg.BirdKind
	Params cfg.BirdTypeConfig // resolved once at spawn

	Launched    bool
	UsedAbility bool
	Ability     Ability // nil when the bird has none
}

var Bird = donburi.NewComponentType[BirdData]()

// TargetData marks an entity that awards points when destroyed.
type TargetData struct {
	Award int
}

var Target = donburi.NewComponentType[TargetData]()
