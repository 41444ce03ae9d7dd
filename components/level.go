package components

import (
	"github.com/automoto/slingshot/shared/progression"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelData tracks the level sequence and the running score.
type LevelData struct {
	Progression *progression.Progression[*ecs.ECS]
	Score       int

	// Set when a level starts, cleared by whoever shows the banner.
	Entered bool
}

var Level = donburi.NewComponentType[LevelData]()

// RecordData holds the best score seen across sessions.
type RecordData struct {
	Best  int
	Dirty bool // Best changed since the last save
}

var Record = donburi.NewComponentType[RecordData]()
