package systems

import (
	"github.com/automoto/slingshot/components"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// StartLevels enters the first level. It does nothing once started.
func StartLevels(ecs *ecs.ECS) {
	level := getLevel(ecs)
	if level == nil {
		return
	}
	if level.Progression.Start(ecs) {
		log.Info("game started", "levels", len(level.Progression.Levels))
	}
}

// UpdateLevel keeps the progression in step with the score and shows the
// banner when a level has been entered.
func UpdateLevel(ecs *ecs.ECS) {
	level := getLevel(ecs)
	if level == nil {
		return
	}
	checkAdvance(ecs, level)

	if level.Entered {
		level.Entered = false
		ShowBanner(ecs, level.Progression.CurrentIndex())
	}
}

// AddScore adds points and advances the level when the next threshold is
// reached.
func AddScore(ecs *ecs.ECS, points int) {
	level := getLevel(ecs)
	if level == nil {
		return
	}
	level.Score += points
	log.Debug("score", "score", level.Score)
	checkAdvance(ecs, level)
	RecordScore(ecs, level.Score)
}

// Score returns the running score, zero before a level entity exists.
func Score(ecs *ecs.ECS) int {
	if level := getLevel(ecs); level != nil {
		return level.Score
	}
	return 0
}

func checkAdvance(ecs *ecs.ECS, level *components.LevelData) {
	level.Progression.UpdateScore(level.Score)
	if level.Progression.CheckAndAdvance(ecs) {
		log.Info("level advanced", "level", level.Progression.CurrentIndex(), "score", level.Score)
	}
}

func getLevel(ecs *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	level := components.Level.Get(entry)
	if level.Progression == nil {
		return nil
	}
	return level
}
