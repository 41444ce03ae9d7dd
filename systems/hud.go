package systems

import (
	"fmt"

	"github.com/yohamta/donburi/ecs"
)

// HUDState is the text shown in the corner of the slingshot scene.
type HUDState struct {
	Score     string
	Level     string
	Selection string
	Best      string
}

// HUD formats the current score, level, bird selection and best score.
func HUD(ecs *ecs.ECS) HUDState {
	index := 0
	if level := getLevel(ecs); level != nil {
		index = level.Progression.CurrentIndex()
	}
	return HUDState{
		Score:     fmt.Sprintf("Score: %d", Score(ecs)),
		Level:     fmt.Sprintf("Level: %d", index),
		Selection: "Bird select: " + GetOrCreateAim(ecs).SelectionLabel(),
		Best:      fmt.Sprintf("Best: %d", GetOrCreateRecord(ecs).Best),
	}
}
