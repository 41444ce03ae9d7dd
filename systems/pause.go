package systems

import (
	"os"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles the pause toggle and its menu, plus the restart and
// debug keys. Runs after UpdateInput and before the gated systems. Pointer
// events queued while paused are dropped so they never reach the aim.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionRestart).JustPressed {
		pause.RestartRequested = true
	}
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		debug := GetOrCreateDebug(ecs)
		debug.Overlay = !debug.Overlay
	}
	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		pause.SelectedOption = components.MenuResume
		log.Debug("pause toggled", "paused", pause.IsPaused)
	}
	if !pause.IsPaused {
		return
	}
	input.Events = input.Events[:0]

	pause.SelectedOption = components.PauseMenuOption(
		stepSelection(input, int(pause.SelectedOption), len(cfg.Pause.Options)),
	)
	if !GetAction(input, cfg.ActionMenuSelect).JustPressed {
		return
	}
	switch pause.SelectedOption {
	case components.MenuResume:
		pause.IsPaused = false
	case components.MenuRestart:
		pause.IsPaused = false
		pause.RestartRequested = true
	case components.MenuExit:
		FlushRecord(ecs)
		log.Info("exiting from pause menu")
		os.Exit(0)
	}
}

func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), cfg.Pause.OverlayColor, false)

	style := cfg.Pause.List
	listHeight := float64(len(cfg.Pause.Options)) * (style.ItemHeight + style.ItemGap)
	drawOptions(screen, cfg.Pause.Options, int(pause.SelectedOption), (float64(h)-listHeight)/2, style)
	drawHint(screen, cfg.Pause.Hint, style.Normal)
}

// WithGameplayChecks skips system while the game is paused.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetOrCreatePause(e).IsPaused {
			return
		}
		system(e)
	}
}

func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}

// GetOrCreateDebug returns the singleton Debug component. A new one starts
// from cfg.Debug.Overlay.
func GetOrCreateDebug(ecs *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Debug))
		components.Debug.SetValue(entry, components.DebugData{Overlay: cfg.Debug.Overlay})
	}
	return components.Debug.Get(entry)
}
