package systems

import (
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input, updates the action buffers and queues this
// frame's aim events. Must run BEFORE UpdateAim in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	// Poll all actions - only set Pressed state
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	queueSelectionEvents(input)

	sx, sy := ebiten.CursorPosition()
	held := ebiten.IsMouseButtonPressed(cfg.Input.AimButton)
	queuePointerEvents(input, held, ScreenToWorld(float64(sx), float64(sy)))
}

// queueSelectionEvents turns bird selection key presses into events, in
// action order so simultaneous presses resolve the same way every time.
func queueSelectionEvents(input *components.InputData) {
	for id := range cfg.ActionCount {
		kind, ok := cfg.Input.ForcedBirds[id]
		if !ok || !GetAction(input, id).JustPressed {
			continue
		}
		input.Events = append(input.Events, components.InputEvent{Kind: components.KeyForce, Bird: kind})
	}
	if GetAction(input, cfg.ActionClearSelection).JustPressed {
		input.Events = append(input.Events, components.InputEvent{Kind: components.KeyClear})
	}
}

// queuePointerEvents compares the pointer against the previous frame and
// queues press, drag and release events.
func queuePointerEvents(input *components.InputData, held bool, pos gamemath.Point2D) {
	switch {
	case held && !input.PointerHeld:
		input.Events = append(input.Events, components.InputEvent{Kind: components.PointerDown, Pos: pos})
	case held && pos != input.Pointer:
		input.Events = append(input.Events, components.InputEvent{Kind: components.PointerDrag, Pos: pos})
	case !held && input.PointerHeld:
		input.Events = append(input.Events, components.InputEvent{Kind: components.PointerUp, Pos: pos})
	}
	input.PointerHeld = held
	input.Pointer = pos
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// PushInputEvent queues an event as if it had been polled this frame.
func PushInputEvent(ecs *ecs.ECS, ev components.InputEvent) {
	input := getOrCreateInput(ecs)
	input.Events = append(input.Events, ev)
}
