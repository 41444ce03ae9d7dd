package components

import (
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputEventKind identifies an aim or selection event.
type InputEventKind int

const (
	PointerDown InputEventKind = iota
	PointerDrag
	PointerUp
	KeyForce
	KeyClear
)

// InputEvent is one pointer or selection event. Pos is in world
// coordinates; Bird is only meaningful for KeyForce.
type InputEvent struct {
	Kind InputEventKind
	Pos  gamemath.Point2D
	Bird cfg.BirdKind
}

// InputData stores the current and previous frame's pressed state for all
// actions, plus the aim events produced this frame.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state

	Events []InputEvent

	// Pointer tracking between frames
	PointerHeld bool
	Pointer     gamemath.Point2D
}

var Input = donburi.NewComponentType[InputData]()
