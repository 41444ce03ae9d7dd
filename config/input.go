package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionSelectRed
	ActionSelectBlue
	ActionSelectYellow
	ActionClearSelection
	ActionPause
	ActionRestart
	ActionToggleDebug
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings    map[ActionID]InputBinding
	AimButton   ebiten.MouseButton
	ForcedBirds map[ActionID]BirdKind
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AimButton: ebiten.MouseButtonLeft,
		ForcedBirds: map[ActionID]BirdKind{
			ActionSelectRed:    BirdRed,
			ActionSelectBlue:   BirdBlue,
			ActionSelectYellow: BirdYellow,
		},
		Bindings: map[ActionID]InputBinding{
			ActionSelectRed: {
				Keys: []ebiten.Key{ebiten.KeyR, ebiten.KeyDigit1},
			},
			ActionSelectBlue: {
				Keys: []ebiten.Key{ebiten.KeyB, ebiten.KeyDigit2},
			},
			ActionSelectYellow: {
				Keys: []ebiten.Key{ebiten.KeyY, ebiten.KeyDigit3},
			},
			ActionClearSelection: {
				Keys: []ebiten.Key{ebiten.KeySpace},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionRestart: {
				Keys: []ebiten.Key{ebiten.KeyF5},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
			ActionMenuUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				// D-pad Up (analog stick handled separately)
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMenuDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				// D-pad Down (analog stick handled separately)
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
		},
	}
}
