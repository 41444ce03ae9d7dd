package config

import (
	"image/color"
	"math"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer used by the scenes.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Title       string
	Width       int
	Height      int
	WindowScale float64
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity    float64 // vertical component, y points up
	Step       float64 // fixed timestep in seconds
	Iterations int     // solver iterations per step
}

// MaterialConfig holds the surface properties of a shape.
type MaterialConfig struct {
	Elasticity float64
	Friction   float64
}

// PigConfig contains target configuration values
type PigConfig struct {
	Mass     float64
	Radius   float64
	Material MaterialConfig
	Color    color.RGBA
}

// BlockConfig contains box scenery configuration (columns and static blocks)
type BlockConfig struct {
	Mass     float64 // ignored for static blocks
	Width    float64
	Height   float64
	Material MaterialConfig
	Color    color.RGBA
}

// GroundConfig contains the floor segment configuration
type GroundConfig struct {
	Y        float64
	Radius   float64
	Material MaterialConfig
	Color    color.RGBA
}

// CollisionConfig contains the contact impulse policy
type CollisionConfig struct {
	Low      float64 // contacts below this are ignored
	High     float64 // contacts above this destroy destructibles
	PigAward int
}

// BoundsConfig contains the out-of-play limits
type BoundsConfig struct {
	MinY float64
	MinX float64
	MaxX float64
}

// SpaceConfig sizes the resolv space that mirrors the simulation. It covers
// the out-of-bounds limits plus Padding on every side.
type SpaceConfig struct {
	CellSize int
	Padding  float64
}

// AimConfig contains slingshot configuration
type AimConfig struct {
	Origin        [2]float64
	LongRange     float64 // drag distance above which the boost bird is picked
	MidRange      float64 // drag distance above which the split bird is picked
	BandColor     color.RGBA
	BandWidth     float32
	SlingshotSize float64
}

// PreviewConfig contains trajectory preview configuration
type PreviewConfig struct {
	Steps        int
	Dt           float64
	GroundCutoff float64
	MaxDotRadius float32 // radius of the first dot
	MinDotRadius float32
	ShrinkEvery  int // dots per pixel of shrink
	DotColor     color.RGBA
}

// AbilityConfig contains shared ability settings
type AbilityConfig struct {
	MinSpeed float64 // below this speed an ability does nothing
}

// LevelConfig describes one entry of the level progression
type LevelConfig struct {
	Threshold int
	Layout    string // path inside the embedded levels FS
}

// OptionListConfig lays out a vertical list of selectable labels
type OptionListConfig struct {
	Normal     color.RGBA
	Selected   color.RGBA
	ItemHeight float64
	ItemGap    float64
}

// PauseConfig contains pause overlay configuration
type PauseConfig struct {
	OverlayColor color.RGBA
	List         OptionListConfig
	Options      []string
	Hint         string
}

// MenuConfig contains title menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TitleY          float64
	StartY          float64
	List            OptionListConfig
	Options         []string
	Hint            string
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	Margin    int
	Spacing   int
	FontSize  float64
	TextColor color.RGBA
}

// BannerConfig contains the level banner animation values
type BannerConfig struct {
	FadeIn   float32 // seconds
	Hold     float32
	FadeOut  float32
	Color    color.RGBA
	Y        float64
	Template string
}

// EffectsConfig contains hit feedback values
type EffectsConfig struct {
	FlashFrames       int
	FlashColor        [3]float32
	DebrisFrames      int
	DebrisCount       int
	DebrisSpeed       float64
	ShakeIntensity    float64
	ShakeDuration     int
	SquashScale       float64
	SquashDuration    float32 // seconds to settle back to 1
	BackgroundColor   color.RGBA
	SlingshotColor    color.RGBA
	DebugOutlineColor color.RGBA
	DeadZoneColor     color.RGBA
}

// DebugConfig contains developer toggles
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to game
	Overlay  bool // Draw resolv mirrors and dead zones
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Pig PigConfig
var Column BlockConfig
var Static BlockConfig
var Ground GroundConfig
var Collision CollisionConfig
var Bounds BoundsConfig
var Space SpaceConfig
var Aim AimConfig
var Preview PreviewConfig
var Ability AbilityConfig
var Levels []LevelConfig
var Pause PauseConfig
var Menu MenuConfig
var HUD HUDConfig
var Banner BannerConfig
var Effects EffectsConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 220, B: 40, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	Green        = color.RGBA{R: 110, G: 200, B: 60, A: 255}
	Brown        = color.RGBA{R: 140, G: 90, B: 50, A: 255}
	Grey         = color.RGBA{R: 110, G: 110, B: 120, A: 255}
	Blue         = color.RGBA{R: 60, G: 140, B: 255, A: 255}
	SkyBlue      = color.RGBA{R: 150, G: 205, B: 240, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Title:       "Slingshot",
		Width:       1800,
		Height:      800,
		WindowScale: 0.75,
	}

	Physics = PhysicsConfig{
		Gravity:    -900,
		Step:       1.0 / 60.0,
		Iterations: 10,
	}

	initBirds()

	Pig = PigConfig{
		Mass:     2,
		Radius:   12,
		Material: MaterialConfig{Elasticity: 0.8, Friction: 0.4},
		Color:    Green,
	}

	Column = BlockConfig{
		Mass:     2,
		Width:    20,
		Height:   70,
		Material: MaterialConfig{Elasticity: 0.8, Friction: 1},
		Color:    Brown,
	}

	Static = BlockConfig{
		Width:    120,
		Height:   30,
		Material: MaterialConfig{Elasticity: 0.8, Friction: 1},
		Color:    Grey,
	}

	Ground = GroundConfig{
		Y:        15,
		Radius:   0,
		Material: MaterialConfig{Elasticity: 0.8, Friction: 10},
		Color:    color.RGBA{R: 90, G: 160, B: 70, A: 255},
	}

	Collision = CollisionConfig{
		Low:      100,
		High:     1200,
		PigAward: 100,
	}

	Bounds = BoundsConfig{
		MinY: -200,
		MinX: -500,
		MaxX: float64(C.Width) + 500,
	}

	Space = SpaceConfig{
		CellSize: 20,
		Padding:  100,
	}

	Aim = AimConfig{
		Origin:        [2]float64{180, 160},
		LongRange:     200,
		MidRange:      100,
		BandColor:     color.RGBA{R: 90, G: 50, B: 20, A: 255},
		BandWidth:     4,
		SlingshotSize: 60,
	}

	Preview = PreviewConfig{
		Steps:        80,
		Dt:           0.04,
		GroundCutoff: 20,
		MaxDotRadius: 6,
		MinDotRadius: 2,
		ShrinkEvery:  10,
		DotColor:     color.RGBA{R: 178, G: 190, B: 181, A: 255},
	}

	Ability = AbilityConfig{
		MinSpeed: 1e-3,
	}

	Levels = []LevelConfig{
		{Threshold: 0, Layout: "levels/level0.tmx"},
		{Threshold: 100, Layout: "levels/level1.tmx"},
	}

	optionList := OptionListConfig{
		Normal:     White,
		Selected:   BrightOrange,
		ItemHeight: 40,
		ItemGap:    16,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		List:         optionList,
		Options:      []string{"Resume", "Restart", "Exit"},
		Hint:         "Arrows: Navigate   Enter: Select   Esc: Resume   F5: Restart",
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:      Orange,
		TitleY:          260,
		StartY:          380,
		List:            optionList,
		Options:         []string{"Play", "Exit"},
		Hint:            "Arrows: Navigate   Enter: Select",
	}

	HUD = HUDConfig{
		Margin:    16,
		Spacing:   6,
		FontSize:  22,
		TextColor: White,
	}

	Banner = BannerConfig{
		FadeIn:   0.4,
		Hold:     1.2,
		FadeOut:  0.6,
		Color:    Yellow,
		Y:        200,
		Template: "Level %d",
	}

	Effects = EffectsConfig{
		FlashFrames:       8,
		FlashColor:        [3]float32{1, 0.45, 0.45},
		DebrisFrames:      30,
		DebrisCount:       8,
		DebrisSpeed:       3,
		ShakeIntensity:    6,
		ShakeDuration:     10,
		SquashScale:       1.35,
		SquashDuration:    0.25,
		BackgroundColor:   SkyBlue,
		SlingshotColor:    color.RGBA{R: 120, G: 70, B: 30, A: 255},
		DebugOutlineColor: color.RGBA{R: 0, G: 255, B: 255, A: 255},
		DeadZoneColor:     color.RGBA{R: 255, G: 0, B: 0, A: 255},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
		Overlay:  false,
	}
}

// Deg converts degrees to radians.
func Deg(d float64) float64 {
	return d * math.Pi / 180
}
