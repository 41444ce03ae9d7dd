package scenes

import (
	"sync"

	"github.com/automoto/slingshot/assets"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/systems"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/automoto/slingshot/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SlingshotScene runs the game: aiming, the physics world and the level
// sequence.
type SlingshotScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	hud          *ui.HUDUI
	once         sync.Once
}

// NewSlingshotScene creates a new slingshot scene starting at the first level
func NewSlingshotScene(sc SceneChanger) *SlingshotScene {
	return &SlingshotScene{sceneChanger: sc}
}

func (ss *SlingshotScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()

	if systems.GetOrCreatePause(ss.ecs).RestartRequested {
		log.Info("restarting")
		systems.FlushRecord(ss.ecs)
		ss.sceneChanger.ChangeScene(NewSlingshotScene(ss.sceneChanger))
	}
}

func (ss *SlingshotScene) Draw(screen *ebiten.Image) {
	if ss.ecs != nil {
		ss.ecs.Draw(screen)
	}
}

func (ss *SlingshotScene) configure() {
	hud, err := ui.NewHUDUI()
	if err != nil {
		panic("failed to build HUD: " + err.Error())
	}
	ss.hud = hud

	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	// Game systems wrapped with pause checks. Contacts are resolved
	// before the bounds sweep.
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateAim))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateBounds))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateLevel))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateBanner))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	// Systems that run even when paused
	ecs.AddSystem(ss.updateHUD)
	ecs.AddSystem(systems.UpdatePersistence)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawGround)
	ecs.AddRenderer(cfg.Default, systems.DrawSlingshot)
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawPreview)
	ecs.AddRenderer(cfg.Default, systems.DrawDebris)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, ss.drawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawBanner)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ss.ecs = ecs

	// The space comes first so every body created below gets a mirror.
	factory.CreateDefaultSpace(ss.ecs)
	factory.CreateSimulation(ss.ecs, physics.NewChipmunk(
		gamemath.Point2D{Y: cfg.Physics.Gravity},
		cfg.Physics.Iterations,
	))
	factory.CreateCamera(ss.ecs)
	factory.CreateBoundsDeadZones(ss.ecs)

	factory.CreateLevel(ss.ecs, assets.MustLoadLayouts())
	systems.StartLevels(ss.ecs)
}

func (ss *SlingshotScene) updateHUD(e *ecs.ECS) {
	ss.hud.Refresh(systems.HUD(e))
	ss.hud.Update()
}

func (ss *SlingshotScene) drawHUD(_ *ecs.ECS, screen *ebiten.Image) {
	ss.hud.Draw(screen)
}
