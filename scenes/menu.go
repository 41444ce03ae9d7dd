package scenes

import (
	"sync"

	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger is implemented by the game to swap the running scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene is the title screen: Play starts a SlingshotScene.
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	if ms.ecs != nil {
		ms.ecs.Draw(screen)
	}
}

func (ms *MenuScene) configure() {
	play := func() interface{} { return NewSlingshotScene(ms.sceneChanger) }

	ms.ecs = ecs.NewECS(donburi.NewWorld())
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, play))
	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
}
