package main

import (
	"flag"
	"image"

	"github.com/automoto/slingshot/assets"
	"github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/fonts"
	"github.com/automoto/slingshot/scenes"
	"github.com/automoto/slingshot/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewSlingshotScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	debug := flag.Bool("debug", false, "verbose logging and the collision overlay")
	skipMenu := flag.Bool("skip-menu", false, "start straight in the first level")
	scale := flag.Float64("scale", config.C.WindowScale, "window scale factor")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
		config.Debug.Overlay = true
	}
	if *skipMenu {
		config.Debug.SkipMenu = true
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal("Failed to load fonts", "err", err)
	}
	if err := assets.LoadShaders(); err != nil {
		log.Fatal("Failed to load shaders", "err", err)
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(int(float64(config.C.Width)**scale), int(float64(config.C.Height)**scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// The game runs without a saved best score when this fails
	_ = systems.InitPersistence()

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
