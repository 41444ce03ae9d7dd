package systems

import (
	"image/color"
	"os"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/fonts"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// Approximate glyph advances of the Large and Small faces.
const (
	largeAdvance = 15
	smallAdvance = 7
	titleAdvance = 30
)

type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu returns the title menu system. Play switches to the scene
// built by createSlingshotScene.
func NewUpdateMenu(sceneChanger SceneChanger, createSlingshotScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)
		if len(menu.VisibleOptions) == 0 {
			return
		}

		menu.SelectedIndex = stepSelection(input, menu.SelectedIndex, len(menu.VisibleOptions))
		if !GetAction(input, cfg.ActionMenuSelect).JustPressed {
			return
		}
		switch menu.VisibleOptions[menu.SelectedIndex] {
		case components.MainMenuPlay:
			log.Info("starting game")
			sceneChanger.ChangeScene(createSlingshotScene())
		case components.MainMenuExit:
			os.Exit(0)
		}
	}
}

// stepSelection moves a list cursor one entry per up/down press, wrapping at
// both ends.
func stepSelection(input *components.InputData, selected, n int) int {
	if n <= 0 {
		return 0
	}
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		selected--
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		selected++
	}
	return ((selected % n) + n) % n
}

func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	vector.FillRect(screen, 0, 0, float32(w), float32(h), cfg.Menu.BackgroundColor, false)

	title := cfg.C.Title
	text.Draw(screen, title, fonts.Title.Get(), centredX(w, title, titleAdvance), int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	labels := make([]string, len(menu.VisibleOptions))
	for i, option := range menu.VisibleOptions {
		labels[i] = getOptionLabel(option)
	}
	drawOptions(screen, labels, menu.SelectedIndex, cfg.Menu.StartY, cfg.Menu.List)
	drawHint(screen, cfg.Menu.Hint, cfg.Menu.List.Normal)
}

// drawOptions draws labels top-down from startY, centred, highlighting the
// selected one.
func drawOptions(screen *ebiten.Image, labels []string, selected int, startY float64, style cfg.OptionListConfig) {
	w := screen.Bounds().Dx()
	face := fonts.Large.Get()
	for i, label := range labels {
		y := startY + float64(i)*(style.ItemHeight+style.ItemGap) + style.ItemHeight
		clr := style.Normal
		if i == selected {
			clr = style.Selected
		}
		text.Draw(screen, label, face, centredX(w, label, largeAdvance), int(y), clr)
	}
}

func drawHint(screen *ebiten.Image, hint string, clr color.RGBA) {
	b := screen.Bounds()
	text.Draw(screen, hint, fonts.Small.Get(), centredX(b.Dx(), hint, smallAdvance), b.Dy()-12, clr)
}

func centredX(width int, s string, advance int) int {
	return (width - len(s)*advance) / 2
}

func getOptionLabel(option components.MainMenuOption) string {
	if int(option) < len(cfg.Menu.Options) {
		return cfg.Menu.Options[option]
	}
	return ""
}

// GetOrCreateMenu returns the title menu state, offering Play and Exit.
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(entry, components.MenuData{
			VisibleOptions: []components.MainMenuOption{
				components.MainMenuPlay,
				components.MainMenuExit,
			},
		})
	}
	return components.Menu.Get(entry)
}
