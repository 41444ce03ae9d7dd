package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// ShowBanner starts the "Level N" fade for the given level index.
func ShowBanner(ecs *ecs.ECS, index int) {
	banner := getOrCreateBanner(ecs)
	banner.Text = fmt.Sprintf(cfg.Banner.Template, index)
	banner.Sequence = gween.NewSequence(
		gween.New(0, 1, cfg.Banner.FadeIn, ease.OutQuad),
		gween.New(1, 1, cfg.Banner.Hold, ease.Linear),
		gween.New(1, 0, cfg.Banner.FadeOut, ease.InQuad),
	)
	banner.Alpha = 0
	banner.Done = false
}

// UpdateBanner advances the banner fade.
func UpdateBanner(ecs *ecs.ECS) {
	banner := getOrCreateBanner(ecs)
	if banner.Sequence == nil || banner.Done {
		return
	}
	alpha, _, done := banner.Sequence.Update(float32(cfg.Physics.Step))
	banner.Alpha = alpha
	if done {
		banner.Alpha = 0
		banner.Done = true
	}
}

// DrawBanner renders the level title centred near the top of the screen.
func DrawBanner(ecs *ecs.ECS, screen *ebiten.Image) {
	banner := getOrCreateBanner(ecs)
	if banner.Sequence == nil || banner.Done || banner.Alpha <= 0 {
		return
	}

	face := fonts.Title.Get()
	// Approximate width for the title face
	x := (screen.Bounds().Dx() - len(banner.Text)*28) / 2

	text.Draw(screen, banner.Text, face, x, int(cfg.Banner.Y), fade(cfg.Banner.Color, banner.Alpha))
}

// fade scales a premultiplied colour by alpha.
func fade(c color.RGBA, alpha float32) color.RGBA {
	a := min(max(alpha, 0), 1)
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}

func getOrCreateBanner(ecs *ecs.ECS) *components.BannerData {
	entry, ok := components.Banner.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Banner))
	}
	return components.Banner.Get(entry)
}
