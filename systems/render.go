package systems

import (
	"github.com/automoto/slingshot/assets"
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/automoto/slingshot/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}
)

// flashAmount is how far a flashing sprite is pulled toward the tint.
const flashAmount = 0.7

// DrawBackground clears the screen to the sky colour.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Effects.BackgroundColor)
}

// DrawGround fills everything below each ground segment.
func DrawGround(ecs *ecs.ECS, screen *ebiten.Image) {
	height := float32(screen.Bounds().Dy())
	tags.Ground.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		left := factory.SpaceToWorld(obj.X, obj.Y+obj.H/2)
		x, y := WorldToScreen(ecs, left)
		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), height-float32(y), cfg.Ground.Color, false)
	})
}

// DrawSprites draws every body with a sprite, centred on the body and
// rotated with it.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if body.Removed() {
			return
		}
		sprite := components.Sprite.Get(e)
		if sprite.Image == nil {
			sprite.Image = assets.SpriteImage(sprite.Shape, sprite.Width, sprite.Height, sprite.Color)
		}

		pos, rot := body.Pose()
		x, y := WorldToScreen(ecs, pos)
		w, h := sprite.Image.Bounds().Dx(), sprite.Image.Bounds().Dy()

		geoM := ebiten.GeoM{}
		geoM.Translate(-float64(w)/2, -float64(h)/2)
		if s := spriteScale(e); s != 1 {
			geoM.Scale(s, 1/s)
		}
		// Screen y points down, so the world angle turns the other way
		geoM.Rotate(-rot)
		geoM.Translate(x, y)

		if e.HasComponent(components.Flash) && assets.TintShader != nil {
			if flash := components.Flash.Get(e); flash.Duration > 0 {
				shaderOp.GeoM = geoM
				shaderOp.Images[0] = sprite.Image
				shaderOp.Uniforms = map[string]any{
					"Tint":   []float32{flash.R, flash.G, flash.B},
					"Amount": float32(flashAmount),
				}
				screen.DrawRectShader(w, h, assets.TintShader, shaderOp)
				return
			}
		}

		drawOp.GeoM = geoM
		drawOp.ColorScale.Reset()
		screen.DrawImage(sprite.Image, drawOp)
	})
}

// DrawSlingshot draws the post, and while aiming the band and the bird
// that would be fired.
func DrawSlingshot(ecs *ecs.ECS, screen *ebiten.Image) {
	origin := SlingshotOrigin()
	size := cfg.Aim.SlingshotSize

	x, y := WorldToScreen(ecs, origin)
	vector.FillRect(screen, float32(x-4), float32(y), 8, float32(size)*2, cfg.Effects.SlingshotColor, false)
	vector.StrokeLine(screen, float32(x), float32(y), float32(x-size/4), float32(y-size/3), 6, cfg.Effects.SlingshotColor, true)
	vector.StrokeLine(screen, float32(x), float32(y), float32(x+size/4), float32(y-size/3), 6, cfg.Effects.SlingshotColor, true)

	aim := GetOrCreateAim(ecs)
	if !aim.Active {
		return
	}
	ex, ey := WorldToScreen(ecs, aim.End)
	vector.StrokeLine(screen, float32(x), float32(y), float32(ex), float32(ey), cfg.Aim.BandWidth, cfg.Aim.BandColor, true)

	params := cfg.Birds[aim.Choice()]
	vector.FillCircle(screen, float32(ex), float32(ey), float32(params.Radius), params.Color, true)
}

// DrawPreview draws the predicted flight path as dots that shrink with
// distance.
func DrawPreview(ecs *ecs.ECS, screen *ebiten.Image) {
	aim := GetOrCreateAim(ecs)
	if !aim.Active {
		return
	}
	for i, p := range aim.Preview {
		x, y := WorldToScreen(ecs, p)
		vector.FillCircle(screen, float32(x), float32(y), PreviewDotRadius(i), cfg.Preview.DotColor, true)
	}
}

// PreviewDotRadius returns the radius of the i-th preview dot.
func PreviewDotRadius(i int) float32 {
	r := cfg.Preview.MaxDotRadius
	if cfg.Preview.ShrinkEvery > 0 {
		r -= float32(i / cfg.Preview.ShrinkEvery)
	}
	return max(r, cfg.Preview.MinDotRadius)
}

// DrawDebris draws the particles left by destroyed bodies, fading out.
func DrawDebris(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Debris.Each(ecs.World, func(e *donburi.Entry) {
		d := components.Debris.Get(e)
		alpha := float32(1)
		if d.Life > 0 {
			alpha = float32(components.AutoDestroy.Get(e).FramesRemaining) / float32(d.Life)
		}
		x, y := WorldToScreen(ecs, d.Position)
		s := float32(d.Size)
		vector.FillRect(screen, float32(x)-s/2, float32(y)-s/2, s, s, fade(d.Color, alpha), false)
	})
}
