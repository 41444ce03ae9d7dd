package assets

import (
	"embed"
	"fmt"
	"image/color"
	"io/fs"

	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelFS exposes the embedded level files.
func LevelFS() fs.FS {
	return assetFS
}

// LoadLayouts parses the layout of every configured level, in order.
func LoadLayouts() ([]*leveldata.Layout, error) {
	paths := make([]string, len(cfg.Levels))
	for i, l := range cfg.Levels {
		paths[i] = l.Layout
	}
	return leveldata.LoadLayouts(assetFS, paths)
}

// MustLoadLayouts is LoadLayouts for startup, where a missing level is fatal.
func MustLoadLayouts() []*leveldata.Layout {
	layouts, err := LoadLayouts()
	if err != nil {
		panic(fmt.Sprintf("Failed to load level layouts: %v", err))
	}
	return layouts
}

// SpriteShape selects how a generated sprite is drawn.
type SpriteShape int

const (
	ShapeCircle SpriteShape = iota
	ShapeBox
)

type spriteKey struct {
	shape SpriteShape
	w, h  int
	clr   color.RGBA
}

var spriteCache = make(map[spriteKey]*ebiten.Image)

// SpriteImage returns a cached flat-colour image for a body of the given
// size. Circles get a darker rim and a spoke so rotation is visible.
func SpriteImage(shape SpriteShape, w, h float64, clr color.RGBA) *ebiten.Image {
	key := spriteKey{shape: shape, w: int(w + 0.5), h: int(h + 0.5), clr: clr}
	if img, ok := spriteCache[key]; ok {
		return img
	}
	if key.w < 1 {
		key.w = 1
	}
	if key.h < 1 {
		key.h = 1
	}

	img := ebiten.NewImage(key.w, key.h)
	rim := darken(clr, 0.6)
	switch shape {
	case ShapeCircle:
		r := float32(key.w) / 2
		vector.FillCircle(img, r, r, r, rim, true)
		vector.FillCircle(img, r, r, r-2, clr, true)
		vector.StrokeLine(img, r, r, float32(key.w)-2, r, 2, rim, true)
	default:
		vector.FillRect(img, 0, 0, float32(key.w), float32(key.h), rim, false)
		vector.FillRect(img, 2, 2, float32(key.w)-4, float32(key.h)-4, clr, false)
	}

	spriteCache[key] = img
	return img
}

func darken(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
