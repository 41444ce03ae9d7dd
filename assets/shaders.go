package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// TintShader pulls a sprite toward a flat colour for hit flashes
	TintShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	if TintShader != nil {
		return nil
	}

	tintSrc, err := shaderFS.ReadFile("shaders/tint.kage")
	if err != nil {
		return fmt.Errorf("read tint shader: %w", err)
	}
	TintShader, err = ebiten.NewShader(tintSrc)
	if err != nil {
		return fmt.Errorf("compile tint shader: %w", err)
	}

	return nil
}
