package factory

import (
	"image/color"
	"math"

	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// SpawnDebris scatters a ring of particles from pos. They are not simulated
// and disappear after Effects.DebrisFrames.
func SpawnDebris(ecs *ecs.ECS, pos gamemath.Point2D, clr color.RGBA) {
	n := cfg.Effects.DebrisCount
	frames := cfg.Effects.DebrisFrames
	for i := range n {
		angle := 2 * math.Pi * float64(i) / float64(n)
		// Vary the speed a little so the ring breaks up
		speed := cfg.Effects.DebrisSpeed * (0.6 + 0.2*float64(i%3))

		entry := archetypes.Debris.Spawn(ecs)
		components.Debris.SetValue(entry, components.DebrisData{
			Position: pos,
			Velocity: gamemath.FromPolar(speed, angle),
			Size:     3 + float64(i%2),
			Life:     frames,
			Color:    clr,
		})
		components.AutoDestroy.SetValue(entry, components.AutoDestroyData{FramesRemaining: frames})
	}
}
