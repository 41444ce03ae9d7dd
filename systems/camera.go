package systems

import (
	"math"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera recomputes the camera offset. The level fits the screen, so
// only screen shake moves it.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.Offset.X, camera.Offset.Y = 0, 0

	updateScreenShake(cameraEntry, camera)
}

// updateScreenShake applies screen shake offset to camera and advances it
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	// Apply oscillating offset using sine/cosine for smooth shake
	camera.Offset.X += math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.Offset.Y += math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	// Remove component when shake is complete
	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	// Add or update screen shake component
	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
			Elapsed:   0,
		})
	}
}

// ScreenToWorld converts a screen pixel to world coordinates. Screen y
// points down, world y points up.
func ScreenToWorld(sx, sy float64) gamemath.Point2D {
	return gamemath.Point2D{X: sx, Y: float64(cfg.C.Height) - sy}
}

// WorldToScreen converts a world point to screen pixels, including the
// camera offset.
func WorldToScreen(ecs *ecs.ECS, p gamemath.Point2D) (float64, float64) {
	x, y := p.X, float64(cfg.C.Height)-p.Y
	if cameraEntry, ok := components.Camera.First(ecs.World); ok {
		camera := components.Camera.Get(cameraEntry)
		x += camera.Offset.X
		y += camera.Offset.Y
	}
	return x, y
}
