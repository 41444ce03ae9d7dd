package systems

import (
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// debrisGravity pulls particles down a little each frame, in pixels/frame².
const debrisGravity = 0.15

// UpdateEffects processes visual effect components (flash, squash, debris, auto-destroy)
func UpdateEffects(ecs *ecs.ECS) {
	updateFlashEffects(ecs)
	updateSquashStretchEffects(ecs)
	updateDebris(ecs)
	updateAutoDestroy(ecs)
}

// updateFlashEffects decrements flash timers
func updateFlashEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

// updateSquashStretchEffects advances the scale tweens and removes finished ones
func updateSquashStretchEffects(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	dt := float32(cfg.Physics.Step)
	components.SquashStretch.Each(ecs.World, func(e *donburi.Entry) {
		ss := components.SquashStretch.Get(e)
		scale, done := ss.Tween.Update(dt)
		ss.Scale = float64(scale)
		if done {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.RemoveComponent(components.SquashStretch)
	}
}

func updateDebris(ecs *ecs.ECS) {
	components.Debris.Each(ecs.World, func(e *donburi.Entry) {
		d := components.Debris.Get(e)
		d.Position.X += d.Velocity.X
		d.Position.Y += d.Velocity.Y
		d.Velocity.Y -= debrisGravity
	})
}

// updateAutoDestroy removes entities whose countdown ran out
func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		if ad.FramesRemaining > 0 {
			ad.FramesRemaining--
			if ad.FramesRemaining <= 0 {
				toDestroy = append(toDestroy, e)
			}
		}
	})

	for _, e := range toDestroy {
		// Remove from the resolv space if it has an object
		if e.HasComponent(components.Object) {
			obj := components.Object.Get(e)
			if obj.Space != nil {
				obj.Space.Remove(obj.Object)
			}
		}
		e.Remove()
	}
}

// TriggerHitFlash tints an entity for a few frames
func TriggerHitFlash(e *donburi.Entry) {
	if !e.Valid() || !e.HasComponent(components.Flash) {
		return
	}
	flash := components.Flash.Get(e)
	flash.Duration = cfg.Effects.FlashFrames
	flash.R = cfg.Effects.FlashColor[0]
	flash.G = cfg.Effects.FlashColor[1]
	flash.B = cfg.Effects.FlashColor[2]
}

// TriggerSquashStretch scales an entity's sprite to scale and eases it back
// to 1
func TriggerSquashStretch(entry *donburi.Entry, scale float64) {
	if !entry.Valid() {
		return
	}
	tween := gween.New(float32(scale), 1, cfg.Effects.SquashDuration, ease.OutElastic)
	if !entry.HasComponent(components.SquashStretch) {
		entry.AddComponent(components.SquashStretch)
	}
	components.SquashStretch.SetValue(entry, components.SquashStretchData{
		Tween: tween,
		Scale: scale,
	})
}

// spriteScale returns the squash factor to draw an entity with
func spriteScale(e *donburi.Entry) float64 {
	if e.HasComponent(components.SquashStretch) {
		return components.SquashStretch.Get(e).Scale
	}
	return 1
}
