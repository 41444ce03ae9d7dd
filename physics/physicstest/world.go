// Package physicstest provides an in-memory physics.World for tests. Bodies
// move under gravity with explicit Euler steps and never collide; contacts
// are injected with Emit.
package physicstest

import (
	"github.com/automoto/slingshot/physics"
	"github.com/automoto/slingshot/shared/gamemath"
)

// Body is the fake's view of a body.
type Body struct {
	Mass     float64
	Moment   float64
	Static   bool
	Position gamemath.Point2D
	Angle    float64
	Velocity gamemath.Point2D
	Shapes   []physics.ShapeHandle
}

// Shape records how a shape was attached.
type Shape struct {
	Body     physics.BodyHandle
	Kind     string
	Material physics.Material
}

// World is a deterministic physics.World.
type World struct {
	gravity gamemath.Point2D

	Bodies  map[physics.BodyHandle]*Body
	Shapes  map[physics.ShapeHandle]*Shape
	Removed map[physics.BodyHandle]int // RemoveBody calls per handle

	nextBody  physics.BodyHandle
	nextShape physics.ShapeHandle
	pending   []physics.Contact
	Steps     int
}

var _ physics.World = (*World)(nil)

// New returns an empty world with the given gravity.
func New(gravity gamemath.Point2D) *World {
	return &World{
		gravity: gravity,
		Bodies:  make(map[physics.BodyHandle]*Body),
		Shapes:  make(map[physics.ShapeHandle]*Shape),
		Removed: make(map[physics.BodyHandle]int),
	}
}

func (w *World) CreateDynamicBody(mass, moment float64, pos gamemath.Point2D) physics.BodyHandle {
	w.nextBody++
	w.Bodies[w.nextBody] = &Body{Mass: mass, Moment: moment, Position: pos}
	return w.nextBody
}

func (w *World) CreateStaticBody(pos gamemath.Point2D) physics.BodyHandle {
	w.nextBody++
	w.Bodies[w.nextBody] = &Body{Static: true, Position: pos}
	return w.nextBody
}

func (w *World) attach(body physics.BodyHandle, kind string, m physics.Material) physics.ShapeHandle {
	b, ok := w.Bodies[body]
	if !ok {
		return 0
	}
	w.nextShape++
	w.Shapes[w.nextShape] = &Shape{Body: body, Kind: kind, Material: m}
	b.Shapes = append(b.Shapes, w.nextShape)
	return w.nextShape
}

func (w *World) AttachCircle(body physics.BodyHandle, _ float64, m physics.Material) physics.ShapeHandle {
	return w.attach(body, "circle", m)
}

func (w *World) AttachBox(body physics.BodyHandle, _, _ float64, m physics.Material) physics.ShapeHandle {
	return w.attach(body, "box", m)
}

func (w *World) AttachSegment(body physics.BodyHandle, _, _ gamemath.Point2D, _ float64, m physics.Material) physics.ShapeHandle {
	return w.attach(body, "segment", m)
}

func (w *World) ApplyImpulse(body physics.BodyHandle, impulse gamemath.Point2D) {
	b, ok := w.Bodies[body]
	if !ok || b.Static || b.Mass <= 0 {
		return
	}
	b.Velocity.X += impulse.X / b.Mass
	b.Velocity.Y += impulse.Y / b.Mass
}

func (w *World) SetVelocity(body physics.BodyHandle, v gamemath.Point2D) {
	if b, ok := w.Bodies[body]; ok && !b.Static {
		b.Velocity = v
	}
}

func (w *World) Velocity(body physics.BodyHandle) gamemath.Point2D {
	if b, ok := w.Bodies[body]; ok {
		return b.Velocity
	}
	return gamemath.Point2D{}
}

func (w *World) Pose(body physics.BodyHandle) (gamemath.Point2D, float64) {
	if b, ok := w.Bodies[body]; ok {
		return b.Position, b.Angle
	}
	return gamemath.Point2D{}, 0
}

func (w *World) RemoveBody(body physics.BodyHandle) {
	w.Removed[body]++
	b, ok := w.Bodies[body]
	if !ok {
		return
	}
	for _, s := range b.Shapes {
		delete(w.Shapes, s)
	}
	delete(w.Bodies, body)
}

func (w *World) Step(dt float64) {
	w.Steps++
	for _, b := range w.Bodies {
		if b.Static {
			continue
		}
		b.Velocity.X += w.gravity.X * dt
		b.Velocity.Y += w.gravity.Y * dt
		b.Position.X += b.Velocity.X * dt
		b.Position.Y += b.Velocity.Y * dt
	}
}

func (w *World) Gravity() gamemath.Point2D {
	return w.gravity
}

func (w *World) Contacts() []physics.Contact {
	out := w.pending
	w.pending = nil
	return out
}

// Emit queues a contact for the next Contacts call.
func (w *World) Emit(a, b physics.ShapeHandle, impulse float64) {
	w.pending = append(w.pending, physics.Contact{
		Shapes:  [2]physics.ShapeHandle{a, b},
		Impulse: impulse,
	})
}

// Place moves a body directly.
func (w *World) Place(body physics.BodyHandle, pos gamemath.Point2D) {
	if b, ok := w.Bodies[body]; ok {
		b.Position = pos
	}
}
