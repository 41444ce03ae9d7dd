// Package physics wraps the rigid-body solver behind a small handle-based
// contract so gameplay code never touches the engine directly.
package physics

import "github.com/automoto/slingshot/shared/gamemath"

//go:generate go tool mockgen -destination=./mocks/world_mock.go -package=mocks . World

// BodyHandle identifies a body inside a World. Zero is never a valid handle.
type BodyHandle uint32

// ShapeHandle identifies a collision shape inside a World. Zero is never a
// valid handle.
type ShapeHandle uint32

// Material holds surface properties applied to a shape.
type Material struct {
	Elasticity float64
	Friction   float64
	Layer      int
}

// Contact is one resolved collision reported after a step.
type Contact struct {
	Shapes  [2]ShapeHandle
	Impulse float64 // magnitude of the total impulse exchanged
}

// Involves reports whether s took part in the contact.
func (c Contact) Involves(s ShapeHandle) bool {
	return c.Shapes[0] == s || c.Shapes[1] == s
}

// World is the physics collaborator. Positions and vectors are in world
// pixels with y pointing up.
type World interface {
	CreateDynamicBody(mass, moment float64, pos gamemath.Point2D) BodyHandle
	CreateStaticBody(pos gamemath.Point2D) BodyHandle
	AttachCircle(body BodyHandle, radius float64, m Material) ShapeHandle
	AttachBox(body BodyHandle, w, h float64, m Material) ShapeHandle
	AttachSegment(body BodyHandle, a, b gamemath.Point2D, radius float64, m Material) ShapeHandle

	ApplyImpulse(body BodyHandle, impulse gamemath.Point2D)
	SetVelocity(body BodyHandle, v gamemath.Point2D)
	Velocity(body BodyHandle) gamemath.Point2D
	Pose(body BodyHandle) (gamemath.Point2D, float64)

	// RemoveBody removes the body and every shape attached to it. Unknown or
	// already removed handles are ignored.
	RemoveBody(body BodyHandle)

	Step(dt float64)
	Gravity() gamemath.Point2D

	// Contacts returns the contacts resolved since the previous call and
	// clears the queue.
	Contacts() []Contact
}

// MomentForCircle returns the moment of inertia of a solid disc.
func MomentForCircle(mass, radius float64) float64 {
	return mass * radius * radius / 2
}

// MomentForBox returns the moment of inertia of a solid w x h box.
func MomentForBox(mass, w, h float64) float64 {
	return mass * (w*w + h*h) / 12
}
