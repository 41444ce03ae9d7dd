package physics

import "github.com/automoto/slingshot/shared/gamemath"

// Binding ties one body and one shape to the entity that owns them. The
// body leaves the world exactly once, however many times Remove is called.
type Binding struct {
	Body  BodyHandle
	Shape ShapeHandle

	world   World
	removed bool
}

// NewBinding wraps an already created body and shape.
func NewBinding(w World, body BodyHandle, shape ShapeHandle) *Binding {
	return &Binding{Body: body, Shape: shape, world: w}
}

// NewCircleBinding creates a dynamic solid disc at pos.
func NewCircleBinding(w World, mass, radius float64, pos gamemath.Point2D, m Material) *Binding {
	body := w.CreateDynamicBody(mass, MomentForCircle(mass, radius), pos)
	shape := w.AttachCircle(body, radius, m)
	return NewBinding(w, body, shape)
}

// NewBoxBinding creates a dynamic box centred on pos.
func NewBoxBinding(w World, mass, width, height float64, pos gamemath.Point2D, m Material) *Binding {
	body := w.CreateDynamicBody(mass, MomentForBox(mass, width, height), pos)
	shape := w.AttachBox(body, width, height, m)
	return NewBinding(w, body, shape)
}

// NewStaticBoxBinding creates an immovable box centred on pos.
func NewStaticBoxBinding(w World, width, height float64, pos gamemath.Point2D, m Material) *Binding {
	body := w.CreateStaticBody(pos)
	shape := w.AttachBox(body, width, height, m)
	return NewBinding(w, body, shape)
}

// NewSegmentBinding creates an immovable segment from a to b.
func NewSegmentBinding(w World, a, b gamemath.Point2D, radius float64, m Material) *Binding {
	body := w.CreateStaticBody(gamemath.Point2D{})
	shape := w.AttachSegment(body, a, b, radius, m)
	return NewBinding(w, body, shape)
}

// Position returns the body's centre.
func (b *Binding) Position() gamemath.Point2D {
	pos, _ := b.Pose()
	return pos
}

// Pose returns the body's position and rotation. A removed binding reports
// the zero pose.
func (b *Binding) Pose() (gamemath.Point2D, float64) {
	if b.removed {
		return gamemath.Point2D{}, 0
	}
	return b.world.Pose(b.Body)
}

func (b *Binding) Velocity() gamemath.Point2D {
	if b.removed {
		return gamemath.Point2D{}
	}
	return b.world.Velocity(b.Body)
}

func (b *Binding) SetVelocity(v gamemath.Point2D) {
	if b.removed {
		return
	}
	b.world.SetVelocity(b.Body, v)
}

func (b *Binding) ApplyImpulse(impulse gamemath.Point2D) {
	if b.removed {
		return
	}
	b.world.ApplyImpulse(b.Body, impulse)
}

// Owns reports whether s is this binding's shape.
func (b *Binding) Owns(s ShapeHandle) bool {
	return !b.removed && b.Shape == s
}

// Remove takes the body out of the world. It returns false when the binding
// was already removed.
func (b *Binding) Remove() bool {
	if b.removed {
		return false
	}
	b.removed = true
	b.world.RemoveBody(b.Body)
	return true
}

func (b *Binding) Removed() bool {
	return b.removed
}
