package physics

import (
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
)

// Chipmunk is a World backed by a jakecoffman/cp space.
type Chipmunk struct {
	space *cp.Space

	bodies map[BodyHandle]*cp.Body
	shapes map[ShapeHandle]*cp.Shape

	nextBody  BodyHandle
	nextShape ShapeHandle

	// Layers that already have a post-solve handler.
	layers map[cp.CollisionType]struct{}

	contacts []Contact
	seen     map[*cp.Arbiter]struct{}
}

// NewChipmunk creates an empty space with the given gravity.
func NewChipmunk(gravity gamemath.Point2D, iterations int) *Chipmunk {
	space := cp.NewSpace()
	space.SetGravity(toVector(gravity))
	if iterations > 0 {
		space.Iterations = uint(iterations)
	}
	return &Chipmunk{
		space:  space,
		bodies: make(map[BodyHandle]*cp.Body),
		shapes: make(map[ShapeHandle]*cp.Shape),
		layers: make(map[cp.CollisionType]struct{}),
		seen:   make(map[*cp.Arbiter]struct{}),
	}
}

func (c *Chipmunk) CreateDynamicBody(mass, moment float64, pos gamemath.Point2D) BodyHandle {
	body := cp.NewBody(mass, moment)
	body.SetPosition(toVector(pos))
	return c.addBody(body)
}

func (c *Chipmunk) CreateStaticBody(pos gamemath.Point2D) BodyHandle {
	body := cp.NewStaticBody()
	body.SetPosition(toVector(pos))
	return c.addBody(body)
}

func (c *Chipmunk) addBody(body *cp.Body) BodyHandle {
	c.space.AddBody(body)
	c.nextBody++
	c.bodies[c.nextBody] = body
	return c.nextBody
}

func (c *Chipmunk) AttachCircle(body BodyHandle, radius float64, m Material) ShapeHandle {
	b, ok := c.bodies[body]
	if !ok {
		return 0
	}
	return c.addShape(cp.NewCircle(b, radius, cp.Vector{}), m)
}

func (c *Chipmunk) AttachBox(body BodyHandle, w, h float64, m Material) ShapeHandle {
	b, ok := c.bodies[body]
	if !ok {
		return 0
	}
	return c.addShape(cp.NewBox(b, w, h, 0), m)
}

func (c *Chipmunk) AttachSegment(body BodyHandle, a, bEnd gamemath.Point2D, radius float64, m Material) ShapeHandle {
	b, ok := c.bodies[body]
	if !ok {
		return 0
	}
	return c.addShape(cp.NewSegment(b, toVector(a), toVector(bEnd), radius), m)
}

func (c *Chipmunk) addShape(shape *cp.Shape, m Material) ShapeHandle {
	shape.SetElasticity(m.Elasticity)
	shape.SetFriction(m.Friction)
	layer := cp.CollisionType(m.Layer)
	shape.SetCollisionType(layer)
	c.watchLayer(layer)

	c.nextShape++
	shape.UserData = c.nextShape
	c.space.AddShape(shape)
	c.shapes[c.nextShape] = shape
	return c.nextShape
}

// watchLayer installs the post-solve reporter for a collision type. When both
// shapes of a pair are watched the callback fires twice for one arbiter, so
// reports are deduplicated per step.
func (c *Chipmunk) watchLayer(layer cp.CollisionType) {
	if _, ok := c.layers[layer]; ok {
		return
	}
	c.layers[layer] = struct{}{}
	handler := c.space.NewWildcardCollisionHandler(layer)
	handler.PostSolveFunc = c.postSolve
}

func (c *Chipmunk) postSolve(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
	if _, dup := c.seen[arb]; dup {
		return
	}
	c.seen[arb] = struct{}{}

	a, b := arb.Shapes()
	ha, okA := a.UserData.(ShapeHandle)
	hb, okB := b.UserData.(ShapeHandle)
	if !okA || !okB {
		return
	}
	c.contacts = append(c.contacts, Contact{
		Shapes:  [2]ShapeHandle{ha, hb},
		Impulse: arb.TotalImpulse().Length(),
	})
}

func (c *Chipmunk) ApplyImpulse(body BodyHandle, impulse gamemath.Point2D) {
	if b, ok := c.bodies[body]; ok {
		b.ApplyImpulseAtWorldPoint(toVector(impulse), b.Position())
	}
}

func (c *Chipmunk) SetVelocity(body BodyHandle, v gamemath.Point2D) {
	if b, ok := c.bodies[body]; ok {
		b.SetVelocityVector(toVector(v))
	}
}

func (c *Chipmunk) Velocity(body BodyHandle) gamemath.Point2D {
	if b, ok := c.bodies[body]; ok {
		return fromVector(b.Velocity())
	}
	return gamemath.Point2D{}
}

func (c *Chipmunk) Pose(body BodyHandle) (gamemath.Point2D, float64) {
	if b, ok := c.bodies[body]; ok {
		return fromVector(b.Position()), b.Angle()
	}
	return gamemath.Point2D{}, 0
}

func (c *Chipmunk) RemoveBody(body BodyHandle) {
	b, ok := c.bodies[body]
	if !ok {
		return
	}
	delete(c.bodies, body)

	var owned []*cp.Shape
	b.EachShape(func(s *cp.Shape) {
		owned = append(owned, s)
	})
	for _, s := range owned {
		if h, ok := s.UserData.(ShapeHandle); ok {
			delete(c.shapes, h)
		}
		if c.space.ContainsShape(s) {
			c.space.RemoveShape(s)
		}
	}
	if c.space.ContainsBody(b) {
		c.space.RemoveBody(b)
	}
}

func (c *Chipmunk) Step(dt float64) {
	clear(c.seen)
	c.space.Step(dt)
	if n := len(c.contacts); n > 0 {
		log.Debug("physics step", "contacts", n)
	}
}

func (c *Chipmunk) Gravity() gamemath.Point2D {
	return fromVector(c.space.Gravity())
}

func (c *Chipmunk) Contacts() []Contact {
	out := c.contacts
	c.contacts = nil
	return out
}

// BodyCount returns the number of live bodies.
func (c *Chipmunk) BodyCount() int {
	return len(c.bodies)
}

func toVector(p gamemath.Point2D) cp.Vector {
	return cp.Vector{X: p.X, Y: p.Y}
}

func fromVector(v cp.Vector) gamemath.Point2D {
	return gamemath.Point2D{X: v.X, Y: v.Y}
}
