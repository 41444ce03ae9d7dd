package physics

import (
	"math"
	"testing"

	"github.com/automoto/slingshot/shared/gamemath"
)

func newTestSpace() *Chipmunk {
	return NewChipmunk(gamemath.Point2D{Y: -900}, 10)
}

func TestChipmunkImpulseSetsVelocity(t *testing.T) {
	w := newTestSpace()
	b := NewCircleBinding(w, 5, 12, gamemath.Point2D{X: 180, Y: 160}, Material{Elasticity: 0.8, Friction: 1})

	b.ApplyImpulse(gamemath.Point2D{X: 9000})
	v := b.Velocity()
	if math.Abs(v.X-1800) > 1e-9 || v.Y != 0 {
		t.Errorf("Velocity = %+v, want {1800 0}", v)
	}
}

func TestChipmunkGravity(t *testing.T) {
	w := newTestSpace()
	if g := w.Gravity(); g.X != 0 || g.Y != -900 {
		t.Errorf("Gravity = %+v, want {0 -900}", g)
	}

	b := NewCircleBinding(w, 2, 10, gamemath.Point2D{X: 100, Y: 500}, Material{})
	for range 10 {
		w.Step(1.0 / 60)
	}
	if pos := b.Position(); pos.Y >= 500 {
		t.Errorf("y = %v after falling, want below 500", pos.Y)
	}
}

func TestChipmunkReportsGroundContact(t *testing.T) {
	w := newTestSpace()
	mat := Material{Elasticity: 0.8, Friction: 1}
	NewSegmentBinding(w, gamemath.Point2D{X: 0, Y: 15}, gamemath.Point2D{X: 1800, Y: 15}, 0, mat)
	ball := NewCircleBinding(w, 5, 12, gamemath.Point2D{X: 300, Y: 100}, mat)

	var got []Contact
	for range 120 {
		w.Step(1.0 / 60)
		got = append(got, w.Contacts()...)
	}
	if len(got) == 0 {
		t.Fatal("no contacts reported")
	}
	for _, c := range got {
		if !c.Involves(ball.Shape) {
			t.Errorf("contact %+v does not involve the ball", c)
		}
		if c.Impulse < 0 {
			t.Errorf("negative impulse %v", c.Impulse)
		}
	}
	if len(w.Contacts()) != 0 {
		t.Error("Contacts did not drain the queue")
	}
}

func TestChipmunkRemoveBodyIsIdempotent(t *testing.T) {
	w := newTestSpace()
	b := NewBoxBinding(w, 2, 20, 70, gamemath.Point2D{X: 900, Y: 50}, Material{})
	if w.BodyCount() != 1 {
		t.Fatalf("BodyCount = %d, want 1", w.BodyCount())
	}

	w.RemoveBody(b.Body)
	w.RemoveBody(b.Body)
	if w.BodyCount() != 0 {
		t.Errorf("BodyCount = %d, want 0", w.BodyCount())
	}
	if pos, rot := w.Pose(b.Body); pos != (gamemath.Point2D{}) || rot != 0 {
		t.Errorf("Pose of removed body = %+v %v, want zero", pos, rot)
	}
	w.Step(1.0 / 60)
}

func TestChipmunkStaticBodyStaysPut(t *testing.T) {
	w := newTestSpace()
	b := NewStaticBoxBinding(w, 120, 30, gamemath.Point2D{X: 1500, Y: 30}, Material{})
	for range 30 {
		w.Step(1.0 / 60)
	}
	if pos := b.Position(); pos.X != 1500 || pos.Y != 30 {
		t.Errorf("static position = %+v, want {1500 30}", pos)
	}
}
