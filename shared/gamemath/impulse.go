package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Point2D is a world-space coordinate with y pointing up.
type Point2D = dmath.Vec2

// ImpulseVector is a launch descriptor: a direction and a strength.
type ImpulseVector struct {
	Angle   float64 // radians
	Impulse float64
}

// LaunchParams are the per-variant numbers that turn an ImpulseVector into
// motion.
type LaunchParams struct {
	Mass            float64
	MaxImpulse      float64
	PowerMultiplier float64
}

// AngleBetween returns the angle of the vector pointing from b toward a.
// The argument order is the reverse of Distance's b-a convention.
func AngleBetween(a, b Point2D) float64 {
	return math.Atan2(a.Y-b.Y, a.X-b.X)
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Point2D) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// ImpulseVectorBetween builds the launch descriptor for an aim gesture that
// started at start and currently sits at end.
func ImpulseVectorBetween(start, end Point2D) ImpulseVector {
	return ImpulseVector{
		Angle:   AngleBetween(start, end),
		Impulse: Distance(start, end),
	}
}

// AppliedImpulse clamps the raw impulse to MaxImpulse and scales it by the
// power multiplier.
func AppliedImpulse(p LaunchParams, iv ImpulseVector) float64 {
	return math.Min(p.MaxImpulse, iv.Impulse) * p.PowerMultiplier
}

// LaunchImpulse returns the impulse vector applied to a body at spawn.
func LaunchImpulse(p LaunchParams, iv ImpulseVector) Point2D {
	applied := AppliedImpulse(p, iv)
	if applied == 0 {
		return Point2D{}
	}
	return Point2D{
		X: math.Cos(iv.Angle) * applied,
		Y: math.Sin(iv.Angle) * applied,
	}
}

// LaunchVelocity returns the velocity a free body of mass p.Mass gains from
// LaunchImpulse. A non-positive mass yields zero.
func LaunchVelocity(p LaunchParams, iv ImpulseVector) Point2D {
	if p.Mass <= 0 {
		return Point2D{}
	}
	imp := LaunchImpulse(p, iv)
	return Point2D{X: imp.X / p.Mass, Y: imp.Y / p.Mass}
}

// Speed returns the magnitude of v.
func Speed(v Point2D) float64 {
	return math.Hypot(v.X, v.Y)
}

// FromPolar returns a vector of length r at angle theta.
func FromPolar(r, theta float64) Point2D {
	return Point2D{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}
