package gamemath

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

const eps = 1e-9

func drawPoint(t *rapid.T, label string) Point2D {
	return Point2D{
		X: rapid.Float64Range(-5000, 5000).Draw(t, label+".x"),
		Y: rapid.Float64Range(-5000, 5000).Draw(t, label+".y"),
	}
}

func drawParams(t *rapid.T) LaunchParams {
	return LaunchParams{
		Mass:            rapid.Float64Range(0.1, 50).Draw(t, "mass"),
		MaxImpulse:      rapid.Float64Range(1, 500).Draw(t, "maxImpulse"),
		PowerMultiplier: rapid.Float64Range(0.1, 100).Draw(t, "power"),
	}
}

func TestDistanceIsSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawPoint(t, "a")
		b := drawPoint(t, "b")
		if d1, d2 := Distance(a, b), Distance(b, a); d1 != d2 {
			t.Fatalf("Distance(a,b) = %v, Distance(b,a) = %v", d1, d2)
		}
	})
}

func TestImpulseVectorMagnitudeIsDistance(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawPoint(t, "a")
		b := drawPoint(t, "b")
		if iv := ImpulseVectorBetween(a, b); iv.Impulse != Distance(a, b) {
			t.Fatalf("Impulse = %v, want %v", iv.Impulse, Distance(a, b))
		}
	})
}

func TestAngleBetweenPointsFromSecondToFirst(t *testing.T) {
	tests := []struct {
		name string
		a, b Point2D
		want float64
	}{
		{"pointer right of origin", Point2D{X: 180, Y: 160}, Point2D{X: 380, Y: 160}, math.Pi},
		{"pointer left of origin", Point2D{X: 180, Y: 160}, Point2D{X: 80, Y: 160}, 0},
		{"pointer below origin", Point2D{X: 180, Y: 160}, Point2D{X: 180, Y: 60}, math.Pi / 2},
		{"pointer above origin", Point2D{X: 180, Y: 160}, Point2D{X: 180, Y: 260}, -math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AngleBetween(tt.a, tt.b); math.Abs(got-tt.want) > eps {
				t.Errorf("AngleBetween = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestZeroImpulseGivesZeroVelocity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := drawParams(t)
		iv := ImpulseVector{Angle: rapid.Float64Range(-10, 10).Draw(t, "angle")}
		v := LaunchVelocity(p, iv)
		if v.X != 0 || v.Y != 0 {
			t.Fatalf("LaunchVelocity = %+v, want zero", v)
		}
	})
}

func TestAppliedImpulseClampsAtMax(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := drawParams(t)
		over := p.MaxImpulse + rapid.Float64Range(0, 1e4).Draw(t, "excess")
		angle := rapid.Float64Range(-math.Pi, math.Pi).Draw(t, "angle")

		clamped := LaunchImpulse(p, ImpulseVector{Angle: angle, Impulse: over})
		atMax := LaunchImpulse(p, ImpulseVector{Angle: angle, Impulse: p.MaxImpulse})
		if clamped != atMax {
			t.Fatalf("LaunchImpulse(%v) = %+v, want %+v", over, clamped, atMax)
		}
	})
}

func TestLaunchVelocityMatchesImpulseOverMass(t *testing.T) {
	p := LaunchParams{Mass: 4, MaxImpulse: 180, PowerMultiplier: 42}
	iv := ImpulseVector{Angle: math.Pi, Impulse: 200}

	v := LaunchVelocity(p, iv)
	if math.Abs(v.X-(-1890)) > 1e-6 || math.Abs(v.Y) > 1e-6 {
		t.Errorf("LaunchVelocity = %+v, want {-1890 0}", v)
	}
	if got := Speed(v); math.Abs(got-1890) > 1e-6 {
		t.Errorf("Speed = %v, want 1890", got)
	}
}

func TestFromPolarRoundTripsSpeed(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := rapid.Float64Range(0, 1e4).Draw(t, "r")
		theta := rapid.Float64Range(-math.Pi, math.Pi).Draw(t, "theta")
		if got := Speed(FromPolar(r, theta)); math.Abs(got-r) > 1e-6 {
			t.Fatalf("Speed(FromPolar(%v)) = %v", r, got)
		}
	})
}
