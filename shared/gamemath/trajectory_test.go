package gamemath

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

var previewOpts = TrajectoryOptions{Steps: 80, Dt: 0.04, GroundCutoff: 20}

func TestTrajectoryStartsAtOrigin(t *testing.T) {
	origin := Point2D{X: 180, Y: 160}
	p := LaunchParams{Mass: 5, MaxImpulse: 200, PowerMultiplier: 45}
	iv := ImpulseVector{Angle: math.Pi / 4, Impulse: 150}

	pts := CollectTrajectory(nil, PredictTrajectory(origin, iv, p, -900, previewOpts))
	if len(pts) == 0 {
		t.Fatal("empty trajectory")
	}
	if pts[0] != origin {
		t.Errorf("first point = %+v, want %+v", pts[0], origin)
	}
}

func TestTrajectoryMatchesClosedForm(t *testing.T) {
	origin := Point2D{X: 180, Y: 160}
	p := LaunchParams{Mass: 4, MaxImpulse: 240, PowerMultiplier: 50}
	iv := ImpulseVector{Angle: math.Pi / 3, Impulse: 100}
	v := LaunchVelocity(p, iv)

	pts := CollectTrajectory(nil, PredictTrajectory(origin, iv, p, -900, previewOpts))
	for i, pt := range pts {
		tm := float64(i) * previewOpts.Dt
		wantX := origin.X + v.X*tm
		wantY := origin.Y + v.Y*tm - 450*tm*tm
		if math.Abs(pt.X-wantX) > 1e-6 || math.Abs(pt.Y-wantY) > 1e-6 {
			t.Fatalf("point %d = %+v, want {%v %v}", i, pt, wantX, wantY)
		}
	}
}

func TestTrajectoryStopsAfterFirstPointBelowCutoff(t *testing.T) {
	origin := Point2D{X: 180, Y: 160}
	p := LaunchParams{Mass: 5, MaxImpulse: 200, PowerMultiplier: 45}
	iv := ImpulseVector{Angle: 0, Impulse: 100}

	pts := CollectTrajectory(nil, PredictTrajectory(origin, iv, p, -900, previewOpts))
	last := pts[len(pts)-1]
	if last.Y >= previewOpts.GroundCutoff {
		t.Fatalf("last y = %v, want below %v", last.Y, previewOpts.GroundCutoff)
	}
	for i, pt := range pts[:len(pts)-1] {
		if pt.Y < previewOpts.GroundCutoff {
			t.Errorf("point %d y = %v is below the cutoff before the end", i, pt.Y)
		}
	}
}

func TestTrajectoryZeroMassIsEmpty(t *testing.T) {
	p := LaunchParams{Mass: 0, MaxImpulse: 200, PowerMultiplier: 45}
	pts := CollectTrajectory(nil, PredictTrajectory(Point2D{}, ImpulseVector{Impulse: 10}, p, -900, previewOpts))
	if len(pts) != 0 {
		t.Errorf("len = %d, want 0", len(pts))
	}
}

func TestTrajectoryIsRestartable(t *testing.T) {
	p := LaunchParams{Mass: 4, MaxImpulse: 180, PowerMultiplier: 42}
	seq := PredictTrajectory(Point2D{X: 180, Y: 160}, ImpulseVector{Angle: 0.5, Impulse: 120}, p, -900, previewOpts)

	first := CollectTrajectory(nil, seq)
	second := CollectTrajectory(nil, seq)
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("point %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestTrajectoryProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		origin := Point2D{
			X: rapid.Float64Range(0, 1800).Draw(t, "x0"),
			Y: rapid.Float64Range(0, 800).Draw(t, "y0"),
		}
		p := drawParams(t)
		iv := ImpulseVector{
			Angle:   rapid.Float64Range(-math.Pi, math.Pi).Draw(t, "angle"),
			Impulse: rapid.Float64Range(0, 400).Draw(t, "impulse"),
		}
		g := rapid.Float64Range(-2000, -1).Draw(t, "g")
		opts := TrajectoryOptions{
			Steps:        rapid.IntRange(0, 200).Draw(t, "steps"),
			Dt:           rapid.Float64Range(0.001, 0.1).Draw(t, "dt"),
			GroundCutoff: 20,
		}

		pts := CollectTrajectory(nil, PredictTrajectory(origin, iv, p, g, opts))
		if len(pts) > opts.Steps {
			t.Fatalf("len = %d exceeds cap %d", len(pts), opts.Steps)
		}
		for i, pt := range pts {
			if pt.Y < opts.GroundCutoff && i != len(pts)-1 {
				t.Fatalf("generation continued past point %d below the cutoff", i)
			}
		}
		// Under negative gravity the vertical step shrinks every tick.
		for i := 2; i < len(pts); i++ {
			d1 := pts[i-1].Y - pts[i-2].Y
			d2 := pts[i].Y - pts[i-1].Y
			tol := 1e-9 * (1 + math.Abs(pts[i].Y))
			if d2 > d1+tol {
				t.Fatalf("vertical step grew at %d: %v then %v", i, d1, d2)
			}
		}
	})
}
