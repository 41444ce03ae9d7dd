package gamemath

import "iter"

// TrajectoryOptions bounds a preview.
type TrajectoryOptions struct {
	Steps        int     // maximum number of points
	Dt           float64 // seconds between points
	GroundCutoff float64 // stop after the first point below this y
}

// PredictTrajectory yields the analytic flight path of a projectile launched
// from origin. It applies the same launch formula as a real spawn and
// integrates the vertical gravity g in closed form, so no physics step is
// needed. The sequence can be ranged over any number of times.
func PredictTrajectory(origin Point2D, iv ImpulseVector, p LaunchParams, g float64, opts TrajectoryOptions) iter.Seq[Point2D] {
	return func(yield func(Point2D) bool) {
		if p.Mass <= 0 {
			return
		}
		v := LaunchVelocity(p, iv)
		for i := range opts.Steps {
			t := float64(i) * opts.Dt
			pt := Point2D{
				X: origin.X + v.X*t,
				Y: origin.Y + v.Y*t + 0.5*g*t*t,
			}
			if !yield(pt) {
				return
			}
			if pt.Y < opts.GroundCutoff {
				return
			}
		}
	}
}

// CollectTrajectory materialises PredictTrajectory into dst, reusing its
// backing array.
func CollectTrajectory(dst []Point2D, seq iter.Seq[Point2D]) []Point2D {
	dst = dst[:0]
	for p := range seq {
		dst = append(dst, p)
	}
	return dst
}
