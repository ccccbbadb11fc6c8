// Package preview provides read-side views of a schedule for curve-rendering
// collaborators. Everything here is a pure function of an immutable schedule,
// so repeated render calls are idempotent and side-effect free.
package preview

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/runningoverglowies/algo-noisesched/sched/schedule"
)

// Curve samples the schedule's strength at n uniform progress points, sample
// i at t = i/n. n must be >= 2.
func Curve(s *schedule.Schedule, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("preview: sample count must be >= 2: %d", n)
	}

	out := make([]float64, n)

	for i := range out {
		out[i] = s.StrengthAt(float64(i) / float64(n))
	}

	return out, nil
}

// Normalized returns [Curve] scaled into [0,1] by the schedule's maximum
// strength. An all-zero schedule stays all-zero.
func Normalized(s *schedule.Schedule, n int) ([]float64, error) {
	curve, err := Curve(s, n)
	if err != nil {
		return nil, err
	}

	maxStrength := s.MaxStrength()
	if maxStrength == 0 {
		return curve, nil
	}

	vecmath.ScaleBlockInPlace(curve, 1/maxStrength)

	return curve, nil
}

// Polyline returns the schedule's staircase as x/y breakpoint pairs, two per
// segment, for plotting the exact curve without resampling.
func Polyline(s *schedule.Schedule) (xs, ys []float64) {
	segs := s.Segments()

	xs = make([]float64, 0, 2*len(segs))
	ys = make([]float64, 0, 2*len(segs))

	for _, seg := range segs {
		xs = append(xs, seg.Start, seg.End)
		ys = append(ys, seg.Strength, seg.Strength)
	}

	return xs, ys
}
