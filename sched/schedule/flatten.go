package schedule

import (
	"fmt"
	"math"
	"sort"
)

const defaultStrengthScale = 1.0

type config struct {
	strengthScale float64
}

func defaultConfig() config {
	return config{strengthScale: defaultStrengthScale}
}

// Option configures [Flatten].
type Option func(*config) error

// WithStrengthScale sets the global strength multiplier (default 1.0, must be
// >= 0 and finite; 0 yields an all-zero schedule). Scaling applies after layer
// summation, so it never changes which layers are active in a segment, only
// the magnitude.
func WithStrengthScale(scale float64) Option {
	return func(cfg *config) error {
		if scale < 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
			return fmt.Errorf("schedule: strength scale must be >= 0 and finite: %f", scale)
		}

		cfg.strengthScale = scale

		return nil
	}
}

// Flatten converts an arbitrary set of possibly-overlapping layers into one
// non-overlapping schedule with additive strength summation: every distinct
// threshold becomes a break point, and each resulting segment carries the sum
// of all layers still active there.
//
// The boundary rule is strict: a layer is active on segment [start, end) iff
// start < Layer.Threshold, so a layer whose threshold equals a break point
// does not cover the segment beginning at that point. An empty layer set
// yields the zero schedule.
func Flatten(layers []Layer, opts ...Option) (*Schedule, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		err := opt(&cfg)
		if err != nil {
			return nil, err
		}
	}

	for i, layer := range layers {
		if layer.Strength < 0 || math.IsNaN(layer.Strength) || math.IsInf(layer.Strength, 0) {
			return nil, fmt.Errorf("schedule: layer %d strength must be >= 0 and finite: %f", i, layer.Strength)
		}

		if layer.Threshold <= 0 || math.IsNaN(layer.Threshold) || math.IsInf(layer.Threshold, 0) {
			return nil, fmt.Errorf("schedule: layer %d threshold must be > 0 and finite: %f", i, layer.Threshold)
		}
	}

	breaks := breakPoints(layers)

	segs := make([]Segment, 0, len(breaks)-1)

	for i := 0; i < len(breaks)-1; i++ {
		start := breaks[i]
		sum := 0.0

		for _, layer := range layers {
			if start < layer.Threshold {
				sum += layer.Strength
			}
		}

		segs = append(segs, Segment{
			Start:    start,
			End:      breaks[i+1],
			Strength: sum * cfg.strengthScale,
		})
	}

	return newSchedule(segs), nil
}

// breakPoints returns the sorted distinct break points implied by the layers,
// always including 0 and 1. Thresholds at or above 1 collapse onto the fixed
// 1.0 boundary.
func breakPoints(layers []Layer) []float64 {
	points := make([]float64, 0, len(layers)+2)
	points = append(points, 0, 1)

	for _, layer := range layers {
		if layer.Threshold >= 1 {
			continue
		}

		points = append(points, layer.Threshold)
	}

	sort.Float64s(points)

	out := points[:1]
	for _, p := range points[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}

	return out
}
