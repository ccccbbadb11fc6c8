// Package chaos synthesizes decaying noise schedules from a small set of
// scalar controls instead of hand-authored layer stacks. A single chaos
// factor in [0,1] jointly trades off peak strength against active duration:
// low chaos gives a brief, mild perturbation, high chaos a long, strong one.
package chaos

import (
	"fmt"
	"math"

	"github.com/runningoverglowies/algo-noisesched/sched/core"
	"github.com/runningoverglowies/algo-noisesched/sched/schedule"
)

// Tuning constants of the chaos control. Exported so display collaborators
// can label axes without re-deriving them.
const (
	// MinPeak is the peak strength at chaos factor 0.
	MinPeak = 2.0
	// MaxPeak is the peak strength at chaos factor 1.
	MaxPeak = 20.0
	// MaxDuration is the active duration at chaos factor 1.
	MaxDuration = 0.60
	// DecayFloor is the fraction of peak strength the last active chunk
	// still carries; strength never reaches zero within the active region.
	DecayFloor = 0.1

	// The shortest active region spans one and a half sampler steps.
	minDurationSteps = 1.5
)

// Params configures one procedural schedule. It is a plain value struct:
// callers snapshot whatever interactive controls they have and pass the copy,
// the generator never reads live state.
type Params struct {
	// Steps is the caller's intended sampler step count. Must be >= 1.
	Steps int

	// NumSegments is the number of decay chunks to generate. Must be >= 1.
	NumSegments int

	// ChaosFactor jointly sets peak strength and active duration. Values
	// outside [0,1] are clamped, not rejected.
	ChaosFactor float64

	// StrengthScale is a global multiplier. Must be >= 0; 0 disables
	// injection entirely.
	StrengthScale float64
}

// DefaultParams returns a medium-chaos starting point.
func DefaultParams() Params {
	return Params{
		Steps:         12,
		NumSegments:   4,
		ChaosFactor:   0.5,
		StrengthScale: 1.0,
	}
}

// Generate synthesizes a decay schedule from p. The active region
// [0, duration) is split into NumSegments equal chunks whose strength falls
// linearly from the peak to DecayFloor of the peak; a trailing zero-strength
// segment covers the rest of the timeline.
func Generate(p Params) (*schedule.Schedule, error) {
	if p.Steps < 1 {
		return nil, fmt.Errorf("chaos: steps must be >= 1: %d", p.Steps)
	}

	if p.NumSegments < 1 {
		return nil, fmt.Errorf("chaos: num segments must be >= 1: %d", p.NumSegments)
	}

	if p.StrengthScale < 0 || math.IsNaN(p.StrengthScale) || math.IsInf(p.StrengthScale, 0) {
		return nil, fmt.Errorf("chaos: strength scale must be >= 0 and finite: %f", p.StrengthScale)
	}

	factor := p.ChaosFactor
	if math.IsNaN(factor) {
		factor = 0
	}
	factor = core.Clamp(factor, 0, 1)

	stepLength := 1.0 / float64(p.Steps)
	minDuration := minDurationSteps * stepLength
	duration := math.Min(core.Lerp(minDuration, MaxDuration, factor), 1.0)
	peak := core.Lerp(MinPeak, MaxPeak, factor)

	chunk := duration / float64(p.NumSegments)
	segs := make([]schedule.Segment, 0, p.NumSegments+1)

	for i := 0; i < p.NumSegments; i++ {
		progress := 0.0
		if p.NumSegments > 1 {
			progress = float64(i) / float64(p.NumSegments-1)
		}

		end := float64(i+1) * chunk
		if i == p.NumSegments-1 {
			// Pin the last chunk to the exact duration so the trailing
			// segment lines up despite rounding in the chunk width.
			end = duration
		}

		segs = append(segs, schedule.Segment{
			Start:    float64(i) * chunk,
			End:      end,
			Strength: peak * (1 - (1-DecayFloor)*progress) * p.StrengthScale,
		})
	}

	if duration < 1 {
		segs = append(segs, schedule.Segment{Start: duration, End: 1, Strength: 0})
	}

	return schedule.FromSegments(segs)
}
