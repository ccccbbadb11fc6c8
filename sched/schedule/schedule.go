package schedule

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Layer is a single noise stage.
type Layer struct {
	// Threshold is the fraction of the timeline during which the layer is
	// active, counted from the start. Must be > 0; values at or above 1
	// keep the layer active through the end of the timeline.
	Threshold float64

	// Strength is the additive noise weight while the layer is active.
	// Must be >= 0.
	Strength float64
}

// Segment is a half-open interval [Start, End) of normalized progress with a
// single strength that applies uniformly across it.
type Segment struct {
	Start    float64
	End      float64
	Strength float64
}

// Schedule is an ordered, contiguous sequence of segments covering [0,1)
// exactly. A Schedule is immutable after construction; it carries no state
// across sampling runs and may be shared read-only across a batch.
type Schedule struct {
	segments    []Segment
	maxStrength float64
}

// newSchedule takes ownership of segs, which must already satisfy the
// coverage invariants.
func newSchedule(segs []Segment) *Schedule {
	maxStrength := 0.0

	for _, seg := range segs {
		if seg.Strength > maxStrength {
			maxStrength = seg.Strength
		}
	}

	return &Schedule{segments: segs, maxStrength: maxStrength}
}

// Zero returns the schedule with a single zero-strength segment covering the
// whole timeline.
func Zero() *Schedule {
	return newSchedule([]Segment{{Start: 0, End: 1, Strength: 0}})
}

// FromSegments constructs a Schedule from a pre-built segment list. The list
// must be sorted by Start, contiguous (each End equals the next Start), start
// at 0, end at 1, and carry only non-negative finite strengths.
func FromSegments(segs []Segment) (*Schedule, error) {
	if len(segs) == 0 {
		return nil, fmt.Errorf("schedule: segment list must not be empty")
	}

	if segs[0].Start != 0 {
		return nil, fmt.Errorf("schedule: first segment must start at 0: %f", segs[0].Start)
	}

	if segs[len(segs)-1].End != 1 {
		return nil, fmt.Errorf("schedule: last segment must end at 1: %f", segs[len(segs)-1].End)
	}

	for i, seg := range segs {
		if !(seg.Start < seg.End) {
			return nil, fmt.Errorf("schedule: segment %d has non-positive width [%f, %f)", i, seg.Start, seg.End)
		}

		if seg.Strength < 0 || math.IsNaN(seg.Strength) || math.IsInf(seg.Strength, 0) {
			return nil, fmt.Errorf("schedule: segment %d strength must be >= 0 and finite: %f", i, seg.Strength)
		}

		if i > 0 && segs[i-1].End != seg.Start {
			return nil, fmt.Errorf("schedule: segment %d starts at %f, previous ends at %f", i, seg.Start, segs[i-1].End)
		}
	}

	out := make([]Segment, len(segs))
	copy(out, segs)

	return newSchedule(out), nil
}

// Segments returns a copy of the segment list, sorted by Start ascending.
func (s *Schedule) Segments() []Segment {
	out := make([]Segment, len(s.segments))
	copy(out, s.segments)
	return out
}

// Len returns the number of segments.
func (s *Schedule) Len() int { return len(s.segments) }

// MaxStrength returns the maximum strength across all segments. It is meant
// for display scaling, not scheduling decisions.
func (s *Schedule) MaxStrength() float64 { return s.maxStrength }

// StrengthAt returns the effective strength at progress t. Progress at or
// beyond 1 (and NaN) reads as 0; negative progress reads as the first segment.
func (s *Schedule) StrengthAt(t float64) float64 {
	if t >= 1 || math.IsNaN(t) {
		return 0
	}

	if t < 0 {
		t = 0
	}

	idx := sort.Search(len(s.segments), func(i int) bool {
		return s.segments[i].End > t
	})
	if idx == len(s.segments) {
		return 0
	}

	return s.segments[idx].Strength
}

// Support returns the end of the last segment with nonzero strength, i.e. the
// progress beyond which the schedule never injects again. Returns 0 for an
// all-zero schedule.
func (s *Schedule) Support() float64 {
	support := 0.0

	for _, seg := range s.segments {
		if seg.Strength > 0 {
			support = seg.End
		}
	}

	return support
}

// Active reports whether any segment carries nonzero strength.
func (s *Schedule) Active() bool { return s.maxStrength > 0 }

// String returns a compact representation such as
// "[0,0.12)=12 [0.12,0.34)=4 [0.34,1)=0".
func (s *Schedule) String() string {
	var b strings.Builder

	for i, seg := range s.segments {
		if i > 0 {
			b.WriteByte(' ')
		}

		fmt.Fprintf(&b, "[%g,%g)=%g", seg.Start, seg.End, seg.Strength)
	}

	return b.String()
}
