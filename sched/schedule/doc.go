// Package schedule models piecewise-constant noise-strength curves over
// normalized sampling progress and flattens stacked noise layers into them.
//
// A [Layer] describes one noise stage: it is active from progress 0 up to its
// threshold and contributes its strength additively while active. [Flatten]
// converts an arbitrary set of possibly-overlapping layers into a single
// ordered, non-overlapping [Schedule] whose segments cover [0,1) exactly, so
// one noise draw can reproduce the cumulative effect of all stages.
//
// Schedules are immutable after construction and safe for concurrent reads.
package schedule
