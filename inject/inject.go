// Package inject applies a noise schedule to live conditioning buffers during
// a sampling run. One Injector serves one run: it draws its perturbation
// exactly once, adds it scaled by the schedule's current strength while the
// run is inside the schedule's support, and passes conditioning through
// untouched for good once progress leaves it.
package inject

import (
	"fmt"
	"math/rand/v2"

	"github.com/cwbudde/algo-vecmath"

	"github.com/runningoverglowies/algo-noisesched/sched/schedule"
)

// State describes where the injector is in its run.
type State int

const (
	// StateInjecting means upcoming steps may still receive noise.
	StateInjecting State = iota
	// StateClean means the run has left the schedule's support; conditioning
	// passes through unmodified for the rest of the run.
	StateClean
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case StateInjecting:
		return "Injecting"
	case StateClean:
		return "Clean"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// Injector applies one [schedule.Schedule] to one sampling run. It assumes
// progress is monotonically non-decreasing across the run: once a step reads
// zero strength the injector latches clean and never injects again. It is not
// safe for concurrent use; concurrent runs each need their own Injector.
type Injector struct {
	sched     *schedule.Schedule
	rng       *rand.Rand
	color     NoiseColor
	batchSize int

	dim     int       // conditioning length, fixed at the first draw
	noise   []float64 // batchSize*dim values, drawn once per run
	scratch []float64
	clean   bool
}

// New creates an Injector for sched. The injector starts clean when the
// schedule's first segment carries no strength.
func New(sched *schedule.Schedule, opts ...Option) (*Injector, error) {
	if sched == nil {
		return nil, fmt.Errorf("inject: schedule must not be nil")
	}

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

	in := &Injector{
		sched:     sched,
		color:     cfg.color,
		batchSize: cfg.batchSize,
		clean:     sched.StrengthAt(0) == 0,
	}

	switch {
	case cfg.rng != nil:
		in.rng = cfg.rng
	case cfg.hasSeed:
		in.rng = rand.New(rand.NewPCG(cfg.seed, 0))
	default:
		in.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return in, nil
}

// Apply perturbs buf in place for the step at the given progress, as batch
// item 0.
func (in *Injector) Apply(buf []float64, progress float64) error {
	return in.ApplyIndex(buf, 0, progress)
}

// ApplyIndex perturbs buf in place for the step at the given progress, as the
// batch item at index. While the schedule reads a nonzero strength the noise
// block for index, scaled by that strength, is added to buf; otherwise buf is
// left untouched and the injector latches clean.
//
// Every buffer passed across the run must have the same length as the first.
func (in *Injector) ApplyIndex(buf []float64, index int, progress float64) error {
	if index < 0 || index >= in.batchSize {
		return fmt.Errorf("inject: batch index out of range [0, %d): %d", in.batchSize, index)
	}

	if in.clean {
		return nil
	}

	strength := in.sched.StrengthAt(progress)
	if strength <= 0 {
		in.clean = true
		return nil
	}

	err := in.ensureNoise(len(buf))
	if err != nil {
		return err
	}

	block := in.noise[index*in.dim : (index+1)*in.dim]
	vecmath.ScaleBlock(in.scratch, block, strength)
	vecmath.AddBlockInPlace(buf, in.scratch)

	return nil
}

// Process writes the perturbed (or passed-through) conditioning for batch
// item 0 into dst without modifying src. dst and src must have equal length.
func (in *Injector) Process(dst, src []float64, progress float64) error {
	if len(dst) != len(src) {
		return fmt.Errorf("inject: dst length %d does not match src length %d", len(dst), len(src))
	}

	copy(dst, src)

	return in.Apply(dst, progress)
}

// Reset re-arms the injector for a fresh run: the clean latch resets and the
// next application draws new noise. The RNG keeps its stream position; build
// a new Injector with [WithSeed] to reproduce a previous run exactly.
func (in *Injector) Reset() {
	in.noise = nil
	in.scratch = nil
	in.dim = 0
	in.clean = in.sched.StrengthAt(0) == 0
}

// State returns the injector's current run state.
func (in *Injector) State() State {
	if in.clean {
		return StateClean
	}

	return StateInjecting
}

// Schedule returns the schedule driving this run.
func (in *Injector) Schedule() *schedule.Schedule { return in.sched }

// BatchSize returns the configured batch size.
func (in *Injector) BatchSize() int { return in.batchSize }

// Color returns the configured noise color.
func (in *Injector) Color() NoiseColor { return in.color }

// ensureNoise draws the noise for every batch item exactly once, sized to the
// first conditioning buffer seen. The blocks come from one pass over the RNG
// stream, so item k's noise is independent of which items get applied first.
func (in *Injector) ensureNoise(dim int) error {
	if dim == 0 {
		return fmt.Errorf("inject: conditioning buffer must not be empty")
	}

	if in.noise != nil {
		if dim != in.dim {
			return fmt.Errorf("inject: conditioning length changed mid-run: %d != %d", dim, in.dim)
		}

		return nil
	}

	noise := make([]float64, in.batchSize*dim)

	for b := 0; b < in.batchSize; b++ {
		err := fillNoise(noise[b*dim:(b+1)*dim], in.color, in.rng)
		if err != nil {
			return err
		}
	}

	in.noise = noise
	in.dim = dim
	in.scratch = make([]float64, dim)

	return nil
}
