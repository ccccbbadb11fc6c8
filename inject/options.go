package inject

import (
	"fmt"
	"math/rand/v2"
)

const (
	defaultBatchSize  = 1
	defaultNoiseColor = NoiseGaussian
)

type config struct {
	seed      uint64
	hasSeed   bool
	rng       *rand.Rand
	batchSize int
	color     NoiseColor
}

func defaultConfig() config {
	return config{
		batchSize: defaultBatchSize,
		color:     defaultNoiseColor,
	}
}

// Option configures an [Injector].
type Option func(*config) error

// WithSeed makes the noise draw deterministic for the given seed. Without
// WithSeed or [WithRNG] every Injector draws from a randomly seeded stream.
func WithSeed(seed uint64) Option {
	return func(cfg *config) error {
		cfg.seed = seed
		cfg.hasSeed = true

		return nil
	}
}

// WithRNG sets a custom random number generator. It takes precedence over
// [WithSeed].
func WithRNG(rng *rand.Rand) Option {
	return func(cfg *config) error {
		cfg.rng = rng
		return nil
	}
}

// WithBatchSize sets the number of batch items sharing this run (default 1,
// must be >= 1). All items' noise comes from one contiguous draw, so item k
// always sees the k-th block of the stream regardless of application order.
func WithBatchSize(size int) Option {
	return func(cfg *config) error {
		if size < 1 {
			return fmt.Errorf("inject: batch size must be >= 1: %d", size)
		}

		cfg.batchSize = size

		return nil
	}
}

// WithNoiseColor sets the perturbation distribution (default [NoiseGaussian]).
func WithNoiseColor(color NoiseColor) Option {
	return func(cfg *config) error {
		if !color.Valid() {
			return fmt.Errorf("inject: invalid noise color: %d", color)
		}

		cfg.color = color

		return nil
	}
}
