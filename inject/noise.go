package inject

import (
	"fmt"
	"math"
	"math/rand/v2"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// NoiseColor selects the distribution of the perturbation draw.
type NoiseColor int

const (
	// NoiseGaussian draws i.i.d. standard normal values (default).
	NoiseGaussian NoiseColor = iota
	// NoiseUniform draws i.i.d. uniform values in [-1, 1).
	NoiseUniform
	// NoisePink draws Gaussian noise shaped to a 1/f spectrum and
	// RMS-normalized back to unit scale.
	NoisePink

	noiseColorCount // sentinel for validation
)

var noiseColorNames = [noiseColorCount]string{"Gaussian", "Uniform", "Pink"}

// String returns the name of the noise color.
func (nc NoiseColor) String() string {
	if nc >= 0 && nc < noiseColorCount {
		return noiseColorNames[nc]
	}
	return fmt.Sprintf("NoiseColor(%d)", nc)
}

// Valid reports whether nc is a known noise color.
func (nc NoiseColor) Valid() bool {
	return nc >= 0 && nc < noiseColorCount
}

// fillNoise fills dst with unit-scale noise of the given color.
func fillNoise(dst []float64, color NoiseColor, rng *rand.Rand) error {
	switch color {
	case NoiseGaussian:
		for i := range dst {
			dst[i] = rng.NormFloat64()
		}
	case NoiseUniform:
		for i := range dst {
			dst[i] = rng.Float64()*2 - 1
		}
	case NoisePink:
		return fillPink(dst, rng)
	default:
		return fmt.Errorf("inject: invalid noise color: %d", color)
	}

	return nil
}

// fillPink synthesizes 1/f noise by spectral shaping: white Gaussian noise is
// transformed at the next power-of-two size, bin k is scaled by 1/sqrt(k)
// with its Hermitian mirror, and the result is transformed back, truncated to
// len(dst) and RMS-normalized.
func fillPink(dst []float64, rng *rand.Rand) error {
	if len(dst) == 0 {
		return nil
	}

	size := max(nextPow2(len(dst)), 2)

	spec := make([]complex128, size)
	for i := range spec {
		spec[i] = complex(rng.NormFloat64(), 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return fmt.Errorf("inject: pink noise FFT plan: %w", err)
	}

	err = plan.Forward(spec, spec)
	if err != nil {
		return fmt.Errorf("inject: pink noise forward FFT: %w", err)
	}

	half := size / 2

	// Drop DC so the perturbation stays zero-mean.
	spec[0] = 0

	for k := 1; k < half; k++ {
		gain := complex(1/math.Sqrt(float64(k)), 0)
		spec[k] *= gain
		spec[size-k] *= gain
	}

	spec[half] *= complex(1/math.Sqrt(float64(half)), 0)

	err = plan.Inverse(spec, spec)
	if err != nil {
		return fmt.Errorf("inject: pink noise inverse FFT: %w", err)
	}

	sum := 0.0

	for i := range dst {
		v := real(spec[i])
		dst[i] = v
		sum += v * v
	}

	rms := math.Sqrt(sum / float64(len(dst)))
	if rms > 0 {
		for i := range dst {
			dst[i] /= rms
		}
	}

	return nil
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
