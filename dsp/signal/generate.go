// Package signal generates deterministic float32 test signals: tones,
// harmonic series and seeded noise.
package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-freq/dsp/core"
)

var errLengthMismatch = errors.New("signal lengths differ")

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the random seed used for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a generator from processor options.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a generator with processor and
// signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Samples converts a duration in seconds to a sample count at the
// configured rate.
func (g *Generator) Samples(seconds float64) int {
	if seconds <= 0 {
		return 0
	}
	return int(math.Round(seconds * g.cfg.SampleRate))
}

// Sine generates a sine wave starting at phase 0.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float32, error) {
	return g.Harmonics(freqHz, []float64{amplitude}, samples)
}

// Harmonics generates a harmonic series: amplitudes[k] scales the sine at
// (k+1)*f0. Partials at or above Nyquist are skipped.
func (g *Generator) Harmonics(f0 float64, amplitudes []float64, samples int) ([]float32, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("signal sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	if f0 <= 0 {
		return nil, fmt.Errorf("signal frequency must be > 0: %f", f0)
	}

	out := make([]float32, samples)
	nyquist := g.cfg.SampleRate / 2
	for k, amp := range amplitudes {
		freq := f0 * float64(k+1)
		if freq >= nyquist || amp == 0 {
			continue
		}
		step := 2 * math.Pi * freq / g.cfg.SampleRate
		for i := range out {
			out[i] += float32(amp * math.Sin(step*float64(i)))
		}
	}
	return out, nil
}

// WhiteNoise generates seeded white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float32, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float32, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = float32((rng.Float64()*2 - 1) * amplitude)
	}
	return out, nil
}

// Mix adds src into dst sample by sample.
func Mix(dst, src []float32) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: %d != %d", errLengthMismatch, len(dst), len(src))
	}
	for i, v := range src {
		dst[i] += v
	}
	return nil
}

// Normalize scales data in place to the given peak amplitude. Silent input
// is left unchanged.
func Normalize(data []float32, targetPeak float64) error {
	if targetPeak < 0 {
		return fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	peak := 0.0
	for _, v := range data {
		peak = math.Max(peak, math.Abs(float64(v)))
	}
	if peak == 0 {
		return nil
	}
	scale := float32(targetPeak / peak)
	for i := range data {
		data[i] *= scale
	}
	return nil
}
