package analysis

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-freq/dsp/buffer"
	"github.com/cwbudde/algo-freq/dsp/core"
	"github.com/cwbudde/algo-freq/dsp/fft"
	"github.com/cwbudde/algo-freq/dsp/window"
)

const (
	MinWindowSize = 32
	MaxWindowSize = 65536

	// DefaultHopDivisor sets the hop to windowSize/2. A quarter-window hop
	// (the ~10 ms Tolonen & Karjalainen suggest at 44.1 kHz) measured worse.
	DefaultHopDivisor = 2

	// minCepstrumPower floors empty bins before the logarithm.
	minCepstrumPower = 1e-30
)

// Analyzer holds the transform, hop and algorithm settings for repeated
// analyses. It keeps no per-call state and is safe for concurrent use.
type Analyzer struct {
	fft        *fft.Transformer
	hopDivisor int
	cepstrum   bool
	scratch    *buffer.Pool
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithHopDivisor sets the hop size to windowSize/d. Values below 1 are ignored.
func WithHopDivisor(d int) Option {
	return func(a *Analyzer) {
		if d >= 1 {
			a.hopDivisor = d
		}
	}
}

// WithCepstrum enables the experimental Cepstrum algorithm.
func WithCepstrum() Option {
	return func(a *Analyzer) {
		a.cepstrum = true
	}
}

// WithTransformer selects the FFT transformer. nil keeps the shared one.
func WithTransformer(t *fft.Transformer) Option {
	return func(a *Analyzer) {
		if t != nil {
			a.fft = t
		}
	}
}

// New returns an Analyzer. Without options it matches the package-level Analyze.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		fft:        fft.Default(),
		hopDivisor: DefaultHopDivisor,
		scratch:    buffer.NewPool(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

var defaultAnalyzer = New()

// Result describes one completed analysis.
type Result struct {
	Algorithm  Algorithm
	Window     window.Type
	WindowSize int
	// Frames is the number of windows accumulated.
	Frames int
	// Curve aliases the caller's output, windowSize/2 values long.
	Curve []float32
}

// Analyze runs the default Analyzer and returns the number of values written
// to out (windowSize/2), or 0 if the arguments were rejected.
func Analyze(alg Algorithm, win window.Type, windowSize int, data, out []float32) int {
	return defaultAnalyzer.Analyze(alg, win, windowSize, data, out)
}

// Analyze is the soft-failure form of Run.
func (a *Analyzer) Analyze(alg Algorithm, win window.Type, windowSize int, data, out []float32) int {
	res, err := a.Run(alg, win, windowSize, data, out)
	if err != nil {
		return 0
	}
	return len(res.Curve)
}

// HopSize returns the frame advance used for windowSize.
func (a *Analyzer) HopSize(windowSize int) int {
	return max(windowSize/a.hopDivisor, 1)
}

func (a *Analyzer) validate(alg Algorithm, win window.Type, windowSize, dataLen, outLen int) error {
	switch alg {
	case Spectrum, Autocorrelation, CuberootAutocorrelation, EnhancedAutocorrelation:
	case Cepstrum:
		if !a.cepstrum {
			return fmt.Errorf("%w: %v is disabled", ErrInvalidAlgorithm, alg)
		}
	default:
		return fmt.Errorf("%w: %d", ErrInvalidAlgorithm, int(alg))
	}
	if !win.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidWindow, int(win))
	}
	if windowSize < MinWindowSize || windowSize > MaxWindowSize {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrWindowSize, windowSize, MinWindowSize, MaxWindowSize)
	}
	if dataLen < windowSize {
		return fmt.Errorf("%w: %d < %d", ErrShortInput, dataLen, windowSize)
	}
	if outLen < windowSize/2 {
		return fmt.Errorf("%w: %d < %d", ErrShortOutput, outLen, windowSize/2)
	}
	return nil
}

// Run analyzes data with frames of windowSize samples advanced by
// HopSize(windowSize), and writes windowSize/2 post-processed values to out.
// On error out is left untouched.
func (a *Analyzer) Run(alg Algorithm, win window.Type, windowSize int, data, out []float32) (Result, error) {
	if err := a.validate(alg, win, windowSize, len(data), len(out)); err != nil {
		return Result{}, err
	}

	half := windowSize / 2
	hop := a.HopSize(windowSize)

	buf := a.scratch.GetChunks(3, windowSize)
	defer a.scratch.Put(buf)
	frame, re, im := buf.Chunk(0, windowSize), buf.Chunk(1, windowSize), buf.Chunk(2, windowSize)

	// Frames are summed in float64; thousands of float32 additions lose bins
	// small relative to the running total.
	acc := make([]float64, half)
	frames := 0
	for start := 0; start+windowSize <= len(data); start += hop {
		copy(frame, data[start:start+windowSize])
		window.Apply(win, frame)

		if err := a.processFrame(alg, windowSize, frame, re, im); err != nil {
			return Result{}, err
		}
		for i, v := range re[:half] {
			acc[i] += float64(v)
		}
		frames++
	}

	postProcess(alg, acc, windowSize, frames)

	curve := out[:half]
	for i, v := range acc {
		curve[i] = float32(v)
	}

	return Result{
		Algorithm:  alg,
		Window:     win,
		WindowSize: windowSize,
		Frames:     frames,
		Curve:      curve,
	}, nil
}

// processFrame leaves the frame's contribution in re[:n/2]. frame is
// clobbered.
func (a *Analyzer) processFrame(alg Algorithm, n int, frame, re, im []float32) error {
	if alg == Spectrum {
		return a.fft.PowerSpectrum(n, frame, re)
	}

	if err := a.fft.Complex(n, false, frame, nil, re, im); err != nil {
		return err
	}
	for i := range frame {
		frame[i] = re[i]*re[i] + im[i]*im[i]
	}

	switch alg {
	case Autocorrelation:
		for i, p := range frame {
			frame[i] = float32(math.Sqrt(float64(p)))
		}
	case CuberootAutocorrelation, EnhancedAutocorrelation:
		// The cube root flattens the spectral envelope more than the square root.
		for i, p := range frame {
			frame[i] = float32(math.Cbrt(float64(p)))
		}
	case Cepstrum:
		for i, p := range frame {
			frame[i] = float32(math.Log(math.Max(float64(p), minCepstrumPower)))
		}
		return a.fft.Complex(n, true, frame, nil, re, im)
	}

	return a.fft.Complex(n, false, frame, nil, re, im)
}

func postProcess(alg Algorithm, acc []float64, windowSize, frames int) {
	invFrames := 1 / float64(frames)

	switch alg {
	case Spectrum:
		scale := invFrames / float64(windowSize)
		for i, v := range acc {
			acc[i] = core.LinearPowerToDB(v * scale)
		}
	case EnhancedAutocorrelation:
		for i, v := range acc {
			acc[i] = math.Max(v*invFrames, 0)
		}
		pruneOctaves(acc)
	default:
		for i := range acc {
			acc[i] *= invFrames
		}
	}
}

// pruneOctaves subtracts the curve stretched by two in time (linearly
// interpolated) from itself and clips at zero, removing peaks at twice the
// true period. curve must already be clipped at zero.
func pruneOctaves(curve []float64) {
	n := len(curve)
	stretched := make([]float64, n)
	for i := range stretched {
		j := i / 2
		if i%2 == 0 {
			stretched[i] = curve[j]
			continue
		}
		next := curve[j]
		if j+1 < n {
			next = curve[j+1]
		}
		stretched[i] = (curve[j] + next) / 2
	}
	for i := range curve {
		curve[i] = math.Max(curve[i]-stretched[i], 0)
	}
}
