package fft

import (
	"fmt"
	"math"
)

// realTwiddle steps exp(iθk) for the real-FFT unpacking, θ = π/half.
type realTwiddle struct {
	wr, wi   float64
	wpr, wpi float64
}

func newRealTwiddle(half int) realTwiddle {
	theta := math.Pi / float64(half)
	wtemp := math.Sin(0.5 * theta)
	wpr := -2 * wtemp * wtemp
	wpi := math.Sin(theta)
	return realTwiddle{wr: 1 + wpr, wi: wpi, wpr: wpr, wpi: wpi}
}

func (w *realTwiddle) next() {
	wtemp := w.wr
	w.wr = wtemp*w.wpr - w.wi*w.wpi + wtemp
	w.wi = w.wi*w.wpr + wtemp*w.wpi + w.wi
}

// split separates bins i and i3 = half-i of the packed half-size spectrum into
// the true spectral bins i (x) and i3 (y).
func (w *realTwiddle) split(re, im []float32, i, i3 int) (xr, xi, yr, yi float32) {
	h1r := 0.5 * (re[i] + re[i3])
	h1i := 0.5 * (im[i] - im[i3])
	h2r := 0.5 * (im[i] + im[i3])
	h2i := -0.5 * (re[i] - re[i3])

	wr, wi := float32(w.wr), float32(w.wi)
	xr = h1r + wr*h2r - wi*h2i
	xi = h1i + wr*h2i + wi*h2r
	yr = h1r - wr*h2r + wi*h2i
	yi = -h1i + wr*h2i + wi*h2r
	return xr, xi, yr, yi
}

func validateRealSize(n int) error {
	if n < 4 || !IsPowerOfTwo(n) {
		return fmt.Errorf("%w: real transform of %d samples", ErrInvalidSize, n)
	}
	return nil
}

// Real computes bins [0, n/2) of the spectrum of n real samples.
//
// n must be a power of two >= 4 and both outputs must hold n/2 values. The
// upper half follows by conjugate symmetry and is not computed. realOut[0]
// holds the DC bin and imagOut[0] holds the real-valued Nyquist bin n/2.
func (t *Transformer) Real(n int, in, realOut, imagOut []float32) error {
	if err := validateRealSize(n); err != nil {
		return err
	}
	half := n / 2
	if err := validateLength("in", in, n); err != nil {
		return err
	}
	if err := validateLength("realOut", realOut, half); err != nil {
		return err
	}
	if err := validateLength("imagOut", imagOut, half); err != nil {
		return err
	}

	buf := t.scratch.GetChunks(2, half)
	defer t.scratch.Put(buf)

	tmpReal, tmpImag := buf.Chunk(0, half), buf.Chunk(1, half)
	for i := 0; i < half; i++ {
		tmpReal[i] = in[2*i]
		tmpImag[i] = in[2*i+1]
	}

	t.transform(half, false, tmpReal, tmpImag, realOut, imagOut)

	tw := newRealTwiddle(half)
	for i := 1; i < half/2; i++ {
		i3 := half - i
		xr, xi, yr, yi := tw.split(realOut, imagOut, i, i3)
		realOut[i], imagOut[i] = xr, xi
		realOut[i3], imagOut[i3] = yr, yi
		tw.next()
	}

	h1r := realOut[0]
	realOut[0] = h1r + imagOut[0]
	imagOut[0] = h1r - imagOut[0]

	return nil
}
