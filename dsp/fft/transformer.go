package fft

import "github.com/cwbudde/algo-freq/dsp/buffer"

// Transformer runs transforms against an explicit bit-reversal table and
// scratch pool. The zero value is not usable; create one with NewTransformer.
//
// A Transformer holds no per-call state and is safe for concurrent use.
type Transformer struct {
	bits    *BitTable
	scratch *buffer.Pool
}

var std = NewTransformer(nil)

// NewTransformer returns a Transformer using bits for index permutation.
// A nil table selects the shared process-wide table.
func NewTransformer(bits *BitTable) *Transformer {
	if bits == nil {
		bits = defaultBitTable
	}
	return &Transformer{
		bits:    bits,
		scratch: buffer.NewPool(),
	}
}

// Default returns the Transformer used by the package-level functions.
func Default() *Transformer {
	return std
}

// Complex computes the complex FFT of n samples using the shared Transformer.
// See [Transformer.Complex].
func Complex(n int, inverse bool, realIn, imagIn, realOut, imagOut []float32) error {
	return std.Complex(n, inverse, realIn, imagIn, realOut, imagOut)
}

// Real computes the first half of the spectrum of a real signal using the
// shared Transformer. See [Transformer.Real].
func Real(n int, in, realOut, imagOut []float32) error {
	return std.Real(n, in, realOut, imagOut)
}

// PowerSpectrum computes per-bin power of a real signal using the shared
// Transformer. See [Transformer.PowerSpectrum].
func PowerSpectrum(n int, in, out []float32) error {
	return std.PowerSpectrum(n, in, out)
}
