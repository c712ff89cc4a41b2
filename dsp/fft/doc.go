// Package fft implements single-precision radix-2 Fourier transforms.
//
// Complex computes a power-of-two complex FFT or its inverse, Real transforms
// a real signal at half the work by packing it into a half-size complex
// signal, and PowerSpectrum returns squared magnitudes without phase.
//
// The forward kernel is e^{+2πi·nk/N}. Results are therefore the complex
// conjugate of those produced by libraries using the e^{−2πi·nk/N}
// convention; magnitudes are identical. The inverse transform divides by N,
// so Complex(n, true, ...) undoes Complex(n, false, ...).
//
// Twiddle factors are generated with trigonometric recurrences instead of
// per-sample sin/cos calls. All buffers are caller owned and never retained.
package fft
