// Package analysis runs overlapping windowed frames through a spectral or
// autocorrelation algorithm and accumulates a frequency or lag curve.
//
// Spectrum yields per-bin power in dB. The autocorrelation variants take the
// FFT of the (square- or cube-rooted) power spectrum; EnhancedAutocorrelation
// additionally prunes peaks at multiples of the true period by subtracting a
// time-stretched copy of the curve (Tolonen & Karjalainen, 2000).
//
// Analyze follows a soft-failure contract: invalid selectors, window sizes
// or too little input produce a zero count instead of an error. Use
// [Analyzer.Run] to learn the reason.
package analysis
