// Package window provides the analysis window functions used ahead of
// spectral and autocorrelation processing.
//
// The four window types keep fixed numeric codes (0 Rectangular, 1 Bartlett,
// 2 Hamming, 3 Hanning) so that callers selecting windows by index keep
// working. Windows are applied in place to float32 frames; Generate and
// Apply64 serve float64 callers.
package window
