package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Analysis holds numerically computed spectral properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// Bandwidth3dB is the two-sided half-power main lobe width in bins.
	Bandwidth3dB float64
	// HighestSidelobedB is the highest sidelobe level relative to DC in dB.
	HighestSidelobedB float64
	// ScallopLossdB is the response at half a bin offset relative to DC.
	ScallopLossdB float64
}

// Analyze computes spectral properties of window coefficients by direct
// evaluation of their DTFT. Degenerate inputs yield the zero Analysis.
func Analyze(coeffs []float64) Analysis {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}
	}

	dcRef := dtftPower(coeffs, 0)
	if dcRef == 0 {
		return Analysis{}
	}

	sum, sumSq := 0.0, 0.0
	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}

	nf := float64(n)
	a := Analysis{
		CoherentGain:  sum / nf,
		ENBW:          nf * sumSq / (sum * sum),
		Bandwidth3dB:  halfPowerWidth(coeffs, dcRef) * nf,
		ScallopLossdB: 10 * math.Log10(dtftPower(coeffs, 0.5/nf)/dcRef),
	}

	firstNull := firstMinimum(coeffs, dcRef)
	a.HighestSidelobedB = highestSidelobe(coeffs, dcRef, firstNull)
	return a
}

// dtft evaluates W(f) at normalised frequency f in [0, 0.5].
func dtft(coeffs []float64, f float64) (re, im float64) {
	w := 2 * math.Pi * f
	for k, c := range coeffs {
		s, co := math.Sincos(w * float64(k))
		re += c * co
		im -= c * s
	}
	return re, im
}

func dtftPower(coeffs []float64, f float64) float64 {
	re, im := dtft(coeffs, f)
	return re*re + im*im
}

// halfPowerWidth bisects for the -3 dB point and returns the two-sided
// width in normalised frequency.
func halfPowerWidth(coeffs []float64, dcRef float64) float64 {
	lo, hi := 0.0, 0.5
	for i := 0; i < 60; i++ {
		mid := (lo + hi) / 2
		if dtftPower(coeffs, mid)/dcRef > 0.5 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 2 * lo
}

// firstMinimum scans outward from DC in eighth-bin steps for the first local
// minimum once the response has dropped below 10% of DC.
func firstMinimum(coeffs []float64, dcRef float64) float64 {
	step := 1 / (8 * float64(len(coeffs)))
	prev := dcRef
	for f := step; f < 0.5; f += step {
		v := dtftPower(coeffs, f)
		if prev < 0.1*dcRef && v > prev {
			return f - step
		}
		prev = v
	}
	return 0.5
}

func highestSidelobe(coeffs []float64, dcRef, start float64) float64 {
	step := 1 / (8 * float64(len(coeffs)))
	points := int((0.5-start)/step) + 1
	re := make([]float64, points)
	im := make([]float64, points)
	for i := range points {
		re[i], im[i] = dtft(coeffs, start+float64(i)*step)
	}
	power := make([]float64, points)
	vecmath.Power(power, re, im)

	peak := 0.0
	for _, v := range power {
		peak = math.Max(peak, v)
	}
	if peak <= 0 {
		return math.Inf(-1)
	}
	return 10 * math.Log10(peak/dcRef)
}
