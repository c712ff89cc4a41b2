package analysis

import "math"

// Peak is the dominant feature of an analysis curve.
type Peak struct {
	// Index is the refined bin (Spectrum) or lag in samples.
	Index float64
	// Frequency is Index converted to Hz.
	Frequency float64
	// Value is the interpolated curve value at Index.
	Value float64
}

// FindPeak locates the strongest peak of curve and refines it with a
// parabola through its neighbours.
//
// Spectrum curves skip the DC bin. Lag curves skip the lobe around lag zero
// and report sampleRate/lag. ok is false when no peak exists.
func FindPeak(curve []float32, alg Algorithm, windowSize int, sampleRate float64) (Peak, bool) {
	if len(curve) < 3 || windowSize <= 0 || sampleRate <= 0 {
		return Peak{}, false
	}

	start := 1
	if alg.IsLag() {
		for start < len(curve)-1 && curve[start+1] <= curve[start] {
			start++
		}
	}

	best := -1
	for i := start; i < len(curve)-1; i++ {
		v := curve[i]
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			continue
		}
		if best < 0 || v > curve[best] {
			best = i
		}
	}
	if best < 0 {
		return Peak{}, false
	}
	if alg.IsLag() && curve[best] <= 0 {
		return Peak{}, false
	}

	offset, value := parabolicPeak(float64(curve[best-1]), float64(curve[best]), float64(curve[best+1]))
	p := Peak{Index: float64(best) + offset, Value: value}

	if alg.IsLag() {
		if p.Index <= 0 {
			return Peak{}, false
		}
		p.Frequency = sampleRate / p.Index
	} else {
		p.Frequency = p.Index * sampleRate / float64(windowSize)
	}
	return p, true
}

// parabolicPeak returns the vertex offset in [-0.5, 0.5] and height of the
// parabola through (-1, a), (0, b), (1, c).
func parabolicPeak(a, b, c float64) (float64, float64) {
	if math.IsInf(a, -1) || math.IsInf(c, -1) {
		return 0, b
	}
	denom := a - 2*b + c
	if denom == 0 {
		return 0, b
	}
	p := 0.5 * (a - c) / denom
	if p < -0.5 || p > 0.5 {
		return 0, b
	}
	return p, b - 0.25*(a-c)*p
}
