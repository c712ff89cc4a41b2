package fft

import "math"

// Complex computes the discrete Fourier transform of n complex samples, or its
// inverse when inverse is true.
//
// n must be a power of two >= 2. imagIn may be nil, in which case the
// imaginary input is treated as zero. The output slices must not overlap the
// inputs. On error nothing is written.
func (t *Transformer) Complex(n int, inverse bool, realIn, imagIn, realOut, imagOut []float32) error {
	if err := validateSize(n); err != nil {
		return err
	}
	if err := validateLength("realIn", realIn, n); err != nil {
		return err
	}
	if imagIn != nil {
		if err := validateLength("imagIn", imagIn, n); err != nil {
			return err
		}
	}
	if err := validateLength("realOut", realOut, n); err != nil {
		return err
	}
	if err := validateLength("imagOut", imagOut, n); err != nil {
		return err
	}

	t.transform(n, inverse, realIn, imagIn, realOut, imagOut)
	return nil
}

// transform assumes validated arguments.
func (t *Transformer) transform(n int, inverse bool, realIn, imagIn, realOut, imagOut []float32) {
	numBits := Log2(n)

	// Copy into the outputs in bit-reversed order so the butterflies can run in place.
	for i := 0; i < n; i++ {
		j := t.bits.Reverse(i, numBits)
		realOut[j] = realIn[i]
		if imagIn == nil {
			imagOut[j] = 0
		} else {
			imagOut[j] = imagIn[i]
		}
	}

	angleNumerator := 2 * math.Pi
	if inverse {
		angleNumerator = -angleNumerator
	}

	blockEnd := 1
	for blockSize := 2; blockSize <= n; blockSize <<= 1 {
		delta := angleNumerator / float64(blockSize)

		sm2 := math.Sin(-2 * delta)
		sm1 := math.Sin(-delta)
		cm2 := math.Cos(-2 * delta)
		cm1 := math.Cos(-delta)
		w := 2 * cm1

		for i := 0; i < n; i += blockSize {
			ar2, ar1 := cm2, cm1
			ai2, ai1 := sm2, sm1

			for j := i; j < i+blockEnd; j++ {
				ar0 := w*ar1 - ar2
				ar2, ar1 = ar1, ar0

				ai0 := w*ai1 - ai2
				ai2, ai1 = ai1, ai0

				cr, ci := float32(ar0), float32(ai0)
				k := j + blockEnd
				tr := cr*realOut[k] - ci*imagOut[k]
				ti := cr*imagOut[k] + ci*realOut[k]

				realOut[k] = realOut[j] - tr
				imagOut[k] = imagOut[j] - ti
				realOut[j] += tr
				imagOut[j] += ti
			}
		}

		blockEnd = blockSize
	}

	if inverse {
		denom := float32(n)
		for i := 0; i < n; i++ {
			realOut[i] /= denom
			imagOut[i] /= denom
		}
	}
}
